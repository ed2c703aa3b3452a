package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	ic "github.com/Gobd/interceptorcontent"
	"github.com/Gobd/interceptorcontent/openapi"
)

// app holds the streams and logger shared by every command.
type app struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer
	logger *log.Logger

	logLevel string
	logJSON  bool
}

// execute runs the CLI with args. Every failure is logged once to errOut,
// including flag and argument errors cobra reports before a command runs.
func execute(in io.Reader, out, errOut io.Writer, args []string) error {
	root, a := newRootCmd(in, out, errOut)
	root.SetArgs(args)
	cmd, err := root.ExecuteC()
	if err != nil {
		a.logger.Error("command failed", "command", cmd.CommandPath(), "err", err)
	}
	return err
}

func newRootCmd(in io.Reader, out, errOut io.Writer) (*cobra.Command, *app) {
	a := &app{in: in, out: out, errOut: errOut, logger: log.New(errOut)}

	root := &cobra.Command{
		Use:           "interceptorcontent",
		Short:         "Normalize interceptor form content into API request bodies",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return a.setupLogger()
		},
	}
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)

	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	root.PersistentFlags().BoolVar(&a.logJSON, "log-json", false, "log as JSON")

	root.AddCommand(
		a.normalizeCmd(),
		a.verifyCmd(),
		a.schemaCmd(),
		a.kindsCmd(),
	)
	return root, a
}

func (a *app) setupLogger() error {
	level, err := log.ParseLevel(a.logLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", a.logLevel, err)
	}
	a.logger = log.NewWithOptions(a.errOut, log.Options{
		Level:           level,
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
	})
	if a.logJSON {
		a.logger.SetFormatter(log.JSONFormatter)
	}
	return nil
}

func (a *app) normalizeCmd() *cobra.Command {
	var kindName string
	cmd := &cobra.Command{
		Use:   "normalize [file]",
		Short: "Normalize a YAML or JSON form record for an interceptor kind",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			k, err := ic.ParseKind(kindName)
			if err != nil {
				return err
			}
			raw, err := a.readInput(args)
			if err != nil {
				return err
			}
			content, err := decodeRecord(raw)
			if err != nil {
				return err
			}
			a.logger.Debug("normalizing", "kind", k, "bytes", len(raw))

			out, err := ic.Normalize(k, content)
			if err != nil {
				return err
			}
			if ic.IsFalsy(out) {
				a.logger.Info("nothing to normalize", "kind", k)
				return nil
			}
			return a.print(out)
		},
	}
	cmd.Flags().StringVarP(&kindName, "kind", "k", "", "interceptor kind, one of the names listed by 'kinds'")
	_ = cmd.MarkFlagRequired("kind")
	return cmd
}

func (a *app) verifyCmd() *cobra.Command {
	var kindName string
	cmd := &cobra.Command{
		Use:   "verify [file]",
		Short: "Type-check a canonical interceptor body",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			k, err := ic.ParseKind(kindName)
			if err != nil {
				return err
			}
			raw, err := a.readInput(args)
			if err != nil {
				return err
			}
			if err := ic.Verify(k, string(bytes.TrimSpace(raw))); err != nil {
				return err
			}
			_, err = fmt.Fprintln(a.out, "ok")
			return err
		},
	}
	cmd.Flags().StringVarP(&kindName, "kind", "k", "", "interceptor kind, one of the names listed by 'kinds'")
	_ = cmd.MarkFlagRequired("kind")
	return cmd
}

func (a *app) schemaCmd() *cobra.Command {
	var version string
	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Print the OpenAPI document of the interceptor API",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			doc, err := openapi.InterceptorDocument(version)
			if err != nil {
				return err
			}
			b, err := doc.MarshalJSON()
			if err != nil {
				return err
			}
			var pretty bytes.Buffer
			if err := json.Indent(&pretty, b, "", "  "); err != nil {
				return err
			}
			_, err = fmt.Fprintln(a.out, pretty.String())
			return err
		},
	}
	cmd.Flags().StringVar(&version, "version", "1.0.0", "API version written to the document")
	return cmd
}

func (a *app) kindsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List interceptor kinds",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			for _, k := range ic.Kinds() {
				if _, err := fmt.Fprintln(a.out, k); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

// readInput reads the named file, or stdin when no file or "-" is given.
func (a *app) readInput(args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.ReadAll(a.in)
	}
	b, err := os.ReadFile(args[0])
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return b, nil
}

// decodeRecord parses a YAML or JSON document. Empty input decodes to nil,
// which every normalizer treats as absent content. YAML allows non-string
// mapping keys such as `1: a`; they are turned into their string form so
// the result is a record JSON can encode.
func decodeRecord(raw []byte) (any, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, nil
	}
	var content any
	if err := yaml.Unmarshal(raw, &content); err != nil {
		return nil, fmt.Errorf("decode input: %w", err)
	}
	return stringKeys(content), nil
}

func stringKeys(v any) any {
	switch t := v.(type) {
	case map[any]any:
		m := make(map[string]any, len(t))
		for k, val := range t {
			m[fmt.Sprint(k)] = stringKeys(val)
		}
		return m
	case map[string]any:
		for k, val := range t {
			t[k] = stringKeys(val)
		}
		return t
	case []any:
		for i, val := range t {
			t[i] = stringKeys(val)
		}
		return t
	}
	return v
}

// print writes a normalizer result. Bodies are already JSON strings;
// anything else (the simple kind returns its input) is encoded first.
func (a *app) print(out any) error {
	s, ok := out.(string)
	if !ok {
		b, err := json.Marshal(out)
		if err != nil {
			return errors.Join(ic.ErrSerialize, err)
		}
		s = string(b)
	}
	_, err := fmt.Fprintln(a.out, s)
	return err
}
