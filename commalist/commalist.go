package commalist

import (
	"strings"
)

// Separator splits raw list values. It is matched literally, with no
// quoting or escaping.
const Separator = ","

// List is a comma-list field value: a [Raw] or a [Parsed].
type List interface {
	list()
}

// Raw is a list as typed into a form, e.g. "a, b ,c".
type Raw string

// Parsed is a list that has already been split into trimmed tokens.
type Parsed []string

func (Raw) list() {}
func (Parsed) list() {}

// FromValue maps a runtime field value onto a List. Only strings become
// [Raw] and only string slices become [Parsed]; any other value is not a
// list and ok is false.
func FromValue(v any) (l List, ok bool) {
	switch t := v.(type) {
	case Raw:
		return t, true
	case string:
		return Raw(t), true
	case Parsed:
		return t, true
	case []string:
		return Parsed(t), true
	}
	return nil, false
}

// Split returns the parsed form of l. A [Raw] value is split on
// [Separator] and every token is trimmed; empty tokens are kept, so a
// trailing comma yields a trailing "". A [Parsed] value is returned as is.
func Split(l List) Parsed {
	switch t := l.(type) {
	case Raw:
		return SplitString(string(t))
	case Parsed:
		return t
	}
	return nil
}

// SplitString splits s on [Separator] and trims white space from each token.
func SplitString(s string) Parsed {
	return Map(strings.Split(s, Separator), strings.TrimSpace)
}

// Map applies f to every token and returns the results as a new Parsed.
func Map(tokens []string, f func(string) string) Parsed {
	out := make(Parsed, len(tokens))
	for i, tok := range tokens {
		out[i] = f(tok)
	}
	return out
}

// IsRaw reports whether l still needs splitting.
func IsRaw(l List) bool {
	_, ok := l.(Raw)
	return ok
}
