package interceptorcontent_test

import (
	"testing"

	ic "github.com/Gobd/interceptorcontent"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifyNormalizedBodies(t *testing.T) {
	tests := []struct {
		kind ic.Kind
		in   any
		want error
	}{
		{ic.KindCache, map[string]any{"headers": "a, b", "queryParams": "", "cacheName": "c1"}, nil},
		{ic.KindCache, map[string]any{}, nil},
		{ic.KindIPs, map[string]any{"ips": "1.1.1.1, 2.2.2.2"}, nil},
		{ic.KindIPs, map[string]any{"ips": ""}, ic.ErrInvalidBody},
		{ic.KindLogMasker, map[string]any{}, nil},
		{ic.KindLogMasker, map[string]any{"ignoredHeaders": "Authorization"}, nil},
		{ic.KindLogWriter, nil, nil},
		{ic.KindStringify, map[string]any{"any": "thing"}, nil},
	}
	for _, tt := range tests {
		out, err := ic.Normalize(tt.kind, tt.in)
		require.NoError(t, err)
		body, ok := out.(string)
		require.True(t, ok)
		if tt.want != nil {
			assert.ErrorIs(t, ic.Verify(tt.kind, body), tt.want, "%s %s", tt.kind, body)
			continue
		}
		assert.NoError(t, ic.Verify(tt.kind, body), "%s %s", tt.kind, body)
	}
}

func TestVerifyRejects(t *testing.T) {
	tests := []struct {
		name string
		kind ic.Kind
		body string
		want error
	}{
		{"ips as string", ic.KindIPs, `{"ips":"1.1.1.1"}`, ic.ErrInvalidBody},
		{"headers as numbers", ic.KindCache, `{"headers":[1,2]}`, ic.ErrInvalidBody},
		{"not json", ic.KindCache, `{"headers":`, ic.ErrInvalidBody},
		{"stringify not json", ic.KindStringify, `nope`, ic.ErrInvalidBody},
		{"writer flag as string", ic.KindLogWriter, `{"body":"yes","uri":true,"headers":true,"requiredHeaders":[]}`, ic.ErrInvalidBody},
		{"unknown kind", "nope", `{}`, ic.ErrUnknownKind},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.ErrorIs(t, ic.Verify(tt.kind, tt.body), tt.want)
		})
	}
}

func TestVerifyMissingFields(t *testing.T) {
	err := ic.Verify(ic.KindLogMasker, `{}`)
	require.Error(t, err)
	var verrs ic.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs, "ignoredHeaders")

	err = ic.Verify(ic.KindLogWriter, `{"body":false}`)
	require.ErrorAs(t, err, &verrs)
	assert.NotContains(t, verrs, "body")
	assert.Contains(t, verrs, "uri")
	assert.Contains(t, verrs, "headers")
	assert.Contains(t, verrs, "requiredHeaders")
}

func TestVerifyAcceptsFalseAndEmpty(t *testing.T) {
	body := `{"body":false,"uri":false,"headers":false,"requiredHeaders":[]}`
	assert.NoError(t, ic.Verify(ic.KindLogWriter, body))
	assert.NoError(t, ic.Verify(ic.KindLogMasker, `{"ignoredHeaders":[]}`))
	assert.NoError(t, ic.Verify(ic.KindSimple, `"plain"`))
}
