package target

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"example.com", "example.com"},
		{"EXAMPLE.COM", "example.com"},
		{"  example.com  ", "example.com"},
		{"https://example.com", "example.com"},
		{"http://example.com/some/path", "example.com"},
		{"example.com.", "example.com"},
		{"sub.example.co.uk", "sub.example.co.uk"},
	}

	for _, tt := range tests {
		got, err := Normalize(tt.in)
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestNormalizeRejects(t *testing.T) {
	for _, in := range []string{"", "   ", "localhost", "not a domain", "https://"} {
		_, err := Normalize(in)
		assert.Error(t, err, "input %q", in)
	}
}
