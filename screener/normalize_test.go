package screener

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"  2,520.50  ", "2,520.50"},
		{"52.3%", "52.3"},
		{" 52.3% ", "52.3"},
		{"52.3%%", "52.3"},
		{"50%%%", "50"},
		{"a%%%%b", "a%b"},
		{"% %", ""},
		{"0.35 %", "0.35"},
		{"N/A", "N/A"},
		{"", ""},
		{"%", ""},
		{"1,020", "1,020"},
	}
	for _, c := range cases {
		require.Equal(t, c.want, Normalize(c.in), "input %q", c.in)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{"  2,520.50  ", "52.3%", "52.3%%", "50%%%", "%%%", "% %", "a%%%%b", "N/A", "", "%", "%%", "abc", "9.2"}
	for _, in := range inputs {
		once := Normalize(in)
		require.Equal(t, once, Normalize(once), "input %q", in)
	}
}
