package codehex

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fengxuway/codebreaker-go"
)

func TestParse(t *testing.T) {
	require := require.New(t)

	c, err := Parse("2043AFCC 2411FFFF")
	require.NoError(err)
	require.Equal(codebreaker.Code{Addr: 0x2043AFCC, Val: 0x2411FFFF}, c)

	c, err = Parse("2043afcc 2411ffff")
	require.NoError(err)
	require.Equal(codebreaker.Code{Addr: 0x2043AFCC, Val: 0x2411FFFF}, c)
}

func TestParseMalformed(t *testing.T) {
	require := require.New(t)

	tests := []string{
		"",
		"2043AFCC",
		"2043AFCC 2411FFFF EXTRA",
		"2043AFC 2411FFFF",
		"2043AFCZ 2411FFFF",
	}
	for _, line := range tests {
		_, err := Parse(line)
		require.ErrorIs(err, ErrMalformed, "line %q", line)
	}
}

func TestFormat(t *testing.T) {
	require := require.New(t)
	got := Format(codebreaker.Code{Addr: 0x2043afcc, Val: 0x2411ffff})
	require.Equal("2043AFCC 2411FFFF", got)
}

func TestParseFormatList(t *testing.T) {
	require := require.New(t)

	input := "2043AFCC 2411FFFF\n\nBEEFC0DE 00000000\n973E0B2A A7D4AF10\n"
	codes, err := ParseList(strings.NewReader(input))
	require.NoError(err)
	require.Equal([]codebreaker.Code{
		{Addr: 0x2043AFCC, Val: 0x2411FFFF},
		{Addr: 0xBEEFC0DE, Val: 0x00000000},
		{Addr: 0x973E0B2A, Val: 0xA7D4AF10},
	}, codes)

	var sb strings.Builder
	require.NoError(FormatList(&sb, codes))
	require.Equal("2043AFCC 2411FFFF\nBEEFC0DE 00000000\n973E0B2A A7D4AF10\n", sb.String())
}

func TestParseListMalformed(t *testing.T) {
	require := require.New(t)
	_, err := ParseList(strings.NewReader("2043AFCC 2411FFFF\nnot a code\n"))
	require.ErrorIs(err, ErrMalformed)
}
