package lineinfile_test

import (
	"regexp"
	"testing"

	"github.com/jwodder/lineinfile"

	"github.com/stretchr/testify/require"
)

func TestNewPattern(t *testing.T) {
	p, err := lineinfile.NewPattern(`^foo=`)
	require.NoError(t, err)
	require.False(t, p.IsZero())
	require.Equal(t, `^foo=`, p.String())
}

func TestNewPattern_Invalid(t *testing.T) {
	_, err := lineinfile.NewPattern(`(unclosed`)
	require.Error(t, err)
	require.True(t, lineinfile.IsPatternError(err))
	require.False(t, lineinfile.IsConfigurationError(err))
}

func TestMustPattern_Panics(t *testing.T) {
	require.Panics(t, func() { lineinfile.MustPattern(`(unclosed`) })
}

func TestLiteralPattern(t *testing.T) {
	// Metacharacters in the text are quoted, so "a.b" must not match "axb".
	got, err := lineinfile.RemoveLinesFromString("a.b\naxb\n", lineinfile.LiteralPattern("a.b"))
	require.NoError(t, err)
	require.Equal(t, "axb\n", got)
}

func TestPatternFromRegexp(t *testing.T) {
	p := lineinfile.PatternFromRegexp(regexp.MustCompile(`^bar=`))
	require.False(t, p.IsZero())
	require.Equal(t, `^bar=`, p.String())

	require.True(t, lineinfile.PatternFromRegexp(nil).IsZero())
	require.Equal(t, "", lineinfile.PatternFromRegexp(nil).String())
}

func TestLocatorString(t *testing.T) {
	p := lineinfile.MustPattern(`^foo=`)
	cases := []struct {
		loc  lineinfile.Locator
		want string
	}{
		{lineinfile.Locator{}, "at-eof"},
		{lineinfile.AtEOF(), "at-eof"},
		{lineinfile.AtBOF(), "at-bof"},
		{lineinfile.AfterFirst(p), "after-first(^foo=)"},
		{lineinfile.AfterLast(p), "after-last(^foo=)"},
		{lineinfile.BeforeFirst(p), "before-first(^foo=)"},
		{lineinfile.BeforeLast(p), "before-last(^foo=)"},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, tc.loc.String())
	}
}
