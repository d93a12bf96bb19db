package text

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseKeepSeparator(t *testing.T) {
	for val, want := range map[string]KeepSeparator{
		"":          KeepSeparatorStart,
		"start":     KeepSeparatorStart,
		"Preceding": KeepSeparatorStart,
		"true":      KeepSeparatorStart,
		"end":       KeepSeparatorEnd,
		"following": KeepSeparatorEnd,
		"none":      KeepSeparatorNone,
		"discard":   KeepSeparatorNone,
		" false ":   KeepSeparatorNone,
	} {
		keep, err := ParseKeepSeparator(val)
		require.NoError(t, err, val)
		require.Equal(t, want, keep, val)
	}

	_, err := ParseKeepSeparator("middle")
	require.Error(t, err)
}

func TestSelectSeparator(t *testing.T) {
	seps, err := compileSeparators(DefaultSeparators, false)
	require.NoError(t, err)

	sep, rest := selectSeparator("a b\nc", seps)
	require.Equal(t, "\n", sep.literal)
	require.Len(t, rest, 2)

	sep, rest = selectSeparator("abc", seps)
	require.True(t, sep.atomic())
	require.Empty(t, rest)
}

func TestSelectSeparatorFallback(t *testing.T) {
	seps, err := compileSeparators([]string{"\n", " "}, false)
	require.NoError(t, err)

	sep, rest := selectSeparator("abc", seps)
	require.Equal(t, " ", sep.literal)
	require.Nil(t, rest)
}

func TestSeparatorMatches(t *testing.T) {
	seps, err := compileSeparators([]string{`\s+`, `a*`}, true)
	require.NoError(t, err)

	require.Equal(t, [][]int{{1, 3}, {4, 5}}, seps[0].matches("a  b c"))
	require.Equal(t, [][]int{{0, 2}}, seps[1].matches("aab"))
	require.Empty(t, seps[1].matches("bcd"))
	require.False(t, seps[1].occursIn("bcd"))

	literal := separator{literal: "--"}
	require.Equal(t, [][]int{{1, 3}, {3, 5}}, literal.matches("a----b"))
}

func TestCompileSeparatorsInvalid(t *testing.T) {
	_, err := compileSeparators([]string{"("}, true)
	require.True(t, errors.Is(err, ErrInvalidSeparator))

	// a literal separator is never compiled
	_, err = compileSeparators([]string{"("}, false)
	require.NoError(t, err)
}

func TestSplitOnDiscardTracksSeparator(t *testing.T) {
	s := &Splitter{keep: KeepSeparatorNone}

	parts := s.splitOn(piece{text: "a, b,, c"}, separator{literal: ","})

	require.Equal(t, []piece{
		{text: "a", offset: 0, sep: ""},
		{text: " b", offset: 2, sep: ","},
		{text: " c", offset: 6, sep: ","},
	}, parts)
}

func TestAtomsKeepInvalidBytes(t *testing.T) {
	parts := atoms(piece{text: "a\xffb", offset: 3, sep: "|"})

	require.Equal(t, []piece{
		{text: "a", offset: 3, sep: "|"},
		{text: "\xff", offset: 4},
		{text: "b", offset: 5},
	}, parts)
}

func TestJoin(t *testing.T) {
	window := []piece{
		{text: "a", sep: "x"},
		{text: "b", sep: "--"},
	}

	require.Equal(t, "a--b", join(window))
	require.Equal(t, "a--b c", join(window, piece{text: "c", sep: " "}))
}
