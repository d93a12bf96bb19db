package text

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// KeepSeparator controls whether and where separator text is retained.
type KeepSeparator int

const (
	// KeepSeparatorNone drops separators while dividing. They are
	// reinserted once between pieces that end up in the same chunk.
	KeepSeparatorNone KeepSeparator = iota

	// KeepSeparatorStart prefixes each piece with the separator before it.
	KeepSeparatorStart

	// KeepSeparatorEnd suffixes each piece with the separator after it.
	KeepSeparatorEnd
)

func (k KeepSeparator) String() string {
	switch k {
	case KeepSeparatorNone:
		return "none"
	case KeepSeparatorStart:
		return "start"
	case KeepSeparatorEnd:
		return "end"
	}

	return fmt.Sprintf("KeepSeparator(%d)", int(k))
}

func (k KeepSeparator) valid() bool {
	return k >= KeepSeparatorNone && k <= KeepSeparatorEnd
}

func ParseKeepSeparator(val string) (KeepSeparator, error) {
	switch strings.ToLower(strings.TrimSpace(val)) {
	case "none", "discard", "false":
		return KeepSeparatorNone, nil

	case "", "start", "preceding", "true":
		return KeepSeparatorStart, nil

	case "end", "following":
		return KeepSeparatorEnd, nil
	}

	return KeepSeparatorStart, errors.New("invalid keep separator: " + val)
}

// separator is either a literal string or a compiled pattern. The empty
// separator stands for atomic splitting in both modes.
type separator struct {
	literal string
	pattern *regexp.Regexp
}

func compileSeparators(patterns []string, regex bool) ([]separator, error) {
	result := make([]separator, 0, len(patterns))

	for _, p := range patterns {
		if !regex || p == "" {
			result = append(result, separator{literal: p})
			continue
		}

		re, err := regexp.Compile(p)

		if err != nil {
			return nil, fmt.Errorf("%w %q: %w", ErrInvalidSeparator, p, err)
		}

		result = append(result, separator{pattern: re})
	}

	return result, nil
}

func (sep separator) atomic() bool {
	return sep.pattern == nil && sep.literal == ""
}

// matches returns the byte ranges of all non-overlapping, non-empty
// occurrences. Zero-width regex matches are ignored.
func (sep separator) matches(text string) [][]int {
	if sep.atomic() {
		return nil
	}

	if sep.pattern != nil {
		var result [][]int

		for _, m := range sep.pattern.FindAllStringIndex(text, -1) {
			if m[1] > m[0] {
				result = append(result, m)
			}
		}

		return result
	}

	var result [][]int

	for start := 0; start < len(text); {
		idx := strings.Index(text[start:], sep.literal)

		if idx < 0 {
			break
		}

		begin := start + idx
		end := begin + len(sep.literal)

		result = append(result, []int{begin, end})
		start = end
	}

	return result
}

func (sep separator) occursIn(text string) bool {
	if sep.atomic() {
		return true
	}

	if sep.pattern != nil {
		return len(sep.matches(text)) > 0
	}

	return strings.Contains(text, sep.literal)
}

// selectSeparator returns the first separator present in text along with the
// separators of lower priority. When nothing matches, the last separator is
// returned with no remainder.
func selectSeparator(text string, separators []separator) (separator, []separator) {
	for i, sep := range separators {
		if sep.occursIn(text) {
			return sep, separators[i+1:]
		}
	}

	return separators[len(separators)-1], nil
}
