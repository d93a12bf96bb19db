package text

import (
	"unicode/utf8"
)

// LengthFunc measures the size of a text span. It must be deterministic and
// free of side effects since the splitter calls it repeatedly on overlapping
// spans.
type LengthFunc func(text string) int

// RuneCount measures text in Unicode code points.
func RuneCount(text string) int {
	return utf8.RuneCountInString(text)
}

// ByteCount measures text in bytes.
func ByteCount(text string) int {
	return len(text)
}
