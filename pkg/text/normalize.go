package text

import (
	"regexp"
	"strings"
)

var (
	paragraphBreak = regexp.MustCompile(`\n\s*\n\s*`)
	lineBreak      = regexp.MustCompile(`\n\s*`)
)

// Normalize unifies line endings, turns runs of blank lines into a single
// paragraph break and collapses all other whitespace into single spaces.
func Normalize(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	text = strings.TrimSpace(text)

	if text == "" {
		return ""
	}

	paragraphs := paragraphBreak.Split(text, -1)

	for i, p := range paragraphs {
		lines := lineBreak.Split(p, -1)

		for j, l := range lines {
			lines[j] = strings.Join(strings.Fields(l), " ")
		}

		paragraphs[i] = strings.Join(lines, "\n")
	}

	return strings.Join(paragraphs, "\n\n")
}
