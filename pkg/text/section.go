package text

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"

	gmtext "github.com/yuin/goldmark/text"
)

// Section is a part of a markdown document that starts at a heading.
// Offset is the byte offset of Text within the document. Text before the
// first heading forms a section with Level 0.
type Section struct {
	Title string
	Level int

	Text   string
	Offset int
}

// MarkdownSections cuts text at its top-level headings. Heading-like lines
// inside code blocks, html blocks or quotes do not start a section.
func MarkdownSections(text string) []Section {
	source := []byte(text)
	doc := goldmark.DefaultParser().Parse(gmtext.NewReader(source))

	result := []Section{}

	current := Section{}

	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		heading, ok := n.(*ast.Heading)

		if !ok || heading.Lines().Len() == 0 {
			continue
		}

		segment := heading.Lines().At(0)
		start := lineStart(source, segment.Start)

		if start > current.Offset {
			current.Text = text[current.Offset:start]
			result = append(result, current)
		}

		current = Section{
			Title: strings.TrimSpace(string(segment.Value(source))),
			Level: heading.Level,

			Offset: start,
		}
	}

	if current.Offset < len(text) {
		current.Text = text[current.Offset:]
		result = append(result, current)
	}

	return result
}

func lineStart(source []byte, pos int) int {
	for pos > 0 && source[pos-1] != '\n' {
		pos--
	}

	return pos
}
