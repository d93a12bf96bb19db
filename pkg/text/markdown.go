package text

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"

	gmtext "github.com/yuin/goldmark/text"
)

type markdownFeature int

const (
	featureHeading markdownFeature = iota
	featureCodeFence
	featureList
	featureLink
	featureBlockquote
	featureRule
)

// IsMarkdown reports whether text looks like markdown. It parses the text
// and requires at least two different kinds of markdown structure, so plain
// text with an occasional "#" or "-" is not treated as markdown.
func IsMarkdown(text string) bool {
	if strings.TrimSpace(text) == "" {
		return false
	}

	source := []byte(text)
	doc := goldmark.DefaultParser().Parse(gmtext.NewReader(source))

	features := make(map[markdownFeature]bool)

	ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch n.Kind() {
		case ast.KindHeading:
			features[featureHeading] = true

		case ast.KindFencedCodeBlock:
			features[featureCodeFence] = true

		case ast.KindList:
			features[featureList] = true

		case ast.KindLink, ast.KindImage, ast.KindAutoLink:
			features[featureLink] = true

		case ast.KindBlockquote:
			features[featureBlockquote] = true

		case ast.KindThematicBreak:
			features[featureRule] = true
		}

		return ast.WalkContinue, nil
	})

	return len(features) >= 2
}
