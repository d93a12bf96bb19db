package pdf

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/gbarnett-hz/langchain/pkg/extractor"

	"github.com/ledongthuc/pdf"
)

var _ extractor.Provider = &Extractor{}

type Extractor struct {
}

func New() (*Extractor, error) {
	return &Extractor{}, nil
}

func (e *Extractor) Extract(ctx context.Context, input extractor.File, options *extractor.ExtractOptions) (*extractor.Document, error) {
	if options == nil {
		options = new(extractor.ExtractOptions)
	}

	if !isPDF(input) {
		return nil, extractor.ErrUnsupported
	}

	r, err := pdf.NewReader(bytes.NewReader(input.Content), int64(len(input.Content)))

	if err != nil {
		return nil, fmt.Errorf("failed to open pdf: %w", err)
	}

	var pages []extractor.Page
	var texts []string

	for i := 1; i <= r.NumPage(); i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		p := r.Page(i)

		if p.V.IsNull() {
			continue
		}

		text, err := p.GetPlainText(nil)

		if err != nil {
			return nil, fmt.Errorf("failed to extract text from page %d: %w", i, err)
		}

		text = strings.TrimSpace(text)

		pages = append(pages, extractor.Page{
			Page: i,
			Text: text,
		})

		if text != "" {
			texts = append(texts, text)
		}
	}

	return &extractor.Document{
		Text:        strings.Join(texts, "\n\n"),
		ContentType: "text/plain",

		Pages: pages,
	}, nil
}

var magic = []byte("%PDF-")

func isPDF(file extractor.File) bool {
	if bytes.HasPrefix(file.Content, magic) {
		return true
	}

	if strings.EqualFold(path.Ext(file.Name), ".pdf") || file.ContentType == "application/pdf" {
		return len(file.Content) > 0
	}

	return false
}
