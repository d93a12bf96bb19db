package text

import (
	"context"
	"path"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/gbarnett-hz/langchain/pkg/extractor"
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

	if !detectText(input) {
		return nil, extractor.ErrUnsupported
	}

	mime := input.ContentType

	if mime == "" {
		mime = "text/plain"
	}

	return &extractor.Document{
		Text:        string(input.Content),
		ContentType: mime,
	}, nil
}

func detectText(input extractor.File) bool {
	if isSupported(input) {
		return true
	}

	if !utf8.Valid(input.Content) {
		return false
	}

	var total, printable int

	for _, r := range string(input.Content) {
		if r == 0 {
			return false
		}

		total++

		if unicode.IsPrint(r) || unicode.IsSpace(r) {
			printable++
		}
	}

	return total > 0 && printable > total*90/100
}

func isSupported(file extractor.File) bool {
	if file.Name != "" {
		ext := strings.ToLower(path.Ext(file.Name))

		if slices.Contains(SupportedExtensions, ext) {
			return true
		}
	}

	if file.ContentType != "" {
		mime, _, _ := strings.Cut(file.ContentType, ";")

		if strings.HasPrefix(mime, "text/") || slices.Contains(SupportedMimeTypes, strings.TrimSpace(mime)) {
			return true
		}
	}

	return false
}
