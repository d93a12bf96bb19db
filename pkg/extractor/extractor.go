package extractor

import (
	"context"
	"errors"
)

type Provider interface {
	Extract(ctx context.Context, input File, options *ExtractOptions) (*Document, error)
}

var (
	ErrUnsupported = errors.New("unsupported type")
)

type File struct {
	Name        string
	ContentType string

	Content []byte
}

type ExtractOptions struct {
}

type Document struct {
	Text        string
	ContentType string

	Pages []Page
}

type Page struct {
	Page int
	Text string
}
