package pdf_test

import (
	"context"
	"testing"

	"github.com/gbarnett-hz/langchain/pkg/extractor"
	"github.com/gbarnett-hz/langchain/pkg/extractor/pdf"

	"github.com/stretchr/testify/require"
)

func TestExtractRejectsNonPDF(t *testing.T) {
	e, err := pdf.New()
	require.NoError(t, err)

	_, err = e.Extract(context.Background(), extractor.File{
		Name:    "notes.txt",
		Content: []byte("hello"),
	}, nil)

	require.ErrorIs(t, err, extractor.ErrUnsupported)
}

func TestExtractInvalidPDF(t *testing.T) {
	e, err := pdf.New()
	require.NoError(t, err)

	_, err = e.Extract(context.Background(), extractor.File{
		Name:    "broken.pdf",
		Content: []byte("%PDF-1.4 not really"),
	}, nil)

	require.Error(t, err)
	require.NotErrorIs(t, err, extractor.ErrUnsupported)
}
