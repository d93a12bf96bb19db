package text_test

import (
	"errors"
	"testing"

	"github.com/gbarnett-hz/langchain/pkg/text"

	"github.com/stretchr/testify/require"
)

func TestCreateDocuments(t *testing.T) {
	s := newSplitter(t,
		text.WithChunkSize(10),
		text.WithChunkOverlap(0),
		text.WithStartIndex(true),
	)

	metadata := map[string]any{"source": "a"}

	docs, err := s.CreateDocuments(
		[]string{"An apple a day", "keeps"},
		[]map[string]any{metadata, {"source": "b"}},
	)

	require.NoError(t, err)
	require.Equal(t, []text.Document{
		{Text: "An apple a", Metadata: map[string]any{"source": "a", "start_index": 0}},
		{Text: "day", Metadata: map[string]any{"source": "a", "start_index": 11}},
		{Text: "keeps", Metadata: map[string]any{"source": "b", "start_index": 0}},
	}, docs)

	// metadata is copied per chunk
	docs[0].Metadata["source"] = "changed"
	require.Equal(t, "a", docs[1].Metadata["source"])
	require.Equal(t, map[string]any{"source": "a"}, metadata)
}

func TestCreateDocumentsWithoutMetadata(t *testing.T) {
	s := newSplitter(t, text.WithChunkSize(100), text.WithChunkOverlap(0))

	docs, err := s.CreateDocuments([]string{"one", "", "two"}, nil)

	require.NoError(t, err)
	require.Len(t, docs, 2)
	require.Equal(t, "one", docs[0].Text)
	require.Equal(t, "two", docs[1].Text)
	require.NotNil(t, docs[0].Metadata)
	require.Empty(t, docs[0].Metadata)
}

func TestCreateDocumentsMismatch(t *testing.T) {
	s := newSplitter(t)

	_, err := s.CreateDocuments([]string{"a", "b"}, []map[string]any{{}})
	require.True(t, errors.Is(err, text.ErrMetadataMismatch))
}

func TestCreateDocumentsPanic(t *testing.T) {
	s := newSplitter(t, text.WithLengthFunc(func(string) int {
		panic("boom")
	}))

	require.PanicsWithValue(t, "boom", func() {
		s.CreateDocuments([]string{"some text"}, nil)
	})
}

func TestSplitDocuments(t *testing.T) {
	s := newSplitter(t, text.WithChunkSize(14), text.WithChunkOverlap(7))

	docs, err := s.SplitDocuments([]text.Document{
		{Text: "Item 1\nItem 2\nItem 3", Metadata: map[string]any{"page": 1}},
	})

	require.NoError(t, err)
	require.Equal(t, []text.Document{
		{Text: "Item 1\nItem 2", Metadata: map[string]any{"page": 1}},
		{Text: "Item 2\nItem 3", Metadata: map[string]any{"page": 1}},
	}, docs)
}

func TestChunkMetadata(t *testing.T) {
	source := map[string]any{"source": "a"}

	m := text.ChunkMetadata(source, 7)

	require.Equal(t, map[string]any{"source": "a", text.MetadataStartIndex: 7}, m)
	require.Equal(t, map[string]any{"source": "a"}, source)

	require.Equal(t, map[string]any{text.MetadataStartIndex: 0}, text.ChunkMetadata(nil, 0))
}

func TestValidateMetadata(t *testing.T) {
	require.NoError(t, text.ValidateMetadata([]string{"a"}, nil))
	require.NoError(t, text.ValidateMetadata([]string{"a"}, []map[string]any{nil}))
	require.ErrorIs(t, text.ValidateMetadata([]string{"a", "b"}, []map[string]any{{}}), text.ErrMetadataMismatch)
}
