package text

import (
	"errors"
	"fmt"
	"maps"
	"runtime"

	"golang.org/x/sync/errgroup"
)

var ErrMetadataMismatch = errors.New("metadata count does not match text count")

const (
	MetadataStartIndex  = "start_index"
	MetadataSourceIndex = "source_index"
)

type Document struct {
	Text     string
	Metadata map[string]any
}

// CreateDocuments splits each text and pairs its chunks with a copy of the
// matching metadata. Sources are processed concurrently; the result keeps
// source order and chunk order.
func (s *Splitter) CreateDocuments(texts []string, metadatas []map[string]any) ([]Document, error) {
	if err := ValidateMetadata(texts, metadatas); err != nil {
		return nil, err
	}

	results := make([][]Document, len(texts))
	panics := make([]any, len(texts))

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, text := range texts {
		var metadata map[string]any

		if metadatas != nil {
			metadata = metadatas[i]
		}

		g.Go(func() error {
			// a panicking length function is re-raised on the calling goroutine
			defer func() {
				panics[i] = recover()
			}()

			results[i] = s.documents(text, metadata)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, p := range panics {
		if p != nil {
			panic(p)
		}
	}

	var result []Document

	for _, docs := range results {
		result = append(result, docs...)
	}

	return result, nil
}

// ValidateMetadata checks that metadatas, if given, has one entry per text.
func ValidateMetadata(texts []string, metadatas []map[string]any) error {
	if metadatas != nil && len(metadatas) != len(texts) {
		return fmt.Errorf("%w: %d texts, %d metadata", ErrMetadataMismatch, len(texts), len(metadatas))
	}

	return nil
}

// ChunkMetadata returns a copy of metadata labeled with the start offset of
// a chunk within its source.
func ChunkMetadata(metadata map[string]any, offset int) map[string]any {
	m := cloneMetadata(metadata)
	m[MetadataStartIndex] = offset

	return m
}

func cloneMetadata(metadata map[string]any) map[string]any {
	m := maps.Clone(metadata)

	if m == nil {
		m = make(map[string]any)
	}

	return m
}

// SplitDocuments re-splits documents, keeping their metadata.
func (s *Splitter) SplitDocuments(docs []Document) ([]Document, error) {
	texts := make([]string, 0, len(docs))
	metadatas := make([]map[string]any, 0, len(docs))

	for _, d := range docs {
		texts = append(texts, d.Text)
		metadatas = append(metadatas, d.Metadata)
	}

	return s.CreateDocuments(texts, metadatas)
}

func (s *Splitter) documents(text string, metadata map[string]any) []Document {
	chunks := s.SplitChunks(text)

	result := make([]Document, 0, len(chunks))

	for _, c := range chunks {
		var m map[string]any

		if s.startIndex {
			m = ChunkMetadata(metadata, c.Offset)
		} else {
			m = cloneMetadata(metadata)
		}

		result = append(result, Document{
			Text:     c.Text,
			Metadata: m,
		})
	}

	return result
}
