package unstructured

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gbarnett-hz/langchain/pkg/extractor"
	"github.com/gbarnett-hz/langchain/pkg/segmenter"
	"github.com/gbarnett-hz/langchain/pkg/text"

	"github.com/google/uuid"
)

func (h *Handler) handlePartition(w http.ResponseWriter, r *http.Request) {
	e, err := h.Extractor("")

	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	file, header, err := r.FormFile("files")

	if err != nil {
		file, header, err = r.FormFile("file")
	}

	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	defer file.Close()

	data, err := io.ReadAll(file)

	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	input := extractor.File{
		Name: header.Filename,

		Content:     data,
		ContentType: header.Header.Get("Content-Type"),
	}

	strategy, err := parseChunkingStrategy(r.FormValue("chunking_strategy"))

	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	chunkLength, _ := strconv.Atoi(r.FormValue("max_characters"))
	chunkOverlap, _ := strconv.Atoi(r.FormValue("overlap"))

	if chunkLength <= 0 {
		chunkLength = 500
	}

	if chunkOverlap <= 0 {
		chunkOverlap = 0
	}

	document, err := e.Extract(r.Context(), input, nil)

	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	metadata := PartitionMetadata{
		FileName: input.Name,
		FileType: document.ContentType,
	}

	if strategy == ChunkingStrategyNone {
		writeJson(w, []Partition{
			{
				ID:   uuid.NewString(),
				Type: ElementTypeNarrativeText,
				Text: document.Text,

				Metadata: metadata,
			},
		})

		return
	}

	s, err := h.Segmenter("")

	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	sections := []string{document.Text}

	if strategy == ChunkingStrategyByTitle {
		sections = nil

		for _, section := range text.MarkdownSections(document.Text) {
			sections = append(sections, section.Text)
		}
	}

	result := []Partition{}

	for _, section := range sections {
		segments, err := s.Segment(r.Context(), section, &segmenter.SegmentOptions{
			FileName: input.Name,

			SegmentLength:  &chunkLength,
			SegmentOverlap: &chunkOverlap,
		})

		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}

		for _, s := range segments {
			result = append(result, Partition{
				ID:   uuid.NewString(),
				Type: ElementTypeCompositeElement,
				Text: s.Text,

				Metadata: metadata,
			})
		}
	}

	writeJson(w, result)
}

func parseChunkingStrategy(value string) (ChunkingStrategy, error) {
	switch strings.ToLower(value) {
	case "", "none":
		return ChunkingStrategyNone, nil

	case "basic":
		return ChunkingStrategyBasic, nil

	case "by_title":
		return ChunkingStrategyByTitle, nil
	}

	return "", errors.New("unsupported chunking strategy: " + value)
}
