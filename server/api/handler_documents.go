package api

import (
	"encoding/json"
	"net/http"

	"github.com/gbarnett-hz/langchain/pkg/segmenter"
	"github.com/gbarnett-hz/langchain/pkg/text"
)

func (h *Handler) handleDocuments(w http.ResponseWriter, r *http.Request) {
	var req DocumentsRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	if err := text.ValidateMetadata(req.Texts, req.Metadata); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	p, err := h.Segmenter(req.Model)

	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	options := &segmenter.SegmentOptions{
		FileName: req.FileName,

		SegmentLength:  req.SegmentLength,
		SegmentOverlap: req.SegmentOverlap,
	}

	result := make([]Document, 0)

	for i, input := range req.Texts {
		segments, err := p.Segment(r.Context(), input, options)

		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}

		for _, s := range segments {
			var source map[string]any

			if req.Metadata != nil {
				source = req.Metadata[i]
			}

			metadata := text.ChunkMetadata(source, s.Offset)
			metadata[text.MetadataSourceIndex] = i

			result = append(result, Document{
				Text:     s.Text,
				Metadata: metadata,
			})
		}
	}

	writeJson(w, result)
}
