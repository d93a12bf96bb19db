package api

import (
	"net/http"
	"strings"
)

func (h *Handler) handleExtract(w http.ResponseWriter, r *http.Request) {
	model := valueModel(r)

	p, err := h.Extractor(model)

	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	file, err := h.readFile(r)

	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	result, err := p.Extract(r.Context(), *file, nil)

	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	if strings.Contains(r.Header.Get("Accept"), "application/json") {
		doc := ExtractedDocument{
			Text: result.Text,
		}

		for _, p := range result.Pages {
			doc.Pages = append(doc.Pages, Page{
				Page: p.Page,
				Text: p.Text,
			})
		}

		writeJson(w, doc)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte(result.Text))
}
