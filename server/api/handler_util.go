package api

import (
	"errors"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/gbarnett-hz/langchain/pkg/extractor"
)

func valueModel(r *http.Request) string {
	if val := r.FormValue("model"); val != "" {
		return val
	}

	return ""
}

// readText returns the input of a request as text. Plain form values are
// used as is, uploaded files go through the extractors.
func (h *Handler) readText(r *http.Request) (string, string, error) {
	if val := r.FormValue("text"); val != "" {
		return r.FormValue("file_name"), val, nil
	}

	file, err := h.readFile(r)

	if err != nil {
		return "", "", err
	}

	e, err := h.Extractor("")

	if err != nil {
		return "", "", err
	}

	document, err := e.Extract(r.Context(), *file, nil)

	if err != nil {
		return "", "", err
	}

	return file.Name, document.Text, nil
}

func (h *Handler) readFile(r *http.Request) (*extractor.File, error) {
	if file, header, err := r.FormFile("file"); err == nil {
		defer file.Close()

		data, err := io.ReadAll(file)

		if err != nil {
			return nil, err
		}

		return &extractor.File{
			Name: header.Filename,

			Content:     data,
			ContentType: header.Header.Get("Content-Type"),
		}, nil
	}

	contentType := r.Header.Get("Content-Type")

	if strings.HasPrefix(contentType, "multipart/") || strings.HasPrefix(contentType, "application/x-www-form-urlencoded") {
		return nil, errors.New("missing file")
	}

	contentDisposition := r.Header.Get("Content-Disposition")

	_, params, _ := mime.ParseMediaType(contentDisposition)

	filename := params["filename*"]
	filename = strings.TrimPrefix(filename, "UTF-8''")
	filename = strings.TrimPrefix(filename, "utf-8''")

	if filename == "" {
		filename = params["filename"]
	}

	data, err := io.ReadAll(r.Body)

	if err != nil {
		return nil, err
	}

	if len(data) == 0 {
		return nil, errors.New("missing input")
	}

	return &extractor.File{
		Name: filename,

		Content:     data,
		ContentType: contentType,
	}, nil
}
