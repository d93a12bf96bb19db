package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gbarnett-hz/langchain/server/api"
)

type ExtractionService struct {
	Options []RequestOption
}

func NewExtractionService(options ...RequestOption) ExtractionService {
	return ExtractionService{
		Options: options,
	}
}

type Extraction = api.ExtractedDocument

type ExtractionRequest struct {
	Model string

	Name   string
	Reader io.Reader
}

func (r *ExtractionService) New(ctx context.Context, input ExtractionRequest, options ...RequestOption) (*Extraction, error) {
	c := newRequestConfig(append(r.Options, options...)...)

	var data bytes.Buffer
	w := multipart.NewWriter(&data)

	file, err := w.CreateFormFile("file", input.Name)

	if err != nil {
		return nil, err
	}

	if _, err := io.Copy(file, input.Reader); err != nil {
		return nil, err
	}

	if input.Model != "" {
		w.WriteField("model", input.Model)
	}

	if err := w.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.URL+"/v1/extract", &data)

	if err != nil {
		return nil, err
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := c.Client.Do(c.newRequest(req))

	if err != nil {
		return nil, err
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, responseError(resp)
	}

	var result Extraction

	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}

	return &result, nil
}
