package client

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"github.com/gbarnett-hz/langchain/server/api"
)

type Document = api.Document

type DocumentRequest = api.DocumentsRequest

type DocumentService struct {
	Options []RequestOption
}

func NewDocumentService(options ...RequestOption) DocumentService {
	return DocumentService{
		Options: options,
	}
}

// New splits texts into documents. Each document carries the metadata of
// its source text plus source_index and start_index.
func (r *DocumentService) New(ctx context.Context, input DocumentRequest, options ...RequestOption) ([]Document, error) {
	c := newRequestConfig(append(r.Options, options...)...)

	body, err := json.Marshal(input)

	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.URL+"/v1/documents", bytes.NewReader(body))

	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.Client.Do(c.newRequest(req))

	if err != nil {
		return nil, err
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, responseError(resp)
	}

	var result []Document

	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}

	return result, nil
}
