package client

import (
	"errors"
	"io"
	"net/http"
	"strings"
)

type Client struct {
	Segments    SegmentService
	Extractions ExtractionService

	Documents DocumentService
}

func New(url string, options ...RequestOption) *Client {
	options = append(options, WithURL(url))

	return &Client{
		Segments:    NewSegmentService(options...),
		Extractions: NewExtractionService(options...),

		Documents: NewDocumentService(options...),
	}
}

func (c *RequestConfig) newRequest(r *http.Request) *http.Request {
	if c.Token != "" {
		r.Header.Set("Authorization", "Bearer "+c.Token)
	}

	return r
}

// responseError turns a failed response into an error carrying the
// message returned by the server.
func responseError(resp *http.Response) error {
	data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

	if msg := strings.TrimSpace(string(data)); msg != "" {
		return errors.New(resp.Status + ": " + msg)
	}

	return errors.New(resp.Status)
}

func Ptr[T any](v T) *T {
	return &v
}
