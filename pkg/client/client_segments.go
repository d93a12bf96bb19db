package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gbarnett-hz/langchain/server/api"
)

type SegmentService struct {
	Options []RequestOption
}

func NewSegmentService(options ...RequestOption) SegmentService {
	return SegmentService{
		Options: options,
	}
}

type Segment = api.Segment

type SegmentRequest struct {
	Model string

	Name   string
	Reader io.Reader

	SegmentLength  *int
	SegmentOverlap *int
}

func (r *SegmentService) New(ctx context.Context, input SegmentRequest, options ...RequestOption) ([]Segment, error) {
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

	if input.SegmentLength != nil {
		w.WriteField("segment_length", strconv.Itoa(*input.SegmentLength))
	}

	if input.SegmentOverlap != nil {
		w.WriteField("segment_overlap", strconv.Itoa(*input.SegmentOverlap))
	}

	if err := w.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.URL+"/v1/segment", &data)

	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := c.Client.Do(c.newRequest(req))

	if err != nil {
		return nil, err
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, responseError(resp)
	}

	var result []Segment

	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}

	return result, nil
}
