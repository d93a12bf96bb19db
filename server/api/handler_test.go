package api_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gbarnett-hz/langchain/config"
	"github.com/gbarnett-hz/langchain/pkg/text"
	"github.com/gbarnett-hz/langchain/server/api"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T) *httptest.Server {
	t.Helper()

	cfg, err := config.Parse("")
	require.NoError(t, err)

	h, err := api.New(cfg)
	require.NoError(t, err)

	r := chi.NewRouter()

	r.Route("/v1", func(r chi.Router) {
		h.Attach(r)
	})

	s := httptest.NewServer(r)
	t.Cleanup(s.Close)

	return s
}

func multipartBody(t *testing.T, name, content string, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)

	f, err := w.CreateFormFile("file", name)
	require.NoError(t, err)

	_, err = f.Write([]byte(content))
	require.NoError(t, err)

	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}

	require.NoError(t, w.Close())

	return &body, w.FormDataContentType()
}

func TestSegmentFile(t *testing.T) {
	s := newServer(t)

	body, contentType := multipartBody(t, "notes.txt", "Paragraph one.\n\nParagraph two.\n\nParagraph three.", map[string]string{
		"segment_length": "30",
	})

	resp, err := http.Post(s.URL+"/v1/segment", contentType, body)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var segments []api.Segment
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&segments))

	require.Equal(t, []api.Segment{
		{Text: "Paragraph one.\n\nParagraph two.", Offset: 0},
		{Text: "Paragraph three.", Offset: 32},
	}, segments)
}

func TestSegmentForm(t *testing.T) {
	s := newServer(t)

	resp, err := http.PostForm(s.URL+"/v1/segment", url.Values{
		"text":            {"1234567890"},
		"segment_length":  {"4"},
		"segment_overlap": {"2"},
	})
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var segments []api.Segment
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&segments))

	require.Len(t, segments, 4)
	require.Equal(t, api.Segment{Text: "7890", Offset: 6}, segments[3])
}

func TestSegmentRawBody(t *testing.T) {
	s := newServer(t)

	resp, err := http.Post(s.URL+"/v1/segment", "text/plain", strings.NewReader("hello world"))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var segments []api.Segment
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&segments))

	require.Equal(t, []api.Segment{{Text: "hello world", Offset: 0}}, segments)
}

func TestSegmentErrors(t *testing.T) {
	s := newServer(t)

	resp, err := http.PostForm(s.URL+"/v1/segment", url.Values{
		"text":  {"hello"},
		"model": {"missing"},
	})
	require.NoError(t, err)
	resp.Body.Close()

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, err = http.PostForm(s.URL+"/v1/segment", url.Values{
		"text":            {"hello"},
		"segment_length":  {"10"},
		"segment_overlap": {"10"},
	})
	require.NoError(t, err)
	resp.Body.Close()

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestDocuments(t *testing.T) {
	s := newServer(t)

	data, err := json.Marshal(api.DocumentsRequest{
		Texts: []string{"An apple a day", "keeps"},
		Metadata: []map[string]any{
			{"source": "a"},
			{"source": "b"},
		},
		SegmentLength:  ptr(10),
		SegmentOverlap: ptr(0),
	})
	require.NoError(t, err)

	resp, err := http.Post(s.URL+"/v1/documents", "application/json", bytes.NewReader(data))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var docs []api.Document
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&docs))

	require.Equal(t, []api.Document{
		{Text: "An apple a", Metadata: map[string]any{"source": "a", "source_index": float64(0), "start_index": float64(0)}},
		{Text: "day", Metadata: map[string]any{"source": "a", "source_index": float64(0), "start_index": float64(11)}},
		{Text: "keeps", Metadata: map[string]any{"source": "b", "source_index": float64(1), "start_index": float64(0)}},
	}, docs)
}

func TestDocumentsMismatch(t *testing.T) {
	s := newServer(t)

	resp, err := http.Post(s.URL+"/v1/documents", "application/json", strings.NewReader(`{"texts": ["a", "b"], "metadata": [{}]}`))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var buf bytes.Buffer
	_, err = buf.ReadFrom(resp.Body)
	require.NoError(t, err)

	require.Contains(t, buf.String(), text.ErrMetadataMismatch.Error())
}

func TestExtract(t *testing.T) {
	s := newServer(t)

	body, contentType := multipartBody(t, "notes.md", "# Notes", nil)

	resp, err := http.Post(s.URL+"/v1/extract", contentType, body)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var buf bytes.Buffer
	_, err = buf.ReadFrom(resp.Body)
	require.NoError(t, err)

	require.Equal(t, "# Notes", buf.String())
}

func ptr[T any](v T) *T {
	return &v
}
