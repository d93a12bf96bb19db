package segment

import (
	"context"
	"errors"
	"math"

	"github.com/gbarnett-hz/langchain/pkg/segmenter"
	"github.com/gbarnett-hz/langchain/pkg/tool"
)

var _ tool.Provider = (*Client)(nil)

type Client struct {
	name     string
	provider segmenter.Provider
}

type Option func(*Client)

// WithName overrides the tool name, e.g. to expose several segmenters.
func WithName(name string) Option {
	return func(c *Client) {
		c.name = name
	}
}

func New(provider segmenter.Provider, options ...Option) (*Client, error) {
	c := &Client{
		name:     "segment_text",
		provider: provider,
	}

	for _, option := range options {
		option(c)
	}

	return c, nil
}

func (c *Client) Tools(ctx context.Context) ([]tool.Tool, error) {
	return []tool.Tool{
		{
			Name:        c.name,
			Description: "Split a text into overlapping segments of bounded length, breaking on paragraphs, lines and words where possible",

			Parameters: map[string]any{
				"type": "object",

				"properties": map[string]any{
					"text": map[string]any{
						"type":        "string",
						"description": "the text to split",
					},

					"file_name": map[string]any{
						"type":        "string",
						"description": "optional file name of the text, used to pick separators for source code and markdown",
					},

					"segment_length": map[string]any{
						"type":        "integer",
						"description": "optional maximum length of a segment",
					},

					"segment_overlap": map[string]any{
						"type":        "integer",
						"description": "optional length of text shared between neighbouring segments",
					},
				},

				"required": []string{"text"},
			},
		},
	}, nil
}

func (c *Client) Execute(ctx context.Context, name string, parameters map[string]any) (any, error) {
	if name != c.name {
		return nil, tool.ErrInvalidTool
	}

	text, ok := parameters["text"].(string)

	if !ok {
		return nil, errors.New("missing text parameter")
	}

	options := &segmenter.SegmentOptions{}

	if val, ok := parameters["file_name"].(string); ok {
		options.FileName = val
	}

	if val, ok := intParameter(parameters, "segment_length"); ok {
		options.SegmentLength = &val
	}

	if val, ok := intParameter(parameters, "segment_overlap"); ok {
		options.SegmentOverlap = &val
	}

	segments, err := c.provider.Segment(ctx, text, options)

	if err != nil {
		return nil, err
	}

	results := []Result{}

	for _, s := range segments {
		results = append(results, Result{
			Text:   s.Text,
			Offset: s.Offset,
		})
	}

	return results, nil
}

// intParameter reads an integer argument. JSON decoding yields float64.
func intParameter(parameters map[string]any, key string) (int, bool) {
	switch v := parameters[key].(type) {
	case int:
		return v, true

	case float64:
		if v != math.Trunc(v) {
			return 0, false
		}

		return int(v), true
	}

	return 0, false
}
