package segment_test

import (
	"context"
	"testing"

	"github.com/gbarnett-hz/langchain/pkg/tool"
	"github.com/gbarnett-hz/langchain/pkg/tool/segment"

	segtext "github.com/gbarnett-hz/langchain/pkg/segmenter/text"

	"github.com/stretchr/testify/require"
)

func newClient(t *testing.T) *segment.Client {
	t.Helper()

	p, err := segtext.New()
	require.NoError(t, err)

	c, err := segment.New(p)
	require.NoError(t, err)

	return c
}

func TestTools(t *testing.T) {
	c := newClient(t)

	tools, err := c.Tools(context.Background())

	require.NoError(t, err)
	require.Len(t, tools, 1)
	require.Equal(t, "segment_text", tools[0].Name)
	require.Equal(t, "object", tools[0].Parameters["type"])
}

func TestExecute(t *testing.T) {
	c := newClient(t)

	result, err := c.Execute(context.Background(), "segment_text", map[string]any{
		"text":            "1234567890",
		"segment_length":  float64(4),
		"segment_overlap": float64(2),
	})

	require.NoError(t, err)
	require.Equal(t, []segment.Result{
		{Text: "1234", Offset: 0},
		{Text: "3456", Offset: 2},
		{Text: "5678", Offset: 4},
		{Text: "7890", Offset: 6},
	}, result)
}

func TestExecuteInvalid(t *testing.T) {
	c := newClient(t)

	_, err := c.Execute(context.Background(), "other", map[string]any{"text": "x"})
	require.ErrorIs(t, err, tool.ErrInvalidTool)

	_, err = c.Execute(context.Background(), "segment_text", map[string]any{})
	require.Error(t, err)
}
