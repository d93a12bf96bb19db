package text_test

import (
	"context"
	"testing"

	"github.com/gbarnett-hz/langchain/pkg/segmenter"
	"github.com/gbarnett-hz/langchain/pkg/text"

	segtext "github.com/gbarnett-hz/langchain/pkg/segmenter/text"

	"github.com/stretchr/testify/require"
)

func segment(t *testing.T, p *segtext.Provider, input string, options *segmenter.SegmentOptions) []segmenter.Segment {
	t.Helper()

	segments, err := p.Segment(context.Background(), input, options)
	require.NoError(t, err)

	return segments
}

func TestSegment(t *testing.T) {
	p, err := segtext.New(segtext.WithChunkSize(30))
	require.NoError(t, err)

	segments := segment(t, p, "Paragraph one.\n\nParagraph two.\n\nParagraph three.", nil)

	require.Equal(t, []segmenter.Segment{
		{Text: "Paragraph one.\n\nParagraph two.", Offset: 0},
		{Text: "Paragraph three.", Offset: 32},
	}, segments)
}

func TestSegmentEmpty(t *testing.T) {
	p, err := segtext.New()
	require.NoError(t, err)

	segments := segment(t, p, "", nil)

	require.NotNil(t, segments)
	require.Empty(t, segments)
}

func TestSegmentOverrides(t *testing.T) {
	p, err := segtext.New()
	require.NoError(t, err)

	size := 4
	overlap := 2

	segments := segment(t, p, "1234567890", &segmenter.SegmentOptions{
		SegmentLength:  &size,
		SegmentOverlap: &overlap,
	})

	require.Len(t, segments, 4)
	require.Equal(t, "3456", segments[1].Text)
	require.Equal(t, 2, segments[1].Offset)
}

func TestSegmentInvalidOverride(t *testing.T) {
	p, err := segtext.New()
	require.NoError(t, err)

	size := 10
	overlap := 10

	_, err = p.Segment(context.Background(), "some text", &segmenter.SegmentOptions{
		SegmentLength:  &size,
		SegmentOverlap: &overlap,
	})

	require.ErrorIs(t, err, text.ErrInvalidChunkOverlap)
}

func TestSegmentLengthOverrideScalesOverlap(t *testing.T) {
	p, err := segtext.New(segtext.WithChunkSize(10), segtext.WithChunkOverlap(5))
	require.NoError(t, err)

	size := 4

	segments := segment(t, p, "1234567890", &segmenter.SegmentOptions{
		SegmentLength: &size,
	})

	require.Equal(t, []segmenter.Segment{
		{Text: "1234", Offset: 0},
		{Text: "3456", Offset: 2},
		{Text: "5678", Offset: 4},
		{Text: "7890", Offset: 6},
	}, segments)
}

func TestSegmentLanguagePreset(t *testing.T) {
	p, err := segtext.New(segtext.WithChunkSize(40))
	require.NoError(t, err)

	input := "func a() {\n\tx := 1\n}\nfunc b() {\n\ty := 2\n}\n"

	segments := segment(t, p, input, &segmenter.SegmentOptions{FileName: "main.go"})

	require.Equal(t, []segmenter.Segment{
		{Text: "func a() {\n\tx := 1\n}", Offset: 0},
		{Text: "func b() {\n\ty := 2\n}", Offset: 21},
	}, segments)

	segments = segment(t, p, input, nil)

	require.Equal(t, []segmenter.Segment{
		{Text: "func a() {\n\tx := 1\n}\nfunc b() {\n\ty := 2", Offset: 0},
		{Text: "}", Offset: 40},
	}, segments)
}

func TestSegmentMarkdown(t *testing.T) {
	p, err := segtext.New(segtext.WithChunkSize(40))
	require.NoError(t, err)

	input := "# Title\nSome intro text here.\n## Part\nMore text follows now.\n\n- a\n- [b](https://x.io)\n"

	segments := segment(t, p, input, nil)

	require.Equal(t, []segmenter.Segment{
		{Text: "# Title\nSome intro text here.", Offset: 0},
		{Text: "## Part\nMore text follows now.", Offset: 30},
		{Text: "- a\n- [b](https://x.io)", Offset: 62},
	}, segments)
}

func TestSegmentConfiguredSeparators(t *testing.T) {
	p, err := segtext.New(
		segtext.WithChunkSize(40),
		segtext.WithSeparators(text.DefaultSeparators...),
	)
	require.NoError(t, err)

	input := "func a() {\n\tx := 1\n}\nfunc b() {\n\ty := 2\n}\n"

	segments := segment(t, p, input, &segmenter.SegmentOptions{FileName: "main.go"})
	require.Len(t, segments, 2)
	require.Equal(t, "}", segments[1].Text)
}

func TestSegmentCancelled(t *testing.T) {
	p, err := segtext.New()
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = p.Segment(ctx, "text", nil)
	require.ErrorIs(t, err, context.Canceled)
}

func TestNewInvalid(t *testing.T) {
	_, err := segtext.New(segtext.WithChunkSize(0))
	require.ErrorIs(t, err, text.ErrInvalidChunkSize)

	_, err = segtext.New(segtext.WithSeparators("("), segtext.WithSeparatorRegex(true))
	require.ErrorIs(t, err, text.ErrInvalidSeparator)
}
