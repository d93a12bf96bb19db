package text

import (
	"context"

	"github.com/gbarnett-hz/langchain/pkg/segmenter"
	"github.com/gbarnett-hz/langchain/pkg/text"
)

var _ segmenter.Provider = &Provider{}

type Provider struct {
	chunkSize    int
	chunkOverlap int

	separators []string
	regex      bool

	keep      text.KeepSeparator
	trim      bool
	normalize bool

	lenFunc text.LengthFunc
}

type Option func(*Provider)

func New(options ...Option) (*Provider, error) {
	p := &Provider{
		chunkSize:    1500,
		chunkOverlap: 0,

		keep: text.KeepSeparatorStart,
		trim: true,

		lenFunc: text.RuneCount,
	}

	for _, option := range options {
		option(p)
	}

	// fail on invalid defaults at construction, not on the first request
	if _, err := p.createSplitter(nil, ""); err != nil {
		return nil, err
	}

	return p, nil
}

func (p *Provider) Segment(ctx context.Context, input string, options *segmenter.SegmentOptions) ([]segmenter.Segment, error) {
	if options == nil {
		options = new(segmenter.SegmentOptions)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	splitter, err := p.createSplitter(options, input)

	if err != nil {
		return nil, err
	}

	segments := []segmenter.Segment{}

	for _, c := range splitter.SplitChunks(input) {
		segments = append(segments, segmenter.Segment{
			Text:   c.Text,
			Offset: c.Offset,
		})
	}

	return segments, nil
}

func (p *Provider) createSplitter(options *segmenter.SegmentOptions, input string) (*text.Splitter, error) {
	if options == nil {
		options = new(segmenter.SegmentOptions)
	}

	size := p.chunkSize
	overlap := p.chunkOverlap

	if options.SegmentLength != nil {
		size = *options.SegmentLength
	}

	if options.SegmentOverlap != nil {
		overlap = *options.SegmentOverlap
	} else if size > 0 && overlap >= size {
		// only the length was overridden: keep the configured overlap ratio
		overlap = size * p.chunkOverlap / p.chunkSize
	}

	separators, regex := p.selectSeparators(options.FileName, input)

	return text.New(
		text.WithChunkSize(size),
		text.WithChunkOverlap(overlap),

		text.WithSeparators(separators...),
		text.WithSeparatorRegex(regex),

		text.WithKeepSeparator(p.keep),
		text.WithStripWhitespace(p.trim),
		text.WithNormalize(p.normalize),

		text.WithLengthFunc(p.lenFunc),
	)
}

// selectSeparators prefers configured separators, then a preset for the
// file type, then the markdown preset for markdown-looking input.
func (p *Provider) selectSeparators(name, input string) ([]string, bool) {
	if len(p.separators) > 0 {
		return p.separators, p.regex
	}

	if lang, ok := text.LanguageFromFileName(name); ok {
		if separators, err := text.SeparatorsForLanguage(lang); err == nil {
			return separators, true
		}
	}

	if input != "" && text.IsMarkdown(input) {
		if separators, err := text.SeparatorsForLanguage(text.LanguageMarkdown); err == nil {
			return separators, true
		}
	}

	return text.DefaultSeparators, false
}
