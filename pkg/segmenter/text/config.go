package text

import (
	"github.com/gbarnett-hz/langchain/pkg/text"
)

func WithChunkSize(size int) Option {
	return func(p *Provider) {
		p.chunkSize = size
	}
}

func WithChunkOverlap(overlap int) Option {
	return func(p *Provider) {
		p.chunkOverlap = overlap
	}
}

// WithSeparators fixes the separator hierarchy, disabling presets.
func WithSeparators(separators ...string) Option {
	return func(p *Provider) {
		p.separators = separators
	}
}

func WithSeparatorRegex(regex bool) Option {
	return func(p *Provider) {
		p.regex = regex
	}
}

func WithKeepSeparator(keep text.KeepSeparator) Option {
	return func(p *Provider) {
		p.keep = keep
	}
}

func WithStripWhitespace(trim bool) Option {
	return func(p *Provider) {
		p.trim = trim
	}
}

func WithNormalize(normalize bool) Option {
	return func(p *Provider) {
		p.normalize = normalize
	}
}

func WithLengthFunc(fn text.LengthFunc) Option {
	return func(p *Provider) {
		p.lenFunc = fn
	}
}
