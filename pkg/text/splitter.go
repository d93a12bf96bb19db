package text

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

var (
	ErrInvalidChunkSize    = errors.New("chunk size must be greater than zero")
	ErrInvalidChunkOverlap = errors.New("chunk overlap must be smaller than chunk size")
	ErrInvalidSeparator    = errors.New("invalid separator pattern")
)

const (
	DefaultChunkSize    = 4000
	DefaultChunkOverlap = 200
)

// DefaultSeparators breaks on paragraphs, then lines, then words, then runes.
var DefaultSeparators = []string{
	"\n\n",
	"\n",
	" ",
	"",
}

// Chunk is a segment of the source text. Offset is the byte offset of
// Text within the source.
type Chunk struct {
	Text   string
	Offset int
}

// Splitter recursively divides text on a separator hierarchy and merges the
// pieces into chunks of at most ChunkSize, as measured by its LengthFunc.
// A Splitter is immutable and safe for concurrent use.
type Splitter struct {
	chunkSize    int
	chunkOverlap int

	patterns   []string
	separators []separator

	lenFunc LengthFunc

	regex      bool
	keep       KeepSeparator
	trim       bool
	normalize  bool
	startIndex bool
}

type Option func(*Splitter)

func WithChunkSize(size int) Option {
	return func(s *Splitter) {
		s.chunkSize = size
	}
}

func WithChunkOverlap(overlap int) Option {
	return func(s *Splitter) {
		s.chunkOverlap = overlap
	}
}

func WithSeparators(separators ...string) Option {
	return func(s *Splitter) {
		s.patterns = separators
	}
}

func WithSeparatorRegex(regex bool) Option {
	return func(s *Splitter) {
		s.regex = regex
	}
}

func WithKeepSeparator(keep KeepSeparator) Option {
	return func(s *Splitter) {
		s.keep = keep
	}
}

func WithLengthFunc(fn LengthFunc) Option {
	return func(s *Splitter) {
		s.lenFunc = fn
	}
}

func WithStripWhitespace(trim bool) Option {
	return func(s *Splitter) {
		s.trim = trim
	}
}

// WithNormalize collapses runs of whitespace before splitting. Chunk offsets
// then refer to the normalized text.
func WithNormalize(normalize bool) Option {
	return func(s *Splitter) {
		s.normalize = normalize
	}
}

// WithStartIndex adds the chunk offset as "start_index" to document metadata.
func WithStartIndex(startIndex bool) Option {
	return func(s *Splitter) {
		s.startIndex = startIndex
	}
}

func New(options ...Option) (*Splitter, error) {
	s := &Splitter{
		chunkSize:    DefaultChunkSize,
		chunkOverlap: DefaultChunkOverlap,

		patterns: DefaultSeparators,

		lenFunc: RuneCount,

		keep: KeepSeparatorStart,
		trim: true,
	}

	for _, option := range options {
		option(s)
	}

	if s.chunkSize <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidChunkSize, s.chunkSize)
	}

	if s.chunkOverlap < 0 || s.chunkOverlap >= s.chunkSize {
		return nil, fmt.Errorf("%w: overlap %d, size %d", ErrInvalidChunkOverlap, s.chunkOverlap, s.chunkSize)
	}

	if s.lenFunc == nil {
		s.lenFunc = RuneCount
	}

	if !s.keep.valid() {
		return nil, fmt.Errorf("invalid keep separator policy: %d", s.keep)
	}

	separators, err := compileSeparators(s.patterns, s.regex)

	if err != nil {
		return nil, err
	}

	s.patterns = append([]string(nil), s.patterns...)
	s.separators = separators

	return s, nil
}

func (s *Splitter) ChunkSize() int {
	return s.chunkSize
}

func (s *Splitter) ChunkOverlap() int {
	return s.chunkOverlap
}

// Separators returns a copy of the configured separator patterns.
func (s *Splitter) Separators() []string {
	return append([]string(nil), s.patterns...)
}

// Split returns the chunks of text in source order.
func (s *Splitter) Split(text string) []string {
	chunks := s.SplitChunks(text)

	result := make([]string, 0, len(chunks))

	for _, c := range chunks {
		result = append(result, c.Text)
	}

	return result
}

// SplitChunks is like Split but also reports where each chunk starts.
func (s *Splitter) SplitChunks(text string) []Chunk {
	if s.normalize {
		text = Normalize(text)
	}

	if text == "" {
		return []Chunk{}
	}

	pieces := s.divide(text)

	return s.merge(pieces)
}

func (s *Splitter) length(text string) int {
	return s.lenFunc(text)
}

// chunk builds the output unit for a finished window. It reports false if
// nothing is left after whitespace stripping.
func (s *Splitter) chunk(text string, offset int) (Chunk, bool) {
	if s.trim {
		trimmed := strings.TrimLeftFunc(text, unicode.IsSpace)

		offset += len(text) - len(trimmed)
		text = strings.TrimRightFunc(trimmed, unicode.IsSpace)
	}

	if text == "" {
		return Chunk{}, false
	}

	return Chunk{
		Text:   text,
		Offset: offset,
	}, true
}
