package tokenizer

import (
	"fmt"
	"sync"

	"github.com/gbarnett-hz/langchain/pkg/text"

	"github.com/pkoukk/tiktoken-go"
)

const DefaultEncoding = "cl100k_base"

// Tokenizer counts tiktoken tokens. The encoding is loaded on first use.
type Tokenizer struct {
	encoding string

	once sync.Once
	tke  *tiktoken.Tiktoken
	err  error
}

type Option func(*Tokenizer)

// WithEncoding selects an encoding ("cl100k_base", "o200k_base", ...) or a
// model name ("gpt-4o", ...).
func WithEncoding(encoding string) Option {
	return func(t *Tokenizer) {
		t.encoding = encoding
	}
}

func New(options ...Option) *Tokenizer {
	t := &Tokenizer{
		encoding: DefaultEncoding,
	}

	for _, option := range options {
		option(t)
	}

	return t
}

func (t *Tokenizer) load() (*tiktoken.Tiktoken, error) {
	t.once.Do(func() {
		tke, err := tiktoken.GetEncoding(t.encoding)

		if err != nil {
			tke, err = tiktoken.EncodingForModel(t.encoding)
		}

		if err != nil {
			t.err = fmt.Errorf("load encoding %s: %w", t.encoding, err)
			return
		}

		t.tke = tke
	})

	return t.tke, t.err
}

// Load resolves the encoding eagerly so configuration errors surface before
// the first measurement.
func (t *Tokenizer) Load() error {
	_, err := t.load()
	return err
}

func (t *Tokenizer) Count(input string) int {
	tke, err := t.load()

	if err != nil {
		panic(err)
	}

	return len(tke.Encode(input, nil, nil))
}

// LengthFunc adapts the tokenizer to the splitter.
func (t *Tokenizer) LengthFunc() text.LengthFunc {
	return t.Count
}
