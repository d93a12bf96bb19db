package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gbarnett-hz/langchain/pkg/limiter"
	"github.com/gbarnett-hz/langchain/pkg/otel"
	"github.com/gbarnett-hz/langchain/pkg/segmenter"
	"github.com/gbarnett-hz/langchain/pkg/text"
	"github.com/gbarnett-hz/langchain/pkg/tokenizer"

	segtext "github.com/gbarnett-hz/langchain/pkg/segmenter/text"
)

func (cfg *Config) RegisterSegmenter(id string, p segmenter.Provider) {
	if cfg.segmenters == nil {
		cfg.segmenters = make(map[string]segmenter.Provider)
	}

	if _, ok := cfg.segmenters[""]; !ok {
		cfg.segmenters[""] = p
	}

	cfg.segmenters[id] = p
}

func (cfg *Config) Segmenter(id string) (segmenter.Provider, error) {
	if cfg.segmenters != nil {
		if s, ok := cfg.segmenters[id]; ok {
			return s, nil
		}
	}

	return nil, errors.New("segmenter not found: " + id)
}

type segmenterConfig struct {
	Type string `yaml:"type"`

	ChunkSize    *int `yaml:"chunk_size"`
	ChunkOverlap *int `yaml:"chunk_overlap"`

	Separators     []string `yaml:"separators"`
	SeparatorRegex bool     `yaml:"separator_regex"`

	KeepSeparator   string `yaml:"keep_separator"`
	StripWhitespace *bool  `yaml:"strip_whitespace"`
	Normalize       bool   `yaml:"normalize"`

	Length   string `yaml:"length"`
	Encoding string `yaml:"encoding"`

	Limit *int `yaml:"limit"`
}

func (cfg *Config) registerSegmenters(f *configFile) error {
	var configs map[string]segmenterConfig

	if err := decodeNode(&f.Segmenters, &configs); err != nil {
		return err
	}

	for _, node := range f.Segmenters.Content {
		id := node.Value

		config, ok := configs[id]

		if !ok {
			continue
		}

		s, err := createSegmenter(config)

		if err != nil {
			return fmt.Errorf("segmenter %s: %w", id, err)
		}

		s = limiter.NewSegmenter(createLimiter(config.Limit), s)
		s = otel.NewSegmenter(config.Type, id, s)

		cfg.RegisterSegmenter(id, s)
	}

	if len(cfg.segmenters) == 0 {
		s, err := segtext.New()

		if err != nil {
			return err
		}

		cfg.RegisterSegmenter("default", otel.NewSegmenter("text", "default", s))
	}

	return nil
}

func createSegmenter(cfg segmenterConfig) (segmenter.Provider, error) {
	switch strings.ToLower(cfg.Type) {
	case "", "text":
		return textSegmenter(cfg)

	default:
		return nil, errors.New("invalid segmenter type: " + cfg.Type)
	}
}

func textSegmenter(cfg segmenterConfig) (segmenter.Provider, error) {
	var options []segtext.Option

	if cfg.ChunkSize != nil {
		options = append(options, segtext.WithChunkSize(*cfg.ChunkSize))
	}

	if cfg.ChunkOverlap != nil {
		options = append(options, segtext.WithChunkOverlap(*cfg.ChunkOverlap))
	}

	if len(cfg.Separators) > 0 {
		options = append(options, segtext.WithSeparators(cfg.Separators...))
	}

	options = append(options, segtext.WithSeparatorRegex(cfg.SeparatorRegex))

	keep, err := text.ParseKeepSeparator(cfg.KeepSeparator)

	if err != nil {
		return nil, err
	}

	options = append(options, segtext.WithKeepSeparator(keep))

	if cfg.StripWhitespace != nil {
		options = append(options, segtext.WithStripWhitespace(*cfg.StripWhitespace))
	}

	options = append(options, segtext.WithNormalize(cfg.Normalize))

	length, err := createLengthFunc(cfg)

	if err != nil {
		return nil, err
	}

	options = append(options, segtext.WithLengthFunc(length))

	return segtext.New(options...)
}

func createLengthFunc(cfg segmenterConfig) (text.LengthFunc, error) {
	switch strings.ToLower(cfg.Length) {
	case "", "runes", "characters":
		return text.RuneCount, nil

	case "bytes":
		return text.ByteCount, nil

	case "tokens":
		var options []tokenizer.Option

		if cfg.Encoding != "" {
			options = append(options, tokenizer.WithEncoding(cfg.Encoding))
		}

		t := tokenizer.New(options...)

		// the encoding is fetched on first use, fail at startup instead
		if err := t.Load(); err != nil {
			return nil, err
		}

		return t.LengthFunc(), nil

	default:
		return nil, errors.New("invalid length unit: " + cfg.Length)
	}
}
