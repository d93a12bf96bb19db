package config

import (
	"errors"
	"strings"

	"github.com/gbarnett-hz/langchain/pkg/extractor"
	"github.com/gbarnett-hz/langchain/pkg/extractor/multi"
	"github.com/gbarnett-hz/langchain/pkg/extractor/pdf"
	"github.com/gbarnett-hz/langchain/pkg/extractor/text"
	"github.com/gbarnett-hz/langchain/pkg/limiter"
	"github.com/gbarnett-hz/langchain/pkg/otel"
)

func (cfg *Config) RegisterExtractor(id string, p extractor.Provider) {
	if cfg.extractors == nil {
		cfg.extractors = make(map[string]extractor.Provider)
	}

	cfg.extractors[id] = p
}

// Extractor returns the extractor registered as id. The empty id tries all
// registered extractors in configuration order.
func (cfg *Config) Extractor(id string) (extractor.Provider, error) {
	if cfg.extractors != nil {
		if e, ok := cfg.extractors[id]; ok {
			return e, nil
		}
	}

	return nil, errors.New("extractor not found: " + id)
}

type extractorConfig struct {
	Type string `yaml:"type"`

	Limit *int `yaml:"limit"`
}

func (cfg *Config) registerExtractors(f *configFile) error {
	var configs map[string]extractorConfig

	if err := decodeNode(&f.Extractors, &configs); err != nil {
		return err
	}

	var extractors []extractor.Provider

	for _, node := range f.Extractors.Content {
		id := node.Value

		config, ok := configs[id]

		if !ok {
			continue
		}

		e, err := createExtractor(config)

		if err != nil {
			return err
		}

		e = limiter.NewExtractor(createLimiter(config.Limit), e)
		e = otel.NewExtractor(config.Type, id, e)

		extractors = append(extractors, e)

		cfg.RegisterExtractor(id, e)
	}

	if len(extractors) == 0 {
		for _, id := range []string{"text", "pdf"} {
			e, err := createExtractor(extractorConfig{Type: id})

			if err != nil {
				return err
			}

			e = otel.NewExtractor(id, id, e)

			extractors = append(extractors, e)

			cfg.RegisterExtractor(id, e)
		}
	}

	cfg.RegisterExtractor("", multi.New(extractors...))

	return nil
}

func createExtractor(cfg extractorConfig) (extractor.Provider, error) {
	switch strings.ToLower(cfg.Type) {
	case "text":
		return text.New()

	case "pdf":
		return pdf.New()

	default:
		return nil, errors.New("invalid extractor type: " + cfg.Type)
	}
}
