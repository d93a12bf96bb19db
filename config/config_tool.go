package config

import (
	"errors"
	"slices"
	"strings"

	"github.com/gbarnett-hz/langchain/pkg/tool"
	"github.com/gbarnett-hz/langchain/pkg/tool/segment"
)

func (cfg *Config) RegisterTool(id string, p tool.Provider) {
	if cfg.tools == nil {
		cfg.tools = make(map[string]tool.Provider)
	}

	cfg.tools[id] = p
}

// Tools returns all registered tools ordered by id.
func (cfg *Config) Tools() []tool.Provider {
	var ids []string

	for id := range cfg.tools {
		ids = append(ids, id)
	}

	slices.Sort(ids)

	var tools []tool.Provider

	for _, id := range ids {
		tools = append(tools, cfg.tools[id])
	}

	return tools
}

func (cfg *Config) Tool(id string) (tool.Provider, error) {
	if cfg.tools != nil {
		if p, ok := cfg.tools[id]; ok {
			return p, nil
		}
	}

	return nil, errors.New("tool not found: " + id)
}

type toolConfig struct {
	Type string `yaml:"type"`

	Name      string `yaml:"name"`
	Segmenter string `yaml:"segmenter"`
}

func (cfg *Config) registerTools(f *configFile) error {
	var configs map[string]toolConfig

	if err := decodeNode(&f.Tools, &configs); err != nil {
		return err
	}

	for _, node := range f.Tools.Content {
		id := node.Value

		config, ok := configs[id]

		if !ok {
			continue
		}

		t, err := cfg.createTool(config)

		if err != nil {
			return err
		}

		cfg.RegisterTool(id, t)
	}

	if len(cfg.tools) == 0 {
		t, err := cfg.createTool(toolConfig{Type: "segment"})

		if err != nil {
			return err
		}

		cfg.RegisterTool("segment", t)
	}

	return nil
}

func (cfg *Config) createTool(c toolConfig) (tool.Provider, error) {
	switch strings.ToLower(c.Type) {
	case "segment", "segmenter":
		s, err := cfg.Segmenter(c.Segmenter)

		if err != nil {
			return nil, err
		}

		var options []segment.Option

		if c.Name != "" {
			options = append(options, segment.WithName(c.Name))
		}

		return segment.New(s, options...)

	default:
		return nil, errors.New("invalid tool type: " + c.Type)
	}
}
