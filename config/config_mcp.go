package config

import (
	"errors"

	"github.com/gbarnett-hz/langchain/pkg/mcp"
	"github.com/gbarnett-hz/langchain/pkg/tool"
)

func (cfg *Config) RegisterMCP(id string, s *mcp.Server) {
	if cfg.mcps == nil {
		cfg.mcps = make(map[string]*mcp.Server)
	}

	if _, ok := cfg.mcps[""]; !ok {
		cfg.mcps[""] = s
	}

	cfg.mcps[id] = s
}

func (cfg *Config) MCP(id string) (*mcp.Server, error) {
	if cfg.mcps != nil {
		if s, ok := cfg.mcps[id]; ok {
			return s, nil
		}
	}

	return nil, errors.New("mcp not found: " + id)
}

type mcpConfig struct {
	Name string `yaml:"name"`

	Tools []string `yaml:"tools"`

	Instructions string `yaml:"instructions"`
}

func (cfg *Config) registerMCP(f *configFile) error {
	var configs map[string]mcpConfig

	if err := decodeNode(&f.MCPs, &configs); err != nil {
		return err
	}

	for _, node := range f.MCPs.Content {
		id := node.Value

		config, ok := configs[id]

		if !ok {
			continue
		}

		var tools []tool.Provider

		for _, t := range config.Tools {
			p, err := cfg.Tool(t)

			if err != nil {
				return err
			}

			tools = append(tools, p)
		}

		if len(config.Tools) == 0 {
			tools = cfg.Tools()
		}

		name := config.Name

		if name == "" {
			name = id
		}

		var options []mcp.Option

		if config.Instructions != "" {
			options = append(options, mcp.WithInstructions(config.Instructions))
		}

		s, err := mcp.New(name, tools, options...)

		if err != nil {
			return err
		}

		cfg.RegisterMCP(id, s)
	}

	if len(cfg.mcps) == 0 {
		s, err := mcp.New("segmenter", cfg.Tools())

		if err != nil {
			return err
		}

		cfg.RegisterMCP("default", s)
	}

	return nil
}
