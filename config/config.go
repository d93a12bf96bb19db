package config

import (
	"bytes"
	"os"

	"github.com/gbarnett-hz/langchain/pkg/auth"
	"github.com/gbarnett-hz/langchain/pkg/extractor"
	"github.com/gbarnett-hz/langchain/pkg/mcp"
	"github.com/gbarnett-hz/langchain/pkg/segmenter"
	"github.com/gbarnett-hz/langchain/pkg/tool"

	"golang.org/x/time/rate"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Address string

	Authorizers []auth.Provider

	extractors map[string]extractor.Provider
	segmenters map[string]segmenter.Provider

	tools map[string]tool.Provider
	mcps  map[string]*mcp.Server
}

// Parse reads the configuration at path. An empty path yields the defaults.
func Parse(path string) (*Config, error) {
	file := new(configFile)

	if path != "" {
		f, err := parseFile(path)

		if err != nil {
			return nil, err
		}

		file = f
	}

	c := &Config{
		Address: ":8080",
	}

	if file.Address != "" {
		c.Address = file.Address
	}

	if err := c.registerAuthorizer(file); err != nil {
		return nil, err
	}

	if err := c.registerExtractors(file); err != nil {
		return nil, err
	}

	if err := c.registerSegmenters(file); err != nil {
		return nil, err
	}

	if err := c.registerTools(file); err != nil {
		return nil, err
	}

	if err := c.registerMCP(file); err != nil {
		return nil, err
	}

	return c, nil
}

type configFile struct {
	Address string `yaml:"address"`

	Authorizers []authorizerConfig `yaml:"authorizers"`

	Extractors yaml.Node `yaml:"extractors"`
	Segmenters yaml.Node `yaml:"segmenters"`

	Tools yaml.Node `yaml:"tools"`
	MCPs  yaml.Node `yaml:"mcps"`
}

func parseFile(path string) (*configFile, error) {
	data, err := os.ReadFile(path)

	if err != nil {
		return nil, err
	}

	data = []byte(os.ExpandEnv(string(data)))

	var config configFile

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	if err := decoder.Decode(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// decodeNode decodes a config section with unknown fields rejected.
// yaml.Node.Decode does not honor the KnownFields setting of the file
// decoder, so the node is re-encoded and decoded strictly.
func decodeNode(node *yaml.Node, v any) error {
	if node.IsZero() {
		return nil
	}

	data, err := yaml.Marshal(node)

	if err != nil {
		return err
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	return decoder.Decode(v)
}

func createLimiter(limit *int) *rate.Limiter {
	if limit == nil {
		return nil
	}

	return rate.NewLimiter(rate.Limit(*limit), *limit)
}
