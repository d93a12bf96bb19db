package config

import (
	"errors"
	"strings"

	"github.com/gbarnett-hz/langchain/pkg/auth"
	"github.com/gbarnett-hz/langchain/pkg/auth/header"
	"github.com/gbarnett-hz/langchain/pkg/auth/oidc"
	"github.com/gbarnett-hz/langchain/pkg/auth/static"
)

type authorizerConfig struct {
	Type string `yaml:"type"`

	Token  string   `yaml:"token"`
	Tokens []string `yaml:"tokens"`

	Issuer   string `yaml:"issuer"`
	Audience string `yaml:"audience"`

	UserHeader  string `yaml:"user_header"`
	EmailHeader string `yaml:"email_header"`
}

func (c *Config) registerAuthorizer(f *configFile) error {
	for _, a := range f.Authorizers {
		authorizer, err := createAuthorizer(a)

		if err != nil {
			return err
		}

		c.Authorizers = append(c.Authorizers, authorizer)
	}

	return nil
}

func createAuthorizer(cfg authorizerConfig) (auth.Provider, error) {
	switch strings.ToLower(cfg.Type) {
	case "header":
		return headerAuthorizer(cfg)

	case "static":
		return staticAuthorizer(cfg)

	case "oidc":
		return oidcAuthorizer(cfg)

	default:
		return nil, errors.New("invalid authorizer type: " + cfg.Type)
	}
}

func headerAuthorizer(cfg authorizerConfig) (auth.Provider, error) {
	var options []header.Option

	if cfg.UserHeader != "" {
		options = append(options, header.WithUserHeader(cfg.UserHeader))
	}

	if cfg.EmailHeader != "" {
		options = append(options, header.WithEmailHeader(cfg.EmailHeader))
	}

	return header.New(options...)
}

func staticAuthorizer(cfg authorizerConfig) (auth.Provider, error) {
	return static.New(append(cfg.Tokens, cfg.Token)...)
}

func oidcAuthorizer(cfg authorizerConfig) (auth.Provider, error) {
	return oidc.New(cfg.Issuer, cfg.Audience)
}
