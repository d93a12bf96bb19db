package static

import (
	"context"
	"crypto/subtle"
	"errors"
	"net/http"

	"github.com/gbarnett-hz/langchain/pkg/auth"
)

var _ auth.Provider = &Provider{}

// Provider accepts requests carrying one of a fixed set of bearer tokens.
type Provider struct {
	tokens [][]byte
}

func New(tokens ...string) (*Provider, error) {
	p := &Provider{}

	for _, t := range tokens {
		if t == "" {
			continue
		}

		p.tokens = append(p.tokens, []byte(t))
	}

	if len(p.tokens) == 0 {
		return nil, errors.New("static authorizer requires a token")
	}

	return p, nil
}

func (p *Provider) Authenticate(ctx context.Context, r *http.Request) (context.Context, error) {
	token, err := auth.BearerToken(r)

	if err != nil {
		return ctx, err
	}

	for _, t := range p.tokens {
		if subtle.ConstantTimeCompare([]byte(token), t) == 1 {
			return auth.WithUser(ctx, "static"), nil
		}
	}

	return ctx, errors.New("invalid token")
}
