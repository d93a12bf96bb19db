package oidc

import (
	"context"
	"net/http"

	"github.com/gbarnett-hz/langchain/pkg/auth"

	"github.com/coreos/go-oidc/v3/oidc"
)

var _ auth.Provider = &Provider{}

// Provider verifies bearer tokens as ID tokens of an OpenID Connect
// issuer.
type Provider struct {
	verifier *oidc.IDTokenVerifier
}

func New(issuer, audience string) (*Provider, error) {
	provider, err := oidc.NewProvider(context.Background(), issuer)

	if err != nil {
		return nil, err
	}

	cfg := &oidc.Config{
		ClientID:          audience,
		SkipClientIDCheck: audience == "",
	}

	return &Provider{
		verifier: provider.Verifier(cfg),
	}, nil
}

func (p *Provider) Authenticate(ctx context.Context, r *http.Request) (context.Context, error) {
	token, err := auth.BearerToken(r)

	if err != nil {
		return ctx, err
	}

	idtoken, err := p.verifier.Verify(ctx, token)

	if err != nil {
		return ctx, err
	}

	var claims struct {
		Email string `json:"email"`
	}

	_ = idtoken.Claims(&claims)

	ctx = auth.WithUser(ctx, idtoken.Subject)
	ctx = auth.WithEmail(ctx, claims.Email)

	return ctx, nil
}
