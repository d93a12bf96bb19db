package header

import (
	"context"
	"errors"
	"net/http"
	"regexp"
	"strings"

	"github.com/gbarnett-hz/langchain/pkg/auth"
)

var _ auth.Provider = &Provider{}

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Provider trusts identity headers set by an authenticating proxy in
// front of the server.
type Provider struct {
	userHeader  string
	emailHeader string
}

type Option func(*Provider)

func New(options ...Option) (*Provider, error) {
	p := &Provider{
		userHeader:  "X-Forwarded-User",
		emailHeader: "X-Forwarded-Email",
	}

	for _, option := range options {
		option(p)
	}

	return p, nil
}

func (p *Provider) Authenticate(ctx context.Context, r *http.Request) (context.Context, error) {
	user := strings.TrimSpace(r.Header.Get(p.userHeader))
	email := strings.TrimSpace(r.Header.Get(p.emailHeader))

	if user == "" && email == "" {
		return ctx, errors.New("missing identity headers")
	}

	if email == "" && emailPattern.MatchString(user) {
		email = user
	}

	ctx = auth.WithUser(ctx, user)
	ctx = auth.WithEmail(ctx, email)

	return ctx, nil
}
