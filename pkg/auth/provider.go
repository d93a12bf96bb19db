package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"
)

type contextKey string

const (
	UserContextKey  contextKey = "auth.user"
	EmailContextKey contextKey = "auth.email"
)

var (
	ErrMissingHeader = errors.New("missing authorization header")
	ErrInvalidHeader = errors.New("invalid authorization header")
)

type Provider interface {
	Authenticate(ctx context.Context, r *http.Request) (context.Context, error)
}

func WithUser(ctx context.Context, user string) context.Context {
	if user == "" {
		return ctx
	}

	return context.WithValue(ctx, UserContextKey, user)
}

func WithEmail(ctx context.Context, email string) context.Context {
	if email == "" {
		return ctx
	}

	return context.WithValue(ctx, EmailContextKey, email)
}

func User(ctx context.Context) string {
	user, _ := ctx.Value(UserContextKey).(string)
	return user
}

func Email(ctx context.Context) string {
	email, _ := ctx.Value(EmailContextKey).(string)
	return email
}

// BearerToken returns the token of the Authorization header of r.
func BearerToken(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")

	if header == "" {
		return "", ErrMissingHeader
	}

	scheme, token, ok := strings.Cut(header, " ")

	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", ErrInvalidHeader
	}

	token = strings.TrimSpace(token)

	if token == "" {
		return "", ErrInvalidHeader
	}

	return token, nil
}
