package otel

import (
	"context"

	"github.com/gbarnett-hz/langchain/pkg/auth"

	"go.opentelemetry.io/otel/attribute"
)

type KeyValue = attribute.KeyValue

func String(key string, val string) KeyValue {
	return attribute.String(key, val)
}

func Int(key string, val int) KeyValue {
	return attribute.Int(key, val)
}

func KeyValues(attrs ...[]KeyValue) []KeyValue {
	var result []KeyValue

	for _, a := range attrs {
		result = append(result, a...)
	}

	return result
}

// EndUserAttrs returns the authenticated user of ctx as span attributes.
func EndUserAttrs(ctx context.Context) []KeyValue {
	var attrs []KeyValue

	if user := auth.User(ctx); user != "" {
		attrs = append(attrs, attribute.String("enduser.id", user))
	}

	if email := auth.Email(ctx); email != "" {
		attrs = append(attrs, attribute.String("enduser.email", email))
	}

	return attrs
}
