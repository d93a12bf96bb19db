package tool

import (
	"context"
	"errors"
)

var (
	ErrInvalidTool = errors.New("invalid tool")
)

type Tool struct {
	Name        string
	Description string

	Parameters map[string]any
}

type Provider interface {
	Tools(ctx context.Context) ([]Tool, error)
	Execute(ctx context.Context, name string, parameters map[string]any) (any, error)
}

// NormalizeSchema fills in the parts of a JSON schema that tool clients
// expect to be present.
func NormalizeSchema(schema map[string]any) map[string]any {
	if len(schema) == 0 {
		return map[string]any{
			"type":       "object",
			"properties": map[string]any{},
		}
	}

	if schema["type"] == nil {
		if schema["items"] != nil {
			schema["type"] = "array"
		} else {
			schema["type"] = "object"
		}
	}

	switch schema["type"] {
	case "object":
		if schema["properties"] == nil {
			schema["properties"] = map[string]any{}
		}

	case "array":
		if schema["items"] == nil {
			schema["items"] = map[string]any{"type": "string"}
		}
	}

	return schema
}
