package mcp

import (
	"context"
	"encoding/json"
	"time"

	"github.com/gbarnett-hz/langchain/pkg/tool"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type Server struct {
	impl *mcp.Implementation
	opts *mcp.ServerOptions

	tools []tool.Provider
}

type Option func(*Server)

func WithInstructions(instructions string) Option {
	return func(s *Server) {
		s.opts.Instructions = instructions
	}
}

func WithVersion(version string) Option {
	return func(s *Server) {
		s.impl.Version = version
	}
}

func New(name string, tools []tool.Provider, options ...Option) (*Server, error) {
	s := &Server{
		impl: &mcp.Implementation{
			Name: name,
		},

		opts: &mcp.ServerOptions{
			KeepAlive: time.Second * 30,
		},

		tools: tools,
	}

	for _, option := range options {
		option(s)
	}

	return s, nil
}

// Server builds an MCP server that exposes every tool of the configured
// providers.
func (s *Server) Server(ctx context.Context) (*mcp.Server, error) {
	server := mcp.NewServer(s.impl, s.opts)

	for _, p := range s.tools {
		tools, err := p.Tools(ctx)

		if err != nil {
			return nil, err
		}

		for _, t := range tools {
			data, err := json.Marshal(tool.NormalizeSchema(t.Parameters))

			if err != nil {
				return nil, err
			}

			schema := new(jsonschema.Schema)

			if err := schema.UnmarshalJSON(data); err != nil {
				return nil, err
			}

			server.AddTool(&mcp.Tool{
				Name:        t.Name,
				Description: t.Description,

				InputSchema: schema,
			}, toolHandler(p, t.Name))
		}
	}

	return server, nil
}

func toolHandler(p tool.Provider, name string) mcp.ToolHandler {
	return func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args map[string]any

		if data, err := json.Marshal(req.Params.Arguments); err == nil {
			json.Unmarshal(data, &args)
		}

		result, err := p.Execute(ctx, name, args)

		if err != nil {
			return &mcp.CallToolResult{
				IsError: true,

				Content: []mcp.Content{
					&mcp.TextContent{
						Text: err.Error(),
					},
				},
			}, nil
		}

		text, ok := result.(string)

		if !ok {
			data, err := json.Marshal(result)

			if err != nil {
				return nil, err
			}

			text = string(data)
		}

		return &mcp.CallToolResult{
			Content: []mcp.Content{
				&mcp.TextContent{
					Text: text,
				},
			},
		}, nil
	}
}
