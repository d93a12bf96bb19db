package mcp

import (
	"context"
	"net/http"
	"sync"

	"github.com/gbarnett-hz/langchain/config"

	"github.com/go-chi/chi/v5"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type Handler struct {
	*config.Config

	mu    sync.Mutex
	cache map[string]*mcp.Server
}

func New(cfg *config.Config) (*Handler, error) {
	h := &Handler{
		Config: cfg,

		cache: make(map[string]*mcp.Server),
	}

	return h, nil
}

func (h *Handler) Attach(r chi.Router) {
	r.HandleFunc("/mcp", h.handleMCP)
	r.HandleFunc("/mcp/{id}", h.handleMCP)
}

// getServer builds the MCP server for id once. Tools are static for the
// lifetime of the configuration.
func (h *Handler) getServer(ctx context.Context, id string) (*mcp.Server, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if s, ok := h.cache[id]; ok {
		return s, nil
	}

	p, err := h.MCP(id)

	if err != nil {
		return nil, err
	}

	s, err := p.Server(ctx)

	if err != nil {
		return nil, err
	}

	h.cache[id] = s

	return s, nil
}

func (h *Handler) handleMCP(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if _, err := h.getServer(r.Context(), id); err != nil {
		http.Error(w, "MCP not found", http.StatusNotFound)
		return
	}

	getServer := func(request *http.Request) *mcp.Server {
		s, err := h.getServer(request.Context(), id)

		if err != nil {
			return nil
		}

		return s
	}

	handler := mcp.NewStreamableHTTPHandler(getServer, &mcp.StreamableHTTPOptions{
		Stateless: true,
	})

	handler.ServeHTTP(w, r)
}
