package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gbarnett-hz/langchain/config"
	"github.com/gbarnett-hz/langchain/pkg/otel"
	"github.com/gbarnett-hz/langchain/server/api"
	"github.com/gbarnett-hz/langchain/server/mcp"
	"github.com/gbarnett-hz/langchain/server/unstructured"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

type Server struct {
	*config.Config
	http.Handler

	api *api.Handler
	mcp *mcp.Handler

	unstructured *unstructured.Handler
}

func New(cfg *config.Config) (*Server, error) {
	apiHandler, err := api.New(cfg)

	if err != nil {
		return nil, err
	}

	mcpHandler, err := mcp.New(cfg)

	if err != nil {
		return nil, err
	}

	unstructuredHandler, err := unstructured.New(cfg)

	if err != nil {
		return nil, err
	}

	r := chi.NewRouter()

	s := &Server{
		Config:  cfg,
		Handler: r,

		api: apiHandler,
		mcp: mcpHandler,

		unstructured: unstructuredHandler,
	}

	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)

	if otel.EnableTelemetry {
		r.Use(otelhttp.NewMiddleware("http"))
	}

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{"Mcp-Session-Id"},
	}))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	r.Group(func(r chi.Router) {
		r.Use(s.handleAuth)

		r.Route("/v1", func(r chi.Router) {
			s.api.Attach(r)
		})

		s.mcp.Attach(r)
		s.unstructured.Attach(r)
	})

	return s, nil
}

// ListenAndServe serves until ctx is cancelled and then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.Address,
		Handler: s,

		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)

	go func() {
		slog.Info("server listening", "address", s.Address)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err

	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

// handleAuth lets a request pass if any authorizer accepts it. Without
// authorizers every request passes.
func (s *Server) handleAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if len(s.Authorizers) == 0 {
			next.ServeHTTP(w, r)
			return
		}

		var errs []error

		for _, a := range s.Authorizers {
			ctx, err := a.Authenticate(r.Context(), r)

			if err != nil {
				errs = append(errs, err)
				continue
			}

			next.ServeHTTP(w, r.WithContext(ctx))
			return
		}

		slog.DebugContext(r.Context(), "request unauthorized", "path", r.URL.Path, "error", errors.Join(errs...))

		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
	})
}
