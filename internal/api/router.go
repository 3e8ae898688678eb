// Package api serves the MCP tools over streamable HTTP together with the
// operational endpoints: /healthz and /metrics.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/mark3labs/mcp-go/server"

	"github.com/ignite/listmonk-mcp/internal/domain"
	"github.com/ignite/listmonk-mcp/internal/metrics"
	"github.com/ignite/listmonk-mcp/internal/pkg/httputil"
	"github.com/ignite/listmonk-mcp/internal/pkg/logger"
)

// HealthChecker reports whether listmonk is reachable. *listmonk.Client
// satisfies it.
type HealthChecker interface {
	GetHealth(ctx context.Context) (domain.Health, error)
}

// Options configures the HTTP transport.
type Options struct {
	// AllowedOrigins enables CORS for browser MCP clients. Empty disables it.
	AllowedOrigins []string
	HealthTimeout  time.Duration
}

// NewRouter mounts the MCP endpoint at /mcp. m may be nil, in which case
// /metrics answers 404.
func NewRouter(mcpServer *server.MCPServer, health HealthChecker, m *metrics.Collector, opts Options) *chi.Mux {
	if opts.HealthTimeout <= 0 {
		opts.HealthTimeout = 5 * time.Second
	}

	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(requestLogger)

	if len(opts.AllowedOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   opts.AllowedOrigins,
			AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "Mcp-Session-Id", "Mcp-Protocol-Version"},
			ExposedHeaders:   []string{"Mcp-Session-Id"},
			AllowCredentials: false,
			MaxAge:           300,
		}))
	}

	r.Get("/healthz", healthz(health, opts.HealthTimeout))
	r.Handle("/metrics", m.Handler())
	r.Handle("/mcp", server.NewStreamableHTTPServer(mcpServer))

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		httputil.NotFound(w, "not found")
	})

	return r
}

func healthz(health HealthChecker, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		h, err := health.GetHealth(ctx)
		if err != nil {
			logger.Warn("health check failed", "error", err.Error())
			httputil.ServiceUnavailable(w, "listmonk unreachable", map[string]string{"cause": err.Error()})
			return
		}
		if !h.Healthy {
			httputil.ServiceUnavailable(w, "listmonk unhealthy", h)
			return
		}
		httputil.OK(w, map[string]any{"status": "ok", "listmonk": h})
	}
}

// requestLogger logs one line per HTTP request.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		logger.Info("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration_ms", time.Since(start).Milliseconds(),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}
