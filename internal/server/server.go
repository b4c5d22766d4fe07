package server

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/osse101/skyrim-alchemy/docs" // swagger spec registration
	"github.com/osse101/skyrim-alchemy/internal/handler"
	"github.com/osse101/skyrim-alchemy/internal/logger"
	"github.com/osse101/skyrim-alchemy/internal/metrics"
	"github.com/osse101/skyrim-alchemy/internal/report"
)

// Options configures the HTTP surface
type Options struct {
	Port           int
	RateLimit      int // per client IP per RateWindow, 0 disables
	TrustedProxies []string
	DatasetVersion string
}

type Server struct {
	httpServer *http.Server
}

// NewServer creates a new Server instance serving the read-only alchemy API
func NewServer(opts Options, svc report.Service) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           NewRouter(opts, svc),
			ReadHeaderTimeout: ReadHeaderTimeout,
			WriteTimeout:      WriteTimeout,
		},
	}
}

// NewRouter builds the route tree. Exposed for tests.
func NewRouter(opts Options, svc report.Service) http.Handler {
	r := chi.NewRouter()

	var limiter *RateLimiter
	if opts.RateLimit > 0 {
		limiter = NewRateLimiter(opts.RateLimit, RateWindow)
	}

	// Chi middleware executes in order defined (outermost to innermost)
	r.Use(SecurityHeadersMiddleware())
	r.Use(RateLimitMiddleware(opts.TrustedProxies, limiter))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	r.Get("/healthz", handler.HandleHealthz(opts.DatasetVersion))
	r.Get("/version", handler.HandleVersion())
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/dataset", handler.HandleGetDataset(svc))
		r.Get("/brew", handler.HandleBrew(svc))

		r.Route("/ingredients", func(r chi.Router) {
			r.Get("/", handler.HandleListIngredients(svc))
			r.Get("/{name}", handler.HandleGetIngredient(svc))
			r.Get("/{name}/potions", handler.HandleGetIngredientPotions(svc))
		})

		r.Route("/effects", func(r chi.Router) {
			r.Get("/", handler.HandleListEffects(svc))
			r.Get("/{name}", handler.HandleGetEffect(svc))
		})

		r.Route("/potions", func(r chi.Router) {
			r.Get("/", handler.HandleListPotions(svc))
			r.Get("/recommended", handler.HandleRecommended(svc))
		})
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return r
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isQuiet(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()

		// Honour an upstream request ID so traces line up across services
		requestID := r.Header.Get(HeaderRequestID)
		if requestID == "" {
			requestID = logger.GenerateRequestID()
		}
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)
		w.Header().Set(HeaderRequestID, requestID)

		log := logger.FromContext(ctx)
		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"query", r.URL.RawQuery,
			"remote_addr", r.RemoteAddr,
			"user_agent", r.UserAgent())

		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) || strings.EqualFold(k, HeaderCookie) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds())
	})
}

// Start starts the server
func (s *Server) Start(ctx context.Context) error {
	logger.FromContext(ctx).Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	logger.FromContext(ctx).Info(LogMsgServerStopping)
	return s.httpServer.Shutdown(ctx)
}
