// Package http exposes the transaction ledger, the extraction endpoints,
// and the dashboard as a JSON API.
package http

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"fincopilot/internal/cache"
	"fincopilot/internal/core"
	"fincopilot/internal/dashboard"
	"fincopilot/internal/ocr"
	"fincopilot/internal/store"
)

const summaryCacheKey = "summary"

// SyncPublisher forwards a newly written transaction to the spreadsheet
// sync pipeline. Publishing is best-effort; failures never fail the write.
type SyncPublisher interface {
	PublishTransaction(ctx context.Context, t core.Transaction) error
}

type Server struct {
	http.Server

	store store.Store
	// mu serializes load-modify-save cycles against the store.
	mu sync.Mutex

	extractor ocr.TextExtractor // nil when no OCR backend is configured
	publisher SyncPublisher     // nil when AMQP is not configured

	rateLimiter  *rateLimiter
	summaryCache *cache.TTLCache[dashboard.Summary]

	shutdownOnce sync.Once
}

type Option func(*Server)

// WithOCR enables the receipt image endpoint.
func WithOCR(extractor ocr.TextExtractor) Option {
	return func(s *Server) { s.extractor = extractor }
}

// WithSyncPublisher forwards writes to the sync worker.
func WithSyncPublisher(p SyncPublisher) Option {
	return func(s *Server) { s.publisher = p }
}

// NewServer configures routes and returns a ready-to-run server.
func NewServer(addr string, st store.Store, opts ...Option) *Server {
	mux := http.NewServeMux()

	s := &Server{
		Server: http.Server{
			Addr:    addr,
			Handler: mux,
		},
		store:        st,
		rateLimiter:  newRateLimiter(),
		summaryCache: cache.New[dashboard.Summary](8, 30*time.Second),
	}
	for _, opt := range opts {
		opt(s)
	}

	mux.HandleFunc("GET /transactions", s.withSecurityHeaders(s.handleListTransactions))
	mux.HandleFunc("POST /transactions", s.withSecurityHeaders(s.handleCreateTransaction))
	mux.HandleFunc("PUT /transactions/{id}", s.withSecurityHeaders(s.handleUpdateTransaction))
	mux.HandleFunc("DELETE /transactions/{id}", s.withSecurityHeaders(s.handleDeleteTransaction))
	mux.HandleFunc("POST /parse/voice", s.withSecurityHeaders(s.handleParseVoice))
	mux.HandleFunc("POST /parse/receipt", s.withSecurityHeaders(s.handleParseReceipt))
	mux.HandleFunc("GET /dashboard", s.withSecurityHeaders(s.handleDashboard))
	mux.HandleFunc("GET /export.xlsx", s.withSecurityHeaders(s.handleExportXLSX))
	mux.HandleFunc("/healthz", handleHealth)
	mux.HandleFunc("/readyz", s.handleReady)

	return s
}

// Shutdown gracefully shuts down the server and cleanup routines.
func (s *Server) Shutdown(ctx context.Context) error {
	var shutdownErr error
	s.shutdownOnce.Do(func() {
		if s.rateLimiter != nil {
			s.rateLimiter.stop()
		}
		shutdownErr = s.Server.Shutdown(ctx)
	})
	return shutdownErr
}

// withSecurityHeaders adds security headers, rate limiting, and request
// logging to responses.
func (s *Server) withSecurityHeaders(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		clientIP := clientIP(r)
		requestID := generateRequestID()

		ctx := context.WithValue(r.Context(), requestIDKey{}, requestID)
		r = r.WithContext(ctx)

		slog.InfoContext(ctx, "Request started",
			"request_id", requestID,
			"method", r.Method,
			"url", r.URL.Path,
			"client_ip", clientIP,
			"user_agent", r.Header.Get("User-Agent"))

		// Mutating requests are rate limited per client IP.
		if isMutating(r.Method) && !s.rateLimiter.allow(clientIP) {
			slog.WarnContext(ctx, "Rate limit exceeded",
				"client_ip", clientIP, "method", r.Method, "url", r.URL.Path)
			w.Header().Set("Retry-After", "60")
			writeError(w, http.StatusTooManyRequests, "Rate limit exceeded. Please try again later.")
			return
		}

		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Content-Security-Policy", "default-src 'self'")
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next(rw, r)

		duration := time.Since(start)
		slog.InfoContext(ctx, "Request completed",
			"request_id", requestID,
			"method", r.Method,
			"url", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds(),
			"client_ip", clientIP)
	}
}

type requestIDKey struct{}

func isMutating(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch:
		return true
	}
	return false
}

// responseWriter wraps http.ResponseWriter to capture the status code.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// generateRequestID creates a unique request ID for tracing.
func generateRequestID() string {
	bytes := make([]byte, 8)
	if _, err := rand.Read(bytes); err != nil {
		// Fallback to timestamp if random fails
		return fmt.Sprintf("req_%d", time.Now().UnixNano())
	}
	return "req_" + hex.EncodeToString(bytes)
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	if _, err := s.store.LoadAll(r.Context()); err != nil {
		slog.ErrorContext(r.Context(), "Readiness check failed", "error", err)
		writeError(w, http.StatusServiceUnavailable, "store unavailable")
		return
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}
