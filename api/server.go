// Package api provides the HTTP surface over the skill billing engine.
// It is a thin adapter: the engine itself performs no I/O.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"

	"skill-billing/internal/billing"
	"skill-billing/internal/catalog"
	"skill-billing/internal/overlap"
	"skill-billing/internal/recommend"
	"skill-billing/internal/usage"
	"skill-billing/pkg/platform"

	contracts "skill-billing/pkg/api"
)

// Server is the HTTP API server.
type Server struct {
	httpServer  *http.Server
	calculator  *billing.Calculator
	recommender *recommend.Engine
	allocator   *usage.Allocator
	catalog     *catalog.Catalog
	logger      *slog.Logger
	config      *Config
}

// Config holds server configuration.
type Config struct {
	Port           int
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	MaxRequestSize int64
	CORSOrigins    []string
}

// DefaultConfig returns default server configuration, honoring
// SKILLBILL_PORT when set.
func DefaultConfig() *Config {
	return &Config{
		Port:           platform.GetEnvInt("SKILLBILL_PORT", 8080),
		ReadTimeout:    15 * time.Second,
		WriteTimeout:   30 * time.Second,
		MaxRequestSize: 1024 * 1024, // 1MB; billing requests are small
		CORSOrigins:    []string{"*"},
	}
}

// NewServer creates an API server over the given catalog.
func NewServer(cat *catalog.Catalog, logger *slog.Logger, config *Config) *Server {
	if config == nil {
		config = DefaultConfig()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		calculator:  billing.NewCalculator(cat),
		recommender: recommend.NewEngine(cat),
		allocator:   usage.NewAllocator(),
		catalog:     cat,
		logger:      logger,
		config:      config,
	}
}

// Handler builds the routed and middleware-wrapped HTTP handler.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/api/v1/billing", s.handleBilling)
	mux.HandleFunc("/api/v1/overlap", s.handleOverlap)
	mux.HandleFunc("/api/v1/recommendations", s.handleRecommendations)
	mux.HandleFunc("/api/v1/usage", s.handleUsage)
	mux.HandleFunc("/api/v1/catalog", s.handleCatalog)

	return s.corsMiddleware(s.loggingMiddleware(mux))
}

// Start starts the HTTP server.
func (s *Server) Start() error {
	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", s.config.Port),
		Handler:      s.Handler(),
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
	}

	s.logger.Info("skillbill API server starting", "port", s.config.Port)
	return s.httpServer.ListenAndServe()
}

// StartWithGracefulShutdown starts the server and drains it on SIGINT
// or SIGTERM.
func (s *Server) StartWithGracefulShutdown() error {
	errChan := make(chan error, 1)
	go func() {
		if err := s.Start(); err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		return err
	case <-quit:
		s.logger.Info("shutting down server")
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return s.httpServer.Shutdown(ctx)
	}
}

func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := uuid.NewString()
		w.Header().Set("X-Request-ID", requestID)
		next.ServeHTTP(w, r)
		s.logger.Info("request",
			"request_id", requestID,
			"method", r.Method,
			"path", r.URL.Path,
			"remote", r.RemoteAddr,
			"duration", time.Since(start).String(),
		)
	})
}

func (s *Server) corsMiddleware(next http.Handler) http.Handler {
	allowed := strings.Join(s.config.CORSOrigins, ", ")
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", allowed)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{
		"status": "healthy",
	})
}

// QuoteResponse wraps a billing result with audit fields.
type QuoteResponse struct {
	QuoteID     string                          `json:"quote_id"`
	GeneratedAt string                          `json:"generated_at"`
	Billing     *contracts.UnifiedBillingResult `json:"billing"`
}

func (s *Server) handleBilling(w http.ResponseWriter, r *http.Request) {
	var req contracts.BillingRequest
	if !s.decodePost(w, r, &req) {
		return
	}
	s.jsonResponse(w, http.StatusOK, QuoteResponse{
		QuoteID:     uuid.NewString(),
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Billing:     s.calculator.CalculateUnifiedBilling(req.Products),
	})
}

func (s *Server) handleOverlap(w http.ResponseWriter, r *http.Request) {
	var req contracts.BillingRequest
	if !s.decodePost(w, r, &req) {
		return
	}
	s.jsonResponse(w, http.StatusOK, overlap.SkillOverlap(req.Products))
}

// RecommendationsResponse lists ranked complementary products.
type RecommendationsResponse struct {
	Recommendations []contracts.Recommendation `json:"recommendations"`
}

func (s *Server) handleRecommendations(w http.ResponseWriter, r *http.Request) {
	var req contracts.RecommendationRequest
	if !s.decodePost(w, r, &req) {
		return
	}
	s.jsonResponse(w, http.StatusOK, RecommendationsResponse{
		Recommendations: s.recommender.Complementary(req.Current, req.Available),
	})
}

func (s *Server) handleUsage(w http.ResponseWriter, r *http.Request) {
	var req contracts.UsageRequest
	if !s.decodePost(w, r, &req) {
		return
	}
	s.jsonResponse(w, http.StatusOK, s.allocator.UsageBasedPricing(req.Products, req.PlatformIntelligence))
}

// CatalogResponse lists the skill pricing table.
type CatalogResponse struct {
	Skills []contracts.SkillPricing `json:"skills"`
}

func (s *Server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.jsonError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	s.jsonResponse(w, http.StatusOK, CatalogResponse{Skills: s.catalog.Entries()})
}

// decodePost enforces POST, limits the body, and decodes JSON into
// dst. Writes the error response itself and reports success.
func (s *Server) decodePost(w http.ResponseWriter, r *http.Request, dst any) bool {
	if r.Method != http.MethodPost {
		s.jsonError(w, http.StatusMethodNotAllowed, "method not allowed")
		return false
	}
	r.Body = http.MaxBytesReader(w, r.Body, s.config.MaxRequestSize)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		s.jsonError(w, http.StatusBadRequest, fmt.Sprintf("invalid request: %v", err))
		return false
	}
	return true
}

func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error("encode response", "error", err)
	}
}

func (s *Server) jsonError(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, contracts.ErrorResponse{
		Error:   http.StatusText(status),
		Message: message,
	})
}
