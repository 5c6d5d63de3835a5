// Package api provides the HTTP REST API server for calcsuite.
//
// It exposes endpoints for catalog discovery, calculation, batch
// evaluation, XLSX export, history, and WebSocket streaming.
package api

import (
	"context"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/calcsuite/calcsuite/internal/calc"
	"github.com/calcsuite/calcsuite/internal/config"
	"github.com/calcsuite/calcsuite/internal/history"
	"github.com/calcsuite/calcsuite/internal/infra"
	"github.com/calcsuite/calcsuite/web"
)

// Server is the HTTP API server.
type Server struct {
	router   chi.Router
	cfg      *config.Config
	registry *calc.Registry
	store    history.Store
	cache    *infra.Cache
	limiter  *infra.RateLimiter
	wsHub    *WSHub
	logger   *zap.Logger
	version  string
	serveUI  bool // when true, serve the embedded web UI at /
}

// NewServer creates a configured API server with all routes and middleware.
// The history backend is chosen from config; redis failures surface here
// rather than at first request.
func NewServer(cfg *config.Config, registry *calc.Registry, logger *zap.Logger) (*Server, error) {
	var store history.Store
	var err error
	switch cfg.History.Backend {
	case "redis":
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		store, err = history.NewRedisStore(ctx, cfg.History.RedisAddr, cfg.History.RedisDB, cfg.History.MaxEntries)
		if err != nil {
			return nil, err
		}
	default:
		store = history.NewMemoryStore(cfg.History.MaxEntries)
	}

	srv := &Server{
		cfg:      cfg,
		registry: registry,
		store:    store,
		cache:    infra.NewCache(time.Duration(cfg.Cache.TTL) * time.Second),
		limiter:  infra.NewRateLimiter(cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst),
		wsHub:    NewWSHub(),
		logger:   logger,
		version:  "dev",
		serveUI:  true, // serve embedded web UI by default
	}

	srv.router = srv.buildRouter()
	return srv, nil
}

// SetVersion records the build version reported by the health endpoint.
func (s *Server) SetVersion(v string) {
	if v != "" {
		s.version = v
	}
}

// SetServeUI controls whether the embedded web UI is served.
// Must be called before ListenAndServe.
func (s *Server) SetServeUI(enabled bool) {
	s.serveUI = enabled
	s.router = s.buildRouter()
}

// Router returns the chi router for testing.
func (s *Server) Router() chi.Router {
	return s.router
}

// Close releases the server's background resources.
func (s *Server) Close() error {
	s.limiter.Stop()
	s.cache.Stop()
	return s.store.Close()
}

// ListenAndServe starts the HTTP server with graceful shutdown.
func (s *Server) ListenAndServe(addr string) error {
	httpSrv := &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start WebSocket hub
	go s.wsHub.Run()

	// Graceful shutdown
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		s.logger.Info("API server listening", zap.String("addr", addr))
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-done
	s.logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := httpSrv.Shutdown(ctx); err != nil {
		return err
	}
	return s.Close()
}

// buildRouter configures all routes and middleware.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	// CORS
	origins := []string{"*"}
	if len(s.cfg.API.CORSOrigins) > 0 {
		origins = s.cfg.API.CORSOrigins
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health check
	r.Get("/health", s.handleHealth)

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		// Health (also available at /health)
		r.Get("/health", s.handleHealth)

		// Catalog
		r.Get("/calculators", s.handleListCalculators)
		r.Get("/categories", s.handleCategories)
		r.Get("/calculators/{slug}", s.handleDescribe)

		// Compute endpoints carry the per-client rate limit.
		r.Group(func(r chi.Router) {
			r.Use(s.rateLimit)
			r.Post("/calculators/{slug}/compute", s.handleCompute)
			r.Post("/calculators/{slug}/export", s.handleExport)
			r.Post("/batch", s.handleBatch)
		})

		// History
		r.Get("/history", s.handleHistory)
		r.Get("/history/{id}", s.handleHistoryByID)

		// Configuration
		r.Get("/config", s.handleGetConfig)

		// WebSocket
		r.Get("/ws", s.handleWebSocket)
	})

	// Serve embedded web UI
	if s.serveUI {
		s.mountUI(r)
	}

	return r
}

// mountUI serves the embedded static UI, falling back to index.html
// for unknown paths.
func (s *Server) mountUI(r chi.Router) {
	staticFS := web.StaticFS()
	fileServer := http.FileServerFS(staticFS)

	r.Get("/*", func(w http.ResponseWriter, req *http.Request) {
		rPath := strings.TrimPrefix(req.URL.Path, "/")
		if rPath == "" {
			rPath = "index.html"
		}

		f, err := staticFS.Open(rPath)
		if err != nil {
			serveIndexHTML(w, staticFS)
			return
		}
		f.Close()

		if strings.HasSuffix(rPath, ".html") {
			w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
		}
		fileServer.ServeHTTP(w, req)
	})
}

func serveIndexHTML(w http.ResponseWriter, staticFS fs.FS) {
	data, err := fs.ReadFile(staticFS, "index.html")
	if err != nil {
		http.Error(w, "web UI not available", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	w.WriteHeader(http.StatusOK)
	w.Write(data) //nolint:errcheck
}

// rateLimit rejects clients that exceed the configured compute budget.
func (s *Server) rateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !s.limiter.Allow(r.RemoteAddr) {
			writeError(w, http.StatusTooManyRequests, "rate limit exceeded; slow down")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ============================================================
// WebSocket Hub
// ============================================================

// WSMessage is a message sent over WebSocket connections.
type WSMessage struct {
	Type string      `json:"type"`
	Data interface{} `json:"data,omitempty"`
}

// WSHub manages WebSocket connections and message broadcasting.
type WSHub struct {
	mu         sync.RWMutex
	clients    map[*WSClient]bool
	broadcast  chan WSMessage
	register   chan *WSClient
	unregister chan *WSClient
}

// WSClient represents a single WebSocket connection.
type WSClient struct {
	hub  *WSHub
	send chan WSMessage
}

// NewWSHub creates a new WebSocket hub.
func NewWSHub() *WSHub {
	return &WSHub{
		clients:    make(map[*WSClient]bool),
		broadcast:  make(chan WSMessage, 256),
		register:   make(chan *WSClient),
		unregister: make(chan *WSClient),
	}
}

// Run starts the hub event loop.
func (h *WSHub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()
		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			h.mu.Unlock()
		case msg := <-h.broadcast:
			h.mu.RLock()
			for client := range h.clients {
				select {
				case client.send <- msg:
				default:
					// Slow client; disconnect
					h.mu.RUnlock()
					h.mu.Lock()
					delete(h.clients, client)
					close(client.send)
					h.mu.Unlock()
					h.mu.RLock()
				}
			}
			h.mu.RUnlock()
		}
	}
}

// Broadcast sends a message to all connected WebSocket clients.
func (h *WSHub) Broadcast(msg WSMessage) {
	select {
	case h.broadcast <- msg:
	default:
		// Drop message if broadcast channel is full
	}
}

// Send delivers a message to a single client. The membership check and
// the send happen under the same lock that guards channel close in Run,
// so a reply can never hit a closed channel.
func (h *WSHub) Send(client *WSClient, msg WSMessage) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if !h.clients[client] {
		return
	}
	select {
	case client.send <- msg:
	default:
		// Drop rather than block a full client buffer
	}
}

// ClientCount returns the number of connected WebSocket clients.
func (h *WSHub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Register adds a client to the hub.
func (h *WSHub) Register(client *WSClient) {
	h.register <- client
}

// Unregister removes a client from the hub.
func (h *WSHub) Unregister(client *WSClient) {
	h.unregister <- client
}
