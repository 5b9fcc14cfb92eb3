// Package server serves a built export locally the way the production host
// does: under the deployment base path, with the export's own 404 page.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"github.com/clyra-ai/wrkr-docs/internal/metric"
	"github.com/clyra-ai/wrkr-docs/internal/seo"
)

const (
	// DefaultShutdownTimeout bounds how long in-flight requests may finish
	// after the context is cancelled.
	DefaultShutdownTimeout = 5 * time.Second

	requestTimeout = 60 * time.Second
)

// Config holds server configuration.
type Config struct {
	Port     int
	Dir      string // the built export
	BasePath string // "" for a root deployment
	Metrics  bool   // expose /metrics
	// LiveReload serves ReloadPath and injects the reload script into pages.
	LiveReload bool

	ShutdownTimeout time.Duration
}

// Server is the local preview server.
type Server struct {
	cfg      Config
	base     string
	logger   *slog.Logger
	registry *prometheus.Registry
	requests metric.IncrementalCounter
	reload   *reloadHub // nil unless live reload is on
	router   chi.Router

	mu      sync.RWMutex
	running bool
}

// New creates a preview server for the export in cfg.Dir.
func New(cfg Config, logger *slog.Logger) (*Server, error) {
	if cfg.Dir == "" {
		return nil, errors.New("export dir is required")
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = DefaultShutdownTimeout
	}

	s := &Server{
		cfg:      cfg,
		base:     seo.NormalizeBasePath(cfg.BasePath),
		logger:   logger,
		registry: metric.NewRegistry(),
		requests: metric.Nop{},
	}
	if cfg.Metrics {
		counter, err := metric.NewCounter(s.registry,
			"wrkr_docs_http_requests_total",
			"Preview server requests by status class.",
			"code")
		if err != nil {
			return nil, err
		}
		s.requests = counter
	}

	if cfg.LiveReload {
		s.reload = newReloadHub(logger)
	}

	s.router = s.buildRouter()
	return s, nil
}

func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	// Discovery resources are fetched by tools running on other origins.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "HEAD", "OPTIONS"},
		AllowedHeaders: []string{"Accept"},
		MaxAge:         300,
	}))

	// The reload socket stays open for the whole session.
	if s.reload != nil {
		r.Get(ReloadPath, s.reload.handleWebSocket)
	}

	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(requestTimeout))

		r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
		})
		if s.cfg.Metrics {
			r.Handle("/metrics", metric.Handler(s.registry))
		}

		static := http.HandlerFunc(s.serveStatic)
		if s.base == "" {
			r.Handle("/*", static)
		} else {
			toBase := func(w http.ResponseWriter, r *http.Request) {
				http.Redirect(w, r, s.base+"/", http.StatusFound)
			}
			r.Get("/", toBase)
			r.Get(s.base, toBase)
			r.Handle(s.base+"/*", http.StripPrefix(s.base, static))
		}
	})
	r.NotFound(s.notFound)

	return r
}

// Router returns the chi router.
func (s *Server) Router() chi.Router { return s.router }

// Registry returns the registry /metrics is served from.
func (s *Server) Registry() *prometheus.Registry { return s.registry }

// Reload tells every connected preview page to reload and returns how many
// were notified. It is a no-op without live reload.
func (s *Server) Reload() int {
	if s.reload == nil {
		return 0
	}
	return s.reload.broadcast()
}

// IsRunning reports whether the server is accepting connections.
func (s *Server) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.running
}

// Serve listens on the configured port and blocks until ctx is cancelled.
func (s *Server) Serve(ctx context.Context) error {
	ln, err := net.Listen("tcp", fmt.Sprintf(":%d", s.cfg.Port))
	if err != nil {
		return fmt.Errorf("failed to create listener: %w", err)
	}
	return s.ServeListener(ctx, ln)
}

// ServeListener serves on ln until ctx is cancelled, then shuts down
// gracefully. It returns nil after a clean shutdown.
func (s *Server) ServeListener(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      requestTimeout + 10*time.Second,
		IdleTimeout:       120 * time.Second,
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.setRunning(true)
		defer s.setRunning(false)

		s.logger.Info("preview server listening", "addr", ln.Addr().String(), "base_path", s.base)
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
		defer cancel()

		start := time.Now()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("server shutdown error", "error", err)
		}
		if s.reload != nil {
			s.reload.closeAll()
		}
		s.logger.Info("preview server stopped", "duration", time.Since(start))
		return nil
	})

	return g.Wait()
}

func (s *Server) setRunning(v bool) {
	s.mu.Lock()
	s.running = v
	s.mu.Unlock()
}

// serveStatic serves files from the export. Directories are served only
// through their index.html; everything else missing gets the 404 page.
func (s *Server) serveStatic(w http.ResponseWriter, r *http.Request) {
	name := path.Clean("/" + r.URL.Path)
	full := filepath.Join(s.cfg.Dir, filepath.FromSlash(name))

	info, err := os.Stat(full)
	if err != nil {
		s.notFound(w, r)
		return
	}
	page := full
	if info.IsDir() {
		page = filepath.Join(full, "index.html")
		if _, err := os.Stat(page); err != nil {
			s.notFound(w, r)
			return
		}
	}
	w.Header().Set("Cache-Control", "no-cache")

	// FileServer owns the directory and index.html redirects.
	canonicalDir := info.IsDir() && strings.HasSuffix(r.URL.Path, "/")
	if s.reload != nil && filepath.Ext(page) == ".html" && (canonicalDir || !info.IsDir() && path.Base(name) != "index.html") {
		s.servePage(w, page, http.StatusOK)
		return
	}
	http.FileServer(http.Dir(s.cfg.Dir)).ServeHTTP(w, r)
}

// servePage writes an HTML file with the reload script injected.
func (s *Server) servePage(w http.ResponseWriter, file string, status int) {
	data, err := os.ReadFile(file)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(injectReload(data))
}

func (s *Server) notFound(w http.ResponseWriter, _ *http.Request) {
	page, err := os.ReadFile(filepath.Join(s.cfg.Dir, "404.html"))
	if err != nil {
		http.Error(w, "404 page not found", http.StatusNotFound)
		return
	}
	if s.reload != nil {
		page = injectReload(page)
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	_, _ = w.Write(page)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		defer func() {
			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			s.requests.Increment(strconv.Itoa(status/100) + "xx")
			s.logger.Debug("request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", status,
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"request_id", middleware.GetReqID(r.Context()),
			)
		}()
		next.ServeHTTP(ww, r)
	})
}
