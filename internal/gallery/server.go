package gallery

import (
	"context"
	"log/slog"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/mdc/internal/config"
	"github.com/vango-dev/mdc/pkg/binding"
	"github.com/vango-dev/mdc/pkg/component"
	"github.com/vango-dev/mdc/pkg/metrics"
	"github.com/vango-dev/mdc/pkg/render"
	"github.com/vango-dev/mdc/pkg/vdom"
	"github.com/vango-dev/mdc/pkg/widget/remote"
)

// IconFont is the stylesheet of the Material Icons font.
const IconFont = "https://fonts.googleapis.com/icon?family=Material+Icons"

// Server serves the gallery page and its live widget sessions.
type Server struct {
	cfg      *config.Config
	logger   *slog.Logger
	metrics  *metrics.Collector
	tracer   trace.Tracer
	upgrader websocket.Upgrader
	router   chi.Router

	ctx    context.Context
	cancel context.CancelFunc

	// mu orders session registration against Close.
	mu      sync.Mutex
	closing bool
	wg      sync.WaitGroup
}

// NewServer builds the gallery routes for cfg.
func NewServer(cfg *config.Config, logger *slog.Logger) *Server {
	ctx, cancel := context.WithCancel(context.Background())
	s := &Server{
		cfg:     cfg,
		logger:  logger,
		metrics: metrics.New(metrics.WithNamespace(cfg.Metrics.Namespace)),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
		},
		ctx:    ctx,
		cancel: cancel,
	}
	if cfg.Tracing.Enabled {
		s.tracer = otel.Tracer("github.com/vango-dev/mdc/gallery")
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(logger))
	if s.tracer != nil {
		r.Use(tracing(s.tracer))
	}
	r.Get("/", s.handlePage)
	r.Get("/ws", s.handleWebSocket)
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte("ok\n"))
	})
	if cfg.Metrics.Enabled {
		r.Method(http.MethodGet, cfg.Metrics.Path, s.metrics.Handler())
	}
	s.router = r
	return s
}

// Handler returns the HTTP handler of the server.
func (s *Server) Handler() http.Handler { return s.router }

// Metrics returns the collector the sessions report to.
func (s *Server) Metrics() *metrics.Collector { return s.metrics }

// Close ends every live session and waits for them to unmount. Sessions
// requested after Close are refused.
func (s *Server) Close() {
	s.mu.Lock()
	s.closing = true
	s.mu.Unlock()
	s.cancel()
	s.wg.Wait()
}

// track registers a session unless the server is closing.
func (s *Server) track() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closing {
		return false
	}
	s.wg.Add(1)
	return true
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	tree, err := component.Static(r.Context(), Page, New(), component.WithName("gallery"))
	if err != nil {
		s.logger.Error("page render failed", "error", err)
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	renderer := render.NewRenderer(render.RendererConfig{})
	err = renderer.RenderPage(w, render.PageData{
		Title:        "Material Components",
		Body:         vdom.Div(vdom.ID(MountID), tree),
		StyleSheets:  []string{s.cfg.StyleSheet(), IconFont},
		Scripts:      []string{s.cfg.Script()},
		InlineScript: clientScript,
	})
	if err != nil {
		s.logger.Warn("page write failed", "error", err)
	}
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	if !s.track() {
		http.Error(w, "server is shutting down", http.StatusServiceUnavailable)
		return
	}
	defer s.wg.Done()

	ws, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("websocket upgrade failed", "error", err)
		s.metrics.WebSocketError("upgrade")
		return
	}
	conn := remote.NewConn(ws, remote.ConnConfig{
		ReadTimeout:    s.cfg.ReadTimeout(),
		MaxMessageSize: s.cfg.Server.MaxMessageSize,
	})

	s.metrics.ConnectionOpened()
	defer s.metrics.ConnectionClosed()

	logger := s.logger.With("request_id", middleware.GetReqID(r.Context()))
	logger.Info("session started")

	var opts []component.Option
	if s.tracer != nil {
		opts = append(opts, binding.WithTracer(s.tracer))
	}
	err = newSession(conn, s.metrics, logger).run(s.ctx, opts...)
	switch {
	case err == nil:
	case remote.IsUnexpected(err):
		s.metrics.WebSocketError("read")
		logger.Warn("session ended", "error", err)
		return
	default:
		logger.Debug("session ended", "error", err)
		return
	}
	logger.Info("session ended")
}
