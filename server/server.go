package server

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/jupark12/job-dashboard/logger"
	"github.com/jupark12/job-dashboard/models"
	"github.com/jupark12/job-dashboard/queue"
	"github.com/jupark12/job-dashboard/worker"
)

const shutdownTimeout = 5 * time.Second

// Options configures a Server
type Options struct {
	Addr           string
	RunMode        string
	AllowedOrigins []string
	// Now anchors the activity chart; defaults to time.Now
	Now func() time.Time
}

// Server serves the dashboard pages, the JSON API and load notifications
type Server struct {
	queue     *queue.JobQueue
	worker    *worker.Worker
	httpAddr  string
	wsManager *models.WebSocketManager
	upgrader  websocket.Upgrader
	log       logrus.FieldLogger
	now       func() time.Time
	handler   http.Handler

	mu     sync.RWMutex
	ctx    context.Context
	recent []models.Notification
}

// NewServer creates a new server instance
func NewServer(q *queue.JobQueue, w *worker.Worker, opts Options, log logrus.FieldLogger) *Server {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.RunMode != "" {
		gin.SetMode(opts.RunMode)
	}

	s := &Server{
		queue:     q,
		worker:    w,
		httpAddr:  opts.Addr,
		wsManager: models.NewWebSocketManager(log),
		log:       log.WithField("component", "server"),
		now:       opts.Now,
		ctx:       context.Background(),
	}

	origins := opts.AllowedOrigins
	s.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			return originAllowed(origins, r.Header.Get("Origin"))
		},
	}

	w.SetNotifier(s.notify)

	engine := gin.New()
	engine.Use(gin.Recovery(), logger.Middleware(log))
	engine.SetHTMLTemplate(template.Must(template.New("").Funcs(templateFuncs).ParseFS(templatesFS, "templates/*.html")))
	s.registerRoutes(engine)

	s.handler = cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
		MaxAge:         900,
	}).Handler(engine)

	return s
}

// Handler returns the HTTP handler of the server
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Run loads the working set, serves HTTP and blocks until ctx is cancelled
// or the listener fails
func (s *Server) Run(ctx context.Context) error {
	s.mu.Lock()
	s.ctx = ctx
	s.mu.Unlock()

	s.wsManager.Start(ctx)
	s.worker.Start(ctx)

	httpServer := &http.Server{
		Addr:              s.httpAddr,
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      15 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.log.Infof("HTTP server listening on %s", s.httpAddr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server failed: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		s.log.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		s.worker.Stop()
		return httpServer.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// notify is the worker callback for load outcomes
func (s *Server) notify(n models.Notification) {
	s.mu.Lock()
	s.recent = append(s.recent, n)
	if len(s.recent) > maxRecentNotifications {
		s.recent = s.recent[len(s.recent)-maxRecentNotifications:]
	}
	s.mu.Unlock()

	s.wsManager.BroadcastNotification(n)
}

const maxRecentNotifications = 10

// recentNotifications returns the latest notifications, newest last
func (s *Server) recentNotifications() []models.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Notification{}, s.recent...)
}

func (s *Server) baseContext() context.Context {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ctx
}

func originAllowed(allowed []string, origin string) bool {
	if origin == "" {
		return true
	}
	for _, o := range allowed {
		if o == "*" || o == origin {
			return true
		}
	}
	return false
}
