// Package httpapi exposes the service over HTTP/JSON: the public auth
// endpoints, the token-guarded syllabus endpoints, and the middleware that
// turns a bearer token into a trusted caller identity.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/studytrack/internal/logging"
	"github.com/dmitrijs2005/studytrack/internal/server/topics"
	"github.com/dmitrijs2005/studytrack/internal/server/users"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// UserService is the credential-store surface the transport needs.
type UserService interface {
	Register(ctx context.Context, username, email, password string) (*users.User, error)
	Login(ctx context.Context, email, password string) (*users.LoginResult, error)
}

// TopicService is the syllabus surface the transport needs. Every method
// takes the guard-verified caller identity as its first argument.
type TopicService interface {
	Create(ctx context.Context, userID, subject, topicName, importance string) (*topics.Topic, error)
	List(ctx context.Context, userID string) ([]topics.Topic, error)
	UpdateStatus(ctx context.Context, userID, topicID, status string) (*topics.Topic, error)
	Delete(ctx context.Context, userID, topicID string) error
}

type HTTPServer struct {
	address   string
	logger    logging.Logger
	users     UserService
	topics    TopicService
	jwtSecret []byte
}

func NewHTTPServer(a string, l logging.Logger, us UserService, ts TopicService, secretKey string) *HTTPServer {
	return &HTTPServer{
		address:   a,
		logger:    l.With("module", "http_server"),
		users:     us,
		topics:    ts,
		jwtSecret: []byte(secretKey),
	}
}

// Router builds the route tree. Split from Run so tests can drive the full
// middleware stack through httptest.
func (s *HTTPServer) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("StudyTrack API running..."))
	})

	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/register", s.handleRegister)
		r.Post("/login", s.handleLogin)
	})

	r.Route("/api/syllabus", func(r chi.Router) {
		r.Use(s.authenticate)
		r.Post("/add", s.handleAddTopic)
		r.Get("/all", s.handleListTopics)
		r.Put("/{id}", s.handleUpdateTopic)
		r.Delete("/{id}", s.handleDeleteTopic)
	})

	return r
}

func (s *HTTPServer) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:    s.address,
		Handler: s.Router(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "graceful shutdown failed", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
