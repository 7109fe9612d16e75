package users

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/lilknig/ember-api/core"
	"github.com/lilknig/ember-api/pkg/auth"
	"github.com/lilknig/ember-api/pkg/logger"
)

// UserReader defines the read operations the module exposes.
type UserReader interface {
	GetUserByID(ctx context.Context, id uuid.UUID) (*auth.User, error)
	ListUsers(ctx context.Context) ([]auth.User, error)
}

// Service is the HTTP surface for user reads, mounted under /api/v1/users.
// Access control happens upstream in the policy middleware.
type Service struct {
	store  UserReader
	logger *slog.Logger
}

type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) { s.logger = l }
}

// NewService creates the user read handlers over the given store.
func NewService(store UserReader, opts ...Option) *Service {
	s := &Service{
		store:  store,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Handle returns the user endpoints as a mountable router.
func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()

	r.Get("/", s.list)
	r.Get("/{id}", s.get)

	return r
}

func (s *Service) list(w http.ResponseWriter, r *http.Request) {
	users, err := s.store.ListUsers(r.Context())
	if err != nil {
		s.logger.ErrorContext(r.Context(), "list users failed", logger.Error(err))
		core.Error(w, err)
		return
	}

	profiles := make([]auth.Profile, 0, len(users))
	for i := range users {
		profiles = append(profiles, users[i].Profile())
	}

	core.JSON(w, http.StatusOK, "Users retrieved successfully", profiles)
}

func (s *Service) get(w http.ResponseWriter, r *http.Request) {
	// An unparsable id cannot name an existing user, so it reads as absent
	// rather than leaking the id format.
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		core.Error(w, core.NotFound("User not found"))
		return
	}

	user, err := s.store.GetUserByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			core.Error(w, core.NotFound("User not found"))
			return
		}
		s.logger.ErrorContext(r.Context(), "get user failed", logger.Error(err))
		core.Error(w, err)
		return
	}

	core.JSON(w, http.StatusOK, "User retrieved successfully", user.Profile())
}
