package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/hello-users-api/internal/domain/entity"
	repo "github.com/oksasatya/hello-users-api/internal/domain/repository"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrEmailTaken   = errors.New("email already exists")
)

// Service holds the user business rules: the unique-email pre-check and
// existence checks live here, so handlers only translate outcomes to
// status codes.
type Service struct {
	Repo   repo.UserRepository
	Logger *logrus.Logger
}

func NewService(r repo.UserRepository, logger *logrus.Logger) *Service {
	return &Service{Repo: r, Logger: logger}
}

func (s *Service) List(ctx context.Context) ([]entity.User, error) {
	return s.Repo.List(ctx)
}

func (s *Service) Exists(ctx context.Context, id int64) (bool, error) {
	return s.Repo.Exists(ctx, id)
}

func (s *Service) Get(ctx context.Context, id int64) (*entity.User, error) {
	u, err := s.Repo.GetByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	return u, err
}

// Create inserts a new user. The email pre-check keeps the common case a
// clean 409; the schema-level UNIQUE column catches writers that race past
// it, and both surface as ErrEmailTaken.
func (s *Service) Create(ctx context.Context, draft entity.UserDraft) (*entity.User, error) {
	if draft.Email != nil {
		taken, err := s.Repo.EmailExists(ctx, *draft.Email, 0)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrEmailTaken
		}
	}
	u, err := s.Repo.Create(ctx, draft)
	if errors.Is(err, repo.ErrDuplicateEmail) {
		return nil, ErrEmailTaken
	}
	if err != nil {
		s.Logger.WithError(err).Error("user create failed")
		return nil, err
	}
	return u, nil
}

// Update applies the non-nil draft fields to an existing user. An email
// change is checked against every other user, so keeping the current
// email is always allowed.
func (s *Service) Update(ctx context.Context, id int64, draft entity.UserDraft) (*entity.User, error) {
	if draft.Email != nil {
		taken, err := s.Repo.EmailExists(ctx, *draft.Email, id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrEmailTaken
		}
	}
	u, err := s.Repo.Update(ctx, id, draft)
	switch {
	case errors.Is(err, repo.ErrNotFound):
		return nil, ErrUserNotFound
	case errors.Is(err, repo.ErrDuplicateEmail):
		return nil, ErrEmailTaken
	case err != nil:
		s.Logger.WithError(err).WithField("id", id).Error("user update failed")
		return nil, err
	}
	return u, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	exists, err := s.Repo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return ErrUserNotFound
	}
	return s.Repo.Delete(ctx, id)
}
