package admin

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"playroster/internal/password"
	"playroster/pkg/rejection"
)

// Service creates and authenticates supervisor accounts.
type Service interface {
	Create(ctx context.Context, email, pw string) (*Admin, error)
	Authenticate(ctx context.Context, email, pw string) (*Admin, error)
}

type service struct {
	store       Store
	rateLimiter *rate.Limiter
}

func NewService(store Store) Service {
	return &service{
		store:       store,
		rateLimiter: rate.NewLimiter(rate.Every(1*time.Minute), 5),
	}
}

func (s *service) Create(ctx context.Context, email, pw string) (*Admin, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || pw == "" {
		return nil, rejection.New(rejection.KindInvalidInput, "email and password are required")
	}

	hash, salt, err := password.Hash(pw)
	if err != nil {
		return nil, rejection.Wrap(rejection.KindInternal, "hash password", err)
	}

	a := &Admin{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: hash,
		Salt:         salt,
	}
	if err := s.store.Insert(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *service) Authenticate(ctx context.Context, email, pw string) (*Admin, error) {
	if !s.rateLimiter.Allow() {
		return nil, rejection.New(rejection.KindForbidden, "rate limit exceeded")
	}

	a, err := s.store.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, rejection.New(rejection.KindUnauthorized, "wrong admin credentials")
	}

	ok, err := password.Verify(pw, a.Salt, a.PasswordHash)
	if err != nil || !ok {
		return nil, rejection.New(rejection.KindUnauthorized, "wrong admin credentials")
	}
	return a, nil
}
