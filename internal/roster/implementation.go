// internal/roster/implementation.go
package roster

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"playroster/internal/metrics"
	"playroster/internal/password"
	"playroster/pkg/rejection"
)

// service implements the Service interface.
type service struct {
	store       Store
	metrics     *metrics.Metrics
	rateLimiter *rate.Limiter
}

// NewService creates a new roster service instance. metrics may be nil.
func NewService(store Store, m *metrics.Metrics) Service {
	return &service{
		store:       store,
		metrics:     m,
		rateLimiter: rate.NewLimiter(rate.Every(1*time.Minute), 5), // 5 requests per minute
	}
}

// Register creates a new child with credentials.
func (s *service) Register(ctx context.Context, name, email, pw string) (*Child, error) {
	if !s.rateLimiter.Allow() {
		return nil, rejection.New(rejection.KindForbidden, "rate limit exceeded")
	}

	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))
	if name == "" || email == "" || pw == "" {
		return nil, rejection.New(rejection.KindInvalidInput, "name, email and password are required")
	}

	hash, salt, err := password.Hash(pw)
	if err != nil {
		return nil, rejection.Wrap(rejection.KindInternal, "hash password", err)
	}

	child := &Child{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Salt:         salt,
		Status:       Absent,
	}
	if err := s.store.Insert(ctx, child); err != nil {
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.ChildrenRegistered.Inc()
	}
	return child, nil
}

// Create adds a credential-less child to the roster.
func (s *service) Create(ctx context.Context, name string) (*Child, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, rejection.New(rejection.KindInvalidInput, "name is required")
	}

	child := &Child{
		ID:     uuid.New(),
		Name:   name,
		Status: Absent,
	}
	if err := s.store.Insert(ctx, child); err != nil {
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.ChildrenRegistered.Inc()
	}
	return child, nil
}

// Authenticate verifies a child's credentials.
func (s *service) Authenticate(ctx context.Context, email, pw string) (*Child, error) {
	if !s.rateLimiter.Allow() {
		return nil, rejection.New(rejection.KindForbidden, "rate limit exceeded")
	}

	// Lookup and verification failures collapse into one rejection so the
	// response shape does not reveal which credential was wrong.
	child, err := s.store.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, rejection.New(rejection.KindUnauthorized, "wrong credentials")
	}

	ok, err := password.Verify(pw, child.Salt, child.PasswordHash)
	if err != nil || !ok {
		return nil, rejection.New(rejection.KindUnauthorized, "wrong credentials")
	}

	return child, nil
}

// Get retrieves a child by ID.
func (s *service) Get(ctx context.Context, id uuid.UUID) (*Child, error) {
	return s.store.Get(ctx, id)
}
