package auth

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/phrazzld/contacts-api/internal/domain"
	"github.com/phrazzld/contacts-api/internal/platform/logger"
	"github.com/phrazzld/contacts-api/internal/store"
)

const (
	// DefaultTokenTTL is how long an issued token stays valid when no TTL is configured.
	DefaultTokenTTL = 30 * 24 * time.Hour

	// LegacyTokenTTL is the lifetime earlier deployments actually granted.
	// They computed "30 days" as 1000*16*24*30 ms, which is 3h12m.
	LegacyTokenTTL = 1000 * 16 * 24 * 30 * time.Millisecond

	// dummyPassword is hashed once per Service so unknown usernames cost a
	// full bcrypt comparison, like known ones.
	dummyPassword = "contacts-api-timing-equaliser"
)

// Login outcomes reported to a LoginRecorder.
const (
	OutcomeSuccess        = "success"
	OutcomeBadCredentials = "bad_credentials"
	OutcomeInvalid        = "invalid"
	OutcomeError          = "error"
)

// Validator checks request structs.
type Validator interface {
	Validate(v any) error
}

// LoginRecorder observes login attempts.
type LoginRecorder interface {
	RecordLogin(outcome string)
}

// LoginRequest carries the credentials of a login attempt.
type LoginRequest struct {
	Username string `json:"username" validate:"notblank,max=100"`
	Password string `json:"password" validate:"notblank,max=100"`
}

// TokenResponse is returned by a successful login.
type TokenResponse struct {
	Token     string `json:"token"`
	ExpiredAt int64  `json:"expiredAt"`
}

// Service issues and revokes session tokens.
type Service struct {
	users     store.UserStore
	hasher    PasswordHasher
	validator Validator
	ttl       time.Duration
	logger    *slog.Logger

	now       func() time.Time
	newToken  func() string
	recorder  LoginRecorder
	dummyHash string
}

// Option configures a Service.
type Option func(*Service)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithTokenGenerator replaces the random UUID token source.
func WithTokenGenerator(gen func() string) Option {
	return func(s *Service) { s.newToken = gen }
}

// WithLoginRecorder reports every login outcome to r.
func WithLoginRecorder(r LoginRecorder) Option {
	return func(s *Service) { s.recorder = r }
}

// NewService creates the authentication service. A non-positive ttl selects DefaultTokenTTL.
func NewService(
	users store.UserStore,
	hasher PasswordHasher,
	validator Validator,
	ttl time.Duration,
	logger *slog.Logger,
	opts ...Option,
) (*Service, error) {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}

	dummyHash, err := hasher.Hash(dummyPassword)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare dummy password hash: %w", err)
	}

	s := &Service{
		users:     users,
		hasher:    hasher,
		validator: validator,
		ttl:       ttl,
		logger:    logger.With("component", "auth_service"),
		now:       time.Now,
		newToken:  uuid.NewString,
		dummyHash: dummyHash,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// TTL reports the lifetime given to new tokens.
func (s *Service) TTL() time.Duration {
	return s.ttl
}

// Login verifies the credentials and issues a new token, replacing any
// token the user already had.
func (s *Service) Login(ctx context.Context, req LoginRequest) (TokenResponse, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := s.validator.Validate(req); err != nil {
		s.record(OutcomeInvalid)
		return TokenResponse{}, err
	}

	user, err := s.users.GetByUsername(ctx, req.Username)
	if err != nil && !store.IsNotFoundError(err) {
		log.Error("failed to look up user for login", "error", err)
		s.record(OutcomeError)
		return TokenResponse{}, fmt.Errorf("failed to look up user: %w", err)
	}

	found := err == nil
	hash := s.dummyHash
	if found {
		hash = user.PasswordHash
	}
	ok := s.hasher.Compare(hash, req.Password) == nil && found
	if !ok {
		log.Debug("login rejected", "username", req.Username)
		s.record(OutcomeBadCredentials)
		return TokenResponse{}, ErrBadCredentials
	}

	session := domain.NewSession(s.newToken(), s.now(), s.ttl)
	if err := s.users.UpdateSession(ctx, user.Username, session); err != nil {
		log.Error("failed to store session", "error", err, "username", user.Username)
		s.record(OutcomeError)
		return TokenResponse{}, fmt.Errorf("failed to store session: %w", err)
	}

	log.Info("user logged in", "username", user.Username)
	s.record(OutcomeSuccess)
	return TokenResponse{Token: session.Token, ExpiredAt: session.ExpiredAt}, nil
}

// Logout revokes the principal's token. Logging out twice is not an error.
func (s *Service) Logout(ctx context.Context, principal *domain.User) error {
	if err := s.users.UpdateSession(ctx, principal.Username, nil); err != nil {
		logger.FromContextOrDefault(ctx, s.logger).
			Error("failed to clear session", "error", err, "username", principal.Username)
		return fmt.Errorf("failed to clear session: %w", err)
	}

	principal.Session = nil
	return nil
}

func (s *Service) record(outcome string) {
	if s.recorder != nil {
		s.recorder.RecordLogin(outcome)
	}
}
