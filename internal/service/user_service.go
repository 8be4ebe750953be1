package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/phrazzld/contacts-api/internal/domain"
	"github.com/phrazzld/contacts-api/internal/platform/logger"
	"github.com/phrazzld/contacts-api/internal/service/auth"
	"github.com/phrazzld/contacts-api/internal/store"
)

// UserService handles registration and the calling user's profile.
type UserService struct {
	users     store.UserStore
	hasher    auth.PasswordHasher
	validator Validator
	logger    *slog.Logger
}

// NewUserService creates a new UserService
func NewUserService(
	users store.UserStore,
	hasher auth.PasswordHasher,
	validator Validator,
	logger *slog.Logger,
) *UserService {
	return &UserService{
		users:     users,
		hasher:    hasher,
		validator: validator,
		logger:    logger.With("component", "user_service"),
	}
}

// Register creates a new user with a hashed password.
func (s *UserService) Register(ctx context.Context, req RegisterUserRequest) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := s.validator.Validate(req); err != nil {
		return err
	}

	exists, err := s.users.Exists(ctx, req.Username)
	if err != nil {
		log.Error("failed to check username", "error", err)
		return NewServiceError("user", "register", err)
	}
	if exists {
		log.Debug("attempted to register existing username", "username", req.Username)
		return ErrUsernameTaken
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return NewServiceError("user", "register", err)
	}

	user, err := domain.NewUser(req.Username, hash, req.Name)
	if err != nil {
		return err
	}

	if err := s.users.Create(ctx, user); err != nil {
		// Lost a race against a concurrent registration.
		if store.IsDuplicateError(err) {
			return ErrUsernameTaken
		}
		log.Error("failed to save user", "error", err, "username", req.Username)
		return NewServiceError("user", "register", err)
	}

	log.Info("user registered", "username", user.Username)
	return nil
}

// Current returns the profile of principal.
func (s *UserService) Current(principal *domain.User) UserResponse {
	return toUserResponse(principal)
}

// UpdateCurrent applies the non-blank fields of req to principal's profile.
// A new password is hashed with a fresh salt.
func (s *UserService) UpdateCurrent(
	ctx context.Context,
	principal *domain.User,
	req UpdateUserRequest,
) (UserResponse, error) {
	if err := s.validator.Validate(req); err != nil {
		return UserResponse{}, err
	}

	updated := *principal
	if present(req.Name) {
		updated.Name = *req.Name
	}
	if present(req.Password) {
		hash, err := s.hasher.Hash(*req.Password)
		if err != nil {
			return UserResponse{}, NewServiceError("user", "update", err)
		}
		updated.PasswordHash = hash
	}

	if err := s.users.UpdateProfile(ctx, &updated); err != nil {
		logger.FromContextOrDefault(ctx, s.logger).
			Error("failed to update user", "error", err, "username", principal.Username)
		return UserResponse{}, NewServiceError("user", "update", err)
	}

	principal.Name = updated.Name
	principal.PasswordHash = updated.PasswordHash
	return toUserResponse(principal), nil
}

func present(field *string) bool {
	return field != nil && strings.TrimSpace(*field) != ""
}
