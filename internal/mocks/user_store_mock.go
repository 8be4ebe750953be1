package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/phrazzld/contacts-api/internal/domain"
	"github.com/phrazzld/contacts-api/internal/store"
)

// TestifyMockUserStore is a mock of store.UserStore interface for use with testify/mock
type TestifyMockUserStore struct {
	mock.Mock
}

var _ store.UserStore = (*TestifyMockUserStore)(nil)

// Create is a mock implementation of store.UserStore.Create
func (m *TestifyMockUserStore) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// Exists is a mock implementation of store.UserStore.Exists
func (m *TestifyMockUserStore) Exists(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

// GetByUsername is a mock implementation of store.UserStore.GetByUsername
func (m *TestifyMockUserStore) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if user, ok := args.Get(0).(*domain.User); ok {
		return user, args.Error(1)
	}
	return nil, args.Error(1)
}

// GetByToken is a mock implementation of store.UserStore.GetByToken
func (m *TestifyMockUserStore) GetByToken(ctx context.Context, token string) (*domain.User, error) {
	args := m.Called(ctx, token)
	if user, ok := args.Get(0).(*domain.User); ok {
		return user, args.Error(1)
	}
	return nil, args.Error(1)
}

// UpdateProfile is a mock implementation of store.UserStore.UpdateProfile
func (m *TestifyMockUserStore) UpdateProfile(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// UpdateSession is a mock implementation of store.UserStore.UpdateSession
func (m *TestifyMockUserStore) UpdateSession(ctx context.Context, username string, session *domain.Session) error {
	args := m.Called(ctx, username, session)
	return args.Error(0)
}

// DeleteAll is a mock implementation of store.UserStore.DeleteAll
func (m *TestifyMockUserStore) DeleteAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
