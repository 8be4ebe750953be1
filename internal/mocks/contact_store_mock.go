package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/phrazzld/contacts-api/internal/domain"
	"github.com/phrazzld/contacts-api/internal/store"
)

// TestifyMockContactStore is a mock of store.ContactStore for use with testify/mock
type TestifyMockContactStore struct {
	mock.Mock
}

var _ store.ContactStore = (*TestifyMockContactStore)(nil)

func (m *TestifyMockContactStore) Create(ctx context.Context, contact *domain.Contact) error {
	args := m.Called(ctx, contact)
	return args.Error(0)
}

func (m *TestifyMockContactStore) GetByOwner(ctx context.Context, owner, id string) (*domain.Contact, error) {
	args := m.Called(ctx, owner, id)
	if contact, ok := args.Get(0).(*domain.Contact); ok {
		return contact, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *TestifyMockContactStore) Update(ctx context.Context, contact *domain.Contact) error {
	args := m.Called(ctx, contact)
	return args.Error(0)
}

func (m *TestifyMockContactStore) DeleteByOwner(ctx context.Context, owner, id string) error {
	args := m.Called(ctx, owner, id)
	return args.Error(0)
}

func (m *TestifyMockContactStore) DeleteAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
