package service_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/phrazzld/contacts-api/internal/domain"
	"github.com/phrazzld/contacts-api/internal/platform/sqlite"
	"github.com/phrazzld/contacts-api/internal/service"
	"github.com/phrazzld/contacts-api/internal/service/auth"
	"github.com/phrazzld/contacts-api/internal/store"
	"github.com/phrazzld/contacts-api/internal/testdb"
	"github.com/phrazzld/contacts-api/internal/validation"
)

type env struct {
	users    store.UserStore
	contacts store.ContactStore
	hasher   *auth.BcryptHasher
	userSvc  *service.UserService
	contSvc  *service.ContactService
}

func newEnv(t *testing.T) *env {
	t.Helper()

	db := testdb.NewSQLite(t)
	users := sqlite.NewUserStore(db, slog.Default())
	contacts := sqlite.NewContactStore(db, slog.Default())
	hasher := auth.NewBcryptHasher(bcrypt.MinCost)
	v := validation.New()

	return &env{
		users:    users,
		contacts: contacts,
		hasher:   hasher,
		userSvc:  service.NewUserService(users, hasher, v, slog.Default()),
		contSvc:  service.NewContactService(contacts, v, slog.Default()),
	}
}

// register creates a user through the service and returns the stored record,
// which is what the token resolver would hand to a request.
func (e *env) register(t *testing.T, username, password string) *domain.User {
	t.Helper()
	ctx := context.Background()

	require.NoError(t, e.userSvc.Register(ctx, service.RegisterUserRequest{
		Username: username,
		Password: password,
		Name:     "Name " + username,
	}))
	user, err := e.users.GetByUsername(ctx, username)
	require.NoError(t, err)
	return user
}

func strPtr(s string) *string { return &s }
