// Package storetest holds a behavioural test suite shared by every
// store.UserStore and store.ContactStore implementation.
package storetest

import (
	"context"
	"testing"
	"time"

	"github.com/phrazzld/contacts-api/internal/domain"
	"github.com/phrazzld/contacts-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Factory returns a fresh, empty pair of stores for one subtest.
type Factory func(t *testing.T) (store.UserStore, store.ContactStore)

// Run executes the full suite against the stores built by newStores.
func Run(t *testing.T, newStores Factory) {
	t.Run("UserStore", func(t *testing.T) { runUserStore(t, newStores) })
	t.Run("ContactStore", func(t *testing.T) { runContactStore(t, newStores) })
}

// MustCreateUser stores a user with the given username and returns it.
func MustCreateUser(t *testing.T, users store.UserStore, username string) *domain.User {
	t.Helper()
	user, err := domain.NewUser(username, "$2a$04$placeholderhashplaceholderhashplaceholderhashpla", "Name "+username)
	require.NoError(t, err)
	require.NoError(t, users.Create(context.Background(), user))
	return user
}

func runUserStore(t *testing.T, newStores Factory) {
	ctx := context.Background()

	t.Run("create and get", func(t *testing.T) {
		users, _ := newStores(t)
		created := MustCreateUser(t, users, "eko")

		got, err := users.GetByUsername(ctx, "eko")
		require.NoError(t, err)
		assert.Equal(t, created.Username, got.Username)
		assert.Equal(t, created.Name, got.Name)
		assert.Equal(t, created.PasswordHash, got.PasswordHash)
		assert.Nil(t, got.Session, "new users have no session")
	})

	t.Run("missing user", func(t *testing.T) {
		users, _ := newStores(t)

		_, err := users.GetByUsername(ctx, "nobody")
		assert.ErrorIs(t, err, store.ErrUserNotFound)

		exists, err := users.Exists(ctx, "nobody")
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("duplicate username leaves original untouched", func(t *testing.T) {
		users, _ := newStores(t)
		original := MustCreateUser(t, users, "eko")

		dup, err := domain.NewUser("eko", "$2a$04$otherhash", "Impostor")
		require.NoError(t, err)
		err = users.Create(ctx, dup)
		assert.ErrorIs(t, err, store.ErrUsernameExists)

		got, err := users.GetByUsername(ctx, "eko")
		require.NoError(t, err)
		assert.Equal(t, original.Name, got.Name)
		assert.Equal(t, original.PasswordHash, got.PasswordHash)

		exists, err := users.Exists(ctx, "eko")
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("session lifecycle", func(t *testing.T) {
		users, _ := newStores(t)
		MustCreateUser(t, users, "eko")

		session := domain.NewSession("token-1", time.Now(), time.Hour)
		require.NoError(t, users.UpdateSession(ctx, "eko", session))

		got, err := users.GetByToken(ctx, "token-1")
		require.NoError(t, err)
		assert.Equal(t, "eko", got.Username)
		require.NotNil(t, got.Session)
		assert.Equal(t, *session, *got.Session)

		// A new login overwrites the previous token.
		require.NoError(t, users.UpdateSession(ctx, "eko", domain.NewSession("token-2", time.Now(), time.Hour)))
		_, err = users.GetByToken(ctx, "token-1")
		assert.ErrorIs(t, err, store.ErrUserNotFound)

		require.NoError(t, users.UpdateSession(ctx, "eko", nil))
		_, err = users.GetByToken(ctx, "token-2")
		assert.ErrorIs(t, err, store.ErrUserNotFound)

		got, err = users.GetByUsername(ctx, "eko")
		require.NoError(t, err)
		assert.Nil(t, got.Session, "token and expiry are cleared together")

		// Clearing again is harmless.
		require.NoError(t, users.UpdateSession(ctx, "eko", nil))
	})

	t.Run("session on missing user", func(t *testing.T) {
		users, _ := newStores(t)
		err := users.UpdateSession(ctx, "nobody", domain.NewSession("t", time.Now(), time.Hour))
		assert.ErrorIs(t, err, store.ErrUserNotFound)
	})

	t.Run("update profile keeps session", func(t *testing.T) {
		users, _ := newStores(t)
		user := MustCreateUser(t, users, "eko")
		session := domain.NewSession("token", time.Now(), time.Hour)
		require.NoError(t, users.UpdateSession(ctx, "eko", session))

		user.Name = "Eko Kurniawan"
		user.PasswordHash = "$2a$04$newhash"
		user.Session = nil
		require.NoError(t, users.UpdateProfile(ctx, user))

		got, err := users.GetByUsername(ctx, "eko")
		require.NoError(t, err)
		assert.Equal(t, "Eko Kurniawan", got.Name)
		assert.Equal(t, "$2a$04$newhash", got.PasswordHash)
		require.NotNil(t, got.Session)
		assert.Equal(t, "token", got.Session.Token)

		err = users.UpdateProfile(ctx, &domain.User{Username: "nobody", PasswordHash: "x"})
		assert.ErrorIs(t, err, store.ErrUserNotFound)
	})

	t.Run("delete all", func(t *testing.T) {
		users, contacts := newStores(t)
		MustCreateUser(t, users, "eko")
		MustCreateUser(t, users, "budi")

		require.NoError(t, contacts.DeleteAll(ctx))
		require.NoError(t, users.DeleteAll(ctx))

		exists, err := users.Exists(ctx, "eko")
		require.NoError(t, err)
		assert.False(t, exists)
	})
}

func runContactStore(t *testing.T, newStores Factory) {
	ctx := context.Background()

	newContact := func(t *testing.T, owner string) *domain.Contact {
		t.Helper()
		c, err := domain.NewContact(owner, "Hamzah", "Muhammad Ramadhan", "hamzah@example.com", "081234567890")
		require.NoError(t, err)
		return c
	}

	t.Run("create and get round trip", func(t *testing.T) {
		users, contacts := newStores(t)
		MustCreateUser(t, users, "eko")
		contact := newContact(t, "eko")
		require.NoError(t, contacts.Create(ctx, contact))

		got, err := contacts.GetByOwner(ctx, "eko", contact.ID)
		require.NoError(t, err)
		assert.Equal(t, *contact, *got)
	})

	t.Run("optional fields may be empty", func(t *testing.T) {
		users, contacts := newStores(t)
		MustCreateUser(t, users, "eko")
		contact, err := domain.NewContact("eko", "Hamzah", "", "", "")
		require.NoError(t, err)
		require.NoError(t, contacts.Create(ctx, contact))

		got, err := contacts.GetByOwner(ctx, "eko", contact.ID)
		require.NoError(t, err)
		assert.Empty(t, got.LastName)
		assert.Empty(t, got.Email)
		assert.Empty(t, got.Phone)
	})

	t.Run("foreign contact looks missing", func(t *testing.T) {
		users, contacts := newStores(t)
		MustCreateUser(t, users, "eko")
		MustCreateUser(t, users, "budi")
		contact := newContact(t, "eko")
		require.NoError(t, contacts.Create(ctx, contact))

		_, errForeign := contacts.GetByOwner(ctx, "budi", contact.ID)
		_, errMissing := contacts.GetByOwner(ctx, "budi", "does-not-exist")
		assert.ErrorIs(t, errForeign, store.ErrContactNotFound)
		assert.ErrorIs(t, errMissing, store.ErrContactNotFound)
		assert.Equal(t, errMissing.Error(), errForeign.Error())

		foreign := *contact
		foreign.Owner = "budi"
		foreign.FirstName = "Hijacked"
		assert.ErrorIs(t, contacts.Update(ctx, &foreign), store.ErrContactNotFound)
		assert.ErrorIs(t, contacts.DeleteByOwner(ctx, "budi", contact.ID), store.ErrContactNotFound)

		got, err := contacts.GetByOwner(ctx, "eko", contact.ID)
		require.NoError(t, err)
		assert.Equal(t, "Hamzah", got.FirstName, "foreign update must not apply")
	})

	t.Run("update replaces all fields", func(t *testing.T) {
		users, contacts := newStores(t)
		MustCreateUser(t, users, "eko")
		contact := newContact(t, "eko")
		require.NoError(t, contacts.Create(ctx, contact))

		contact.Replace("Ilham", "", "ilham@example.com", "")
		require.NoError(t, contacts.Update(ctx, contact))

		got, err := contacts.GetByOwner(ctx, "eko", contact.ID)
		require.NoError(t, err)
		assert.Equal(t, "Ilham", got.FirstName)
		assert.Empty(t, got.LastName)
		assert.Equal(t, "ilham@example.com", got.Email)
		assert.Empty(t, got.Phone)
	})

	t.Run("delete", func(t *testing.T) {
		users, contacts := newStores(t)
		MustCreateUser(t, users, "eko")
		contact := newContact(t, "eko")
		require.NoError(t, contacts.Create(ctx, contact))

		require.NoError(t, contacts.DeleteByOwner(ctx, "eko", contact.ID))
		_, err := contacts.GetByOwner(ctx, "eko", contact.ID)
		assert.ErrorIs(t, err, store.ErrContactNotFound)
		assert.ErrorIs(t, contacts.DeleteByOwner(ctx, "eko", contact.ID), store.ErrContactNotFound)
	})

	t.Run("contact requires existing owner", func(t *testing.T) {
		_, contacts := newStores(t)
		err := contacts.Create(ctx, newContact(t, "ghost"))
		assert.ErrorIs(t, err, store.ErrInvalidEntity)
	})
}
