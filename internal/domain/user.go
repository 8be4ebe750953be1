package domain

import (
	"strings"
	"time"
)

// Session is the opaque credential issued at login together with its expiry.
// The token and the expiry exist only as a pair: a user without a session
// has neither.
type Session struct {
	Token string `json:"token"`
	// ExpiredAt is the expiry as Unix epoch milliseconds.
	ExpiredAt int64 `json:"expiredAt"`
}

// NewSession creates a session that expires ttl after now.
func NewSession(token string, now time.Time, ttl time.Duration) *Session {
	return &Session{
		Token:     token,
		ExpiredAt: now.Add(ttl).UnixMilli(),
	}
}

// Expired reports whether the session expiry lies strictly before now,
// compared at millisecond resolution.
func (s *Session) Expired(now time.Time) bool {
	return s.ExpiredAt < now.UnixMilli()
}

// User is a registered account. Username is the immutable primary key.
type User struct {
	Username     string   `json:"username"`
	PasswordHash string   `json:"-"` // Never expose the hash
	Name         string   `json:"name"`
	Session      *Session `json:"-"`
}

// NewUser creates a User from an already hashed password.
func NewUser(username, passwordHash, name string) (*User, error) {
	user := &User{
		Username:     username,
		PasswordHash: passwordHash,
		Name:         name,
	}
	if err := user.Validate(); err != nil {
		return nil, err
	}
	return user, nil
}

// Validate checks the invariants a stored user must satisfy.
func (u *User) Validate() error {
	if strings.TrimSpace(u.Username) == "" {
		return ErrEmptyUsername
	}
	if u.PasswordHash == "" {
		return ErrEmptyPasswordHash
	}
	return nil
}

// LoggedIn reports whether the user currently holds a session.
func (u *User) LoggedIn() bool {
	return u.Session != nil
}
