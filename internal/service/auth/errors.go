package auth

import "errors"

// Authentication errors. The API layer maps all three to 401 Unauthorized.
var (
	// ErrUnauthenticated indicates the token header was absent or matched no user.
	ErrUnauthenticated = errors.New("please login first")

	// ErrTokenExpired indicates the token matched a user whose session has lapsed.
	ErrTokenExpired = errors.New("token expired")

	// ErrBadCredentials indicates an unknown username or a wrong password.
	// The two cases are deliberately indistinguishable.
	ErrBadCredentials = errors.New("Username or Password wrong") //nolint:staticcheck // client-facing message
)
