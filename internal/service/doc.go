// Package service contains the application-specific use cases and business
// logic. It orchestrates interactions between domain objects and repositories
// (defined in internal/store) to fulfill application features.
//
// Every operation that acts on behalf of a user receives the resolved
// principal explicitly as a *domain.User argument; services never look the
// caller up themselves. Authentication (login, logout, token resolution)
// lives in the auth subpackage.
//
// Error Handling:
//   - Expected conditions are returned as sentinel errors (ErrContactNotFound,
//     ErrUsernameTaken) or as *domain.ValidationError.
//   - Unexpected store failures are wrapped in *ServiceError so callers can
//     still reach the underlying cause with errors.Is/errors.As.
//   - The API layer maps these errors to HTTP status codes.
package service
