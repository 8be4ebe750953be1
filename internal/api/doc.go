// Package api provides the HTTP handlers and routing of the contacts API.
//
// Handlers decode JSON request bodies, read the authenticated principal placed
// in the request context by middleware.AuthMiddleware, call the service layer
// and render the {"data", "errors"} envelope from package shared. Service
// errors are translated to status codes by MapErrorToStatusCode and to
// client-safe messages by GetSafeErrorMessage.
package api
