// Package domain contains the core business entities of the contacts API:
// users with their paired session state, and the contacts they own.
// It is independent of any storage engine or delivery mechanism.
package domain
