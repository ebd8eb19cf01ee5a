// ABOUTME: Cloud auth/session provider contract.
// ABOUTME: The local storage model must function fully without one.

package remote

import "context"

// Session identifies a cloud-side user. ID is the provider's stable
// identifier, User a display name when the provider has one.
type Session struct {
	ID   string
	User string
}

// AuthProvider reconciles the local session with a cloud account. All methods
// are best-effort: the workspace stays usable offline when calls fail.
type AuthProvider interface {
	// Session returns the current cloud session, or nil when not linked.
	Session(ctx context.Context) (*Session, error)

	// SignOut drops the local link to the cloud account.
	SignOut(ctx context.Context) error
}
