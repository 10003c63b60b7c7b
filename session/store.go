// Package session holds the client's proof of authenticated identity and the
// durable slot it survives restarts in.
//
// A Store keeps at most one Session. Save persists the token and the identity
// record as a pair in a single commit; Restore reconstructs the Session only
// when both halves are present and well-formed, and never fails (malformed
// durable state is treated as "no session").
package session

import "github.com/historial/historial-client/internal/types"

// Session is the client-held result of a successful login: cached profile
// fields plus the bearer token sent on every backend call.
type Session struct {
	NumFicha   string
	GivenName  string
	FamilyName string
	Role       types.Role
	Token      string
}

// FullName returns the technician name the activity form pre-fills.
func (s Session) FullName() string {
	if s.GivenName == "" {
		return s.FamilyName
	}
	if s.FamilyName == "" {
		return s.GivenName
	}
	return s.GivenName + " " + s.FamilyName
}

// Store is the durable slot for the current session.
//
// Implementations must be safe for concurrent use: the transport layer clears
// the store from whatever goroutine observed a 401.
type Store interface {
	// Restore returns the persisted session, or nil when there is none.
	// It never fails; unreadable or partial state counts as none.
	Restore() *Session

	// Save persists the session atomically: token and identity together,
	// or nothing at all.
	Save(Session) error

	// Clear removes any persisted session. Idempotent.
	Clear() error
}
