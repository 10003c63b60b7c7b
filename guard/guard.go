// Package guard decides whether the current session satisfies the access
// requirements of a protected view or action.
//
// The guard is a three-state machine. It starts Unresolved (session status
// not yet determined), moves to Granted or Denied once the session store has
// been consulted, and falls back to Denied on logout or on any backend 401,
// whenever that arrives. Callers must treat Unresolved as "hold the decision"
// rather than "not authenticated" so a restore in flight never produces a
// false redirect.
package guard

import (
	"sync"

	"github.com/historial/historial-client/internal/types"
	"github.com/historial/historial-client/session"
)

// State is the guard's authorization state.
type State int

const (
	// Unresolved means the session store has not been consulted yet.
	Unresolved State = iota
	// Denied means there is no valid session.
	Denied
	// Granted means a session exists; the role decides admin actions.
	Granted
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case Unresolved:
		return "Unresolved"
	case Denied:
		return "Denied"
	case Granted:
		return "Granted"
	default:
		return "Unknown"
	}
}

// Action is a protected operation the guard can be asked about.
type Action int

const (
	// ActionUseApp is general authenticated access: dashboard, activity
	// list, activity creation.
	ActionUseApp Action = iota
	// ActionViewReports is the aggregated reports view. Admin only.
	ActionViewReports
	// ActionManageUsers is account creation/edit/delete. Admin only.
	ActionManageUsers
	// ActionDeleteActivity removes a logbook record. Admin only.
	ActionDeleteActivity
)

func (a Action) adminOnly() bool { return a != ActionUseApp }

// Guard is safe for concurrent use: Deny is invoked from whichever goroutine
// observed an unauthorized response.
type Guard struct {
	mu    sync.Mutex
	state State
	role  types.Role
}

// New returns a guard in the Unresolved state.
func New() *Guard { return &Guard{} }

// Resolve records the outcome of consulting the session store: a session
// moves the guard to Granted with the session's role, nil moves it to Denied.
// Also used after a successful login.
func (g *Guard) Resolve(s *session.Session) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if s == nil {
		g.state = Denied
		g.role = ""
		return
	}
	g.state = Granted
	g.role = s.Role
}

// Deny moves the guard to Denied. Invoked on logout and on any backend call
// reporting an authorization rejection.
func (g *Guard) Deny() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.state = Denied
	g.role = ""
}

// State returns the current state.
func (g *Guard) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

// Pending reports whether the session status is still undetermined. Callers
// must suspend rendering decisions while this is true.
func (g *Guard) Pending() bool { return g.State() == Unresolved }

// Role returns the granted role. ok is false unless the state is Granted.
func (g *Guard) Role() (types.Role, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.state != Granted {
		return "", false
	}
	return g.role, true
}

// Allows reports whether the requested action is permitted right now.
// Unresolved and Denied permit nothing; Granted permits general access for
// any role and admin actions only for RoleAdmin.
func (g *Guard) Allows(a Action) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.state != Granted {
		return false
	}
	if a.adminOnly() {
		return g.role == types.RoleAdmin
	}
	return true
}
