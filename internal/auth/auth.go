// Package auth bridges credentials, the persisted session file and the
// session reconciler. Each CLI invocation restores the previous session
// from disk the way a browser restores its auth state on reload.
package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/aldawsari/shopdesk/internal/db"
	"github.com/aldawsari/shopdesk/internal/session"
)

// persistedSession is what survives between invocations.
type persistedSession struct {
	UserID         string    `json:"user_id"`
	Email          string    `json:"email"`
	LoginSessionID uint      `json:"login_session_id"`
	LoginTime      time.Time `json:"login_time"`
}

// Manager owns the login/logout entry points. Attendance bookkeeping
// failures never surface here; only missing profiles do.
type Manager struct {
	rec       *session.Reconciler
	statePath string
}

// NewManager creates a manager persisting its session at statePath.
func NewManager(rec *session.Reconciler, statePath string) *Manager {
	return &Manager{rec: rec, statePath: statePath}
}

// Login verifies credentials and emits the signed-in event. Returns false
// without an error on a wrong email or password. A profile that cannot be
// loaded is fatal: the user is signed straight back out.
func (m *Manager) Login(email, pass string) (bool, error) {
	user, err := db.Authenticate(email, pass)
	if err != nil {
		if errors.Is(err, db.ErrInvalidCredentials) {
			return false, nil
		}
		return false, err
	}

	ident := &session.Identity{ID: user.ID, Email: user.Email}
	if err := m.rec.OnAuthEvent(session.EventSignedIn, ident); err != nil {
		_ = m.rec.OnAuthEvent(session.EventSignedOut, nil)
		m.rec.Flush()
		m.clearState()
		return false, err
	}

	// The process is short-lived, so detached bookkeeping must settle
	// before we persist and return. Its failures were already routed to
	// the notifier and do not fail the login.
	m.rec.Flush()

	m.saveState(persistedSession{
		UserID:         user.ID,
		Email:          user.Email,
		LoginSessionID: m.rec.LoginSessionID(),
		LoginTime:      time.Now(),
	})
	_ = db.LogActivity(user.ID, "login", DeviceInfo())

	return true, nil
}

// Restore replays the persisted session as an "initial" auth event and
// returns the restored identity, or nil when nobody is logged in.
func (m *Manager) Restore() (*session.Identity, error) {
	st, err := m.loadState()
	if err != nil {
		return nil, err
	}
	if st == nil {
		return nil, nil
	}

	m.rec.AdoptLoginSession(st.LoginSessionID)

	ident := &session.Identity{ID: st.UserID, Email: st.Email}
	if err := m.rec.OnAuthEvent(session.EventInitial, ident); err != nil {
		// Without a profile the app cannot gate anything: forced sign-out.
		_ = m.rec.OnAuthEvent(session.EventSignedOut, nil)
		m.rec.Flush()
		m.clearState()
		return nil, err
	}

	snap := m.rec.Snapshot()
	return snap.User, nil
}

// Logout emits the signed-out event, waits for the best-effort row closes
// to settle and removes the persisted session. It never fails because of
// bookkeeping.
func (m *Manager) Logout() error {
	snap := m.rec.Snapshot()

	if err := m.rec.OnAuthEvent(session.EventSignedOut, nil); err != nil {
		return err
	}
	m.rec.Flush()
	m.clearState()

	if snap.User != nil {
		_ = db.LogActivity(snap.User.ID, "logout", DeviceInfo())
	}
	return nil
}

// DeviceInfo describes the machine for the login-session audit row.
func DeviceInfo() string {
	host, err := os.Hostname()
	if err != nil {
		host = "unknown"
	}
	return fmt.Sprintf("%s (%s/%s)", host, runtime.GOOS, runtime.GOARCH)
}

func (m *Manager) loadState() (*persistedSession, error) {
	data, err := os.ReadFile(m.statePath)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read session file: %w", err)
	}

	var st persistedSession
	if err := json.Unmarshal(data, &st); err != nil {
		// A corrupt session file should never lock the user out.
		m.clearState()
		return nil, nil
	}
	if st.UserID == "" {
		return nil, nil
	}
	return &st, nil
}

func (m *Manager) saveState(st persistedSession) {
	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return
	}
	_ = os.WriteFile(m.statePath, data, 0600)
}

func (m *Manager) clearState() {
	_ = os.Remove(m.statePath)
}
