// Package session keeps attendance and login-session rows consistent with
// the live authentication state, and derives the elapsed-shift display.
package session

import (
	"fmt"
	"sync"
	"time"

	"github.com/aldawsari/shopdesk/internal/models"
	"github.com/aldawsari/shopdesk/internal/timeutil"
)

// EventKind labels an authentication state change.
type EventKind string

const (
	EventSignedIn  EventKind = "signed_in"
	EventSignedOut EventKind = "signed_out"
	EventInitial   EventKind = "initial" // session restored from disk
)

// Identity is the authenticated user as published to the rest of the app.
type Identity struct {
	ID    string
	Email string
	Name  string
	Role  models.Role
}

// StartResult mirrors what the attendance auto-start reports back.
type StartResult struct {
	AttendanceID uint
	NewSession   bool
}

// Store is the narrow slice of the data layer the reconciler needs.
// ActiveSessionStart must return (nil, nil) when no open row exists;
// "no rows" is never an error here.
type Store interface {
	AutoStartAttendance(userID string) (StartResult, error)
	EndCurrentAttendance(userID string) (bool, error)
	ActiveSessionStart(userID string, day time.Time) (*time.Time, error)
	StartLoginSession(userID, deviceInfo string) (uint, error)
	EndLoginSession(sessionID uint) error
}

// Profiles resolves the display name and role for a user ID.
type Profiles interface {
	GetUserProfile(userID string) (name string, role models.Role, err error)
}

// Notifier receives bookkeeping failures that must not block login or
// logout. Implementations should be non-blocking.
type Notifier interface {
	Notify(action string, err error)
}

// Snapshot is the value published to consumers. Readers get a copy and
// never mutate reconciler state.
type Snapshot struct {
	User               *Identity
	Loading            bool
	ActiveSessionStart *time.Time
}

// Reconciler owns the mapping from authenticated identity to the open
// attendance row and the open login-session row. It is the sole writer of
// the published snapshot.
type Reconciler struct {
	store      Store
	profiles   Profiles
	notify     Notifier
	deviceInfo string
	now        func() time.Time

	mu             sync.Mutex
	user           *Identity
	start          *time.Time
	day            time.Time // calendar day start belongs to
	loginSessionID uint
	loading        bool
	token          uint64 // bumped per auth event; stale fetches are dropped

	wg sync.WaitGroup
}

// NewReconciler creates a reconciler in the loading state.
func NewReconciler(store Store, profiles Profiles, notify Notifier, deviceInfo string) *Reconciler {
	return &Reconciler{
		store:      store,
		profiles:   profiles,
		notify:     notify,
		deviceInfo: deviceInfo,
		now:        time.Now,
		loading:    true,
	}
}

// SetClock overrides the reconciler's clock. Intended for tests.
func (r *Reconciler) SetClock(now func() time.Time) {
	r.now = now
}

// OnAuthEvent reacts to a sign-in, sign-out or session-restore event.
//
// Identity publication never waits on attendance bookkeeping: the
// auto-start call and the login-session insert run detached, their
// failures go to the Notifier, and only the active-session fetch result
// is published afterwards (guarded by an event token so that a stale
// response cannot overwrite a newer state).
//
// Profile enrichment is the one fatal path: without a role the app cannot
// gate anything, so the error is returned and the caller is expected to
// sign the user back out.
func (r *Reconciler) OnAuthEvent(kind EventKind, ident *Identity) error {
	r.mu.Lock()
	r.token++
	tok := r.token
	r.mu.Unlock()

	if kind == EventSignedOut || ident == nil {
		r.mu.Lock()
		outgoing := r.user
		sessionID := r.loginSessionID
		r.user = nil
		r.start = nil
		r.loginSessionID = 0
		r.loading = false
		r.mu.Unlock()

		if outgoing == nil {
			return nil
		}

		// Best-effort: closing rows must not block the sign-out.
		r.wg.Add(1)
		go func() {
			defer r.wg.Done()
			if _, err := r.store.EndCurrentAttendance(outgoing.ID); err != nil {
				r.notify.Notify("end attendance", err)
			}
			if err := r.store.EndLoginSession(sessionID); err != nil {
				r.notify.Notify("close login session", err)
			}
		}()
		return nil
	}

	name, role, err := r.profiles.GetUserProfile(ident.ID)
	if err != nil {
		r.mu.Lock()
		r.loading = false
		r.mu.Unlock()
		return fmt.Errorf("load profile for %s: %w", ident.Email, err)
	}

	user := &Identity{ID: ident.ID, Email: ident.Email, Name: name, Role: role}
	if user.Name == "" {
		user.Name = ident.Email
	}

	r.mu.Lock()
	r.user = user
	r.start = nil
	r.loading = false
	r.mu.Unlock()

	// Attendance bookkeeping is fire-and-forget from the login path's
	// point of view. The auto-start capability is idempotent, so repeated
	// sign-ins on the same day reuse the open row.
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		if _, err := r.store.AutoStartAttendance(user.ID); err != nil {
			r.notify.Notify("start attendance", err)
		}
		if kind == EventSignedIn {
			id, err := r.store.StartLoginSession(user.ID, r.deviceInfo)
			if err != nil {
				r.notify.Notify("record login session", err)
			} else {
				r.mu.Lock()
				if r.token == tok {
					r.loginSessionID = id
				}
				r.mu.Unlock()
			}
		}
		r.refreshStart(tok, user.ID)
	}()

	return nil
}

// refreshStart fetches the open row's check-in and publishes it, unless a
// newer auth event has superseded this one in the meantime.
func (r *Reconciler) refreshStart(tok uint64, userID string) {
	now := r.now()
	start, err := r.store.ActiveSessionStart(userID, now)
	if err != nil {
		r.notify.Notify("fetch active session", err)
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.token != tok || r.user == nil || r.user.ID != userID {
		return // a newer event won, drop the stale result
	}
	r.start = start
	r.day = timeutil.StartOfDay(now)
}

// OnForeground is the self-heal hook for when the app regains the
// foreground. If the cached work day rolled over, or no start is cached
// at all, the open row is fetched again.
func (r *Reconciler) OnForeground() {
	r.mu.Lock()
	user := r.user
	tok := r.token
	fresh := r.start != nil && timeutil.SameDay(r.day, r.now())
	r.mu.Unlock()

	if user == nil || fresh {
		return
	}

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		r.refreshStart(tok, user.ID)
	}()
}

// AdoptLoginSession attaches a login-session row restored from disk so a
// later sign-out can close it. Session restore never inserts a new audit
// row, it picks up the one the original sign-in created.
func (r *Reconciler) AdoptLoginSession(id uint) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.loginSessionID = id
}

// LoginSessionID returns the audit row attached to the current session,
// or 0 when none is known yet.
func (r *Reconciler) LoginSessionID() uint {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.loginSessionID
}

// Snapshot returns the current published value.
func (r *Reconciler) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	snap := Snapshot{Loading: r.loading}
	if r.user != nil {
		u := *r.user
		snap.User = &u
	}
	if r.start != nil {
		t := *r.start
		snap.ActiveSessionStart = &t
	}
	return snap
}

// Flush blocks until in-flight bookkeeping has settled. Consumers that
// want the active session start right after an auth event (the shift
// timer) call this before reading the snapshot.
func (r *Reconciler) Flush() {
	r.wg.Wait()
}
