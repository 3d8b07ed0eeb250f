package session_test

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/aldawsari/shopdesk/internal/models"
	"github.com/aldawsari/shopdesk/internal/session"
	"github.com/aldawsari/shopdesk/internal/timeutil"
)

// record is an in-memory attendance row.
type record struct {
	id       uint
	userID   string
	workDate string
	checkIn  time.Time
	checkOut *time.Time
	duration *int
}

// fakeStore implements session.Store with the same observable contract as
// the real attendance service: reuse-or-create scoped to today, close the
// most recent open row, "no rows" is nil and not an error.
type fakeStore struct {
	mu      sync.Mutex
	now     func() time.Time
	records []record
	nextID  uint

	startErr   error
	endErr     error
	activeErr  error
	activeGate chan struct{} // when set, ActiveSessionStart blocks until closed

	autoStarts  int
	activeCalls int
	sessions    int
}

func newFakeStore(now func() time.Time) *fakeStore {
	return &fakeStore{now: now, nextID: 1}
}

func (s *fakeStore) AutoStartAttendance(userID string) (session.StartResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.autoStarts++
	if s.startErr != nil {
		return session.StartResult{}, s.startErr
	}

	now := s.now()
	today := timeutil.WorkDate(now)
	for i := range s.records {
		r := &s.records[i]
		if r.userID == userID && r.checkOut == nil && r.workDate == today {
			return session.StartResult{AttendanceID: r.id}, nil
		}
	}
	s.records = append(s.records, record{
		id: s.nextID, userID: userID, workDate: today, checkIn: now,
	})
	s.nextID++
	return session.StartResult{AttendanceID: s.nextID - 1, NewSession: true}, nil
}

func (s *fakeStore) EndCurrentAttendance(userID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.endErr != nil {
		return false, s.endErr
	}

	for i := len(s.records) - 1; i >= 0; i-- {
		r := &s.records[i]
		if r.userID == userID && r.checkOut == nil {
			now := s.now()
			minutes := timeutil.DurationMinutes(r.checkIn, now)
			r.checkOut = &now
			r.duration = &minutes
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeStore) ActiveSessionStart(userID string, day time.Time) (*time.Time, error) {
	if s.activeGate != nil {
		<-s.activeGate
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activeCalls++
	if s.activeErr != nil {
		return nil, s.activeErr
	}

	for i := len(s.records) - 1; i >= 0; i-- {
		r := s.records[i]
		if r.userID == userID && r.checkOut == nil && r.workDate == timeutil.WorkDate(day) {
			checkIn := r.checkIn
			return &checkIn, nil
		}
	}
	return nil, nil
}

func (s *fakeStore) StartLoginSession(userID, deviceInfo string) (uint, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions++
	return uint(s.sessions), nil
}

func (s *fakeStore) EndLoginSession(sessionID uint) error { return nil }

func (s *fakeStore) openCount(userID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, r := range s.records {
		if r.userID == userID && r.checkOut == nil {
			n++
		}
	}
	return n
}

type fakeProfiles struct {
	name string
	role models.Role
	err  error
}

func (p fakeProfiles) GetUserProfile(userID string) (string, models.Role, error) {
	return p.name, p.role, p.err
}

type fakeNotifier struct {
	mu      sync.Mutex
	actions []string
}

func (n *fakeNotifier) Notify(action string, err error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.actions = append(n.actions, action)
}

func (n *fakeNotifier) got(action string) bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	for _, a := range n.actions {
		if a == action {
			return true
		}
	}
	return false
}

var employee = &session.Identity{ID: "u1", Email: "sara@shop.local"}

func newTestReconciler(store session.Store, now func() time.Time) (*session.Reconciler, *fakeNotifier) {
	notifier := &fakeNotifier{}
	rec := session.NewReconciler(store, fakeProfiles{name: "Sara", role: models.RoleEmployee}, notifier, "test-device")
	rec.SetClock(now)
	return rec, notifier
}

func TestSignInIsIdempotentWithinOneDay(t *testing.T) {
	now := time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }
	store := newFakeStore(clock)
	rec, _ := newTestReconciler(store, clock)

	for i := 0; i < 2; i++ {
		if err := rec.OnAuthEvent(session.EventSignedIn, employee); err != nil {
			t.Fatalf("OnAuthEvent: %v", err)
		}
		rec.Flush()
	}

	if open := store.openCount("u1"); open != 1 {
		t.Errorf("open records after two sign-ins = %d, want 1", open)
	}
}

func TestBookkeepingFailureDoesNotBlockLogin(t *testing.T) {
	now := time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }
	store := newFakeStore(clock)
	store.startErr = errors.New("rpc unavailable")
	rec, notifier := newTestReconciler(store, clock)

	if err := rec.OnAuthEvent(session.EventSignedIn, employee); err != nil {
		t.Fatalf("OnAuthEvent should swallow bookkeeping failures, got %v", err)
	}

	// User is published immediately, before bookkeeping settles.
	snap := rec.Snapshot()
	if snap.User == nil {
		t.Fatal("user not published after failed bookkeeping")
	}
	if snap.Loading {
		t.Error("loading still true after auth event resolved")
	}

	rec.Flush()
	if !notifier.got("start attendance") {
		t.Error("bookkeeping failure was not routed to the notifier")
	}
}

func TestFatalProfileFailureLeavesUserNil(t *testing.T) {
	now := time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }
	store := newFakeStore(clock)

	notifier := &fakeNotifier{}
	rec := session.NewReconciler(store, fakeProfiles{err: errors.New("profile table down")}, notifier, "test-device")
	rec.SetClock(clock)

	if err := rec.OnAuthEvent(session.EventSignedIn, employee); err == nil {
		t.Fatal("expected an error when the profile cannot be loaded")
	}

	snap := rec.Snapshot()
	if snap.User != nil {
		t.Error("user must not be published without a role")
	}
	if snap.Loading {
		t.Error("loading must settle even on the fatal path")
	}
}

func TestSignOutClosesExactlyOneRecord(t *testing.T) {
	now := time.Date(2026, 8, 31, 17, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }
	store := newFakeStore(clock)

	// Yesterday's record, already closed.
	yesterday := now.AddDate(0, 0, -1)
	closedAt := yesterday.Add(8 * time.Hour)
	closedMinutes := 480
	store.records = append(store.records, record{
		id: 90, userID: "u1", workDate: timeutil.WorkDate(yesterday),
		checkIn: yesterday, checkOut: &closedAt, duration: &closedMinutes,
	})
	// Today's record, still open.
	checkIn := now.Add(-2 * time.Hour)
	store.records = append(store.records, record{
		id: 91, userID: "u1", workDate: timeutil.WorkDate(now), checkIn: checkIn,
	})

	rec, _ := newTestReconciler(store, clock)
	if err := rec.OnAuthEvent(session.EventInitial, employee); err != nil {
		t.Fatalf("restore: %v", err)
	}
	rec.Flush()

	if err := rec.OnAuthEvent(session.EventSignedOut, nil); err != nil {
		t.Fatalf("sign-out: %v", err)
	}
	rec.Flush()

	if open := store.openCount("u1"); open != 0 {
		t.Fatalf("open records after sign-out = %d, want 0", open)
	}
	// The already-closed row is untouched.
	if !store.records[0].checkOut.Equal(closedAt) || *store.records[0].duration != closedMinutes {
		t.Error("sign-out modified a record that was already closed")
	}
	if !store.records[1].checkOut.Equal(now) {
		t.Errorf("open record closed at %v, want %v", store.records[1].checkOut, now)
	}
	if *store.records[1].duration != 120 {
		t.Errorf("duration = %d minutes, want 120", *store.records[1].duration)
	}
}

func TestFullShiftScenario(t *testing.T) {
	// Sign in at 09:00, sign out at 09:05: the attendance row must read
	// check_in 09:00, check_out 09:05, duration 5.
	now := time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC)
	var mu sync.Mutex
	clock := func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		return now
	}
	store := newFakeStore(clock)
	rec, _ := newTestReconciler(store, clock)

	if err := rec.OnAuthEvent(session.EventSignedIn, employee); err != nil {
		t.Fatalf("sign-in: %v", err)
	}
	rec.Flush()

	snap := rec.Snapshot()
	if snap.ActiveSessionStart == nil || !snap.ActiveSessionStart.Equal(now) {
		t.Fatalf("active session start = %v, want %v", snap.ActiveSessionStart, now)
	}

	mu.Lock()
	now = now.Add(5 * time.Minute)
	mu.Unlock()

	if err := rec.OnAuthEvent(session.EventSignedOut, nil); err != nil {
		t.Fatalf("sign-out: %v", err)
	}
	rec.Flush()

	r := store.records[0]
	if !r.checkIn.Equal(time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC)) {
		t.Errorf("check_in = %v", r.checkIn)
	}
	if r.checkOut == nil || !r.checkOut.Equal(time.Date(2026, 8, 31, 9, 5, 0, 0, time.UTC)) {
		t.Errorf("check_out = %v", r.checkOut)
	}
	if r.duration == nil || *r.duration != 5 {
		t.Errorf("duration = %v, want 5", r.duration)
	}

	if rec.Snapshot().ActiveSessionStart != nil {
		t.Error("active session start must clear on sign-out")
	}
}

func TestStaleFetchIsDroppedAfterSignOut(t *testing.T) {
	now := time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }
	store := newFakeStore(clock)
	store.activeGate = make(chan struct{})
	rec, _ := newTestReconciler(store, clock)

	if err := rec.OnAuthEvent(session.EventSignedIn, employee); err != nil {
		t.Fatalf("sign-in: %v", err)
	}
	// The active-session fetch is still in flight when the user signs out.
	if err := rec.OnAuthEvent(session.EventSignedOut, nil); err != nil {
		t.Fatalf("sign-out: %v", err)
	}
	close(store.activeGate)
	rec.Flush()

	snap := rec.Snapshot()
	if snap.User != nil || snap.ActiveSessionStart != nil {
		t.Error("stale fetch overwrote state published by a newer event")
	}
}

func TestForegroundRefreshesAfterDayRollover(t *testing.T) {
	now := time.Date(2026, 8, 31, 23, 0, 0, 0, time.UTC)
	var mu sync.Mutex
	clock := func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		return now
	}
	store := newFakeStore(clock)
	rec, _ := newTestReconciler(store, clock)

	if err := rec.OnAuthEvent(session.EventSignedIn, employee); err != nil {
		t.Fatalf("sign-in: %v", err)
	}
	rec.Flush()
	if rec.Snapshot().ActiveSessionStart == nil {
		t.Fatal("expected an active session before midnight")
	}

	// Same day: foreground is a no-op.
	calls := store.activeCalls
	rec.OnForeground()
	rec.Flush()
	if store.activeCalls != calls {
		t.Error("foreground refetched although the cached day is current")
	}

	// Past midnight the cached day is stale; the open row belongs to
	// yesterday's work date, so today resolves to no active session.
	mu.Lock()
	now = now.Add(2 * time.Hour)
	mu.Unlock()

	rec.OnForeground()
	rec.Flush()

	if rec.Snapshot().ActiveSessionStart != nil {
		t.Error("active session start should clear after the day rolled over")
	}
}
