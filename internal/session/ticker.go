package session

import (
	"sync"
	"time"

	"github.com/aldawsari/shopdesk/internal/timeutil"
)

// Clock abstracts time for the ticker so tests can drive it.
type Clock interface {
	Now() time.Time
	Tick(d time.Duration) <-chan time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

func (systemClock) Tick(d time.Duration) <-chan time.Time { return time.Tick(d) }

// Ticker turns an active session start into a live HH:MM:SS display with
// no network dependency. One value per second, stopped deterministically
// by Stop or by a sign-out replacing the run.
type Ticker struct {
	clock    Clock
	interval time.Duration

	mu   sync.Mutex
	stop chan struct{}
}

// NewTicker returns a ticker on the system clock with a one-second tick.
func NewTicker() *Ticker {
	return NewTickerWithClock(systemClock{})
}

// NewTickerWithClock returns a ticker on the given clock. Intended for
// tests.
func NewTickerWithClock(clock Clock) *Ticker {
	return &Ticker{clock: clock, interval: time.Second}
}

// Start begins emitting the elapsed time. A zero start means no open
// session: the channel carries the fixed "00:00:00" and closes without a
// timer ever running. A start in the future (clock skew) is clamped to
// "00:00:00" and ticking stops; negative durations are never emitted.
//
// The channel is closed when ticking ends. Calling Start again replaces
// the previous run.
func (t *Ticker) Start(start time.Time) <-chan string {
	t.Stop()

	out := make(chan string, 1)
	stop := make(chan struct{})

	t.mu.Lock()
	t.stop = stop
	t.mu.Unlock()

	if start.IsZero() {
		out <- "00:00:00"
		close(out)
		return out
	}

	elapsed := t.clock.Now().Sub(start)
	if elapsed < 0 {
		out <- "00:00:00"
		close(out)
		return out
	}
	out <- timeutil.FormatHHMMSS(elapsed)

	go t.run(start, out, stop)
	return out
}

func (t *Ticker) run(start time.Time, out chan string, stop chan struct{}) {
	defer close(out)

	ticks := t.clock.Tick(t.interval)
	for {
		select {
		case <-stop:
			return
		case now := <-ticks:
			// Stop wins over a tick that raced with it.
			select {
			case <-stop:
				return
			default:
			}

			elapsed := now.Sub(start)
			if elapsed < 0 {
				emit(out, "00:00:00")
				return
			}
			emit(out, timeutil.FormatHHMMSS(elapsed))
		}
	}
}

// emit drops the value when the reader is behind; this is a display feed,
// missing an intermediate second is fine.
func emit(out chan string, v string) {
	select {
	case out <- v:
	default:
	}
}

// Stop releases the timer. Safe to call repeatedly and on a ticker that
// never started.
func (t *Ticker) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stop != nil {
		close(t.stop)
		t.stop = nil
	}
}
