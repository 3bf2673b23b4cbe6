package client

import (
	"sync"
	"time"
)

// lockout counts failed logins per email inside a rolling window. Once the
// threshold is reached further attempts are refused until the window
// started by the first failure expires. A zero threshold disables it.
type lockout struct {
	mu        sync.Mutex
	threshold int
	window    time.Duration
	now       func() time.Time
	failures  map[string]*failureWindow
}

type failureWindow struct {
	count   int
	started time.Time
}

func newLockout(threshold int, window time.Duration, now func() time.Time) *lockout {
	return &lockout{
		threshold: threshold,
		window:    window,
		now:       now,
		failures:  make(map[string]*failureWindow),
	}
}

func (l *lockout) current(key string) *failureWindow {
	w, ok := l.failures[key]
	if !ok {
		return nil
	}
	if l.window > 0 && l.now().Sub(w.started) >= l.window {
		delete(l.failures, key)
		return nil
	}
	return w
}

// Locked reports whether key reached the threshold in the current window.
func (l *lockout) Locked(key string) bool {
	if l.threshold <= 0 {
		return false
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	w := l.current(key)
	return w != nil && w.count >= l.threshold
}

// RecordFailure counts one failed attempt.
func (l *lockout) RecordFailure(key string) {
	if l.threshold <= 0 {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	w := l.current(key)
	if w == nil {
		w = &failureWindow{started: l.now()}
		l.failures[key] = w
	}
	w.count++
}

// Reset forgets the failures of key, e.g. after a successful login.
func (l *lockout) Reset(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.failures, key)
}
