package watch

import (
	"sync"
	"sync/atomic"
)

// Token is a single-use change notification token. Once it has signaled
// a change it stays changed; consumers either poll HasChanged or register
// a callback.
type Token struct {
	mu        sync.RWMutex
	changed   atomic.Bool
	callbacks []func()
}

// HasChanged returns true if a change has occurred.
func (t *Token) HasChanged() bool {
	return t.changed.Load()
}

// RegisterChangeCallback registers a callback to be invoked when a change
// occurs. Returns a function to unregister the callback. A callback
// registered after the token has already changed is invoked immediately.
func (t *Token) RegisterChangeCallback(callback func()) (unregister func()) {
	if t.changed.Load() {
		callback()
		return func() {}
	}

	t.mu.Lock()
	// signal may have snapshotted the slice between the check above and
	// taking the lock; a callback appended now would never fire.
	if t.changed.Load() {
		t.mu.Unlock()
		callback()
		return func() {}
	}
	t.callbacks = append(t.callbacks, callback)
	index := len(t.callbacks) - 1
	t.mu.Unlock()

	return func() {
		t.mu.Lock()
		defer t.mu.Unlock()
		if index < len(t.callbacks) {
			// Set to nil instead of removing to avoid index shifting
			t.callbacks[index] = nil
		}
	}
}

// signal marks the token as changed and invokes all callbacks.
func (t *Token) signal() {
	if t.changed.Swap(true) {
		return // Already changed
	}

	t.mu.RLock()
	callbacks := make([]func(), len(t.callbacks))
	copy(callbacks, t.callbacks)
	t.mu.RUnlock()

	for _, cb := range callbacks {
		if cb != nil {
			cb()
		}
	}
}
