package storage

import "sync"

// LockTable serializes writes per file name. Waiters for the same name
// run strictly in acquisition order; distinct names never contend.
//
// Each in-flight holder is represented by a completion channel keyed by
// file name. An acquirer reads the current tail, installs its own channel
// as the new tail, waits for the predecessor to finish, and removes its
// entry at release if it is still the tail. The table lives for the
// process lifetime; entries are transient.
type LockTable struct {
	mu    sync.Mutex
	tails map[string]chan struct{}
}

// NewLockTable creates an empty lock table.
func NewLockTable() *LockTable {
	return &LockTable{tails: make(map[string]chan struct{})}
}

// Acquire blocks until every earlier acquirer of name has released, then
// returns the release function. The release function must be called
// exactly once, whether the guarded work succeeds or fails.
func (lt *LockTable) Acquire(name string) (release func()) {
	done := make(chan struct{})

	lt.mu.Lock()
	prev := lt.tails[name]
	lt.tails[name] = done
	lt.mu.Unlock()

	if prev != nil {
		<-prev
	}

	return func() {
		close(done)
		lt.mu.Lock()
		if lt.tails[name] == done {
			delete(lt.tails, name)
		}
		lt.mu.Unlock()
	}
}

// WithLock runs fn while holding the lock for name.
func (lt *LockTable) WithLock(name string, fn func() error) error {
	release := lt.Acquire(name)
	defer release()
	return fn()
}
