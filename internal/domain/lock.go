package domain

import "time"

// LockWait bounds how long a mutating operation waits for an account lock
// before giving up and reporting a busy outcome.
const LockWait = 100 * time.Millisecond

// timedMutex is a channel-token mutex that supports lock acquisition with
// a deadline. It is not reentrant: append/remove primitives therefore run
// under the lock their caller already holds instead of re-acquiring it.
type timedMutex struct {
	token chan struct{}
}

func newTimedMutex() *timedMutex {
	m := &timedMutex{token: make(chan struct{}, 1)}
	m.token <- struct{}{}

	return m
}

// lock blocks until the mutex is acquired.
func (m *timedMutex) lock() {
	<-m.token
}

// lockFor attempts to acquire the mutex, giving up after d.
// A timeout is a normal control-flow outcome, not an error.
func (m *timedMutex) lockFor(d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-m.token:
		return true
	case <-timer.C:
		return false
	}
}

// unlock releases the mutex. The caller must hold it.
func (m *timedMutex) unlock() {
	m.token <- struct{}{}
}
