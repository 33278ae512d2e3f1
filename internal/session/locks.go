package session

import "sync"

type locker struct {
	mu   sync.Mutex
	refs int
}

// KeyedMutex serializes turns per session id: two near-simultaneous messages
// from the same visitor run one after the other, while other sessions stay
// fully independent. Entries are reference counted and removed once the last
// holder unlocks, so the map does not grow with session churn.
type KeyedMutex struct {
	mu      sync.Mutex
	lockers map[string]*locker
}

// NewKeyedMutex creates an empty keyed mutex.
func NewKeyedMutex() *KeyedMutex {
	return &KeyedMutex{lockers: make(map[string]*locker)}
}

// Lock blocks until the lock for key is held and returns the matching unlock
// function.
func (k *KeyedMutex) Lock(key string) (unlock func()) {
	k.mu.Lock()
	l, ok := k.lockers[key]
	if !ok {
		l = &locker{}
		k.lockers[key] = l
	}
	l.refs++
	k.mu.Unlock()

	l.mu.Lock()

	return func() {
		l.mu.Unlock()

		k.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(k.lockers, key)
		}
		k.mu.Unlock()
	}
}
