package keylock

import (
	"sync"

	"github.com/puzpuzpuz/xsync"
)

// KeyLock serializes critical sections per string key. Sections guarded by
// different keys proceed independently.
type KeyLock struct {
	locks *xsync.MapOf[string, *sync.Mutex]
}

func New() *KeyLock {
	return &KeyLock{locks: xsync.NewMapOf[*sync.Mutex]()}
}

// Lock acquires the mutex of the given key and returns the unlock function.
//
//	defer l.Lock(key)()
func (l *KeyLock) Lock(key string) func() {
	mutex, _ := l.locks.LoadOrStore(key, &sync.Mutex{})
	mutex.Lock()
	return mutex.Unlock
}
