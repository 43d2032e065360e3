package impl

import (
	"hash/fnv"
	"sync"
)

const sessionLockStripes = 64

// sessionLocks serializes work per key using a fixed set of mutexes.
// Two keys may share a stripe; a key never maps to two stripes.
type sessionLocks struct {
	stripes [sessionLockStripes]sync.Mutex
}

// lock acquires the stripe for key and returns its unlock function.
func (l *sessionLocks) lock(key string) func() {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))

	m := &l.stripes[h.Sum32()%sessionLockStripes]
	m.Lock()

	return m.Unlock
}
