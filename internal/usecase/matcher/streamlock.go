package matcher

import (
	"sync"

	"github.com/google/uuid"
	"github.com/simaogato/cryptotax-backend/internal/domain"
)

// streamLocks serializes disposal processing per (owner, token, chain)
// stream. Each event mutates lot state the next event reads, so one
// stream must never run concurrently with itself; different streams
// share no mutable state and run in parallel freely.
type streamLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newStreamLocks() *streamLocks {
	return &streamLocks{locks: make(map[string]*sync.Mutex)}
}

// acquire returns the locked mutex for the stream. The caller must
// Unlock it when the event is committed or rejected.
func (s *streamLocks) acquire(ownerID uuid.UUID, token domain.Token) *sync.Mutex {
	key := ownerID.String() + "|" + token.Symbol + "|" + token.Chain + "|" + token.Contract

	s.mu.Lock()
	lock, ok := s.locks[key]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[key] = lock
	}
	s.mu.Unlock()

	lock.Lock()
	return lock
}
