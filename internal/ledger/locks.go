package ledger

import "sync"

// conferenceLocks hands out one mutex per conference so reservation
// traffic for different conferences never serializes against each
// other. Entries live for the life of the process, bounded by the
// number of conferences.
type conferenceLocks struct {
	mu    sync.Mutex
	locks map[int]*sync.Mutex
}

func newConferenceLocks() *conferenceLocks {
	return &conferenceLocks{locks: make(map[int]*sync.Mutex)}
}

func (c *conferenceLocks) get(conferenceID int) *sync.Mutex {
	c.mu.Lock()
	defer c.mu.Unlock()

	lock, ok := c.locks[conferenceID]
	if !ok {
		lock = &sync.Mutex{}
		c.locks[conferenceID] = lock
	}

	return lock
}
