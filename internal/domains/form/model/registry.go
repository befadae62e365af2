package model

import "sync"

// Slot holds the session of one user. A slot is locked for the whole handling
// of an event so events of the same user never interleave.
type Slot struct {
	sync.Mutex
	Session *Session
	refs    int
}

// Registry keeps a slot for every user with a form in progress or an event
// being handled. Sessions live in memory only and are never expired.
type Registry struct {
	mu    sync.Mutex
	slots map[int64]*Slot
}

func NewRegistry() *Registry {
	return &Registry{slots: make(map[int64]*Slot)}
}

// Acquire returns the user's slot locked, creating it when needed. Every
// Acquire must be paired with a Release.
func (r *Registry) Acquire(userID int64) *Slot {
	r.mu.Lock()
	slot, ok := r.slots[userID]
	if !ok {
		slot = &Slot{}
		r.slots[userID] = slot
	}
	slot.refs++
	r.mu.Unlock()

	slot.Lock()

	return slot
}

// Release unlocks a slot taken with Acquire and forgets it once no session is
// left and nobody else holds or waits for it.
func (r *Registry) Release(userID int64, slot *Slot) {
	slot.Unlock()

	r.mu.Lock()
	defer r.mu.Unlock()

	slot.refs--
	if slot.refs == 0 && slot.Session == nil {
		delete(r.slots, userID)
	}
}

// Len counts the slots currently kept.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.slots)
}

// Active counts the users with a reservation in progress.
func (r *Registry) Active() int {
	r.mu.Lock()
	slots := make([]*Slot, 0, len(r.slots))

	for _, slot := range r.slots {
		slots = append(slots, slot)
	}
	r.mu.Unlock()

	active := 0

	for _, slot := range slots {
		slot.Lock()
		if slot.Session != nil {
			active++
		}
		slot.Unlock()
	}

	return active
}
