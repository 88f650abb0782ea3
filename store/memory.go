package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/unicampus/portal/models"
)

// NewMemory returns a Store that lives entirely in process memory.
// Used by tests and as the throwaway dev backend.
func NewMemory() *Store {
	return &Store{
		Users:              newMemCollection[models.User](),
		Faculty:            newMemCollection[models.Faculty](),
		Students:           newMemCollection[models.Student](),
		Attendance:         newMemCollection[models.Attendance](),
		Fees:               newMemCollection[models.Fee](),
		Assignments:        newMemCollection[models.Assignment](),
		Submissions:        newMemCollection[models.Submission](),
		Results:            newMemCollection[models.Result](),
		Events:             newMemCollection[models.Event](),
		EventRegistrations: newMemCollection[models.EventRegistration](),
		TransportRoutes:    newMemCollection[models.TransportRoute](),
		TransportBookings:  newMemCollection[models.TransportBooking](),
		Notifications:      newMemCollection[models.Notification](),
		Messages:           newMemCollection[models.Message](),
	}
}

type memCollection[T any, PT Entity[T]] struct {
	mu   sync.RWMutex
	recs map[string]T
	// persist, when set, receives a full snapshot after every write.
	persist func([]T) error
}

func newMemCollection[T any, PT Entity[T]]() *memCollection[T, PT] {
	return &memCollection[T, PT]{recs: map[string]T{}}
}

func (c *memCollection[T, PT]) snapshotLocked() []T {
	out := make([]T, 0, len(c.recs))
	for _, r := range c.recs {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool {
		return PT(&out[i]).GetID() < PT(&out[j]).GetID()
	})
	return out
}

func (c *memCollection[T, PT]) persistLocked() error {
	if c.persist == nil {
		return nil
	}
	return c.persist(c.snapshotLocked())
}

func (c *memCollection[T, PT]) Create(_ context.Context, ownerID string, rec T) (T, error) {
	p := PT(&rec)
	p.SetID(uuid.NewString())
	p.SetOwnerID(ownerID)
	p.Touch(time.Now().UTC())

	c.mu.Lock()
	defer c.mu.Unlock()
	c.recs[p.GetID()] = rec
	if err := c.persistLocked(); err != nil {
		delete(c.recs, p.GetID())
		var zero T
		return zero, err
	}
	return rec, nil
}

func (c *memCollection[T, PT]) Get(_ context.Context, id string) (T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	rec, ok := c.recs[id]
	if !ok {
		var zero T
		return zero, ErrNotFound
	}
	return rec, nil
}

func (c *memCollection[T, PT]) List(_ context.Context) ([]T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snapshotLocked(), nil
}

func (c *memCollection[T, PT]) ListByOwner(_ context.Context, ownerID string) ([]T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := []T{}
	for _, r := range c.snapshotLocked() {
		if PT(&r).GetOwnerID() == ownerID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (c *memCollection[T, PT]) ListByOwners(_ context.Context, ownerIDs []string) ([]T, error) {
	owners := make(map[string]struct{}, len(ownerIDs))
	for _, id := range ownerIDs {
		owners[id] = struct{}{}
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := []T{}
	for _, r := range c.snapshotLocked() {
		if _, ok := owners[PT(&r).GetOwnerID()]; ok {
			out = append(out, r)
		}
	}
	return out, nil
}

func (c *memCollection[T, PT]) Update(_ context.Context, rec T) (T, error) {
	p := PT(&rec)
	c.mu.Lock()
	defer c.mu.Unlock()
	prev, ok := c.recs[p.GetID()]
	if !ok {
		var zero T
		return zero, ErrNotFound
	}
	p.Touch(time.Now().UTC())
	c.recs[p.GetID()] = rec
	if err := c.persistLocked(); err != nil {
		c.recs[p.GetID()] = prev
		var zero T
		return zero, err
	}
	return rec, nil
}

func (c *memCollection[T, PT]) Delete(_ context.Context, id string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	prev, ok := c.recs[id]
	if !ok {
		return false, nil
	}
	delete(c.recs, id)
	if err := c.persistLocked(); err != nil {
		c.recs[id] = prev
		return false, err
	}
	return true, nil
}
