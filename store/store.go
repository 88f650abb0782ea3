// Package store is the scoped data access layer: every collection is
// read and written through an owner id, which is the system's only
// access-control mechanism. Owner ids are accepted without existence
// checks and no uniqueness is enforced beyond the record id.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/unicampus/portal/models"
)

// ErrNotFound is returned when an update/get/delete target id does not
// exist in the collection.
var ErrNotFound = errors.New("record not found")

// Entity is the pointer-side contract every stored record satisfies
// through models.Scoped.
type Entity[T any] interface {
	*T
	GetID() string
	SetID(string)
	GetOwnerID() string
	SetOwnerID(string)
	Touch(time.Time)
}

// Collection is one owner-scoped record set. Implementations must
// guarantee that ListByOwner(A) never returns a record owned by B.
type Collection[T any, PT Entity[T]] interface {
	// Create assigns a fresh id and creation timestamp. The owner id
	// is stored as given, valid or not.
	Create(ctx context.Context, ownerID string, rec T) (T, error)
	Get(ctx context.Context, id string) (T, error)
	List(ctx context.Context) ([]T, error)
	ListByOwner(ctx context.Context, ownerID string) ([]T, error)
	ListByOwners(ctx context.Context, ownerIDs []string) ([]T, error)
	// Update replaces the record with the same id, or ErrNotFound.
	Update(ctx context.Context, rec T) (T, error)
	// Delete reports whether a record was removed.
	Delete(ctx context.Context, id string) (bool, error)
}

// Store bundles every collection of the portal behind one handle so
// handlers receive a single injected dependency.
type Store struct {
	Users              Collection[models.User, *models.User]
	Faculty            Collection[models.Faculty, *models.Faculty]
	Students           Collection[models.Student, *models.Student]
	Attendance         Collection[models.Attendance, *models.Attendance]
	Fees               Collection[models.Fee, *models.Fee]
	Assignments        Collection[models.Assignment, *models.Assignment]
	Submissions        Collection[models.Submission, *models.Submission]
	Results            Collection[models.Result, *models.Result]
	Events             Collection[models.Event, *models.Event]
	EventRegistrations Collection[models.EventRegistration, *models.EventRegistration]
	TransportRoutes    Collection[models.TransportRoute, *models.TransportRoute]
	TransportBookings  Collection[models.TransportBooking, *models.TransportBooking]
	Notifications      Collection[models.Notification, *models.Notification]
	Messages           Collection[models.Message, *models.Message]
}

// RosterIDs resolves the ids of every student owned by a faculty
// member, the join used by faculty-side panels.
func (s *Store) RosterIDs(ctx context.Context, facultyID string) ([]string, error) {
	students, err := s.Students.ListByOwner(ctx, facultyID)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(students))
	for _, st := range students {
		ids = append(ids, st.ID)
	}
	return ids, nil
}
