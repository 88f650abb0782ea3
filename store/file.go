package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/unicampus/portal/models"
)

// NewFile returns a Store persisted as one JSON array per collection
// under dir, the local fallback used when no database is configured.
// Every write rewrites the whole collection file; there is no indexing
// and no partial write. A file that fails to parse is treated as an
// empty collection rather than an error.
func NewFile(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create store dir: %w", err)
	}
	return &Store{
		Users:              newFileCollection[models.User](dir, "users"),
		Faculty:            newFileCollection[models.Faculty](dir, "faculty"),
		Students:           newFileCollection[models.Student](dir, "students"),
		Attendance:         newFileCollection[models.Attendance](dir, "attendance"),
		Fees:               newFileCollection[models.Fee](dir, "fees"),
		Assignments:        newFileCollection[models.Assignment](dir, "assignments"),
		Submissions:        newFileCollection[models.Submission](dir, "submissions"),
		Results:            newFileCollection[models.Result](dir, "results"),
		Events:             newFileCollection[models.Event](dir, "events"),
		EventRegistrations: newFileCollection[models.EventRegistration](dir, "event_registrations"),
		TransportRoutes:    newFileCollection[models.TransportRoute](dir, "transport_routes"),
		TransportBookings:  newFileCollection[models.TransportBooking](dir, "transport_bookings"),
		Notifications:      newFileCollection[models.Notification](dir, "notifications"),
		Messages:           newFileCollection[models.Message](dir, "messages"),
	}, nil
}

func newFileCollection[T any, PT Entity[T]](dir, name string) *memCollection[T, PT] {
	path := filepath.Join(dir, name+".json")
	c := newMemCollection[T, PT]()

	if b, err := os.ReadFile(path); err == nil {
		var arr []T
		if err := json.Unmarshal(b, &arr); err == nil {
			for i := range arr {
				c.recs[PT(&arr[i]).GetID()] = arr[i]
			}
		}
	}

	c.persist = func(snapshot []T) error {
		b, err := json.MarshalIndent(snapshot, "", "  ")
		if err != nil {
			return err
		}
		tmp := path + ".tmp"
		if err := os.WriteFile(tmp, b, 0o644); err != nil {
			return err
		}
		return os.Rename(tmp, path)
	}
	return c
}
