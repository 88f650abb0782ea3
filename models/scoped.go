package models

import "time"

// Scoped is the base shape shared by every owner-scoped record. OwnerID
// is the sole access-control mechanism: queries always filter on it.
type Scoped struct {
	ID        string    `json:"id" gorm:"primaryKey;size:36"`
	OwnerID   string    `json:"owner_id" gorm:"index;size:36;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *Scoped) GetID() string        { return s.ID }
func (s *Scoped) SetID(id string)      { s.ID = id }
func (s *Scoped) GetOwnerID() string   { return s.OwnerID }
func (s *Scoped) SetOwnerID(id string) { s.OwnerID = id }

// Touch stamps UpdatedAt, and CreatedAt on first write.
func (s *Scoped) Touch(now time.Time) {
	if s.CreatedAt.IsZero() {
		s.CreatedAt = now
	}
	s.UpdatedAt = now
}
