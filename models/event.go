package models

// Event is faculty-owned (OwnerID = faculty id).
type Event struct {
	Scoped
	Title           string `json:"title" gorm:"size:120;not null"`
	Date            string `json:"date" gorm:"size:10;not null"` // YYYY-MM-DD
	StartTime       string `json:"start_time" gorm:"size:5"`     // HH:MM
	EndTime         string `json:"end_time" gorm:"size:5"`
	Location        string `json:"location" gorm:"size:120"`
	MaxParticipants int    `json:"max_participants"`
	EventType       string `json:"event_type" gorm:"size:40"`
	Description     string `json:"description" gorm:"type:text"`
}

// EventRegistration links a student to an event. Scoped to the event
// (OwnerID = event id) so capacity counts are one owner read; the
// student side is resolved by filtering on StudentID.
type EventRegistration struct {
	Scoped
	StudentID   string `json:"student_id" gorm:"size:36;index;not null"`
	StudentName string `json:"student_name" gorm:"size:120"`
}
