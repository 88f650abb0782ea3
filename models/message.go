package models

// Message is owned by its recipient (OwnerID = recipient id), so an
// inbox is a single owner read.
type Message struct {
	Scoped
	SenderID   string `json:"sender_id" gorm:"size:36;index;not null"`
	SenderName string `json:"sender_name" gorm:"size:120"`
	Body       string `json:"body" gorm:"type:text;not null"`
	Read       bool   `json:"read" gorm:"not null;default:false"`
}
