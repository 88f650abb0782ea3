package models

const (
	NotifyInfo    = "info"
	NotifySuccess = "success"
	NotifyWarning = "warning"
	NotifyError   = "error"
)

// Notification is owned by the recipient student. Created in bulk by
// the fan-out; after creation only the owner mutates it (marking read)
// or deletes it.
type Notification struct {
	Scoped
	Title   string `json:"title" gorm:"size:120;not null"`
	Message string `json:"message" gorm:"type:text"`
	Type    string `json:"type" gorm:"size:10;not null"`
	Read    bool   `json:"read" gorm:"not null;default:false"`
}
