package models

// User holds login credentials. ProfileID links to the Student or
// Faculty record whose id becomes the session identity id.
type User struct {
	Scoped
	Username  string `json:"username" gorm:"uniqueIndex;size:60;not null"`
	Password  string `json:"-" gorm:"not null"` // bcrypt hash
	Role      string `json:"role" gorm:"size:20;not null"`
	Name      string `json:"name" gorm:"size:120"`
	ProfileID string `json:"profile_id" gorm:"size:36"`
}
