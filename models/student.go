package models

// Student is owned by the faculty member responsible for it
// (OwnerID = faculty id).
type Student struct {
	Scoped
	StudentCode string `json:"student_code" gorm:"size:20;index"`
	Name        string `json:"name" gorm:"size:120;not null"`
	Email       string `json:"email" gorm:"size:120"`
	Phone       string `json:"phone" gorm:"size:20"`
	Department  string `json:"department" gorm:"size:60"`
	Year        int    `json:"year"`
	Semester    int    `json:"semester"`
	Address     string `json:"address" gorm:"type:text"`
}
