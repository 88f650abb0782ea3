package models

type Faculty struct {
	Scoped
	FacultyCode string `json:"faculty_code" gorm:"size:20;uniqueIndex"`
	Name        string `json:"name" gorm:"size:120;not null"`
	Department  string `json:"department" gorm:"size:60"`
	Email       string `json:"email" gorm:"size:120"`
	Phone       string `json:"phone" gorm:"size:20"`
}
