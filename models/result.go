package models

// Result is owned by the student it was published for.
type Result struct {
	Scoped
	SubjectCode string `json:"subject_code" gorm:"size:20;not null"`
	SubjectName string `json:"subject_name" gorm:"size:120"`
	Semester    int    `json:"semester"`
	Marks       int    `json:"marks"`
	MaxMarks    int    `json:"max_marks"`
	Grade       string `json:"grade" gorm:"size:4"`
}
