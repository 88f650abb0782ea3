package models

// Assignment is faculty-owned (OwnerID = faculty id); students under
// that faculty see it.
type Assignment struct {
	Scoped
	Title       string `json:"title" gorm:"size:120;not null"`
	SubjectCode string `json:"subject_code" gorm:"size:20"`
	Description string `json:"description" gorm:"type:text"`
	DueDate     string `json:"due_date" gorm:"size:10"` // YYYY-MM-DD
	MaxMarks    int    `json:"max_marks"`
}

// Submission is student-owned (OwnerID = student id).
type Submission struct {
	Scoped
	AssignmentID string `json:"assignment_id" gorm:"size:36;index;not null"`
	Content      string `json:"content" gorm:"type:text"`
	Marks        *int   `json:"marks,omitempty"` // nil until graded
	Remark       string `json:"remark" gorm:"size:255"`
}
