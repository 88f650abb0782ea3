package models

const (
	AttendancePresent = "present"
	AttendanceAbsent  = "absent"
	AttendanceLate    = "late"
)

// Attendance is append-only from the marking panel: one row per
// student per session (OwnerID = student id).
type Attendance struct {
	Scoped
	SubjectCode string `json:"subject_code" gorm:"size:20;not null"`
	Date        string `json:"date" gorm:"size:10;not null"` // YYYY-MM-DD
	Status      string `json:"status" gorm:"size:10;not null"`
	Note        string `json:"note" gorm:"type:text"`
}
