package models

const (
	RoleStudent = "student"
	RoleFaculty = "faculty"
)

// Identity is the resolved session actor. For students ID is the
// student record id; for faculty the faculty record id. Held in memory
// for the session, never persisted except by the session manager.
type Identity struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	Role        string `json:"role"`

	// role attributes (student only, zero-valued for faculty)
	Department string `json:"department,omitempty"`
	Year       int    `json:"year,omitempty"`
	Semester   int    `json:"semester,omitempty"`
	FacultyID  string `json:"faculty_id,omitempty"`
}
