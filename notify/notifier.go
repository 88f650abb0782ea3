// Package notify implements the faculty-to-students notification
// fan-out: one Notification row per resolved recipient.
package notify

import (
	"context"

	"go.uber.org/zap"

	"github.com/unicampus/portal/models"
	"github.com/unicampus/portal/store"
)

type TargetKind string

const (
	TargetAll        TargetKind = "all"
	TargetDepartment TargetKind = "department"
	TargetYear       TargetKind = "year"
	TargetSemester   TargetKind = "semester"
)

// Target selects the recipient subset of a faculty's roster.
type Target struct {
	Kind       TargetKind `json:"kind"`
	Department string     `json:"department,omitempty"`
	Year       int        `json:"year,omitempty"`
	Semester   int        `json:"semester,omitempty"`
}

func All() Target                { return Target{Kind: TargetAll} }
func Department(d string) Target { return Target{Kind: TargetDepartment, Department: d} }
func Year(y int) Target          { return Target{Kind: TargetYear, Year: y} }
func Semester(s int) Target      { return Target{Kind: TargetSemester, Semester: s} }

func (t Target) Matches(s models.Student) bool {
	switch t.Kind {
	case TargetAll:
		return true
	case TargetDepartment:
		return s.Department == t.Department
	case TargetYear:
		return s.Year == t.Year
	case TargetSemester:
		return s.Semester == t.Semester
	default:
		return false
	}
}

type Input struct {
	Title   string `json:"title" validate:"required"`
	Message string `json:"message" validate:"required"`
	Type    string `json:"type" validate:"required,oneof=info success warning error"`
}

// Result reports how the fan-out went. Created can be lower than
// Recipients: inserts are independent and there is no rollback of the
// ones that succeeded.
type Result struct {
	Recipients int `json:"recipients"`
	Created    int `json:"created"`
}

type Notifier struct {
	st  *store.Store
	log *zap.Logger
}

func NewNotifier(st *store.Store, log *zap.Logger) *Notifier {
	return &Notifier{st: st, log: log}
}

// Send resolves the faculty's students, filters by target and writes
// one notification per match. Zero recipients is a valid no-op, not
// an error.
func (n *Notifier) Send(ctx context.Context, facultyID string, in Input, target Target) (Result, error) {
	students, err := n.st.Students.ListByOwner(ctx, facultyID)
	if err != nil {
		return Result{}, err
	}

	var res Result
	for _, s := range students {
		if !target.Matches(s) {
			continue
		}
		res.Recipients++
		_, err := n.st.Notifications.Create(ctx, s.ID, models.Notification{
			Title:   in.Title,
			Message: in.Message,
			Type:    in.Type,
			Read:    false,
		})
		if err != nil {
			n.log.Warn("notification insert failed",
				zap.String("student_id", s.ID),
				zap.Error(err))
			continue
		}
		res.Created++
	}
	return res, nil
}
