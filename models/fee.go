package models

import "time"

const (
	FeePending = "pending"
	FeePaid    = "paid"
	FeeOverdue = "overdue"
)

// Fee is owned by the student it is billed to. The stored status only
// ever holds pending or paid; overdue is derived at read time from
// DueDate, there is no scheduled transition job.
type Fee struct {
	Scoped
	FeeType       string  `json:"fee_type" gorm:"size:40;not null"`
	Amount        float64 `json:"amount" gorm:"not null"`
	DueDate       string  `json:"due_date" gorm:"size:10;not null"` // YYYY-MM-DD
	PaidDate      string  `json:"paid_date,omitempty" gorm:"size:10"`
	Status        string  `json:"status" gorm:"size:10;not null"`
	TransactionID string  `json:"transaction_id,omitempty" gorm:"size:36"`
}

// EffectiveStatus reports overdue for unpaid fees whose due date has
// elapsed, without mutating the stored row.
func (f Fee) EffectiveStatus(now time.Time) string {
	if f.Status != FeePending {
		return f.Status
	}
	due, err := time.Parse("2006-01-02", f.DueDate)
	if err != nil {
		return f.Status
	}
	if now.After(due.AddDate(0, 0, 1)) {
		return FeeOverdue
	}
	return FeePending
}
