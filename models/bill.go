package models

import (
	"time"

	"gorm.io/gorm"
)

// Bill status values.
const (
	BillPending   = "pending"
	BillPaid      = "paid"
	BillOverdue   = "overdue"
	BillCancelled = "cancelled"
)

type Bill struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	StudentID   uint      `json:"student_id" gorm:"index;not null"`
	Description string    `json:"description" gorm:"size:255"`
	Amount      float64   `json:"amount" gorm:"type:decimal(10,3);not null"`
	DueDate     time.Time `json:"due_date" gorm:"not null"`
	Status      string    `json:"status" gorm:"size:20;not null;default:'pending'"`
	BillType    string    `json:"bill_type" gorm:"size:40"` // tuition | housing | lab | other

	Student  *Student  `json:"student,omitempty"`
	Payments []Payment `json:"payments,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

func (b *Bill) IsOverdue(now time.Time) bool {
	return now.After(b.DueDate) && b.Status != BillPaid && b.Status != BillCancelled
}
