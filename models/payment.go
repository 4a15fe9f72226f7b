package models

import (
	"time"

	"gorm.io/gorm"
)

type Payment struct {
	ID                   uint      `json:"id" gorm:"primaryKey"`
	StudentID            uint      `json:"student_id" gorm:"index;not null"`
	BillID               uint      `json:"bill_id" gorm:"index;not null"`
	Amount               float64   `json:"amount" gorm:"type:decimal(10,3);not null"`
	PaymentDate          time.Time `json:"payment_date" gorm:"not null"`
	Method               string    `json:"method" gorm:"size:20;not null"`
	TransactionReference string    `json:"transaction_reference" gorm:"size:64"`
	Notes                string    `json:"notes" gorm:"type:text"`

	Student *Student `json:"student,omitempty"`
	Bill    *Bill    `json:"bill,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}
