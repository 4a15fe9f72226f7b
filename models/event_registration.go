package models

import (
	"time"

	"gorm.io/gorm"
)

type EventRegistration struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	StudentID    uint      `json:"student_id" gorm:"index;not null"`
	EventID      uint      `json:"event_id" gorm:"index;not null"`
	RegisteredAt time.Time `json:"registered_at" gorm:"not null"`
	Status       string    `json:"status" gorm:"size:20;not null;default:'registered'"` // registered | cancelled

	Student *Student `json:"student,omitempty"`
	Event   *Event   `json:"event,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}
