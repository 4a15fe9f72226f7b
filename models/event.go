package models

import (
	"time"

	"gorm.io/gorm"
)

type Event struct {
	ID              uint       `json:"id" gorm:"primaryKey"`
	Title           string     `json:"title" gorm:"size:255;not null"`
	Description     string     `json:"description" gorm:"type:text"`
	EventDate       time.Time  `json:"event_date" gorm:"not null"`
	EventEndDate    *time.Time `json:"event_end_date"`
	Location        string     `json:"location" gorm:"size:255"`
	Category        string     `json:"category" gorm:"size:100"`
	Capacity        int        `json:"capacity" gorm:"default:0"` // 0 = unlimited
	RegisteredCount int        `json:"registered_count" gorm:"not null;default:0"`
	Organizer       string     `json:"organizer" gorm:"size:255"`
	ImageURL        string     `json:"image_url" gorm:"size:500"`
	IsActive        bool       `json:"is_active" gorm:"not null;default:true"`

	Registrations []EventRegistration `json:"registrations,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

func (e *Event) IsFull() bool {
	return e.Capacity > 0 && e.RegisteredCount >= e.Capacity
}

func (e *Event) SpotsAvailable() *int {
	if e.Capacity == 0 {
		return nil
	}
	n := e.Capacity - e.RegisteredCount
	if n < 0 {
		n = 0
	}
	return &n
}
