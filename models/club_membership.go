package models

import (
	"time"

	"gorm.io/gorm"
)

type ClubMembership struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	StudentID uint      `json:"student_id" gorm:"index;not null"`
	ClubID    uint      `json:"club_id" gorm:"index;not null"`
	JoinDate  time.Time `json:"join_date" gorm:"not null"`
	Role      string    `json:"role" gorm:"size:40;not null;default:'member'"`
	Status    string    `json:"status" gorm:"size:20;not null;default:'active'"` // active | inactive

	Student *Student `json:"student,omitempty"`
	Club    *Club    `json:"club,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}
