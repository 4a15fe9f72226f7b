package models

import (
	"time"

	"gorm.io/gorm"
)

type Club struct {
	ID              uint   `json:"id" gorm:"primaryKey"`
	Name            string `json:"name" gorm:"size:255;not null"`
	Description     string `json:"description" gorm:"type:text"`
	Category        string `json:"category" gorm:"size:100"`
	MemberCount     int    `json:"member_count" gorm:"not null;default:0"`
	PresidentName   string `json:"president_name" gorm:"size:255"`
	MeetingSchedule string `json:"meeting_schedule" gorm:"size:255"`
	ImageURL        string `json:"image_url" gorm:"size:500"`
	IsActive        bool   `json:"is_active" gorm:"not null;default:true"`

	Memberships []ClubMembership `json:"memberships,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}
