package models

import (
	"time"

	"gorm.io/gorm"
)

type Course struct {
	ID                 uint   `json:"id" gorm:"primaryKey"`
	CourseCode         string `json:"course_code" gorm:"size:20;uniqueIndex;not null"`
	Name               string `json:"name" gorm:"size:255;not null"`
	Description        string `json:"description" gorm:"type:text"`
	Instructor         string `json:"instructor" gorm:"size:255"`
	Credits            int    `json:"credits" gorm:"not null"`
	Schedule           string `json:"schedule" gorm:"size:255"` // free-text display, e.g. "Mon/Wed 10:15"
	Room               string `json:"room" gorm:"size:50"`
	AcademicCalendarID *uint  `json:"academic_calendar_id"`

	AcademicCalendar *AcademicCalendar `json:"academic_calendar,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}
