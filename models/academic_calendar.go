package models

import (
	"time"

	"gorm.io/gorm"
)

// AcademicCalendar marks one term; the row with status=active decides the
// current semester for "current semester" reads.
type AcademicCalendar struct {
	ID           uint   `json:"id" gorm:"primaryKey"`
	Semester     string `json:"semester" gorm:"size:40;not null"` // e.g. "Fall 2025"
	AcademicYear string `json:"academic_year" gorm:"size:10;not null"`
	StartDate    string `json:"start_date" gorm:"type:date"`
	EndDate      string `json:"end_date" gorm:"type:date"`
	Status       string `json:"status" gorm:"size:20;not null;default:'upcoming'"` // active | upcoming | finished

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}
