package models

import (
	"time"

	"gorm.io/gorm"
)

type Major struct {
	ID                   uint   `json:"id" gorm:"primaryKey"`
	Code                 string `json:"code" gorm:"size:20;uniqueIndex;not null"`
	Name                 string `json:"name" gorm:"size:255;not null"`
	Description          string `json:"description" gorm:"type:text"`
	Department           string `json:"department" gorm:"size:255;not null"`
	DurationYears        int    `json:"duration_years" gorm:"not null"`
	TotalCreditsRequired int    `json:"total_credits_required" gorm:"not null"`
	DegreeType           string `json:"degree_type" gorm:"size:100;not null"`
	IsActive             bool   `json:"is_active" gorm:"not null;default:true"`

	Students       []Student       `json:"students,omitempty"`
	ProgramCourses []ProgramCourse `json:"program_courses,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}
