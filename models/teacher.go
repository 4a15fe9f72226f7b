package models

import (
	"time"

	"gorm.io/gorm"
)

type Teacher struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	TeacherCode string `json:"teacher_code" gorm:"size:20;uniqueIndex;not null"`
	Name        string `json:"name" gorm:"size:255;not null"`
	Email       string `json:"email" gorm:"size:255;uniqueIndex;not null"`
	Phone       string `json:"phone" gorm:"size:20"`
	Department  string `json:"department" gorm:"size:255"`
	Title       string `json:"title" gorm:"size:100"` // e.g. "Professor", "Lecturer"
	AvatarURL   string `json:"avatar_url" gorm:"size:500"`

	ProgramCourses []ProgramCourse `json:"program_courses,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}
