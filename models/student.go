package models

import (
	"math"
	"time"

	"gorm.io/gorm"
)

type Student struct {
	ID           uint    `json:"id" gorm:"primaryKey"`
	StudentID    string  `json:"student_id" gorm:"size:20;uniqueIndex;not null"` // registrar code shown to users
	UserID       uint    `json:"user_id" gorm:"index;not null"`
	MajorID      uint    `json:"major_id" gorm:"index;not null"`
	Name         string  `json:"name" gorm:"size:255;not null"`
	Email        string  `json:"email" gorm:"size:255;not null"`
	AvatarURL    string  `json:"avatar_url" gorm:"size:500"`
	YearLevel    int     `json:"year_level" gorm:"not null;default:1"`
	GPA          float64 `json:"gpa" gorm:"type:decimal(4,2);default:0"`
	CreditsTaken int     `json:"credits_taken" gorm:"not null;default:0"`
	TotalCredits int     `json:"total_credits" gorm:"not null;default:0"`
	TuitionFees  float64 `json:"tuition_fees" gorm:"type:decimal(10,3);default:0"`
	AcademicYear string  `json:"academic_year" gorm:"size:10"`
	Class        string  `json:"class" gorm:"size:20"`

	User           *User           `json:"user,omitempty"`
	Major          *Major          `json:"major,omitempty"`
	StudentCourses []StudentCourse `json:"student_courses,omitempty"`
	Bills          []Bill          `json:"bills,omitempty"`
	Payments       []Payment       `json:"payments,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// CreditsRemaining is not clamped: a student over the requirement goes negative.
func (s *Student) CreditsRemaining() int {
	return s.TotalCredits - s.CreditsTaken
}

func (s *Student) CreditsProgressPercentage() float64 {
	if s.TotalCredits == 0 {
		return 0
	}
	return math.Round(float64(s.CreditsTaken)/float64(s.TotalCredits)*100*100) / 100
}
