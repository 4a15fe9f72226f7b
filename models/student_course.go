package models

import (
	"time"

	"gorm.io/gorm"
)

// Enrollment status values.
const (
	EnrollmentEnrolled  = "enrolled"
	EnrollmentCompleted = "completed"
	EnrollmentDropped   = "dropped"
)

// StudentCourse is one student's scored enrollment in one course offering.
// Weights are copied from the program course at enrollment time so later
// curriculum changes do not rewrite posted grades.
type StudentCourse struct {
	ID              uint `json:"id" gorm:"primaryKey"`
	StudentID       uint `json:"student_id" gorm:"index;not null"`
	CourseID        uint `json:"course_id" gorm:"index;not null"`
	ProgramCourseID uint `json:"program_course_id" gorm:"index;not null"`
	YearTaken       int  `json:"year_taken" gorm:"not null"`
	SemesterTaken   int  `json:"semester_taken" gorm:"not null"`

	CCScore   *float64 `json:"cc_score" gorm:"type:decimal(5,2)"`
	DSScore   *float64 `json:"ds_score" gorm:"type:decimal(5,2)"`
	ExamScore *float64 `json:"exam_score" gorm:"type:decimal(5,2)"`

	CCWeight   int `json:"cc_weight" gorm:"not null"`
	DSWeight   int `json:"ds_weight" gorm:"not null"`
	ExamWeight int `json:"exam_weight" gorm:"not null"`

	FinalGrade  *float64 `json:"final_grade" gorm:"type:decimal(5,2)"`
	LetterGrade *string  `json:"letter_grade" gorm:"size:1"`
	Status      string   `json:"status" gorm:"size:20;not null;default:'enrolled'"`

	Student       *Student       `json:"student,omitempty"`
	Course        *Course        `json:"course,omitempty"`
	ProgramCourse *ProgramCourse `json:"program_course,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

func (sc *StudentCourse) HasCompleteScores() bool {
	return sc.CCScore != nil && sc.DSScore != nil && sc.ExamScore != nil
}
