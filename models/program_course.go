package models

import (
	"time"

	"gorm.io/gorm"
)

// ProgramCourse binds a Course into a Major's curriculum at a given year/semester
// and carries the scoring weights used when students enroll in the offering.
type ProgramCourse struct {
	ID         uint  `json:"id" gorm:"primaryKey"`
	MajorID    uint  `json:"major_id" gorm:"index;not null"`
	CourseID   uint  `json:"course_id" gorm:"index;not null"`
	YearLevel  int   `json:"year_level" gorm:"not null"`
	Semester   int   `json:"semester" gorm:"not null"` // 1 or 2
	IsRequired bool  `json:"is_required" gorm:"not null;default:true"`
	CCWeight   int   `json:"cc_weight" gorm:"not null"`
	DSWeight   int   `json:"ds_weight" gorm:"not null"`
	ExamWeight int   `json:"exam_weight" gorm:"not null"`
	TeacherID  *uint `json:"teacher_id"`

	Major     *Major     `json:"major,omitempty"`
	Course    *Course    `json:"course,omitempty"`
	Teacher   *Teacher   `json:"teacher,omitempty"`
	Schedules []Schedule `json:"schedules,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}
