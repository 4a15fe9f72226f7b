package models

import (
	"time"

	"gorm.io/gorm"
)

// Attendance status values.
const (
	AttendancePresent = "present"
	AttendanceAbsent  = "absent"
	AttendanceLate    = "late"
	AttendanceExcused = "excused"
)

// StudentAttendance holds one mark per (student, session, calendar date).
type StudentAttendance struct {
	ID         uint   `json:"id" gorm:"primaryKey"`
	StudentID  uint   `json:"student_id" gorm:"not null;uniqueIndex:idx_attendance_student_session_date"`
	ScheduleID uint   `json:"schedule_id" gorm:"not null;uniqueIndex:idx_attendance_student_session_date"`
	Date       string `json:"date" gorm:"size:10;not null;uniqueIndex:idx_attendance_student_session_date"` // YYYY-MM-DD
	Status     string `json:"status" gorm:"size:20;not null"`
	Notes      string `json:"notes" gorm:"type:text"`
	MarkedBy   *uint  `json:"marked_by"` // teacher id, when marked by staff

	Student  *Student  `json:"student,omitempty"`
	Schedule *Schedule `json:"schedule,omitempty"`
	Marker   *Teacher  `json:"marker,omitempty" gorm:"foreignKey:MarkedBy"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}
