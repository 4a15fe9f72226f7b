package models

import (
	"time"

	"gorm.io/gorm"
)

// Schedule is one weekly recurring session of a program course:
// a (day, slot) cell in the fixed 6x7 timetable plus a room.
type Schedule struct {
	ID              uint   `json:"id" gorm:"primaryKey"`
	ProgramCourseID uint   `json:"program_course_id" gorm:"not null;uniqueIndex:idx_schedule_course_day_slot"`
	DayOfWeek       string `json:"day_of_week" gorm:"size:10;not null;uniqueIndex:idx_schedule_course_day_slot"`
	TimeSlot        int    `json:"time_slot" gorm:"not null;uniqueIndex:idx_schedule_course_day_slot"`
	Room            string `json:"room" gorm:"size:50"`

	ProgramCourse *ProgramCourse `json:"program_course,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

type SlotTimes struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// TimeSlots is the fixed clock table for the seven numbered slots of a day.
func TimeSlots() map[int]SlotTimes {
	return map[int]SlotTimes{
		1: {Start: "08:30", End: "10:00"},
		2: {Start: "10:15", End: "11:45"},
		3: {Start: "12:00", End: "13:30"},
		4: {Start: "13:45", End: "15:15"},
		5: {Start: "15:30", End: "17:00"},
		6: {Start: "17:15", End: "18:45"},
		7: {Start: "19:00", End: "20:30"},
	}
}

// DaysOfWeek lists the teaching days, Monday through Saturday.
func DaysOfWeek() []string {
	return []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}
}

func ValidDay(day string) bool {
	for _, d := range DaysOfWeek() {
		if d == day {
			return true
		}
	}
	return false
}
