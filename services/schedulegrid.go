package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/AbdelazizBarhoumi/EPIMobileApplication/models"
)

var (
	// ErrScheduleConflict is raised at assignment time when a session would
	// share a room with another offering in the same (day, slot) cell.
	ErrScheduleConflict = errors.New("another course already occupies this room and time slot")
	// ErrInvalidSession rejects sessions outside the Monday-Saturday, slot 1-7 grid.
	ErrInvalidSession = errors.New("invalid day or time slot")
)

// GridCourse is the display summary placed into a timetable cell.
type GridCourse struct {
	ID         uint   `json:"id"`
	Code       string `json:"code"`
	Name       string `json:"name"`
	Instructor string `json:"instructor"`
	Room       string `json:"room"`
	Credits    int    `json:"credits"`

	// curriculum view only
	IsRequired *bool `json:"is_required,omitempty"`
	CCWeight   *int  `json:"cc_weight,omitempty"`
	DSWeight   *int  `json:"ds_weight,omitempty"`
	ExamWeight *int  `json:"exam_weight,omitempty"`

	// student view only: live scores for the enrollment
	CCScore    *float64 `json:"cc_score,omitempty"`
	DSScore    *float64 `json:"ds_score,omitempty"`
	ExamScore  *float64 `json:"exam_score,omitempty"`
	FinalGrade *float64 `json:"final_grade,omitempty"`
}

type GridCell struct {
	TimeSlot  int         `json:"time_slot"`
	StartTime string      `json:"start_time"`
	EndTime   string      `json:"end_time"`
	Course    *GridCourse `json:"course"`
}

// WeekGrid is the fixed 6-day x 7-slot timetable, every cell present even when
// empty.
type WeekGrid map[string]map[int]GridCell

func NewWeekGrid() WeekGrid {
	grid := WeekGrid{}
	slots := models.TimeSlots()
	for _, day := range models.DaysOfWeek() {
		grid[day] = map[int]GridCell{}
		for slot, times := range slots {
			grid[day][slot] = GridCell{
				TimeSlot:  slot,
				StartTime: times.Start,
				EndTime:   times.End,
				Course:    nil,
			}
		}
	}
	return grid
}

func (g WeekGrid) place(day string, slot int, course *GridCourse) {
	cell, ok := g[day][slot]
	if !ok {
		return // out-of-range session rows are skipped, not fatal
	}
	// Last writer wins on collision between legacy rows; new conflicting rows
	// are rejected at assignment time by AssignSession.
	cell.Course = course
	g[day][slot] = cell
}

// MajorWeekGrid builds the timetable for one (major, year, semester) curriculum slice.
func MajorWeekGrid(db *gorm.DB, major *models.Major, year, semester int) (WeekGrid, error) {
	offerings, err := CurriculumSlice(db, major, year, semester)
	if err != nil {
		return nil, err
	}

	grid := NewWeekGrid()
	for i := range offerings {
		pc := &offerings[i]
		if pc.Course == nil {
			continue
		}
		var sessions []models.Schedule
		if err := db.Where("program_course_id = ?", pc.ID).
			Order("day_of_week ASC, time_slot ASC").
			Find(&sessions).Error; err != nil {
			return nil, err
		}
		for _, s := range sessions {
			required := pc.IsRequired
			cc, ds, exam := pc.CCWeight, pc.DSWeight, pc.ExamWeight
			grid.place(s.DayOfWeek, s.TimeSlot, &GridCourse{
				ID:         pc.Course.ID,
				Code:       pc.Course.CourseCode,
				Name:       pc.Course.Name,
				Instructor: pc.Course.Instructor,
				Room:       sessionRoom(s, pc.Course),
				Credits:    pc.Course.Credits,
				IsRequired: &required,
				CCWeight:   &cc,
				DSWeight:   &ds,
				ExamWeight: &exam,
			})
		}
	}
	return grid, nil
}

// StudentWeekGrid builds the timetable of a student's active enrollments for
// their current year level, with live scores attached to each cell.
func StudentWeekGrid(db *gorm.DB, student *models.Student) (WeekGrid, error) {
	var enrollments []models.StudentCourse
	err := db.Preload("Course").Preload("ProgramCourse.Schedules").
		Where("student_id = ? AND status = ? AND year_taken = ?",
			student.ID, models.EnrollmentEnrolled, student.YearLevel).
		Find(&enrollments).Error
	if err != nil {
		return nil, err
	}

	grid := NewWeekGrid()
	for _, e := range enrollments {
		if e.Course == nil || e.ProgramCourse == nil {
			continue
		}
		for _, s := range e.ProgramCourse.Schedules {
			grid.place(s.DayOfWeek, s.TimeSlot, &GridCourse{
				ID:         e.Course.ID,
				Code:       e.Course.CourseCode,
				Name:       e.Course.Name,
				Instructor: e.Course.Instructor,
				Room:       sessionRoom(s, e.Course),
				Credits:    e.Course.Credits,
				CCScore:    e.CCScore,
				DSScore:    e.DSScore,
				ExamScore:  e.ExamScore,
				FinalGrade: e.FinalGrade,
			})
		}
	}
	return grid, nil
}

// AssignSession creates a weekly session for an offering. A session in the
// same room, day and slot belonging to any other offering is a conflict and
// rejected; the historical read-path overwrite never applies to new rows.
func AssignSession(db *gorm.DB, s *models.Schedule) error {
	if !models.ValidDay(s.DayOfWeek) {
		return ErrInvalidSession
	}
	if _, ok := models.TimeSlots()[s.TimeSlot]; !ok {
		return ErrInvalidSession
	}
	if s.Room != "" {
		var clash int64
		err := db.Model(&models.Schedule{}).
			Where("day_of_week = ? AND time_slot = ? AND room = ? AND program_course_id <> ?",
				s.DayOfWeek, s.TimeSlot, s.Room, s.ProgramCourseID).
			Count(&clash).Error
		if err != nil {
			return err
		}
		if clash > 0 {
			return ErrScheduleConflict
		}
	}
	return db.Create(s).Error
}

func sessionRoom(s models.Schedule, c *models.Course) string {
	if s.Room != "" {
		return s.Room
	}
	if c.Room != "" {
		return c.Room
	}
	return "TBA"
}
