package handlers

import (
	"time"

	"github.com/labstack/echo/v4"

	"github.com/AbdelazizBarhoumi/EPIMobileApplication/database"
	"github.com/AbdelazizBarhoumi/EPIMobileApplication/models"
	"github.com/AbdelazizBarhoumi/EPIMobileApplication/services"
)

type StudentHandler struct{}

func NewStudentHandler() *StudentHandler { return &StudentHandler{} }

// GET /api/student/profile
func (h *StudentHandler) Profile(c echo.Context) error {
	student, err := currentStudent(c)
	if err != nil {
		return err
	}
	return respondOK(c, map[string]any{
		"student":                     student,
		"credits_remaining":           student.CreditsRemaining(),
		"credits_progress_percentage": student.CreditsProgressPercentage(),
	})
}

// GET /api/student/dashboard — the mobile home screen payload.
func (h *StudentHandler) Dashboard(c echo.Context) error {
	student, err := currentStudent(c)
	if err != nil {
		return err
	}

	gpa, err := services.OverallGPA(database.DB, student.ID)
	if err != nil {
		return err
	}
	attendance, err := services.OverallAttendanceStats(database.DB, student.ID)
	if err != nil {
		return err
	}
	finances, err := services.SummarizeFinances(database.DB, student, time.Now())
	if err != nil {
		return err
	}

	var upcomingEvents []models.Event
	err = database.DB.
		Joins("JOIN event_registrations er ON er.event_id = events.id").
		Where("er.student_id = ? AND er.status = ? AND er.deleted_at IS NULL", student.ID, "registered").
		Where("events.event_date > ?", time.Now()).
		Order("events.event_date ASC").
		Limit(5).
		Find(&upcomingEvents).Error
	if err != nil {
		return err
	}

	var recentNews []models.News
	err = database.DB.
		Where("published_at <= ?", time.Now()).
		Order("published_at DESC").
		Limit(5).
		Find(&recentNews).Error
	if err != nil {
		return err
	}

	return respondOK(c, map[string]any{
		"student": map[string]any{
			"id":                          student.ID,
			"student_id":                  student.StudentID,
			"name":                        student.Name,
			"year_level":                  student.YearLevel,
			"credits_taken":               student.CreditsTaken,
			"total_credits":               student.TotalCredits,
			"credits_progress_percentage": student.CreditsProgressPercentage(),
		},
		"gpa":                 gpa,
		"attendance":          attendance,
		"outstanding_balance": finances.OutstandingBalance,
		"upcoming_events":     upcomingEvents,
		"recent_news":         recentNews,
	})
}

// GET /api/student/courses — current active enrollments with live scores.
func (h *StudentHandler) Courses(c echo.Context) error {
	student, err := currentStudent(c)
	if err != nil {
		return err
	}

	var enrollments []models.StudentCourse
	err = database.DB.Preload("Course").Preload("ProgramCourse").
		Where("student_id = ? AND status = ?", student.ID, models.EnrollmentEnrolled).
		Order("year_taken ASC, semester_taken ASC").
		Find(&enrollments).Error
	if err != nil {
		return err
	}
	return respondOK(c, enrollments)
}

// GET /api/student/attendance — alias kept for the mobile client.
func (h *StudentHandler) Attendance(c echo.Context) error {
	return NewAttendanceHandler().MyAttendance(c)
}
