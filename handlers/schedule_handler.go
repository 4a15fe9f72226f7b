package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/AbdelazizBarhoumi/EPIMobileApplication/database"
	"github.com/AbdelazizBarhoumi/EPIMobileApplication/models"
	"github.com/AbdelazizBarhoumi/EPIMobileApplication/services"
)

type ScheduleHandler struct{}

func NewScheduleHandler() *ScheduleHandler { return &ScheduleHandler{} }

// GET /api/schedule/major/:id/year/:year/semester/:semester
func (h *ScheduleHandler) WeeklySchedule(c echo.Context) error {
	majorID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var major models.Major
	dberr := database.DB.First(&major, majorID).Error
	if errors.Is(dberr, gorm.ErrRecordNotFound) {
		return respondError(c, http.StatusNotFound, "Major not found")
	}
	if dberr != nil {
		return dberr
	}

	year := atoiOr(c.Param("year"), 0)
	semester := atoiOr(c.Param("semester"), 0)

	grid, err := services.MajorWeekGrid(database.DB, &major, year, semester)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidYear):
			return respondError(c, http.StatusBadRequest, "Invalid year level for this major")
		case errors.Is(err, services.ErrInvalidSemester):
			return respondError(c, http.StatusBadRequest, "Invalid semester (must be 1 or 2)")
		default:
			return err
		}
	}

	return respondOK(c, map[string]any{
		"major": map[string]any{
			"id":   major.ID,
			"code": major.Code,
			"name": major.Name,
		},
		"year":       year,
		"semester":   semester,
		"schedule":   grid,
		"time_slots": models.TimeSlots(),
	})
}

// GET /api/schedule/my-schedule
func (h *ScheduleHandler) MySchedule(c echo.Context) error {
	student, err := currentStudent(c)
	if err != nil {
		return err
	}

	grid, err := services.StudentWeekGrid(database.DB, student)
	if err != nil {
		return err
	}

	majorName := ""
	if student.Major != nil {
		majorName = student.Major.Name
	}
	return respondOK(c, map[string]any{
		"student": map[string]any{
			"id":         student.ID,
			"student_id": student.StudentID,
			"name":       student.Name,
			"major":      majorName,
			"year_level": student.YearLevel,
		},
		"schedule":   grid,
		"time_slots": models.TimeSlots(),
	})
}

type assignSessionReq struct {
	ProgramCourseID uint   `json:"program_course_id" validate:"required"`
	DayOfWeek       string `json:"day_of_week" validate:"required,oneof=Monday Tuesday Wednesday Thursday Friday Saturday"`
	TimeSlot        int    `json:"time_slot" validate:"required,min=1,max=7"`
	Room            string `json:"room" validate:"max=50"`
}

// POST /api/schedule/sessions (staff)
//
// A (room, day, slot) clash with another offering is rejected here instead of
// being silently resolved when the grid is read.
func (h *ScheduleHandler) AssignSession(c echo.Context) error {
	var req assignSessionReq
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "Invalid payload")
	}
	if fields := validateStruct(&req); fields != nil {
		return respondValidation(c, fields)
	}

	var pc models.ProgramCourse
	dberr := database.DB.First(&pc, req.ProgramCourseID).Error
	if errors.Is(dberr, gorm.ErrRecordNotFound) {
		return respondError(c, http.StatusNotFound, "Program course not found")
	}
	if dberr != nil {
		return dberr
	}

	session := models.Schedule{
		ProgramCourseID: pc.ID,
		DayOfWeek:       req.DayOfWeek,
		TimeSlot:        req.TimeSlot,
		Room:            req.Room,
	}
	if err := services.AssignSession(database.DB, &session); err != nil {
		if errors.Is(err, services.ErrScheduleConflict) || errors.Is(err, services.ErrInvalidSession) {
			return respondError(c, http.StatusBadRequest, err.Error())
		}
		return err
	}
	return respondCreated(c, "Session scheduled", session)
}
