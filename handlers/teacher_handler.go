package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/AbdelazizBarhoumi/EPIMobileApplication/database"
	"github.com/AbdelazizBarhoumi/EPIMobileApplication/models"
)

type TeacherHandler struct{}

func NewTeacherHandler() *TeacherHandler { return &TeacherHandler{} }

// GET /api/teachers/my-teachers — teachers of the student's current-year courses.
func (h *TeacherHandler) MyTeachers(c echo.Context) error {
	student, err := currentStudent(c)
	if err != nil {
		return err
	}

	var teachers []models.Teacher
	err = database.DB.Distinct("teachers.*").
		Joins("JOIN program_courses pc ON pc.teacher_id = teachers.id").
		Where("pc.major_id = ? AND pc.year_level = ? AND pc.deleted_at IS NULL", student.MajorID, student.YearLevel).
		Find(&teachers).Error
	if err != nil {
		return err
	}

	out := make([]map[string]any, 0, len(teachers))
	for _, t := range teachers {
		var offerings []models.ProgramCourse
		err := database.DB.Preload("Course").
			Where("teacher_id = ? AND major_id = ? AND year_level = ?", t.ID, student.MajorID, student.YearLevel).
			Find(&offerings).Error
		if err != nil {
			return err
		}
		out = append(out, map[string]any{
			"teacher": t,
			"courses": offerings,
		})
	}
	return respondOK(c, out)
}

// GET /api/teachers/:id
func (h *TeacherHandler) Show(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var teacher models.Teacher
	dberr := database.DB.Preload("ProgramCourses.Course").First(&teacher, id).Error
	if errors.Is(dberr, gorm.ErrRecordNotFound) {
		return respondError(c, http.StatusNotFound, "Teacher not found")
	}
	if dberr != nil {
		return dberr
	}
	return respondOK(c, teacher)
}

// GET /api/teachers/:id/schedule — every session the teacher's offerings occupy.
func (h *TeacherHandler) Schedule(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var teacher models.Teacher
	dberr := database.DB.First(&teacher, id).Error
	if errors.Is(dberr, gorm.ErrRecordNotFound) {
		return respondError(c, http.StatusNotFound, "Teacher not found")
	}
	if dberr != nil {
		return dberr
	}

	var sessions []models.Schedule
	err = database.DB.Preload("ProgramCourse.Course").
		Joins("JOIN program_courses pc ON pc.id = schedules.program_course_id").
		Where("pc.teacher_id = ? AND pc.deleted_at IS NULL", teacher.ID).
		Order("schedules.day_of_week ASC, schedules.time_slot ASC").
		Find(&sessions).Error
	if err != nil {
		return err
	}

	return respondOK(c, map[string]any{
		"teacher":    teacher,
		"sessions":   sessions,
		"time_slots": models.TimeSlots(),
	})
}
