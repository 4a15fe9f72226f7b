package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/AbdelazizBarhoumi/EPIMobileApplication/database"
	"github.com/AbdelazizBarhoumi/EPIMobileApplication/models"
)

type CourseHandler struct{}

func NewCourseHandler() *CourseHandler { return &CourseHandler{} }

// GET /api/courses?q=&page=&size=
func (h *CourseHandler) List(c echo.Context) error {
	q := strings.TrimSpace(c.QueryParam("q"))
	page := atoiOr(c.QueryParam("page"), 1)
	if page < 1 {
		page = 1
	}
	size := atoiOr(c.QueryParam("size"), 20)
	if size < 1 {
		size = 1
	} else if size > 100 {
		size = 100
	}

	tx := database.DB.Model(&models.Course{})
	if q != "" {
		like := "%" + strings.ToLower(q) + "%"
		tx = tx.Where("LOWER(course_code) LIKE ? OR LOWER(name) LIKE ? OR LOWER(instructor) LIKE ?", like, like, like)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return err
	}
	var courses []models.Course
	if err := tx.Order("course_code ASC").Limit(size).Offset((page - 1) * size).Find(&courses).Error; err != nil {
		return err
	}
	return respondOK(c, map[string]any{
		"courses": courses,
		"page":    page,
		"size":    size,
		"total":   total,
	})
}

// GET /api/courses/:id
func (h *CourseHandler) Show(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var course models.Course
	dberr := database.DB.Preload("AcademicCalendar").First(&course, id).Error
	if errors.Is(dberr, gorm.ErrRecordNotFound) {
		return respondError(c, http.StatusNotFound, "Course not found")
	}
	if dberr != nil {
		return dberr
	}
	return respondOK(c, course)
}
