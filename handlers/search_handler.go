package handlers

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/AbdelazizBarhoumi/EPIMobileApplication/database"
	"github.com/AbdelazizBarhoumi/EPIMobileApplication/models"
)

type SearchHandler struct{}

func NewSearchHandler() *SearchHandler { return &SearchHandler{} }

// GET /api/search?q= — one query across courses, news, events and clubs.
func (h *SearchHandler) Search(c echo.Context) error {
	q := strings.TrimSpace(c.QueryParam("q"))
	if q == "" {
		return respondValidation(c, map[string]string{"q": "this field is required"})
	}
	like := "%" + strings.ToLower(q) + "%"

	var courses []models.Course
	err := database.DB.
		Where("LOWER(course_code) LIKE ? OR LOWER(name) LIKE ?", like, like).
		Limit(10).Find(&courses).Error
	if err != nil {
		return err
	}

	var news []models.News
	err = database.DB.
		Where("LOWER(title) LIKE ? OR LOWER(summary) LIKE ?", like, like).
		Limit(10).Find(&news).Error
	if err != nil {
		return err
	}

	var events []models.Event
	err = database.DB.
		Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", like, like).
		Limit(10).Find(&events).Error
	if err != nil {
		return err
	}

	var clubs []models.Club
	err = database.DB.
		Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", like, like).
		Limit(10).Find(&clubs).Error
	if err != nil {
		return err
	}

	return respondOK(c, map[string]any{
		"courses": courses,
		"news":    news,
		"events":  events,
		"clubs":   clubs,
	})
}
