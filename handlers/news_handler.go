package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/AbdelazizBarhoumi/EPIMobileApplication/database"
	"github.com/AbdelazizBarhoumi/EPIMobileApplication/models"
)

type NewsHandler struct{}

func NewNewsHandler() *NewsHandler { return &NewsHandler{} }

// GET /api/news?category=&page=&size=
func (h *NewsHandler) List(c echo.Context) error {
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

	tx := database.DB.Model(&models.News{}).Where("published_at <= ?", time.Now())
	if category := c.QueryParam("category"); category != "" {
		tx = tx.Where("category = ?", category)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return err
	}
	var items []models.News
	if err := tx.Order("published_at DESC").Limit(size).Offset((page - 1) * size).Find(&items).Error; err != nil {
		return err
	}
	return respondOK(c, map[string]any{
		"news":  items,
		"page":  page,
		"size":  size,
		"total": total,
	})
}

// GET /api/news/featured
func (h *NewsHandler) Featured(c echo.Context) error {
	var items []models.News
	err := database.DB.
		Where("is_featured = ? AND published_at <= ?", true, time.Now()).
		Order("published_at DESC").
		Limit(5).
		Find(&items).Error
	if err != nil {
		return err
	}
	return respondOK(c, items)
}

// GET /api/news/recent
func (h *NewsHandler) Recent(c echo.Context) error {
	var items []models.News
	err := database.DB.
		Where("published_at <= ?", time.Now()).
		Order("published_at DESC").
		Limit(10).
		Find(&items).Error
	if err != nil {
		return err
	}
	return respondOK(c, items)
}

// GET /api/news/:id
func (h *NewsHandler) Show(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var item models.News
	dberr := database.DB.First(&item, id).Error
	if errors.Is(dberr, gorm.ErrRecordNotFound) {
		return respondError(c, http.StatusNotFound, "News article not found")
	}
	if dberr != nil {
		return dberr
	}
	return respondOK(c, item)
}
