package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/AbdelazizBarhoumi/EPIMobileApplication/database"
	"github.com/AbdelazizBarhoumi/EPIMobileApplication/models"
	"github.com/AbdelazizBarhoumi/EPIMobileApplication/services"
)

type EventHandler struct{}

func NewEventHandler() *EventHandler { return &EventHandler{} }

// GET /api/events?category=&upcoming=
func (h *EventHandler) List(c echo.Context) error {
	tx := database.DB.Where("is_active = ?", true)
	if category := c.QueryParam("category"); category != "" {
		tx = tx.Where("category = ?", category)
	}
	if c.QueryParam("upcoming") == "true" {
		tx = tx.Where("event_date > ?", time.Now())
	}
	var events []models.Event
	if err := tx.Order("event_date ASC").Find(&events).Error; err != nil {
		return err
	}
	return respondOK(c, events)
}

// GET /api/events/:id
func (h *EventHandler) Show(c echo.Context) error {
	student, err := currentStudent(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var event models.Event
	dberr := database.DB.First(&event, id).Error
	if errors.Is(dberr, gorm.ErrRecordNotFound) {
		return respondError(c, http.StatusNotFound, "Event not found")
	}
	if dberr != nil {
		return dberr
	}

	var registered int64
	err = database.DB.Model(&models.EventRegistration{}).
		Where("event_id = ? AND student_id = ?", event.ID, student.ID).
		Count(&registered).Error
	if err != nil {
		return err
	}

	return respondOK(c, map[string]any{
		"event":           event,
		"is_registered":   registered > 0,
		"spots_available": event.SpotsAvailable(),
	})
}

// GET /api/events/my-events
func (h *EventHandler) MyEvents(c echo.Context) error {
	student, err := currentStudent(c)
	if err != nil {
		return err
	}

	var events []models.Event
	err = database.DB.
		Joins("JOIN event_registrations er ON er.event_id = events.id").
		Where("er.student_id = ? AND er.status = ? AND er.deleted_at IS NULL", student.ID, "registered").
		Order("events.event_date ASC").
		Find(&events).Error
	if err != nil {
		return err
	}
	return respondOK(c, events)
}

// POST /api/events/:id/register
func (h *EventHandler) Register(c echo.Context) error {
	student, err := currentStudent(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	registration, err := services.RegisterForEvent(database.DB, student.ID, id)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEventNotFound):
			return respondError(c, http.StatusNotFound, "Event not found")
		case errors.Is(err, services.ErrEventFull):
			return respondError(c, http.StatusBadRequest, "Event is full")
		case errors.Is(err, services.ErrAlreadyRegistered):
			return respondError(c, http.StatusBadRequest, "Already registered for this event")
		default:
			return err
		}
	}

	if err := database.DB.Preload("Event").First(registration, registration.ID).Error; err != nil {
		return err
	}
	return respondCreated(c, "Successfully registered for event", registration)
}

// DELETE /api/events/:id/register
func (h *EventHandler) CancelRegistration(c echo.Context) error {
	student, err := currentStudent(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := services.CancelEventRegistration(database.DB, student.ID, id); err != nil {
		if errors.Is(err, services.ErrRegistrationNotFound) {
			return respondError(c, http.StatusNotFound, "Registration not found")
		}
		return err
	}
	return respondMessage(c, "Registration cancelled successfully")
}
