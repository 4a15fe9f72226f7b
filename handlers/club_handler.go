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

type ClubHandler struct{}

func NewClubHandler() *ClubHandler { return &ClubHandler{} }

// GET /api/clubs?category=
func (h *ClubHandler) List(c echo.Context) error {
	tx := database.DB.Where("is_active = ?", true)
	if category := c.QueryParam("category"); category != "" {
		tx = tx.Where("category = ?", category)
	}
	var clubs []models.Club
	if err := tx.Order("name ASC").Find(&clubs).Error; err != nil {
		return err
	}
	return respondOK(c, clubs)
}

// GET /api/clubs/:id
func (h *ClubHandler) Show(c echo.Context) error {
	student, err := currentStudent(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var club models.Club
	dberr := database.DB.First(&club, id).Error
	if errors.Is(dberr, gorm.ErrRecordNotFound) {
		return respondError(c, http.StatusNotFound, "Club not found")
	}
	if dberr != nil {
		return dberr
	}

	var member int64
	err = database.DB.Model(&models.ClubMembership{}).
		Where("club_id = ? AND student_id = ? AND status = ?", club.ID, student.ID, "active").
		Count(&member).Error
	if err != nil {
		return err
	}

	return respondOK(c, map[string]any{
		"club":      club,
		"is_member": member > 0,
	})
}

// GET /api/clubs/my-clubs
func (h *ClubHandler) MyClubs(c echo.Context) error {
	student, err := currentStudent(c)
	if err != nil {
		return err
	}

	var clubs []models.Club
	err = database.DB.
		Joins("JOIN club_memberships cm ON cm.club_id = clubs.id").
		Where("cm.student_id = ? AND cm.status = ? AND cm.deleted_at IS NULL", student.ID, "active").
		Find(&clubs).Error
	if err != nil {
		return err
	}
	return respondOK(c, clubs)
}

// POST /api/clubs/:id/join
func (h *ClubHandler) Join(c echo.Context) error {
	student, err := currentStudent(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	membership, err := services.JoinClub(database.DB, student.ID, id)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrClubNotFound):
			return respondError(c, http.StatusNotFound, "Club not found")
		case errors.Is(err, services.ErrAlreadyMember):
			return respondError(c, http.StatusBadRequest, "Already a member of this club")
		default:
			return err
		}
	}

	if err := database.DB.Preload("Club").First(membership, membership.ID).Error; err != nil {
		return err
	}
	return respondCreated(c, "Successfully joined club", membership)
}

// DELETE /api/clubs/:id/leave
func (h *ClubHandler) Leave(c echo.Context) error {
	student, err := currentStudent(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := services.LeaveClub(database.DB, student.ID, id); err != nil {
		if errors.Is(err, services.ErrMembershipNotFound) {
			return respondError(c, http.StatusNotFound, "Membership not found")
		}
		return err
	}
	return respondMessage(c, "Successfully left club")
}
