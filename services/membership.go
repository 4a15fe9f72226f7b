package services

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/AbdelazizBarhoumi/EPIMobileApplication/models"
)

var (
	ErrClubNotFound       = errors.New("club not found")
	ErrAlreadyMember      = errors.New("already a member of this club")
	ErrMembershipNotFound = errors.New("membership not found")

	ErrEventNotFound        = errors.New("event not found")
	ErrEventFull            = errors.New("event is full")
	ErrAlreadyRegistered    = errors.New("already registered for this event")
	ErrRegistrationNotFound = errors.New("registration not found")
)

// JoinClub inserts an active membership and bumps the club's member counter in
// one transaction. The club row is locked so concurrent joins by the same
// student cannot both pass the duplicate check.
func JoinClub(db *gorm.DB, studentID, clubID uint) (*models.ClubMembership, error) {
	var membership models.ClubMembership

	err := db.Transaction(func(tx *gorm.DB) error {
		var club models.Club
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&club, clubID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrClubNotFound
		}
		if err != nil {
			return err
		}

		var active int64
		err = tx.Model(&models.ClubMembership{}).
			Where("club_id = ? AND student_id = ? AND status = ?", clubID, studentID, "active").
			Count(&active).Error
		if err != nil {
			return err
		}
		if active > 0 {
			return ErrAlreadyMember
		}

		membership = models.ClubMembership{
			StudentID: studentID,
			ClubID:    clubID,
			JoinDate:  time.Now(),
			Role:      "member",
			Status:    "active",
		}
		if err := tx.Create(&membership).Error; err != nil {
			return err
		}
		return tx.Model(&club).
			Update("member_count", gorm.Expr("member_count + 1")).Error
	})
	if err != nil {
		return nil, err
	}
	return &membership, nil
}

// LeaveClub deactivates and tombstones the membership and decrements the
// counter, all in one transaction.
func LeaveClub(db *gorm.DB, studentID, clubID uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var membership models.ClubMembership
		err := tx.Where("club_id = ? AND student_id = ? AND status = ?", clubID, studentID, "active").
			First(&membership).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMembershipNotFound
		}
		if err != nil {
			return err
		}

		if err := tx.Model(&membership).Update("status", "inactive").Error; err != nil {
			return err
		}
		if err := tx.Delete(&membership).Error; err != nil {
			return err
		}
		return tx.Model(&models.Club{}).
			Where("id = ? AND member_count > 0", clubID).
			Update("member_count", gorm.Expr("member_count - 1")).Error
	})
}

// RegisterForEvent checks capacity, inserts the registration and bumps the
// registered counter inside one transaction. The event row is locked for the
// capacity check, so concurrent registrations cannot both grab the last spot.
func RegisterForEvent(db *gorm.DB, studentID, eventID uint) (*models.EventRegistration, error) {
	var registration models.EventRegistration

	err := db.Transaction(func(tx *gorm.DB) error {
		var event models.Event
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&event, eventID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrEventNotFound
		}
		if err != nil {
			return err
		}
		if event.IsFull() {
			return ErrEventFull
		}

		var existing int64
		err = tx.Model(&models.EventRegistration{}).
			Where("event_id = ? AND student_id = ?", eventID, studentID).
			Count(&existing).Error
		if err != nil {
			return err
		}
		if existing > 0 {
			return ErrAlreadyRegistered
		}

		registration = models.EventRegistration{
			StudentID:    studentID,
			EventID:      eventID,
			RegisteredAt: time.Now(),
			Status:       "registered",
		}
		if err := tx.Create(&registration).Error; err != nil {
			return err
		}
		return tx.Model(&event).
			Update("registered_count", gorm.Expr("registered_count + 1")).Error
	})
	if err != nil {
		return nil, err
	}
	return &registration, nil
}

// CancelEventRegistration cancels, tombstones and decrements in one transaction.
func CancelEventRegistration(db *gorm.DB, studentID, eventID uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var registration models.EventRegistration
		err := tx.Where("event_id = ? AND student_id = ? AND status = ?", eventID, studentID, "registered").
			First(&registration).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRegistrationNotFound
		}
		if err != nil {
			return err
		}

		if err := tx.Model(&registration).Update("status", "cancelled").Error; err != nil {
			return err
		}
		if err := tx.Delete(&registration).Error; err != nil {
			return err
		}
		return tx.Model(&models.Event{}).
			Where("id = ? AND registered_count > 0", eventID).
			Update("registered_count", gorm.Expr("registered_count - 1")).Error
	})
}
