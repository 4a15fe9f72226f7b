package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/AbdelazizBarhoumi/EPIMobileApplication/models"
)

func seedClub(t *testing.T, db *gorm.DB) *models.Club {
	t.Helper()
	club := models.Club{
		Name:        "Robotics Club",
		Category:    "Technology",
		MemberCount: 0,
		IsActive:    true,
	}
	require.NoError(t, db.Create(&club).Error)
	return &club
}

func seedEvent(t *testing.T, db *gorm.DB, capacity int) *models.Event {
	t.Helper()
	event := models.Event{
		Title:     "Career Fair",
		EventDate: time.Date(2025, 10, 3, 9, 0, 0, 0, time.UTC),
		Location:  "Main Hall",
		Capacity:  capacity,
		IsActive:  true,
	}
	require.NoError(t, db.Create(&event).Error)
	return &event
}

func TestJoinClub(t *testing.T) {
	db := testDB(t)
	student := seedStudent(t, db, 0, 169)
	club := seedClub(t, db)

	membership, err := JoinClub(db, student.ID, club.ID)
	require.NoError(t, err)
	assert.Equal(t, "active", membership.Status)
	assert.Equal(t, "member", membership.Role)

	var after models.Club
	require.NoError(t, db.First(&after, club.ID).Error)
	assert.Equal(t, 1, after.MemberCount)

	t.Run("joining twice", func(t *testing.T) {
		_, err := JoinClub(db, student.ID, club.ID)
		assert.ErrorIs(t, err, ErrAlreadyMember)

		require.NoError(t, db.First(&after, club.ID).Error)
		assert.Equal(t, 1, after.MemberCount)
	})

	t.Run("unknown club", func(t *testing.T) {
		_, err := JoinClub(db, student.ID, club.ID+50)
		assert.ErrorIs(t, err, ErrClubNotFound)
	})
}

func TestLeaveClub(t *testing.T) {
	db := testDB(t)
	student := seedStudent(t, db, 0, 169)
	club := seedClub(t, db)

	_, err := JoinClub(db, student.ID, club.ID)
	require.NoError(t, err)
	require.NoError(t, LeaveClub(db, student.ID, club.ID))

	var after models.Club
	require.NoError(t, db.First(&after, club.ID).Error)
	assert.Equal(t, 0, after.MemberCount)

	// the membership row is tombstoned, not erased
	var gone int64
	require.NoError(t, db.Model(&models.ClubMembership{}).Count(&gone).Error)
	assert.Zero(t, gone)
	var kept int64
	require.NoError(t, db.Unscoped().Model(&models.ClubMembership{}).
		Where("status = ?", "inactive").Count(&kept).Error)
	assert.EqualValues(t, 1, kept)

	t.Run("leaving again", func(t *testing.T) {
		assert.ErrorIs(t, LeaveClub(db, student.ID, club.ID), ErrMembershipNotFound)
	})

	t.Run("rejoining after leaving", func(t *testing.T) {
		_, err := JoinClub(db, student.ID, club.ID)
		require.NoError(t, err)
		require.NoError(t, db.First(&after, club.ID).Error)
		assert.Equal(t, 1, after.MemberCount)
	})
}

func TestRegisterForEvent(t *testing.T) {
	db := testDB(t)
	student := seedStudent(t, db, 0, 169)
	other := seedStudentWith(t, db, "SE-0010", 0, 169)

	t.Run("registration bumps the counter", func(t *testing.T) {
		event := seedEvent(t, db, 10)
		reg, err := RegisterForEvent(db, student.ID, event.ID)
		require.NoError(t, err)
		assert.Equal(t, "registered", reg.Status)

		var after models.Event
		require.NoError(t, db.First(&after, event.ID).Error)
		assert.Equal(t, 1, after.RegisteredCount)

		_, err = RegisterForEvent(db, student.ID, event.ID)
		assert.ErrorIs(t, err, ErrAlreadyRegistered)
	})

	t.Run("capacity is enforced", func(t *testing.T) {
		event := seedEvent(t, db, 1)
		_, err := RegisterForEvent(db, student.ID, event.ID)
		require.NoError(t, err)

		_, err = RegisterForEvent(db, other.ID, event.ID)
		assert.ErrorIs(t, err, ErrEventFull)
	})

	t.Run("zero capacity means unlimited", func(t *testing.T) {
		event := seedEvent(t, db, 0)
		_, err := RegisterForEvent(db, student.ID, event.ID)
		require.NoError(t, err)
		_, err = RegisterForEvent(db, other.ID, event.ID)
		require.NoError(t, err)
	})

	t.Run("unknown event", func(t *testing.T) {
		_, err := RegisterForEvent(db, student.ID, 9999)
		assert.ErrorIs(t, err, ErrEventNotFound)
	})
}

func TestCancelEventRegistration(t *testing.T) {
	db := testDB(t)
	student := seedStudent(t, db, 0, 169)
	other := seedStudentWith(t, db, "SE-0011", 0, 169)
	event := seedEvent(t, db, 1)

	_, err := RegisterForEvent(db, student.ID, event.ID)
	require.NoError(t, err)
	require.NoError(t, CancelEventRegistration(db, student.ID, event.ID))

	var after models.Event
	require.NoError(t, db.First(&after, event.ID).Error)
	assert.Equal(t, 0, after.RegisteredCount)

	t.Run("cancelling twice", func(t *testing.T) {
		assert.ErrorIs(t, CancelEventRegistration(db, student.ID, event.ID), ErrRegistrationNotFound)
	})

	t.Run("cancellation frees the spot", func(t *testing.T) {
		_, err := RegisterForEvent(db, other.ID, event.ID)
		assert.NoError(t, err)
	})
}
