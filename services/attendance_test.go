package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AbdelazizBarhoumi/EPIMobileApplication/models"
)

func TestMarkAttendance(t *testing.T) {
	db := testDB(t)
	student := seedStudent(t, db, 0, 169)
	pc := seedOffering(t, db, student.MajorID, seedCourse(t, db, "CS101", 4), 1, 1)
	session := models.Schedule{ProgramCourseID: pc.ID, DayOfWeek: "Monday", TimeSlot: 1, Room: "A101"}
	require.NoError(t, AssignSession(db, &session))

	record, err := MarkAttendance(db, student.ID, session.ID, "2025-09-08", models.AttendancePresent, "", nil)
	require.NoError(t, err)
	assert.Equal(t, models.AttendancePresent, record.Status)

	t.Run("a second mark for the same date overwrites, not duplicates", func(t *testing.T) {
		marker := uint(7)
		updated, err := MarkAttendance(db, student.ID, session.ID, "2025-09-08", models.AttendanceLate, "bus strike", &marker)
		require.NoError(t, err)
		assert.Equal(t, record.ID, updated.ID)
		assert.Equal(t, models.AttendanceLate, updated.Status)
		assert.Equal(t, "bus strike", updated.Notes)
		require.NotNil(t, updated.MarkedBy)
		assert.Equal(t, marker, *updated.MarkedBy)

		var count int64
		require.NoError(t, db.Model(&models.StudentAttendance{}).Count(&count).Error)
		assert.EqualValues(t, 1, count)
	})

	t.Run("a different date is a new record", func(t *testing.T) {
		_, err := MarkAttendance(db, student.ID, session.ID, "2025-09-15", models.AttendanceAbsent, "", nil)
		require.NoError(t, err)

		var count int64
		require.NoError(t, db.Model(&models.StudentAttendance{}).Count(&count).Error)
		assert.EqualValues(t, 2, count)
	})
}

func TestCourseAttendanceStats(t *testing.T) {
	db := testDB(t)
	student := seedStudent(t, db, 0, 169)
	course := seedCourse(t, db, "CS101", 4)
	pc := seedOffering(t, db, student.MajorID, course, 1, 1)
	session := models.Schedule{ProgramCourseID: pc.ID, DayOfWeek: "Monday", TimeSlot: 1}
	require.NoError(t, AssignSession(db, &session))

	// another course's marks must not bleed into the stats
	otherCourse := seedCourse(t, db, "CS102", 3)
	otherPC := seedOffering(t, db, student.MajorID, otherCourse, 1, 1)
	otherSession := models.Schedule{ProgramCourseID: otherPC.ID, DayOfWeek: "Tuesday", TimeSlot: 1}
	require.NoError(t, AssignSession(db, &otherSession))
	_, err := MarkAttendance(db, student.ID, otherSession.ID, "2025-09-09", models.AttendanceAbsent, "", nil)
	require.NoError(t, err)

	marks := []string{
		models.AttendancePresent,
		models.AttendanceLate,
		models.AttendanceAbsent,
		models.AttendanceExcused,
		models.AttendancePresent,
		models.AttendancePresent,
	}
	dates := []string{"2025-09-01", "2025-09-08", "2025-09-15", "2025-09-22", "2025-09-29", "2025-10-06"}
	for i, status := range marks {
		_, err := MarkAttendance(db, student.ID, session.ID, dates[i], status, "", nil)
		require.NoError(t, err)
	}

	stats, err := CourseAttendanceStats(db, student.ID, course.ID)
	require.NoError(t, err)
	assert.Equal(t, 6, stats.Total)
	// late counts as present; excused and absent do not
	assert.Equal(t, 4, stats.Present)
	assert.Equal(t, 66.67, stats.Percentage)

	t.Run("overall stats span every course", func(t *testing.T) {
		overall, err := OverallAttendanceStats(db, student.ID)
		require.NoError(t, err)
		assert.Equal(t, 7, overall.Total)
		assert.Equal(t, 4, overall.Present)
		assert.Equal(t, 57.14, overall.Percentage)
	})

	t.Run("course with no sessions", func(t *testing.T) {
		bare := seedCourse(t, db, "CS103", 2)
		stats, err := CourseAttendanceStats(db, student.ID, bare.ID)
		require.NoError(t, err)
		assert.Equal(t, 0, stats.Total)
		assert.Equal(t, 0.0, stats.Percentage)
	})
}

func TestCourseAttendanceRecords(t *testing.T) {
	db := testDB(t)
	student := seedStudent(t, db, 0, 169)
	course := seedCourse(t, db, "CS101", 4)
	pc := seedOffering(t, db, student.MajorID, course, 1, 1)
	session := models.Schedule{ProgramCourseID: pc.ID, DayOfWeek: "Monday", TimeSlot: 1}
	require.NoError(t, AssignSession(db, &session))

	for _, date := range []string{"2025-09-01", "2025-09-15", "2025-09-08"} {
		_, err := MarkAttendance(db, student.ID, session.ID, date, models.AttendancePresent, "", nil)
		require.NoError(t, err)
	}

	records, err := CourseAttendanceRecords(db, student.ID, course.ID)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "2025-09-15", records[0].Date)
	assert.Equal(t, "2025-09-08", records[1].Date)
	assert.Equal(t, "2025-09-01", records[2].Date)
}
