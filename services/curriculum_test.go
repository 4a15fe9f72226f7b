package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AbdelazizBarhoumi/EPIMobileApplication/models"
)

func TestCurriculumSlice(t *testing.T) {
	db := testDB(t)
	student := seedStudent(t, db, 0, 169)
	var major models.Major
	require.NoError(t, db.First(&major, student.MajorID).Error)

	course := seedCourse(t, db, "CS101", 4)
	seedOffering(t, db, major.ID, course, 1, 1)

	t.Run("year outside the major's duration", func(t *testing.T) {
		_, err := CurriculumSlice(db, &major, 6, 1)
		assert.ErrorIs(t, err, ErrInvalidYear)
		_, err = CurriculumSlice(db, &major, 0, 1)
		assert.ErrorIs(t, err, ErrInvalidYear)
	})

	t.Run("semester outside 1..2", func(t *testing.T) {
		_, err := CurriculumSlice(db, &major, 1, 3)
		assert.ErrorIs(t, err, ErrInvalidSemester)
		_, err = CurriculumSlice(db, &major, 1, 0)
		assert.ErrorIs(t, err, ErrInvalidSemester)
	})

	t.Run("valid but empty term is an empty list, not an error", func(t *testing.T) {
		out, err := CurriculumSlice(db, &major, 5, 2)
		require.NoError(t, err)
		assert.Empty(t, out)
	})

	t.Run("populated term preloads the course", func(t *testing.T) {
		out, err := CurriculumSlice(db, &major, 1, 1)
		require.NoError(t, err)
		require.Len(t, out, 1)
		require.NotNil(t, out[0].Course)
		assert.Equal(t, "CS101", out[0].Course.CourseCode)
	})
}

func TestValidateWeights(t *testing.T) {
	assert.NoError(t, ValidateWeights(30, 20, 50))
	assert.NoError(t, ValidateWeights(0, 0, 100))
	assert.ErrorIs(t, ValidateWeights(30, 20, 49), ErrInvalidWeights)
	assert.ErrorIs(t, ValidateWeights(30, 20, 51), ErrInvalidWeights)
	assert.ErrorIs(t, ValidateWeights(-10, 60, 50), ErrInvalidWeights)
}

func TestAttachCourse(t *testing.T) {
	db := testDB(t)
	student := seedStudent(t, db, 0, 169)
	course := seedCourse(t, db, "CS101", 4)

	t.Run("rejects broken weight triples before touching the table", func(t *testing.T) {
		err := AttachCourse(db, &models.ProgramCourse{
			MajorID: student.MajorID, CourseID: course.ID,
			YearLevel: 1, Semester: 1,
			CCWeight: 40, DSWeight: 40, ExamWeight: 40,
		})
		assert.ErrorIs(t, err, ErrInvalidWeights)

		var count int64
		require.NoError(t, db.Model(&models.ProgramCourse{}).Count(&count).Error)
		assert.Zero(t, count)
	})

	t.Run("rejects semester outside 1..2", func(t *testing.T) {
		err := AttachCourse(db, &models.ProgramCourse{
			MajorID: student.MajorID, CourseID: course.ID,
			YearLevel: 1, Semester: 3,
			CCWeight: 30, DSWeight: 20, ExamWeight: 50,
		})
		assert.ErrorIs(t, err, ErrInvalidSemester)
	})

	t.Run("creates a valid offering", func(t *testing.T) {
		pc := models.ProgramCourse{
			MajorID: student.MajorID, CourseID: course.ID,
			YearLevel: 1, Semester: 1,
			CCWeight: 30, DSWeight: 20, ExamWeight: 50,
		}
		require.NoError(t, AttachCourse(db, &pc))
		assert.NotZero(t, pc.ID)
	})
}

func TestEnroll(t *testing.T) {
	db := testDB(t)
	student := seedStudent(t, db, 0, 169)
	course := seedCourse(t, db, "CS101", 4)
	pc := seedOffering(t, db, student.MajorID, course, 1, 1)

	sc, err := Enroll(db, student.ID, pc)
	require.NoError(t, err)

	// weights and term come from the offering, grades start empty
	assert.Equal(t, pc.CCWeight, sc.CCWeight)
	assert.Equal(t, pc.DSWeight, sc.DSWeight)
	assert.Equal(t, pc.ExamWeight, sc.ExamWeight)
	assert.Equal(t, pc.YearLevel, sc.YearTaken)
	assert.Equal(t, pc.Semester, sc.SemesterTaken)
	assert.Equal(t, models.EnrollmentEnrolled, sc.Status)
	assert.Nil(t, sc.FinalGrade)

	t.Run("double enrollment in the same offering", func(t *testing.T) {
		_, err := Enroll(db, student.ID, pc)
		assert.ErrorIs(t, err, ErrNotEnrollable)
	})

	t.Run("legacy offering with broken weights is rejected, not copied", func(t *testing.T) {
		bad := seedOffering(t, db, student.MajorID, seedCourse(t, db, "CS102", 3), 1, 1)
		bad.ExamWeight = 60 // 30+20+60
		require.NoError(t, db.Save(bad).Error)

		_, err := Enroll(db, student.ID, bad)
		assert.ErrorIs(t, err, ErrInvalidWeights)
	})
}
