package services

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/AbdelazizBarhoumi/EPIMobileApplication/database"
	"github.com/AbdelazizBarhoumi/EPIMobileApplication/models"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func seedStudent(t *testing.T, db *gorm.DB, creditsTaken, totalCredits int) *models.Student {
	t.Helper()
	major := models.Major{
		Code:                 "SE",
		Name:                 "Software Engineering",
		Department:           "Computer Science",
		DurationYears:        5,
		TotalCreditsRequired: totalCredits,
		DegreeType:           "Engineering",
		IsActive:             true,
	}
	require.NoError(t, db.Create(&major).Error)

	student := models.Student{
		StudentID:    "SE-0001",
		UserID:       1,
		MajorID:      major.ID,
		Name:         "Test Student",
		Email:        "student@test.test",
		YearLevel:    2,
		CreditsTaken: creditsTaken,
		TotalCredits: totalCredits,
	}
	require.NoError(t, db.Create(&student).Error)
	return &student
}

func seedCourse(t *testing.T, db *gorm.DB, code string, credits int) *models.Course {
	t.Helper()
	course := models.Course{
		CourseCode: code,
		Name:       "Course " + code,
		Instructor: "Dr. Test",
		Credits:    credits,
	}
	require.NoError(t, db.Create(&course).Error)
	return &course
}

func seedOffering(t *testing.T, db *gorm.DB, majorID uint, course *models.Course, year, semester int) *models.ProgramCourse {
	t.Helper()
	pc := models.ProgramCourse{
		MajorID:    majorID,
		CourseID:   course.ID,
		YearLevel:  year,
		Semester:   semester,
		IsRequired: true,
		CCWeight:   30,
		DSWeight:   20,
		ExamWeight: 50,
	}
	require.NoError(t, db.Create(&pc).Error)
	return &pc
}

func seedEnrollment(t *testing.T, db *gorm.DB, studentID uint, course *models.Course, year, semester int, letter string, status string) *models.StudentCourse {
	t.Helper()
	sc := models.StudentCourse{
		StudentID:     studentID,
		CourseID:      course.ID,
		YearTaken:     year,
		SemesterTaken: semester,
		CCWeight:      30,
		DSWeight:      20,
		ExamWeight:    50,
		Status:        status,
	}
	if letter != "" {
		final := letterFinal(letter)
		sc.CCScore = &final
		sc.DSScore = &final
		sc.ExamScore = &final
		RecomputeFinalGrade(&sc)
	}
	require.NoError(t, db.Create(&sc).Error)
	return &sc
}

// letterFinal picks a score inside the letter's band so equal component
// scores produce that letter after weighting.
func letterFinal(letter string) float64 {
	switch letter {
	case "A":
		return 95
	case "B":
		return 85
	case "C":
		return 75
	case "D":
		return 65
	default:
		return 40
	}
}

func fptr(v float64) *float64 { return &v }
