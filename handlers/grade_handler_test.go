package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/AbdelazizBarhoumi/EPIMobileApplication/database"
	"github.com/AbdelazizBarhoumi/EPIMobileApplication/models"
)

// useTestDB points the handlers package at an in-memory database for the
// duration of one test.
func useTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	prev := database.DB
	database.DB = db
	t.Cleanup(func() { database.DB = prev })
	return db
}

func seedGradedStudent(t *testing.T, db *gorm.DB) (*models.Student, *models.Course) {
	t.Helper()
	major := models.Major{
		Code: "SE", Name: "Software Engineering", Department: "Computer Science",
		DurationYears: 5, TotalCreditsRequired: 169, DegreeType: "Engineering", IsActive: true,
	}
	require.NoError(t, db.Create(&major).Error)

	student := models.Student{
		StudentID: "SE-0001", UserID: 1, MajorID: major.ID,
		Name: "Test Student", Email: "student@test.test",
		YearLevel: 2, TotalCredits: 169,
	}
	require.NoError(t, db.Create(&student).Error)

	course := models.Course{CourseCode: "CS201", Name: "Algorithms", Credits: 4}
	require.NoError(t, db.Create(&course).Error)

	enrollment := models.StudentCourse{
		StudentID: student.ID, CourseID: course.ID,
		YearTaken: 2, SemesterTaken: 1,
		CCWeight: 30, DSWeight: 20, ExamWeight: 50,
		Status: models.EnrollmentEnrolled,
	}
	require.NoError(t, db.Create(&enrollment).Error)
	return &student, &course
}

func putGrades(t *testing.T, studentID, courseID uint, body string) (*httptest.ResponseRecorder, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPut,
		"/api/grades/student/"+strconv.Itoa(int(studentID))+"/course/"+strconv.Itoa(int(courseID)),
		strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id", "courseId")
	c.SetParamValues(strconv.Itoa(int(studentID)), strconv.Itoa(int(courseID)))
	return rec, NewGradeHandler().UpdateGrades(c)
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestUpdateGrades(t *testing.T) {
	t.Run("full scores produce final and letter grade", func(t *testing.T) {
		db := useTestDB(t)
		student, course := seedGradedStudent(t, db)

		rec, err := putGrades(t, student.ID, course.ID,
			`{"cc_score": 80, "ds_score": 90, "exam_score": 70, "status": "completed"}`)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, rec.Code)

		body := decodeBody(t, rec)
		assert.Equal(t, true, body["success"])
		assert.Equal(t, "Grades updated successfully", body["message"])

		data := body["data"].(map[string]any)
		// 80*0.30 + 90*0.20 + 70*0.50 = 77 -> C
		assert.Equal(t, 77.0, data["final_grade"])
		assert.Equal(t, "C", data["letter_grade"])
		assert.Equal(t, "completed", data["status"])

		var saved models.StudentCourse
		require.NoError(t, db.Where("student_id = ?", student.ID).First(&saved).Error)
		require.NotNil(t, saved.FinalGrade)
		assert.Equal(t, 77.0, *saved.FinalGrade)
	})

	t.Run("partial scores leave the final grade empty", func(t *testing.T) {
		db := useTestDB(t)
		student, course := seedGradedStudent(t, db)

		rec, err := putGrades(t, student.ID, course.ID, `{"cc_score": 80}`)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, rec.Code)

		data := decodeBody(t, rec)["data"].(map[string]any)
		assert.Equal(t, 80.0, data["cc_score"])
		assert.Nil(t, data["final_grade"])
		assert.Nil(t, data["letter_grade"])
	})

	t.Run("score outside 0..100", func(t *testing.T) {
		db := useTestDB(t)
		student, course := seedGradedStudent(t, db)

		rec, err := putGrades(t, student.ID, course.ID, `{"exam_score": 101}`)
		require.NoError(t, err)
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

		body := decodeBody(t, rec)
		assert.Equal(t, false, body["success"])
		errs := body["errors"].(map[string]any)
		assert.Contains(t, errs, "exam_score")
	})

	t.Run("unknown status value", func(t *testing.T) {
		db := useTestDB(t)
		student, course := seedGradedStudent(t, db)

		rec, err := putGrades(t, student.ID, course.ID, `{"status": "withdrawn"}`)
		require.NoError(t, err)
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("unknown student", func(t *testing.T) {
		db := useTestDB(t)
		_, course := seedGradedStudent(t, db)

		_, err := putGrades(t, 999, course.ID, `{"cc_score": 80}`)
		var httpErr *echo.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusNotFound, httpErr.Code)
	})

	t.Run("student not enrolled in the course", func(t *testing.T) {
		db := useTestDB(t)
		student, _ := seedGradedStudent(t, db)
		other := models.Course{CourseCode: "MA101", Name: "Calculus", Credits: 3}
		require.NoError(t, db.Create(&other).Error)

		rec, err := putGrades(t, student.ID, other.ID, `{"cc_score": 80}`)
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, false, decodeBody(t, rec)["success"])
	})
}

func TestTranscriptEndpoint(t *testing.T) {
	db := useTestDB(t)
	student, course := seedGradedStudent(t, db)

	_, err := putGrades(t, student.ID, course.ID,
		`{"cc_score": 95, "ds_score": 95, "exam_score": 95, "status": "completed"}`)
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/grades/student/1/transcript", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(strconv.Itoa(int(student.ID)))

	require.NoError(t, NewGradeHandler().Transcript(c))
	require.Equal(t, http.StatusOK, rec.Code)

	data := decodeBody(t, rec)["data"].(map[string]any)
	assert.Equal(t, 4.0, data["overall_gpa"])
	assert.Equal(t, 169.0, data["credits_remaining"])

	studentBlock := data["student"].(map[string]any)
	assert.Equal(t, "SE-0001", studentBlock["student_id"])
	assert.Equal(t, "Software Engineering", studentBlock["major"])

	years := data["transcript"].([]any)
	require.Len(t, years, 1)
	year := years[0].(map[string]any)
	assert.Equal(t, 2.0, year["year"])
	assert.Equal(t, 4.0, year["year_gpa"])
}
