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

type GradeHandler struct{}

func NewGradeHandler() *GradeHandler { return &GradeHandler{} }

func loadStudent(c echo.Context) (*models.Student, error) {
	id, err := pathID(c, "id")
	if err != nil {
		return nil, err
	}
	var student models.Student
	dberr := database.DB.Preload("Major").First(&student, id).Error
	if errors.Is(dberr, gorm.ErrRecordNotFound) {
		return nil, echo.NewHTTPError(http.StatusNotFound, map[string]any{"success": false, "message": "Student not found"})
	}
	if dberr != nil {
		return nil, dberr
	}
	return &student, nil
}

// GET /api/grades/student/:id/transcript
func (h *GradeHandler) Transcript(c echo.Context) error {
	student, err := loadStudent(c)
	if err != nil {
		return err
	}

	transcript, err := services.FullTranscript(database.DB, student.ID)
	if err != nil {
		return err
	}
	overall, err := services.OverallGPA(database.DB, student.ID)
	if err != nil {
		return err
	}

	majorName := ""
	if student.Major != nil {
		majorName = student.Major.Name
	}
	return respondOK(c, map[string]any{
		"student": map[string]any{
			"id":           student.ID,
			"student_id":   student.StudentID,
			"name":         student.Name,
			"major":        majorName,
			"current_year": student.YearLevel,
		},
		"transcript":        transcript,
		"overall_gpa":       overall,
		"credits_taken":     student.CreditsTaken,
		"credits_remaining": student.CreditsRemaining(),
	})
}

// GET /api/grades/student/:id/transcript/year/:year
func (h *GradeHandler) TranscriptByYear(c echo.Context) error {
	student, err := loadStudent(c)
	if err != nil {
		return err
	}
	year := atoiOr(c.Param("year"), 0)

	semesters, gpa, err := services.YearTranscript(database.DB, student.ID, year)
	if err != nil {
		return err
	}
	return respondOK(c, map[string]any{
		"student":   student.Name,
		"year":      year,
		"semesters": semesters,
		"year_gpa":  gpa,
	})
}

// GET /api/grades/student/:id/current-semester
func (h *GradeHandler) CurrentSemester(c echo.Context) error {
	student, err := loadStudent(c)
	if err != nil {
		return err
	}

	semester := currentSemesterNumber()
	courses, err := services.SemesterCourses(database.DB, student.ID, student.YearLevel, semester)
	if err != nil {
		return err
	}
	return respondOK(c, map[string]any{
		"student":          student.Name,
		"current_year":     student.YearLevel,
		"current_semester": semester,
		"courses":          courses,
	})
}

// currentSemesterNumber reads the active academic calendar; fall terms are
// semester 1, anything else semester 2. Defaults to 1 with no active term.
func currentSemesterNumber() int {
	var cal models.AcademicCalendar
	err := database.DB.Where("status = ?", "active").First(&cal).Error
	if err != nil {
		return 1
	}
	if containsFold(cal.Semester, "fall") {
		return 1
	}
	return 2
}

type updateGradesReq struct {
	CCScore   *float64 `json:"cc_score" validate:"omitempty,min=0,max=100"`
	DSScore   *float64 `json:"ds_score" validate:"omitempty,min=0,max=100"`
	ExamScore *float64 `json:"exam_score" validate:"omitempty,min=0,max=100"`
	Status    *string  `json:"status" validate:"omitempty,oneof=enrolled completed dropped"`
}

// PUT /api/grades/student/:id/course/:courseId
//
// Applies only the fields present in the body, then recomputes the final and
// letter grade before saving.
func (h *GradeHandler) UpdateGrades(c echo.Context) error {
	student, err := loadStudent(c)
	if err != nil {
		return err
	}
	courseID, err := pathID(c, "courseId")
	if err != nil {
		return err
	}

	var req updateGradesReq
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "Invalid payload")
	}
	if fields := validateStruct(&req); fields != nil {
		return respondValidation(c, fields)
	}

	var enrollment models.StudentCourse
	dberr := database.DB.Where("student_id = ? AND course_id = ?", student.ID, courseID).
		First(&enrollment).Error
	if errors.Is(dberr, gorm.ErrRecordNotFound) {
		return respondError(c, http.StatusNotFound, "Enrollment not found")
	}
	if dberr != nil {
		return dberr
	}

	if req.CCScore != nil {
		enrollment.CCScore = req.CCScore
	}
	if req.DSScore != nil {
		enrollment.DSScore = req.DSScore
	}
	if req.ExamScore != nil {
		enrollment.ExamScore = req.ExamScore
	}
	if req.Status != nil {
		enrollment.Status = *req.Status
	}

	services.RecomputeFinalGrade(&enrollment)

	if err := database.DB.Save(&enrollment).Error; err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"message": "Grades updated successfully",
		"data": map[string]any{
			"cc_score":     enrollment.CCScore,
			"ds_score":     enrollment.DSScore,
			"exam_score":   enrollment.ExamScore,
			"final_grade":  enrollment.FinalGrade,
			"letter_grade": enrollment.LetterGrade,
			"status":       enrollment.Status,
		},
	})
}

// GET /api/grades/student/:id/gpa
func (h *GradeHandler) GPAStats(c echo.Context) error {
	student, err := loadStudent(c)
	if err != nil {
		return err
	}

	overall, err := services.OverallGPA(database.DB, student.ID)
	if err != nil {
		return err
	}
	byYear := map[int]float64{}
	for year := 1; year <= student.YearLevel; year++ {
		gpa, err := services.YearGPA(database.DB, student.ID, year)
		if err != nil {
			return err
		}
		byYear[year] = gpa
	}

	return respondOK(c, map[string]any{
		"student": map[string]any{
			"id":         student.ID,
			"student_id": student.StudentID,
			"name":       student.Name,
		},
		"overall_gpa":         overall,
		"gpa_by_year":         byYear,
		"credits_taken":       student.CreditsTaken,
		"total_credits":       student.TotalCredits,
		"progress_percentage": student.CreditsProgressPercentage(),
	})
}

type enrollReq struct {
	ProgramCourseID uint `json:"program_course_id" validate:"required"`
}

// POST /api/grades/student/:id/enroll (staff)
func (h *GradeHandler) Enroll(c echo.Context) error {
	student, err := loadStudent(c)
	if err != nil {
		return err
	}

	var req enrollReq
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "Invalid payload")
	}
	if fields := validateStruct(&req); fields != nil {
		return respondValidation(c, fields)
	}

	var pc models.ProgramCourse
	dberr := database.DB.First(&pc, req.ProgramCourseID).Error
	if errors.Is(dberr, gorm.ErrRecordNotFound) {
		return respondError(c, http.StatusNotFound, "Program course not found")
	}
	if dberr != nil {
		return dberr
	}

	enrollment, err := services.Enroll(database.DB, student.ID, &pc)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidWeights):
			return respondError(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, services.ErrNotEnrollable):
			return respondError(c, http.StatusBadRequest, err.Error())
		default:
			return err
		}
	}
	return respondCreated(c, "Enrollment created", enrollment)
}
