package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/AbdelazizBarhoumi/EPIMobileApplication/database"
	"github.com/AbdelazizBarhoumi/EPIMobileApplication/models"
	"github.com/AbdelazizBarhoumi/EPIMobileApplication/services"
)

type MajorHandler struct{}

func NewMajorHandler() *MajorHandler { return &MajorHandler{} }

func loadMajor(c echo.Context) (*models.Major, error) {
	id, err := pathID(c, "id")
	if err != nil {
		return nil, err
	}
	var major models.Major
	dberr := database.DB.First(&major, id).Error
	if errors.Is(dberr, gorm.ErrRecordNotFound) {
		return nil, echo.NewHTTPError(http.StatusNotFound, map[string]any{"success": false, "message": "Major not found"})
	}
	if dberr != nil {
		return nil, dberr
	}
	return &major, nil
}

// GET /api/majors
func (h *MajorHandler) List(c echo.Context) error {
	var majors []models.Major
	if err := database.DB.Where("is_active = ?", true).Order("code ASC").Find(&majors).Error; err != nil {
		return err
	}
	return respondOK(c, majors)
}

// GET /api/majors/:id
func (h *MajorHandler) Show(c echo.Context) error {
	major, err := loadMajor(c)
	if err != nil {
		return err
	}
	if err := database.DB.Preload("ProgramCourses.Course").First(major, major.ID).Error; err != nil {
		return err
	}
	return respondOK(c, major)
}

// GET /api/majors/:id/curriculum — the whole program, year by year.
func (h *MajorHandler) Curriculum(c echo.Context) error {
	major, err := loadMajor(c)
	if err != nil {
		return err
	}

	curriculum := map[string]map[string][]models.ProgramCourse{}
	for year := 1; year <= major.DurationYears; year++ {
		sem1, err := services.CurriculumSlice(database.DB, major, year, 1)
		if err != nil {
			return err
		}
		sem2, err := services.CurriculumSlice(database.DB, major, year, 2)
		if err != nil {
			return err
		}
		curriculum[fmt.Sprintf("Year %d", year)] = map[string][]models.ProgramCourse{
			"Semester 1": sem1,
			"Semester 2": sem2,
		}
	}

	return respondOK(c, map[string]any{
		"major": map[string]any{
			"id":                     major.ID,
			"code":                   major.Code,
			"name":                   major.Name,
			"duration_years":         major.DurationYears,
			"total_credits_required": major.TotalCreditsRequired,
		},
		"curriculum": curriculum,
	})
}

// GET /api/majors/:id/year/:year
func (h *MajorHandler) CoursesByYear(c echo.Context) error {
	major, err := loadMajor(c)
	if err != nil {
		return err
	}
	year := atoiOr(c.Param("year"), 0)

	courses, err := services.CurriculumYear(database.DB, major, year)
	if err != nil {
		if errors.Is(err, services.ErrInvalidYear) {
			return respondError(c, http.StatusBadRequest, "Invalid year level for this major")
		}
		return err
	}
	return respondOK(c, map[string]any{
		"major":         major.Name,
		"year":          year,
		"courses":       courses,
		"total_credits": sumCredits(courses),
	})
}

// GET /api/majors/:id/year/:year/semester/:semester
func (h *MajorHandler) CoursesByYearAndSemester(c echo.Context) error {
	major, err := loadMajor(c)
	if err != nil {
		return err
	}
	year := atoiOr(c.Param("year"), 0)
	semester := atoiOr(c.Param("semester"), 0)

	courses, err := services.CurriculumSlice(database.DB, major, year, semester)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidYear):
			return respondError(c, http.StatusBadRequest, "Invalid year level for this major")
		case errors.Is(err, services.ErrInvalidSemester):
			return respondError(c, http.StatusBadRequest, "Invalid semester (must be 1 or 2)")
		default:
			return err
		}
	}
	return respondOK(c, map[string]any{
		"major":         major.Name,
		"year":          year,
		"semester":      semester,
		"courses":       courses,
		"total_credits": sumCredits(courses),
	})
}

type attachCourseReq struct {
	CourseID   uint  `json:"course_id" validate:"required"`
	YearLevel  int   `json:"year_level" validate:"required,min=1"`
	Semester   int   `json:"semester" validate:"required,oneof=1 2"`
	IsRequired bool  `json:"is_required"`
	CCWeight   int   `json:"cc_weight" validate:"min=0,max=100"`
	DSWeight   int   `json:"ds_weight" validate:"min=0,max=100"`
	ExamWeight int   `json:"exam_weight" validate:"min=0,max=100"`
	TeacherID  *uint `json:"teacher_id"`
}

// POST /api/majors/:id/courses (staff)
//
// The weight triple is validated here, at write time, so no offering with a
// broken triple can ever be enrolled against.
func (h *MajorHandler) AttachCourse(c echo.Context) error {
	major, err := loadMajor(c)
	if err != nil {
		return err
	}

	var req attachCourseReq
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "Invalid payload")
	}
	if fields := validateStruct(&req); fields != nil {
		return respondValidation(c, fields)
	}
	if req.YearLevel > major.DurationYears {
		return respondError(c, http.StatusBadRequest, "Invalid year level for this major")
	}

	var course models.Course
	dberr := database.DB.First(&course, req.CourseID).Error
	if errors.Is(dberr, gorm.ErrRecordNotFound) {
		return respondError(c, http.StatusNotFound, "Course not found")
	}
	if dberr != nil {
		return dberr
	}

	pc := models.ProgramCourse{
		MajorID:    major.ID,
		CourseID:   course.ID,
		YearLevel:  req.YearLevel,
		Semester:   req.Semester,
		IsRequired: req.IsRequired,
		CCWeight:   req.CCWeight,
		DSWeight:   req.DSWeight,
		ExamWeight: req.ExamWeight,
		TeacherID:  req.TeacherID,
	}
	if err := services.AttachCourse(database.DB, &pc); err != nil {
		if errors.Is(err, services.ErrInvalidWeights) || errors.Is(err, services.ErrInvalidSemester) {
			return respondValidation(c, map[string]string{"weights": err.Error()})
		}
		return err
	}
	return respondCreated(c, "Course attached to curriculum", pc)
}

func sumCredits(courses []models.ProgramCourse) int {
	total := 0
	for _, pc := range courses {
		if pc.Course != nil {
			total += pc.Course.Credits
		}
	}
	return total
}
