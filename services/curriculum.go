package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/AbdelazizBarhoumi/EPIMobileApplication/models"
)

// Domain errors let callers distinguish "no courses this term" (empty list)
// from "this term does not exist for the major" (error).
var (
	ErrInvalidYear     = errors.New("year level outside the major's duration")
	ErrInvalidSemester = errors.New("semester must be 1 or 2")
	ErrInvalidWeights  = errors.New("component weights must sum to 100")
	ErrNotEnrollable   = errors.New("student already enrolled in this offering")
)

// CurriculumSlice returns the program courses of a major for one (year, semester).
func CurriculumSlice(db *gorm.DB, major *models.Major, year, semester int) ([]models.ProgramCourse, error) {
	if year < 1 || year > major.DurationYears {
		return nil, ErrInvalidYear
	}
	if semester != 1 && semester != 2 {
		return nil, ErrInvalidSemester
	}

	var out []models.ProgramCourse
	err := db.Preload("Course").Preload("Teacher").
		Where("major_id = ? AND year_level = ? AND semester = ?", major.ID, year, semester).
		Order("is_required DESC, id ASC").
		Find(&out).Error
	return out, err
}

// CurriculumYear returns all program courses of a major for one year level.
func CurriculumYear(db *gorm.DB, major *models.Major, year int) ([]models.ProgramCourse, error) {
	if year < 1 || year > major.DurationYears {
		return nil, ErrInvalidYear
	}

	var out []models.ProgramCourse
	err := db.Preload("Course").Preload("Teacher").
		Where("major_id = ? AND year_level = ?", major.ID, year).
		Order("semester ASC, is_required DESC, id ASC").
		Find(&out).Error
	return out, err
}

// ValidateWeights is the create/update gate for program-course weight triples.
func ValidateWeights(cc, ds, exam int) error {
	if cc < 0 || ds < 0 || exam < 0 || cc+ds+exam != 100 {
		return ErrInvalidWeights
	}
	return nil
}

// AttachCourse links a course into a major's curriculum. Weights are checked
// here so an invalid triple can never reach the table.
func AttachCourse(db *gorm.DB, pc *models.ProgramCourse) error {
	if err := ValidateWeights(pc.CCWeight, pc.DSWeight, pc.ExamWeight); err != nil {
		return err
	}
	if pc.Semester != 1 && pc.Semester != 2 {
		return ErrInvalidSemester
	}
	return db.Create(pc).Error
}

// Enroll creates a grade record for a student in an offering, copying the
// offering's weights so later curriculum edits do not touch posted grades.
// The copied weights are re-validated: a legacy offering with a broken triple
// is rejected instead of propagated.
func Enroll(db *gorm.DB, studentID uint, pc *models.ProgramCourse) (*models.StudentCourse, error) {
	if err := ValidateWeights(pc.CCWeight, pc.DSWeight, pc.ExamWeight); err != nil {
		return nil, err
	}

	var existing models.StudentCourse
	err := db.Where("student_id = ? AND program_course_id = ?", studentID, pc.ID).
		First(&existing).Error
	if err == nil {
		return nil, ErrNotEnrollable
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	sc := models.StudentCourse{
		StudentID:       studentID,
		CourseID:        pc.CourseID,
		ProgramCourseID: pc.ID,
		YearTaken:       pc.YearLevel,
		SemesterTaken:   pc.Semester,
		CCWeight:        pc.CCWeight,
		DSWeight:        pc.DSWeight,
		ExamWeight:      pc.ExamWeight,
		Status:          models.EnrollmentEnrolled,
	}
	if err := db.Create(&sc).Error; err != nil {
		return nil, err
	}
	return &sc, nil
}
