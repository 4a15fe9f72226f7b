package services

import (
	"math"
	"sort"

	"gorm.io/gorm"

	"github.com/AbdelazizBarhoumi/EPIMobileApplication/models"
)

// TranscriptCourse is one graded enrollment as shown on a transcript.
type TranscriptCourse struct {
	CourseCode  string   `json:"course_code"`
	CourseName  string   `json:"course_name"`
	Credits     int      `json:"credits"`
	CCScore     *float64 `json:"cc_score"`
	DSScore     *float64 `json:"ds_score"`
	ExamScore   *float64 `json:"exam_score"`
	CCWeight    int      `json:"cc_weight"`
	DSWeight    int      `json:"ds_weight"`
	ExamWeight  int      `json:"exam_weight"`
	FinalGrade  *float64 `json:"final_grade"`
	LetterGrade *string  `json:"letter_grade"`
	Status      string   `json:"status"`
}

type TranscriptSemester struct {
	Semester        int                `json:"semester"`
	Courses         []TranscriptCourse `json:"courses"`
	SemesterCredits int                `json:"semester_credits"`
}

type TranscriptYear struct {
	Year      int                  `json:"year"`
	Semesters []TranscriptSemester `json:"semesters"`
	YearGPA   float64              `json:"year_gpa"`
}

// FullTranscript groups a student's grade records by year then semester.
func FullTranscript(db *gorm.DB, studentID uint) ([]TranscriptYear, error) {
	var records []models.StudentCourse
	err := db.Preload("Course").
		Where("student_id = ?", studentID).
		Order("year_taken ASC, semester_taken ASC, id ASC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}

	byYear := map[int][]models.StudentCourse{}
	for _, r := range records {
		byYear[r.YearTaken] = append(byYear[r.YearTaken], r)
	}

	years := make([]int, 0, len(byYear))
	for y := range byYear {
		years = append(years, y)
	}
	sort.Ints(years)

	out := make([]TranscriptYear, 0, len(years))
	for _, y := range years {
		gpa, err := YearGPA(db, studentID, y)
		if err != nil {
			return nil, err
		}
		out = append(out, TranscriptYear{
			Year:      y,
			Semesters: groupBySemester(byYear[y]),
			YearGPA:   gpa,
		})
	}
	return out, nil
}

// YearTranscript is the single-year slice of the transcript plus that year's GPA.
func YearTranscript(db *gorm.DB, studentID uint, year int) ([]TranscriptSemester, float64, error) {
	var records []models.StudentCourse
	err := db.Preload("Course").
		Where("student_id = ? AND year_taken = ?", studentID, year).
		Order("semester_taken ASC, id ASC").
		Find(&records).Error
	if err != nil {
		return nil, 0, err
	}
	gpa, err := YearGPA(db, studentID, year)
	if err != nil {
		return nil, 0, err
	}
	return groupBySemester(records), gpa, nil
}

// SemesterCourses returns the grade records for one (year, semester) pair.
func SemesterCourses(db *gorm.DB, studentID uint, year, semester int) ([]TranscriptCourse, error) {
	var records []models.StudentCourse
	err := db.Preload("Course").
		Where("student_id = ? AND year_taken = ? AND semester_taken = ?", studentID, year, semester).
		Order("id ASC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	courses := make([]TranscriptCourse, 0, len(records))
	for _, r := range records {
		courses = append(courses, toTranscriptCourse(r))
	}
	return courses, nil
}

// OverallGPA is the credit-weighted mean of grade points over completed,
// graded enrollments. 0.0 when none qualify; that is not an error.
func OverallGPA(db *gorm.DB, studentID uint) (float64, error) {
	return gpaOf(db, db.Where("student_id = ?", studentID))
}

// YearGPA restricts OverallGPA to one year-taken.
func YearGPA(db *gorm.DB, studentID uint, year int) (float64, error) {
	return gpaOf(db, db.Where("student_id = ? AND year_taken = ?", studentID, year))
}

func gpaOf(db *gorm.DB, scope *gorm.DB) (float64, error) {
	// Dropped records are excluded even when graded; completed records with no
	// final grade contribute neither points nor credits.
	var records []models.StudentCourse
	err := scope.Preload("Course").
		Where("status = ?", models.EnrollmentCompleted).
		Where("final_grade IS NOT NULL").
		Find(&records).Error
	if err != nil {
		return 0, err
	}

	var points, credits float64
	for _, r := range records {
		if r.Course == nil || r.LetterGrade == nil {
			continue
		}
		points += GradePoint(*r.LetterGrade) * float64(r.Course.Credits)
		credits += float64(r.Course.Credits)
	}
	if credits == 0 {
		return 0.0, nil
	}
	return math.Round(points/credits*100) / 100, nil
}

func groupBySemester(records []models.StudentCourse) []TranscriptSemester {
	bySem := map[int][]models.StudentCourse{}
	for _, r := range records {
		bySem[r.SemesterTaken] = append(bySem[r.SemesterTaken], r)
	}

	sems := make([]int, 0, len(bySem))
	for s := range bySem {
		sems = append(sems, s)
	}
	sort.Ints(sems)

	out := make([]TranscriptSemester, 0, len(sems))
	for _, s := range sems {
		group := TranscriptSemester{Semester: s}
		for _, r := range bySem[s] {
			group.Courses = append(group.Courses, toTranscriptCourse(r))
			if r.Course != nil {
				group.SemesterCredits += r.Course.Credits
			}
		}
		out = append(out, group)
	}
	return out
}

func toTranscriptCourse(r models.StudentCourse) TranscriptCourse {
	tc := TranscriptCourse{
		CCScore:     r.CCScore,
		DSScore:     r.DSScore,
		ExamScore:   r.ExamScore,
		CCWeight:    r.CCWeight,
		DSWeight:    r.DSWeight,
		ExamWeight:  r.ExamWeight,
		FinalGrade:  r.FinalGrade,
		LetterGrade: r.LetterGrade,
		Status:      r.Status,
	}
	if r.Course != nil {
		tc.CourseCode = r.Course.CourseCode
		tc.CourseName = r.Course.Name
		tc.Credits = r.Course.Credits
	}
	return tc
}
