package services

import (
	"github.com/AbdelazizBarhoumi/EPIMobileApplication/models"
)

// LetterGrade maps a final grade to its letter on inclusive lower bounds:
// >=90 A, >=80 B, >=70 C, >=60 D, below F.
func LetterGrade(final float64) string {
	switch {
	case final >= 90:
		return "A"
	case final >= 80:
		return "B"
	case final >= 70:
		return "C"
	case final >= 60:
		return "D"
	default:
		return "F"
	}
}

// GradePoint is the 4.0-scale value of a letter grade.
func GradePoint(letter string) float64 {
	switch letter {
	case "A":
		return 4.0
	case "B":
		return 3.0
	case "C":
		return 2.0
	case "D":
		return 1.0
	default:
		return 0.0
	}
}

// RecomputeFinalGrade derives final and letter grade from the three component
// scores and the weights copied at enrollment. When any score is missing both
// derived fields are cleared. Callers invoke this before every save of a grade
// record; it never runs as an implicit persistence hook.
//
// Score range validation belongs to the request layer, not here.
func RecomputeFinalGrade(sc *models.StudentCourse) {
	if !sc.HasCompleteScores() {
		sc.FinalGrade = nil
		sc.LetterGrade = nil
		return
	}

	final := *sc.CCScore*float64(sc.CCWeight)/100 +
		*sc.DSScore*float64(sc.DSWeight)/100 +
		*sc.ExamScore*float64(sc.ExamWeight)/100

	letter := LetterGrade(final)
	sc.FinalGrade = &final
	sc.LetterGrade = &letter
}
