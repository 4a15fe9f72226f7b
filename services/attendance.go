package services

import (
	"errors"
	"math"

	"gorm.io/gorm"

	"github.com/AbdelazizBarhoumi/EPIMobileApplication/models"
)

// AttendanceStats is the present/total rollup for one scope (course or overall).
// Late marks count as present; excused and absent do not.
type AttendanceStats struct {
	Total      int     `json:"total"`
	Present    int     `json:"present"`
	Percentage float64 `json:"percentage"`
}

// CourseAttendanceStats rolls up a student's marks across every session of a course.
func CourseAttendanceStats(db *gorm.DB, studentID, courseID uint) (*AttendanceStats, error) {
	scheduleIDs, err := courseScheduleIDs(db, courseID)
	if err != nil {
		return nil, err
	}

	var total, present int64
	base := db.Model(&models.StudentAttendance{}).
		Where("student_id = ? AND schedule_id IN ?", studentID, scheduleIDs)
	if err := base.Count(&total).Error; err != nil {
		return nil, err
	}
	err = db.Model(&models.StudentAttendance{}).
		Where("student_id = ? AND schedule_id IN ?", studentID, scheduleIDs).
		Where("status IN ?", []string{models.AttendancePresent, models.AttendanceLate}).
		Count(&present).Error
	if err != nil {
		return nil, err
	}
	return newStats(total, present), nil
}

// OverallAttendanceStats rolls up all of a student's marks.
func OverallAttendanceStats(db *gorm.DB, studentID uint) (*AttendanceStats, error) {
	var total, present int64
	err := db.Model(&models.StudentAttendance{}).
		Where("student_id = ?", studentID).
		Count(&total).Error
	if err != nil {
		return nil, err
	}
	err = db.Model(&models.StudentAttendance{}).
		Where("student_id = ?", studentID).
		Where("status IN ?", []string{models.AttendancePresent, models.AttendanceLate}).
		Count(&present).Error
	if err != nil {
		return nil, err
	}
	return newStats(total, present), nil
}

// MarkAttendance upserts the single mark allowed per (student, session, date).
func MarkAttendance(db *gorm.DB, studentID, scheduleID uint, date, status, notes string, markedBy *uint) (*models.StudentAttendance, error) {
	var record models.StudentAttendance
	err := db.Where("student_id = ? AND schedule_id = ? AND date = ?", studentID, scheduleID, date).
		First(&record).Error
	if err == nil {
		record.Status = status
		record.Notes = notes
		record.MarkedBy = markedBy
		if err := db.Save(&record).Error; err != nil {
			return nil, err
		}
		return &record, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	record = models.StudentAttendance{
		StudentID:  studentID,
		ScheduleID: scheduleID,
		Date:       date,
		Status:     status,
		Notes:      notes,
		MarkedBy:   markedBy,
	}
	if err := db.Create(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

// CourseAttendanceRecords lists a student's marks for one course, newest first.
func CourseAttendanceRecords(db *gorm.DB, studentID, courseID uint) ([]models.StudentAttendance, error) {
	scheduleIDs, err := courseScheduleIDs(db, courseID)
	if err != nil {
		return nil, err
	}
	var records []models.StudentAttendance
	err = db.Preload("Schedule").Preload("Marker").
		Where("student_id = ? AND schedule_id IN ?", studentID, scheduleIDs).
		Order("date DESC, id DESC").
		Find(&records).Error
	return records, err
}

func courseScheduleIDs(db *gorm.DB, courseID uint) ([]uint, error) {
	var ids []uint
	err := db.Model(&models.Schedule{}).
		Joins("JOIN program_courses pc ON pc.id = schedules.program_course_id").
		Where("pc.course_id = ?", courseID).
		Pluck("schedules.id", &ids).Error
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		// IN () is invalid SQL on some drivers; an id no row carries keeps the
		// query well-formed and empty.
		ids = []uint{0}
	}
	return ids, nil
}

func newStats(total, present int64) *AttendanceStats {
	s := &AttendanceStats{Total: int(total), Present: int(present)}
	if total > 0 {
		s.Percentage = math.Round(float64(present)/float64(total)*100*100) / 100
	}
	return s
}
