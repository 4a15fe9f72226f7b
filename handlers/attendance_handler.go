package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/AbdelazizBarhoumi/EPIMobileApplication/database"
	"github.com/AbdelazizBarhoumi/EPIMobileApplication/models"
	"github.com/AbdelazizBarhoumi/EPIMobileApplication/services"
)

type AttendanceHandler struct{}

func NewAttendanceHandler() *AttendanceHandler { return &AttendanceHandler{} }

// GET /api/attendance/my-attendance
func (h *AttendanceHandler) MyAttendance(c echo.Context) error {
	student, err := currentStudent(c)
	if err != nil {
		return err
	}

	var enrollments []models.StudentCourse
	err = database.DB.Preload("Course").
		Where("student_id = ? AND year_taken = ?", student.ID, student.YearLevel).
		Find(&enrollments).Error
	if err != nil {
		return err
	}

	courses := make([]map[string]any, 0, len(enrollments))
	for _, e := range enrollments {
		if e.Course == nil {
			continue
		}
		stats, err := services.CourseAttendanceStats(database.DB, student.ID, e.CourseID)
		if err != nil {
			return err
		}
		courses = append(courses, map[string]any{
			"course": map[string]any{
				"id":   e.Course.ID,
				"code": e.Course.CourseCode,
				"name": e.Course.Name,
			},
			"attendance": stats,
		})
	}

	overall, err := services.OverallAttendanceStats(database.DB, student.ID)
	if err != nil {
		return err
	}

	return respondOK(c, map[string]any{
		"student": map[string]any{
			"name":       student.Name,
			"student_id": student.StudentID,
		},
		"overall": overall,
		"courses": courses,
	})
}

// GET /api/attendance/course/:courseId
func (h *AttendanceHandler) CourseAttendance(c echo.Context) error {
	student, err := currentStudent(c)
	if err != nil {
		return err
	}
	courseID, err := pathID(c, "courseId")
	if err != nil {
		return err
	}

	summary, err := services.CourseAttendanceStats(database.DB, student.ID, courseID)
	if err != nil {
		return err
	}
	records, err := services.CourseAttendanceRecords(database.DB, student.ID, courseID)
	if err != nil {
		return err
	}

	out := make([]map[string]any, 0, len(records))
	for _, r := range records {
		row := map[string]any{
			"id":     r.ID,
			"date":   r.Date,
			"status": r.Status,
			"notes":  r.Notes,
		}
		if r.Schedule != nil {
			row["day"] = r.Schedule.DayOfWeek
			row["time_slot"] = r.Schedule.TimeSlot
		}
		if r.Marker != nil {
			row["marked_by"] = r.Marker.Name
		}
		out = append(out, row)
	}

	return respondOK(c, map[string]any{
		"summary": summary,
		"records": out,
	})
}

type markAttendanceReq struct {
	StudentID  uint   `json:"student_id" validate:"required"`
	ScheduleID uint   `json:"schedule_id" validate:"required"`
	Date       string `json:"date" validate:"required"`
	Status     string `json:"status" validate:"required,oneof=present absent late excused"`
	Notes      string `json:"notes"`
}

// POST /api/attendance/mark (staff)
func (h *AttendanceHandler) Mark(c echo.Context) error {
	var req markAttendanceReq
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "Invalid payload")
	}
	if fields := validateStruct(&req); fields != nil {
		return respondValidation(c, fields)
	}
	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		return respondValidation(c, map[string]string{"date": "must be a valid date (YYYY-MM-DD)"})
	}

	var exists int64
	if err := database.DB.Model(&models.Student{}).Where("id = ?", req.StudentID).Count(&exists).Error; err != nil {
		return err
	}
	if exists == 0 {
		return respondError(c, http.StatusNotFound, "Student not found")
	}
	if err := database.DB.Model(&models.Schedule{}).Where("id = ?", req.ScheduleID).Count(&exists).Error; err != nil {
		return err
	}
	if exists == 0 {
		return respondError(c, http.StatusNotFound, "Session not found")
	}

	record, err := services.MarkAttendance(database.DB, req.StudentID, req.ScheduleID, req.Date, req.Status, req.Notes, markerID(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"message": "Attendance marked successfully",
		"data":    record,
	})
}

// markerID resolves the teacher profile linked to the authenticated staff
// account; nil when the account has none.
func markerID(c echo.Context) *uint {
	userID, _ := c.Get("user_id").(uint)
	var teacher models.Teacher
	if err := database.DB.Joins("JOIN users u ON u.email = teachers.email").
		Where("u.id = ?", userID).First(&teacher).Error; err == nil {
		return &teacher.ID
	}
	return nil
}

type bulkAttendanceEntry struct {
	StudentID uint   `json:"student_id" validate:"required"`
	Status    string `json:"status" validate:"required,oneof=present absent late excused"`
	Notes     string `json:"notes"`
}

type bulkMarkAttendanceReq struct {
	ScheduleID  uint                  `json:"schedule_id" validate:"required"`
	Date        string                `json:"date" validate:"required"`
	Attendances []bulkAttendanceEntry `json:"attendances" validate:"required,min=1,dive"`
}

// POST /api/attendance/bulk-mark (staff) — mark a whole class for one session
// and date. Existing marks for a (student, date) pair are overwritten.
func (h *AttendanceHandler) BulkMark(c echo.Context) error {
	var req bulkMarkAttendanceReq
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "Invalid payload")
	}
	if fields := validateStruct(&req); fields != nil {
		return respondValidation(c, fields)
	}
	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		return respondValidation(c, map[string]string{"date": "must be a valid date (YYYY-MM-DD)"})
	}

	var exists int64
	if err := database.DB.Model(&models.Schedule{}).Where("id = ?", req.ScheduleID).Count(&exists).Error; err != nil {
		return err
	}
	if exists == 0 {
		return respondError(c, http.StatusNotFound, "Session not found")
	}

	ids := make([]uint, 0, len(req.Attendances))
	for _, a := range req.Attendances {
		ids = append(ids, a.StudentID)
	}
	var known int64
	if err := database.DB.Model(&models.Student{}).Where("id IN ?", ids).Count(&known).Error; err != nil {
		return err
	}
	if int(known) != len(uniqueIDs(ids)) {
		return respondError(c, http.StatusNotFound, "Student not found")
	}

	markedBy := markerID(c)
	records := make([]*models.StudentAttendance, 0, len(req.Attendances))
	for _, a := range req.Attendances {
		record, err := services.MarkAttendance(database.DB, a.StudentID, req.ScheduleID, req.Date, a.Status, a.Notes, markedBy)
		if err != nil {
			return err
		}
		records = append(records, record)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"message": fmt.Sprintf("Attendance marked successfully for %d students", len(records)),
		"data":    records,
	})
}

func uniqueIDs(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := ids[:0]
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
