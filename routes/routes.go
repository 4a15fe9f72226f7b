package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/AbdelazizBarhoumi/EPIMobileApplication/config"
	"github.com/AbdelazizBarhoumi/EPIMobileApplication/handlers"
	"github.com/AbdelazizBarhoumi/EPIMobileApplication/middlewares"
)

// Register wires all HTTP routes.
func Register(e *echo.Echo, cfg *config.Config) {
	auth := handlers.NewAuthHandler(cfg.JWTSecret)
	student := handlers.NewStudentHandler()
	course := handlers.NewCourseHandler()
	financial := handlers.NewFinancialHandler()
	event := handlers.NewEventHandler()
	club := handlers.NewClubHandler()
	news := handlers.NewNewsHandler()
	search := handlers.NewSearchHandler()
	major := handlers.NewMajorHandler()
	grade := handlers.NewGradeHandler()
	schedule := handlers.NewScheduleHandler()
	teacher := handlers.NewTeacherHandler()
	attendance := handlers.NewAttendanceHandler()

	e.GET("/health", handlers.Health)

	api := e.Group("/api")

	// public
	api.POST("/register", auth.Register)
	api.POST("/login", auth.Login)

	api.GET("/news", news.List)
	api.GET("/news/featured", news.Featured)
	api.GET("/news/recent", news.Recent)
	api.GET("/news/:id", news.Show)

	// protected
	authed := api.Group("", middlewares.RequireAuth(cfg.JWTSecret))
	staff := middlewares.RequireRole("staff")

	authed.GET("/user", auth.Me)
	authed.POST("/logout", auth.Logout)

	authed.GET("/student/profile", student.Profile)
	authed.GET("/student/dashboard", student.Dashboard)
	authed.GET("/student/courses", student.Courses)
	authed.GET("/student/attendance", student.Attendance)

	authed.GET("/courses", course.List)
	authed.GET("/courses/:id", course.Show)

	authed.GET("/financial/summary", financial.Summary)
	authed.GET("/financial/bills", financial.Bills)
	authed.GET("/financial/bills/:id", financial.ShowBill)
	authed.GET("/financial/payments", financial.Payments)
	authed.POST("/financial/payments", financial.CreatePayment)

	authed.GET("/events", event.List)
	authed.GET("/events/my-events", event.MyEvents)
	authed.GET("/events/:id", event.Show)
	authed.POST("/events/:id/register", event.Register)
	authed.DELETE("/events/:id/register", event.CancelRegistration)

	authed.GET("/clubs", club.List)
	authed.GET("/clubs/my-clubs", club.MyClubs)
	authed.GET("/clubs/:id", club.Show)
	authed.POST("/clubs/:id/join", club.Join)
	authed.DELETE("/clubs/:id/leave", club.Leave)

	authed.GET("/search", search.Search)

	authed.GET("/majors", major.List)
	authed.GET("/majors/:id", major.Show)
	authed.GET("/majors/:id/curriculum", major.Curriculum)
	authed.GET("/majors/:id/year/:year", major.CoursesByYear)
	authed.GET("/majors/:id/year/:year/semester/:semester", major.CoursesByYearAndSemester)
	authed.POST("/majors/:id/courses", major.AttachCourse, staff)

	authed.GET("/grades/student/:id/transcript", grade.Transcript)
	authed.GET("/grades/student/:id/transcript/year/:year", grade.TranscriptByYear)
	authed.GET("/grades/student/:id/current-semester", grade.CurrentSemester)
	authed.GET("/grades/student/:id/gpa", grade.GPAStats)
	authed.PUT("/grades/student/:id/course/:courseId", grade.UpdateGrades, staff)
	authed.POST("/grades/student/:id/enroll", grade.Enroll, staff)

	authed.GET("/schedule/major/:id/year/:year/semester/:semester", schedule.WeeklySchedule)
	authed.GET("/schedule/my-schedule", schedule.MySchedule)
	authed.POST("/schedule/sessions", schedule.AssignSession, staff)

	authed.GET("/teachers/my-teachers", teacher.MyTeachers)
	authed.GET("/teachers/:id", teacher.Show)
	authed.GET("/teachers/:id/schedule", teacher.Schedule)

	authed.GET("/attendance/my-attendance", attendance.MyAttendance)
	authed.GET("/attendance/course/:courseId", attendance.CourseAttendance)
	authed.POST("/attendance/mark", attendance.Mark, staff)
	authed.POST("/attendance/bulk-mark", attendance.BulkMark, staff)
}
