package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/unicampus/portal/auth"
	"github.com/unicampus/portal/config"
	"github.com/unicampus/portal/handlers"
	"github.com/unicampus/portal/metrics"
	"github.com/unicampus/portal/middlewares"
	"github.com/unicampus/portal/models"
	"github.com/unicampus/portal/notify"
	"github.com/unicampus/portal/session"
	"github.com/unicampus/portal/store"
)

type Deps struct {
	Cfg      *config.Config
	Log      *zap.Logger
	Store    *store.Store
	Sessions *session.Manager
	Strategy auth.Strategy
	Notifier *notify.Notifier
}

// Register wires all HTTP routes.
func Register(e *echo.Echo, d Deps) {
	e.Validator = handlers.NewValidator()

	// ===== Handlers (shared singletons) =====
	ah := handlers.NewAuthHandler(d.Cfg.JWTSecret, d.Strategy, d.Sessions, d.Store, d.Log)
	dash := handlers.NewDashboardHandler(d.Store)
	att := handlers.NewAttendanceHandler(d.Store)
	fee := handlers.NewFeeHandler(d.Store)
	asg := handlers.NewAssignmentHandler(d.Store)
	res := handlers.NewResultHandler(d.Store)
	ev := handlers.NewEventHandler(d.Store)
	tr := handlers.NewTransportHandler(d.Store)
	ntf := handlers.NewNotificationHandler(d.Store, d.Notifier)
	msg := handlers.NewMessageHandler(d.Store)
	prof := handlers.NewProfileHandler(d.Store)
	std := handlers.NewStudentHandler(d.Store)

	// ===== Public =====
	e.GET("/healthz", handlers.Health)
	e.GET("/metrics", metrics.Handler())

	e.POST("/auth/student/login", ah.StudentLogin)
	e.POST("/auth/faculty/login", ah.FacultyLogin)
	e.GET("/auth/session", ah.Session)
	e.POST("/auth/logout", ah.Logout)

	authMW := middlewares.RequireAuth(d.Cfg.JWTSecret)

	// ===== Student routes =====
	student := e.Group("/student", authMW, middlewares.RequireRole(models.RoleStudent))

	student.GET("/dashboard", dash.Menu)
	student.GET("/dashboard/panels/:id", dash.Panel)

	student.GET("/attendance", att.MyAttendance)

	student.GET("/fees", fee.MyFees)
	student.POST("/fees/:id/pay", fee.Pay)

	student.GET("/assignments", asg.MyAssignments)
	student.POST("/assignments/:id/submit", asg.Submit)

	student.GET("/results", res.MyResults)

	student.GET("/events", ev.MyEvents)
	student.POST("/events/:id/register", ev.Register)
	student.DELETE("/events/:id/register", ev.CancelRegistration)

	student.GET("/transport/routes", tr.Routes)
	student.POST("/transport/routes/:id/book", tr.Book)
	student.GET("/transport/bookings", tr.MyBookings)
	student.POST("/transport/bookings/:id/cancel", tr.CancelBooking)

	student.GET("/notifications", ntf.List)
	student.POST("/notifications/:id/read", ntf.MarkRead)
	student.POST("/notifications/read-all", ntf.MarkAllRead)
	student.DELETE("/notifications/:id", ntf.Delete)

	student.GET("/messages", msg.Inbox)
	student.POST("/messages", msg.Send)
	student.POST("/messages/:id/read", msg.MarkRead)

	student.GET("/profile", prof.Get)
	student.PUT("/profile", prof.Update)

	// ===== Faculty routes =====
	faculty := e.Group("/faculty", authMW, middlewares.RequireRole(models.RoleFaculty))

	faculty.GET("/dashboard", dash.Menu)
	faculty.GET("/dashboard/panels/:id", dash.Panel)

	faculty.GET("/students", std.List)
	faculty.POST("/students", std.Create)
	faculty.PUT("/students/:id", std.Update)
	faculty.DELETE("/students/:id", std.Delete)

	faculty.GET("/attendance", att.List)
	faculty.POST("/attendance/mark", att.Mark)

	faculty.GET("/fees", fee.List)
	faculty.POST("/fees", fee.Create)

	faculty.GET("/assignments", asg.List)
	faculty.POST("/assignments", asg.Create)
	faculty.PUT("/assignments/:id", asg.Update)
	faculty.DELETE("/assignments/:id", asg.Delete)
	faculty.GET("/assignments/:id/submissions", asg.Submissions)
	faculty.POST("/submissions/:id/grade", asg.Grade)

	faculty.GET("/results", res.List)
	faculty.POST("/results", res.Publish)

	faculty.GET("/events", ev.List)
	faculty.POST("/events", ev.Create)
	faculty.PUT("/events/:id", ev.Update)
	faculty.DELETE("/events/:id", ev.Delete)
	faculty.GET("/events/:id/registrations", ev.Registrations)

	faculty.GET("/transport/routes", tr.List)
	faculty.POST("/transport/routes", tr.Create)
	faculty.PUT("/transport/routes/:id", tr.Update)
	faculty.DELETE("/transport/routes/:id", tr.Delete)
	faculty.GET("/transport/routes/:id/bookings", tr.Bookings)

	faculty.POST("/notifications", ntf.Compose)

	faculty.GET("/messages", msg.Inbox)
	faculty.POST("/messages", msg.Send)
	faculty.POST("/messages/:id/read", msg.MarkRead)

	faculty.GET("/profile", prof.Get)
	faculty.PUT("/profile", prof.Update)
}
