package api

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"campusapi/backend/internal/academics"
	"campusapi/backend/internal/admin"
	"campusapi/backend/internal/api/handlers"
	"campusapi/backend/internal/auth"
	"campusapi/backend/internal/campuslife"
	"campusapi/backend/internal/directory"
	"campusapi/backend/internal/shared"
)

// Services bundles the domain services the router dispatches to.
type Services struct {
	Auth       *auth.Service
	Directory  *directory.Service
	Academics  *academics.Service
	CampusLife *campuslife.Service
	Admin      *admin.Service
}

// SetupRoutes configures the Chi router, middleware, and route handlers.
func SetupRoutes(cfg *shared.Config, logger *zap.Logger, svcs *Services) *chi.Mux {
	r := chi.NewRouter()

	metrics := NewMetrics()

	// 1. Global Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLogger(logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(metrics.Middleware)

	// CORS Configuration (Allow React Frontend)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   cfg.CORS.AllowedMethods,
		AllowedHeaders:   cfg.CORS.AllowedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
		MaxAge:           cfg.CORS.MaxAge,
	}))

	// 2. Initialize Handlers
	authHandler := &handlers.AuthHandler{Auth: svcs.Auth}
	directoryHandler := &handlers.DirectoryHandler{Directory: svcs.Directory}
	academicsHandler := &handlers.AcademicsHandler{Academics: svcs.Academics}
	campusLifeHandler := &handlers.CampusLifeHandler{CampusLife: svcs.CampusLife}
	adminHandler := &handlers.AdminHandler{Admin: svcs.Admin}

	// 3. Define Routes (grouped by prefix)
	r.Route("/api", func(r chi.Router) {
		r.Get("/", adminHandler.Root)

		// Auth
		r.Post("/auth/login", authHandler.Login)

		// Users
		r.Route("/users", func(r chi.Router) {
			r.Get("/", directoryHandler.ListUsers)
			r.Post("/", directoryHandler.CreateUser)
			r.Put("/{id}", directoryHandler.UpdateUser)
			r.Delete("/{id}", directoryHandler.DeleteUser)
		})

		// Students
		r.Route("/students", func(r chi.Router) {
			r.Get("/", directoryHandler.ListStudents)
			r.Post("/", directoryHandler.CreateStudent)
			r.Get("/{id}", directoryHandler.GetStudent)
			r.Put("/{id}", directoryHandler.UpdateStudent)
		})

		// Grades
		r.Route("/grades", func(r chi.Router) {
			r.Get("/", academicsHandler.ListGrades)
			r.Get("/{student_id}", academicsHandler.ListStudentGrades)
			r.Post("/", academicsHandler.CreateGrade)
			r.Put("/{id}", academicsHandler.UpdateGrade)
		})

		// Attendance
		r.Route("/attendance", func(r chi.Router) {
			r.Get("/", academicsHandler.ListAttendance)
			r.Get("/{student_id}", academicsHandler.ListStudentAttendance)
			r.Post("/", academicsHandler.CreateAttendance)
			r.Post("/waive", academicsHandler.WaiveAttendance)
		})

		// Study Materials
		r.Route("/materials", func(r chi.Router) {
			r.Get("/", academicsHandler.ListMaterials)
			r.Post("/", academicsHandler.CreateMaterial)
			r.Put("/{id}", academicsHandler.UpdateMaterial)
		})

		// Schedules
		r.Route("/schedules", func(r chi.Router) {
			r.Get("/", academicsHandler.ListSchedules)
			r.Get("/teacher/{teacher_id}", academicsHandler.ListTeacherSchedules)
			r.Post("/", academicsHandler.CreateSchedule)
			r.Put("/{id}", academicsHandler.UpdateSchedule)
		})

		// Library
		r.Route("/library", func(r chi.Router) {
			r.Get("/", campusLifeHandler.ListBooks)
			r.Post("/", campusLifeHandler.CreateBook)
			r.Put("/{id}", campusLifeHandler.UpdateBook)
		})

		// Events
		r.Route("/events", func(r chi.Router) {
			r.Get("/", campusLifeHandler.ListEvents)
			r.Post("/", campusLifeHandler.CreateEvent)
			r.Put("/{id}", campusLifeHandler.UpdateEvent)
			r.Post("/{id}/register", campusLifeHandler.RegisterForEvent)
		})

		// Complaints
		r.Route("/complaints", func(r chi.Router) {
			r.Get("/", campusLifeHandler.ListComplaints)
			r.Post("/", campusLifeHandler.CreateComplaint)
			r.Get("/{id}", campusLifeHandler.GetComplaint)
			r.Post("/{id}/vote", campusLifeHandler.ToggleVote)
			r.Put("/{id}/resolve", campusLifeHandler.ResolveComplaint)
		})

		// Notices
		r.Route("/notices", func(r chi.Router) {
			r.Get("/", campusLifeHandler.ListNotices)
			r.Post("/", campusLifeHandler.CreateNotice)
			r.Delete("/{id}", campusLifeHandler.DeleteNotice)
		})

		// Admin
		r.Post("/reset-demo-data", adminHandler.ResetDemoData)
		r.Get("/admin/stats", adminHandler.Stats)
	})

	// Prometheus scrape endpoint, outside the /api prefix.
	r.Method("GET", "/metrics", metrics.Handler())

	return r
}
