package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/sigdev/absensi-magang-backend-go/internal/config"
	"github.com/sigdev/absensi-magang-backend-go/internal/handler/http/middleware"
	"github.com/sigdev/absensi-magang-backend-go/internal/pkg/jwt"
)

type Handlers struct {
	Auth        AuthHandler
	Attendance  AttendanceHandler
	Permit      PermitHandler
	Correction  CorrectionHandler
	Settings    SettingsHandler
	Participant ParticipantHandler
	Supervisor  SupervisorHandler
	Sync        SyncHandler
}

func NewRouter(cfg *config.Config, jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "absensi-magang"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	if cfg.Storage.Type == "local" {
		fileServer := http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.Storage.BasePath)))
		r.Get("/uploads/*", fileServer.ServeHTTP)
	}

	r.Route("/api/v1", func(r chi.Router) {

		// Public
		r.Get("/time", h.Settings.ServerTime)

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.Auth.Register)
			r.Post("/login", h.Auth.Login)
			r.Post("/refresh", h.Auth.Refresh)
			r.Post("/logout", h.Auth.Logout)
			r.Route("/oauth", func(r chi.Router) {
				r.Get("/google", h.Auth.GoogleLogin)
				r.Get("/google/callback", h.Auth.GoogleCallback)
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Get("/me", h.Participant.Me)
			r.Get("/settings", h.Settings.Get)

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/clock-in", h.Attendance.ClockIn)
				r.Post("/clock-out", h.Attendance.ClockOut)
				r.Get("/my", h.Attendance.GetMyAttendance)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", h.Attendance.List)
					r.Post("/sync", h.Sync.TriggerAll)
				})
			})

			r.Route("/permits", func(r chi.Router) {
				r.Post("/", h.Permit.Submit)
				r.Get("/my", h.Permit.GetMyPermits)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", h.Permit.List)
					r.Post("/{id}/decide", h.Permit.Decide)
				})
			})

			r.Route("/corrections", func(r chi.Router) {
				r.Post("/", h.Correction.Submit)
				r.Get("/my", h.Correction.GetMyCorrections)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", h.Correction.List)
					r.Post("/{id}/decide", h.Correction.Decide)
				})
			})

			// Admin only
			r.Group(func(r chi.Router) {
				r.Use(middleware.AdminOnly)

				r.Put("/settings", h.Settings.Update)

				r.Route("/participants", func(r chi.Router) {
					r.Get("/", h.Participant.List)
					r.Get("/{id}", h.Participant.Get)
					r.Put("/{id}", h.Participant.Update)
					r.Delete("/{id}", h.Participant.Delete)
				})

				r.Route("/supervisors", func(r chi.Router) {
					r.Get("/", h.Supervisor.List)
					r.Post("/", h.Supervisor.Save)
					r.Delete("/{id}", h.Supervisor.Delete)
				})
			})
		})
	})
	return r
}
