package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Attendance   AttendanceHandler
	Announcement AnnouncementHandler
	Member       MemberHandler
	Report       ReportHandler
	Dashboard    DashboardHandler
	Location     LocationHandler
	Guide        GuideHandler
}

func NewRouter(env string, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "tagana-fieldops"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/attendance", func(r chi.Router) {
			r.Get("/", h.Attendance.Status)
			r.Delete("/", h.Attendance.Reset)
			r.Post("/clock-in", h.Attendance.ClockIn)
			r.Post("/clock-out", h.Attendance.ClockOut)
			r.Post("/draft", h.Attendance.Autosave)
			r.Post("/submit", h.Attendance.Submit)
			r.Post("/position", h.Attendance.Position)
			r.Get("/recap", h.Report.AttendanceRecap)
		})

		r.Route("/announcements", func(r chi.Router) {
			r.Get("/", h.Announcement.List)
			r.Get("/latest", h.Announcement.Latest)
		})

		r.Get("/members", h.Member.List)
		r.Get("/officers", h.Member.Officers)
		r.Get("/dashboard", h.Dashboard.GetDashboard)

		r.Route("/reports", func(r chi.Router) {
			r.Post("/disaster", h.Report.SubmitDisaster)
			r.Post("/activity", h.Report.SubmitActivity)
			r.Get("/disaster", h.Report.ListDisasters)
		})

		r.Route("/map", func(r chi.Router) {
			r.Get("/", h.Location.Map)
			r.Post("/refresh", h.Location.Refresh)
		})

		r.Route("/guide", func(r chi.Router) {
			r.Get("/", h.Guide.List)
			r.Get("/{slug}", h.Guide.Get)
		})
	})
	return r
}
