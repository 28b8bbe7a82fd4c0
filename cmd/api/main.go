package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/tagana-serang/fieldops-backend-go/internal/config"
	appHTTP "github.com/tagana-serang/fieldops-backend-go/internal/handler/http"
	"github.com/tagana-serang/fieldops-backend-go/internal/pkg/appscript"
	"github.com/tagana-serang/fieldops-backend-go/internal/pkg/cron"
	"github.com/tagana-serang/fieldops-backend-go/internal/pkg/geo"
	"github.com/tagana-serang/fieldops-backend-go/internal/pkg/kvstore"
	"github.com/tagana-serang/fieldops-backend-go/internal/pkg/sheets"
	"github.com/tagana-serang/fieldops-backend-go/internal/repository/local"
	"github.com/tagana-serang/fieldops-backend-go/internal/repository/sheet"
	announcementService "github.com/tagana-serang/fieldops-backend-go/internal/service/announcement"
	attendanceService "github.com/tagana-serang/fieldops-backend-go/internal/service/attendance"
	dashboardService "github.com/tagana-serang/fieldops-backend-go/internal/service/dashboard"
	guideService "github.com/tagana-serang/fieldops-backend-go/internal/service/guide"
	locationService "github.com/tagana-serang/fieldops-backend-go/internal/service/location"
	memberService "github.com/tagana-serang/fieldops-backend-go/internal/service/member"
	reportService "github.com/tagana-serang/fieldops-backend-go/internal/service/report"
)

// mapRefreshInterval is how often the posko map is rebuilt from the
// published sheets.
const mapRefreshInterval = 5 * time.Minute

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	loc := cfg.Location()

	store, err := kvstore.NewFileStore(cfg.App.DataDir)
	if err != nil {
		log.Fatal("Failed to initialize data directory:", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sheetsClient := sheets.NewClient()
	formsClient := appscript.NewClient()

	provider := geo.NewPushProvider()
	watcher := geo.NewWatcher(provider)
	if err := watcher.Start(ctx); err != nil {
		log.Fatal("Failed to start position watcher:", err)
	}
	defer watcher.Stop()

	announcementRepo := sheet.NewAnnouncementRepository(sheetsClient, cfg.Sheets.Announcements, loc)
	memberRepo := sheet.NewMemberRepository(sheetsClient, cfg.Sheets.Members)
	officerRepo := sheet.NewOfficerRepository(sheetsClient, cfg.Sheets.Officers)
	historyRepo := sheet.NewAttendanceHistoryRepository(sheetsClient, cfg.Sheets.Attendance, loc)
	disasterRepo := sheet.NewDisasterRepository(sheetsClient, cfg.Sheets.DisasterReports, loc)
	activityRepo := sheet.NewActivityRepository(sheetsClient, cfg.Sheets.ActivityReports, loc)
	dailyStore := local.NewAttendanceStore(store)

	attendanceSvc := attendanceService.NewAttendanceService(
		dailyStore,
		watcher,
		provider,
		formsClient,
		cfg.Forms.Attendance,
		cfg.Piket,
		loc,
		nil,
	)
	announcementSvc := announcementService.NewAnnouncementService(announcementRepo)
	memberSvc := memberService.NewMemberService(memberRepo, officerRepo)
	reportSvc := reportService.NewReportService(
		disasterRepo,
		historyRepo,
		formsClient,
		reportService.FormEndpoints{
			Disaster: cfg.Forms.DisasterReport,
			Activity: cfg.Forms.ActivityReport,
		},
		loc,
		nil,
	)
	dashboardSvc := dashboardService.NewDashboardService(
		memberRepo,
		officerRepo,
		announcementRepo,
		disasterRepo,
		activityRepo,
		historyRepo,
		loc,
		nil,
	)
	locationSvc := locationService.NewLocationService(
		disasterRepo,
		historyRepo,
		geo.Position{Latitude: cfg.Posko.Latitude, Longitude: cfg.Posko.Longitude},
		loc,
		nil,
	)
	guideSvc := guideService.NewGuideService()

	scheduler := cron.NewScheduler()
	scheduler.Add("map-refresh", mapRefreshInterval, locationSvc.Refresh)
	scheduler.Start(ctx)
	defer scheduler.Stop()

	router := appHTTP.NewRouter(cfg.App.Env, appHTTP.Handlers{
		Attendance:   appHTTP.NewAttendanceHandler(attendanceSvc),
		Announcement: appHTTP.NewAnnouncementHandler(announcementSvc),
		Member:       appHTTP.NewMemberHandler(memberSvc),
		Report:       appHTTP.NewReportHandler(reportSvc),
		Dashboard:    appHTTP.NewDashboardHandler(dashboardSvc),
		Location:     appHTTP.NewLocationHandler(locationSvc),
		Guide:        appHTTP.NewGuideHandler(guideSvc),
	})

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.App.Port),
		Handler: router,
	}

	go func() {
		fmt.Printf("Server running at http://localhost%s\n", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			fmt.Println("Server error:", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		fmt.Println("Shutdown error:", err)
	}
}
