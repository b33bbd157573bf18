package main

import (
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/sigdev/absensi-magang-backend-go/internal/config"
	appHTTP "github.com/sigdev/absensi-magang-backend-go/internal/handler/http"
	"github.com/sigdev/absensi-magang-backend-go/internal/pkg/clock"
	"github.com/sigdev/absensi-magang-backend-go/internal/pkg/cron"
	"github.com/sigdev/absensi-magang-backend-go/internal/pkg/database"
	"github.com/sigdev/absensi-magang-backend-go/internal/pkg/jwt"
	"github.com/sigdev/absensi-magang-backend-go/internal/pkg/oauth"
	"github.com/sigdev/absensi-magang-backend-go/internal/pkg/storage"
	"github.com/sigdev/absensi-magang-backend-go/internal/repository/postgresql"
	attendanceService "github.com/sigdev/absensi-magang-backend-go/internal/service/attendance"
	authService "github.com/sigdev/absensi-magang-backend-go/internal/service/auth"
	correctionService "github.com/sigdev/absensi-magang-backend-go/internal/service/correction"
	"github.com/sigdev/absensi-magang-backend-go/internal/service/file"
	participantService "github.com/sigdev/absensi-magang-backend-go/internal/service/participant"
	permitService "github.com/sigdev/absensi-magang-backend-go/internal/service/permit"
	reconcileService "github.com/sigdev/absensi-magang-backend-go/internal/service/reconcile"
	settingsService "github.com/sigdev/absensi-magang-backend-go/internal/service/settings"
	supervisorService "github.com/sigdev/absensi-magang-backend-go/internal/service/supervisor"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	serverClock := clock.NewSystemClock(cfg.App.Timezone)

	userRepo := postgresql.NewUserRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	permitRepo := postgresql.NewPermitRepository(db)
	correctionRepo := postgresql.NewCorrectionRepository(db)
	settingsRepo := postgresql.NewSettingsRepository(db)
	supervisorRepo := postgresql.NewSupervisorRepository(db)
	txManager := postgresql.NewTxManager(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	var googleService oauth.GoogleService
	if cfg.GoogleLoginEnabled() {
		googleService = oauth.NewGoogleService(
			cfg.OAuth2Google.ClientID,
			cfg.OAuth2Google.ClientSecret,
			cfg.OAuth2Google.RedirectURL,
			cfg.OAuth2Google.Scopes,
		)
	}

	var fileStorage storage.FileStorage
	switch cfg.Storage.Type {
	case "local":
		fileStorage, err = storage.NewLocalStorage(
			cfg.Storage.BasePath,
			cfg.Storage.BaseURL,
		)
		if err != nil {
			log.Fatal("Failed to initialize local storage:", err)
		}
	default:
		log.Fatal("Unsupported storage type: ", cfg.Storage.Type)
	}

	fileService := file.NewFileService(fileStorage)

	syncSvc := reconcileService.NewSyncService(attendanceRepo, permitRepo, settingsRepo, userRepo, serverClock, logger)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, permitRepo, settingsRepo, fileService, serverClock)
	permitSvc := permitService.NewPermitService(permitRepo, attendanceRepo, txManager, fileService)
	correctionSvc := correctionService.NewCorrectionService(correctionRepo, attendanceRepo, txManager)
	settingsSvc := settingsService.NewSettingsService(settingsRepo, syncSvc, logger)
	participantSvc := participantService.NewParticipantService(userRepo, syncSvc, logger)
	supervisorSvc := supervisorService.NewSupervisorService(supervisorRepo)
	authSvc := authService.NewAuthService(userRepo, jwtService, googleService)

	scheduler := cron.NewScheduler()
	cron.NewReconcileJobs(syncSvc).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(cfg, jwtService, appHTTP.Handlers{
		Auth:        appHTTP.NewAuthHandler(authSvc, jwtService),
		Attendance:  appHTTP.NewAttendanceHandler(attendanceSvc),
		Permit:      appHTTP.NewPermitHandler(permitSvc),
		Correction:  appHTTP.NewCorrectionHandler(correctionSvc),
		Settings:    appHTTP.NewSettingsHandler(settingsSvc, serverClock),
		Participant: appHTTP.NewParticipantHandler(participantSvc),
		Supervisor:  appHTTP.NewSupervisorHandler(supervisorSvc),
		Sync:        appHTTP.NewSyncHandler(syncSvc),
	})

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
