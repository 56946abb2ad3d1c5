package bootstrap

import (
	"context"
	"database/sql"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"jobboard-backend/internal/admin"
	"jobboard-backend/internal/applications"
	"jobboard-backend/internal/career"
	"jobboard-backend/internal/chapters"
	"jobboard-backend/internal/jobs"
	"jobboard-backend/internal/notify"
	"jobboard-backend/internal/shared/config"
	"jobboard-backend/internal/shared/server"
	"jobboard-backend/internal/shared/storage/db"
	"jobboard-backend/internal/users"
)

// App holds shared dependencies.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB

	Notifier notify.Notifier

	UsersRepo        users.Repo
	JobsRepo         jobs.Repo
	ApplicationsRepo applications.Repo
	ChaptersRepo     chapters.Repo
	AttemptsRepo     career.AttemptRepo

	UsersService        *users.Service
	JobsService         *jobs.Service
	ApplicationsService *applications.Service
	ChaptersService     *chapters.Service
	CareerService       *career.Service
	AdminService        *admin.Service
}

// Build prepares shared dependencies and wires the router. Without a
// DATABASE_URL the app runs entirely on in-memory repos, which is the
// configuration the handler tests use.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	ctx := context.Background()

	app := &App{Config: cfg}

	if cfg.DatabaseURL != "" {
		sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultServerOptions()))
		if err != nil {
			log.Printf("failed to connect database, falling back to memory: %v", err)
		} else if err := db.RunMigrations(ctx, sqlDB); err != nil {
			log.Printf("failed to run migrations, falling back to memory: %v", err)
			sqlDB.Close()
		} else {
			app.DB = sqlDB
		}
	}

	if cfg.MailAPIURL != "" {
		app.Notifier = notify.NewHTTPMailer(cfg.MailAPIURL, cfg.MailAPIKey, cfg.MailFrom)
	} else {
		app.Notifier = notify.Noop{}
	}

	var statsSource admin.StatsSource
	var appSource career.ApplicationSource

	if app.DB != nil {
		app.UsersRepo = &users.PGRepo{DB: app.DB}
		app.JobsRepo = &jobs.PGRepo{DB: app.DB}
		app.ApplicationsRepo = &applications.PGRepo{DB: app.DB}
		app.ChaptersRepo = &chapters.PGRepo{DB: app.DB}
		app.AttemptsRepo = &career.PGAttemptRepo{DB: app.DB}
		statsSource = &admin.PGStatsSource{DB: app.DB}
		appSource = &career.PGApplicationSource{DB: app.DB}
	} else {
		jobsMem := jobs.NewMemoryRepo()
		appsMem := applications.NewMemoryRepo(jobsMem)
		app.UsersRepo = users.NewMemoryRepo()
		app.JobsRepo = jobsMem
		app.ApplicationsRepo = appsMem
		app.ChaptersRepo = chapters.NewMemoryRepo()
		app.AttemptsRepo = career.NewMemoryAttemptRepo()
		appSource = &career.MemoryApplicationSource{Apps: appsMem}
		statsSource = &admin.MemoryStatsSource{
			Users:    app.UsersRepo,
			Jobs:     app.JobsRepo,
			Chapters: app.ChaptersRepo,
			ApplicationStatuses: func(ctx context.Context, jobID string) ([]string, error) {
				listed, err := appsMem.ListByJob(ctx, jobID)
				if err != nil {
					return nil, err
				}
				statuses := make([]string, 0, len(listed))
				for _, a := range listed {
					statuses = append(statuses, a.Status)
				}
				return statuses, nil
			},
		}
	}

	app.UsersService = users.NewService(app.UsersRepo, app.Notifier)
	app.UsersService.TokenLifetime = cfg.JWTLifetime
	app.UsersService.ResetTokenTTL = cfg.ResetTokenTTL
	app.JobsService = jobs.NewService(app.JobsRepo)
	app.ApplicationsService = applications.NewService(app.ApplicationsRepo, app.JobsRepo, app.UsersRepo, app.Notifier)
	app.ChaptersService = chapters.NewService(app.ChaptersRepo)
	app.CareerService = career.NewService(app.AttemptsRepo, appSource)
	app.AdminService = admin.NewService(statsSource, app.UsersRepo)

	app.Router = server.NewRouter(server.RouterDeps{
		Config:              cfg,
		UsersHandler:        users.NewHandler(app.UsersService),
		JobsHandler:         jobs.NewHandler(app.JobsService),
		ApplicationsHandler: applications.NewHandler(app.ApplicationsService),
		ChaptersHandler:     chapters.NewHandler(app.ChaptersService),
		CareerHandler:       career.NewHandler(app.CareerService),
		AdminHandler:        admin.NewHandler(app.AdminService),
	})

	return app, nil
}

// Close releases held resources.
func (a *App) Close() {
	if a.DB != nil {
		a.DB.Close()
	}
}
