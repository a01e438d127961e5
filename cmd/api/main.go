package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"

	"github.com/comitanigiacomo/kanso-goals/internal/adapters/cache"
	adapterHTTP "github.com/comitanigiacomo/kanso-goals/internal/adapters/handler/http"
	"github.com/comitanigiacomo/kanso-goals/internal/adapters/repository"
	"github.com/comitanigiacomo/kanso-goals/internal/config"
	"github.com/comitanigiacomo/kanso-goals/internal/core/domain"
	"github.com/comitanigiacomo/kanso-goals/internal/core/services"
	"github.com/comitanigiacomo/kanso-goals/internal/core/workers"
)

//	@title			Kanso Goals API
//	@version		1.0
//	@description	Daily goal tracker with a 5 AM tracking day and completion analytics.
//	@BasePath		/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization

type application struct {
	router *gin.Engine
	worker *workers.StreakWorker
	db     *sqlx.DB
	redis  *redis.Client
}

type stores struct {
	goals       domain.GoalRepository
	completions domain.CompletionRepository
	users       domain.UserRepository
}

func newApplication(cfg *config.Config, startTime time.Time) (*application, error) {
	app := &application{}

	var st stores
	switch cfg.StorageDriver {
	case config.StorageDriverMemory:
		log.Println("Using in-memory storage, data is lost on restart.")
		completions := repository.NewInMemoryCompletionRepository()
		st = stores{
			goals:       repository.NewInMemoryGoalRepository(completions),
			completions: completions,
			users:       repository.NewInMemoryUserRepository(),
		}

	default:
		log.Println("Connecting to database...")
		db, err := sqlx.Connect("pgx", cfg.DB.DSN())
		if err != nil {
			return nil, err
		}
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(25)
		db.SetConnMaxLifetime(5 * time.Minute)
		app.db = db
		log.Println("Database connected successfully.")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := repository.Migrate(ctx, db); err != nil {
			db.Close()
			return nil, err
		}

		st = stores{
			goals:       repository.NewPostgresGoalRepository(db),
			completions: repository.NewPostgresCompletionRepository(db),
			users:       repository.NewPostgresUserRepository(db),
		}

		rdb, err := cache.NewRedisClient(cfg.Redis)
		if err != nil {
			log.Printf("[CACHE] Redis unavailable, running without cache and rate limiting: %v", err)
		} else {
			app.redis = rdb
			st.goals = repository.NewCachedGoalRepository(st.goals, rdb)
		}
	}

	now := func() time.Time { return time.Now().In(cfg.Location) }

	app.worker = workers.NewStreakWorker(st.goals, st.completions, st.users, cfg.FreeMaxGoals).WithClock(now)

	tokenService := services.NewTokenService(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.TTL, st.users)
	goalService := services.NewGoalService(st.goals, st.users, cfg.FreeMaxGoals)
	authService := services.NewAuthService(st.users, goalService)
	completionService := services.NewCompletionService(st.completions, st.goals, app.worker)
	analyticsService := services.NewAnalyticsService(st.users, st.goals, st.completions, cfg.FreeMaxGoals)
	profileService := services.NewProfileService(st.users, cfg.FreeMaxGoals)
	migrationService := services.NewMigrationService(st.users, st.goals, st.completions, app.worker)

	clock := adapterHTTP.SystemClock(cfg.Location)

	app.router = adapterHTTP.NewRouter(adapterHTTP.RouterDependencies{
		AuthHandler:       adapterHTTP.NewAuthHandler(authService, tokenService),
		GoalHandler:       adapterHTTP.NewGoalHandler(goalService),
		CompletionHandler: adapterHTTP.NewCompletionHandler(completionService, clock),
		AnalyticsHandler:  adapterHTTP.NewAnalyticsHandler(analyticsService, clock),
		CalendarHandler:   adapterHTTP.NewCalendarHandler(clock),
		ProfileHandler:    adapterHTTP.NewProfileHandler(profileService),
		MigrationHandler:  adapterHTTP.NewMigrationHandler(migrationService),
		TokenService:      tokenService,
		DB:                app.db,
		Redis:             app.redis,
		RateLimit:         cfg.RateLimit,
		RateWindow:        cfg.RateWindow,
		StartTime:         startTime,
	})

	return app, nil
}

func (a *application) close() {
	if a.redis != nil {
		a.redis.Close()
	}
	if a.db != nil {
		a.db.Close()
	}
}

func main() {
	startTime := time.Now()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Critical: invalid configuration: %v", err)
	}

	app, err := newApplication(cfg, startTime)
	if err != nil {
		log.Fatalf("Critical: Failed to initialize application: %v", err)
	}
	defer app.close()

	workerCtx, stopWorker := context.WithCancel(context.Background())
	defer stopWorker()
	app.worker.Start(workerCtx)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      app.router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Printf("Kanso Goals running on http://localhost:%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Critical server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Stop signal received. Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Println("Forced shutdown error:", err)
	}
	stopWorker()

	log.Println("Server stopped gracefully.")
}
