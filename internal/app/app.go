package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/AdityaANS/dsa-progress-tracker/internal/config"
	"github.com/AdityaANS/dsa-progress-tracker/internal/controller"
	"github.com/AdityaANS/dsa-progress-tracker/internal/repository"
	"github.com/AdityaANS/dsa-progress-tracker/internal/service"
	"github.com/AdityaANS/dsa-progress-tracker/pkg/database"
	"github.com/AdityaANS/dsa-progress-tracker/pkg/logger"
	"github.com/AdityaANS/dsa-progress-tracker/pkg/monitoring"
	"github.com/AdityaANS/dsa-progress-tracker/pkg/security"
	"github.com/AdityaANS/dsa-progress-tracker/pkg/tracing"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config   *config.Config
	Router   *gin.Engine
	Local    *sqlx.DB
	DB       *gorm.DB
	Redis    *redis.Client
	services *services
	stop     context.CancelFunc
}

type repositories struct {
	local  *repository.LocalStore
	remote *repository.RemoteRepository
}

type services struct {
	identity *service.IdentityService
	storage  *service.StorageService
	sync     *service.SyncService
}

type controllers struct {
	progress *controller.ProgressController
	session  *controller.SessionController
	health   *controller.HealthController
}

func (a *App) initRepositories(local *sqlx.DB, db *gorm.DB, rdb *redis.Client) *repositories {
	repos := &repositories{
		local: repository.NewLocalStore(local),
	}
	if db != nil {
		repos.remote = repository.NewRemoteRepository(db, rdb)
	}
	return repos
}

func (a *App) initServices(repos *repositories, cfg *config.Config) *services {
	s := &services{}

	s.identity = service.NewIdentityService(cfg)
	s.storage = service.NewStorageService(cfg)

	// A nil interface keeps the engine local-only; a typed nil would
	// not, so the remote repository is only handed over when it exists.
	var remote service.RemoteStore
	if repos.remote != nil {
		remote = repos.remote
	}
	s.sync = service.NewSyncService(repos.local, remote, s.storage)
	s.sync.Initialize()

	return s
}

func (a *App) initControllers(s *services) *controllers {
	return &controllers{
		progress: controller.NewProgressController(s.sync),
		session:  controller.NewSessionController(s.identity),
		health:   controller.NewHealthController(a.Local, a.DB),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 600
	}
	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	router.Use(security.RateLimiter(maxRequests, window))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("Logger initialized successfully")

	local, err := database.OpenLocal(cfg.LocalStore.Path)
	if err != nil {
		logger.Log.Fatal("Failed to open local store", zap.Error(err))
		log.Fatalf("Failed to open local store: %v", err)
	}

	// The remote replica is advisory. Failing to reach it at startup
	// degrades to local-only operation instead of aborting.
	var db *gorm.DB
	if cfg.Database.Enabled {
		db, err = database.InitDB(&cfg.Database)
		if err != nil {
			logger.Log.Warn("Remote database unavailable, running local-only", zap.Error(err))
			db = nil
		}
	}

	var rdb *redis.Client
	if cfg.Redis.Enabled {
		rdb, err = database.InitRedis(&cfg.Redis)
		if err != nil {
			logger.Log.Warn("Redis unavailable, continuing without it", zap.Error(err))
			rdb = nil
		}
	}

	app := &App{
		Config: cfg,
		Local:  local,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(local, db, rdb)
	services := app.initServices(repos, cfg)
	app.services = services
	controllers := app.initControllers(services)

	monitoring.Init()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("dsa-progress-tracker", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Warn("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers)

	if cfg.Storage.Type == "local" || cfg.Storage.Type == "" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	// One subscription per session lifetime; torn down on shutdown.
	ctx, cancel := context.WithCancel(context.Background())
	app.stop = cancel
	go services.sync.WatchIdentity(ctx, services.identity)

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	if a.stop != nil {
		a.stop()
	}

	// Give queued remote writes a chance to land before exit.
	if a.services != nil && a.services.sync != nil {
		a.services.sync.Flush()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	a.Local.Close()

	log.Println("Server exiting")
}
