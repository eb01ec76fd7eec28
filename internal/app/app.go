package app

import (
	"career_guidance_backend/internal/config"
	"career_guidance_backend/internal/controller"
	"career_guidance_backend/internal/repository"
	"career_guidance_backend/internal/scoring"
	"career_guidance_backend/internal/service"
	"career_guidance_backend/pkg/database"
	"career_guidance_backend/pkg/logger"
	"career_guidance_backend/pkg/monitoring"
	"career_guidance_backend/pkg/security"
	"career_guidance_backend/pkg/tracing"
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Router *gin.Engine
	DB     *gorm.DB
	Redis  *redis.Client

	mu     sync.RWMutex
	config *config.Config

	tracerProvider *sdktrace.TracerProvider
}

type repositories struct {
	user   *repository.UserRepository
	result *repository.AssessmentResultRepository
}

type services struct {
	auth       *service.AuthService
	storage    *service.StorageService
	assessment *service.AssessmentService
	admin      *service.AdminService
	report     *service.ReportService
}

type controllers struct {
	auth       *controller.AuthController
	user       *controller.UserController
	assessment *controller.AssessmentController
	admin      *controller.AdminController
	health     *controller.HealthController
}

// Config returns the current configuration snapshot.
func (a *App) Config() *config.Config {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.config
}

// ApplyConfig swaps in a reloaded configuration. Only settings read per
// request (CORS origins) take effect without a restart.
func (a *App) ApplyConfig(cfg *config.Config) {
	a.mu.Lock()
	a.config = cfg
	a.mu.Unlock()
	logger.Log.Info("Configuration reloaded")
}

func (a *App) allowedOrigins() []string {
	return a.Config().CORS.AllowedOrigins
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:   repository.NewUserRepository(db),
		result: repository.NewAssessmentResultRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, db *gorm.DB, rdb *redis.Client, engine *scoring.Engine) (*services, error) {
	storage, err := service.NewStorageService(cfg)
	if err != nil {
		return nil, err
	}

	s := &services{storage: storage}
	s.auth = service.NewAuthService(repos.user, cfg)
	s.assessment = service.NewAssessmentService(engine, repos.user, repos.result, db)
	s.admin = service.NewAdminService(repos.user, repos.result, db, rdb)
	s.report = service.NewReportService(storage)
	return s, nil
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		auth:       controller.NewAuthController(s.auth),
		user:       controller.NewUserController(s.auth),
		assessment: controller.NewAssessmentController(s.assessment, s.report),
		admin:      controller.NewAdminController(s.admin, s.report),
		health:     controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(a.allowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 1000
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

func NewApp(cfg *config.Config) (*App, error) {
	logger.InitLogger(cfg)

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(cfg)
	if err != nil {
		return nil, err
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Warn("Redis unavailable, caching disabled", zap.Error(err))
		rdb = nil
	}

	engine, err := scoring.NewEngine(scoring.DefaultBank(), scoring.DefaultCareerTable())
	if err != nil {
		return nil, err
	}

	app := &App{
		config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services, err := app.initServices(repos, cfg, db, rdb, engine)
	if err != nil {
		return nil, err
	}
	controllers := app.initControllers(services, db)

	monitoring.Init()

	gin.SetMode(cfg.Server.Mode)
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer("career-guidance", cfg.Tracing.CollectorEndpoint)
		if err != nil {
			return nil, err
		}
		app.tracerProvider = tp
	}

	app.registerRoutes(router, controllers, cfg)

	if cfg.Storage.Type == config.StorageTypeLocal || cfg.Storage.Type == "" {
		router.Static("/exports", cfg.Storage.LocalPath)
	}

	return app, nil
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config().Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config().Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if a.tracerProvider != nil {
		if err := a.tracerProvider.Shutdown(ctx); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
