package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	"trainrec_backend/internal/config"
	"trainrec_backend/internal/controller"
	"trainrec_backend/internal/repository"
	"trainrec_backend/internal/service"
	"trainrec_backend/pkg/configwatcher"
	"trainrec_backend/pkg/database"
	"trainrec_backend/pkg/logger"
	"trainrec_backend/pkg/monitoring"
	"trainrec_backend/pkg/security"
	"trainrec_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"gorm.io/gorm"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	DB              *gorm.DB
	Redis           *redis.Client
	tracerProvider  *sdktrace.TracerProvider
	configCallbacks []func(*config.Config)
}

type repositories struct {
	user       *repository.UserRepository
	personnel  *repository.PersonnelRepository
	crew       *repository.CrewRepository
	equipment  *repository.EquipmentRepository
	course     *repository.CourseRepository
	assignment *repository.AssignmentRepository
	knowledge  *repository.KnowledgeRepository
}

type services struct {
	access     *service.AccessService
	auth       *service.AuthService
	course     *service.CourseService
	assignment *service.AssignmentService
	personnel  *service.PersonnelService
	crew       *service.CrewService
	equipment  *service.EquipmentService
	knowledge  *service.KnowledgeService
	storage    *service.StorageService
	file       *service.FileService
	user       *service.UserService
}

type controllers struct {
	auth       *controller.AuthController
	course     *controller.CourseController
	assignment *controller.AssignmentController
	personnel  *controller.PersonnelController
	crew       *controller.CrewController
	equipment  *controller.EquipmentController
	knowledge  *controller.KnowledgeController
	file       *controller.FileController
	user       *controller.UserController
	health     *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:       repository.NewUserRepository(db),
		personnel:  repository.NewPersonnelRepository(db),
		crew:       repository.NewCrewRepository(db),
		equipment:  repository.NewEquipmentRepository(db),
		course:     repository.NewCourseRepository(db),
		assignment: repository.NewAssignmentRepository(db),
		knowledge:  repository.NewKnowledgeRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	s := &services{}

	s.storage = service.NewStorageService(cfg)
	s.access = service.NewAccessService(repos.personnel, repos.assignment, repos.assignment)
	s.auth = service.NewAuthService(repos.user, cfg)
	s.course = service.NewCourseService(repos.course, repos.assignment, s.access, rdb)
	s.assignment = service.NewAssignmentService(repos.assignment, repos.course, repos.personnel)
	s.personnel = service.NewPersonnelService(repos.personnel, repos.user)
	s.crew = service.NewCrewService(repos.crew)
	s.equipment = service.NewEquipmentService(repos.equipment)
	s.knowledge = service.NewKnowledgeService(repos.knowledge)
	s.file = service.NewFileService(s.storage, rdb, cfg)
	s.user = service.NewUserService(repos.user)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB, rdb *redis.Client) *controllers {
	return &controllers{
		auth:       controller.NewAuthController(s.auth),
		course:     controller.NewCourseController(s.course),
		assignment: controller.NewAssignmentController(s.assignment),
		personnel:  controller.NewPersonnelController(s.personnel),
		crew:       controller.NewCrewController(s.crew),
		equipment:  controller.NewEquipmentController(s.equipment),
		knowledge:  controller.NewKnowledgeController(s.knowledge),
		file:       controller.NewFileController(s.file),
		user:       controller.NewUserController(s.user),
		health:     controller.NewHealthController(db, rdb),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
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

// applyConfig is invoked by the config watcher. Only settings that are read
// per request take effect without a restart; connection settings need one.
func (a *App) applyConfig(cfg *config.Config) {
	cfg.ForceMigrate = a.Config.ForceMigrate
	cfg.MigrateOnly = a.Config.MigrateOnly
	*a.Config = *cfg

	logger.Log.Info("Configuration reloaded")
	for _, callback := range a.configCallbacks {
		callback(a.Config)
	}
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("Logger initialized successfully")

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.InitDB(cfg)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Warn("Redis unavailable, caching and upload progress disabled", zap.Error(err))
		rdb = nil
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	if cfg.MigrateOnly {
		return app
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, rdb)
	controllers := app.initControllers(services, db, rdb)

	monitoring.Init()

	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer("training-records", cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		app.tracerProvider = tp
	}

	app.registerRoutes(router, controllers, repos, cfg)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	go configwatcher.WatchConfig("configs/config.yaml", app.applyConfig)

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

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	if a.tracerProvider != nil {
		if err := a.tracerProvider.Shutdown(ctx); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}

	log.Println("Server exiting")
}
