package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"peerlearn_backend/internal/config"
	"peerlearn_backend/internal/controller"
	"peerlearn_backend/internal/repository"
	"peerlearn_backend/internal/service"
	"peerlearn_backend/pkg/configwatcher"
	"peerlearn_backend/pkg/database"
	"peerlearn_backend/pkg/logger"
	"peerlearn_backend/pkg/monitoring"
	"peerlearn_backend/pkg/security"
	"peerlearn_backend/pkg/tracing"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	DB              *gorm.DB
	Redis           *redis.Client
	services        *services
	configCallbacks []func(*config.Config)
}

type repositories struct {
	user       *repository.UserRepository
	course     *repository.CourseRepository
	enrollment *repository.EnrollmentRepository
	attempt    *repository.QuizAttemptRepository
	session    *repository.SessionRepository
	reward     *repository.RewardRepository
}

type services struct {
	auth           *service.AuthService
	user           *service.UserService
	course         *service.CourseService
	mentoring      *service.MentoringService
	reward         *service.RewardService
	leaderboard    *service.LeaderboardService
	ai             *service.AIService
	recommendation *service.RecommendationService
}

type controllers struct {
	auth           *controller.AuthController
	user           *controller.UserController
	course         *controller.CourseController
	p2p            *controller.P2PController
	reward         *controller.RewardController
	leaderboard    *controller.LeaderboardController
	recommendation *controller.RecommendationController
	health         *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:       repository.NewUserRepository(db),
		course:     repository.NewCourseRepository(db),
		enrollment: repository.NewEnrollmentRepository(db),
		attempt:    repository.NewQuizAttemptRepository(db),
		session:    repository.NewSessionRepository(db),
		reward:     repository.NewRewardRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, db *gorm.DB, rdb *redis.Client) *services {
	s := &services{}

	s.auth = service.NewAuthService(repos.user, cfg)
	s.user = service.NewUserService(repos.user)
	s.course = service.NewCourseService(repos.course, repos.enrollment, repos.attempt, db)
	s.mentoring = service.NewMentoringService(repos.session, repos.user, db)
	s.reward = service.NewRewardService(repos.reward, db)
	s.leaderboard = service.NewLeaderboardService(repos.user, rdb)
	s.ai = service.NewAIService(cfg.AI)
	s.recommendation = service.NewRecommendationService(repos.enrollment, s.ai)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		auth:           controller.NewAuthController(s.auth),
		user:           controller.NewUserController(s.auth),
		course:         controller.NewCourseController(s.course, s.auth),
		p2p:            controller.NewP2PController(s.mentoring, s.auth),
		reward:         controller.NewRewardController(s.reward, s.auth),
		leaderboard:    controller.NewLeaderboardController(s.leaderboard),
		recommendation: controller.NewRecommendationController(s.recommendation, s.auth),
		health:         controller.NewHealthController(db),
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

func (a *App) watchConfig() {
	go configwatcher.WatchConfig("configs/config.yaml", a.Config, func(newCfg interface{}) {
		cfg, ok := newCfg.(*config.Config)
		if !ok {
			return
		}
		*a.Config = *cfg
		for _, callback := range a.configCallbacks {
			callback(cfg)
		}
		logger.Log.Info("Configuration reloaded")
	})
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		// the leaderboard cache is the only Redis consumer; run without it
		logger.Log.Warn("Failed to initialize redis, continuing without cache", zap.Error(err))
		rdb = nil
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, db, rdb)
	app.services = services
	controllers := app.initControllers(services, db)

	app.RegisterConfigCallback(func(c *config.Config) {
		services.ai.UpdateConfig(c.AI)
	})

	monitoring.Init()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("peerlearn", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, services)

	app.watchConfig()

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

	log.Println("Server exiting")
}
