package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pfe_service/internal/config"
	"pfe_service/internal/controller"
	"pfe_service/internal/repository"
	"pfe_service/internal/service"
	"pfe_service/internal/util"
	"pfe_service/pkg/database"
	"pfe_service/pkg/logger"
	"pfe_service/pkg/monitoring"
	"pfe_service/pkg/security"
	"pfe_service/pkg/tracing"

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
	configCallbacks []func(*config.Config)
}

type repositories struct {
	pfe             *repository.PfeRepository
	proposal        *repository.ProposalRepository
	technicalTest   *repository.TechnicalTestRepository
	savedPfe        *repository.SavedPfeRepository
	studentInterest *repository.StudentInterestRepository
	internshipOffer *repository.InternshipOfferRepository
}

type services struct {
	storage         *service.StorageService
	ai              *service.AIService
	questionBank    *service.QuestionBankService
	generation      *service.QuestionGenerationService
	verification    *service.AnswerVerificationService
	email           *service.EmailService
	pfe             *service.PfeService
	proposal        *service.ProposalService
	technicalTest   *service.TechnicalTestService
	savedPfe        *service.SavedPfeService
	studentInterest *service.StudentInterestService
	internshipOffer *service.InternshipOfferService
}

type controllers struct {
	pfe             *controller.PfeController
	proposal        *controller.ProposalController
	technicalTest   *controller.TechnicalTestController
	savedPfe        *controller.SavedPfeController
	studentInterest *controller.StudentInterestController
	internshipOffer *controller.InternshipOfferController
	health          *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

// ReloadConfig 应用热更新后的配置并通知注册的回调
func (a *App) ReloadConfig(cfg *config.Config) {
	a.Config = cfg
	for _, callback := range a.configCallbacks {
		callback(cfg)
	}
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		pfe:             repository.NewPfeRepository(db),
		proposal:        repository.NewProposalRepository(db),
		technicalTest:   repository.NewTechnicalTestRepository(db),
		savedPfe:        repository.NewSavedPfeRepository(db),
		studentInterest: repository.NewStudentInterestRepository(db),
		internshipOffer: repository.NewInternshipOfferRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	s := &services{}

	s.storage = service.NewStorageService(cfg)
	s.ai = service.NewAIService(cfg.AI)
	s.questionBank = service.NewQuestionBankService()
	s.generation = service.NewQuestionGenerationService(s.ai, s.questionBank)
	s.verification = service.NewAnswerVerificationService(s.ai)
	s.email = service.NewEmailService(cfg.Email)

	s.pfe = service.NewPfeService(repos.pfe, s.storage, rdb)
	s.technicalTest = service.NewTechnicalTestService(repos.technicalTest, s.generation, s.verification)
	s.proposal = service.NewProposalService(repos.proposal, repos.pfe, s.technicalTest, s.email)
	s.savedPfe = service.NewSavedPfeService(repos.savedPfe, repos.pfe)
	s.studentInterest = service.NewStudentInterestService(repos.studentInterest, repos.internshipOffer)
	s.internshipOffer = service.NewInternshipOfferService(repos.internshipOffer)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB, rdb *redis.Client) *controllers {
	return &controllers{
		pfe:             controller.NewPfeController(s.pfe),
		proposal:        controller.NewProposalController(s.proposal),
		technicalTest:   controller.NewTechnicalTestController(s.technicalTest, s.proposal),
		savedPfe:        controller.NewSavedPfeController(s.savedPfe),
		studentInterest: controller.NewStudentInterestController(s.studentInterest),
		internshipOffer: controller.NewInternshipOfferController(s.internshipOffer),
		health:          controller.NewHealthController(db, rdb),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 300
	}
	router.Use(security.RateLimiter(maxRequests, window))

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	defer logger.Log.Sync()

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
		log.Fatalf("Failed to initialize database: %v", err)
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
		log.Fatalf("Failed to initialize redis: %v", err)
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, rdb)
	controllers := app.initControllers(services, db, rdb)

	// AI段支持热更新，其余配置段重启生效
	app.RegisterConfigCallback(func(c *config.Config) {
		services.ai.UpdateConfig(c.AI)
	})

	// 监控初始化
	monitoring.Init()

	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("pfe-service", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers)

	if cfg.Storage.Type == util.StorageLocal {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	// 启动服务器
	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
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
