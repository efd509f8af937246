package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/adbridge/adbridge-backend/internal/config"
	"github.com/adbridge/adbridge-backend/internal/handler"
	"github.com/adbridge/adbridge-backend/internal/middleware"
	"github.com/adbridge/adbridge-backend/internal/migration"
	"github.com/adbridge/adbridge-backend/internal/repository"
	"github.com/adbridge/adbridge-backend/internal/routes"
	"github.com/adbridge/adbridge-backend/internal/service"
	pkgcache "github.com/adbridge/adbridge-backend/pkg/cache"
	"github.com/adbridge/adbridge-backend/pkg/jwt"
	pkglogger "github.com/adbridge/adbridge-backend/pkg/logger"
	pkgredis "github.com/adbridge/adbridge-backend/pkg/redis"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// getConfigPath returns config file path based on APP_ENV environment variable
func getConfigPath() string {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "local"
	}
	return fmt.Sprintf("configs/config.%s.yaml", env)
}

func main() {
	dotenvFiles := config.LoadDotEnv()

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "local"
	}
	pkglogger.Init(env)
	logg := pkglogger.GetLogger()
	logg.Info().Str("env", env).Strs("env_files", dotenvFiles).Msg("starting adbridge-backend")

	configPath := getConfigPath()
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := initDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	logg.Info().Msg("connected to MySQL")
	if err := migration.Run(db); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	// Redis is optional: without it the API loses caching and rate
	// limiting but keeps serving.
	redisClient, err := pkgredis.NewClient(
		cfg.Redis.Host,
		cfg.Redis.Port,
		cfg.Redis.Password,
		cfg.Redis.DB,
		cfg.Redis.PoolSize,
	)
	if err != nil {
		logg.Warn().Err(err).Msg("Redis unavailable, continuing without cache/rate limit")
		redisClient = nil
	} else {
		logg.Info().Msg("connected to Redis")
	}

	var cacheService pkgcache.Service
	if redisClient != nil {
		cacheService = pkgcache.NewService(redisClient)
	}

	jwtManager := jwt.NewManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiresIn,
		cfg.JWT.RefreshIn,
	)

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())

	allowOrigins := cfg.CORS.AllowOrigins
	if allowOrigins == "" {
		allowOrigins = "http://localhost:3000"
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     splitAndTrim(allowOrigins, ","),
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		AllowCredentials: true,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		ExposeHeaders:    []string{"X-Request-ID", "X-RateLimit-Remaining", "X-Cache"},
		MaxAge:           86400,
	}))

	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.Metrics())
	router.Use(middleware.RequestLogger())

	// Prometheus metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "adbridge-backend",
			"time":    time.Now().Unix(),
		})
	})

	// Repositories
	userRepo := repository.NewUserRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	campaignRepo := repository.NewCampaignRepository(db)
	appRepo := repository.NewApplicationRepository(db)
	clickRepo := repository.NewClickRepository(db)
	shopRepo := repository.NewShopRepository(db)

	// Services
	authService := service.NewAuthService(userRepo, jwtManager)
	appService := service.NewApplicationService(appRepo, campaignRepo)
	trackingService := service.NewTrackingService(campaignRepo, clickRepo, cfg.App.BaseURL)
	statsService := service.NewStatsService(campaignRepo, appRepo, clickRepo)

	// Handlers
	trackingHandler := handler.NewTrackingHandler(trackingService)
	authHandler := handler.NewAuthHandler(authService)
	campaignHandler := handler.NewCampaignHandler(campaignRepo, categoryRepo, cacheService)
	advertiserHandler := handler.NewAdvertiserHandler(campaignRepo, appService, statsService, cacheService)
	creatorHandler := handler.NewCreatorHandler(appService, statsService, appRepo, shopRepo)

	routes.Setup(router,
		trackingHandler,
		authHandler,
		campaignHandler,
		advertiserHandler,
		creatorHandler,
		jwtManager,
		redisClient,
	)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logg.Info().Str("addr", addr).Msg("listening")
	if err := router.Run(addr); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

// initDB opens the MySQL connection. TranslateError lets repositories
// match on gorm.ErrDuplicatedKey instead of driver error codes.
func initDB(cfg *config.Config) (*gorm.DB, error) {
	logLevel := gormlogger.Warn
	if cfg.IsDevelopment() {
		logLevel = gormlogger.Info
	}

	db, err := gorm.Open(mysql.Open(cfg.Database.GetDSN()), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(logLevel),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(50)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(time.Hour)
	return db, nil
}

func splitAndTrim(s, sep string) []string {
	parts := strings.Split(s, sep)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}
