package app

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
	"gorm.io/gorm"

	"go-chms/internal/alloweduser"
	"go-chms/internal/analytics"
	"go-chms/internal/attendance"
	"go-chms/internal/audit"
	"go-chms/internal/auth"
	"go-chms/internal/membership"
	kafkamsg "go-chms/internal/messaging/kafka"
	"go-chms/internal/middleware"
	"go-chms/internal/rbac"
	"go-chms/internal/report"
)

// BuildRouter wires repositories, services, handlers and middleware into the
// API engine.
func BuildRouter(db *gorm.DB, redisClient *redis.Client, cfg Config) (*gin.Engine, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	outboxRepo := kafkamsg.NewOutboxRepository(sqlDB)
	recorder := audit.NewOutboxRecorder(outboxRepo)

	attendanceRepo := attendance.NewRepository(db)
	membershipRepo := membership.NewRepository(db)
	allowedRepo := alloweduser.NewRepository(db)
	auditRepo := audit.NewRepository(db)
	authRepo := auth.NewRepository(db)

	allowedService := alloweduser.NewService(allowedRepo, recorder)
	rbacService, err := rbac.NewService(allowedService)
	if err != nil {
		return nil, err
	}

	membershipService := membership.NewService(membershipRepo, attendanceRepo, recorder)
	attendanceService := attendance.NewService(attendanceRepo, membershipService, recorder)
	analyticsService := analytics.NewService(attendanceRepo)
	reportService := report.NewService(attendanceRepo, recorder)
	auditService := audit.NewService(auditRepo)

	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)
	authService := auth.NewService(authRepo, allowedService, tokens)

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestContext())
	engine.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := engine.Group("/api/v1")

	authenticate := middleware.Authenticate(tokens, rbacService)
	authorize := middleware.Authorize(rbacService)
	rateLimit := middleware.RateLimitByIP(rate.Every(time.Second), 10)
	idempotent := middleware.InFlightLock(redisClient)

	auth.RegisterRoutes(api, auth.NewHandler(authService), rateLimit, authenticate)

	protected := api.Group("")
	protected.Use(authenticate)

	attendance.RegisterRoutes(protected, attendance.NewHandler(attendanceService), authorize, idempotent)
	membership.RegisterRoutes(protected, membership.NewHandler(membershipService), authorize, idempotent)
	analytics.RegisterRoutes(protected, analytics.NewHandler(analyticsService), authorize)
	report.RegisterRoutes(protected, report.NewHandler(reportService), authorize)
	alloweduser.RegisterRoutes(protected, alloweduser.NewHandler(allowedService), authorize, idempotent)
	audit.RegisterRoutes(protected, audit.NewHandler(auditService), authorize)

	return engine, nil
}
