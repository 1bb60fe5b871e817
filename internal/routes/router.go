package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Joshua4-0p/blood-donation-app/internal/config"
	"github.com/Joshua4-0p/blood-donation-app/internal/delivery/http/handler"
	"github.com/Joshua4-0p/blood-donation-app/internal/eligibility"
	"github.com/Joshua4-0p/blood-donation-app/internal/infrastructure/database/postgres"
	"github.com/Joshua4-0p/blood-donation-app/internal/logger"
	"github.com/Joshua4-0p/blood-donation-app/internal/middleware"
	authUsecase "github.com/Joshua4-0p/blood-donation-app/internal/usecase/auth"
	donationUsecase "github.com/Joshua4-0p/blood-donation-app/internal/usecase/donation"
	hospitalUsecase "github.com/Joshua4-0p/blood-donation-app/internal/usecase/hospital"
	requestUsecase "github.com/Joshua4-0p/blood-donation-app/internal/usecase/request"
	userUsecase "github.com/Joshua4-0p/blood-donation-app/internal/usecase/user"
)

func SetupRoutes(cfg *config.Config, db *postgres.DB) *gin.Engine {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Add middleware in order: request ID, logging, security headers, CORS, request size limit, general rate limit
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.SecurityHeadersMiddleware())
	router.Use(middleware.CORSMiddleware(&cfg.CORS))
	router.Use(middleware.RequestSizeLimitMiddleware(middleware.DefaultMaxRequestSize))
	router.Use(middleware.RateLimitMiddleware(cfg.RateLimit.GeneralRPS, cfg.RateLimit.GeneralBurst))

	router.GET("/health", func(c *gin.Context) {
		if err := db.Health(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":  "unhealthy",
				"message": "Database connection failed",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"message": "Service is running",
		})
	})

	userRepository := postgres.NewUserRepository(db)
	hospitalRepository := postgres.NewHospitalRepository(db)
	requestRepository := postgres.NewRequestRepository(db)
	donationRepository := postgres.NewDonationRepository(db)
	resetRepository := postgres.NewPasswordResetRepository(db)

	evaluator := eligibility.NewGroqEvaluator(&cfg.Eligibility)

	authService := authUsecase.NewService(userRepository, hospitalRepository, resetRepository, cfg)
	userService := userUsecase.NewService(userRepository)
	hospitalService := hospitalUsecase.NewService(hospitalRepository)
	requestService := requestUsecase.NewService(requestRepository)
	donationService := donationUsecase.NewService(donationRepository, requestRepository, evaluator)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService, donationService, requestService)
	hospitalHandler := handler.NewHospitalHandler(hospitalService, donationService, requestService)
	requestHandler := handler.NewRequestHandler(requestService)
	donationHandler := handler.NewDonationHandler(donationService)

	v1 := router.Group("/api/v1")
	{
		authHandler.RegisterRoutes(v1)
		requestHandler.RegisterPublicRoutes(v1)

		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(cfg, authService))
		{
			userHandler.RegisterRoutes(protected)
			hospitalHandler.RegisterRoutes(protected)
			requestHandler.RegisterRoutes(protected)
			donationHandler.RegisterRoutes(protected)

			donor := protected.Group("")
			donor.Use(middleware.UserOnly())
			{
				donationHandler.RegisterDonorRoutes(donor)
			}
		}

		admin := v1.Group("")
		admin.Use(middleware.AdminTokenMiddleware(&cfg.Admin))
		{
			hospitalHandler.RegisterAdminRoutes(admin)
		}
	}

	logger.Info("All routes initialized")
	return router
}
