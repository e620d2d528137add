package main

import (
	"log"
	"time"

	"store-api/cache"
	"store-api/controllers"
	"store-api/database"
	"store-api/logger"
	"store-api/models"
	"store-api/repository"
	"store-api/routes"
	"store-api/sender"
	"store-api/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	cfg := LoadConfig()

	if err := logger.Initialize(cfg.Env); err != nil {
		log.Fatalf("Could not initialize logger: %v", err)
	}
	defer zap.L().Sync()

	if err := database.Connect(); err != nil {
		zap.L().Fatal("Could not connect to PostgreSQL", zap.Error(err))
	}

	if err := models.Migrate(database.DB); err != nil {
		zap.L().Fatal("Migration failed", zap.Error(err))
	}

	// Redis is optional; without it catalog reads skip the cache.
	var redisClient *redis.Client
	if cfg.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	} else {
		zap.L().Warn("REDIS_ADDR not set, product cache disabled")
	}
	productCache := cache.NewProductCache(redisClient)

	emailSender, err := sender.NewSMTPSender()
	if err != nil {
		zap.L().Fatal("Could not configure SMTP sender", zap.Error(err))
	}

	userRepo := repository.NewGormUserRepository(database.DB)
	resetRepo := repository.NewGormPasswordResetRepository(database.DB)
	productRepo := repository.NewGormProductRepository(database.DB)
	orderRepo := repository.NewGormOrderRepository(database.DB)
	contactRepo := repository.NewGormContactRepository(database.DB)

	authService := services.NewAuthService(userRepo, resetRepo, emailSender)
	userService := services.NewUserService(userRepo)
	productService := services.NewProductService(productRepo)
	cartService := services.NewCartService(productRepo)
	orderService := services.NewOrderService(orderRepo, productRepo, userRepo)
	contactService := services.NewContactService(contactRepo, emailSender)

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.RequestLogger())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.Register(r, routes.Controllers{
		Auth:    controllers.NewAuthController(authService),
		User:    controllers.NewUserController(userService),
		Product: controllers.NewProductController(productService, productCache, cfg.ImagesDir),
		Cart:    controllers.NewCartController(cartService),
		Order:   controllers.NewOrderController(orderService),
		Contact: controllers.NewContactController(contactService),
	})

	zap.L().Info("Store API started", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		zap.L().Fatal("Error starting server", zap.Error(err))
	}
}
