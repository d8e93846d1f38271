package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"shop-api/config"
	"shop-api/controllers"
	_ "shop-api/docs"
	"shop-api/middleware"
	"shop-api/repositories"
	"shop-api/routes"
	"shop-api/services"
)

// @title Shop API
// @version 1.0
// @description REST backend for user accounts, a product catalog and per-user shopping carts.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.LoadConfig()

	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	client, db := config.ConnectDB(cfg)
	defer config.CloseDB(client)

	cache := config.InitRedis(cfg)
	defer config.CloseRedis(cache)

	userRepo := repositories.NewUserRepository(db)
	productRepo := repositories.NewProductRepository(db)
	cartRepo := repositories.NewCartRepository(db)

	authService := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTExpiry)
	productService := services.NewProductService(productRepo, cache)
	cartService := services.NewCartService(cartRepo, productRepo)

	router := gin.Default()
	router.Use(middleware.CORSMiddleware(cfg.OriginURL))

	routes.SetupRoutes(router, routes.Controllers{
		Auth:    controllers.NewAuthController(authService),
		Product: controllers.NewProductController(productService),
		Cart:    controllers.NewCartController(cartService),
	}, cfg.JWTSecret)

	port := ":" + cfg.Port
	log.Printf("Server starting on port %s", port)
	log.Printf("Environment: %s", cfg.AppEnv)
	log.Printf("Swagger UI: http://localhost:%s/swagger/index.html", cfg.Port)

	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
