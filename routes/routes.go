package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"shop-api/controllers"
	"shop-api/middleware"
)

type Controllers struct {
	Auth    *controllers.AuthController
	Product *controllers.ProductController
	Cart    *controllers.CartController
}

func SetupRoutes(router *gin.Engine, ctrl Controllers, jwtSecret string) {
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	api := router.Group("/api")

	api.POST("/users/register", ctrl.Auth.Register)
	api.POST("/users/login", ctrl.Auth.Login)

	api.GET("/products", ctrl.Product.GetAllProducts)
	api.GET("/products/:id", ctrl.Product.GetProductByID)
	api.POST("/products", ctrl.Product.CreateProduct)
	api.PATCH("/products/:id", ctrl.Product.UpdateProduct)
	api.DELETE("/products/:id", ctrl.Product.DeleteProduct)

	cart := api.Group("/cart")
	cart.Use(middleware.AuthMiddleware(jwtSecret))
	{
		cart.GET("", ctrl.Cart.GetCart)
		cart.POST("/add", ctrl.Cart.AddToCart)
		cart.PUT("/:productId", ctrl.Cart.UpdateCartItem)
		cart.DELETE("/:productId", ctrl.Cart.RemoveFromCart)
		cart.DELETE("", ctrl.Cart.ClearCart)
	}
}
