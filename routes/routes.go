package routes

import (
	"github.com/alibek123/DProject/configs"
	"github.com/alibek123/DProject/controllers"
	"github.com/alibek123/DProject/middlewares"
	"github.com/alibek123/DProject/repository"
	"github.com/alibek123/DProject/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	catalogRepo := repository.NewCatalogRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	catalogSvc := services.NewCatalogService(catalogRepo)
	cartSvc := services.NewCartService(db, cartRepo, catalogRepo)
	orderSvc := services.NewOrderService(db, orderRepo, cartRepo, catalogRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	mealCtrl := controllers.NewMealController(catalogSvc)
	cartCtrl := controllers.NewCartController(cartSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)

	// Auth (public)
	r.POST("/register", authCtrl.Register)
	r.POST("/login", authCtrl.Login)

	auth := middlewares.AuthMiddleware(cfg.JWTSecret)
	r.GET("/auth/me", auth, authCtrl.Me)

	// Catalog (public)
	r.GET("/meals", mealCtrl.List)
	r.GET("/meals/:category_slug", mealCtrl.Category)
	r.GET("/meals/:category_slug/:meal_slug", mealCtrl.Detail)

	// Catalog management (admin only)
	admin := r.Group("/admin", middlewares.AuthMiddleware(cfg.JWTSecret, "admin"))
	{
		admin.POST("/meals", mealCtrl.Create)
		admin.PATCH("/meals/:id", mealCtrl.Update)
	}

	// Carts
	carts := r.Group("/carts", auth)
	{
		carts.PUT("/add_to_cart", cartCtrl.AddToCart)
		carts.POST("/:id/remove_from_cart", cartCtrl.RemoveFromCart)
		carts.PUT("/:id/remove_from_cart", cartCtrl.RemoveFromCart)
		carts.GET("/mine", cartCtrl.Mine)
		carts.DELETE("/mine", cartCtrl.Clear)
		carts.PATCH("/items/:id", cartCtrl.UpdateQty)
		carts.DELETE("/items/:id", cartCtrl.RemoveItem)
	}

	// Orders
	orders := r.Group("/orders", auth)
	{
		orders.POST("/make_order", orderCtrl.MakeOrder)
		orders.GET("/order_history", orderCtrl.History)
		orders.GET("/:id", orderCtrl.Detail)
	}
}
