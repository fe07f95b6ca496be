package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/MavMaver/food-delivery/configs"
	"github.com/MavMaver/food-delivery/controllers"
	"github.com/MavMaver/food-delivery/middlewares"
	"github.com/MavMaver/food-delivery/repository"
	"github.com/MavMaver/food-delivery/services"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	catalogRepo := repository.NewCatalogRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)

	// Services
	userSvc := services.NewUserService(db, userRepo)
	authSvc := services.NewAuthService(cfg, userRepo, userSvc)
	catalogSvc := services.NewCatalogService(db, catalogRepo)
	cartSvc := services.NewCartService(db, cartRepo, catalogRepo, userRepo)
	orderSvc := services.NewOrderService(db, orderRepo, cartRepo, userRepo, cartSvc)
	paymentSvc := services.NewPaymentService(db, paymentRepo, orderRepo, orderSvc)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc, userSvc)
	userCtrl := controllers.NewUserController(userSvc)
	restCtrl := controllers.NewRestaurantController(catalogSvc)
	cartCtrl := controllers.NewCartController(cartSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	paymentCtrl := controllers.NewPaymentController(paymentSvc)

	// Auth
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
		a.GET("/me", middlewares.AuthMiddleware(cfg), authCtrl.Me)
	}

	// Users
	r.POST("/users", userCtrl.Create)
	r.GET("/users", userCtrl.List)
	r.GET("/users/:id", userCtrl.Detail)
	r.PATCH("/users/:id", userCtrl.Update)
	r.DELETE("/users/:id", userCtrl.Deactivate)
	r.GET("/users/:id/snapshot", userCtrl.SnapshotAt)

	// Catalog (reads public, mutations for owners/admins)
	r.GET("/restaurants", restCtrl.List)
	r.GET("/restaurants/:id", restCtrl.Detail)
	manage := r.Group("/", middlewares.AuthMiddleware(cfg, "owner", "admin"))
	{
		manage.POST("/restaurants", restCtrl.Create)
		manage.PATCH("/restaurants/:id/open", restCtrl.SetOpen)
		manage.POST("/restaurants/:id/menu", restCtrl.CreateMenuItem)
		manage.POST("/menu/:id/variations", restCtrl.CreateVariation)
		manage.PATCH("/variations/:id/availability", restCtrl.SetAvailability)
	}

	// Cart
	r.GET("/cart", cartCtrl.Get)
	r.POST("/cart/items", cartCtrl.AddItem)
	r.PATCH("/cart/items/:id", cartCtrl.UpdateLine)
	r.DELETE("/cart/items/:id", cartCtrl.RemoveLine)
	r.DELETE("/cart", cartCtrl.Clear)

	// Orders
	r.POST("/orders", orderCtrl.Create)
	r.GET("/orders", orderCtrl.List)
	r.GET("/orders/:id", orderCtrl.Detail)
	r.PATCH("/orders/:id/status", orderCtrl.ChangeStatus)
	r.DELETE("/orders/:id", orderCtrl.Cancel)

	// Payments
	r.POST("/payments", paymentCtrl.Create)
	r.PATCH("/payments/:id/status", paymentCtrl.UpdateStatus)
	r.GET("/payments", paymentCtrl.List)
}
