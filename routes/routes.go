package routes

import (
	"github.com/gihanchamila/Little-Lemon-capston/configs"
	"github.com/gihanchamila/Little-Lemon-capston/controllers"
	"github.com/gihanchamila/Little-Lemon-capston/entity"
	"github.com/gihanchamila/Little-Lemon-capston/middlewares"
	"github.com/gihanchamila/Little-Lemon-capston/repository"
	"github.com/gihanchamila/Little-Lemon-capston/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	roleRepo := repository.NewRoleRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	roleSvc := services.NewRoleService(roleRepo)
	menuSvc := services.NewMenuService(menuRepo)
	cartSvc := services.NewCartService(db, cartRepo, menuRepo)
	orderSvc := services.NewOrderService(db, orderRepo, cartRepo, roleSvc)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	menuCtrl := controllers.NewMenuController(menuSvc, roleSvc)
	cartCtrl := controllers.NewCartController(cartSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	groupCtrl := controllers.NewGroupController(roleSvc)

	auth := middlewares.AuthMiddleware(cfg.JWTSecret)

	// Auth
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
		a.GET("/me", auth, authCtrl.Me)
	}

	// Catalog: public reads, manager writes (checked in controller)
	r.GET("/categories", menuCtrl.ListCategories)
	r.GET("/categories/:id", menuCtrl.GetCategory)
	r.POST("/categories", auth, menuCtrl.CreateCategory)
	r.PUT("/categories/:id", auth, menuCtrl.UpdateCategory)
	r.DELETE("/categories/:id", auth, menuCtrl.DeleteCategory)

	r.GET("/menu-items", menuCtrl.ListMenuItems)
	r.GET("/menu-items/:id", menuCtrl.GetMenuItem)
	r.POST("/menu-items", auth, menuCtrl.CreateMenuItem)
	r.PUT("/menu-items/:id", auth, menuCtrl.UpdateMenuItem)
	r.DELETE("/menu-items/:id", auth, menuCtrl.DeleteMenuItem)

	// Cart
	cart := r.Group("/cart", auth)
	{
		cart.GET("/menu-items", cartCtrl.List)
		cart.POST("/menu-items", cartCtrl.Add)
		cart.PUT("/menu-items", cartCtrl.Set)
		cart.DELETE("/menu-items", cartCtrl.Remove)
	}

	// Orders
	orders := r.Group("/orders", auth)
	{
		orders.POST("", orderCtrl.Create)
		orders.GET("", orderCtrl.List)
		orders.GET("/:id", orderCtrl.Detail)
		orders.PUT("/:id", orderCtrl.Update)
		orders.DELETE("/:id", orderCtrl.Delete)
	}

	// Staff groups
	groups := r.Group("/groups", auth)
	{
		groups.GET("/manager/users", groupCtrl.List(entity.RoleManager))
		groups.POST("/manager/users", groupCtrl.Add(entity.RoleManager))
		groups.DELETE("/manager/users/:id", groupCtrl.Remove(entity.RoleManager))

		groups.GET("/delivery-crew/users", groupCtrl.List(entity.RoleDeliveryCrew))
		groups.POST("/delivery-crew/users", groupCtrl.Add(entity.RoleDeliveryCrew))
		groups.DELETE("/delivery-crew/users/:id", groupCtrl.Remove(entity.RoleDeliveryCrew))
	}
}
