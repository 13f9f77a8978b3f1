package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"qrmenu.backend/internal/interfaces/http/handlers"
	"qrmenu.backend/internal/interfaces/http/middleware"
)

type routeDeps struct {
	authHandler        *handlers.AuthHandler
	publicHandler      *handlers.PublicHandler
	orderHandler       *handlers.OrderHandler
	menuHandler        *handlers.MenuHandler
	restaurantHandler  *handlers.RestaurantHandler
	adminHandler       *handlers.AdminHandler
	dualAuthMiddleware gin.HandlerFunc
	idempotencyTTL     time.Duration
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	v1 := r.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", d.authHandler.Register)
			auth.POST("/login", d.authHandler.Login)
			auth.POST("/refresh", d.authHandler.RefreshToken)
			auth.POST("/logout", d.authHandler.Logout)
			auth.GET("/me", d.dualAuthMiddleware, d.authHandler.GetMe)
		}

		// Customer routes behind QR codes (public, anonymous)
		menu := v1.Group("/m/:qrData")
		{
			menu.GET("", d.publicHandler.GetMenu)
			menu.GET("/dishes/:id", d.publicHandler.GetDish)
			menu.POST("/orders", middleware.IdempotencyMiddleware(d.idempotencyTTL), d.publicHandler.CreateOrder)
		}

		// Public order tracking
		v1.GET("/orders/track/:orderNumber", d.publicHandler.TrackOrder)

		// Owner order routes (protected)
		orders := v1.Group("/orders")
		orders.Use(d.dualAuthMiddleware)
		{
			orders.GET("", d.orderHandler.ListOrders)
			orders.GET("/stats", d.orderHandler.GetStats)
			orders.GET("/:id", d.orderHandler.GetOrder)
			orders.PUT("/:id/status", d.orderHandler.UpdateStatus)
			orders.POST("/:id/cancel", d.orderHandler.CancelOrder)
			orders.POST("/:id/paid", d.orderHandler.SetPaid)
			orders.POST("/:id/unpaid", d.orderHandler.SetUnpaid)
		}

		// Owner menu management routes (protected)
		menuAdmin := v1.Group("/menu")
		menuAdmin.Use(d.dualAuthMiddleware)
		{
			menuAdmin.GET("/categories", d.menuHandler.ListCategories)
			menuAdmin.POST("/categories", d.menuHandler.CreateCategory)
			menuAdmin.PUT("/categories/:id", d.menuHandler.UpdateCategory)
			menuAdmin.DELETE("/categories/:id", d.menuHandler.DeleteCategory)

			menuAdmin.GET("/dishes", d.menuHandler.ListDishes)
			menuAdmin.POST("/dishes", d.menuHandler.CreateDish)
			menuAdmin.PUT("/dishes/:id", d.menuHandler.UpdateDish)
			menuAdmin.DELETE("/dishes/:id", d.menuHandler.DeleteDish)

			menuAdmin.POST("/dishes/:id/options", d.menuHandler.AddOption)
			menuAdmin.PUT("/dishes/:id/options/:optionId", d.menuHandler.UpdateOption)
			menuAdmin.DELETE("/dishes/:id/options/:optionId", d.menuHandler.DeleteOption)
		}

		// Owner restaurant routes (protected)
		restaurant := v1.Group("/restaurant")
		restaurant.Use(d.dualAuthMiddleware)
		{
			restaurant.GET("/profile", d.restaurantHandler.GetProfile)
			restaurant.PUT("/profile", d.restaurantHandler.UpdateProfile)
			restaurant.GET("/settings", d.restaurantHandler.GetSettings)
			restaurant.PUT("/settings", d.restaurantHandler.UpdateSettings)
			restaurant.POST("/qr/regenerate", d.restaurantHandler.RegenerateQR)
			restaurant.POST("/verification", d.restaurantHandler.SubmitVerification)
			restaurant.GET("/verification", d.restaurantHandler.GetVerificationStatus)
		}

		// Admin routes (protected)
		admin := v1.Group("/admin")
		admin.Use(d.dualAuthMiddleware, middleware.RequireAdmin())
		{
			admin.GET("/verifications", d.adminHandler.ListVerifications)
			admin.GET("/verifications/pending-count", d.adminHandler.GetPendingCount)
			admin.POST("/verifications/:id/approve", d.adminHandler.ApproveVerification)
			admin.POST("/verifications/:id/reject", d.adminHandler.RejectVerification)
			admin.POST("/verifications/:id/request-changes", d.adminHandler.RequestVerificationChanges)

			admin.GET("/users", d.adminHandler.ListUsers)
			admin.GET("/restaurants", d.adminHandler.ListRestaurants)
		}
	}
}

func applyCORSMiddleware(r *gin.Engine) {
	r.Use(func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Credentials", "true")
			c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type, X-Request-ID, X-Session-ID, Idempotency-Key")
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})
}

func registerHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "qrmenu-backend",
			"version": "0.1.0",
		})
	})
}
