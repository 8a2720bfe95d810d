package routes

import (
	authController "aprendia_backend/internals/features/users/auth/controller"
	"aprendia_backend/internals/middlewares"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Rutas públicas de autenticación (rate-limited)
func AuthRoutes(router fiber.Router, db *gorm.DB) {
	controller := authController.NewAuthController(db)
	auth := router.Group("/auth")

	auth.Post("/register", middlewares.RegisterRateLimiter(), controller.Register)
	auth.Post("/login", middlewares.LoginRateLimiter(), controller.Login)
	auth.Post("/google", middlewares.LoginRateLimiter(), controller.GoogleLogin)
	auth.Post("/refresh", controller.Refresh)
}

// Rutas de autenticación que requieren sesión
func AuthUserRoutes(router fiber.Router, db *gorm.DB) {
	controller := authController.NewAuthController(db)
	auth := router.Group("/auth")

	auth.Post("/logout", controller.Logout)
}
