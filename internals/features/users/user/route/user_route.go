package routes

import (
	userController "aprendia_backend/internals/features/users/user/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Rutas del usuario autenticado
func UserRoutes(router fiber.Router, db *gorm.DB) {
	controller := userController.NewUserController(db)
	users := router.Group("/users")

	users.Get("/me", controller.GetMe)
}

// Rutas de administración de usuarios
func UserAdminRoutes(router fiber.Router, db *gorm.DB) {
	controller := userController.NewUserController(db)
	users := router.Group("/users")

	users.Get("/", controller.GetAll)
	users.Put("/:id/role", controller.UpdateRole)
}
