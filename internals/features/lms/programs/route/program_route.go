package routes

import (
	programController "aprendia_backend/internals/features/lms/programs/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func ProgramPublicRoutes(router fiber.Router, db *gorm.DB) {
	controller := programController.NewProgramController(db)
	programs := router.Group("/programs")

	programs.Get("/", controller.GetAll)
	programs.Get("/:id", controller.GetByID)
}

func ProgramAdminRoutes(router fiber.Router, db *gorm.DB) {
	controller := programController.NewProgramController(db)
	programs := router.Group("/programs")

	programs.Post("/", controller.Create)
	programs.Put("/:id", controller.Update)
	programs.Delete("/:id", controller.Delete)
}
