package routes

import (
	gradeController "aprendia_backend/internals/features/grades/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func GradeUserRoutes(router fiber.Router, db *gorm.DB) {
	controller := gradeController.NewGradeUserController(db)
	grades := router.Group("/grades")

	grades.Get("/summary", controller.GetSummary)
}

func GradeAdminRoutes(router fiber.Router, db *gorm.DB) {
	controller := gradeController.NewGradeAdminController(db)
	params := router.Group("/grade-parameters")

	params.Get("/", controller.GetByCourse)
	params.Post("/", controller.Create)
	params.Put("/:id", controller.Update)
	params.Delete("/:id", controller.Delete)
}
