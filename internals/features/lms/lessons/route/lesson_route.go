package routes

import (
	lessonController "aprendia_backend/internals/features/lms/lessons/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func LessonUserRoutes(router fiber.Router, db *gorm.DB) {
	controller := lessonController.NewLessonUserController(db)
	lessons := router.Group("/lessons")

	lessons.Get("/:id", controller.GetByID)
	lessons.Get("/:id/transcription", controller.GetTranscription)
}

func LessonAdminRoutes(router fiber.Router, db *gorm.DB) {
	controller := lessonController.NewLessonAdminController(db)
	lessons := router.Group("/lessons")

	lessons.Post("/", controller.Create)
	lessons.Put("/:id", controller.Update)
	lessons.Delete("/:id", controller.Delete)
}
