package routes

import (
	progressController "aprendia_backend/internals/features/progress/lesson_progress/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func LessonProgressRoutes(router fiber.Router, db *gorm.DB) {
	controller := progressController.NewLessonProgressController(db)

	router.Get("/courses/:courseId/lessons", controller.GetCourseLessons)
	router.Post("/lessons/:id/progress", controller.UpdateProgress)
	router.Get("/lessons/:id/neighbors", controller.GetNeighbors)
}
