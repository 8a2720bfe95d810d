package routes

import (
	activityController "aprendia_backend/internals/features/lms/activities/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func ActivityUserRoutes(router fiber.Router, db *gorm.DB) {
	controller := activityController.NewActivityUserController(db)

	router.Get("/lessons/:id/activities", controller.GetByLesson)
	router.Post("/activities/:id/complete", controller.Complete)
}

func ActivityAdminRoutes(router fiber.Router, db *gorm.DB) {
	controller := activityController.NewActivityAdminController(db)
	activities := router.Group("/activities")

	activities.Post("/", controller.Create)
	activities.Put("/:id", controller.Update)
	activities.Delete("/:id", controller.Delete)
}
