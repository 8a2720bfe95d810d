package routes

import (
	courseController "aprendia_backend/internals/features/lms/courses/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func CoursePublicRoutes(router fiber.Router, db *gorm.DB) {
	controller := courseController.NewCoursePublicController(db)
	courses := router.Group("/courses")

	courses.Get("/", controller.GetAll)
	courses.Get("/slug/:slug", controller.GetBySlug)
	courses.Get("/:id", controller.GetByID)
}

func CourseAdminRoutes(router fiber.Router, db *gorm.DB) {
	controller := courseController.NewCourseAdminController(db)
	courses := router.Group("/courses")

	courses.Get("/", controller.GetAll)
	courses.Post("/", controller.Create)
	courses.Put("/:id", controller.Update)
	courses.Post("/:id/cover", controller.UploadCover)
	courses.Delete("/:id", controller.Delete)
}
