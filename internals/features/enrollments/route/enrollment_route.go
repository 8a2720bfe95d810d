package routes

import (
	enrollmentController "aprendia_backend/internals/features/enrollments/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func EnrollmentUserRoutes(router fiber.Router, db *gorm.DB) {
	controller := enrollmentController.NewEnrollmentController(db)
	courses := router.Group("/courses")

	courses.Get("/:id/enrolled", controller.GetEnrolled)
	courses.Post("/:id/enroll", controller.Enroll)
	courses.Post("/:id/checkout", controller.Checkout)
}
