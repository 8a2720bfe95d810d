package routes

import (
	ticketController "aprendia_backend/internals/features/tickets/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func TicketUserRoutes(router fiber.Router, db *gorm.DB) {
	controller := ticketController.NewTicketUserController(db)
	tickets := router.Group("/tickets")

	tickets.Post("/", controller.Create)
	tickets.Get("/mine", controller.GetMine)
	tickets.Get("/:id", controller.GetByID)
	tickets.Post("/:id/comments", controller.AddComment)
}

func TicketAdminRoutes(router fiber.Router, db *gorm.DB) {
	controller := ticketController.NewTicketAdminController(db)
	tickets := router.Group("/tickets")

	tickets.Get("/", controller.GetAll)
	tickets.Put("/:id", controller.Triage)
}
