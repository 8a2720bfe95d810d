package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	ticketRoutes "aprendia_backend/internals/features/tickets/route"
	authRoutes "aprendia_backend/internals/features/users/auth/route"
	userRoutes "aprendia_backend/internals/features/users/user/route"
)

// Registro, login, Google y refresh: sin sesión.
func AuthRoutes(router fiber.Router, db *gorm.DB) {
	authRoutes.AuthRoutes(router, db)
}

// Sesión, perfil y soporte del usuario autenticado.
func AccountUserRoutes(router fiber.Router, db *gorm.DB) {
	authRoutes.AuthUserRoutes(router, db)
	userRoutes.UserRoutes(router, db)
	ticketRoutes.TicketUserRoutes(router, db)
}

// Gestión de usuarios y triage de tickets.
func AccountAdminRoutes(router fiber.Router, db *gorm.DB) {
	userRoutes.UserAdminRoutes(router, db)
	ticketRoutes.TicketAdminRoutes(router, db)
}
