package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"aprendia_backend/internals/constants"
	authMiddleware "aprendia_backend/internals/middlewares/auth"
	routeDetails "aprendia_backend/internals/route/details"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	// ===================== PUBLIC =====================
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api/public")
	routeDetails.AuthRoutes(public, db)
	routeDetails.LmsPublicRoutes(public, db)

	// ===================== PRIVATE (STUDENT) =====================
	log.Println("[INFO] Setting up PRIVATE group...")
	private := app.Group("/api/u", authMiddleware.AuthMiddleware(db))
	routeDetails.AccountUserRoutes(private, db)
	routeDetails.LmsUserRoutes(private, db)

	// ===================== ADMIN (EDUCATOR+) =====================
	log.Println("[INFO] Setting up ADMIN group (Auth + RoleCheck)...")
	admin := app.Group("/api/a",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles(
			constants.RoleErrorEducator("el panel de administración"),
			constants.EducatorAndAbove...,
		),
	)
	routeDetails.AccountAdminRoutes(admin, db)
	routeDetails.LmsAdminRoutes(admin, db)
}
