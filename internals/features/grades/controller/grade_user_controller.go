package controller

import (
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"aprendia_backend/internals/features/grades/service"
	helper "aprendia_backend/internals/helpers"
)

type GradeUserController struct {
	DB      *gorm.DB
	service *service.GradeService
}

func NewGradeUserController(db *gorm.DB) *GradeUserController {
	return &GradeUserController{DB: db, service: service.NewGradeService(db)}
}

// =============================
// 📊 GET /api/u/grades/summary?course_id=
// =============================
func (ctrl *GradeUserController) GetSummary(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	courseID, err := strconv.Atoi(c.Query("course_id"))
	if err != nil || courseID < 1 {
		return fiber.NewError(fiber.StatusBadRequest, "course_id no es válido")
	}

	summary, err := ctrl.service.CourseSummary(c.Context(), uint(courseID), userID)
	if err != nil {
		log.Println("[ERROR] No se pudo calcular el resumen de notas:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo calcular el resumen de notas")
	}

	return helper.Success(c, "Resumen de notas obtenido", summary)
}
