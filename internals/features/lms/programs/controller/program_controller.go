package controller

import (
	"log"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	courseDto "aprendia_backend/internals/features/lms/courses/dto"
	courseModel "aprendia_backend/internals/features/lms/courses/model"
	"aprendia_backend/internals/features/lms/programs/dto"
	"aprendia_backend/internals/features/lms/programs/model"
	helper "aprendia_backend/internals/helpers"
)

var validate = validator.New()

type ProgramController struct {
	DB *gorm.DB
}

func NewProgramController(db *gorm.DB) *ProgramController {
	return &ProgramController{DB: db}
}

// =============================
// 📄 GET /api/public/programs
// =============================
func (ctrl *ProgramController) GetAll(c *fiber.Ctx) error {
	var programs []model.ProgramModel
	if err := ctrl.DB.WithContext(c.Context()).
		Order("program_created_at ASC").
		Find(&programs).Error; err != nil {
		log.Println("[ERROR] No se pudieron obtener los programas:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudieron obtener los programas")
	}

	resp := make([]*dto.ProgramResponse, 0, len(programs))
	for i := range programs {
		resp = append(resp, dto.ToProgramResponse(&programs[i]))
	}
	return helper.Success(c, "Programas obtenidos", resp)
}

// =============================
// 🔍 GET /api/public/programs/:id
// =============================
func (ctrl *ProgramController) GetByID(c *fiber.Ctx) error {
	programID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "id de programa no es válido")
	}

	var program model.ProgramModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&program, "program_id = ?", programID).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Programa no encontrado")
	}

	var courses []courseModel.CourseModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("course_program_id = ? AND course_is_active = ?", programID, true).
		Order("course_created_at ASC").
		Find(&courses).Error; err != nil {
		log.Println("[ERROR] No se pudieron obtener los cursos del programa:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudieron obtener los cursos del programa")
	}

	courseResp := make([]*courseDto.CourseResponse, 0, len(courses))
	for i := range courses {
		courseResp = append(courseResp, courseDto.ToCourseResponse(&courses[i]))
	}

	return helper.Success(c, "Programa obtenido", fiber.Map{
		"program": dto.ToProgramResponse(&program),
		"courses": courseResp,
	})
}

// =============================
// ➕ POST /api/a/programs
// =============================
func (ctrl *ProgramController) Create(c *fiber.Ctx) error {
	var body dto.ProgramRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	program := body.ToModel()
	if err := ctrl.DB.WithContext(c.Context()).Create(program).Error; err != nil {
		log.Println("[ERROR] No se pudo crear el programa:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo crear el programa")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Programa creado", dto.ToProgramResponse(program))
}

// =============================
// ✏️ PUT /api/a/programs/:id
// =============================
func (ctrl *ProgramController) Update(c *fiber.Ctx) error {
	programID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "id de programa no es válido")
	}

	var body dto.ProgramRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var program model.ProgramModel
	if err := ctrl.DB.First(&program, "program_id = ?", programID).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Programa no encontrado")
	}

	updates := map[string]interface{}{
		"program_title":       body.ProgramTitle,
		"program_description": body.ProgramDescription,
		"program_image_key":   body.ProgramImageKey,
	}
	if err := ctrl.DB.WithContext(c.Context()).Model(&program).Updates(updates).Error; err != nil {
		log.Println("[ERROR] No se pudo actualizar el programa:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo actualizar el programa")
	}

	return helper.Success(c, "Programa actualizado", dto.ToProgramResponse(&program))
}

// =============================
// ❌ DELETE /api/a/programs/:id
// =============================
func (ctrl *ProgramController) Delete(c *fiber.Ctx) error {
	programID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "id de programa no es válido")
	}

	res := ctrl.DB.WithContext(c.Context()).Delete(&model.ProgramModel{}, "program_id = ?", programID)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo eliminar el programa")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Programa no encontrado")
	}

	return helper.Success(c, "Programa eliminado", nil)
}
