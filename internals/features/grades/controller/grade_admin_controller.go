package controller

import (
	"log"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"aprendia_backend/internals/features/grades/dto"
	"aprendia_backend/internals/features/grades/model"
	helper "aprendia_backend/internals/helpers"
)

var validate = validator.New()

type GradeAdminController struct {
	DB *gorm.DB
}

func NewGradeAdminController(db *gorm.DB) *GradeAdminController {
	return &GradeAdminController{DB: db}
}

// =============================
// 📄 GET /api/a/grade-parameters?course_id=
// =============================
func (ctrl *GradeAdminController) GetByCourse(c *fiber.Ctx) error {
	courseID, err := strconv.Atoi(c.Query("course_id"))
	if err != nil || courseID < 1 {
		return fiber.NewError(fiber.StatusBadRequest, "course_id no es válido")
	}

	var params []model.GradeParameterModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("grade_parameter_course_id = ?", courseID).
		Order("grade_parameter_created_at ASC, grade_parameter_id ASC").
		Find(&params).Error; err != nil {
		log.Println("[ERROR] No se pudieron obtener los parámetros de evaluación:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudieron obtener los parámetros de evaluación")
	}

	resp := make([]*dto.GradeParameterResponse, 0, len(params))
	for i := range params {
		resp = append(resp, dto.ToGradeParameterResponse(&params[i]))
	}
	return helper.Success(c, "Parámetros de evaluación obtenidos", resp)
}

// =============================
// ➕ POST /api/a/grade-parameters
// =============================
func (ctrl *GradeAdminController) Create(c *fiber.Ctx) error {
	var body dto.GradeParameterRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	param := body.ToModel()
	if err := ctrl.DB.WithContext(c.Context()).Create(param).Error; err != nil {
		log.Println("[ERROR] No se pudo crear el parámetro de evaluación:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo crear el parámetro de evaluación")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Parámetro de evaluación creado", dto.ToGradeParameterResponse(param))
}

// =============================
// ✏️ PUT /api/a/grade-parameters/:id
// =============================
func (ctrl *GradeAdminController) Update(c *fiber.Ctx) error {
	paramID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "id de parámetro no es válido")
	}

	var body dto.GradeParameterRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var param model.GradeParameterModel
	if err := ctrl.DB.First(&param, "grade_parameter_id = ?", paramID).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Parámetro de evaluación no encontrado")
	}

	updates := map[string]interface{}{
		"grade_parameter_name":   body.GradeParameterName,
		"grade_parameter_weight": body.GradeParameterWeight,
	}
	if err := ctrl.DB.WithContext(c.Context()).Model(&param).Updates(updates).Error; err != nil {
		log.Println("[ERROR] No se pudo actualizar el parámetro de evaluación:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo actualizar el parámetro de evaluación")
	}

	return helper.Success(c, "Parámetro de evaluación actualizado", dto.ToGradeParameterResponse(&param))
}

// =============================
// ❌ DELETE /api/a/grade-parameters/:id
// =============================
func (ctrl *GradeAdminController) Delete(c *fiber.Ctx) error {
	paramID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "id de parámetro no es válido")
	}

	res := ctrl.DB.WithContext(c.Context()).Delete(&model.GradeParameterModel{}, "grade_parameter_id = ?", paramID)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo eliminar el parámetro de evaluación")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Parámetro de evaluación no encontrado")
	}

	return helper.Success(c, "Parámetro de evaluación eliminado", nil)
}
