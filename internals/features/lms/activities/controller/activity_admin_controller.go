package controller

import (
	"log"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"aprendia_backend/internals/features/lms/activities/dto"
	"aprendia_backend/internals/features/lms/activities/model"
	helper "aprendia_backend/internals/helpers"
)

var validate = validator.New()

type ActivityAdminController struct {
	DB *gorm.DB
}

func NewActivityAdminController(db *gorm.DB) *ActivityAdminController {
	return &ActivityAdminController{DB: db}
}

// =============================
// ➕ POST /api/a/activities
// =============================
func (ctrl *ActivityAdminController) Create(c *fiber.Ctx) error {
	var body dto.ActivityRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	activity := body.ToModel()
	if err := ctrl.DB.WithContext(c.Context()).Create(activity).Error; err != nil {
		log.Println("[ERROR] No se pudo crear la actividad:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo crear la actividad")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Actividad creada", dto.ToActivityResponse(activity, nil))
}

// =============================
// ✏️ PUT /api/a/activities/:id
// =============================
func (ctrl *ActivityAdminController) Update(c *fiber.Ctx) error {
	activityID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "id de actividad no es válido")
	}

	var body dto.ActivityRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var activity model.ActivityModel
	if err := ctrl.DB.First(&activity, "activity_id = ?", activityID).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Actividad no encontrada")
	}

	updates := map[string]interface{}{
		"activity_name":               body.ActivityName,
		"activity_description":        body.ActivityDescription,
		"activity_type_id":            body.ActivityTypeID,
		"activity_grade_parameter_id": body.ActivityGradeParameterID,
	}
	if len(body.ActivityContent) > 0 {
		updates["activity_content"] = datatypes.JSON(body.ActivityContent)
	}

	if err := ctrl.DB.WithContext(c.Context()).Model(&activity).Updates(updates).Error; err != nil {
		log.Println("[ERROR] No se pudo actualizar la actividad:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo actualizar la actividad")
	}

	return helper.Success(c, "Actividad actualizada", dto.ToActivityResponse(&activity, nil))
}

// =============================
// ❌ DELETE /api/a/activities/:id
// =============================
func (ctrl *ActivityAdminController) Delete(c *fiber.Ctx) error {
	activityID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "id de actividad no es válido")
	}

	res := ctrl.DB.WithContext(c.Context()).Delete(&model.ActivityModel{}, "activity_id = ?", activityID)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo eliminar la actividad")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Actividad no encontrada")
	}

	return helper.Success(c, "Actividad eliminada", nil)
}
