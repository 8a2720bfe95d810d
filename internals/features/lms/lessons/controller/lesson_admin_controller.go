package controller

import (
	"log"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	courseModel "aprendia_backend/internals/features/lms/courses/model"
	"aprendia_backend/internals/features/lms/lessons/dto"
	"aprendia_backend/internals/features/lms/lessons/model"
	helper "aprendia_backend/internals/helpers"
)

var validate = validator.New()

type LessonAdminController struct {
	DB *gorm.DB
}

func NewLessonAdminController(db *gorm.DB) *LessonAdminController {
	return &LessonAdminController{DB: db}
}

// =============================
// ➕ POST /api/a/lessons
// =============================
func (ctrl *LessonAdminController) Create(c *fiber.Ctx) error {
	var body dto.LessonRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var course courseModel.CourseModel
	if err := ctrl.DB.First(&course, "course_id = ?", body.LessonCourseID).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Curso no encontrado")
	}

	lesson := body.ToModel()
	if err := ctrl.DB.WithContext(c.Context()).Create(lesson).Error; err != nil {
		log.Println("[ERROR] No se pudo crear la lección:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo crear la lección")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Lección creada", dto.ToLessonResponse(lesson))
}

// =============================
// ✏️ PUT /api/a/lessons/:id
// =============================
func (ctrl *LessonAdminController) Update(c *fiber.Ctx) error {
	lessonID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "id de lección no es válido")
	}

	var body dto.LessonRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var lesson model.LessonModel
	if err := ctrl.DB.First(&lesson, "lesson_id = ?", lessonID).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Lección no encontrada")
	}

	videoKey := body.LessonCoverVideoKey
	if videoKey == "" {
		videoKey = model.NoVideoKey
	}

	updates := map[string]interface{}{
		"lesson_title":            body.LessonTitle,
		"lesson_description":      body.LessonDescription,
		"lesson_duration_minutes": body.LessonDurationMinutes,
		"lesson_cover_image_key":  body.LessonCoverImageKey,
		"lesson_cover_video_key":  videoKey,
	}
	if len(body.LessonTranscription) > 0 {
		updates["lesson_transcription"] = datatypes.JSON(body.LessonTranscription)
	}

	if err := ctrl.DB.WithContext(c.Context()).Model(&lesson).Updates(updates).Error; err != nil {
		log.Println("[ERROR] No se pudo actualizar la lección:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo actualizar la lección")
	}

	return helper.Success(c, "Lección actualizada", dto.ToLessonResponse(&lesson))
}

// =============================
// ❌ DELETE /api/a/lessons/:id
// =============================
func (ctrl *LessonAdminController) Delete(c *fiber.Ctx) error {
	lessonID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "id de lección no es válido")
	}

	res := ctrl.DB.WithContext(c.Context()).Delete(&model.LessonModel{}, "lesson_id = ?", lessonID)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo eliminar la lección")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Lección no encontrada")
	}

	return helper.Success(c, "Lección eliminada", nil)
}
