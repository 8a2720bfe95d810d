package controller

import (
	"encoding/json"
	"fmt"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"aprendia_backend/internals/features/lms/lessons/dto"
	"aprendia_backend/internals/features/lms/lessons/model"
	progressDTO "aprendia_backend/internals/features/progress/lesson_progress/dto"
	progressService "aprendia_backend/internals/features/progress/lesson_progress/service"
	helper "aprendia_backend/internals/helpers"
)

type LessonUserController struct {
	DB *gorm.DB
}

func NewLessonUserController(db *gorm.DB) *LessonUserController {
	return &LessonUserController{DB: db}
}

// =============================
// 🔍 GET /api/u/lessons/:id
// =============================
// Detalle de la lección para el estudiante. Acceso a lección bloqueada es
// fatal para la vista: 403 con redirect al resumen del curso. La primera
// vista crea la fila de progreso (creación perezosa).
func (ctrl *LessonUserController) GetByID(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	lessonID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "id de lección no es válido")
	}

	var lesson model.LessonModel
	if err := ctrl.DB.WithContext(c.Context()).First(&lesson, "lesson_id = ?", lessonID).Error; err != nil {
		return helper.ErrorWithRedirect(c, fiber.StatusNotFound, "Lección no encontrada", "/courses")
	}

	states, err := progressService.LoadCourseStates(ctrl.DB.WithContext(c.Context()), userID, lesson.LessonCourseID)
	if err != nil {
		log.Println("[ERROR] No se pudo derivar el estado de la lección:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo cargar la lección")
	}

	var state *progressService.LessonState
	for i := range states {
		if states[i].LessonID == lesson.LessonID {
			state = &states[i]
			break
		}
	}
	if state == nil || state.IsLocked {
		return helper.ErrorWithRedirect(c, fiber.StatusForbidden,
			"Esta lección todavía está bloqueada",
			fmt.Sprintf("/courses/%d", lesson.LessonCourseID))
	}

	// primera vista: persiste la fila con el estado derivado
	if _, err := progressService.EnsureProgressRow(ctrl.DB.WithContext(c.Context()), userID, lesson.LessonID, false); err != nil {
		log.Println("[ERROR] No se pudo crear la fila de progreso:", err)
	}

	return c.JSON(fiber.Map{
		"lesson":   dto.ToLessonResponse(&lesson),
		"progress": progressDTO.ToLessonWithProgressResponse(state),
	})
}

// =============================
// 📜 GET /api/u/lessons/:id/transcription
// =============================
// Devuelve la transcripción tal como está almacenada: texto plano o
// segmentos [{start,end,text}].
func (ctrl *LessonUserController) GetTranscription(c *fiber.Ctx) error {
	lessonID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "id de lección no es válido")
	}

	var lesson model.LessonModel
	if err := ctrl.DB.WithContext(c.Context()).
		Select("lesson_id", "lesson_transcription").
		First(&lesson, "lesson_id = ?", lessonID).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Lección no encontrada")
	}

	raw := json.RawMessage(lesson.LessonTranscription)
	if len(raw) == 0 {
		raw = json.RawMessage(`""`)
	}

	return c.JSON(dto.TranscriptionResponse{Transcription: raw})
}
