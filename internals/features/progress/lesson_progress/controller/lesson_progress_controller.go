package controller

import (
	"errors"
	"fmt"
	"log"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	courseModel "aprendia_backend/internals/features/lms/courses/model"
	lessonModel "aprendia_backend/internals/features/lms/lessons/model"
	"aprendia_backend/internals/features/progress/lesson_progress/dto"
	"aprendia_backend/internals/features/progress/lesson_progress/service"
	helper "aprendia_backend/internals/helpers"
)

var validate = validator.New()

type LessonProgressController struct {
	DB *gorm.DB
}

func NewLessonProgressController(db *gorm.DB) *LessonProgressController {
	return &LessonProgressController{DB: db}
}

// =============================
// 📄 GET /api/u/courses/:courseId/lessons
// =============================
// Lista de lecciones del curso con el estado por-usuario derivado de las
// filas persistidas (recalculo de carga inicial).
func (ctrl *LessonProgressController) GetCourseLessons(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	courseID, err := strconv.Atoi(c.Params("courseId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "courseId no es válido")
	}

	if err := requireEnrollment(ctrl.DB.WithContext(c.Context()), c, uint(courseID)); err != nil {
		return err
	}

	states, err := service.LoadCourseStates(ctrl.DB.WithContext(c.Context()), userID, uint(courseID))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Curso no encontrado")
		}
		log.Println("[ERROR] No se pudo cargar el estado de las lecciones:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo cargar el curso")
	}

	resp := make([]*dto.LessonWithProgressResponse, 0, len(states))
	for i := range states {
		resp = append(resp, dto.ToLessonWithProgressResponse(&states[i]))
	}

	return c.JSON(fiber.Map{"data": resp})
}

// =============================
// 📈 POST /api/u/lessons/:id/progress
// =============================
func (ctrl *LessonProgressController) UpdateProgress(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	lessonID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "id de lección no es válido")
	}

	var body dto.UpdateProgressRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	result, err := service.UpdateProgress(ctrl.DB.WithContext(c.Context()), userID, uint(lessonID), body.Percent)
	if err != nil {
		if errors.Is(err, service.ErrLessonNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Lección no encontrada")
		}
		log.Println("[ERROR] No se pudo actualizar el progreso:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo guardar el progreso")
	}

	return helper.Success(c, "Progreso actualizado", dto.ToProgressResultResponse(result))
}

// =============================
// 🧭 GET /api/u/lessons/:id/neighbors
// =============================
// Lección desbloqueada más cercana en cada dirección; null cuando no hay
// (el cliente deshabilita la navegación).
func (ctrl *LessonProgressController) GetNeighbors(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	lessonID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "id de lección no es válido")
	}

	var lesson lessonModel.LessonModel
	if err := ctrl.DB.WithContext(c.Context()).First(&lesson, "lesson_id = ?", lessonID).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Lección no encontrada")
	}

	states, err := service.LoadCourseStates(ctrl.DB.WithContext(c.Context()), userID, lesson.LessonCourseID)
	if err != nil {
		log.Println("[ERROR] No se pudo cargar el estado de las lecciones:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo resolver la navegación")
	}

	prev := service.FindAdjacentUnlocked(states, uint(lessonID), service.DirectionPrev)
	next := service.FindAdjacentUnlocked(states, uint(lessonID), service.DirectionNext)

	return c.JSON(dto.NeighborsResponse{
		Prev: dto.ToLessonWithProgressResponse(prev),
		Next: dto.ToLessonWithProgressResponse(next),
	})
}

// requireEnrollment: gate de inscripción. Falla con redirect a pricing
// (curso pago) o al formulario de inscripción (curso gratuito).
func requireEnrollment(db *gorm.DB, c *fiber.Ctx, courseID uint) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var count int64
	if err := db.Table("enrollments").
		Where("enrollment_course_id = ? AND enrollment_user_id = ?", courseID, userID).
		Count(&count).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo verificar la inscripción")
	}
	if count > 0 {
		return nil
	}

	var course courseModel.CourseModel
	if err := db.First(&course, "course_id = ?", courseID).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Curso no encontrado")
	}
	if course.CoursePriceCOP > 0 {
		return helper.ErrorWithRedirect(c, fiber.StatusPaymentRequired,
			"No tienes una suscripción activa para este curso", "/pricing")
	}
	return helper.ErrorWithRedirect(c, fiber.StatusForbidden,
		"No estás inscrito en este curso", fmt.Sprintf("/courses/%d/enroll", courseID))
}
