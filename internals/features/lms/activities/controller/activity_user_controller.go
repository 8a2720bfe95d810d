package controller

import (
	"errors"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"aprendia_backend/internals/features/lms/activities/dto"
	"aprendia_backend/internals/features/lms/activities/model"
	"aprendia_backend/internals/features/lms/activities/service"
	helper "aprendia_backend/internals/helpers"
)

type ActivityUserController struct {
	DB *gorm.DB
}

func NewActivityUserController(db *gorm.DB) *ActivityUserController {
	return &ActivityUserController{DB: db}
}

// =============================
// 📄 GET /api/u/lessons/:id/activities
// =============================
func (ctrl *ActivityUserController) GetByLesson(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	lessonID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "id de lección no es válido")
	}

	var activities []model.ActivityModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("activity_lesson_id = ?", lessonID).
		Order("activity_created_at ASC, activity_id ASC").
		Find(&activities).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo obtener las actividades")
	}

	activityIDs := make([]uint, 0, len(activities))
	for i := range activities {
		activityIDs = append(activityIDs, activities[i].ActivityID)
	}

	byActivity := make(map[uint]*model.UserActivityModel)
	if len(activityIDs) > 0 {
		var userActivities []model.UserActivityModel
		if err := ctrl.DB.WithContext(c.Context()).
			Where("user_activity_user_id = ? AND user_activity_activity_id IN ?", userID, activityIDs).
			Find(&userActivities).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudo obtener las actividades")
		}
		for i := range userActivities {
			byActivity[userActivities[i].UserActivityActivityID] = &userActivities[i]
		}
	}

	resp := make([]*dto.ActivityResponse, 0, len(activities))
	for i := range activities {
		resp = append(resp, dto.ToActivityResponse(&activities[i], byActivity[activities[i].ActivityID]))
	}

	return c.JSON(fiber.Map{"data": resp})
}

// =============================
// ✅ POST /api/u/activities/:id/complete
// =============================
func (ctrl *ActivityUserController) Complete(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	activityID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "id de actividad no es válido")
	}

	var body dto.CompleteActivityRequest
	if err := c.BodyParser(&body); err != nil && !errors.Is(err, fiber.ErrUnprocessableEntity) {
		// body vacío permitido: la actividad documento se completa sin nota
		body = dto.CompleteActivityRequest{}
	}

	result, err := service.CompleteActivity(ctrl.DB.WithContext(c.Context()), userID, uint(activityID), body.Grade)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrActivityNotFound):
			return fiber.NewError(fiber.StatusNotFound, "Actividad no encontrada")
		case errors.Is(err, service.ErrVideoNotFinished):
			return fiber.NewError(fiber.StatusConflict, "Debes terminar el video de la lección antes de completar la actividad")
		default:
			log.Println("[ERROR] No se pudo completar la actividad:", err)
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudo completar la actividad")
		}
	}

	ua := result.UserActivity
	return helper.Success(c, "Actividad completada", dto.CompleteActivityResponse{
		ActivityID:       ua.UserActivityActivityID,
		IsCompleted:      ua.UserActivityIsCompleted,
		Grade:            ua.UserActivityGrade,
		AttemptCount:     ua.UserActivityAttemptCount,
		LastAttemptAt:    ua.UserActivityLastAttemptAt,
		UnlockedLessonID: result.UnlockedLessonID,
	})
}
