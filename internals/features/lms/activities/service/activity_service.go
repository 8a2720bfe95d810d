package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"aprendia_backend/internals/features/lms/activities/model"
	lessonModel "aprendia_backend/internals/features/lms/lessons/model"
	progressModel "aprendia_backend/internals/features/progress/lesson_progress/model"
	progressService "aprendia_backend/internals/features/progress/lesson_progress/service"
)

var (
	ErrActivityNotFound = errors.New("actividad no encontrada")
	// El video de la lección debe estar al 100% antes de completar la
	// actividad (la UI solo expone la acción tras el fin del video; el
	// servidor igualmente valida la precondición).
	ErrVideoNotFinished = errors.New("el video de la lección no está completado")
)

type CompletionResult struct {
	UserActivity     *model.UserActivityModel
	UnlockedLessonID *uint
}

// CompleteActivity marca la actividad como completada por el usuario y
// evalúa el Unlock Gate de la lección dueña. En error nada queda aplicado
// y el usuario puede reintentar.
func CompleteActivity(db *gorm.DB, userID uuid.UUID, activityID uint, grade *float64) (*CompletionResult, error) {
	var activity model.ActivityModel
	if err := db.First(&activity, "activity_id = ?", activityID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrActivityNotFound
		}
		return nil, err
	}

	var lesson lessonModel.LessonModel
	if err := db.First(&lesson, "lesson_id = ?", activity.ActivityLessonID).Error; err != nil {
		return nil, err
	}

	// precondición: video al 100% (o lección sin video)
	if lesson.HasVideo() {
		var row progressModel.LessonProgressModel
		err := db.Where("lesson_progress_user_id = ? AND lesson_progress_lesson_id = ?", userID, lesson.LessonID).
			First(&row).Error
		if errors.Is(err, gorm.ErrRecordNotFound) || (err == nil && row.LessonProgressPercent < 100) {
			return nil, ErrVideoNotFinished
		}
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	now := time.Now().UTC()

	var ua model.UserActivityModel
	err := db.Where("user_activity_user_id = ? AND user_activity_activity_id = ?", userID, activityID).
		First(&ua).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		ua = model.UserActivityModel{
			UserActivityActivityID:    activityID,
			UserActivityUserID:        userID,
			UserActivityIsCompleted:   true,
			UserActivityGrade:         grade,
			UserActivityAttemptCount:  1,
			UserActivityLastAttemptAt: &now,
		}
		if err := db.Create(&ua).Error; err != nil {
			return nil, err
		}
	case err != nil:
		return nil, err
	default:
		ua.UserActivityIsCompleted = true
		if grade != nil {
			ua.UserActivityGrade = grade
		}
		ua.UserActivityAttemptCount++
		ua.UserActivityLastAttemptAt = &now
		if err := db.Save(&ua).Error; err != nil {
			return nil, err
		}
	}

	// desbloqueo delegado al gate de la lección dueña
	unlocked, err := progressService.EvaluateUnlockForLesson(db, userID, lesson.LessonID)
	if err != nil {
		return nil, err
	}

	return &CompletionResult{UserActivity: &ua, UnlockedLessonID: unlocked}, nil
}
