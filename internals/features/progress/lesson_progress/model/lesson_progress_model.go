package model

import (
	"time"

	"github.com/google/uuid"
)

// LessonProgressModel: una fila por usuario por lección. Se crea de forma
// perezosa en la primera vista de la lección y nunca se borra desde este
// módulo.
type LessonProgressModel struct {
	LessonProgressID          uint      `gorm:"column:lesson_progress_id;primaryKey" json:"lesson_progress_id"`
	LessonProgressLessonID    uint      `gorm:"column:lesson_progress_lesson_id;not null;uniqueIndex:idx_lesson_progress" json:"lesson_progress_lesson_id"`
	LessonProgressUserID      uuid.UUID `gorm:"column:lesson_progress_user_id;type:uuid;not null;uniqueIndex:idx_lesson_progress" json:"lesson_progress_user_id"`
	LessonProgressPercent     int       `gorm:"column:lesson_progress_percent;not null;default:0" json:"lesson_progress_percent"`
	LessonProgressIsLocked    bool      `gorm:"column:lesson_progress_is_locked;not null;default:true" json:"lesson_progress_is_locked"`
	LessonProgressIsCompleted bool      `gorm:"column:lesson_progress_is_completed;not null;default:false" json:"lesson_progress_is_completed"`
	LessonProgressIsNew       bool      `gorm:"column:lesson_progress_is_new;not null;default:false" json:"lesson_progress_is_new"`
	LessonProgressCreatedAt   time.Time `gorm:"column:lesson_progress_created_at;autoCreateTime" json:"lesson_progress_created_at"`
	LessonProgressUpdatedAt   time.Time `gorm:"column:lesson_progress_updated_at;autoUpdateTime" json:"lesson_progress_updated_at"`
}

func (LessonProgressModel) TableName() string {
	return "lesson_progress"
}
