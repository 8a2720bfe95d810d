package model

import (
	"time"

	"github.com/google/uuid"
)

// UserActivityModel guarda la resolución de una actividad por usuario.
type UserActivityModel struct {
	UserActivityID            uint       `gorm:"column:user_activity_id;primaryKey" json:"user_activity_id"`
	UserActivityActivityID    uint       `gorm:"column:user_activity_activity_id;not null;uniqueIndex:idx_user_activity" json:"user_activity_activity_id"`
	UserActivityUserID        uuid.UUID  `gorm:"column:user_activity_user_id;type:uuid;not null;uniqueIndex:idx_user_activity" json:"user_activity_user_id"`
	UserActivityIsCompleted   bool       `gorm:"column:user_activity_is_completed;not null;default:false" json:"user_activity_is_completed"`
	UserActivityGrade         *float64   `gorm:"column:user_activity_grade" json:"user_activity_grade,omitempty"`
	UserActivityAttemptCount  int        `gorm:"column:user_activity_attempt_count;not null;default:0" json:"user_activity_attempt_count"`
	UserActivityLastAttemptAt *time.Time `gorm:"column:user_activity_last_attempt_at" json:"user_activity_last_attempt_at,omitempty"`
	UserActivityCreatedAt     time.Time  `gorm:"column:user_activity_created_at;autoCreateTime" json:"user_activity_created_at"`
	UserActivityUpdatedAt     time.Time  `gorm:"column:user_activity_updated_at;autoUpdateTime" json:"user_activity_updated_at"`
}

func (UserActivityModel) TableName() string {
	return "user_activities"
}
