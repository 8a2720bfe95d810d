package model

import (
	"time"

	"gorm.io/datatypes"
)

// Tipos de actividad
const (
	ActivityTypeDocument    = 1
	ActivityTypeInteractive = 2
)

// ActivityModel representa la tabla activities. Solo la primera actividad
// de la lección (por orden de creación) condiciona el desbloqueo de la
// lección siguiente.
type ActivityModel struct {
	ActivityID               uint           `gorm:"column:activity_id;primaryKey" json:"activity_id"`
	ActivityLessonID         uint           `gorm:"column:activity_lesson_id;not null;index" json:"activity_lesson_id"`
	ActivityGradeParameterID *uint          `gorm:"column:activity_grade_parameter_id;index" json:"activity_grade_parameter_id,omitempty"`
	ActivityName             string         `gorm:"column:activity_name;size:255;not null" json:"activity_name"`
	ActivityDescription      string         `gorm:"column:activity_description;type:text" json:"activity_description"`
	ActivityTypeID           int            `gorm:"column:activity_type_id;not null;default:1" json:"activity_type_id"`
	ActivityContent          datatypes.JSON `gorm:"column:activity_content" json:"activity_content,omitempty"`
	ActivityCreatedAt        time.Time      `gorm:"column:activity_created_at;autoCreateTime" json:"activity_created_at"`
	ActivityUpdatedAt        time.Time      `gorm:"column:activity_updated_at;autoUpdateTime" json:"activity_updated_at"`
}

func (ActivityModel) TableName() string {
	return "activities"
}
