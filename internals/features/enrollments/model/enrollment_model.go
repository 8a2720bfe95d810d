package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// EnrollmentModel: inscripción de un usuario a un curso, con las respuestas
// del formulario de inscripción.
type EnrollmentModel struct {
	EnrollmentID          uint           `gorm:"column:enrollment_id;primaryKey" json:"enrollment_id"`
	EnrollmentCourseID    uint           `gorm:"column:enrollment_course_id;not null;uniqueIndex:idx_enrollment" json:"enrollment_course_id"`
	EnrollmentUserID      uuid.UUID      `gorm:"column:enrollment_user_id;type:uuid;not null;uniqueIndex:idx_enrollment" json:"enrollment_user_id"`
	EnrollmentFullName    string         `gorm:"column:enrollment_full_name;size:255;not null" json:"enrollment_full_name"`
	EnrollmentPhone       string         `gorm:"column:enrollment_phone;size:50" json:"enrollment_phone"`
	EnrollmentMotivation  string         `gorm:"column:enrollment_motivation;type:text" json:"enrollment_motivation"`
	EnrollmentAnswers     datatypes.JSON `gorm:"column:enrollment_answers" json:"enrollment_answers,omitempty"`
	EnrollmentIsCompleted bool           `gorm:"column:enrollment_is_completed;not null;default:false" json:"enrollment_is_completed"`
	EnrollmentCreatedAt   time.Time      `gorm:"column:enrollment_created_at;autoCreateTime" json:"enrollment_created_at"`
	EnrollmentUpdatedAt   time.Time      `gorm:"column:enrollment_updated_at;autoUpdateTime" json:"enrollment_updated_at"`
}

func (EnrollmentModel) TableName() string {
	return "enrollments"
}
