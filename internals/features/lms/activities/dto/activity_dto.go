package dto

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"

	"aprendia_backend/internals/features/lms/activities/model"
)

type ActivityRequest struct {
	ActivityLessonID         uint            `json:"activity_lesson_id" validate:"required"`
	ActivityGradeParameterID *uint           `json:"activity_grade_parameter_id"`
	ActivityName             string          `json:"activity_name" validate:"required,max=255"`
	ActivityDescription      string          `json:"activity_description"`
	ActivityTypeID           int             `json:"activity_type_id" validate:"required,oneof=1 2"`
	ActivityContent          json.RawMessage `json:"activity_content"`
}

type ActivityResponse struct {
	ActivityID               uint            `json:"activity_id"`
	ActivityLessonID         uint            `json:"activity_lesson_id"`
	ActivityGradeParameterID *uint           `json:"activity_grade_parameter_id,omitempty"`
	ActivityName             string          `json:"activity_name"`
	ActivityDescription      string          `json:"activity_description"`
	ActivityTypeID           int             `json:"activity_type_id"`
	ActivityContent          json.RawMessage `json:"activity_content,omitempty"`
	IsCompleted              bool            `json:"is_completed"`
	Grade                    *float64        `json:"grade,omitempty"`
}

type CompleteActivityRequest struct {
	Grade *float64 `json:"grade" validate:"omitempty,min=0,max=100"`
}

type CompleteActivityResponse struct {
	ActivityID       uint       `json:"activity_id"`
	IsCompleted      bool       `json:"is_completed"`
	Grade            *float64   `json:"grade,omitempty"`
	AttemptCount     int        `json:"attempt_count"`
	LastAttemptAt    *time.Time `json:"last_attempt_at,omitempty"`
	UnlockedLessonID *uint      `json:"unlocked_lesson_id,omitempty"`
}

func (r *ActivityRequest) ToModel() *model.ActivityModel {
	return &model.ActivityModel{
		ActivityLessonID:         r.ActivityLessonID,
		ActivityGradeParameterID: r.ActivityGradeParameterID,
		ActivityName:             r.ActivityName,
		ActivityDescription:      r.ActivityDescription,
		ActivityTypeID:           r.ActivityTypeID,
		ActivityContent:          datatypes.JSON(r.ActivityContent),
	}
}

// ToActivityResponse combina la actividad con la resolución del usuario
// (nil cuando todavía no la ha intentado).
func ToActivityResponse(m *model.ActivityModel, ua *model.UserActivityModel) *ActivityResponse {
	resp := &ActivityResponse{
		ActivityID:               m.ActivityID,
		ActivityLessonID:         m.ActivityLessonID,
		ActivityGradeParameterID: m.ActivityGradeParameterID,
		ActivityName:             m.ActivityName,
		ActivityDescription:      m.ActivityDescription,
		ActivityTypeID:           m.ActivityTypeID,
		ActivityContent:          json.RawMessage(m.ActivityContent),
	}
	if ua != nil {
		resp.IsCompleted = ua.UserActivityIsCompleted
		resp.Grade = ua.UserActivityGrade
	}
	return resp
}
