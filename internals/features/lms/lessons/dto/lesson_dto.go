package dto

import (
	"encoding/json"

	"gorm.io/datatypes"

	"aprendia_backend/internals/features/lms/lessons/model"
)

// Request del panel de autoría → backend
type LessonRequest struct {
	LessonCourseID        uint    `json:"lesson_course_id" validate:"required"`
	LessonTitle           string  `json:"lesson_title" validate:"required,max=255"`
	LessonDescription     string  `json:"lesson_description"`
	LessonDurationMinutes int     `json:"lesson_duration_minutes" validate:"min=0"`
	LessonCoverImageKey   *string `json:"lesson_cover_image_key"`
	LessonCoverVideoKey   string  `json:"lesson_cover_video_key"`
	// texto plano o [{start,end,text}]
	LessonTranscription json.RawMessage `json:"lesson_transcription"`
}

// Response al frontend
type LessonResponse struct {
	LessonID              uint    `json:"lesson_id"`
	LessonCourseID        uint    `json:"lesson_course_id"`
	LessonTitle           string  `json:"lesson_title"`
	LessonDescription     string  `json:"lesson_description"`
	LessonDurationMinutes int     `json:"lesson_duration_minutes"`
	LessonCoverImageKey   *string `json:"lesson_cover_image_key,omitempty"`
	LessonCoverVideoKey   string  `json:"lesson_cover_video_key"`
	LessonCreatedAt       string  `json:"lesson_created_at"`
}

type TranscriptionResponse struct {
	Transcription json.RawMessage `json:"transcription"`
}

// Convert request → model
func (r *LessonRequest) ToModel() *model.LessonModel {
	videoKey := r.LessonCoverVideoKey
	if videoKey == "" {
		videoKey = model.NoVideoKey
	}
	return &model.LessonModel{
		LessonCourseID:        r.LessonCourseID,
		LessonTitle:           r.LessonTitle,
		LessonDescription:     r.LessonDescription,
		LessonDurationMinutes: r.LessonDurationMinutes,
		LessonCoverImageKey:   r.LessonCoverImageKey,
		LessonCoverVideoKey:   videoKey,
		LessonTranscription:   datatypes.JSON(r.LessonTranscription),
	}
}

// Convert model → response
func ToLessonResponse(m *model.LessonModel) *LessonResponse {
	return &LessonResponse{
		LessonID:              m.LessonID,
		LessonCourseID:        m.LessonCourseID,
		LessonTitle:           m.LessonTitle,
		LessonDescription:     m.LessonDescription,
		LessonDurationMinutes: m.LessonDurationMinutes,
		LessonCoverImageKey:   m.LessonCoverImageKey,
		LessonCoverVideoKey:   m.LessonCoverVideoKey,
		LessonCreatedAt:       m.LessonCreatedAt.Format("2006-01-02 15:04:05"),
	}
}
