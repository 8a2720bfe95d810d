package model

import (
	"time"

	"gorm.io/datatypes"
)

// Sentinela para lecciones sin video.
const NoVideoKey = "none"

// LessonModel representa la tabla lessons. El orden de las lecciones dentro
// de un curso se deriva de lesson_created_at ascendente (no hay columna
// order explícita).
type LessonModel struct {
	LessonID              uint           `gorm:"column:lesson_id;primaryKey" json:"lesson_id"`
	LessonCourseID        uint           `gorm:"column:lesson_course_id;not null;index" json:"lesson_course_id"`
	LessonTitle           string         `gorm:"column:lesson_title;size:255;not null" json:"lesson_title"`
	LessonDescription     string         `gorm:"column:lesson_description;type:text" json:"lesson_description"`
	LessonDurationMinutes int            `gorm:"column:lesson_duration_minutes;not null;default:0" json:"lesson_duration_minutes"`
	LessonCoverImageKey   *string        `gorm:"column:lesson_cover_image_key;size:255" json:"lesson_cover_image_key,omitempty"`
	LessonCoverVideoKey   string         `gorm:"column:lesson_cover_video_key;size:255;not null;default:'none'" json:"lesson_cover_video_key"`
	// Transcripción del video: texto plano o [{start,end,text}]
	LessonTranscription datatypes.JSON `gorm:"column:lesson_transcription" json:"lesson_transcription,omitempty"`
	LessonCreatedAt     time.Time      `gorm:"column:lesson_created_at;autoCreateTime" json:"lesson_created_at"`
	LessonUpdatedAt     time.Time      `gorm:"column:lesson_updated_at;autoUpdateTime" json:"lesson_updated_at"`
}

func (LessonModel) TableName() string {
	return "lessons"
}

// HasVideo indica si la lección tiene video asociado.
func (m *LessonModel) HasVideo() bool {
	return m.LessonCoverVideoKey != "" && m.LessonCoverVideoKey != NoVideoKey
}
