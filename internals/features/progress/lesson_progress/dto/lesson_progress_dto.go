package dto

import (
	"aprendia_backend/internals/features/progress/lesson_progress/service"
)

type UpdateProgressRequest struct {
	Percent float64 `json:"percent" validate:"min=0,max=100"`
}

// LessonWithProgressResponse conserva los nombres de campo legados que el
// frontend ya consume (isLocked / porcentajecompletado / isCompleted /
// isNew / courseTitle) junto a los campos de la lección.
type LessonWithProgressResponse struct {
	LessonID             uint   `json:"lesson_id"`
	LessonCourseID       uint   `json:"lesson_course_id"`
	LessonTitle          string `json:"lesson_title"`
	LessonDuration       int    `json:"lesson_duration_minutes"`
	LessonCoverVideoKey  string `json:"lesson_cover_video_key"`
	IsLocked             bool   `json:"isLocked"`
	PorcentajeCompletado int    `json:"porcentajecompletado"`
	IsCompleted          bool   `json:"isCompleted"`
	IsNew                bool   `json:"isNew"`
	CourseTitle          string `json:"courseTitle"`
}

type ProgressResultResponse struct {
	PorcentajeCompletado int   `json:"porcentajecompletado"`
	CompletedNow         bool  `json:"completed_now"`
	UnlockedLessonID     *uint `json:"unlocked_lesson_id,omitempty"`
}

type NeighborsResponse struct {
	Prev *LessonWithProgressResponse `json:"prev"`
	Next *LessonWithProgressResponse `json:"next"`
}

func ToLessonWithProgressResponse(st *service.LessonState) *LessonWithProgressResponse {
	if st == nil {
		return nil
	}
	return &LessonWithProgressResponse{
		LessonID:             st.LessonID,
		LessonCourseID:       st.CourseID,
		LessonTitle:          st.Title,
		LessonDuration:       st.DurationMinutes,
		LessonCoverVideoKey:  st.CoverVideoKey,
		IsLocked:             st.IsLocked,
		PorcentajeCompletado: st.Percent,
		IsCompleted:          st.IsCompleted,
		IsNew:                st.IsNew,
		CourseTitle:          st.CourseTitle,
	}
}

func ToProgressResultResponse(r *service.ProgressResult) *ProgressResultResponse {
	return &ProgressResultResponse{
		PorcentajeCompletado: r.Percent,
		CompletedNow:         r.CompletedNow,
		UnlockedLessonID:     r.UnlockedLessonID,
	}
}
