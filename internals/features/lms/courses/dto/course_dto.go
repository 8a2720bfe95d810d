package dto

import "aprendia_backend/internals/features/lms/courses/model"

type CourseRequest struct {
	CourseProgramID   *uint  `json:"course_program_id"`
	CourseTitle       string `json:"course_title" validate:"required,max=255"`
	CourseDescription string `json:"course_description"`
	CourseInstructor  string `json:"course_instructor" validate:"max=255"`
	CoursePriceCOP    int    `json:"course_price_cop" validate:"min=0"`
	CourseIsActive    *bool  `json:"course_is_active"`
}

type CourseResponse struct {
	CourseID            uint    `json:"course_id"`
	CourseProgramID     *uint   `json:"course_program_id,omitempty"`
	CourseTitle         string  `json:"course_title"`
	CourseSlug          string  `json:"course_slug"`
	CourseDescription   string  `json:"course_description"`
	CourseInstructor    string  `json:"course_instructor"`
	CourseCoverImageKey *string `json:"course_cover_image_key,omitempty"`
	CoursePriceCOP      int     `json:"course_price_cop"`
	CourseIsFree        bool    `json:"course_is_free"`
	CourseIsActive      bool    `json:"course_is_active"`
	CourseCreatedAt     string  `json:"course_created_at"`
}

func (r *CourseRequest) ToModel() *model.CourseModel {
	isActive := true
	if r.CourseIsActive != nil {
		isActive = *r.CourseIsActive
	}
	return &model.CourseModel{
		CourseProgramID:   r.CourseProgramID,
		CourseTitle:       r.CourseTitle,
		CourseDescription: r.CourseDescription,
		CourseInstructor:  r.CourseInstructor,
		CoursePriceCOP:    r.CoursePriceCOP,
		CourseIsActive:    isActive,
	}
}

func ToCourseResponse(m *model.CourseModel) *CourseResponse {
	return &CourseResponse{
		CourseID:            m.CourseID,
		CourseProgramID:     m.CourseProgramID,
		CourseTitle:         m.CourseTitle,
		CourseSlug:          m.CourseSlug,
		CourseDescription:   m.CourseDescription,
		CourseInstructor:    m.CourseInstructor,
		CourseCoverImageKey: m.CourseCoverImageKey,
		CoursePriceCOP:      m.CoursePriceCOP,
		CourseIsFree:        m.CoursePriceCOP == 0,
		CourseIsActive:      m.CourseIsActive,
		CourseCreatedAt:     m.CourseCreatedAt.Format("2006-01-02 15:04:05"),
	}
}
