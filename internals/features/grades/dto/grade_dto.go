package dto

import "aprendia_backend/internals/features/grades/model"

type GradeParameterRequest struct {
	GradeParameterCourseID uint   `json:"grade_parameter_course_id" validate:"required"`
	GradeParameterName     string `json:"grade_parameter_name" validate:"required,max=255"`
	GradeParameterWeight   int    `json:"grade_parameter_weight" validate:"min=0,max=100"`
}

type GradeParameterResponse struct {
	GradeParameterID       uint   `json:"grade_parameter_id"`
	GradeParameterCourseID uint   `json:"grade_parameter_course_id"`
	GradeParameterName     string `json:"grade_parameter_name"`
	GradeParameterWeight   int    `json:"grade_parameter_weight"`
}

func (r *GradeParameterRequest) ToModel() *model.GradeParameterModel {
	return &model.GradeParameterModel{
		GradeParameterCourseID: r.GradeParameterCourseID,
		GradeParameterName:     r.GradeParameterName,
		GradeParameterWeight:   r.GradeParameterWeight,
	}
}

func ToGradeParameterResponse(m *model.GradeParameterModel) *GradeParameterResponse {
	return &GradeParameterResponse{
		GradeParameterID:       m.GradeParameterID,
		GradeParameterCourseID: m.GradeParameterCourseID,
		GradeParameterName:     m.GradeParameterName,
		GradeParameterWeight:   m.GradeParameterWeight,
	}
}

// ParameterSummary: nota promedio del parámetro para un usuario.
type ParameterSummary struct {
	GradeParameterID   uint     `json:"grade_parameter_id"`
	GradeParameterName string   `json:"grade_parameter_name"`
	Weight             int      `json:"weight"`
	ActivityCount      int      `json:"activity_count"`
	GradedCount        int      `json:"graded_count"`
	AverageGrade       *float64 `json:"average_grade"`
	IsCompleted        bool     `json:"is_completed"`
}

type CourseGradeSummary struct {
	CourseID    uint               `json:"course_id"`
	Parameters  []ParameterSummary `json:"parameters"`
	FinalGrade  *float64           `json:"final_grade"`
	TotalWeight int                `json:"total_weight"`
}
