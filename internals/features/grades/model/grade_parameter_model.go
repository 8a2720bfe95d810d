package model

import "time"

// GradeParameterModel: parámetro de evaluación de un curso con su peso
// porcentual. Las actividades se asocian a un parámetro vía
// activity_grade_parameter_id.
type GradeParameterModel struct {
	GradeParameterID        uint      `gorm:"column:grade_parameter_id;primaryKey" json:"grade_parameter_id"`
	GradeParameterCourseID  uint      `gorm:"column:grade_parameter_course_id;not null;index" json:"grade_parameter_course_id"`
	GradeParameterName      string    `gorm:"column:grade_parameter_name;size:255;not null" json:"grade_parameter_name"`
	GradeParameterWeight    int       `gorm:"column:grade_parameter_weight;not null;default:0" json:"grade_parameter_weight"`
	GradeParameterCreatedAt time.Time `gorm:"column:grade_parameter_created_at;autoCreateTime" json:"grade_parameter_created_at"`
	GradeParameterUpdatedAt time.Time `gorm:"column:grade_parameter_updated_at;autoUpdateTime" json:"grade_parameter_updated_at"`
}

func (GradeParameterModel) TableName() string {
	return "grade_parameters"
}
