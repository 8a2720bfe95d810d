package model

import "time"

type CourseModel struct {
	CourseID            uint      `gorm:"column:course_id;primaryKey" json:"course_id"`
	CourseProgramID     *uint     `gorm:"column:course_program_id;index" json:"course_program_id,omitempty"`
	CourseTitle         string    `gorm:"column:course_title;size:255;not null" json:"course_title"`
	// Slug estable: se genera al crear y no cambia al renombrar el curso
	CourseSlug          string    `gorm:"column:course_slug;size:255;uniqueIndex" json:"course_slug"`
	CourseDescription   string    `gorm:"column:course_description;type:text" json:"course_description"`
	CourseInstructor    string    `gorm:"column:course_instructor;size:255" json:"course_instructor"`
	CourseCoverImageKey *string   `gorm:"column:course_cover_image_key;size:255" json:"course_cover_image_key,omitempty"`
	// Precio en COP; 0 = curso gratuito (inscripción directa sin checkout)
	CoursePriceCOP  int       `gorm:"column:course_price_cop;not null;default:0" json:"course_price_cop"`
	CourseIsActive  bool      `gorm:"column:course_is_active;not null;default:true" json:"course_is_active"`
	CourseCreatedAt time.Time `gorm:"column:course_created_at;autoCreateTime" json:"course_created_at"`
	CourseUpdatedAt time.Time `gorm:"column:course_updated_at;autoUpdateTime" json:"course_updated_at"`
}

func (CourseModel) TableName() string {
	return "courses"
}
