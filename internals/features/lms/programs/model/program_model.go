package model

import "time"

type ProgramModel struct {
	ProgramID          uint      `gorm:"column:program_id;primaryKey" json:"program_id"`
	ProgramTitle       string    `gorm:"column:program_title;size:255;not null" json:"program_title"`
	ProgramDescription string    `gorm:"column:program_description;type:text" json:"program_description"`
	ProgramImageKey    *string   `gorm:"column:program_image_key;size:255" json:"program_image_key,omitempty"`
	ProgramCreatedAt   time.Time `gorm:"column:program_created_at;autoCreateTime" json:"program_created_at"`
	ProgramUpdatedAt   time.Time `gorm:"column:program_updated_at;autoUpdateTime" json:"program_updated_at"`
}

func (ProgramModel) TableName() string {
	return "programs"
}
