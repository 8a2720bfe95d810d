package dto

import "aprendia_backend/internals/features/lms/programs/model"

type ProgramRequest struct {
	ProgramTitle       string  `json:"program_title" validate:"required,max=255"`
	ProgramDescription string  `json:"program_description"`
	ProgramImageKey    *string `json:"program_image_key"`
}

type ProgramResponse struct {
	ProgramID          uint    `json:"program_id"`
	ProgramTitle       string  `json:"program_title"`
	ProgramDescription string  `json:"program_description"`
	ProgramImageKey    *string `json:"program_image_key,omitempty"`
	ProgramCreatedAt   string  `json:"program_created_at"`
}

func (r *ProgramRequest) ToModel() *model.ProgramModel {
	return &model.ProgramModel{
		ProgramTitle:       r.ProgramTitle,
		ProgramDescription: r.ProgramDescription,
		ProgramImageKey:    r.ProgramImageKey,
	}
}

func ToProgramResponse(m *model.ProgramModel) *ProgramResponse {
	return &ProgramResponse{
		ProgramID:          m.ProgramID,
		ProgramTitle:       m.ProgramTitle,
		ProgramDescription: m.ProgramDescription,
		ProgramImageKey:    m.ProgramImageKey,
		ProgramCreatedAt:   m.ProgramCreatedAt.Format("2006-01-02 15:04:05"),
	}
}
