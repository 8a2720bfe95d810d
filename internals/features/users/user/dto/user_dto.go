package dto

import (
	"aprendia_backend/internals/features/users/user/model"

	"github.com/google/uuid"
)

// Response al frontend (nunca expone el hash de password)
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	UserName  string    `json:"user_name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
	CreatedAt string    `json:"created_at"`
}

type UpdateRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=student educator admin super_admin"`
}

func ToUserResponse(m *model.UserModel) *UserResponse {
	return &UserResponse{
		ID:        m.ID,
		UserName:  m.UserName,
		Email:     m.Email,
		Role:      m.Role,
		IsActive:  m.IsActive,
		CreatedAt: m.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
