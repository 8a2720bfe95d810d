package dto

import (
	"encoding/json"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"aprendia_backend/internals/features/enrollments/model"
)

type EnrollmentRequest struct {
	EnrollmentFullName   string          `json:"enrollment_full_name" validate:"required,max=255"`
	EnrollmentPhone      string          `json:"enrollment_phone" validate:"max=50"`
	EnrollmentMotivation string          `json:"enrollment_motivation"`
	EnrollmentAnswers    json.RawMessage `json:"enrollment_answers"`
}

type EnrollmentResponse struct {
	EnrollmentID          uint            `json:"enrollment_id"`
	EnrollmentCourseID    uint            `json:"enrollment_course_id"`
	EnrollmentFullName    string          `json:"enrollment_full_name"`
	EnrollmentPhone       string          `json:"enrollment_phone"`
	EnrollmentMotivation  string          `json:"enrollment_motivation"`
	EnrollmentAnswers     json.RawMessage `json:"enrollment_answers,omitempty"`
	EnrollmentIsCompleted bool            `json:"enrollment_is_completed"`
	EnrollmentCreatedAt   string          `json:"enrollment_created_at"`
}

type EnrolledResponse struct {
	Enrolled bool `json:"enrolled"`
}

type CheckoutResponse struct {
	OrderID     string `json:"order_id"`
	SnapToken   string `json:"snap_token"`
	RedirectURL string `json:"redirect_url"`
}

func (r *EnrollmentRequest) ToModel(courseID uint, userID uuid.UUID) *model.EnrollmentModel {
	m := &model.EnrollmentModel{
		EnrollmentCourseID:   courseID,
		EnrollmentUserID:     userID,
		EnrollmentFullName:   r.EnrollmentFullName,
		EnrollmentPhone:      r.EnrollmentPhone,
		EnrollmentMotivation: r.EnrollmentMotivation,
	}
	if len(r.EnrollmentAnswers) > 0 {
		m.EnrollmentAnswers = datatypes.JSON(r.EnrollmentAnswers)
	}
	return m
}

func ToEnrollmentResponse(m *model.EnrollmentModel) *EnrollmentResponse {
	return &EnrollmentResponse{
		EnrollmentID:          m.EnrollmentID,
		EnrollmentCourseID:    m.EnrollmentCourseID,
		EnrollmentFullName:    m.EnrollmentFullName,
		EnrollmentPhone:       m.EnrollmentPhone,
		EnrollmentMotivation:  m.EnrollmentMotivation,
		EnrollmentAnswers:     json.RawMessage(m.EnrollmentAnswers),
		EnrollmentIsCompleted: m.EnrollmentIsCompleted,
		EnrollmentCreatedAt:   m.EnrollmentCreatedAt.Format("2006-01-02 15:04:05"),
	}
}
