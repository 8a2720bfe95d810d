package dto

import (
	"github.com/google/uuid"

	"aprendia_backend/internals/features/tickets/model"
)

type TicketRequest struct {
	TicketSubject     string `json:"ticket_subject" validate:"required,max=255"`
	TicketDescription string `json:"ticket_description" validate:"required"`
	TicketType        string `json:"ticket_type" validate:"required,oneof=bug revision logic other"`
}

type TicketTriageRequest struct {
	TicketStatus     string     `json:"ticket_status" validate:"required,oneof=open in_progress resolved closed"`
	TicketAssignedTo *uuid.UUID `json:"ticket_assigned_to"`
}

type TicketCommentRequest struct {
	TicketCommentBody string `json:"ticket_comment_body" validate:"required"`
}

type TicketResponse struct {
	TicketID          uint       `json:"ticket_id"`
	TicketUserID      uuid.UUID  `json:"ticket_user_id"`
	TicketSubject     string     `json:"ticket_subject"`
	TicketDescription string     `json:"ticket_description"`
	TicketType        string     `json:"ticket_type"`
	TicketStatus      string     `json:"ticket_status"`
	TicketAssignedTo  *uuid.UUID `json:"ticket_assigned_to,omitempty"`
	TicketCreatedAt   string     `json:"ticket_created_at"`
}

type TicketCommentResponse struct {
	TicketCommentID        uint      `json:"ticket_comment_id"`
	TicketCommentTicketID  uint      `json:"ticket_comment_ticket_id"`
	TicketCommentAuthorID  uuid.UUID `json:"ticket_comment_author_id"`
	TicketCommentBody      string    `json:"ticket_comment_body"`
	TicketCommentCreatedAt string    `json:"ticket_comment_created_at"`
}

func (r *TicketRequest) ToModel(userID uuid.UUID) *model.TicketModel {
	return &model.TicketModel{
		TicketUserID:      userID,
		TicketSubject:     r.TicketSubject,
		TicketDescription: r.TicketDescription,
		TicketType:        r.TicketType,
		TicketStatus:      model.TicketStatusOpen,
	}
}

func ToTicketResponse(m *model.TicketModel) *TicketResponse {
	return &TicketResponse{
		TicketID:          m.TicketID,
		TicketUserID:      m.TicketUserID,
		TicketSubject:     m.TicketSubject,
		TicketDescription: m.TicketDescription,
		TicketType:        m.TicketType,
		TicketStatus:      m.TicketStatus,
		TicketAssignedTo:  m.TicketAssignedTo,
		TicketCreatedAt:   m.TicketCreatedAt.Format("2006-01-02 15:04:05"),
	}
}

func ToTicketCommentResponse(m *model.TicketCommentModel) *TicketCommentResponse {
	return &TicketCommentResponse{
		TicketCommentID:        m.TicketCommentID,
		TicketCommentTicketID:  m.TicketCommentTicketID,
		TicketCommentAuthorID:  m.TicketCommentAuthorID,
		TicketCommentBody:      m.TicketCommentBody,
		TicketCommentCreatedAt: m.TicketCommentCreatedAt.Format("2006-01-02 15:04:05"),
	}
}
