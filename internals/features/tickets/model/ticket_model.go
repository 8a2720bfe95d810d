package model

import (
	"time"

	"github.com/google/uuid"
)

// Tipos y estados de ticket de soporte
const (
	TicketTypeBug      = "bug"
	TicketTypeRevision = "revision"
	TicketTypeLogic    = "logic"
	TicketTypeOther    = "other"

	TicketStatusOpen       = "open"
	TicketStatusInProgress = "in_progress"
	TicketStatusResolved   = "resolved"
	TicketStatusClosed     = "closed"
)

type TicketModel struct {
	TicketID          uint       `gorm:"column:ticket_id;primaryKey" json:"ticket_id"`
	TicketUserID      uuid.UUID  `gorm:"column:ticket_user_id;type:uuid;not null;index" json:"ticket_user_id"`
	TicketSubject     string     `gorm:"column:ticket_subject;size:255;not null" json:"ticket_subject"`
	TicketDescription string     `gorm:"column:ticket_description;type:text;not null" json:"ticket_description"`
	TicketType        string     `gorm:"column:ticket_type;type:varchar(20);not null;default:'other'" json:"ticket_type"`
	TicketStatus      string     `gorm:"column:ticket_status;type:varchar(20);not null;default:'open'" json:"ticket_status"`
	TicketAssignedTo  *uuid.UUID `gorm:"column:ticket_assigned_to;type:uuid" json:"ticket_assigned_to,omitempty"`
	TicketCreatedAt   time.Time  `gorm:"column:ticket_created_at;autoCreateTime" json:"ticket_created_at"`
	TicketUpdatedAt   time.Time  `gorm:"column:ticket_updated_at;autoUpdateTime" json:"ticket_updated_at"`
}

func (TicketModel) TableName() string {
	return "tickets"
}

type TicketCommentModel struct {
	TicketCommentID        uint      `gorm:"column:ticket_comment_id;primaryKey" json:"ticket_comment_id"`
	TicketCommentTicketID  uint      `gorm:"column:ticket_comment_ticket_id;not null;index" json:"ticket_comment_ticket_id"`
	TicketCommentAuthorID  uuid.UUID `gorm:"column:ticket_comment_author_id;type:uuid;not null" json:"ticket_comment_author_id"`
	TicketCommentBody      string    `gorm:"column:ticket_comment_body;type:text;not null" json:"ticket_comment_body"`
	TicketCommentCreatedAt time.Time `gorm:"column:ticket_comment_created_at;autoCreateTime" json:"ticket_comment_created_at"`
}

func (TicketCommentModel) TableName() string {
	return "ticket_comments"
}
