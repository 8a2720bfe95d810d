package controller

import (
	"log"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"aprendia_backend/internals/constants"
	"aprendia_backend/internals/features/tickets/dto"
	"aprendia_backend/internals/features/tickets/model"
	helper "aprendia_backend/internals/helpers"
)

var validate = validator.New()

type TicketUserController struct {
	DB *gorm.DB
}

func NewTicketUserController(db *gorm.DB) *TicketUserController {
	return &TicketUserController{DB: db}
}

// =============================
// ➕ POST /api/u/tickets
// =============================
func (ctrl *TicketUserController) Create(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var body dto.TicketRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	ticket := body.ToModel(userID)
	if err := ctrl.DB.WithContext(c.Context()).Create(ticket).Error; err != nil {
		log.Println("[ERROR] No se pudo crear el ticket:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo crear el ticket")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Ticket creado", dto.ToTicketResponse(ticket))
}

// =============================
// 📄 GET /api/u/tickets/mine
// =============================
func (ctrl *TicketUserController) GetMine(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var tickets []model.TicketModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("ticket_user_id = ?", userID).
		Order("ticket_created_at DESC").
		Find(&tickets).Error; err != nil {
		log.Println("[ERROR] No se pudieron obtener los tickets:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudieron obtener los tickets")
	}

	resp := make([]*dto.TicketResponse, 0, len(tickets))
	for i := range tickets {
		resp = append(resp, dto.ToTicketResponse(&tickets[i]))
	}
	return helper.Success(c, "Tickets obtenidos", resp)
}

// =============================
// 🔍 GET /api/u/tickets/:id
// =============================
// El autor del ticket y los roles de gestión pueden verlo, nadie más.
func (ctrl *TicketUserController) GetByID(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	ticketID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "id de ticket no es válido")
	}

	var ticket model.TicketModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&ticket, "ticket_id = ?", ticketID).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Ticket no encontrado")
	}

	if ticket.TicketUserID != userID && !isStaff(helper.GetRoleFromToken(c)) {
		return fiber.NewError(fiber.StatusForbidden, "No tienes acceso a este ticket")
	}

	var comments []model.TicketCommentModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("ticket_comment_ticket_id = ?", ticket.TicketID).
		Order("ticket_comment_created_at ASC").
		Find(&comments).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudieron obtener los comentarios")
	}

	commentResp := make([]*dto.TicketCommentResponse, 0, len(comments))
	for i := range comments {
		commentResp = append(commentResp, dto.ToTicketCommentResponse(&comments[i]))
	}

	return helper.Success(c, "Ticket obtenido", fiber.Map{
		"ticket":   dto.ToTicketResponse(&ticket),
		"comments": commentResp,
	})
}

// =============================
// 💬 POST /api/u/tickets/:id/comments
// =============================
func (ctrl *TicketUserController) AddComment(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	ticketID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "id de ticket no es válido")
	}

	var body dto.TicketCommentRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var ticket model.TicketModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&ticket, "ticket_id = ?", ticketID).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Ticket no encontrado")
	}
	if ticket.TicketUserID != userID && !isStaff(helper.GetRoleFromToken(c)) {
		return fiber.NewError(fiber.StatusForbidden, "No tienes acceso a este ticket")
	}

	comment := &model.TicketCommentModel{
		TicketCommentTicketID: ticket.TicketID,
		TicketCommentAuthorID: userID,
		TicketCommentBody:     body.TicketCommentBody,
	}
	if err := ctrl.DB.WithContext(c.Context()).Create(comment).Error; err != nil {
		log.Println("[ERROR] No se pudo crear el comentario:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo crear el comentario")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Comentario agregado", dto.ToTicketCommentResponse(comment))
}

func isStaff(role string) bool {
	for _, r := range constants.EducatorAndAbove {
		if role == r {
			return true
		}
	}
	return false
}
