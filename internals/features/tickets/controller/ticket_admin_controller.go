package controller

import (
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"aprendia_backend/internals/features/tickets/dto"
	"aprendia_backend/internals/features/tickets/model"
	helper "aprendia_backend/internals/helpers"
)

type TicketAdminController struct {
	DB *gorm.DB
}

func NewTicketAdminController(db *gorm.DB) *TicketAdminController {
	return &TicketAdminController{DB: db}
}

// =============================
// 📄 GET /api/a/tickets
// =============================
func (ctrl *TicketAdminController) GetAll(c *fiber.Ctx) error {
	params := helper.ParsePaginationWith(c, "created_at", "desc", helper.AdminOpts)

	query := ctrl.DB.WithContext(c.Context()).Model(&model.TicketModel{})

	if status := c.Query("status"); status != "" {
		query = query.Where("ticket_status = ?", status)
	}
	if ticketType := c.Query("type"); ticketType != "" {
		query = query.Where("ticket_type = ?", ticketType)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudieron obtener los tickets")
	}

	var tickets []model.TicketModel
	if err := query.
		Order("ticket_created_at " + params.SortOrder).
		Limit(params.PerPage).
		Offset(params.Offset()).
		Find(&tickets).Error; err != nil {
		log.Println("[ERROR] No se pudieron obtener los tickets:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudieron obtener los tickets")
	}

	resp := make([]*dto.TicketResponse, 0, len(tickets))
	for i := range tickets {
		resp = append(resp, dto.ToTicketResponse(&tickets[i]))
	}

	return helper.Success(c, "Tickets obtenidos", fiber.Map{
		"tickets":    resp,
		"pagination": helper.PaginationMeta(params, total),
	})
}

// =============================
// 🛠️ PUT /api/a/tickets/:id
// =============================
// Triage: cambio de estado y asignación de responsable.
func (ctrl *TicketAdminController) Triage(c *fiber.Ctx) error {
	ticketID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "id de ticket no es válido")
	}

	var body dto.TicketTriageRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var ticket model.TicketModel
	if err := ctrl.DB.First(&ticket, "ticket_id = ?", ticketID).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Ticket no encontrado")
	}

	updates := map[string]interface{}{
		"ticket_status":      body.TicketStatus,
		"ticket_assigned_to": body.TicketAssignedTo,
	}
	if err := ctrl.DB.WithContext(c.Context()).Model(&ticket).Updates(updates).Error; err != nil {
		log.Println("[ERROR] No se pudo actualizar el ticket:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo actualizar el ticket")
	}

	return helper.Success(c, "Ticket actualizado", dto.ToTicketResponse(&ticket))
}
