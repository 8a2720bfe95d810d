package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	helper "aprendia_backend/internals/helpers"

	"aprendia_backend/internals/features/users/user/dto"
	"aprendia_backend/internals/features/users/user/model"
)

var validate = validator.New()

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

// =============================
// 👤 GET /api/u/users/me
// =============================
func (ctrl *UserController) GetMe(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var user model.UserModel
	if err := ctrl.DB.WithContext(c.Context()).First(&user, "id = ?", userID).Error; err != nil {
		log.Println("[ERROR] No se pudo obtener el usuario:", err)
		return fiber.NewError(fiber.StatusNotFound, "Usuario no encontrado")
	}

	return helper.Success(c, "Usuario obtenido", dto.ToUserResponse(&user))
}

// =============================
// 📄 GET /api/a/users (paginado)
// =============================
var userSortColumns = map[string]string{
	"created_at": "created_at",
	"user_name":  "user_name",
	"email":      "email",
}

func (ctrl *UserController) GetAll(c *fiber.Ctx) error {
	p := helper.ParsePaginationWith(c, "created_at", "desc", helper.AdminOpts)
	sortCol, ok := userSortColumns[p.SortBy]
	if !ok {
		sortCol = "created_at"
	}

	var total int64
	if err := ctrl.DB.Model(&model.UserModel{}).Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo contar usuarios")
	}

	var users []model.UserModel
	if err := ctrl.DB.WithContext(c.Context()).
		Order(sortCol + " " + p.SortOrder).
		Offset(p.Offset()).Limit(p.PerPage).
		Find(&users).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo obtener usuarios")
	}

	resp := make([]*dto.UserResponse, 0, len(users))
	for i := range users {
		resp = append(resp, dto.ToUserResponse(&users[i]))
	}

	return c.JSON(fiber.Map{
		"data":       resp,
		"pagination": helper.PaginationMeta(p, total),
	})
}

// =============================
// 🛡️ PUT /api/a/users/:id/role
// =============================
func (ctrl *UserController) UpdateRole(c *fiber.Ctx) error {
	var body dto.UpdateRoleRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	id := c.Params("id")
	res := ctrl.DB.Model(&model.UserModel{}).
		Where("id = ?", id).
		Update("role", body.Role)
	if res.Error != nil {
		log.Println("[ERROR] No se pudo actualizar el rol:", res.Error)
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo actualizar el rol")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Usuario no encontrado")
	}

	return helper.Success(c, "Rol actualizado", fiber.Map{"id": id, "role": body.Role})
}
