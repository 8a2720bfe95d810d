package controller

import (
	"errors"
	"log"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"aprendia_backend/internals/features/enrollments/dto"
	"aprendia_backend/internals/features/enrollments/model"
	"aprendia_backend/internals/features/enrollments/service"
	courseModel "aprendia_backend/internals/features/lms/courses/model"
	userModel "aprendia_backend/internals/features/users/user/model"
	helper "aprendia_backend/internals/helpers"
)

var validate = validator.New()

type EnrollmentController struct {
	DB *gorm.DB
}

func NewEnrollmentController(db *gorm.DB) *EnrollmentController {
	return &EnrollmentController{DB: db}
}

// =============================
// ✅ GET /api/u/courses/:id/enrolled
// =============================
func (ctrl *EnrollmentController) GetEnrolled(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	courseID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "id de curso no es válido")
	}

	var count int64
	if err := ctrl.DB.WithContext(c.Context()).
		Model(&model.EnrollmentModel{}).
		Where("enrollment_course_id = ? AND enrollment_user_id = ?", courseID, userID).
		Count(&count).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo verificar la inscripción")
	}

	return c.JSON(dto.EnrolledResponse{Enrolled: count > 0})
}

// =============================
// 📝 POST /api/u/courses/:id/enroll
// =============================
// Formulario de inscripción. Los cursos de pago exigen pasar primero por
// el checkout; aquí solo se inscriben cursos gratuitos.
func (ctrl *EnrollmentController) Enroll(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	courseID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "id de curso no es válido")
	}

	var body dto.EnrollmentRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var course courseModel.CourseModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&course, "course_id = ? AND course_is_active = ?", courseID, true).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Curso no encontrado")
	}
	if course.CoursePriceCOP > 0 {
		return helper.ErrorWithRedirect(c, fiber.StatusPaymentRequired,
			"Este curso requiere pago antes de la inscripción", "/pricing")
	}

	enrollment := body.ToModel(course.CourseID, userID)
	if err := ctrl.DB.WithContext(c.Context()).Create(enrollment).Error; err != nil {
		if isUniqueViolation(err) {
			return fiber.NewError(fiber.StatusConflict, "Ya estás inscrito en este curso")
		}
		log.Println("[ERROR] No se pudo registrar la inscripción:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo registrar la inscripción")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Inscripción registrada", dto.ToEnrollmentResponse(enrollment))
}

// =============================
// 💳 POST /api/u/courses/:id/checkout
// =============================
// Genera la transacción Snap de Midtrans para un curso de pago.
func (ctrl *EnrollmentController) Checkout(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	courseID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "id de curso no es válido")
	}

	var course courseModel.CourseModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&course, "course_id = ? AND course_is_active = ?", courseID, true).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Curso no encontrado")
	}
	if course.CoursePriceCOP <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Este curso es gratuito, usa la inscripción directa")
	}

	var user userModel.UserModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&user, "id = ?", userID).Error; err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Sesión no iniciada")
	}

	orderID, token, redirectURL, err := service.GenerateSnapToken(&course, service.CustomerInput{
		FullName: user.UserName,
		Email:    user.Email,
	})
	if err != nil {
		log.Println("[ERROR] No se pudo crear la transacción de pago:", err)
		return fiber.NewError(fiber.StatusBadGateway, "No se pudo crear la transacción de pago")
	}

	return helper.Success(c, "Transacción creada", dto.CheckoutResponse{
		OrderID:     orderID,
		SnapToken:   token,
		RedirectURL: redirectURL,
	})
}

// Unique violation Postgres (SQLSTATE 23505)
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
