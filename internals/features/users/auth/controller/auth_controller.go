package controller

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	"aprendia_backend/internals/configs"
	authdto "aprendia_backend/internals/features/users/auth/dto"
	"aprendia_backend/internals/features/users/auth/service"
	userdto "aprendia_backend/internals/features/users/user/dto"
	userModel "aprendia_backend/internals/features/users/user/model"
	helper "aprendia_backend/internals/helpers"
)

var validate = validator.New()

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

// =============================
// 📝 POST /api/public/auth/register
// =============================
func (ctrl *AuthController) Register(c *fiber.Ctx) error {
	var body authdto.RegisterRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	user, err := service.Register(ctrl.DB.WithContext(c.Context()), body.UserName, body.Email, body.Password)
	if err != nil {
		return err
	}

	return ctrl.respondWithTokens(c, fiber.StatusCreated, "Registro exitoso", user)
}

// =============================
// 🔑 POST /api/public/auth/login
// =============================
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var body authdto.LoginRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	user, err := service.Login(ctrl.DB.WithContext(c.Context()), body.Email, body.Password)
	if err != nil {
		return err
	}

	return ctrl.respondWithTokens(c, fiber.StatusOK, "Inicio de sesión exitoso", user)
}

// =============================
// 🌐 POST /api/public/auth/google
// =============================
func (ctrl *AuthController) GoogleLogin(c *fiber.Ctx) error {
	var body authdto.GoogleLoginRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	user, err := service.GoogleLogin(ctrl.DB.WithContext(c.Context()), body.IDToken)
	if err != nil {
		return err
	}

	return ctrl.respondWithTokens(c, fiber.StatusOK, "Inicio de sesión exitoso", user)
}

// =============================
// ♻️ POST /api/public/auth/refresh
// =============================
func (ctrl *AuthController) Refresh(c *fiber.Ctx) error {
	var body authdto.RefreshRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	userID, err := service.ParseRefreshToken(body.RefreshToken)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Refresh token inválido")
	}

	var user userModel.UserModel
	if err := ctrl.DB.First(&user, "id = ?", userID).Error; err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Usuario no encontrado")
	}

	return ctrl.respondWithTokens(c, fiber.StatusOK, "Token renovado", &user)
}

// =============================
// 🚪 POST /api/u/auth/logout
// =============================
func (ctrl *AuthController) Logout(c *fiber.Ctx) error {
	tokenString, _ := c.Locals("token_string").(string)
	if tokenString == "" {
		return fiber.NewError(fiber.StatusUnauthorized, "Sesión no iniciada")
	}

	// exp del claim para limitar la vida de la entrada en blacklist
	expiredAt := time.Now().Add(2 * time.Hour)
	claims := jwt.MapClaims{}
	parser := jwt.Parser{SkipClaimsValidation: true}
	if _, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(configs.JWTSecret), nil
	}); err == nil {
		if exp, ok := claims["exp"].(float64); ok {
			expiredAt = time.Unix(int64(exp), 0)
		}
	}

	if err := service.Logout(ctrl.DB.WithContext(c.Context()), tokenString, expiredAt); err != nil {
		return err
	}

	return helper.Success(c, "Sesión cerrada", nil)
}

func (ctrl *AuthController) respondWithTokens(c *fiber.Ctx, code int, message string, user *userModel.UserModel) error {
	accessToken, refreshToken, err := service.GenerateTokenPair(user)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo generar el token")
	}
	if err := service.StoreRefreshToken(ctrl.DB, user, refreshToken); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo guardar el refresh token")
	}

	return helper.SuccessWithCode(c, code, message, authdto.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         userdto.ToUserResponse(user),
	})
}
