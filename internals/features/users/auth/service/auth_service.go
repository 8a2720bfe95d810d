package service

import (
	"errors"
	"log"
	"time"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"aprendia_backend/internals/configs"
	"aprendia_backend/internals/constants"
	authModel "aprendia_backend/internals/features/users/auth/model"
	userModel "aprendia_backend/internals/features/users/user/model"
)

// Register crea el usuario con rol student y el password hasheado.
func Register(db *gorm.DB, userName, email, password string) (*userModel.UserModel, error) {
	var count int64
	if err := db.Model(&userModel.UserModel{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "No se pudo verificar el correo")
	}
	if count > 0 {
		return nil, fiber.NewError(fiber.StatusConflict, "El correo ya está registrado")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "No se pudo procesar la contraseña")
	}

	user := userModel.UserModel{
		UserName: userName,
		Email:    email,
		Password: string(hash),
		Role:     constants.RoleStudent,
	}
	if err := db.Create(&user).Error; err != nil {
		log.Println("[ERROR] No se pudo crear el usuario:", err)
		return nil, fiber.NewError(fiber.StatusInternalServerError, "No se pudo crear el usuario")
	}

	return &user, nil
}

// Login valida credenciales y devuelve el usuario.
func Login(db *gorm.DB, email, password string) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusUnauthorized, "Credenciales inválidas")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Internal Server Error")
	}
	if !user.IsActive {
		return nil, fiber.NewError(fiber.StatusForbidden, "Cuenta desactivada")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Credenciales inválidas")
	}
	return &user, nil
}

// GoogleLogin verifica el id_token contra el client id configurado y
// crea el usuario en el primer inicio de sesión.
func GoogleLogin(db *gorm.DB, idToken string) (*userModel.UserModel, error) {
	if configs.GoogleClientID == "" {
		return nil, fiber.NewError(fiber.StatusServiceUnavailable, "Login con Google no está habilitado")
	}

	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(idToken, []string{configs.GoogleClientID}); err != nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Token de Google inválido")
	}

	claimSet, err := googleAuthIDTokenVerifier.Decode(idToken)
	if err != nil || claimSet.Email == "" {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Token de Google inválido")
	}

	var user userModel.UserModel
	err = db.Where("google_id = ? OR email = ?", claimSet.Sub, claimSet.Email).First(&user).Error
	switch {
	case err == nil:
		if user.GoogleID == nil {
			googleID := claimSet.Sub
			if err := db.Model(&user).Update("google_id", googleID).Error; err != nil {
				log.Println("[WARN] No se pudo enlazar google_id:", err)
			}
		}
		return &user, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		googleID := claimSet.Sub
		name := claimSet.Name
		if name == "" {
			name = claimSet.Email
		}
		user = userModel.UserModel{
			UserName: name,
			Email:    claimSet.Email,
			GoogleID: &googleID,
			Role:     constants.RoleStudent,
		}
		if err := db.Create(&user).Error; err != nil {
			log.Println("[ERROR] No se pudo crear el usuario (google):", err)
			return nil, fiber.NewError(fiber.StatusInternalServerError, "No se pudo crear el usuario")
		}
		return &user, nil
	default:
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Internal Server Error")
	}
}

// Logout agrega el access token a la blacklist hasta su expiración natural.
func Logout(db *gorm.DB, tokenString string, expiredAt time.Time) error {
	entry := authModel.TokenBlacklist{
		Token:     tokenString,
		ExpiredAt: expiredAt,
	}
	if err := db.Create(&entry).Error; err != nil {
		log.Println("[ERROR] No se pudo registrar el token en blacklist:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo cerrar sesión")
	}
	return nil
}

// StoreRefreshToken persiste el hash del refresh token.
func StoreRefreshToken(db *gorm.DB, user *userModel.UserModel, refreshToken string) error {
	rt := authModel.RefreshToken{
		UserID:    user.ID,
		TokenHash: ComputeRefreshHash(refreshToken),
		ExpiresAt: time.Now().UTC().Add(refreshTokenTTL),
	}
	return db.Create(&rt).Error
}
