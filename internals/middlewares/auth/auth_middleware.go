package auth

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	"aprendia_backend/internals/configs"
	authmodel "aprendia_backend/internals/features/users/auth/model"
)

func AuthMiddleware(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// 1) Authorization header (o cookie)
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, err.Error())
		}

		// 2) Blacklist check (una vez por request)
		if c.Locals("token_checked") == nil {
			var existing authmodel.TokenBlacklist
			if err := db.Where("token = ? AND deleted_at IS NULL", tokenString).First(&existing).Error; err == nil {
				log.Println("[WARN] Token encontrado en blacklist")
				return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token is blacklisted")
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				log.Println("[ERROR] DB error al verificar blacklist:", err)
				return fiber.NewError(fiber.StatusInternalServerError, "Internal Server Error")
			}
			c.Locals("token_checked", true)
		}

		// 3) Parse & verificación JWT
		secretKey := configs.JWTSecret
		if secretKey == "" {
			log.Println("[ERROR] JWT_SECRET vacío")
			return fiber.NewError(fiber.StatusInternalServerError, "Missing JWT Secret")
		}

		claims := jwt.MapClaims{}
		parser := jwt.Parser{SkipClaimsValidation: true}
		if _, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return []byte(secretKey), nil
		}); err != nil {
			log.Println("[ERROR] No se pudo parsear el token:", err)
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token parse error")
		}

		// 4) Validación exp manual
		if exp, ok := claims["exp"].(float64); ok {
			if time.Now().After(time.Unix(int64(exp), 0)) {
				return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token expired")
			}
		} else {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Missing exp claim")
		}

		// 5) Claims a Locals
		if sub, ok := claims["user_id"].(string); ok && sub != "" {
			c.Locals("user_id", sub)
		} else {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Missing user_id claim")
		}
		if role, ok := claims["role"].(string); ok {
			c.Locals("role", role)
		}
		if name, ok := claims["user_name"].(string); ok {
			c.Locals("user_name", name)
		}
		c.Locals("token_string", tokenString)

		return c.Next()
	}
}

func extractBearerToken(c *fiber.Ctx) (string, error) {
	authHeader := c.Get("Authorization")
	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") && parts[1] != "" {
			return strings.TrimSpace(parts[1]), nil
		}
		return "", errors.New("Unauthorized - Invalid Authorization header")
	}

	// cookie fallback
	if cookie := c.Cookies("access_token"); cookie != "" {
		return cookie, nil
	}

	return "", errors.New("Unauthorized - Missing token")
}
