package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"aprendia_backend/internals/configs"
	userModel "aprendia_backend/internals/features/users/user/model"
)

const (
	accessTokenTTL  = 2 * time.Hour
	refreshTokenTTL = 30 * 24 * time.Hour
)

// GenerateTokenPair firma el access token (claims user_id/user_name/role)
// y un refresh token opaco firmado con el secret de refresh.
func GenerateTokenPair(u *userModel.UserModel) (accessToken, refreshToken string, err error) {
	if configs.JWTSecret == "" || configs.JWTRefreshSecret == "" {
		return "", "", errors.New("JWT secrets no configurados")
	}

	now := time.Now().UTC()

	accessClaims := jwt.MapClaims{
		"user_id":   u.ID.String(),
		"user_name": u.UserName,
		"role":      u.Role,
		"iat":       now.Unix(),
		"exp":       now.Add(accessTokenTTL).Unix(),
	}
	accessToken, err = jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims).
		SignedString([]byte(configs.JWTSecret))
	if err != nil {
		return "", "", err
	}

	refreshClaims := jwt.MapClaims{
		"user_id": u.ID.String(),
		"iat":     now.Unix(),
		"exp":     now.Add(refreshTokenTTL).Unix(),
	}
	refreshToken, err = jwt.NewWithClaims(jwt.SigningMethodHS256, refreshClaims).
		SignedString([]byte(configs.JWTRefreshSecret))
	if err != nil {
		return "", "", err
	}

	return accessToken, refreshToken, nil
}

// ParseRefreshToken valida el refresh token y devuelve el user_id.
func ParseRefreshToken(tokenString string) (string, error) {
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(configs.JWTRefreshSecret), nil
	})
	if err != nil {
		return "", err
	}
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", errors.New("refresh token sin user_id")
	}
	return userID, nil
}

// ComputeRefreshHash guarda solo el HMAC del refresh token en DB.
func ComputeRefreshHash(token string) []byte {
	mac := hmac.New(sha256.New, []byte(configs.JWTRefreshSecret))
	mac.Write([]byte(token))
	return mac.Sum(nil)
}
