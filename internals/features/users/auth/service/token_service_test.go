package service

import (
	"testing"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aprendia_backend/internals/configs"
	userModel "aprendia_backend/internals/features/users/user/model"
)

func setTestSecrets(t *testing.T) {
	t.Helper()
	prevAccess, prevRefresh := configs.JWTSecret, configs.JWTRefreshSecret
	configs.JWTSecret = "test-access-secret"
	configs.JWTRefreshSecret = "test-refresh-secret"
	t.Cleanup(func() {
		configs.JWTSecret = prevAccess
		configs.JWTRefreshSecret = prevRefresh
	})
}

func TestGenerateTokenPairClaims(t *testing.T) {
	setTestSecrets(t)

	user := &userModel.UserModel{
		ID:       uuid.New(),
		UserName: "laura",
		Role:     "student",
	}

	access, refresh, err := GenerateTokenPair(user)
	require.NoError(t, err)
	require.NotEmpty(t, access)
	require.NotEmpty(t, refresh)

	claims := jwt.MapClaims{}
	_, err = jwt.ParseWithClaims(access, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(configs.JWTSecret), nil
	})
	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), claims["user_id"])
	assert.Equal(t, "laura", claims["user_name"])
	assert.Equal(t, "student", claims["role"])
}

func TestGenerateTokenPairWithoutSecrets(t *testing.T) {
	setTestSecrets(t)
	configs.JWTSecret = ""

	_, _, err := GenerateTokenPair(&userModel.UserModel{ID: uuid.New()})
	assert.Error(t, err)
}

func TestParseRefreshToken(t *testing.T) {
	setTestSecrets(t)

	user := &userModel.UserModel{ID: uuid.New(), UserName: "laura", Role: "student"}
	_, refresh, err := GenerateTokenPair(user)
	require.NoError(t, err)

	userID, err := ParseRefreshToken(refresh)
	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), userID)

	// un access token no pasa como refresh (secret distinto)
	access, _, err := GenerateTokenPair(user)
	require.NoError(t, err)
	_, err = ParseRefreshToken(access)
	assert.Error(t, err)
}

func TestComputeRefreshHashDeterministic(t *testing.T) {
	setTestSecrets(t)

	a := ComputeRefreshHash("token-1")
	b := ComputeRefreshHash("token-1")
	c := ComputeRefreshHash("token-2")
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}
