package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"techclub_backend/internals/configs"
	"techclub_backend/internals/features/admins/auth/model"
)

func TestGenerateToken_ClaimsAndSignature(t *testing.T) {
	configs.JWTSecret = "rahasia-test"

	admin := &model.AdminModel{
		AdminID:       uuid.New(),
		AdminUsername: "panitia",
	}

	tokenString, err := generateToken(admin)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("rahasia-test"), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	assert.Equal(t, admin.AdminID.String(), claims["sub"])
	assert.Equal(t, "panitia", claims["username"])
	assert.Equal(t, "admin", claims["role"])

	exp, ok := claims["exp"].(float64)
	require.True(t, ok)
	assert.Greater(t, int64(exp), time.Now().Unix())
	assert.LessOrEqual(t, int64(exp), time.Now().Add(tokenTTL+time.Minute).Unix())
}

func TestGenerateToken_RejectedWithWrongSecret(t *testing.T) {
	configs.JWTSecret = "rahasia-test"

	tokenString, err := generateToken(&model.AdminModel{AdminID: uuid.New(), AdminUsername: "panitia"})
	require.NoError(t, err)

	_, err = jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret-lain"), nil
	})
	assert.Error(t, err)
}
