package auth_test

import (
	"os"
	"testing"
	"time"

	"cardboard/internal/auth"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

func TestGenerateAndParseToken(t *testing.T) {
	os.Setenv("JWT_SECRET", "test-secret-key")
	os.Setenv("JWT_EXPIRY_HOURS", "24")

	userID := "test-user-id"
	token, err := auth.GenerateToken(userID, true)

	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	parsedUserID, isAdmin, err := auth.ParseToken(token)

	assert.NoError(t, err)
	assert.Equal(t, userID, parsedUserID)
	assert.True(t, isAdmin)
}

func TestGenerateAndParseToken_NonAdmin(t *testing.T) {
	os.Setenv("JWT_SECRET", "test-secret-key")
	os.Setenv("JWT_EXPIRY_HOURS", "24")

	token, err := auth.GenerateToken("regular-user", false)
	assert.NoError(t, err)

	parsedUserID, isAdmin, err := auth.ParseToken(token)

	assert.NoError(t, err)
	assert.Equal(t, "regular-user", parsedUserID)
	assert.False(t, isAdmin)
}

func TestParseToken_InvalidToken(t *testing.T) {
	os.Setenv("JWT_SECRET", "test-secret-key")

	_, _, err := auth.ParseToken("invalid-token")

	assert.Error(t, err)
	assert.Equal(t, "invalid token", err.Error())
}

func TestParseToken_ExpiredToken(t *testing.T) {
	os.Setenv("JWT_SECRET", "test-secret-key")

	// Token that expired an hour ago
	claims := jwt.MapClaims{
		"user_id":  "test-user-id",
		"is_admin": false,
		"exp":      time.Now().Add(-1 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	expiredToken, _ := token.SignedString([]byte(os.Getenv("JWT_SECRET")))

	_, _, err := auth.ParseToken(expiredToken)

	assert.Error(t, err)
	assert.Equal(t, "invalid token", err.Error())
}

func TestParseToken_MissingClaims(t *testing.T) {
	os.Setenv("JWT_SECRET", "test-secret-key")

	// Token without a user_id claim
	claims := jwt.MapClaims{
		"exp": time.Now().Add(24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenWithoutUserID, _ := token.SignedString([]byte(os.Getenv("JWT_SECRET")))

	_, _, err := auth.ParseToken(tokenWithoutUserID)

	assert.Error(t, err)
	assert.Equal(t, "invalid claims", err.Error())
}
