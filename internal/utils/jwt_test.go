// internal/utils/jwt_test.go
package utils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTRoundTrip(t *testing.T) {
	SetJWTSecret("test-secret")

	userID := uuid.New()
	token, err := GenerateJWT(userID, "Admin", "admin", 24)
	require.NoError(t, err)

	claims, err := ValidateJWT(token)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), claims.UserID)
	assert.Equal(t, "Admin", claims.Name)
	assert.Equal(t, "admin", claims.Role)
}

func TestJWTRejectsTampering(t *testing.T) {
	SetJWTSecret("test-secret")

	token, err := GenerateJWT(uuid.New(), "Admin", "admin", 24)
	require.NoError(t, err)

	_, err = ValidateJWT(token + "x")
	assert.Error(t, err)
}

func TestJWTRejectsWrongSecret(t *testing.T) {
	SetJWTSecret("first-secret")
	token, err := GenerateJWT(uuid.New(), "Admin", "admin", 24)
	require.NoError(t, err)

	SetJWTSecret("second-secret")
	_, err = ValidateJWT(token)
	assert.Error(t, err)
}

func TestValidatorCustomTags(t *testing.T) {
	type form struct {
		Mobile  string `validate:"mobile"`
		Pincode string `validate:"pincode"`
	}

	assert.NoError(t, ValidateStruct(&form{Mobile: "9876543210", Pincode: "570001"}))
	assert.Error(t, ValidateStruct(&form{Mobile: "98765", Pincode: "570001"}))
	assert.Error(t, ValidateStruct(&form{Mobile: "9876543210", Pincode: "57"}))
}
