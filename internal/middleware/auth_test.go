// internal/middleware/auth_test.go
package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rrtraders/rr-backend/internal/utils"
)

func optionalAuthRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/catalogue", OptionalAuth(), func(c *gin.Context) {
		userID, _ := c.Get("user_id")
		role, _ := c.Get("user_role")
		c.JSON(http.StatusOK, gin.H{"user_id": userID, "user_role": role})
	})
	return r
}

func TestOptionalAuthSetsUserWhenTokenValid(t *testing.T) {
	utils.SetJWTSecret("test-secret")
	r := optionalAuthRouter()

	userID := uuid.New()
	token, err := utils.GenerateJWT(userID, "Priya", "customer", 24)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/catalogue", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), userID.String())
	assert.Contains(t, w.Body.String(), "customer")
}

func TestOptionalAuthPassesThroughWithoutToken(t *testing.T) {
	utils.SetJWTSecret("test-secret")
	r := optionalAuthRouter()

	req := httptest.NewRequest(http.MethodGet, "/catalogue", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	// Anonymous browsing still succeeds; no user is attached.
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":null`)
}

func TestOptionalAuthIgnoresInvalidToken(t *testing.T) {
	utils.SetJWTSecret("test-secret")
	r := optionalAuthRouter()

	req := httptest.NewRequest(http.MethodGet, "/catalogue", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":null`)
}
