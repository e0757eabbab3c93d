package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hrms-backend/internal/auth"
	"hrms-backend/internal/models"
)

func testRouter(codec *auth.TokenCodec) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	protected := router.Group("/", AuthRequired(codec))
	protected.GET("/me", func(c *gin.Context) {
		role, _ := c.Get(ContextRole)
		c.JSON(http.StatusOK, gin.H{"role": role})
	})
	protected.GET("/admin", RequireRole(models.RoleAdmin), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	protected.GET("/staff", RequireAnyRole(models.RoleAdmin, models.RoleManager), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return router
}

func signedToken(t *testing.T, codec *auth.TokenCodec, role string) string {
	t.Helper()
	token, err := codec.SignAccess(&models.Employee{
		ID:    uuid.New(),
		Email: "john@x.com",
		Role:  role,
	})
	require.NoError(t, err)
	return token
}

func doRequest(router *gin.Engine, path string, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestAuthRequiredMissingToken(t *testing.T) {
	codec := auth.NewTokenCodec("test-secret", time.Hour, time.Minute)
	router := testRouter(codec)

	assert.Equal(t, http.StatusUnauthorized, doRequest(router, "/me", "").Code)
	assert.Equal(t, http.StatusUnauthorized, doRequest(router, "/me", "Token abc").Code)
}

func TestAuthRequiredInvalidToken(t *testing.T) {
	codec := auth.NewTokenCodec("test-secret", time.Hour, time.Minute)
	router := testRouter(codec)

	assert.Equal(t, http.StatusUnauthorized, doRequest(router, "/me", "Bearer garbage").Code)

	otherCodec := auth.NewTokenCodec("other-secret", time.Hour, time.Minute)
	foreign := signedToken(t, otherCodec, models.RoleAdmin)
	assert.Equal(t, http.StatusUnauthorized, doRequest(router, "/me", "Bearer "+foreign).Code)
}

func TestAuthRequiredExpiredToken(t *testing.T) {
	signer := auth.NewTokenCodec("test-secret", -time.Minute, time.Minute)
	verifier := auth.NewTokenCodec("test-secret", time.Hour, time.Minute)
	router := testRouter(verifier)

	expired := signedToken(t, signer, models.RoleEmployee)
	assert.Equal(t, http.StatusUnauthorized, doRequest(router, "/me", "Bearer "+expired).Code)
}

func TestAuthRequiredRejectsResetToken(t *testing.T) {
	codec := auth.NewTokenCodec("test-secret", time.Hour, 15*time.Minute)
	router := testRouter(codec)

	resetToken, _, err := codec.SignReset("john@x.com")
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnauthorized, doRequest(router, "/me", "Bearer "+resetToken).Code)
}

func TestRequireRole(t *testing.T) {
	codec := auth.NewTokenCodec("test-secret", time.Hour, time.Minute)
	router := testRouter(codec)

	employeeToken := signedToken(t, codec, models.RoleEmployee)
	adminToken := signedToken(t, codec, models.RoleAdmin)
	managerToken := signedToken(t, codec, models.RoleManager)

	assert.Equal(t, http.StatusForbidden, doRequest(router, "/admin", "Bearer "+employeeToken).Code)
	assert.Equal(t, http.StatusForbidden, doRequest(router, "/admin", "Bearer "+managerToken).Code)
	assert.Equal(t, http.StatusOK, doRequest(router, "/admin", "Bearer "+adminToken).Code)

	assert.Equal(t, http.StatusForbidden, doRequest(router, "/staff", "Bearer "+employeeToken).Code)
	assert.Equal(t, http.StatusOK, doRequest(router, "/staff", "Bearer "+managerToken).Code)
	assert.Equal(t, http.StatusOK, doRequest(router, "/staff", "Bearer "+adminToken).Code)
}
