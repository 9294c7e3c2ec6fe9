package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"portfolio-cms/pkg/jwt"

	"github.com/gin-gonic/gin"
	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func guardedRouter(jwtService *jwt.Service) *gin.Engine {
	router := setupTestRouter()
	admin := router.Group("/admin")
	admin.Use(RouteGuard(jwtService))
	admin.GET("/test", func(c *gin.Context) {
		// The guard must not inject anything into the context
		_, exists := c.Get("user_id")
		c.JSON(http.StatusOK, gin.H{"injected": exists})
	})
	return router
}

func TestRouteGuard_NoCookie(t *testing.T) {
	jwtService := jwt.NewService("test-secret-key")
	router := guardedRouter(jwtService)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/admin/test", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, LoginPath, w.Header().Get("Location"))
}

func TestRouteGuard_TamperedToken(t *testing.T) {
	jwtService := jwt.NewService("test-secret-key")
	token, _ := jwtService.GenerateToken("user-123", "user@example.com")
	router := guardedRouter(jwtService)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/admin/test", nil)
	req.AddCookie(&http.Cookie{Name: AuthCookieName, Value: token[:len(token)-2] + "xx"})

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, LoginPath, w.Header().Get("Location"))
}

func TestRouteGuard_ExpiredToken(t *testing.T) {
	secret := "test-secret-key"
	jwtService := jwt.NewService(secret)

	claims := &jwt.Claims{
		UserID: "user-123",
		Email:  "user@example.com",
		RegisteredClaims: jwtlib.RegisteredClaims{
			ExpiresAt: jwtlib.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	expired, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims).SignedString([]byte(secret))
	assert.NoError(t, err)

	router := guardedRouter(jwtService)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/admin/test", nil)
	req.AddCookie(&http.Cookie{Name: AuthCookieName, Value: expired})

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, LoginPath, w.Header().Get("Location"))
}

func TestRouteGuard_ValidToken(t *testing.T) {
	jwtService := jwt.NewService("test-secret-key")
	token, _ := jwtService.GenerateToken("user-123", "user@example.com")
	router := guardedRouter(jwtService)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/admin/test", nil)
	req.AddCookie(&http.Cookie{Name: AuthCookieName, Value: token})

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"injected":false`)
}

func TestRouteGuard_UnprotectedPathUntouched(t *testing.T) {
	jwtService := jwt.NewService("test-secret-key")
	router := guardedRouter(jwtService)
	router.GET("/public", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/public", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
