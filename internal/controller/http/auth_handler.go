package http

import (
	"net/http"

	"portfolio-cms/pkg/jwt"
	"portfolio-cms/pkg/logger"
	"portfolio-cms/pkg/middleware"

	"github.com/gin-gonic/gin"
)

// Cookie lives exactly as long as the token it carries.
const authCookieMaxAge = 3600 * 24 * 3

type AuthHandler struct {
	jwtService *jwt.Service
	logger     *logger.Logger
}

func NewAuthHandler(jwtService *jwt.Service, logger *logger.Logger) *AuthHandler {
	return &AuthHandler{
		jwtService: jwtService,
		logger:     logger,
	}
}

// LoginRequest carries the identity pair issued by the external
// identity provider. Primary authentication happens there; this
// endpoint only turns a completed login into a session.
type LoginRequest struct {
	UserID string `json:"userId" binding:"required"`
	Email  string `json:"email" binding:"required"`
}

// Login godoc
// @Summary      Start a session
// @Description  Issue a signed session token for an externally authenticated identity and set it as the auth cookie.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Identity from the external provider"
// @Success      204
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	token, err := h.jwtService.GenerateToken(req.UserID, req.Email)
	if err != nil {
		// Cause stays in the logs; the response never carries it.
		h.logger.Error("Failed to issue session token: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(middleware.AuthCookieName, token, authCookieMaxAge, "/", "", true, true)
	c.Status(http.StatusNoContent)
}

// Logout godoc
// @Summary      End a session
// @Description  Delete the auth cookie. The token itself stays valid until its natural expiry.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Success      204
// @Router       /logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(middleware.AuthCookieName, "", -1, "/", "", true, true)
	c.Status(http.StatusNoContent)
}
