package http

import (
	"net/http"

	"portfolio-cms/internal/usecase"
	"portfolio-cms/pkg/logger"
	"portfolio-cms/pkg/middleware"

	"github.com/gin-gonic/gin"
)

type UploadHandler struct {
	uploadUseCase usecase.UploadUseCase
	logger        *logger.Logger
}

func NewUploadHandler(uploadUseCase usecase.UploadUseCase, logger *logger.Logger) *UploadHandler {
	return &UploadHandler{
		uploadUseCase: uploadUseCase,
		logger:        logger,
	}
}

// CreateUploadURL godoc
// @Summary      Request an upload grant
// @Description  Mint a presigned, write-only, one-hour URL for a single image object. The client PUTs the file bytes directly to object storage and derives the public URL by stripping the query string.
// @Tags         uploads
// @Accept       json
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /uploads [post]
func (h *UploadHandler) CreateUploadURL(c *gin.Context) {
	// Cookie presence only; the admin route guard does the full
	// signature check. The result is always a tagged success/failure,
	// never a bare error.
	if _, err := c.Cookie(middleware.AuthCookieName); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"failure": "No auth token found"})
		return
	}

	url, err := h.uploadUseCase.NewUploadGrant()
	if err != nil {
		h.logger.Error("Failed to generate signed URL: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"failure": "Failed to generate signed URL"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": gin.H{"url": url}})
}
