package http

import (
	"errors"
	"net/http"

	"portfolio-cms/internal/entity"
	"portfolio-cms/internal/usecase"
	"portfolio-cms/pkg/logger"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	contactUseCase usecase.ContactUseCase
	logger         *logger.Logger
}

func NewContactHandler(contactUseCase usecase.ContactUseCase, logger *logger.Logger) *ContactHandler {
	return &ContactHandler{
		contactUseCase: contactUseCase,
		logger:         logger,
	}
}

type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Message string `json:"message" binding:"required"`
}

// SubmitMessage godoc
// @Summary      Submit a contact message
// @Description  Accept a contact-form message and queue it for delivery.
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        request body ContactRequest true "Contact message"
// @Success      202  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Router       /contact [post]
func (h *ContactHandler) SubmitMessage(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.contactUseCase.SubmitMessage(req.Name, req.Email, req.Message); err != nil {
		if errors.Is(err, entity.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("Failed to submit contact message: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit message"})
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"message": "Message received"})
}
