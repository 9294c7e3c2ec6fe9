package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"portfolio-cms/internal/usecase"
	"portfolio-cms/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func setupContactTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	log := logger.New()
	handler := NewContactHandler(usecase.NewContactUseCase(nil, log), log)
	router.POST("/api/contact", handler.SubmitMessage)

	return router
}

func TestSubmitMessage_Accepted(t *testing.T) {
	router := setupContactTestRouter()

	body, _ := json.Marshal(map[string]string{
		"name":    "Jane Visitor",
		"email":   "jane@example.com",
		"message": "Hi, I liked your last post.",
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/contact", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusAccepted, w.Code)
	assert.Contains(t, w.Body.String(), "Message received")
}

func TestSubmitMessage_MissingFields(t *testing.T) {
	router := setupContactTestRouter()

	body, _ := json.Marshal(map[string]string{"name": "Jane Visitor"})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/contact", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSubmitMessage_InvalidEmail(t *testing.T) {
	router := setupContactTestRouter()

	body, _ := json.Marshal(map[string]string{
		"name":    "Jane Visitor",
		"email":   "not-an-email",
		"message": "hello",
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/contact", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
