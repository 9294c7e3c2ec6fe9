package usecase

import (
	"fmt"
	"strings"

	"portfolio-cms/internal/entity"
	"portfolio-cms/pkg/logger"
	"portfolio-cms/pkg/queue"
)

type ContactUseCase interface {
	SubmitMessage(name, email, message string) error
}

type contactUseCase struct {
	queueClient *queue.Client
	logger      *logger.Logger
}

func NewContactUseCase(queueClient *queue.Client, logger *logger.Logger) ContactUseCase {
	return &contactUseCase{
		queueClient: queueClient,
		logger:      logger,
	}
}

// SubmitMessage hands a contact-form message to the delivery queue.
// Publishing is fire-and-forget; a broker outage is logged, not
// surfaced to the visitor.
func (uc *contactUseCase) SubmitMessage(name, email, message string) error {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(email) == "" || strings.TrimSpace(message) == "" {
		return fmt.Errorf("%w: name, email and message are required", entity.ErrValidation)
	}

	if uc.queueClient == nil {
		uc.logger.Warn("Contact queue unavailable, dropping message from %s", email)
		return nil
	}

	task := map[string]interface{}{
		"type":     "contact_message",
		"name":     name,
		"email":    email,
		"message":  message,
		"priority": 3,
	}

	go func() {
		if err := uc.queueClient.PublishContactMessage(task); err != nil {
			uc.logger.Error("[CONTACT QUEUE] Failed to publish contact message: %v (from=%s)", err, email)
		} else {
			uc.logger.Info("[CONTACT QUEUE] Published contact message from %s", email)
		}
	}()

	return nil
}
