package usecase

import (
	"fmt"
	"strings"
	"time"

	"portfolio-cms/pkg/logger"
	"portfolio-cms/pkg/s3"

	"github.com/google/uuid"
)

// Upload grants are write-once and short-lived; the provider enforces
// both through the URL signature, nothing is tracked after issuance.
const uploadGrantTTL = time.Hour

type UploadUseCase interface {
	NewUploadGrant() (string, error)
}

type uploadUseCase struct {
	s3Client *s3.Client
	logger   *logger.Logger
}

func NewUploadUseCase(s3Client *s3.Client, logger *logger.Logger) UploadUseCase {
	return &uploadUseCase{
		s3Client: s3Client,
		logger:   logger,
	}
}

// NewUploadGrant mints a presigned PUT URL for a fresh object key.
// The key is a millisecond timestamp plus a random suffix, so two
// grants in the same instant still name different objects. The caller
// derives the final public URL by stripping the query string.
func (uc *uploadUseCase) NewUploadGrant() (string, error) {
	suffix := strings.ReplaceAll(uuid.New().String(), "-", "")[:13]
	key := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), suffix)

	url, err := uc.s3Client.PresignUpload(key, "image/*", uploadGrantTTL)
	if err != nil {
		return "", fmt.Errorf("failed to generate upload grant: %w", err)
	}

	return url, nil
}
