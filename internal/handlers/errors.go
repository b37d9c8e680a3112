package handlers

import (
	"context"
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/resume-matcher/internal/observability"
	"alfredoptarigan/resume-matcher/internal/services"
)

const (
	ResumeField         = "resume"
	JobDescriptionField = "jobDescription"
)

var (
	ErrMissingFile      = fmt.Errorf("missing file field %q", ResumeField)
	ErrMalformedRequest = errors.New("request body is not a valid multipart form")
	ErrFileTooLarge     = errors.New("resume file too large")
)

// uploadFailure is how an upload error is reported to the client and to
// metrics.
type uploadFailure struct {
	status  int
	message string
	outcome string
}

func classifyUploadError(err error, maxFileSize int64) uploadFailure {
	switch {
	case errors.Is(err, ErrMissingFile):
		return uploadFailure{fiber.StatusBadRequest, ErrMissingFile.Error(), observability.UploadMissingFile}
	case errors.Is(err, ErrMalformedRequest):
		return uploadFailure{fiber.StatusBadRequest, ErrMalformedRequest.Error(), observability.UploadMalformed}
	case errors.Is(err, services.ErrInvalidExtension):
		return uploadFailure{fiber.StatusBadRequest, "invalid resume file extension", observability.UploadInvalidName}
	case errors.Is(err, ErrFileTooLarge):
		return uploadFailure{
			fiber.StatusRequestEntityTooLarge,
			fmt.Sprintf("resume file too large. Max size: %d bytes", maxFileSize),
			observability.UploadTooLarge,
		}
	case errors.Is(err, context.DeadlineExceeded):
		return uploadFailure{fiber.StatusGatewayTimeout, "storage write timed out", observability.UploadTimeout}
	default:
		return uploadFailure{fiber.StatusInternalServerError, "failed to store resume", observability.UploadStorageError}
	}
}
