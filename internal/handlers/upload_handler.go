package handlers

import (
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"alfredoptarigan/resume-matcher/internal/middleware"
	"alfredoptarigan/resume-matcher/internal/models"
	"alfredoptarigan/resume-matcher/internal/observability"
	"alfredoptarigan/resume-matcher/internal/services"
)

type UploadHandler struct {
	storageService services.StorageService
	metrics        *observability.Metrics
	logger         *zap.Logger
	maxFileSize    int64
	writeTimeout   time.Duration
}

func NewUploadHandler(
	storageService services.StorageService,
	metrics *observability.Metrics,
	logger *zap.Logger,
	maxFileSize int64,
	writeTimeout time.Duration,
) *UploadHandler {
	return &UploadHandler{
		storageService: storageService,
		metrics:        metrics,
		logger:         logger,
		maxFileSize:    maxFileSize,
		writeTimeout:   writeTimeout,
	}
}

// HandleUpload handles POST /upload
func (h *UploadHandler) HandleUpload(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return h.fail(c, fmt.Errorf("%w: %v", ErrMalformedRequest, err))
	}

	resumeFiles := form.File[ResumeField]
	if len(resumeFiles) == 0 {
		return h.fail(c, ErrMissingFile)
	}
	resume := resumeFiles[0]

	if resume.Size > h.maxFileSize {
		return h.fail(c, ErrFileTooLarge)
	}

	// A missing job description is not an error.
	jobDescription := ""
	if values := form.Value[JobDescriptionField]; len(values) > 0 {
		jobDescription = values[0]
	}

	ctx, cancel := context.WithTimeout(c.UserContext(), h.writeTimeout)
	defer cancel()

	stored, err := h.storageService.SaveFile(ctx, resume)
	if err != nil {
		return h.fail(c, err)
	}

	h.metrics.ObserveUpload(observability.UploadStored, stored.Size)
	h.logger.Info("resume stored",
		zap.String("request_id", middleware.RequestID(c)),
		zap.String("path", stored.Path),
		zap.String("original_name", stored.OriginalName),
		zap.Int64("size", stored.Size),
	)

	return c.JSON(models.UploadResponse{
		Message:        models.UploadReceivedMessage,
		ResumePath:     stored.Path,
		JobDescription: jobDescription,
	})
}

func (h *UploadHandler) fail(c *fiber.Ctx, err error) error {
	failure := classifyUploadError(err, h.maxFileSize)
	h.metrics.ObserveUpload(failure.outcome, 0)

	fields := []zap.Field{
		zap.String("request_id", middleware.RequestID(c)),
		zap.Int("status", failure.status),
		zap.Error(err),
	}
	if failure.status >= fiber.StatusInternalServerError {
		h.logger.Error("upload failed", fields...)
	} else {
		h.logger.Warn("upload rejected", fields...)
	}

	return c.Status(failure.status).JSON(models.ErrorResponse{Error: failure.message})
}
