package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"
	"unicode"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"alfredoptarigan/resume-matcher/internal/models"
)

const (
	// maxNameAttempts bounds how many generated names are tried when a name
	// is already taken on disk, e.g. by another process sharing the directory.
	maxNameAttempts = 3

	// maxExtensionLength is the longest extension, dot included, that is
	// carried over to a stored file name.
	maxExtensionLength = 32
)

// ErrInvalidExtension is returned when the uploaded file name carries an
// extension that cannot be used in a stored file name.
var ErrInvalidExtension = errors.New("invalid file extension")

var tracer = otel.Tracer("alfredoptarigan/resume-matcher/internal/services")

type StorageService interface {
	SaveFile(ctx context.Context, file *multipart.FileHeader) (*models.StoredFile, error)
	GetFilePath(filename string) string
	EnsureUploadDir() error
}

type storageService struct {
	uploadPath string
	namer      FileNamer
	now        func() time.Time
}

func NewStorageService(uploadPath string, namer FileNamer) StorageService {
	if namer == nil {
		namer = NewTimestampNamer(nil)
	}

	return &storageService{
		uploadPath: uploadPath,
		namer:      namer,
		now:        time.Now,
	}
}

func (s *storageService) EnsureUploadDir() error {
	if err := os.MkdirAll(s.uploadPath, 0755); err != nil {
		return fmt.Errorf("failed to create upload directory: %w", err)
	}

	return nil
}

// GetFilePath returns where a stored file with the given name lives.
func (s *storageService) GetFilePath(filename string) string {
	return filepath.Join(s.uploadPath, filename)
}

// SaveFile copies the uploaded file into the upload directory under a
// generated name. A file that fails mid-write is removed. All failures are
// returned as *StorageWriteError.
func (s *storageService) SaveFile(ctx context.Context, file *multipart.FileHeader) (*models.StoredFile, error) {
	ctx, span := tracer.Start(ctx, "storage.SaveFile", trace.WithAttributes(
		attribute.String("file.original_name", file.Filename),
		attribute.Int64("file.size", file.Size),
	))
	defer span.End()

	stored, err := s.saveFile(ctx, file)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to save file")
		return nil, err
	}

	span.SetAttributes(attribute.String("file.path", stored.Path))
	return stored, nil
}

func (s *storageService) saveFile(ctx context.Context, file *multipart.FileHeader) (*models.StoredFile, error) {
	if err := ctx.Err(); err != nil {
		return nil, &StorageWriteError{Op: "save", Err: err}
	}
	if err := validateExtension(file.Filename); err != nil {
		return nil, err
	}

	// Open source file
	src, err := file.Open()
	if err != nil {
		return nil, &StorageWriteError{Op: "open upload", Err: err}
	}
	defer src.Close()

	dst, filename, filePath, err := s.createDestination(file.Filename)
	if err != nil {
		return nil, err
	}

	written, err := io.Copy(dst, &contextReader{ctx: ctx, r: src})
	if closeErr := dst.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(filePath)
		return nil, &StorageWriteError{Op: "write", Path: filePath, Err: err}
	}

	return &models.StoredFile{
		Filename:     filename,
		OriginalName: file.Filename,
		Path:         filePath,
		ContentType:  file.Header.Get("Content-Type"),
		Size:         written,
		StoredAt:     s.now(),
	}, nil
}

// createDestination creates the target file exclusively so an existing
// upload is never overwritten.
func (s *storageService) createDestination(originalFilename string) (*os.File, string, string, error) {
	var lastErr error
	for attempt := 0; attempt < maxNameAttempts; attempt++ {
		filename := s.namer.Name(originalFilename)
		filePath := s.GetFilePath(filename)

		dst, err := os.OpenFile(filePath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
		if err == nil {
			return dst, filename, filePath, nil
		}
		if !errors.Is(err, fs.ErrExist) {
			return nil, "", "", &StorageWriteError{Op: "create", Path: filePath, Err: err}
		}
		lastErr = err
	}

	return nil, "", "", &StorageWriteError{
		Op:  "create",
		Err: fmt.Errorf("no free name after %d attempts: %w", maxNameAttempts, lastErr),
	}
}

// validateExtension rejects extensions that are too long for a file name or
// that contain control characters.
func validateExtension(originalFilename string) error {
	ext := filepath.Ext(originalFilename)
	if len(ext) > maxExtensionLength {
		return fmt.Errorf("%w: %d bytes, max %d", ErrInvalidExtension, len(ext), maxExtensionLength)
	}
	for _, r := range ext {
		if unicode.IsControl(r) || r == unicode.ReplacementChar {
			return fmt.Errorf("%w: %q", ErrInvalidExtension, ext)
		}
	}

	return nil
}

// contextReader stops a copy once its context is done.
type contextReader struct {
	ctx context.Context
	r   io.Reader
}

func (cr *contextReader) Read(p []byte) (int, error) {
	if err := cr.ctx.Err(); err != nil {
		return 0, err
	}
	return cr.r.Read(p)
}
