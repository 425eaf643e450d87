package files

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ondrasimku/upload-service-go/internal/domain"
	"github.com/ondrasimku/upload-service-go/internal/storage"
)

// Service implements the upload, listing and health operations on top of a
// single storage directory.
type Service struct {
	storage       storage.Storage
	allow         AllowList
	healthTimeout time.Duration
	logger        *slog.Logger
}

func NewService(st storage.Storage, allow AllowList, healthTimeout time.Duration, logger *slog.Logger) *Service {
	return &Service{
		storage:       st,
		allow:         allow,
		healthTimeout: healthTimeout,
		logger:        logger,
	}
}

func (s *Service) VolumePath() string {
	return s.storage.Root()
}

func (s *Service) AllowList() AllowList {
	return s.allow
}

// Upload validates filename, makes sure the storage directory is usable and
// writes r under a sanitized, non-conflicting name. Every failure is a
// *domain.UploadError.
func (s *Service) Upload(ctx context.Context, filename string, r io.Reader) (domain.UploadResult, error) {
	if filename == "" {
		return domain.UploadResult{}, domain.NewUploadError(domain.KindEmptyFilename, "No file selected")
	}

	if !s.allow.Allowed(filename) {
		return domain.UploadResult{}, s.disallowed()
	}

	if err := s.storage.Ensure(ctx); err != nil {
		return domain.UploadResult{}, domain.NewUploadErrorWithCause(
			domain.KindStorageUnavailable,
			"Failed to access volume directory: "+err.Error(),
			err,
		)
	}

	name, err := s.storedName(filename)
	if err != nil {
		return domain.UploadResult{}, err
	}

	info, err := s.storage.Save(ctx, r, storage.SaveOptions{Name: name})
	if err != nil {
		return domain.UploadResult{}, domain.NewUploadErrorWithCause(
			domain.KindUnexpectedIOFailure,
			"Upload failed: "+err.Error(),
			err,
		)
	}

	s.logger.Info("File stored", "original", filename, "filename", info.Name, "size", info.Size)

	return domain.UploadResult{
		Filename: info.Name,
		Path:     info.Path,
		Size:     info.Size,
	}, nil
}

// storedName sanitizes filename and re-checks the extension. A name whose
// stem does not survive sanitizing gets a random one.
func (s *Service) storedName(filename string) (string, error) {
	name := SecureFilename(filename)
	if s.allow.Allowed(name) && hasStem(name) {
		return name, nil
	}

	ext, _ := Extension(filename)
	name = SecureFilename("upload_" + uuid.New().String()[:8] + "." + ext)
	if s.allow.Allowed(name) && hasStem(name) {
		return name, nil
	}

	return "", s.disallowed()
}

func hasStem(name string) bool {
	i := strings.LastIndex(name, ".")
	return i > 0
}

func (s *Service) disallowed() error {
	return domain.NewUploadError(
		domain.KindDisallowedExtension,
		"File type not allowed. Allowed types: "+s.allow.String(),
	)
}

// List never fails for a missing directory; other read errors are returned.
func (s *Service) List(ctx context.Context) ([]domain.StoredFile, error) {
	infos, err := s.storage.List(ctx)
	if err != nil {
		return nil, err
	}

	files := make([]domain.StoredFile, 0, len(infos))
	for _, info := range infos {
		files = append(files, domain.StoredFile{
			Name:       info.Name,
			Size:       info.Size,
			ModifiedAt: info.ModTime,
		})
	}
	return files, nil
}

type checkPanic struct {
	value any
}

func (p *checkPanic) Error() string {
	return fmt.Sprintf("health check panicked: %v", p.value)
}

// Health reports degraded when the directory cannot be created or opened,
// and unhealthy when the check itself does not complete.
func (s *Service) Health(ctx context.Context) domain.HealthReport {
	ctx, cancel := context.WithTimeout(ctx, s.healthTimeout)
	defer cancel()

	report := domain.HealthReport{VolumePath: s.storage.Root()}

	done := make(chan error, 1)
	go func() {
		defer func() {
			if v := recover(); v != nil {
				done <- &checkPanic{value: v}
			}
		}()
		done <- s.storage.Ensure(ctx)
	}()

	var err error
	select {
	case err = <-done:
	case <-ctx.Done():
		err = ctx.Err()
	}

	var panicked *checkPanic
	switch {
	case err == nil:
		report.Status = domain.HealthHealthy
		report.Accessible = true
		report.Message = "Directory ready"
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled), errors.As(err, &panicked):
		report.Status = domain.HealthUnhealthy
		report.Err = err
		s.logger.Error("Health check failed", "path", report.VolumePath, "error", err)
	default:
		report.Status = domain.HealthDegraded
		report.Message = err.Error()
		s.logger.Warn("Storage directory not accessible", "path", report.VolumePath, "error", err)
	}

	return report
}
