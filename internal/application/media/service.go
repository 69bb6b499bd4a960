// Package media stores images uploaded from the admin screens, such as
// project screenshots and blog cover images.
package media

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/dicky/portfolio/internal/domain/shared"
	"github.com/dicky/portfolio/internal/infrastructure/telemetry"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ObjectStorage is the blob store behind media uploads
type ObjectStorage interface {
	Upload(ctx context.Context, storageKey string, data []byte, contentType string) error
	DeleteObject(ctx context.Context, storageKey string) error
	PublicURL(storageKey string) string
}

var allowedTypes = map[string]string{
	"image/jpeg":    ".jpg",
	"image/png":     ".png",
	"image/webp":    ".webp",
	"image/gif":     ".gif",
	"image/svg+xml": ".svg",
}

// Errors reported for rejected uploads
var (
	ErrEmptyFile       = shared.NewDomainError("INVALID_INPUT", "uploaded file is empty")
	ErrUnsupportedType = shared.NewDomainError("UNSUPPORTED_MEDIA_TYPE", "only jpeg, png, webp, gif and svg images are accepted")
	ErrFileTooLarge    = shared.NewDomainError("FILE_TOO_LARGE", "uploaded file exceeds the size limit")
)

// UploadRequest is one file to store
type UploadRequest struct {
	Folder      string
	Filename    string
	ContentType string
	Data        []byte
}

// UploadResponse describes a stored file
type UploadResponse struct {
	Key         string `json:"key"`
	URL         string `json:"url"`
	ContentType string `json:"content_type"`
	Size        int    `json:"size"`
}

// Service validates and stores uploads
type Service struct {
	storage ObjectStorage
	maxSize int64
	logger  *zap.Logger
	now     func() time.Time
}

// NewService creates a media service. maxSize bounds a single upload.
func NewService(storage ObjectStorage, maxSize int64, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{storage: storage, maxSize: maxSize, logger: logger, now: time.Now}
}

// MaxSize returns the upload size limit in bytes
func (s *Service) MaxSize() int64 { return s.maxSize }

// Upload checks the file and writes it under a generated key
// media/<folder>/<yyyy>/<mm>/<uuid><ext>
func (s *Service) Upload(ctx context.Context, req UploadRequest) (*UploadResponse, error) {
	if len(req.Data) == 0 {
		return nil, ErrEmptyFile
	}
	if s.maxSize > 0 && int64(len(req.Data)) > s.maxSize {
		return nil, ErrFileTooLarge
	}
	contentType := normalizeContentType(req.ContentType)
	ext, ok := allowedTypes[contentType]
	if !ok {
		return nil, ErrUnsupportedType
	}

	key := s.storageKey(req.Folder, ext)
	ctx, span := telemetry.StartServiceSpan(ctx, "media", "upload")
	defer span.End()
	telemetry.SetAttributes(span,
		telemetry.SpanAttrMediaKey, key,
		telemetry.SpanAttrMediaSize, len(req.Data),
		telemetry.SpanAttrContentType, contentType,
	)
	if err := s.storage.Upload(ctx, key, req.Data, contentType); err != nil {
		telemetry.RecordError(span, err)
		return nil, fmt.Errorf("store %s: %w", req.Filename, err)
	}
	s.logger.Info("Media uploaded",
		zap.String("key", key),
		zap.String("filename", req.Filename),
		zap.Int("size", len(req.Data)),
	)
	return &UploadResponse{
		Key:         key,
		URL:         s.storage.PublicURL(key),
		ContentType: contentType,
		Size:        len(req.Data),
	}, nil
}

// Delete removes a stored file. Keys outside the media prefix are rejected.
func (s *Service) Delete(ctx context.Context, key string) error {
	if !strings.HasPrefix(key, "media/") || strings.Contains(key, "..") {
		return shared.NewDomainError("INVALID_INPUT", "invalid media key")
	}
	return s.storage.DeleteObject(ctx, key)
}

func (s *Service) storageKey(folder, ext string) string {
	folder = sanitizeFolder(folder)
	now := s.now().UTC()
	return path.Join("media", folder, now.Format("2006"), now.Format("01"), uuid.NewString()+ext)
}

func normalizeContentType(ct string) string {
	ct = strings.ToLower(strings.TrimSpace(ct))
	if i := strings.IndexByte(ct, ';'); i >= 0 {
		ct = strings.TrimSpace(ct[:i])
	}
	return ct
}

// sanitizeFolder keeps lowercase letters, digits and dashes; anything else
// falls back to "misc".
func sanitizeFolder(folder string) string {
	folder = strings.ToLower(strings.TrimSpace(folder))
	if folder == "" {
		return "misc"
	}
	for _, r := range folder {
		if !(r >= 'a' && r <= 'z') && !(r >= '0' && r <= '9') && r != '-' {
			return "misc"
		}
	}
	return folder
}
