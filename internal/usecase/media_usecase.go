package usecase

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"

	"connekt/internal/domain/entity"
	"connekt/internal/domain/service"
	"connekt/pkg/logger"
	"connekt/pkg/utils"
)

// sniffBytes is how much of the upload mimetype inspects.
const sniffBytes = 3072

type portfolioStore interface {
	AddPortfolioItem(ctx context.Context, uid string, item entity.MediaItem) bool
	RemovePortfolioItem(ctx context.Context, uid, id string) *entity.MediaItem
	ReorderPortfolio(ctx context.Context, uid string, ids []string) bool
	UpsertProfile(ctx context.Context, uid string, update ProfileUpdate) bool
}

type MediaUseCase struct {
	storage  service.FileStorage
	profiles portfolioStore
	maxBytes int64
	logger   logger.Logger
	now      func() time.Time
}

func NewMediaUseCase(storage service.FileStorage, profiles portfolioStore, maxBytes int64, log logger.Logger) *MediaUseCase {
	return &MediaUseCase{
		storage:  storage,
		profiles: profiles,
		maxBytes: maxBytes,
		logger:   log,
		now:      time.Now,
	}
}

type UploadInput struct {
	Title       string
	Description string
	Size        int64
	Body        io.Reader
	Progress    service.ProgressFunc
}

// mediaKind maps a sniffed MIME type to the portfolio item type.
func mediaKind(mime string) string {
	switch {
	case strings.HasPrefix(mime, "image/"):
		return "image"
	case strings.HasPrefix(mime, "video/"):
		return "video"
	default:
		return "document"
	}
}

var allowedDocuments = map[string]bool{
	"application/pdf": true,
	"text/plain":      true,
}

// sniff reads the head of the body to detect its type and returns a reader
// that replays it.
func sniff(body io.Reader) (*mimetype.MIME, io.Reader, error) {
	head := make([]byte, sniffBytes)
	n, err := io.ReadFull(body, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return nil, nil, err
	}
	head = head[:n]
	return mimetype.Detect(head), io.MultiReader(bytes.NewReader(head), body), nil
}

func (uc *MediaUseCase) upload(ctx context.Context, uid, folder string, in UploadInput, imagesOnly bool) *service.UploadedObject {
	if uid == "" || in.Body == nil || (uc.maxBytes > 0 && in.Size > uc.maxBytes) {
		return nil
	}

	mime, body, err := sniff(in.Body)
	if err != nil {
		uc.logger.Error("Failed to read upload", "uid", uid, "error", err)
		return nil
	}
	contentType := mime.String()
	if i := strings.Index(contentType, ";"); i >= 0 {
		contentType = contentType[:i]
	}
	kind := mediaKind(contentType)
	if imagesOnly && kind != "image" {
		return nil
	}
	if kind == "document" && !allowedDocuments[contentType] {
		uc.logger.Warn("Rejected upload type", "uid", uid, "contentType", contentType)
		return nil
	}

	if uc.maxBytes > 0 {
		body = io.LimitReader(body, uc.maxBytes+1)
	}
	path := fmt.Sprintf("profiles/%s/%s/%s%s", uid, folder, utils.NewID(), mime.Extension())
	obj, err := uc.storage.Upload(ctx, path, body, contentType, in.Size, in.Progress)
	if err != nil {
		uc.logger.Error("Failed to upload media", "uid", uid, "path", path, "error", err)
		return nil
	}
	if uc.maxBytes > 0 && obj.Size > uc.maxBytes {
		uc.logger.Warn("Upload exceeded size limit", "uid", uid, "size", obj.Size)
		uc.deleteBlob(ctx, uid, obj.Path)
		return nil
	}
	return obj
}

// UploadPortfolioItem stores the file under profiles/{uid}/portfolio and
// appends it to the portfolio. The blob is removed again when the profile
// write fails.
func (uc *MediaUseCase) UploadPortfolioItem(ctx context.Context, uid string, in UploadInput) *entity.MediaItem {
	obj := uc.upload(ctx, uid, "portfolio", in, false)
	if obj == nil {
		return nil
	}

	item := entity.MediaItem{
		ID:          utils.NewID(),
		Type:        mediaKind(obj.ContentType),
		URL:         obj.URL,
		StoragePath: obj.Path,
		Title:       in.Title,
		Description: in.Description,
		ContentType: obj.ContentType,
		Size:        obj.Size,
		CreatedAt:   uc.now(),
	}
	if !uc.profiles.AddPortfolioItem(ctx, uid, item) {
		uc.deleteBlob(ctx, uid, obj.Path)
		return nil
	}
	return &item
}

// RemovePortfolioItem drops the entry, then deletes its blob. A failed blob
// delete is logged and leaves an orphan; the entry is already gone.
func (uc *MediaUseCase) RemovePortfolioItem(ctx context.Context, uid, id string) bool {
	removed := uc.profiles.RemovePortfolioItem(ctx, uid, id)
	if removed == nil {
		return false
	}
	if removed.StoragePath != "" {
		uc.deleteBlob(ctx, uid, removed.StoragePath)
	}
	return true
}

func (uc *MediaUseCase) ReorderPortfolio(ctx context.Context, uid string, ids []string) bool {
	return uc.profiles.ReorderPortfolio(ctx, uid, ids)
}

// UploadProfilePhoto accepts images only and returns the public URL.
func (uc *MediaUseCase) UploadProfilePhoto(ctx context.Context, uid string, in UploadInput) string {
	obj := uc.upload(ctx, uid, "photo", in, true)
	if obj == nil {
		return ""
	}
	url := obj.URL
	if !uc.profiles.UpsertProfile(ctx, uid, ProfileUpdate{PhotoURL: &url}) {
		uc.deleteBlob(ctx, uid, obj.Path)
		return ""
	}
	return url
}

func (uc *MediaUseCase) deleteBlob(ctx context.Context, uid, path string) {
	if err := uc.storage.Delete(ctx, path); err != nil {
		uc.logger.Error("Failed to delete media", "uid", uid, "path", path, "error", err)
	}
}
