package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"connekt/internal/domain/entity"
	"connekt/internal/usecase"
	"connekt/pkg/errors"
	"connekt/pkg/logger"
	"connekt/pkg/response"
)

type mediaService interface {
	UploadPortfolioItem(ctx context.Context, uid string, in usecase.UploadInput) *entity.MediaItem
	RemovePortfolioItem(ctx context.Context, uid, id string) bool
	ReorderPortfolio(ctx context.Context, uid string, ids []string) bool
	UploadProfilePhoto(ctx context.Context, uid string, in usecase.UploadInput) string
}

type MediaHandler struct {
	mediaUseCase mediaService
}

func NewMediaHandler(media mediaService) *MediaHandler {
	return &MediaHandler{
		mediaUseCase: media,
	}
}

// formUpload opens the "file" part of a multipart request. The caller closes it.
func formUpload(c echo.Context) (usecase.UploadInput, func() error, error) {
	file, err := c.FormFile("file")
	if err != nil {
		return usecase.UploadInput{}, nil, errors.BadRequest("file is required", err)
	}

	src, err := file.Open()
	if err != nil {
		return usecase.UploadInput{}, nil, errors.BadRequest("Failed to read uploaded file", err)
	}

	uid := currentUser(c)
	in := usecase.UploadInput{
		Title:       c.FormValue("title"),
		Description: c.FormValue("description"),
		Size:        file.Size,
		Body:        src,
		Progress: func(written, total int64) {
			logger.Debug("Upload progress for %s: %d/%d bytes", uid, written, total)
		},
	}
	return in, src.Close, nil
}

func (h *MediaHandler) UploadPortfolioItem(c echo.Context) error {
	in, closeFn, err := formUpload(c)
	if err != nil {
		return response.Error(c, err)
	}
	defer closeFn()

	item := h.mediaUseCase.UploadPortfolioItem(c.Request().Context(), currentUser(c), in)
	if item == nil {
		return rejected(c, "upload portfolio item")
	}
	return response.Created(c, item)
}

func (h *MediaHandler) UploadProfilePhoto(c echo.Context) error {
	in, closeFn, err := formUpload(c)
	if err != nil {
		return response.Error(c, err)
	}
	defer closeFn()

	url := h.mediaUseCase.UploadProfilePhoto(c.Request().Context(), currentUser(c), in)
	if url == "" {
		return rejected(c, "upload profile photo")
	}
	return response.Success(c, map[string]string{"photoURL": url})
}

func (h *MediaHandler) RemovePortfolioItem(c echo.Context) error {
	if !h.mediaUseCase.RemovePortfolioItem(c.Request().Context(), currentUser(c), c.Param("id")) {
		return notFound(c, "Portfolio item")
	}
	return c.NoContent(http.StatusNoContent)
}

type reorderPortfolioRequest struct {
	IDs []string `json:"ids" validate:"required,dive,required"`
}

func (h *MediaHandler) ReorderPortfolio(c echo.Context) error {
	var req reorderPortfolioRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.Error(c, err)
	}

	if !h.mediaUseCase.ReorderPortfolio(c.Request().Context(), currentUser(c), req.IDs) {
		return rejected(c, "reorder portfolio")
	}
	return response.Success(c, req)
}
