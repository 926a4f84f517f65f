package handler

import (
	"context"

	"github.com/labstack/echo/v4"

	"connekt/internal/domain/entity"
	"connekt/internal/usecase"
	"connekt/pkg/response"
)

type ratingService interface {
	AddRating(ctx context.Context, input usecase.AddRatingInput) *entity.Rating
	ListRatings(ctx context.Context, uid string, limit int) []*entity.Rating
}

type RatingHandler struct {
	ratingUseCase ratingService
}

func NewRatingHandler(ratings ratingService) *RatingHandler {
	return &RatingHandler{
		ratingUseCase: ratings,
	}
}

type addRatingRequest struct {
	Rating      int                `json:"rating" validate:"required,min=1,max=5"`
	Review      string             `json:"review" validate:"max=2000"`
	ProjectID   string             `json:"projectId"`
	ProjectName string             `json:"projectName"`
	Media       []entity.MediaItem `json:"media" validate:"max=10"`
}

func (h *RatingHandler) AddRating(c echo.Context) error {
	var req addRatingRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.Error(c, err)
	}

	rating := h.ratingUseCase.AddRating(c.Request().Context(), usecase.AddRatingInput{
		ToUserID:    c.Param("uid"),
		FromUserID:  currentUser(c),
		Rating:      req.Rating,
		Review:      req.Review,
		ProjectID:   req.ProjectID,
		ProjectName: req.ProjectName,
		Media:       req.Media,
	})
	if rating == nil {
		return rejected(c, "add rating")
	}

	return response.Created(c, rating)
}

// ListRatings returns the newest ratings first; limit defaults to 20 and is capped at 100.
func (h *RatingHandler) ListRatings(c echo.Context) error {
	ratings := h.ratingUseCase.ListRatings(c.Request().Context(), c.Param("uid"), queryInt(c, "limit", 0))
	if ratings == nil {
		ratings = []*entity.Rating{}
	}
	return response.Success(c, ratings)
}
