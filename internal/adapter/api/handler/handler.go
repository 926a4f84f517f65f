package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"connekt/internal/adapter/api/middleware"
	"connekt/internal/usecase"
	"connekt/pkg/errors"
	"connekt/pkg/response"
)

var (
	healthHandler    *HealthHandler
	profileHandler   *ProfileHandler
	ratingHandler    *RatingHandler
	analyticsHandler *AnalyticsHandler
	mediaHandler     *MediaHandler
	workspaceHandler *WorkspaceHandler
	agencyHandler    *AgencyHandler
)

func Setup(
	profileUseCase *usecase.ProfileUseCase,
	ratingUseCase *usecase.RatingUseCase,
	proAnalyticsUseCase *usecase.ProAnalyticsUseCase,
	proPlusAnalyticsUseCase *usecase.ProPlusAnalyticsUseCase,
	reputationUseCase *usecase.ReputationUseCase,
	layoutUseCase *usecase.LayoutUseCase,
	mediaUseCase *usecase.MediaUseCase,
	workspaceUseCase *usecase.WorkspaceUseCase,
	agencyUseCase *usecase.AgencyUseCase,
) {
	healthHandler = NewHealthHandler()
	profileHandler = NewProfileHandler(profileUseCase, layoutUseCase, reputationUseCase)
	ratingHandler = NewRatingHandler(ratingUseCase)
	analyticsHandler = NewAnalyticsHandler(proAnalyticsUseCase, proPlusAnalyticsUseCase, workspaceUseCase)
	mediaHandler = NewMediaHandler(mediaUseCase)
	workspaceHandler = NewWorkspaceHandler(workspaceUseCase)
	agencyHandler = NewAgencyHandler(agencyUseCase)
}

func GetHealthHandler() *HealthHandler {
	return healthHandler
}

func GetProfileHandler() *ProfileHandler {
	return profileHandler
}

func GetRatingHandler() *RatingHandler {
	return ratingHandler
}

func GetAnalyticsHandler() *AnalyticsHandler {
	return analyticsHandler
}

func GetMediaHandler() *MediaHandler {
	return mediaHandler
}

func GetWorkspaceHandler() *WorkspaceHandler {
	return workspaceHandler
}

func GetAgencyHandler() *AgencyHandler {
	return agencyHandler
}

func queryInt(c echo.Context, name string, fallback int) int {
	value, err := strconv.Atoi(c.QueryParam(name))
	if err != nil {
		return fallback
	}
	return value
}

func currentUser(c echo.Context) string {
	return middleware.UID(c)
}

func notFound(c echo.Context, resource string) error {
	return response.Error(c, errors.NotFound(resource, nil))
}

func rejected(c echo.Context, action string) error {
	return response.Error(c, errors.BadRequest("Could not "+action, nil))
}

func bindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return err
	}
	return c.Validate(req)
}
