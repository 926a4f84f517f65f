package handler

import (
	"context"

	"github.com/labstack/echo/v4"

	"connekt/internal/domain/entity"
	"connekt/pkg/response"
	"connekt/pkg/utils"
)

type proAnalyticsService interface {
	WorkspaceAnalytics(ctx context.Context, workspaceID string) *entity.WorkspaceAnalytics
	ProjectPerformanceMetrics(ctx context.Context, projectID string) *entity.ProjectPerformanceMetrics
	UserProductivityReport(ctx context.Context, userID, period string) *entity.UserProductivityReport
	AdvancedSearch(ctx context.Context, viewerID string, filters entity.SearchFilters, page, pageSize int) *entity.SearchResult
}

type proPlusAnalyticsService interface {
	TalentPoolAnalytics(ctx context.Context, workspaceID string) *entity.TalentPoolAnalytics
	ClientManagementDashboard(ctx context.Context, providerID string) *entity.ClientManagementDashboard
	PlacementTracking(ctx context.Context, recruiterID string) *entity.PlacementTracking
	CommissionCalculation(ctx context.Context, recruiterID, period string) *entity.CommissionCalculation
}

type workspaceAccess interface {
	RequireMember(ctx context.Context, workspaceID, uid string) error
	RequireProjectMember(ctx context.Context, projectID, uid string) error
}

// AnalyticsHandler serves the Pro and Pro Plus rollups. Tier checks happen in
// the router; workspace and project reports also require membership. Every
// report is computed on request.
type AnalyticsHandler struct {
	pro     proAnalyticsService
	proPlus proPlusAnalyticsService
	access  workspaceAccess
}

func NewAnalyticsHandler(pro proAnalyticsService, proPlus proPlusAnalyticsService, access workspaceAccess) *AnalyticsHandler {
	return &AnalyticsHandler{
		pro:     pro,
		proPlus: proPlus,
		access:  access,
	}
}

func (h *AnalyticsHandler) WorkspaceAnalytics(c echo.Context) error {
	if err := h.access.RequireMember(c.Request().Context(), c.Param("id"), currentUser(c)); err != nil {
		return response.Error(c, err)
	}

	report := h.pro.WorkspaceAnalytics(c.Request().Context(), c.Param("id"))
	if report == nil {
		return notFound(c, "Workspace")
	}
	return response.Success(c, report)
}

func (h *AnalyticsHandler) ProjectMetrics(c echo.Context) error {
	if err := h.access.RequireProjectMember(c.Request().Context(), c.Param("id"), currentUser(c)); err != nil {
		return response.Error(c, err)
	}

	report := h.pro.ProjectPerformanceMetrics(c.Request().Context(), c.Param("id"))
	if report == nil {
		return notFound(c, "Project")
	}
	return response.Success(c, report)
}

func (h *AnalyticsHandler) ProductivityReport(c echo.Context) error {
	report := h.pro.UserProductivityReport(c.Request().Context(), currentUser(c), c.QueryParam("period"))
	if report == nil {
		return rejected(c, "build productivity report for period "+c.QueryParam("period"))
	}
	return response.Success(c, report)
}

type searchRequest struct {
	Skills          []string `json:"skills" validate:"max=10"`
	Availability    []string `json:"availability" validate:"max=10"`
	Location        string   `json:"location"`
	MinRating       float64  `json:"minRating" validate:"min=0,max=5"`
	MaxHourlyRate   float64  `json:"maxHourlyRate" validate:"min=0"`
	YearsExperience int      `json:"yearsExperience" validate:"min=0"`
}

// Search pages with page/pageSize query parameters. hasMore is computed after
// post-filtering and may be false while further matches exist.
func (h *AnalyticsHandler) Search(c echo.Context) error {
	var req searchRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.Error(c, err)
	}

	params := utils.GetPaginationParams(c)
	result := h.pro.AdvancedSearch(c.Request().Context(), currentUser(c), entity.SearchFilters{
		Skills:          req.Skills,
		Availability:    req.Availability,
		Location:        req.Location,
		MinRating:       req.MinRating,
		MaxHourlyRate:   req.MaxHourlyRate,
		YearsExperience: req.YearsExperience,
	}, params.Page, params.PageSize)

	return response.Paginated(c, result.Profiles, result.Page, result.PageSize, result.HasMore)
}

func (h *AnalyticsHandler) TalentPool(c echo.Context) error {
	if err := h.access.RequireMember(c.Request().Context(), c.Param("id"), currentUser(c)); err != nil {
		return response.Error(c, err)
	}

	report := h.proPlus.TalentPoolAnalytics(c.Request().Context(), c.Param("id"))
	if report == nil {
		return notFound(c, "Workspace")
	}
	return response.Success(c, report)
}

func (h *AnalyticsHandler) ClientDashboard(c echo.Context) error {
	report := h.proPlus.ClientManagementDashboard(c.Request().Context(), currentUser(c))
	if report == nil {
		return rejected(c, "build client dashboard")
	}
	return response.Success(c, report)
}

func (h *AnalyticsHandler) PlacementTracking(c echo.Context) error {
	report := h.proPlus.PlacementTracking(c.Request().Context(), currentUser(c))
	if report == nil {
		return rejected(c, "build placement report")
	}
	return response.Success(c, report)
}

func (h *AnalyticsHandler) Commission(c echo.Context) error {
	report := h.proPlus.CommissionCalculation(c.Request().Context(), currentUser(c), c.QueryParam("period"))
	if report == nil {
		return rejected(c, "calculate commission")
	}
	return response.Success(c, report)
}
