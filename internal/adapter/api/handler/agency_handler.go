package handler

import (
	"context"

	"github.com/labstack/echo/v4"

	"connekt/internal/domain/entity"
	"connekt/internal/usecase"
	"connekt/pkg/response"
)

type agencyService interface {
	GetPublicAgency(ctx context.Context, id, viewerID string) (*entity.AgencyProfile, error)
	UpsertAgency(ctx context.Context, id, actorID string, input usecase.AgencyInput) (*entity.AgencyProfile, error)
	AddAgencyMember(ctx context.Context, agencyID, actorID string, member entity.AgencyMember) (*entity.AgencyProfile, error)
	RemoveAgencyMember(ctx context.Context, agencyID, actorID, memberID string) (*entity.AgencyProfile, error)
	GetRecruiter(ctx context.Context, uid string) (*entity.RecruiterProfile, error)
	GetPublicRecruiter(ctx context.Context, uid, viewerID string) (*entity.RecruiterProfile, error)
	UpsertRecruiter(ctx context.Context, uid string, input usecase.RecruiterInput) (*entity.RecruiterProfile, error)
}

type AgencyHandler struct {
	agencyUseCase agencyService
}

func NewAgencyHandler(agencies agencyService) *AgencyHandler {
	return &AgencyHandler{
		agencyUseCase: agencies,
	}
}

type agencyRequest struct {
	Name            string                  `json:"name" validate:"required,max=120"`
	Handle          string                  `json:"handle" validate:"max=30"`
	Tagline         string                  `json:"tagline" validate:"max=200"`
	Description     string                  `json:"description" validate:"max=5000"`
	LogoURL         string                  `json:"logoURL" validate:"omitempty,url"`
	Email           string                  `json:"email" validate:"omitempty,email"`
	Phone           string                  `json:"phone" validate:"max=30"`
	Location        string                  `json:"location" validate:"max=120"`
	Industries      []string                `json:"industries" validate:"max=20"`
	Services        []entity.AgencyService  `json:"services" validate:"max=50"`
	SocialLinks     *entity.SocialLinks     `json:"socialLinks"`
	PrivacySettings *entity.PrivacySettings `json:"privacySettings"`
}

func (r agencyRequest) toInput() usecase.AgencyInput {
	return usecase.AgencyInput{
		Name:            r.Name,
		Handle:          r.Handle,
		Tagline:         r.Tagline,
		Description:     r.Description,
		LogoURL:         r.LogoURL,
		Email:           r.Email,
		Phone:           r.Phone,
		Location:        r.Location,
		Industries:      r.Industries,
		Services:        r.Services,
		SocialLinks:     r.SocialLinks,
		PrivacySettings: r.PrivacySettings,
	}
}

func (h *AgencyHandler) GetAgency(c echo.Context) error {
	agency, err := h.agencyUseCase.GetPublicAgency(c.Request().Context(), c.Param("id"), currentUser(c))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, agency)
}

func (h *AgencyHandler) CreateAgency(c echo.Context) error {
	var req agencyRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.Error(c, err)
	}

	agency, err := h.agencyUseCase.UpsertAgency(c.Request().Context(), "", currentUser(c), req.toInput())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, agency)
}

func (h *AgencyHandler) UpdateAgency(c echo.Context) error {
	var req agencyRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.Error(c, err)
	}

	agency, err := h.agencyUseCase.UpsertAgency(c.Request().Context(), c.Param("id"), currentUser(c), req.toInput())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, agency)
}

type agencyMemberRequest struct {
	UserID string `json:"userId" validate:"required"`
	Role   string `json:"role" validate:"required,oneof=admin member"`
	Title  string `json:"title" validate:"max=120"`
}

func (h *AgencyHandler) AddMember(c echo.Context) error {
	var req agencyMemberRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.Error(c, err)
	}

	agency, err := h.agencyUseCase.AddAgencyMember(c.Request().Context(), c.Param("id"), currentUser(c), entity.AgencyMember{
		UserID: req.UserID,
		Role:   req.Role,
		Title:  req.Title,
	})
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, agency)
}

func (h *AgencyHandler) RemoveMember(c echo.Context) error {
	agency, err := h.agencyUseCase.RemoveAgencyMember(c.Request().Context(), c.Param("id"), currentUser(c), c.Param("memberId"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, agency)
}

func (h *AgencyHandler) GetRecruiter(c echo.Context) error {
	recruiter, err := h.agencyUseCase.GetPublicRecruiter(c.Request().Context(), c.Param("uid"), currentUser(c))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, recruiter)
}

func (h *AgencyHandler) GetMyRecruiter(c echo.Context) error {
	recruiter, err := h.agencyUseCase.GetRecruiter(c.Request().Context(), currentUser(c))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, recruiter)
}

type recruiterRequest struct {
	DisplayName     string                  `json:"displayName" validate:"required,max=100"`
	Company         string                  `json:"company" validate:"max=120"`
	Bio             string                  `json:"bio" validate:"max=2000"`
	Email           string                  `json:"email" validate:"omitempty,email"`
	Phone           string                  `json:"phone" validate:"max=30"`
	Location        string                  `json:"location" validate:"max=120"`
	PhotoURL        string                  `json:"photoURL" validate:"omitempty,url"`
	Specializations []string                `json:"specializations" validate:"max=20"`
	CommissionRate  float64                 `json:"commissionRate" validate:"min=0,max=1"`
	SocialLinks     *entity.SocialLinks     `json:"socialLinks"`
	PrivacySettings *entity.PrivacySettings `json:"privacySettings"`
}

func (h *AgencyHandler) UpsertMyRecruiter(c echo.Context) error {
	var req recruiterRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.Error(c, err)
	}

	recruiter, err := h.agencyUseCase.UpsertRecruiter(c.Request().Context(), currentUser(c), usecase.RecruiterInput{
		DisplayName:     req.DisplayName,
		Company:         req.Company,
		Bio:             req.Bio,
		Email:           req.Email,
		Phone:           req.Phone,
		Location:        req.Location,
		PhotoURL:        req.PhotoURL,
		Specializations: req.Specializations,
		CommissionRate:  req.CommissionRate,
		SocialLinks:     req.SocialLinks,
		PrivacySettings: req.PrivacySettings,
	})
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, recruiter)
}
