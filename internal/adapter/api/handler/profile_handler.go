package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"connekt/internal/domain/entity"
	"connekt/internal/usecase"
	"connekt/pkg/response"
)

type profileService interface {
	GetProfile(ctx context.Context, uid string) *entity.Profile
	GetPublicProfile(ctx context.Context, uid, viewerID string) *entity.Profile
	GetPublicProfileByHandle(ctx context.Context, handle, viewerID string) *entity.Profile
	RecordProfileView(ctx context.Context, uid, viewerID string) bool
	ClaimHandle(ctx context.Context, uid, handle string) error
	UpsertProfile(ctx context.Context, uid string, update usecase.ProfileUpdate) bool
	UpdateSkills(ctx context.Context, uid string, skills []string) bool
	UpdatePrivacySettings(ctx context.Context, uid string, settings entity.PrivacySettings) bool
	AddExperience(ctx context.Context, uid string, exp entity.Experience) *entity.Experience
	UpdateExperience(ctx context.Context, uid string, exp entity.Experience) bool
	DeleteExperience(ctx context.Context, uid, id string) bool
	AddEducation(ctx context.Context, uid string, edu entity.Education) *entity.Education
	UpdateEducation(ctx context.Context, uid string, edu entity.Education) bool
	DeleteEducation(ctx context.Context, uid, id string) bool
	AddCustomSection(ctx context.Context, uid string, section entity.CustomSection) *entity.CustomSection
	UpdateCustomSection(ctx context.Context, uid string, section entity.CustomSection) bool
	DeleteCustomSection(ctx context.Context, uid, id string) bool
	UpdateSectionOrder(ctx context.Context, uid string, order []entity.SectionOrderItem) bool
	AddReferral(ctx context.Context, toUID, fromUID, relationship, content string) *entity.Referral
	DeleteReferral(ctx context.Context, uid, id string) bool
}

type layoutService interface {
	GetLayout(ctx context.Context, uid, viewerID string) *entity.ProfileLayout
}

type reputationService interface {
	GetReputationReport(ctx context.Context, uid string) *entity.ReputationReport
}

type ProfileHandler struct {
	profileUseCase    profileService
	layoutUseCase     layoutService
	reputationUseCase reputationService
}

func NewProfileHandler(profiles profileService, layouts layoutService, reputation reputationService) *ProfileHandler {
	return &ProfileHandler{
		profileUseCase:    profiles,
		layoutUseCase:     layouts,
		reputationUseCase: reputation,
	}
}

func (h *ProfileHandler) GetPublicProfile(c echo.Context) error {
	viewerID := currentUser(c)
	profile := h.profileUseCase.GetPublicProfile(c.Request().Context(), c.Param("uid"), viewerID)
	if profile == nil {
		return notFound(c, "Profile")
	}

	h.profileUseCase.RecordProfileView(c.Request().Context(), profile.UID, viewerID)
	return response.Success(c, profile)
}

func (h *ProfileHandler) GetPublicProfileByHandle(c echo.Context) error {
	viewerID := currentUser(c)
	profile := h.profileUseCase.GetPublicProfileByHandle(c.Request().Context(), c.Param("handle"), viewerID)
	if profile == nil {
		return notFound(c, "Profile")
	}

	h.profileUseCase.RecordProfileView(c.Request().Context(), profile.UID, viewerID)
	return response.Success(c, profile)
}

func (h *ProfileHandler) GetLayout(c echo.Context) error {
	layout := h.layoutUseCase.GetLayout(c.Request().Context(), c.Param("uid"), currentUser(c))
	if layout == nil {
		return notFound(c, "Profile")
	}
	return response.Success(c, layout)
}

func (h *ProfileHandler) GetReputation(c echo.Context) error {
	report := h.reputationUseCase.GetReputationReport(c.Request().Context(), c.Param("uid"))
	if report == nil {
		return notFound(c, "Profile")
	}
	return response.Success(c, report)
}

func (h *ProfileHandler) GetMyProfile(c echo.Context) error {
	profile := h.profileUseCase.GetProfile(c.Request().Context(), currentUser(c))
	if profile == nil {
		return notFound(c, "Profile")
	}
	return response.Success(c, profile)
}

type updateProfileRequest struct {
	DisplayName     *string             `json:"displayName" validate:"omitempty,max=100"`
	Title           *string             `json:"title" validate:"omitempty,max=120"`
	Bio             *string             `json:"bio" validate:"omitempty,max=2000"`
	Location        *string             `json:"location" validate:"omitempty,max=120"`
	Phone           *string             `json:"phone" validate:"omitempty,max=30"`
	Email           *string             `json:"email" validate:"omitempty,email"`
	PhotoURL        *string             `json:"photoURL" validate:"omitempty,url"`
	CoverPhotoURL   *string             `json:"coverPhotoURL" validate:"omitempty,url"`
	Availability    *string             `json:"availability" validate:"omitempty,oneof=available busy unavailable"`
	HourlyRate      *float64            `json:"hourlyRate" validate:"omitempty,min=0"`
	YearsExperience *int                `json:"yearsExperience" validate:"omitempty,min=0,max=80"`
	SocialLinks     *entity.SocialLinks `json:"socialLinks"`
}

func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	var req updateProfileRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.Error(c, err)
	}

	uid := currentUser(c)
	ok := h.profileUseCase.UpsertProfile(c.Request().Context(), uid, usecase.ProfileUpdate{
		DisplayName:     req.DisplayName,
		Title:           req.Title,
		Bio:             req.Bio,
		Location:        req.Location,
		Phone:           req.Phone,
		Email:           req.Email,
		PhotoURL:        req.PhotoURL,
		CoverPhotoURL:   req.CoverPhotoURL,
		Availability:    req.Availability,
		HourlyRate:      req.HourlyRate,
		YearsExperience: req.YearsExperience,
		SocialLinks:     req.SocialLinks,
	})
	if !ok {
		return rejected(c, "update profile")
	}

	return response.Success(c, h.profileUseCase.GetProfile(c.Request().Context(), uid))
}

type claimHandleRequest struct {
	Handle string `json:"handle" validate:"required"`
}

func (h *ProfileHandler) ClaimHandle(c echo.Context) error {
	var req claimHandleRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.Error(c, err)
	}

	if err := h.profileUseCase.ClaimHandle(c.Request().Context(), currentUser(c), req.Handle); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"handle": req.Handle})
}

type updateSkillsRequest struct {
	Skills []string `json:"skills" validate:"max=50,dive,required,max=50"`
}

func (h *ProfileHandler) UpdateSkills(c echo.Context) error {
	var req updateSkillsRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.Error(c, err)
	}

	if !h.profileUseCase.UpdateSkills(c.Request().Context(), currentUser(c), req.Skills) {
		return rejected(c, "update skills")
	}
	return response.Success(c, map[string]interface{}{"skills": req.Skills})
}

func (h *ProfileHandler) UpdatePrivacySettings(c echo.Context) error {
	var req entity.PrivacySettings
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if !h.profileUseCase.UpdatePrivacySettings(c.Request().Context(), currentUser(c), req) {
		return rejected(c, "update privacy settings")
	}
	return response.Success(c, req)
}

type experienceRequest struct {
	Title       string     `json:"title" validate:"required,max=120"`
	Company     string     `json:"company" validate:"required,max=120"`
	Location    string     `json:"location"`
	Description string     `json:"description" validate:"max=2000"`
	Skills      []string   `json:"skills"`
	StartDate   time.Time  `json:"startDate" validate:"required"`
	EndDate     *time.Time `json:"endDate"`
	Current     bool       `json:"current"`
}

func (r experienceRequest) toEntity(id string) entity.Experience {
	return entity.Experience{
		ID:          id,
		Title:       r.Title,
		Company:     r.Company,
		Location:    r.Location,
		Description: r.Description,
		Skills:      r.Skills,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
		Current:     r.Current,
	}
}

func (h *ProfileHandler) AddExperience(c echo.Context) error {
	var req experienceRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.Error(c, err)
	}

	exp := h.profileUseCase.AddExperience(c.Request().Context(), currentUser(c), req.toEntity(""))
	if exp == nil {
		return rejected(c, "add experience")
	}
	return response.Created(c, exp)
}

func (h *ProfileHandler) UpdateExperience(c echo.Context) error {
	var req experienceRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.Error(c, err)
	}

	if !h.profileUseCase.UpdateExperience(c.Request().Context(), currentUser(c), req.toEntity(c.Param("id"))) {
		return rejected(c, "update experience")
	}
	return response.Success(c, req.toEntity(c.Param("id")))
}

func (h *ProfileHandler) DeleteExperience(c echo.Context) error {
	if !h.profileUseCase.DeleteExperience(c.Request().Context(), currentUser(c), c.Param("id")) {
		return notFound(c, "Experience")
	}
	return c.NoContent(http.StatusNoContent)
}

type educationRequest struct {
	School       string     `json:"school" validate:"required,max=120"`
	Degree       string     `json:"degree" validate:"max=120"`
	FieldOfStudy string     `json:"fieldOfStudy"`
	Grade        string     `json:"grade"`
	Description  string     `json:"description" validate:"max=2000"`
	StartDate    time.Time  `json:"startDate" validate:"required"`
	EndDate      *time.Time `json:"endDate"`
	Current      bool       `json:"current"`
}

func (r educationRequest) toEntity(id string) entity.Education {
	return entity.Education{
		ID:           id,
		School:       r.School,
		Degree:       r.Degree,
		FieldOfStudy: r.FieldOfStudy,
		Grade:        r.Grade,
		Description:  r.Description,
		StartDate:    r.StartDate,
		EndDate:      r.EndDate,
		Current:      r.Current,
	}
}

func (h *ProfileHandler) AddEducation(c echo.Context) error {
	var req educationRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.Error(c, err)
	}

	edu := h.profileUseCase.AddEducation(c.Request().Context(), currentUser(c), req.toEntity(""))
	if edu == nil {
		return rejected(c, "add education")
	}
	return response.Created(c, edu)
}

func (h *ProfileHandler) UpdateEducation(c echo.Context) error {
	var req educationRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.Error(c, err)
	}

	if !h.profileUseCase.UpdateEducation(c.Request().Context(), currentUser(c), req.toEntity(c.Param("id"))) {
		return rejected(c, "update education")
	}
	return response.Success(c, req.toEntity(c.Param("id")))
}

func (h *ProfileHandler) DeleteEducation(c echo.Context) error {
	if !h.profileUseCase.DeleteEducation(c.Request().Context(), currentUser(c), c.Param("id")) {
		return notFound(c, "Education")
	}
	return c.NoContent(http.StatusNoContent)
}

type customSectionRequest struct {
	Type    entity.SectionType    `json:"type" validate:"required"`
	Title   string                `json:"title" validate:"required,max=120"`
	Visible *bool                 `json:"visible"`
	Content entity.SectionContent `json:"content"`
}

func (r customSectionRequest) toEntity(id string) entity.CustomSection {
	visible := true
	if r.Visible != nil {
		visible = *r.Visible
	}
	return entity.CustomSection{
		ID:      id,
		Type:    r.Type,
		Title:   r.Title,
		Visible: visible,
		Content: r.Content,
	}
}

func (h *ProfileHandler) AddCustomSection(c echo.Context) error {
	var req customSectionRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.Error(c, err)
	}

	section := h.profileUseCase.AddCustomSection(c.Request().Context(), currentUser(c), req.toEntity(""))
	if section == nil {
		return rejected(c, "add section")
	}
	return response.Created(c, section)
}

func (h *ProfileHandler) UpdateCustomSection(c echo.Context) error {
	var req customSectionRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.Error(c, err)
	}

	if !h.profileUseCase.UpdateCustomSection(c.Request().Context(), currentUser(c), req.toEntity(c.Param("id"))) {
		return rejected(c, "update section")
	}
	return response.Success(c, req.toEntity(c.Param("id")))
}

func (h *ProfileHandler) DeleteCustomSection(c echo.Context) error {
	if !h.profileUseCase.DeleteCustomSection(c.Request().Context(), currentUser(c), c.Param("id")) {
		return notFound(c, "Section")
	}
	return c.NoContent(http.StatusNoContent)
}

type sectionOrderRequest struct {
	Order []entity.SectionOrderItem `json:"order" validate:"required,dive"`
}

func (h *ProfileHandler) UpdateSectionOrder(c echo.Context) error {
	var req sectionOrderRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.Error(c, err)
	}

	if !h.profileUseCase.UpdateSectionOrder(c.Request().Context(), currentUser(c), req.Order) {
		return rejected(c, "update section order")
	}
	return response.Success(c, req.Order)
}

type referralRequest struct {
	Relationship string `json:"relationship" validate:"max=120"`
	Content      string `json:"content" validate:"required,max=2000"`
}

func (h *ProfileHandler) AddReferral(c echo.Context) error {
	var req referralRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.Error(c, err)
	}

	referral := h.profileUseCase.AddReferral(c.Request().Context(), c.Param("uid"), currentUser(c), req.Relationship, req.Content)
	if referral == nil {
		return rejected(c, "add referral")
	}
	return response.Created(c, referral)
}

func (h *ProfileHandler) DeleteReferral(c echo.Context) error {
	if !h.profileUseCase.DeleteReferral(c.Request().Context(), currentUser(c), c.Param("id")) {
		return notFound(c, "Referral")
	}
	return c.NoContent(http.StatusNoContent)
}
