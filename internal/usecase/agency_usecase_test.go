package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"connekt/internal/domain/entity"
	"connekt/pkg/errors"
	"connekt/pkg/logger"
)

func newAgencyFixture() (*AgencyUseCase, *fakeAgencyRepo, *fakeRecruiterRepo) {
	agencies := &fakeAgencyRepo{agencies: map[string]*entity.AgencyProfile{}}
	recruiters := &fakeRecruiterRepo{recruiters: map[string]*entity.RecruiterProfile{}}
	uc := NewAgencyUseCase(agencies, recruiters, logger.NewNop())
	uc.now = fixedTime
	return uc, agencies, recruiters
}

func TestUpsertAgency(t *testing.T) {
	ctx := context.Background()
	uc, agencies, _ := newAgencyFixture()

	_, err := uc.UpsertAgency(ctx, "", "owner", AgencyInput{Name: "  "})
	assert.True(t, errors.Is(err, errors.CodeBadRequest))

	created, err := uc.UpsertAgency(ctx, "", "owner", AgencyInput{
		Name:       " Studio ",
		Handle:     "@Studio",
		Email:      "hi@studio.test",
		Industries: []string{"Fintech", "fintech", "Health"},
		Services:   []entity.AgencyService{{Name: "Audits"}},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Studio", created.Name)
	assert.Equal(t, "studio", created.Handle)
	assert.Equal(t, []string{"Fintech", "Health"}, created.Industries)
	assert.NotEmpty(t, created.Services[0].ID)
	require.Len(t, created.Members, 1)
	assert.Equal(t, AgencyRoleOwner, created.Members[0].Role)
	assert.Equal(t, entity.DefaultPrivacySettings(), created.PrivacySettings)
	assert.Contains(t, agencies.agencies, created.ID)

	_, err = uc.UpsertAgency(ctx, created.ID, "stranger", AgencyInput{Name: "Hijacked"})
	assert.True(t, errors.Is(err, errors.CodeForbidden))

	updated, err := uc.UpsertAgency(ctx, created.ID, "owner", AgencyInput{Name: "Studio Two"})
	require.NoError(t, err)
	assert.Equal(t, "Studio Two", updated.Name)
	assert.Equal(t, "owner", updated.OwnerID)
}

func TestAgencyMembers(t *testing.T) {
	ctx := context.Background()
	uc, _, _ := newAgencyFixture()
	agency, err := uc.UpsertAgency(ctx, "", "owner", AgencyInput{Name: "Studio"})
	require.NoError(t, err)

	_, err = uc.AddAgencyMember(ctx, agency.ID, "owner", entity.AgencyMember{UserID: "m", Role: AgencyRoleOwner})
	assert.True(t, errors.Is(err, errors.CodeBadRequest))

	withAdmin, err := uc.AddAgencyMember(ctx, agency.ID, "owner", entity.AgencyMember{UserID: "admin", Role: AgencyRoleAdmin})
	require.NoError(t, err)
	assert.Len(t, withAdmin.Members, 2)

	_, err = uc.AddAgencyMember(ctx, agency.ID, "admin", entity.AgencyMember{UserID: "m"})
	require.NoError(t, err)
	_, err = uc.AddAgencyMember(ctx, agency.ID, "m", entity.AgencyMember{UserID: "x"})
	assert.True(t, errors.Is(err, errors.CodeForbidden))
	_, err = uc.AddAgencyMember(ctx, agency.ID, "owner", entity.AgencyMember{UserID: "m"})
	assert.True(t, errors.Is(err, errors.CodeConflict))

	_, err = uc.RemoveAgencyMember(ctx, agency.ID, "admin", "owner")
	assert.True(t, errors.Is(err, errors.CodeBadRequest))

	left, err := uc.RemoveAgencyMember(ctx, agency.ID, "m", "m")
	require.NoError(t, err)
	assert.Len(t, left.Members, 2)

	_, err = uc.RemoveAgencyMember(ctx, agency.ID, "owner", "m")
	assert.True(t, errors.Is(err, errors.CodeNotFound))
}

func TestGetPublicAgency(t *testing.T) {
	ctx := context.Background()
	uc, _, _ := newAgencyFixture()
	agency, err := uc.UpsertAgency(ctx, "", "owner", AgencyInput{Name: "Studio", Email: "hi@studio.test"})
	require.NoError(t, err)

	public, err := uc.GetPublicAgency(ctx, agency.ID, "")
	require.NoError(t, err)
	assert.Empty(t, public.Email)

	own, err := uc.GetPublicAgency(ctx, agency.ID, "owner")
	require.NoError(t, err)
	assert.Equal(t, "hi@studio.test", own.Email)

	_, err = uc.GetPublicAgency(ctx, "missing", "")
	assert.True(t, errors.IsNotFound(err))
}

func TestUpsertRecruiter(t *testing.T) {
	ctx := context.Background()
	uc, _, recruiters := newAgencyFixture()

	_, err := uc.UpsertRecruiter(ctx, "r", RecruiterInput{CommissionRate: 1.5})
	assert.True(t, errors.Is(err, errors.CodeBadRequest))

	recruiters.recruiters["r"] = &entity.RecruiterProfile{UID: "r", PlacementsCount: 12}
	rec, err := uc.UpsertRecruiter(ctx, "r", RecruiterInput{
		DisplayName:     "Rita",
		Phone:           "+1 555 0101",
		Specializations: []string{"Go", "go", "Data"},
		CommissionRate:  0.2,
	})
	require.NoError(t, err)
	assert.Equal(t, 12, rec.PlacementsCount, "stats survive a profile edit")
	assert.Equal(t, []string{"Go", "Data"}, rec.Specializations)

	public, err := uc.GetPublicRecruiter(ctx, "r", "viewer")
	require.NoError(t, err)
	assert.Empty(t, public.Phone)
	own, err := uc.GetPublicRecruiter(ctx, "r", "r")
	require.NoError(t, err)
	assert.Equal(t, "+1 555 0101", own.Phone)

	fresh, err := uc.UpsertRecruiter(ctx, "new", RecruiterInput{DisplayName: "Nia"})
	require.NoError(t, err)
	assert.Equal(t, entity.DefaultPrivacySettings(), fresh.PrivacySettings)
}
