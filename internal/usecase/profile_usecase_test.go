package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"connekt/internal/domain/entity"
	"connekt/pkg/errors"
	"connekt/pkg/logger"
)

type profileFixture struct {
	uc       *ProfileUseCase
	profiles *fakeProfileRepo
	accounts *fakeAccountRepo
	handles  *fakeHandleRepo
	ratings  *fakeRatingRepo
}

func newProfileFixture(profiles []*entity.Profile, accounts ...*entity.Account) *profileFixture {
	f := &profileFixture{
		profiles: newFakeProfileRepo(profiles...),
		accounts: newFakeAccountRepo(accounts...),
		handles:  newFakeHandleRepo(),
		ratings:  newFakeRatingRepo(),
	}
	f.uc = NewProfileUseCase(f.profiles, f.accounts, f.handles, f.ratings, logger.NewNop())
	f.uc.now = fixedTime
	return f
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestGetProfileResolvesSources(t *testing.T) {
	ctx := context.Background()
	account := &entity.Account{
		UID:         "u1",
		Username:    "ada",
		DisplayName: "Ada",
		Bio:         "account bio",
		Skills:      []string{"go"},
		CreatedAt:   date(2023, 1, 1),
	}

	t.Run("account only", func(t *testing.T) {
		f := newProfileFixture(nil, account)
		p := f.uc.GetProfile(ctx, "u1")
		require.NotNil(t, p)
		assert.Equal(t, "Ada", p.DisplayName)
		assert.Equal(t, "account bio", p.Bio)
		assert.Equal(t, []string{"go"}, p.Skills)
		assert.Equal(t, entity.DefaultSectionOrder(), p.SectionOrder)
		assert.Equal(t, entity.DefaultPrivacySettings(), p.PrivacySettings)
		assert.NotNil(t, p.Experience)
	})

	t.Run("extended wins except empty bio and skills", func(t *testing.T) {
		f := newProfileFixture([]*entity.Profile{{UID: "u1", DisplayName: "Ada L.", Title: "Engineer"}}, account)
		p := f.uc.GetProfile(ctx, "u1")
		require.NotNil(t, p)
		assert.Equal(t, "Ada L.", p.DisplayName)
		assert.Equal(t, "Engineer", p.Title)
		assert.Equal(t, "account bio", p.Bio)
		assert.Equal(t, []string{"go"}, p.Skills)
	})

	t.Run("extended bio is kept", func(t *testing.T) {
		f := newProfileFixture([]*entity.Profile{{UID: "u1", Bio: "mine", Skills: []string{"rust"}}}, account)
		p := f.uc.GetProfile(ctx, "u1")
		require.NotNil(t, p)
		assert.Equal(t, "mine", p.Bio)
		assert.Equal(t, []string{"rust"}, p.Skills)
	})

	t.Run("neither source", func(t *testing.T) {
		f := newProfileFixture(nil)
		assert.Nil(t, f.uc.GetProfile(ctx, "u1"))
	})

	t.Run("backend failure looks like not found", func(t *testing.T) {
		f := newProfileFixture([]*entity.Profile{{UID: "u1"}}, account)
		f.profiles.err = errBoom
		assert.Nil(t, f.uc.GetProfile(ctx, "u1"))
	})
}

func TestGetProfileByHandle(t *testing.T) {
	ctx := context.Background()
	f := newProfileFixture([]*entity.Profile{{UID: "u1", DisplayName: "Ada"}})
	f.handles.handles["ada"] = "u1"

	p := f.uc.GetProfileByHandle(ctx, "@Ada")
	require.NotNil(t, p)
	assert.Equal(t, "u1", p.UID)

	assert.Nil(t, f.uc.GetProfileByHandle(ctx, "nobody"))
}

func TestClaimHandle(t *testing.T) {
	ctx := context.Background()
	f := newProfileFixture([]*entity.Profile{
		{UID: "u1", Username: "old_name"},
		{UID: "u2", Username: "taken"},
	})
	f.handles.handles["old_name"] = "u1"
	f.handles.handles["taken"] = "u2"

	err := f.uc.ClaimHandle(ctx, "u1", "No")
	assert.True(t, errors.Is(err, errors.CodeBadRequest))

	err = f.uc.ClaimHandle(ctx, "u1", "taken")
	assert.True(t, errors.Is(err, errors.CodeConflict))

	require.NoError(t, f.uc.ClaimHandle(ctx, "u1", "@Ada.Lovelace"))
	assert.Equal(t, "u1", f.handles.handles["ada.lovelace"])
	_, stillMapped := f.handles.handles["old_name"]
	assert.False(t, stillMapped)
	assert.Equal(t, "ada.lovelace", f.profiles.stored("u1").Username)

	// claiming your own handle again is a no-op
	require.NoError(t, f.uc.ClaimHandle(ctx, "u1", "ada.lovelace"))
}

func TestUpsertProfile(t *testing.T) {
	ctx := context.Background()
	f := newProfileFixture([]*entity.Profile{{UID: "u1", Title: "Old", Bio: "keep"}})

	title := "  Staff Engineer "
	rate := 80.0
	assert.True(t, f.uc.UpsertProfile(ctx, "u1", ProfileUpdate{Title: &title, HourlyRate: &rate}))

	stored := f.profiles.stored("u1")
	assert.Equal(t, "Staff Engineer", stored.Title)
	assert.Equal(t, "keep", stored.Bio)
	assert.Equal(t, 80.0, stored.HourlyRate)
	assert.Equal(t, testNow, stored.UpdatedAt)

	negative := -1.0
	assert.False(t, f.uc.UpsertProfile(ctx, "u1", ProfileUpdate{HourlyRate: &negative}))

	f.profiles.err = errBoom
	assert.False(t, f.uc.UpsertProfile(ctx, "u1", ProfileUpdate{Title: &title}))
}

func TestExperienceLifecycle(t *testing.T) {
	ctx := context.Background()
	f := newProfileFixture(nil, &entity.Account{UID: "u1", DisplayName: "Ada"})

	end := date(2020, 1, 1)
	added := f.uc.AddExperience(ctx, "u1", entity.Experience{
		Title:     "Engineer",
		Company:   "Acme",
		StartDate: date(2021, 1, 1),
		EndDate:   &end,
		Current:   true,
	})
	require.NotNil(t, added, "current entries skip the end-date check")
	assert.NotEmpty(t, added.ID)
	assert.Nil(t, added.EndDate)

	stored := f.profiles.stored("u1")
	require.Len(t, stored.Experience, 1)
	assert.Equal(t, "Ada", stored.DisplayName, "first write initializes the record from the account")

	bad := f.uc.AddExperience(ctx, "u1", entity.Experience{
		Title:     "Engineer",
		Company:   "Acme",
		StartDate: date(2021, 1, 1),
		EndDate:   &end,
	})
	assert.Nil(t, bad)

	updated := *added
	updated.Title = "Senior Engineer"
	assert.True(t, f.uc.UpdateExperience(ctx, "u1", updated))
	assert.Equal(t, "Senior Engineer", f.profiles.stored("u1").Experience[0].Title)

	missing := updated
	missing.ID = "nope"
	assert.False(t, f.uc.UpdateExperience(ctx, "u1", missing))

	assert.True(t, f.uc.DeleteExperience(ctx, "u1", added.ID))
	assert.Empty(t, f.profiles.stored("u1").Experience)
}

func TestDeleteUnknownExperienceLeavesListUnchanged(t *testing.T) {
	ctx := context.Background()
	existing := []entity.Experience{
		{ID: "e1", Title: "Engineer", Company: "Acme", StartDate: date(2020, 1, 1)},
		{ID: "e2", Title: "Lead", Company: "Initech", StartDate: date(2022, 1, 1), Current: true},
	}
	f := newProfileFixture([]*entity.Profile{{UID: "u1", Experience: existing}})

	assert.False(t, f.uc.DeleteExperience(ctx, "u1", "missing"))
	assert.Equal(t, existing, f.profiles.stored("u1").Experience)
	assert.Zero(t, f.profiles.merges)
}

func TestEducationLifecycle(t *testing.T) {
	ctx := context.Background()
	f := newProfileFixture([]*entity.Profile{{UID: "u1"}})

	edu := f.uc.AddEducation(ctx, "u1", entity.Education{School: "MIT", StartDate: date(2010, 9, 1)})
	require.NotNil(t, edu)
	assert.Nil(t, f.uc.AddEducation(ctx, "u1", entity.Education{StartDate: date(2010, 9, 1)}))

	edu.Degree = "BSc"
	assert.True(t, f.uc.UpdateEducation(ctx, "u1", *edu))
	assert.Equal(t, "BSc", f.profiles.stored("u1").Education[0].Degree)

	assert.False(t, f.uc.DeleteEducation(ctx, "u1", "missing"))
	assert.True(t, f.uc.DeleteEducation(ctx, "u1", edu.ID))
}

func TestCustomSectionsAndOrder(t *testing.T) {
	ctx := context.Background()
	f := newProfileFixture([]*entity.Profile{{UID: "u1"}})

	mismatched := entity.CustomSection{
		Type:    entity.SectionLinks,
		Content: entity.SectionContent{Text: &entity.TextContent{Body: "hi"}},
	}
	assert.Nil(t, f.uc.AddCustomSection(ctx, "u1", mismatched))

	builtin := entity.CustomSection{Type: entity.SectionAbout}
	assert.Nil(t, f.uc.AddCustomSection(ctx, "u1", builtin))

	section := f.uc.AddCustomSection(ctx, "u1", entity.CustomSection{
		Type:    entity.SectionText,
		Title:   "Now",
		Visible: true,
		Content: entity.SectionContent{Text: &entity.TextContent{Body: "Writing a compiler"}},
	})
	require.NotNil(t, section)

	stored := f.profiles.stored("u1")
	require.Len(t, stored.SectionOrder, 6)
	last := stored.SectionOrder[5]
	assert.Equal(t, section.ID, last.SectionID)
	assert.Equal(t, 5, last.Position)

	section.Visible = false
	section.Content = entity.SectionContent{Text: &entity.TextContent{Body: "Shipping"}}
	assert.True(t, f.uc.UpdateCustomSection(ctx, "u1", *section))
	stored = f.profiles.stored("u1")
	assert.Equal(t, "Shipping", stored.CustomSections[0].Content.Text.Body)
	assert.False(t, stored.SectionOrder[5].Visible)

	section.Content = entity.SectionContent{Stats: &entity.StatsContent{}}
	assert.False(t, f.uc.UpdateCustomSection(ctx, "u1", *section), "type is fixed at creation")

	reordered := []entity.SectionOrderItem{
		{SectionID: section.ID, Type: entity.SectionText, Visible: true},
		{SectionID: "about", Type: entity.SectionAbout, Visible: true},
	}
	assert.True(t, f.uc.UpdateSectionOrder(ctx, "u1", reordered))
	stored = f.profiles.stored("u1")
	require.Len(t, stored.SectionOrder, 2)
	assert.Equal(t, 0, stored.SectionOrder[0].Position)
	assert.Equal(t, 1, stored.SectionOrder[1].Position)

	dangling := []entity.SectionOrderItem{{SectionID: "ghost", Type: entity.SectionText}}
	assert.False(t, f.uc.UpdateSectionOrder(ctx, "u1", dangling))
	duplicate := []entity.SectionOrderItem{
		{SectionID: "about", Type: entity.SectionAbout},
		{SectionID: "about", Type: entity.SectionAbout},
	}
	assert.False(t, f.uc.UpdateSectionOrder(ctx, "u1", duplicate))

	assert.True(t, f.uc.DeleteCustomSection(ctx, "u1", section.ID))
	stored = f.profiles.stored("u1")
	assert.Empty(t, stored.CustomSections)
	require.Len(t, stored.SectionOrder, 1)
	assert.Equal(t, "about", stored.SectionOrder[0].SectionID)
	assert.Equal(t, 0, stored.SectionOrder[0].Position)
}

func TestReferrals(t *testing.T) {
	ctx := context.Background()
	f := newProfileFixture([]*entity.Profile{
		{UID: "u1"},
		{UID: "u2", DisplayName: "Grace", PhotoURL: "https://img/grace.png"},
	})

	assert.Nil(t, f.uc.AddReferral(ctx, "u1", "u1", "self", "great"))

	ref := f.uc.AddReferral(ctx, "u1", "u2", "manager", "Reliable and sharp")
	require.NotNil(t, ref)
	assert.Equal(t, "Grace", ref.FromUserName)
	assert.Equal(t, "https://img/grace.png", ref.FromPhotoURL)

	assert.True(t, f.uc.DeleteReferral(ctx, "u1", ref.ID))
	assert.False(t, f.uc.DeleteReferral(ctx, "u1", ref.ID))
}

func TestUpdateSkillsIsASet(t *testing.T) {
	ctx := context.Background()
	f := newProfileFixture([]*entity.Profile{{UID: "u1"}})

	assert.True(t, f.uc.UpdateSkills(ctx, "u1", []string{" Go ", "go", "", "Rust", "GO"}))
	assert.Equal(t, []string{"Go", "Rust"}, f.profiles.stored("u1").Skills)
}

func TestUpdatePrivacySettings(t *testing.T) {
	ctx := context.Background()
	f := newProfileFixture([]*entity.Profile{{UID: "u1"}})

	settings := entity.DefaultPrivacySettings()
	settings.Location = entity.VisibilityPrivate
	assert.True(t, f.uc.UpdatePrivacySettings(ctx, "u1", settings))
	assert.Equal(t, entity.VisibilityPrivate, f.profiles.stored("u1").PrivacySettings.Location)

	settings.Email = "friends"
	assert.False(t, f.uc.UpdatePrivacySettings(ctx, "u1", settings))
}

func TestRecordProfileView(t *testing.T) {
	ctx := context.Background()
	f := newProfileFixture([]*entity.Profile{{UID: "u1"}})

	assert.False(t, f.uc.RecordProfileView(ctx, "u1", "u1"))
	assert.True(t, f.uc.RecordProfileView(ctx, "u1", "u2"))
	assert.True(t, f.uc.RecordProfileView(ctx, "u1", ""))
	assert.Equal(t, 2, f.profiles.stored("u1").Stats.ProfileViews)
}

func TestPortfolioOrdering(t *testing.T) {
	ctx := context.Background()
	f := newProfileFixture([]*entity.Profile{{UID: "u1", Portfolio: []entity.MediaItem{{ID: "a"}, {ID: "b"}, {ID: "c"}}}})

	assert.False(t, f.uc.ReorderPortfolio(ctx, "u1", []string{"a", "b"}))
	assert.False(t, f.uc.ReorderPortfolio(ctx, "u1", []string{"a", "a", "b"}))
	assert.True(t, f.uc.ReorderPortfolio(ctx, "u1", []string{"c", "a", "b"}))

	ids := func() []string {
		var out []string
		for _, m := range f.profiles.stored("u1").Portfolio {
			out = append(out, m.ID)
		}
		return out
	}
	assert.Equal(t, []string{"c", "a", "b"}, ids())

	removed := f.uc.RemovePortfolioItem(ctx, "u1", "a")
	require.NotNil(t, removed)
	assert.Equal(t, []string{"c", "b"}, ids())
	assert.Nil(t, f.uc.RemovePortfolioItem(ctx, "u1", "a"))
}

func TestScalarEditsInitializeAccountOnlyProfile(t *testing.T) {
	ctx := context.Background()
	account := &entity.Account{UID: "u1", DisplayName: "Ada", Username: "ada", Email: "ada@x.io", PhotoURL: "p.png"}

	edits := map[string]func(f *profileFixture) bool{
		"upsert": func(f *profileFixture) bool {
			title := "Engineer"
			return f.uc.UpsertProfile(ctx, "u1", ProfileUpdate{Title: &title})
		},
		"skills": func(f *profileFixture) bool {
			return f.uc.UpdateSkills(ctx, "u1", []string{"go"})
		},
		"privacy": func(f *profileFixture) bool {
			return f.uc.UpdatePrivacySettings(ctx, "u1", entity.DefaultPrivacySettings())
		},
		"handle": func(f *profileFixture) bool {
			return f.uc.ClaimHandle(ctx, "u1", "ada.l") == nil
		},
	}

	for name, edit := range edits {
		t.Run(name, func(t *testing.T) {
			f := newProfileFixture(nil, account)
			require.True(t, edit(f))

			stored := f.profiles.stored("u1")
			require.NotNil(t, stored)
			assert.Equal(t, "Ada", stored.DisplayName)
			assert.Equal(t, "ada@x.io", stored.Email)
			assert.Equal(t, "p.png", stored.PhotoURL)
		})
	}

	f := newProfileFixture(nil)
	assert.False(t, f.uc.UpdateSkills(ctx, "nobody", []string{"go"}))
	assert.Nil(t, f.profiles.stored("nobody"))
}
