package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"connekt/internal/domain/entity"
	"connekt/pkg/logger"
)

type analyticsFixture struct {
	uc       *ProAnalyticsUseCase
	projects *fakeProjectRepo
	tasks    *fakeTaskRepo
	profile  *profileFixture
}

func newAnalyticsFixture(profiles ...*entity.Profile) *analyticsFixture {
	pf := newProfileFixture(profiles)
	f := &analyticsFixture{
		projects: &fakeProjectRepo{},
		tasks:    &fakeTaskRepo{},
		profile:  pf,
	}
	f.uc = NewProAnalyticsUseCase(f.projects, f.tasks, pf.profiles, pf.uc, logger.NewNop())
	f.uc.now = fixedTime
	return f
}

func hours(h float64) *float64 { return &h }

func TestWorkspaceAnalytics(t *testing.T) {
	ctx := context.Background()
	f := newAnalyticsFixture()
	f.projects.projects = []*entity.Project{
		{ID: "p1", WorkspaceID: "w", Status: entity.ProjectStatusCompleted, CreatedAt: date(2024, 6, 1), UpdatedAt: date(2024, 6, 11)},
		{ID: "p2", WorkspaceID: "w", Status: entity.ProjectStatusCompleted, UpdatedAt: date(2024, 6, 11)},
		{ID: "p3", WorkspaceID: "w", Status: entity.ProjectStatusActive},
		{ID: "p4", WorkspaceID: "other", Status: entity.ProjectStatusActive},
	}
	f.tasks.tasks = []*entity.Task{
		{ID: "t1", WorkspaceID: "w", Status: entity.TaskStatusDone},
		{ID: "t2", WorkspaceID: "w", Status: entity.TaskStatusOpen},
		{ID: "t3", WorkspaceID: "w", Status: entity.TaskStatusPaid},
		{ID: "t4", WorkspaceID: "w", Status: entity.TaskStatusReview},
	}

	report := f.uc.WorkspaceAnalytics(ctx, "w")
	require.NotNil(t, report)
	assert.Equal(t, 3, report.TotalProjects)
	assert.Equal(t, 2, report.CompletedProjects)
	assert.Equal(t, 1, report.ActiveProjects)
	assert.Equal(t, 4, report.TotalTasks)
	assert.Equal(t, 2, report.CompletedTasks)
	assert.Equal(t, 50.0, report.TeamProductivity)
	assert.Equal(t, 10.0, report.AverageProjectDuration, "projects without both timestamps are excluded from the mean")
	assert.Equal(t, 66.67, report.OnTimeDeliveryRate)
	assert.Equal(t, 85.0, report.BudgetUtilization)
	assert.ElementsMatch(t, []string{"onTimeDeliveryRate", "budgetUtilization"}, report.PlaceholderFields)
	assert.Equal(t, testNow, report.GeneratedAt)
}

func TestWorkspaceAnalyticsWithoutTasks(t *testing.T) {
	f := newAnalyticsFixture()

	report := f.uc.WorkspaceAnalytics(context.Background(), "empty")
	require.NotNil(t, report)
	assert.Equal(t, 0.0, report.TeamProductivity)
	assert.Equal(t, 0.0, report.AverageProjectDuration)
	assert.Equal(t, 0.0, report.OnTimeDeliveryRate)
}

func TestWorkspaceAnalyticsBackendFailure(t *testing.T) {
	f := newAnalyticsFixture()
	f.tasks.err = errBoom
	assert.Nil(t, f.uc.WorkspaceAnalytics(context.Background(), "w"))
}

func TestProjectPerformanceMetrics(t *testing.T) {
	ctx := context.Background()
	f := newAnalyticsFixture()
	f.projects.projects = []*entity.Project{{ID: "p", Name: "Launch"}}
	f.tasks.tasks = []*entity.Task{
		{ProjectID: "p", Status: entity.TaskStatusDone, AssigneeUsername: "ada"},
		{ProjectID: "p", Status: entity.TaskStatusOpen, AssigneeUsername: "ada"},
		{ProjectID: "p", Status: entity.TaskStatusPaid},
	}

	metrics := f.uc.ProjectPerformanceMetrics(ctx, "p")
	require.NotNil(t, metrics)
	assert.Equal(t, 66.67, metrics.CompletionRate)
	assert.Equal(t, map[string]int{"ada": 2}, metrics.TaskDistribution)
	assert.Equal(t, entity.TimelineOnTrack, metrics.TimelineHealth)
	assert.Nil(t, metrics.DaysUntilDeadline)

	assert.Nil(t, f.uc.ProjectPerformanceMetrics(ctx, "missing"))
}

func TestProjectMetricsEmptyProject(t *testing.T) {
	metrics := buildProjectMetrics(&entity.Project{ID: "p"}, nil, testNow)
	assert.Equal(t, 0.0, metrics.CompletionRate)
	assert.Empty(t, metrics.TaskDistribution)
}

func TestTimelineHealth(t *testing.T) {
	tests := []struct {
		name       string
		deadline   time.Time
		completion float64
		want       entity.TimelineHealth
	}{
		{"past deadline", testNow.Add(-time.Hour), 99, entity.TimelineDelayed},
		{"close and behind", testNow.Add(3 * 24 * time.Hour), 33.33, entity.TimelineAtRisk},
		{"close but ahead", testNow.Add(3 * 24 * time.Hour), 50, entity.TimelineOnTrack},
		{"far and behind", testNow.Add(30 * 24 * time.Hour), 0, entity.TimelineOnTrack},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, timelineHealth(tt.deadline, testNow, tt.completion))
		})
	}
}

func TestProjectMetricsDaysUntilDeadline(t *testing.T) {
	deadline := testNow.Add(3*24*time.Hour + time.Hour)
	metrics := buildProjectMetrics(&entity.Project{ID: "p", Deadline: &deadline}, []*entity.Task{{Status: entity.TaskStatusOpen}}, testNow)

	require.NotNil(t, metrics.DaysUntilDeadline)
	assert.Equal(t, 4, *metrics.DaysUntilDeadline)
	assert.Equal(t, entity.TimelineAtRisk, metrics.TimelineHealth)
}

func productivityTasks() []*entity.Task {
	return []*entity.Task{
		{AssigneeID: "u", Status: entity.TaskStatusDone, UpdatedAt: date(2024, 6, 3), Pricing: entity.TaskPricing{Amount: 100}, EstimatedHours: 8, ActualHours: hours(5)},
		{AssigneeID: "u", Status: entity.TaskStatusPaid, UpdatedAt: date(2024, 6, 30), Pricing: entity.TaskPricing{Amount: 50.5}, EstimatedHours: 3},
		{AssigneeID: "u", Status: entity.TaskStatusDone, UpdatedAt: date(2024, 5, 31), Pricing: entity.TaskPricing{Amount: 999}},
		{AssigneeID: "u", Status: entity.TaskStatusDone, UpdatedAt: date(2024, 7, 1), Pricing: entity.TaskPricing{Amount: 999}},
		{AssigneeID: "u", Status: entity.TaskStatusOpen, UpdatedAt: date(2024, 6, 10), Pricing: entity.TaskPricing{Amount: 999}},
		{AssigneeID: "other", Status: entity.TaskStatusDone, UpdatedAt: date(2024, 6, 10), Pricing: entity.TaskPricing{Amount: 999}},
	}
}

func TestUserProductivityReportDefaultsToCurrentMonth(t *testing.T) {
	f := newAnalyticsFixture(&entity.Profile{UID: "u", Stats: entity.ProfileStats{AverageRating: 4}})
	f.tasks.tasks = productivityTasks()

	report := f.uc.UserProductivityReport(context.Background(), "u", "")
	require.NotNil(t, report)
	assert.Equal(t, "2024-06", report.Period)
	assert.Equal(t, 2, report.TasksCompleted)
	assert.Equal(t, 150.5, report.EarningsTotal)
	assert.Equal(t, 8.0, report.HoursLogged, "actual hours win over the estimate")
	assert.Equal(t, 4.0, report.AverageRating)
	assert.Equal(t, 80.0, report.PerformanceScore)
}

func TestUserProductivityReportEmptyPeriod(t *testing.T) {
	f := newAnalyticsFixture(&entity.Profile{UID: "u", Stats: entity.ProfileStats{AverageRating: 4.5}})
	f.tasks.tasks = productivityTasks()

	report := f.uc.UserProductivityReport(context.Background(), "u", "2023-01")
	require.NotNil(t, report)
	assert.Equal(t, 0, report.TasksCompleted)
	assert.Equal(t, 0.0, report.EarningsTotal)
	assert.Equal(t, 67.5, report.PerformanceScore)
}

func TestUserProductivityReportCapsScore(t *testing.T) {
	var tasks []*entity.Task
	for i := 0; i < 12; i++ {
		tasks = append(tasks, &entity.Task{AssigneeID: "u", Status: entity.TaskStatusDone, UpdatedAt: date(2024, 6, 2)})
	}
	f := newAnalyticsFixture(&entity.Profile{UID: "u", Stats: entity.ProfileStats{AverageRating: 5}})
	f.tasks.tasks = tasks

	report := f.uc.UserProductivityReport(context.Background(), "u", "2024-06")
	require.NotNil(t, report)
	assert.Equal(t, 100.0, report.PerformanceScore)
}

func TestUserProductivityReportRejectsBadPeriod(t *testing.T) {
	f := newAnalyticsFixture()
	assert.Nil(t, f.uc.UserProductivityReport(context.Background(), "u", "2024-13"))
	assert.Nil(t, f.uc.UserProductivityReport(context.Background(), "u", "June"))
}

func searchProfiles() []*entity.Profile {
	return []*entity.Profile{
		{UID: "a", Skills: []string{"go"}, Availability: "available", Stats: entity.ProfileStats{AverageRating: 2}},
		{UID: "b", Skills: []string{"go"}, Availability: "available", Stats: entity.ProfileStats{AverageRating: 5}, HourlyRate: 90},
		{UID: "c", Skills: []string{"go"}, Availability: "available", Stats: entity.ProfileStats{AverageRating: 5}, HourlyRate: 40},
		{UID: "d", Skills: []string{"go"}, Availability: "available", Stats: entity.ProfileStats{AverageRating: 4.5}},
		{UID: "e", Skills: []string{"rust"}, Availability: "busy", Stats: entity.ProfileStats{AverageRating: 5}},
	}
}

func TestAdvancedSearchPushesIndexedFilters(t *testing.T) {
	f := newAnalyticsFixture(searchProfiles()...)

	skills := []string{"s1", "s2", "s3", "s4", "s5", "s6", "s7", "s8", "s9", "s10", "go", "s12"}
	result := f.uc.AdvancedSearch(context.Background(), "viewer", entity.SearchFilters{
		Skills:       skills,
		Availability: []string{"available"},
		Location:     "",
	}, 2, 10)

	require.NotNil(t, result)
	q := f.profile.profiles.lastQry
	assert.Equal(t, 10, q.Limit)
	assert.Equal(t, 10, q.Offset)
	assert.Equal(t, skills, q.SkillsAny, "the repository truncates to the store limit")
	assert.Equal(t, []string{"available"}, q.Availability)
}

func TestAdvancedSearchPostFilters(t *testing.T) {
	f := newAnalyticsFixture(searchProfiles()...)

	result := f.uc.AdvancedSearch(context.Background(), "viewer", entity.SearchFilters{
		Skills:        []string{"go"},
		MinRating:     4,
		MaxHourlyRate: 50,
	}, 1, 20)

	var uids []string
	for _, p := range result.Profiles {
		uids = append(uids, p.UID)
	}
	assert.Equal(t, []string{"c", "d"}, uids)
	assert.False(t, result.HasMore)
}

// The database limit is applied before the in-memory filters, so a page can
// come back short while further matches exist on later pages, and HasMore
// does not report them.
func TestAdvancedSearchUnderfillsPageAfterPostFilter(t *testing.T) {
	f := newAnalyticsFixture(searchProfiles()...)
	filters := entity.SearchFilters{Skills: []string{"go"}, MinRating: 4}

	first := f.uc.AdvancedSearch(context.Background(), "viewer", filters, 1, 2)
	require.Len(t, first.Profiles, 1, "only b survives from the fetched window [a b]")
	assert.Equal(t, "b", first.Profiles[0].UID)
	assert.False(t, first.HasMore, "c and d still match on the next page")

	second := f.uc.AdvancedSearch(context.Background(), "viewer", filters, 2, 2)
	assert.Len(t, second.Profiles, 2)
}

func TestAdvancedSearchFailureReturnsEmptyPage(t *testing.T) {
	f := newAnalyticsFixture()
	f.profile.profiles.err = errBoom

	result := f.uc.AdvancedSearch(context.Background(), "viewer", entity.SearchFilters{}, 0, 0)
	require.NotNil(t, result)
	assert.Empty(t, result.Profiles)
	assert.Equal(t, 1, result.Page)
	assert.Equal(t, 20, result.PageSize)
}

func TestAdvancedSearchRedactsPrivateGroups(t *testing.T) {
	f := newAnalyticsFixture(&entity.Profile{UID: "a", Email: "a@example.com", Skills: []string{"go"}})

	result := f.uc.AdvancedSearch(context.Background(), "viewer", entity.SearchFilters{}, 1, 20)
	require.Len(t, result.Profiles, 1)
	assert.Empty(t, result.Profiles[0].Email)
}

func TestAdvancedSearchFiltersForCaller(t *testing.T) {
	settings := entity.DefaultPrivacySettings()
	settings.Location = entity.VisibilityAuthenticated
	f := newAnalyticsFixture(&entity.Profile{UID: "a", Location: "Lisbon", Email: "a@example.com", PrivacySettings: settings})

	anonymous := f.uc.AdvancedSearch(context.Background(), "", entity.SearchFilters{}, 1, 20)
	require.Len(t, anonymous.Profiles, 1)
	assert.Empty(t, anonymous.Profiles[0].Location)

	signedIn := f.uc.AdvancedSearch(context.Background(), "viewer", entity.SearchFilters{}, 1, 20)
	require.Len(t, signedIn.Profiles, 1)
	assert.Equal(t, "Lisbon", signedIn.Profiles[0].Location)
	assert.Empty(t, signedIn.Profiles[0].Email)

	own := f.uc.AdvancedSearch(context.Background(), "a", entity.SearchFilters{}, 1, 20)
	require.Len(t, own.Profiles, 1)
	assert.Equal(t, "a@example.com", own.Profiles[0].Email)
}
