package usecase

import (
	"context"
	"math"
	"time"

	"connekt/internal/domain/entity"
	"connekt/internal/domain/repository"
	"connekt/pkg/logger"
	"connekt/pkg/utils"
)

const (
	// budgetUtilizationPlaceholder stands in until budgets are tracked.
	budgetUtilizationPlaceholder = 85.0

	periodLayout = "2006-01"
)

// ProAnalyticsUseCase computes the Pro rollups. Every report is rebuilt from
// the underlying records on each call; nothing is cached.
type ProAnalyticsUseCase struct {
	projectRepo repository.ProjectRepository
	taskRepo    repository.TaskRepository
	profileRepo repository.ProfileRepository
	profiles    profileReader
	logger      logger.Logger
	now         func() time.Time
}

func NewProAnalyticsUseCase(
	projectRepo repository.ProjectRepository,
	taskRepo repository.TaskRepository,
	profileRepo repository.ProfileRepository,
	profiles profileReader,
	log logger.Logger,
) *ProAnalyticsUseCase {
	return &ProAnalyticsUseCase{
		projectRepo: projectRepo,
		taskRepo:    taskRepo,
		profileRepo: profileRepo,
		profiles:    profiles,
		logger:      log,
		now:         time.Now,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// percent returns part/whole*100 rounded to two decimals, 0 when whole is 0.
func percent(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return round2(float64(part) / float64(whole) * 100)
}

func countCompleted(tasks []*entity.Task) int {
	n := 0
	for _, t := range tasks {
		if t.IsCompleted() {
			n++
		}
	}
	return n
}

// WorkspaceAnalytics returns nil when either collection cannot be read.
func (uc *ProAnalyticsUseCase) WorkspaceAnalytics(ctx context.Context, workspaceID string) *entity.WorkspaceAnalytics {
	projects, err := uc.projectRepo.ListByWorkspace(ctx, workspaceID)
	if err != nil {
		uc.logger.Error("Failed to load workspace projects", "workspaceId", workspaceID, "error", err)
		return nil
	}
	tasks, err := uc.taskRepo.ListByWorkspace(ctx, workspaceID)
	if err != nil {
		uc.logger.Error("Failed to load workspace tasks", "workspaceId", workspaceID, "error", err)
		return nil
	}

	return buildWorkspaceAnalytics(workspaceID, projects, tasks, uc.now())
}

func buildWorkspaceAnalytics(workspaceID string, projects []*entity.Project, tasks []*entity.Task, now time.Time) *entity.WorkspaceAnalytics {
	report := &entity.WorkspaceAnalytics{
		WorkspaceID:       workspaceID,
		TotalProjects:     len(projects),
		TotalTasks:        len(tasks),
		CompletedTasks:    countCompleted(tasks),
		BudgetUtilization: budgetUtilizationPlaceholder,
		PlaceholderFields: []string{"onTimeDeliveryRate", "budgetUtilization"},
		GeneratedAt:       now,
	}

	var durationDays float64
	var timed int
	for _, p := range projects {
		switch p.Status {
		case entity.ProjectStatusCompleted:
			report.CompletedProjects++
			// projects missing a timestamp are left out of the mean entirely
			if !p.CreatedAt.IsZero() && !p.UpdatedAt.IsZero() {
				durationDays += p.UpdatedAt.Sub(p.CreatedAt).Hours() / 24
				timed++
			}
		case entity.ProjectStatusActive:
			report.ActiveProjects++
		}
	}

	report.TeamProductivity = percent(report.CompletedTasks, report.TotalTasks)
	if timed > 0 {
		report.AverageProjectDuration = round2(durationDays / float64(timed))
	}
	report.OnTimeDeliveryRate = round2(float64(report.CompletedProjects) / float64(report.CompletedProjects+1) * 100)

	return report
}

func (uc *ProAnalyticsUseCase) ProjectPerformanceMetrics(ctx context.Context, projectID string) *entity.ProjectPerformanceMetrics {
	project, err := uc.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		uc.logger.Error("Failed to load project", "projectId", projectID, "error", err)
		return nil
	}
	tasks, err := uc.taskRepo.ListByProject(ctx, projectID)
	if err != nil {
		uc.logger.Error("Failed to load project tasks", "projectId", projectID, "error", err)
		return nil
	}

	return buildProjectMetrics(project, tasks, uc.now())
}

func buildProjectMetrics(project *entity.Project, tasks []*entity.Task, now time.Time) *entity.ProjectPerformanceMetrics {
	metrics := &entity.ProjectPerformanceMetrics{
		ProjectID:        project.ID,
		ProjectName:      project.Name,
		TotalTasks:       len(tasks),
		CompletedTasks:   countCompleted(tasks),
		TaskDistribution: map[string]int{},
		TimelineHealth:   entity.TimelineOnTrack,
		GeneratedAt:      now,
	}
	metrics.CompletionRate = percent(metrics.CompletedTasks, metrics.TotalTasks)

	for _, t := range tasks {
		// unassigned tasks are not bucketed
		if t.AssigneeUsername != "" {
			metrics.TaskDistribution[t.AssigneeUsername]++
		}
	}

	if project.Deadline != nil {
		days := int(math.Ceil(project.Deadline.Sub(now).Hours() / 24))
		metrics.DaysUntilDeadline = &days
		metrics.TimelineHealth = timelineHealth(*project.Deadline, now, metrics.CompletionRate)
	}

	return metrics
}

// timelineHealth is re-evaluated from scratch on every call.
func timelineHealth(deadline, now time.Time, completionRate float64) entity.TimelineHealth {
	if deadline.Before(now) {
		return entity.TimelineDelayed
	}
	daysUntil := deadline.Sub(now).Hours() / 24
	if completionRate < 50 && daysUntil < 7 {
		return entity.TimelineAtRisk
	}
	return entity.TimelineOnTrack
}

// ParsePeriod parses YYYY-MM and returns [start of month, start of next month) in UTC.
func ParsePeriod(period string) (time.Time, time.Time, bool) {
	start, err := time.Parse(periodLayout, period)
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	return start, start.AddDate(0, 1, 0), true
}

// UserProductivityReport summarizes completed tasks for a calendar month
// (default: the current one). The query fetches every completed task of the
// user and the month is applied in memory, so cost grows with total history.
func (uc *ProAnalyticsUseCase) UserProductivityReport(ctx context.Context, userID, period string) *entity.UserProductivityReport {
	if period == "" {
		period = uc.now().UTC().Format(periodLayout)
	}
	start, end, ok := ParsePeriod(period)
	if !ok {
		return nil
	}

	tasks, err := uc.taskRepo.ListByAssigneeAndStatus(ctx, userID, entity.CompletedTaskStatuses)
	if err != nil {
		uc.logger.Error("Failed to load completed tasks", "uid", userID, "error", err)
		return nil
	}

	var avgRating float64
	if profile := uc.profiles.GetProfile(ctx, userID); profile != nil {
		avgRating = profile.Stats.AverageRating
	}

	return buildProductivityReport(userID, period, start, end, tasks, avgRating, uc.now())
}

func buildProductivityReport(userID, period string, start, end time.Time, tasks []*entity.Task, avgRating float64, now time.Time) *entity.UserProductivityReport {
	report := &entity.UserProductivityReport{
		UserID:        userID,
		Period:        period,
		AverageRating: avgRating,
		GeneratedAt:   now,
	}

	for _, t := range tasks {
		if !t.IsCompleted() {
			continue
		}
		if t.UpdatedAt.Before(start) || !t.UpdatedAt.Before(end) {
			continue
		}
		report.TasksCompleted++
		report.EarningsTotal += t.Pricing.Amount
		report.HoursLogged += t.Hours()
	}

	report.EarningsTotal = round2(report.EarningsTotal)
	report.HoursLogged = round2(report.HoursLogged)
	// simplified heuristic, not a calibrated model
	report.PerformanceScore = math.Min(100, float64(report.TasksCompleted)*10+avgRating*15)

	return report
}

// AdvancedSearch pushes skills (array-contains-any, first 10), availability (in)
// and exact location to the database, then applies minRating, maxHourlyRate
// and yearsExperience to the fetched page. Results are filtered for viewerID,
// the signed-in caller.
//
// Known gap: the database limit is applied before the in-memory filters, so a
// page can hold fewer than pageSize matches while more exist further on, and
// HasMore (post-filtered count > pageSize) does not detect them.
func (uc *ProAnalyticsUseCase) AdvancedSearch(ctx context.Context, viewerID string, filters entity.SearchFilters, page, pageSize int) *entity.SearchResult {
	params := utils.NewPaginationParams(page, pageSize)
	pageSize = params.PageSize

	result := &entity.SearchResult{Profiles: []*entity.Profile{}, Page: params.Page, PageSize: pageSize}

	profiles, err := uc.profileRepo.Search(ctx, repository.ProfileQuery{
		SkillsAny:    filters.Skills,
		Availability: filters.Availability,
		Location:     filters.Location,
		Limit:        pageSize,
		Offset:       params.Offset,
	})
	if err != nil {
		uc.logger.Error("Failed to search profiles", "error", err)
		return result
	}

	for _, p := range profiles {
		if matchesPostFilters(p, filters) {
			normalizeProfile(p)
			result.Profiles = append(result.Profiles, FilterProfile(p, viewerID, p.UID == viewerID))
		}
	}
	result.HasMore = len(result.Profiles) > pageSize

	return result
}

func matchesPostFilters(p *entity.Profile, f entity.SearchFilters) bool {
	if f.MinRating > 0 && p.Stats.AverageRating < f.MinRating {
		return false
	}
	if f.MaxHourlyRate > 0 && p.HourlyRate > f.MaxHourlyRate {
		return false
	}
	if f.YearsExperience > 0 && p.YearsExperience < f.YearsExperience {
		return false
	}
	return true
}
