package usecase

import (
	"context"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"connekt/internal/domain/entity"
	"connekt/internal/domain/repository"
	"connekt/pkg/logger"
)

const (
	topPerformersCount = 5
	topClientsCount    = 10
)

// ProPlusAnalyticsUseCase computes the agency and recruiter rollups.
type ProPlusAnalyticsUseCase struct {
	workspaceRepo  repository.WorkspaceRepository
	contractRepo   repository.ContractRepository
	recruiterRepo  repository.RecruiterRepository
	profiles       profileReader
	commissionRate float64
	fanoutLimit    int
	logger         logger.Logger
	now            func() time.Time
}

func NewProPlusAnalyticsUseCase(
	workspaceRepo repository.WorkspaceRepository,
	contractRepo repository.ContractRepository,
	recruiterRepo repository.RecruiterRepository,
	profiles profileReader,
	commissionRate float64,
	fanoutLimit int,
	log logger.Logger,
) *ProPlusAnalyticsUseCase {
	if fanoutLimit <= 0 {
		fanoutLimit = 100
	}
	return &ProPlusAnalyticsUseCase{
		workspaceRepo:  workspaceRepo,
		contractRepo:   contractRepo,
		recruiterRepo:  recruiterRepo,
		profiles:       profiles,
		commissionRate: commissionRate,
		fanoutLimit:    fanoutLimit,
		logger:         log,
		now:            time.Now,
	}
}

// TalentPoolAnalytics loads every member profile of the workspace (up to the
// fan-out limit) concurrently. Members whose profile cannot be read still
// count toward TotalTalent but contribute nothing else. A cancelled ctx
// yields nil.
func (uc *ProPlusAnalyticsUseCase) TalentPoolAnalytics(ctx context.Context, workspaceID string) *entity.TalentPoolAnalytics {
	workspace, err := uc.workspaceRepo.GetByID(ctx, workspaceID)
	if err != nil {
		uc.logger.Error("Failed to load workspace", "workspaceId", workspaceID, "error", err)
		return nil
	}

	members := workspace.Members
	if len(members) > uc.fanoutLimit {
		uc.logger.Warn("Talent pool truncated", "workspaceId", workspaceID, "members", len(members), "limit", uc.fanoutLimit)
		members = members[:uc.fanoutLimit]
	}

	profiles := make([]*entity.Profile, len(members))
	g, gctx := errgroup.WithContext(ctx)
	for i, m := range members {
		i, uid := i, m.UserID
		g.Go(func() error {
			// a missing profile is tolerated; only cancellation stops the fan-out
			if err := gctx.Err(); err != nil {
				return err
			}
			profiles[i] = uc.profiles.GetProfile(gctx, uid)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		uc.logger.Warn("Talent pool fan-out cancelled", "workspaceId", workspaceID, "error", err)
		return nil
	}

	loaded := make([]*entity.Profile, 0, len(profiles))
	for _, p := range profiles {
		if p != nil {
			loaded = append(loaded, p)
		}
	}

	report := buildTalentPool(workspaceID, loaded, uc.now())
	report.TotalTalent = len(workspace.Members)
	return report
}

func buildTalentPool(workspaceID string, profiles []*entity.Profile, now time.Time) *entity.TalentPoolAnalytics {
	report := &entity.TalentPoolAnalytics{
		WorkspaceID:           workspaceID,
		TotalTalent:           len(profiles),
		ProfilesLoaded:        len(profiles),
		SkillDistribution:     map[string]int{},
		AvailabilityBreakdown: map[string]int{},
		TopPerformers:         []entity.TalentSummary{},
		GeneratedAt:           now,
	}

	var ratingSum, rateSum float64
	var rated, priced int
	for _, p := range profiles {
		for _, s := range p.Skills {
			report.SkillDistribution[s]++
		}
		availability := p.Availability
		if availability == "" {
			availability = "unknown"
		}
		report.AvailabilityBreakdown[availability]++

		if p.Stats.TotalRatings > 0 {
			ratingSum += p.Stats.AverageRating
			rated++
		}
		if p.HourlyRate > 0 {
			rateSum += p.HourlyRate
			priced++
		}
	}
	if rated > 0 {
		report.AverageRating = round2(ratingSum / float64(rated))
	}
	if priced > 0 {
		report.AverageHourlyRate = round2(rateSum / float64(priced))
	}

	ranked := make([]*entity.Profile, 0, len(profiles))
	for _, p := range profiles {
		if p.Stats.TotalRatings > 0 {
			ranked = append(ranked, p)
		}
	}
	sort.Slice(ranked, func(i, j int) bool {
		a, b := ranked[i].Stats, ranked[j].Stats
		if a.AverageRating != b.AverageRating {
			return a.AverageRating > b.AverageRating
		}
		if a.TotalRatings != b.TotalRatings {
			return a.TotalRatings > b.TotalRatings
		}
		return ranked[i].UID < ranked[j].UID
	})
	if len(ranked) > topPerformersCount {
		ranked = ranked[:topPerformersCount]
	}
	for _, p := range ranked {
		report.TopPerformers = append(report.TopPerformers, entity.TalentSummary{
			UserID:        p.UID,
			DisplayName:   displayName(p),
			PhotoURL:      p.PhotoURL,
			AverageRating: p.Stats.AverageRating,
			TotalRatings:  p.Stats.TotalRatings,
		})
	}

	return report
}

func (uc *ProPlusAnalyticsUseCase) ClientManagementDashboard(ctx context.Context, providerID string) *entity.ClientManagementDashboard {
	contracts, err := uc.contractRepo.ListByProvider(ctx, providerID)
	if err != nil {
		uc.logger.Error("Failed to load contracts", "providerId", providerID, "error", err)
		return nil
	}
	return buildClientDashboard(providerID, contracts, uc.now())
}

func buildClientDashboard(providerID string, contracts []*entity.Contract, now time.Time) *entity.ClientManagementDashboard {
	dashboard := &entity.ClientManagementDashboard{
		ProviderID:      providerID,
		RevenueByClient: map[string]float64{},
		TopClients:      []entity.ClientSummary{},
		GeneratedAt:     now,
	}

	clients := map[string]*entity.ClientSummary{}
	var order []string
	var placed int
	for _, c := range contracts {
		summary, ok := clients[c.ClientID]
		if !ok {
			summary = &entity.ClientSummary{ClientID: c.ClientID, ClientName: c.ClientName}
			clients[c.ClientID] = summary
			order = append(order, c.ClientID)
		}
		summary.Contracts++
		if c.IsActive() {
			summary.ActiveCount++
		}
		if c.IsPlaced() {
			summary.TotalSpend += c.Terms.PaymentAmount
			dashboard.TotalRevenue += c.Terms.PaymentAmount
			placed++
		}
	}

	var repeat int
	summaries := make([]entity.ClientSummary, 0, len(order))
	for _, id := range order {
		s := clients[id]
		if s.ActiveCount > 0 {
			dashboard.ActiveClients++
		}
		if s.Contracts > 1 {
			repeat++
		}
		s.TotalSpend = round2(s.TotalSpend)
		dashboard.RevenueByClient[id] = s.TotalSpend
		summaries = append(summaries, *s)
	}

	dashboard.TotalClients = len(summaries)
	dashboard.TotalRevenue = round2(dashboard.TotalRevenue)
	if placed > 0 {
		dashboard.AverageContractValue = round2(dashboard.TotalRevenue / float64(placed))
	}
	dashboard.RepeatClientRate = percent(repeat, dashboard.TotalClients)

	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].TotalSpend > summaries[j].TotalSpend
	})
	if len(summaries) > topClientsCount {
		summaries = summaries[:topClientsCount]
	}
	dashboard.TopClients = summaries

	return dashboard
}

func (uc *ProPlusAnalyticsUseCase) PlacementTracking(ctx context.Context, recruiterID string) *entity.PlacementTracking {
	contracts, err := uc.contractRepo.ListByProvider(ctx, recruiterID)
	if err != nil {
		uc.logger.Error("Failed to load placements", "recruiterId", recruiterID, "error", err)
		return nil
	}

	var specializations []string
	if recruiter, err := uc.recruiterRepo.GetByID(ctx, recruiterID); err == nil {
		specializations = recruiter.Specializations
	}

	return buildPlacementTracking(recruiterID, contracts, specializations, uc.now())
}

func buildPlacementTracking(recruiterID string, contracts []*entity.Contract, specializations []string, now time.Time) *entity.PlacementTracking {
	tracking := &entity.PlacementTracking{
		RecruiterID:       recruiterID,
		TotalSubmissions:  len(contracts),
		PlacementsByType:  map[string]int{},
		PlacementsBySkill: map[string]int{},
		PlaceholderFields: []string{"placementsBySkill"},
		GeneratedAt:       now,
	}

	var daysToPlace float64
	var timed int
	for _, c := range contracts {
		switch {
		case c.IsPlaced():
			tracking.TotalPlacements++
			tracking.PlacementsByType[c.Type]++
			if c.RespondedAt != nil && !c.CreatedAt.IsZero() {
				daysToPlace += c.RespondedAt.Sub(c.CreatedAt).Hours() / 24
				timed++
			}
		case c.Status == entity.ContractStatusPending:
			tracking.PendingPlacements++
		case c.Status == entity.ContractStatusRejected:
			tracking.RejectedPlacements++
		}
	}

	tracking.PlacementRate = percent(tracking.TotalPlacements, tracking.TotalSubmissions)
	if timed > 0 {
		tracking.AverageTimeToPlace = round2(daysToPlace / float64(timed))
	}
	for _, s := range specializations {
		tracking.PlacementsBySkill[s] = 0
	}

	return tracking
}

// CommissionCalculation values placed contracts at the recruiter's own rate,
// or the service default when none is set. period (YYYY-MM) is optional and
// filters on contract creation time.
func (uc *ProPlusAnalyticsUseCase) CommissionCalculation(ctx context.Context, recruiterID, period string) *entity.CommissionCalculation {
	var start, end time.Time
	if period != "" {
		var ok bool
		if start, end, ok = ParsePeriod(period); !ok {
			return nil
		}
	}

	contracts, err := uc.contractRepo.ListByProvider(ctx, recruiterID)
	if err != nil {
		uc.logger.Error("Failed to load placements", "recruiterId", recruiterID, "error", err)
		return nil
	}

	rate := uc.commissionRate
	if recruiter, err := uc.recruiterRepo.GetByID(ctx, recruiterID); err == nil && recruiter.CommissionRate > 0 {
		rate = recruiter.CommissionRate
	}

	calc := &entity.CommissionCalculation{
		RecruiterID:      recruiterID,
		Period:           period,
		CommissionRate:   rate,
		CommissionByType: map[string]float64{},
		GeneratedAt:      uc.now(),
	}

	var pendingValue float64
	for _, c := range contracts {
		if period != "" && (c.CreatedAt.Before(start) || !c.CreatedAt.Before(end)) {
			continue
		}
		switch {
		case c.IsPlaced():
			calc.PlacementCount++
			calc.TotalPlacementValue += c.Terms.PaymentAmount
			calc.CommissionByType[c.Type] += c.Terms.PaymentAmount * rate
		case c.Status == entity.ContractStatusPending:
			pendingValue += c.Terms.PaymentAmount
		}
	}

	calc.TotalPlacementValue = round2(calc.TotalPlacementValue)
	calc.TotalCommission = round2(calc.TotalPlacementValue * rate)
	calc.PendingCommission = round2(pendingValue * rate)
	for k, v := range calc.CommissionByType {
		calc.CommissionByType[k] = round2(v)
	}

	return calc
}
