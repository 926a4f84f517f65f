package usecase

import (
	"context"
	"math"

	"connekt/internal/domain/entity"
	"connekt/pkg/logger"
)

// ReputationScore combines the profile signals into a 0-100 score:
//
//	avgRating*15 + projectsCompleted*0.5 + responseRate*0.1 + min(5, tenureDays/365)
//
// The result is capped at 100 but not rounded; rankings compare exact scores.
func ReputationScore(avgRating float64, projectsCompleted int, responseRate float64, tenureDays int) float64 {
	score := avgRating*15 +
		float64(projectsCompleted)*0.5 +
		responseRate*0.1 +
		math.Min(5, float64(tenureDays)/365)
	return math.Min(100, score)
}

type ReputationUseCase struct {
	profiles profileReader
	logger   logger.Logger
}

func NewReputationUseCase(profiles profileReader, log logger.Logger) *ReputationUseCase {
	return &ReputationUseCase{profiles: profiles, logger: log}
}

// GetReputationScore returns 0 when the profile cannot be read.
func (uc *ReputationUseCase) GetReputationScore(ctx context.Context, uid string) float64 {
	report := uc.GetReputationReport(ctx, uid)
	if report == nil {
		return 0
	}
	return report.Score
}

func (uc *ReputationUseCase) GetReputationReport(ctx context.Context, uid string) *entity.ReputationReport {
	profile := uc.profiles.GetProfile(ctx, uid)
	if profile == nil {
		uc.logger.Debug("No profile for reputation", "uid", uid)
		return nil
	}

	s := profile.Stats
	return &entity.ReputationReport{
		UserID:            uid,
		Score:             ReputationScore(s.AverageRating, s.ProjectsCompleted, s.ResponseRate, s.TimeOnPlatform),
		AverageRating:     s.AverageRating,
		ProjectsCompleted: s.ProjectsCompleted,
		ResponseRate:      s.ResponseRate,
		TenureDays:        s.TimeOnPlatform,
	}
}
