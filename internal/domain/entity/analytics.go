package entity

import (
	"time"
)

// Rollups are recomputed from the underlying records on every request.
// Fields named in PlaceholderFields are constants or crude heuristics and
// must not be treated as measurements.

type WorkspaceAnalytics struct {
	WorkspaceID            string  `json:"workspaceId"`
	TotalProjects          int     `json:"totalProjects"`
	ActiveProjects         int     `json:"activeProjects"`
	CompletedProjects      int     `json:"completedProjects"`
	TotalTasks             int     `json:"totalTasks"`
	CompletedTasks         int     `json:"completedTasks"`
	TeamProductivity       float64 `json:"teamProductivity"`
	AverageProjectDuration float64 `json:"averageProjectDuration"` // days
	// OnTimeDeliveryRate is completed/(completed+1)*100; there is no "on time" signal.
	OnTimeDeliveryRate float64 `json:"onTimeDeliveryRate"`
	// BudgetUtilization is a constant until budget tracking exists.
	BudgetUtilization float64   `json:"budgetUtilization"`
	PlaceholderFields []string  `json:"placeholderFields"`
	GeneratedAt       time.Time `json:"generatedAt"`
}

type TimelineHealth string

const (
	TimelineOnTrack TimelineHealth = "on_track"
	TimelineAtRisk  TimelineHealth = "at_risk"
	TimelineDelayed TimelineHealth = "delayed"
)

type ProjectPerformanceMetrics struct {
	ProjectID         string         `json:"projectId"`
	ProjectName       string         `json:"projectName"`
	TotalTasks        int            `json:"totalTasks"`
	CompletedTasks    int            `json:"completedTasks"`
	CompletionRate    float64        `json:"completionRate"`
	TaskDistribution  map[string]int `json:"taskDistribution"`
	TimelineHealth    TimelineHealth `json:"timelineHealth"`
	DaysUntilDeadline *int           `json:"daysUntilDeadline,omitempty"`
	GeneratedAt       time.Time      `json:"generatedAt"`
}

type UserProductivityReport struct {
	UserID           string    `json:"userId"`
	Period           string    `json:"period"` // YYYY-MM
	TasksCompleted   int       `json:"tasksCompleted"`
	HoursLogged      float64   `json:"hoursLogged"`
	EarningsTotal    float64   `json:"earningsTotal"`
	AverageRating    float64   `json:"averageRating"`
	PerformanceScore float64   `json:"performanceScore"`
	GeneratedAt      time.Time `json:"generatedAt"`
}

type SearchFilters struct {
	Skills          []string `json:"skills,omitempty"`
	Availability    []string `json:"availability,omitempty"`
	Location        string   `json:"location,omitempty"`
	MinRating       float64  `json:"minRating,omitempty"`
	MaxHourlyRate   float64  `json:"maxHourlyRate,omitempty"`
	YearsExperience int      `json:"yearsExperience,omitempty"`
}

// SearchResult.HasMore is derived from the post-filtered page and is not a
// reliable signal that more matches exist.
type SearchResult struct {
	Profiles []*Profile `json:"profiles"`
	Page     int        `json:"page"`
	PageSize int        `json:"pageSize"`
	HasMore  bool       `json:"hasMore"`
}

type TalentSummary struct {
	UserID        string  `json:"userId"`
	DisplayName   string  `json:"displayName"`
	PhotoURL      string  `json:"photoURL,omitempty"`
	AverageRating float64 `json:"averageRating"`
	TotalRatings  int     `json:"totalRatings"`
}

type TalentPoolAnalytics struct {
	WorkspaceID           string          `json:"workspaceId"`
	TotalTalent           int             `json:"totalTalent"`
	ProfilesLoaded        int             `json:"profilesLoaded"`
	SkillDistribution     map[string]int  `json:"skillDistribution"`
	AvailabilityBreakdown map[string]int  `json:"availabilityBreakdown"`
	AverageRating         float64         `json:"averageRating"`
	AverageHourlyRate     float64         `json:"averageHourlyRate"`
	TopPerformers         []TalentSummary `json:"topPerformers"`
	GeneratedAt           time.Time       `json:"generatedAt"`
}

type ClientSummary struct {
	ClientID    string  `json:"clientId"`
	ClientName  string  `json:"clientName"`
	Contracts   int     `json:"contracts"`
	ActiveCount int     `json:"activeContracts"`
	TotalSpend  float64 `json:"totalSpend"`
}

type ClientManagementDashboard struct {
	ProviderID           string             `json:"providerId"`
	TotalClients         int                `json:"totalClients"`
	ActiveClients        int                `json:"activeClients"`
	TotalRevenue         float64            `json:"totalRevenue"`
	AverageContractValue float64            `json:"averageContractValue"`
	RepeatClientRate     float64            `json:"repeatClientRate"`
	RevenueByClient      map[string]float64 `json:"revenueByClient"`
	TopClients           []ClientSummary    `json:"topClients"`
	GeneratedAt          time.Time          `json:"generatedAt"`
}

type PlacementTracking struct {
	RecruiterID        string         `json:"recruiterId"`
	TotalSubmissions   int            `json:"totalSubmissions"`
	TotalPlacements    int            `json:"totalPlacements"`
	PendingPlacements  int            `json:"pendingPlacements"`
	RejectedPlacements int            `json:"rejectedPlacements"`
	PlacementRate      float64        `json:"placementRate"`
	AverageTimeToPlace float64        `json:"averageTimeToPlace"` // days
	PlacementsByType   map[string]int `json:"placementsByType"`
	// PlacementsBySkill has one zero entry per recruiter specialization;
	// contracts carry no skill tag to count against.
	PlacementsBySkill map[string]int `json:"placementsBySkill"`
	PlaceholderFields []string       `json:"placeholderFields"`
	GeneratedAt       time.Time      `json:"generatedAt"`
}

type CommissionCalculation struct {
	RecruiterID         string             `json:"recruiterId"`
	Period              string             `json:"period,omitempty"`
	CommissionRate      float64            `json:"commissionRate"`
	PlacementCount      int                `json:"placementCount"`
	TotalPlacementValue float64            `json:"totalPlacementValue"`
	TotalCommission     float64            `json:"totalCommission"`
	PendingCommission   float64            `json:"pendingCommission"`
	CommissionByType    map[string]float64 `json:"commissionByType"`
	GeneratedAt         time.Time          `json:"generatedAt"`
}

type ReputationReport struct {
	UserID            string  `json:"userId"`
	Score             float64 `json:"score"`
	AverageRating     float64 `json:"averageRating"`
	ProjectsCompleted int     `json:"projectsCompleted"`
	ResponseRate      float64 `json:"responseRate"`
	TenureDays        int     `json:"tenureDays"`
}
