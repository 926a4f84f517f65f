package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"
)

var reputationCmd = &cobra.Command{
	Use:   "reputation <uid>",
	Short: "Print the reputation score and its inputs",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		report := current.reputation.GetReputationReport(cmd.Context(), args[0])
		if report == nil {
			return fmt.Errorf("profile %s not found", args[0])
		}

		fmt.Println(titleStyle.Render("Reputation: " + report.UserID))
		printRow("score", fmt.Sprintf("%.2f / 100", report.Score))
		printRow("average rating", report.AverageRating)
		printRow("projects completed", report.ProjectsCompleted)
		printRow("response rate", report.ResponseRate)
		printRow("tenure (days)", report.TenureDays)
		return nil
	},
}

var productivityPeriod string

var productivityCmd = &cobra.Command{
	Use:   "productivity <uid>",
	Short: "Print a user's productivity report for a month",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		report := current.analytics.UserProductivityReport(cmd.Context(), args[0], productivityPeriod)
		if report == nil {
			return fmt.Errorf("could not build report for %s (period %q)", args[0], productivityPeriod)
		}

		fmt.Println(titleStyle.Render(fmt.Sprintf("Productivity: %s, %s", report.UserID, report.Period)))
		printRow("tasks completed", report.TasksCompleted)
		printRow("hours logged", report.HoursLogged)
		printRow("earnings", report.EarningsTotal)
		printRow("average rating", report.AverageRating)
		printRow("performance score", report.PerformanceScore)
		return nil
	},
}

var workspaceAnalyticsCmd = &cobra.Command{
	Use:   "workspace-analytics <workspaceID>",
	Short: "Print project and task rollups for a workspace",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		report := current.analytics.WorkspaceAnalytics(cmd.Context(), args[0])
		if report == nil {
			return fmt.Errorf("could not build analytics for workspace %s", args[0])
		}

		fmt.Println(titleStyle.Render("Workspace: " + report.WorkspaceID))
		printRow("projects", fmt.Sprintf("%d (%d active, %d completed)", report.TotalProjects, report.ActiveProjects, report.CompletedProjects))
		printRow("tasks", fmt.Sprintf("%d (%d completed)", report.TotalTasks, report.CompletedTasks))
		printRow("team productivity", fmt.Sprintf("%.2f%%", report.TeamProductivity))
		printRow("avg project duration", fmt.Sprintf("%.1f days", report.AverageProjectDuration))
		printRow("on-time delivery", fmt.Sprintf("%.2f%%", report.OnTimeDeliveryRate))
		printRow("budget utilization", fmt.Sprintf("%.2f%%", report.BudgetUtilization))

		fields := append([]string(nil), report.PlaceholderFields...)
		sort.Strings(fields)
		printPlaceholders(fields)
		return nil
	},
}

var devTokenCmd = &cobra.Command{
	Use:   "dev-token <uid|email>",
	Short: "Mint a Firebase custom token for a user (development only)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !current.cfg.IsDevelopment() {
			return fmt.Errorf("dev-token is only available when ENVIRONMENT=development")
		}

		uid := args[0]
		if strings.Contains(uid, "@") {
			resolved, err := current.auth.LookupUID(cmd.Context(), uid)
			if err != nil {
				return err
			}
			uid = resolved
		}

		token, err := current.auth.GenerateDevToken(cmd.Context(), uid)
		if err != nil {
			return err
		}

		fmt.Println(titleStyle.Render("Custom token for " + uid))
		fmt.Println(token)
		fmt.Println(mutedStyle.Render("Exchange it for an ID token with signInWithCustomToken before calling the API."))
		return nil
	},
}

func init() {
	productivityCmd.Flags().StringVar(&productivityPeriod, "period", "", "month as YYYY-MM (defaults to the current month)")
}
