package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"connekt/pkg/errors"
)

var recomputeRatingsCmd = &cobra.Command{
	Use:   "recompute-ratings <uid>...",
	Short: "Recompute cached averageRating/totalRatings from the ratings sub-collection",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		results := current.ratings.RecomputeAll(cmd.Context(), args)

		fmt.Println(titleStyle.Render("Rating aggregates"))
		sorted := append([]string(nil), args...)
		sort.Strings(sorted)
		for _, uid := range sorted {
			summary, ok := results[uid]
			if !ok {
				printRow(uid, errorStyle.Render("failed"))
				continue
			}
			printRow(uid, fmt.Sprintf("%.2f from %d ratings", summary.AverageRating, summary.TotalRatings))
		}

		if len(results) != len(args) {
			return fmt.Errorf("%d of %d profiles failed, see logs", len(args)-len(results), len(args))
		}
		return nil
	},
}

var initProfileCmd = &cobra.Command{
	Use:   "init-profile <uid>",
	Short: "Create the extended profile for an existing account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		account, err := current.accounts.GetByID(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		profile := current.profiles.InitializeUserProfile(cmd.Context(), account)
		if profile == nil {
			return errors.Internal("failed to initialize profile", nil)
		}

		fmt.Println(titleStyle.Render("Profile initialized"))
		printRow("uid", profile.UID)
		printRow("username", profile.Username)
		printRow("subscription", profile.Subscription)
		return nil
	},
}
