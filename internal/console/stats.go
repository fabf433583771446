package console

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"stayhub.admin/internal/domain/entities"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show verification queue statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		cached, err := cache.Get(cmd.Context(), "verification/stats", func(ctx context.Context) (interface{}, error) {
			return api.VerificationStatistics(ctx)
		})
		if err != nil {
			return describeError(err)
		}
		stats := cached.(*entities.VerificationStatistics)

		table(cmd.OutOrStdout(), []string{"STATUS", "COUNT"}, [][]string{
			{"pending", fmt.Sprint(stats.Pending)},
			{"in_review", fmt.Sprint(stats.InReview)},
			{"approved", fmt.Sprint(stats.Approved)},
			{"rejected", fmt.Sprint(stats.Rejected)},
			{"total", fmt.Sprint(stats.Total)},
		})
		return nil
	},
}
