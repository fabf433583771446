package console

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"stayhub.admin/internal/client"
	"stayhub.admin/internal/querycache"
)

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Browse and moderate unified users",
}

var listParams client.UserListParams

var usersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List users across all platforms",
	RunE: func(cmd *cobra.Command, args []string) error {
		key := querycache.Key("users/list", listParams)
		cached, err := cache.Get(cmd.Context(), key, func(ctx context.Context) (interface{}, error) {
			return api.ListUsers(ctx, listParams)
		})
		if err != nil {
			return describeError(err)
		}
		page := cached.(*client.UsersPage)

		rows := make([][]string, 0, len(page.Data))
		for _, u := range page.Data {
			rows = append(rows, userRow(u))
		}
		table(cmd.OutOrStdout(), userHeader, rows)
		fmt.Fprintf(cmd.OutOrStdout(), "\nPage %d of %d (%d users)\n", page.Page, page.TotalPages, page.Total)
		return nil
	},
}

var (
	statusValue  string
	statusReason string
)

var usersStatusCmd = &cobra.Command{
	Use:   "status <user-id>",
	Short: "Update a user's account status",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if statusValue == "" {
			return errors.New("--status is required")
		}
		// Suspending or banning needs a reason before anything goes out.
		if statusValue != "active" && statusReason == "" {
			return errors.New("--reason is required when the status is not active")
		}

		user, err := api.UpdateUserStatus(cmd.Context(), args[0], statusValue, statusReason)
		if err != nil {
			return describeError(err)
		}

		cache.InvalidatePrefix("users/list")
		fmt.Fprintf(cmd.OutOrStdout(), "User %s is now %s\n", user.Email, user.AccountStatus)
		return nil
	},
}

func init() {
	usersListCmd.Flags().StringVar(&listParams.Search, "search", "", "substring match on email or name")
	usersListCmd.Flags().StringVar(&listParams.Platform, "platform", "", "filter by platform")
	usersListCmd.Flags().StringVar(&listParams.UserType, "user-type", "", "host, agent, customer, or guest")
	usersListCmd.Flags().StringVar(&listParams.AccountStatus, "account-status", "", "active, suspended, or banned")
	usersListCmd.Flags().IntVar(&listParams.Page, "page", 1, "page number")
	usersListCmd.Flags().IntVar(&listParams.Limit, "limit", 50, "page size")

	usersStatusCmd.Flags().StringVar(&statusValue, "status", "", "active, suspended, or banned")
	usersStatusCmd.Flags().StringVar(&statusReason, "reason", "", "why the status is changing")

	usersCmd.AddCommand(usersListCmd)
	usersCmd.AddCommand(usersStatusCmd)
}
