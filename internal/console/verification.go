package console

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"stayhub.admin/internal/domain/entities"
	"stayhub.admin/internal/querycache"
)

var verificationCmd = &cobra.Command{
	Use:     "verification",
	Aliases: []string{"verif"},
	Short:   "Review identity verifications",
}

var queueStatus string

var verificationQueueCmd = &cobra.Command{
	Use:   "queue",
	Short: "Show the verification queue",
	RunE: func(cmd *cobra.Command, args []string) error {
		key := querycache.Key("verification/queue", map[string]string{"status": queueStatus})
		cached, err := cache.Get(cmd.Context(), key, func(ctx context.Context) (interface{}, error) {
			return api.VerificationQueue(ctx, queueStatus)
		})
		if err != nil {
			return describeError(err)
		}
		items := cached.([]*entities.VerificationItem)

		if len(items) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "Queue is empty")
			return nil
		}

		rows := make([][]string, 0, len(items))
		for _, item := range items {
			rows = append(rows, verificationRow(item))
		}
		table(cmd.OutOrStdout(), verificationHeader, rows)
		return nil
	},
}

var verificationShowCmd = &cobra.Command{
	Use:   "show <verification-id>",
	Short: "Show one verification including its documents",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		key := querycache.Key("verification/detail", map[string]string{"id": args[0]})
		cached, err := cache.Get(cmd.Context(), key, func(ctx context.Context) (interface{}, error) {
			return api.VerificationDetails(ctx, args[0])
		})
		if err != nil {
			return describeError(err)
		}
		item := cached.(*entities.VerificationDetail)

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "ID:        %s\n", item.ID)
		if item.User != nil {
			fmt.Fprintf(out, "User:      %s (platform user %s)\n", item.User.Email, item.PlatformUserID)
		} else {
			fmt.Fprintf(out, "User:      %s (platform user %s)\n", item.UserID, item.PlatformUserID)
		}
		if item.Platform != nil {
			fmt.Fprintf(out, "Platform:  %s\n", item.Platform.DisplayName)
		}
		fmt.Fprintf(out, "Type:      %s\n", item.VerificationType)
		fmt.Fprintf(out, "Status:    %s\n", item.Status)
		fmt.Fprintf(out, "Submitted: %s\n", item.CreatedAt.Format("2006-01-02 15:04:05"))
		if item.ReviewedBy.Valid {
			fmt.Fprintf(out, "Reviewed by: %s\n", item.ReviewedBy.String)
		}
		if item.ReviewNotes.Valid {
			fmt.Fprintf(out, "Notes:     %s\n", item.ReviewNotes.String)
		}

		// Documents are an opaque backend blob, shown as raw JSON.
		if len(item.Documents) > 0 {
			var pretty json.RawMessage = item.Documents
			data, err := json.MarshalIndent(pretty, "", "  ")
			if err != nil {
				data = item.Documents
			}
			fmt.Fprintf(out, "Documents:\n%s\n", data)
		}
		return nil
	},
}

var (
	approveNotes string
	rejectReason string
	rejectNotes  string
)

// reviewInvalidations are the cache prefixes every successful review
// mutation drops.
var reviewInvalidations = []string{
	"verification/queue",
	"verification/detail",
	"verification/stats",
}

func invalidateReviewCaches() {
	for _, prefix := range reviewInvalidations {
		cache.InvalidatePrefix(prefix)
	}
}

var verificationApproveCmd = &cobra.Command{
	Use:   "approve <verification-id>",
	Short: "Approve a verification",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		// No network call without notes.
		if approveNotes == "" {
			return errors.New("--notes is required to approve")
		}

		item, err := api.ApproveVerification(cmd.Context(), args[0], approveNotes)
		if err != nil {
			return describeError(err)
		}

		invalidateReviewCaches()
		fmt.Fprintf(cmd.OutOrStdout(), "Verification %s approved\n", item.ID)
		return nil
	},
}

var verificationRejectCmd = &cobra.Command{
	Use:   "reject <verification-id>",
	Short: "Reject a verification",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		// No network call without a reason.
		if rejectReason == "" {
			return errors.New("--reason is required to reject")
		}

		item, err := api.RejectVerification(cmd.Context(), args[0], rejectReason, rejectNotes)
		if err != nil {
			return describeError(err)
		}

		invalidateReviewCaches()
		fmt.Fprintf(cmd.OutOrStdout(), "Verification %s rejected\n", item.ID)
		return nil
	},
}

func init() {
	verificationQueueCmd.Flags().StringVar(&queueStatus, "status", "pending", "pending, in_review, approved, rejected, or all")
	verificationApproveCmd.Flags().StringVar(&approveNotes, "notes", "", "reviewer notes (required)")
	verificationRejectCmd.Flags().StringVar(&rejectReason, "reason", "", "rejection reason (required)")
	verificationRejectCmd.Flags().StringVar(&rejectNotes, "notes", "", "additional notes")

	verificationCmd.AddCommand(verificationQueueCmd)
	verificationCmd.AddCommand(verificationShowCmd)
	verificationCmd.AddCommand(verificationApproveCmd)
	verificationCmd.AddCommand(verificationRejectCmd)
}
