package console

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"stayhub.admin/internal/domain/entities"
)

// table writes rows with aligned columns.
func table(w io.Writer, header []string, rows [][]string) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(header, "\t"))
	for _, row := range rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	tw.Flush()
}

func userRow(u *entities.User) []string {
	name := "-"
	if u.FullName.Valid {
		name = u.FullName.String
	}
	verification := "-"
	if u.VerificationStatus.Valid {
		verification = u.VerificationStatus.String
	}
	return []string{
		u.ID.String(),
		u.Email,
		name,
		string(u.UserType),
		string(u.AccountStatus),
		verification,
	}
}

var userHeader = []string{"ID", "EMAIL", "NAME", "TYPE", "STATUS", "VERIFICATION"}

func verificationRow(item *entities.VerificationItem) []string {
	return []string{
		item.ID.String(),
		item.PlatformUserID,
		item.VerificationType,
		string(item.Status),
		item.CreatedAt.Format("2006-01-02 15:04"),
	}
}

var verificationHeader = []string{"ID", "PLATFORM USER", "TYPE", "STATUS", "SUBMITTED"}
