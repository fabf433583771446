package console

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	loginEmail    string
	loginPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate and save an access token",
	RunE: func(cmd *cobra.Command, args []string) error {
		if loginEmail == "" || loginPassword == "" {
			return errors.New("both --email and --password are required")
		}

		result, err := api.Login(cmd.Context(), loginEmail, loginPassword)
		if err != nil {
			return describeError(err)
		}

		if err := store.Save(result.AccessToken); err != nil {
			return fmt.Errorf("failed to save token: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s (%s)\n", result.Admin.FullName, result.Admin.Email)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Discard the saved access token",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := store.Clear(); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
		return nil
	},
}

var meCmd = &cobra.Command{
	Use:   "me",
	Short: "Show the authenticated admin",
	RunE: func(cmd *cobra.Command, args []string) error {
		admin, err := api.Me(cmd.Context())
		if err != nil {
			return describeError(err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Email: %s\n", admin.Email)
		fmt.Fprintf(out, "Name:  %s\n", admin.FullName)
		fmt.Fprintf(out, "Role:  %s\n", admin.Role)
		if admin.LastLoginAt.Valid {
			fmt.Fprintf(out, "Last login: %s\n", admin.LastLoginAt.Time.Format("2006-01-02 15:04:05"))
		}
		return nil
	},
}

func init() {
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "admin email")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "admin password")
}
