// Package console implements the operator CLI over the admin API. Each
// command is one view: reads go through the query cache, mutations
// invalidate the prefixes they affect on success.
package console

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"stayhub.admin/internal/client"
	"stayhub.admin/internal/querycache"
	"stayhub.admin/internal/session"
)

var (
	cfgFile string
	cfg     *Config
	store   *session.Store
	api     *client.Client
	cache   *querycache.Cache
	version = "dev"
)

var rootCmd = &cobra.Command{
	Use:   "console",
	Short: "StayHub super-admin console",
	Long: `Operator console for the StayHub multi-platform rental system.

Review identity verifications, manage unified users, and inspect
queue statistics across the host, agent, and customer platforms.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "help" || cmd.Name() == "version" {
			return nil
		}

		var err error
		cfg, err = LoadConfig(cfgFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if cfg.TokenPath != "" {
			store = session.NewStoreAt(cfg.TokenPath)
		} else {
			store, err = session.NewStore()
			if err != nil {
				return fmt.Errorf("failed to locate token store: %w", err)
			}
		}

		api = client.New(cfg.APIBaseURL, store)
		cache = querycache.New(cfg.CacheTTL)
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("console %s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "console.yaml", "config file path")

	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(meCmd)
	rootCmd.AddCommand(usersCmd)
	rootCmd.AddCommand(verificationCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(versionCmd)
}

// SetVersion stamps the build version shown by the version command.
func SetVersion(v string) {
	version = v
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// Root exposes the command tree.
func Root() *cobra.Command {
	return rootCmd
}

// describeError turns client errors into operator-facing messages. An
// unauthenticated reply clears the saved session so the next command
// starts from a clean login.
func describeError(err error) error {
	var transportErr *client.TransportError
	var apiErr *client.APIError

	switch {
	case errors.Is(err, client.ErrUnauthenticated):
		_ = store.Clear()
		return errors.New("session expired or invalid, run `console login`")
	case errors.Is(err, session.ErrNoSession):
		return errors.New("not logged in, run `console login`")
	case errors.As(err, &transportErr):
		return fmt.Errorf("cannot reach %s: %v", cfg.APIBaseURL, transportErr.Err)
	case errors.As(err, &apiErr):
		return fmt.Errorf("server rejected the request (%d): %s", apiErr.Status, apiErr.Message)
	default:
		return err
	}
}
