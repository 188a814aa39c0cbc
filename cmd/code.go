package cmd

import (
	"errors"
	"fmt"

	"github.com/bnema/tradebot/internal/adapters/steam"
	"github.com/bnema/tradebot/internal/config"
	"github.com/spf13/cobra"
)

func newCodeCmd(app *app) *cobra.Command {
	var syncClock bool

	cmd := &cobra.Command{
		Use:   "code",
		Short: "Print the current two-factor login code",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(cmd.Context(), app.settings, app.secretStore)
			if err != nil {
				return err
			}
			if cfg.Credentials.SharedSecret == "" {
				return errors.New("shared secret is not configured")
			}

			at := app.now()
			if syncClock {
				auth := steam.NewAuthenticator(steam.NewClient(steam.Config{
					WebAPIURL: cfg.Steam.WebAPIURL,
				}, nil))
				serverTime, err := auth.ServerTime(cmd.Context())
				if err != nil {
					return fmt.Errorf("sync platform clock: %w", err)
				}
				at = serverTime
			}

			code, err := steam.GuardCode(cfg.Credentials.SharedSecret, at)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), code)
			return err
		},
	}

	cmd.Flags().BoolVar(&syncClock, "sync", false, "Use the platform clock instead of the local one")

	return cmd
}
