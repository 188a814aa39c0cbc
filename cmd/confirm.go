package cmd

import (
	"fmt"

	"github.com/bnema/tradebot/internal/domain"
	"github.com/spf13/cobra"
)

func newConfirmCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "confirm <proposal-id>",
		Short: "Retry the mobile confirmation of a proposal, e.g. one marked STUCK",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := app.buildRuntime(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = rt.logger.Sync() }()

			if err := rt.cfg.Credentials.Validate(); err != nil {
				return fmt.Errorf("validate credentials: %w", err)
			}
			if err := rt.session.Start(cmd.Context()); err != nil {
				return err
			}

			id := domain.ProposalID(args[0])
			if err := rt.confirmations.Confirm(cmd.Context(), id); err != nil {
				return err
			}

			p, err := app.repo.GetByID(cmd.Context(), id)
			if err != nil {
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "confirmed %s\n", id)
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "confirmed %s: %s\n", id, p.Status)
			return err
		},
	}
}
