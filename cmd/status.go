package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	statusadapter "github.com/bnema/tradebot/internal/adapters/render/status"
	"github.com/bnema/tradebot/internal/application"
	"github.com/bnema/tradebot/internal/domain"
	"github.com/spf13/cobra"
)

func newStatusCmd(app *app) *cobra.Command {
	var asJSON bool
	var status string

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show tracked proposals from the local store",
		RunE: func(cmd *cobra.Command, _ []string) error {
			filter, err := parseStatusFilter(status)
			if err != nil {
				return err
			}

			proposals, err := application.NewProposalQueries(nil, app.repo, nil).List(cmd.Context(), filter)
			if err != nil {
				return err
			}

			return writeProposalsOutput(cmd, app, proposals, asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print proposals as JSON")
	cmd.Flags().StringVar(&status, "status", "", "Only show proposals in this status (e.g. STUCK)")

	return cmd
}

func parseStatusFilter(raw string) (domain.Status, error) {
	if raw == "" {
		return "", nil
	}
	normalized := strings.ToUpper(strings.TrimSpace(raw))
	status := domain.ParseStatus(normalized)
	if status == domain.StatusUnknown && normalized != string(domain.StatusUnknown) {
		return "", fmt.Errorf("unknown status %q", raw)
	}
	return status, nil
}

func writeProposalsOutput(cmd *cobra.Command, app *app, proposals []domain.TradeProposal, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(proposals)
	}

	rendered, err := app.statusRenderer(proposals, statusadapter.RenderOptions{Now: app.now()})
	if err != nil {
		return fmt.Errorf("render status: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
	return err
}
