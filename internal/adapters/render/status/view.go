package status

import (
	"fmt"
	"math"
	"time"

	"github.com/bnema/tradebot/internal/domain"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

type RenderOptions struct {
	Now time.Time
}

var columns = []string{"PROPOSAL", "DIRECTION", "STATUS", "CODE", "DEAL", "PARTNER", "UPDATED", "LEDGER"}

func renderView(proposals []domain.TradeProposal, opts RenderOptions, s styles) string {
	lines := []string{
		s.title.Render("Tracked trade proposals"),
		s.header.UnsetPadding().Render(summary(proposals)),
	}

	if len(proposals) == 0 {
		lines = append(lines, s.empty.Render("No proposals tracked."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	rows := make([][]string, 0, len(proposals))
	for _, p := range proposals {
		rows = append(rows, []string{
			s.id.Render(string(p.ID)),
			directionLabel(p.Direction),
			statusStyle(p.Status, s).Render(string(p.Status)),
			fmt.Sprintf("%d", p.StateCode),
			dealLabel(p.DealID),
			p.Counterparty.String(),
			formatAge(p.UpdatedAt, opts.Now),
			ledgerLabel(p, s),
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(s.border).
		Headers(columns...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return s.header
			}
			return s.cell
		})

	lines = append(lines, t.Render())
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func summary(proposals []domain.TradeProposal) string {
	stuck := 0
	for _, p := range proposals {
		if p.Status == domain.StatusStuck {
			stuck++
		}
	}
	if stuck == 0 {
		return fmt.Sprintf("proposals: %d", len(proposals))
	}
	return fmt.Sprintf("proposals: %d, stuck: %d", len(proposals), stuck)
}

func statusStyle(status domain.Status, s styles) lipgloss.Style {
	switch {
	case status == domain.StatusStuck:
		return s.warning
	case status == domain.StatusAccepted || status == domain.StatusInEscrow:
		return s.settled
	case status.Terminal():
		return s.closed
	default:
		return s.pending
	}
}

func directionLabel(d domain.Direction) string {
	switch d {
	case domain.DirectionForward:
		return "forward"
	case domain.DirectionReverse:
		return "reverse"
	case domain.DirectionInbound:
		return "inbound"
	default:
		return "unknown"
	}
}

func dealLabel(id *domain.DealID) string {
	if id == nil {
		return "-"
	}
	return id.String()
}

// ledgerLabel shows whether the ledger has seen the current status.
func ledgerLabel(p domain.TradeProposal, s styles) string {
	switch {
	case p.NotifiedStatus == p.Status && p.Status != "":
		return "synced"
	case p.NeedsNotification():
		return s.unsynced.Render(fmt.Sprintf("pending (%d tries)", p.NotifyAttempts))
	default:
		return "-"
	}
}

func formatAge(at, now time.Time) string {
	if at.IsZero() {
		return "unknown"
	}
	if now.IsZero() {
		return at.UTC().Format(time.RFC3339)
	}

	elapsed := now.Sub(at)
	switch {
	case elapsed < time.Minute:
		return "just now"
	case elapsed < time.Hour:
		return fmt.Sprintf("%dm ago", int(math.Floor(elapsed.Minutes())))
	case elapsed < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(math.Floor(elapsed.Hours())))
	default:
		return fmt.Sprintf("%dd ago", int(math.Floor(elapsed.Hours()/24)))
	}
}
