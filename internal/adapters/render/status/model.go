package status

import (
	"errors"
	"io"

	"github.com/bnema/tradebot/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUnexpectedRenderModel = errors.New("unexpected final bubbletea model type")

type renderReadyMsg struct{}

type model struct {
	proposals []domain.TradeProposal
	opts      RenderOptions
	styles    styles
	output    string
}

func newModel(proposals []domain.TradeProposal, opts RenderOptions) model {
	return model{
		proposals: proposals,
		opts:      opts,
		styles:    newStyles(),
	}
}

func (m model) Init() tea.Cmd {
	return func() tea.Msg {
		return renderReadyMsg{}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg.(type) {
	case renderReadyMsg:
		m.output = renderView(m.proposals, m.opts, m.styles)
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m model) View() string {
	return m.output
}

// Render draws the proposal table once, without taking over the terminal.
func Render(proposals []domain.TradeProposal, opts RenderOptions) (string, error) {
	p := tea.NewProgram(
		newModel(proposals, opts),
		tea.WithInput(nil),
		tea.WithOutput(io.Discard),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	rendered, ok := finalModel.(model)
	if !ok {
		return "", ErrUnexpectedRenderModel
	}

	return rendered.View(), nil
}
