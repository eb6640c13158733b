package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/tsets/pkg/errors"
)

// =============================================================================
// VertexPromptModel - Interactive vertex count entry
// =============================================================================

// VertexPromptModel is the bubbletea model that reads a vertex count.
type VertexPromptModel struct {
	Kind      string
	Input     string
	Err       string
	Value     int
	Done      bool
	Cancelled bool
}

// NewVertexPromptModel creates a prompt for a graph of the given kind.
func NewVertexPromptModel(kind string) VertexPromptModel {
	return VertexPromptModel{Kind: kind}
}

func (m VertexPromptModel) Init() tea.Cmd {
	return nil
}

func (m VertexPromptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.Cancelled = true
		return m, tea.Quit
	case tea.KeyEnter:
		n, err := strconv.Atoi(m.Input)
		if err != nil {
			m.Err = "enter a whole number"
			return m, nil
		}
		if err := errors.ValidateVertexCount(n); err != nil {
			m.Err = errors.UserMessage(err)
			return m, nil
		}
		m.Value = n
		m.Done = true
		return m, tea.Quit
	case tea.KeyBackspace:
		if len(m.Input) > 0 {
			m.Input = m.Input[:len(m.Input)-1]
		}
	case tea.KeyRunes:
		for _, r := range key.Runes {
			if r >= '0' && r <= '9' {
				m.Input += string(r)
			}
		}
	}
	m.Err = ""
	return m, nil
}

func (m VertexPromptModel) View() string {
	if m.Done || m.Cancelled {
		return ""
	}
	var b strings.Builder
	b.WriteString(StyleTitle.Render(fmt.Sprintf("Enter the number of vertices for the %s graph:", m.Kind)))
	b.WriteString(" ")
	b.WriteString(StyleValue.Render(m.Input))
	b.WriteString(StyleHighlight.Render("▏"))
	b.WriteString("\n")
	if m.Err != "" {
		b.WriteString(StyleWarning.Render(m.Err))
		b.WriteString("\n")
	}
	b.WriteString(StyleDim.Render("⏎ confirm  esc cancel"))
	b.WriteString("\n")
	return b.String()
}

// promptVertexCount runs the prompt on the terminal. Cancelling returns
// context.Canceled.
func promptVertexCount(ctx context.Context, kind string) (int, error) {
	p := tea.NewProgram(NewVertexPromptModel(kind), tea.WithContext(ctx))
	final, err := p.Run()
	if err != nil {
		if ctx.Err() != nil {
			return 0, ctx.Err()
		}
		return 0, fmt.Errorf("prompt: %w", err)
	}
	m := final.(VertexPromptModel)
	if m.Cancelled || !m.Done {
		return 0, context.Canceled
	}
	return m.Value, nil
}
