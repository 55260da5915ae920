package cli

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/driftcli/drift/pkg/errors"
	"github.com/driftcli/drift/pkg/history"
	"github.com/driftcli/drift/pkg/observability"
	"github.com/driftcli/drift/pkg/route"
)

// Menu styles
var (
	menuSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	menuNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	menuDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
	menuErrorStyle    = lipgloss.NewStyle().Foreground(colorRed)
)

// menuScreen identifies which view the menu is showing.
type menuScreen int

const (
	screenMenu menuScreen = iota
	screenInput
	screenInstructions
)

// menuChoices are the top-level menu entries.
var menuChoices = []string{
	"Calculate a distance",
	"Instructions",
	"Quit",
}

// calcResult holds the outcome of the last calculation attempt.
type calcResult struct {
	tokens   []route.Token
	disp     route.Displacement
	rejected error
}

// MenuModel is the bubbletea model for the interactive menu.
type MenuModel struct {
	ctx     context.Context
	store   history.Store // may be nil
	backend string

	screen menuScreen
	cursor int
	input  string
	result *calcResult
}

// NewMenuModel creates the interactive menu. The store may be nil, in
// which case calculations are not recorded.
func NewMenuModel(ctx context.Context, store history.Store, backend string) MenuModel {
	return MenuModel{ctx: ctx, store: store, backend: backend}
}

func (m MenuModel) Init() tea.Cmd {
	return nil
}

func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch m.screen {
	case screenInput:
		return m.updateInput(key)
	case screenInstructions:
		return m.updateInstructions(key)
	default:
		return m.updateMenu(key)
	}
}

func (m MenuModel) updateMenu(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(menuChoices)-1 {
			m.cursor++
		}
	case "enter":
		switch m.cursor {
		case 0:
			m.screen = screenInput
			m.input = ""
			m.result = nil
		case 1:
			m.screen = screenInstructions
		default:
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m MenuModel) updateInput(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.screen = screenMenu
		return m, nil
	case "enter":
		m = m.calculate()
		return m, nil
	case "backspace":
		if len(m.input) > 0 {
			m.input = m.input[:len(m.input)-1]
		}
		return m, nil
	}
	if key.Type == tea.KeyRunes {
		m.input += string(key.Runes)
		m.result = nil
	}
	return m, nil
}

func (m MenuModel) updateInstructions(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "ctrl+c":
		return m, tea.Quit
	default:
		m.screen = screenMenu
	}
	return m, nil
}

// calculate runs the core on the entered route. Rejections are kept for
// display so the user can correct the input and try again.
func (m MenuModel) calculate() MenuModel {
	tokens, err := route.Tokenize(m.input)
	observability.Route().OnTokenize(m.ctx, m.input, len(tokens), err)
	if err != nil {
		m.result = &calcResult{rejected: err}
		return m
	}

	d, err := route.Displace(tokens)
	observability.Route().OnCompute(m.ctx, len(tokens), d.Distance(), err)
	if err != nil {
		m.result = &calcResult{rejected: err}
		return m
	}

	m.result = &calcResult{tokens: tokens, disp: d}

	if m.store != nil {
		err := m.store.Put(m.ctx, history.NewEntry(route.Encode(tokens), d))
		observability.Store().OnPut(m.ctx, m.backend, err)
	}
	return m
}

func (m MenuModel) View() string {
	switch m.screen {
	case screenInput:
		return m.viewInput()
	case screenInstructions:
		return m.viewInstructions()
	default:
		return m.viewMenu()
	}
}

func (m MenuModel) viewMenu() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("drift"))
	b.WriteString("\n")
	b.WriteString(menuDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	for i, choice := range menuChoices {
		cursor := "  "
		if i == m.cursor {
			cursor = "▸ "
		}
		line := cursor + choice
		if i == m.cursor {
			b.WriteString(menuSelectedStyle.Render(line))
		} else {
			b.WriteString(menuNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	return b.String()
}

func (m MenuModel) viewInput() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Calculate a distance"))
	b.WriteString("\n")
	b.WriteString(menuDimStyle.Render("⏎ calculate  esc back"))
	b.WriteString("\n\n")

	b.WriteString("  route: ")
	b.WriteString(StyleValue.Render(m.input))
	b.WriteString(menuSelectedStyle.Render("▏"))
	b.WriteString("\n")

	if m.result != nil {
		b.WriteString("\n")
		if m.result.rejected != nil {
			b.WriteString("  " + menuErrorStyle.Render(iconError+" "+errors.UserMessage(m.result.rejected)))
		} else {
			d := m.result.disp
			b.WriteString(fmt.Sprintf("  %s distance %s\n",
				StyleSuccess.Render(iconSuccess),
				StyleNumber.Render(fmt.Sprintf("%g", d.Distance()))))
			b.WriteString(menuDimStyle.Render(fmt.Sprintf("  %d movements, offset %g right %g forward",
				len(m.result.tokens), d.Horizontal, d.Vertical)))
		}
		b.WriteString("\n")
	}

	return b.String()
}

func (m MenuModel) viewInstructions() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Instructions"))
	b.WriteString("\n\n")
	b.WriteString("  A route is a series of movements written as {steps}{direction}\n")
	b.WriteString("  with no separators. Directions:\n\n")
	b.WriteString("    " + StyleNumber.Render("F") + "  forward    " + StyleNumber.Render("B") + "  back\n")
	b.WriteString("    " + StyleNumber.Render("L") + "  left       " + StyleNumber.Render("R") + "  right\n\n")
	b.WriteString("  Upper and lower case both work. For example " + StyleValue.Render("3F4R") + " means\n")
	b.WriteString("  3 steps forward then 4 steps right: distance 5 from the start.\n\n")
	b.WriteString(menuDimStyle.Render("  press any key to go back"))
	b.WriteString("\n")

	return b.String()
}

// runMenu starts the interactive menu.
func (c *CLI) runMenu(ctx context.Context) error {
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}

	var store history.Store
	backend := cfg.History.Backend
	if s, err := c.newHistoryStore(ctx, cfg); err != nil {
		c.Logger.Warn("history disabled", "err", err)
	} else {
		store = s
	}
	if store != nil {
		defer store.Close()
	}

	p := tea.NewProgram(NewMenuModel(ctx, store, backend), tea.WithContext(ctx))
	_, err = p.Run()
	return err
}
