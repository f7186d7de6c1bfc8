package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/pokedex/pkg/pokedex"
)

// List styles
var (
	listDimStyle   = lipgloss.NewStyle().Foreground(colorDim)
	listQueryStyle = lipgloss.NewStyle().Foreground(colorCyan)
)

// =============================================================================
// PokemonListModel - Interactive pokemon selection
// =============================================================================

// PokemonListModel is the bubbletea model for picking a pokemon from the
// listing. Typing "/" starts a search that narrows the visible rows.
type PokemonListModel struct {
	All      []pokedex.ListingEntry
	Visible  []pokedex.ListingEntry
	Query    string
	Typing   bool
	Cursor   int
	Offset   int
	Height   int
	Selected *pokedex.ListingEntry
}

// NewPokemonListModel creates a new pokemon list model.
func NewPokemonListModel(entries []pokedex.ListingEntry) PokemonListModel {
	return PokemonListModel{
		All:     entries,
		Visible: entries,
		Height:  15,
	}
}

func (m PokemonListModel) Init() tea.Cmd {
	return nil
}

func (m PokemonListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.Typing {
			return m.updateQuery(msg), nil
		}
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "/":
			m.Typing = true
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Visible)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter":
			if len(m.Visible) == 0 {
				return m, nil
			}
			entry := m.Visible[m.Cursor]
			m.Selected = &entry
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 8
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

// updateQuery handles keys while the search line has focus.
func (m PokemonListModel) updateQuery(msg tea.KeyMsg) PokemonListModel {
	switch msg.Type {
	case tea.KeyEnter, tea.KeyEsc:
		m.Typing = false
		return m
	case tea.KeyCtrlC:
		m.Typing = false
		m.Query = ""
	case tea.KeyBackspace:
		if r := []rune(m.Query); len(r) > 0 {
			m.Query = string(r[:len(r)-1])
		}
	case tea.KeySpace:
		m.Query += " "
	case tea.KeyRunes:
		m.Query += string(msg.Runes)
	default:
		return m
	}

	f := pokedex.Filter{Query: m.Query}
	m.Visible = m.Visible[:0:0]
	for _, e := range m.All {
		if f.Match(e, nil) {
			m.Visible = append(m.Visible, e)
		}
	}
	m.Cursor, m.Offset = 0, 0
	return m
}

func (m PokemonListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Pokemon"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  / search  ⏎ select  q quit"))
	b.WriteString("\n")
	switch {
	case m.Typing:
		b.WriteString(listQueryStyle.Render("/" + m.Query + "█"))
	case m.Query != "":
		b.WriteString(listDimStyle.Render("/" + m.Query))
	}
	b.WriteString("\n\n")

	end := min(m.Offset+m.Height, len(m.Visible))

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		e := m.Visible[i]
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		rows = append(rows, []string{cursor, e.ID, e.Name, typeBadges(e.Types)})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "#", "Name", "Types").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			base := lipgloss.NewStyle()
			if col == 1 {
				base = base.Align(lipgloss.Right)
			}
			if m.Offset+row == m.Cursor && col != 3 {
				return base.Foreground(colorGreen).Bold(true)
			}
			return base
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	pos := 0
	if len(m.Visible) > 0 {
		pos = m.Cursor + 1
	}
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", pos, len(m.Visible))))

	return b.String()
}

// =============================================================================
// Browse Command
// =============================================================================

// browseCommand creates the "browse" command.
func (c *CLI) browseCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Pick a pokemon interactively and show its detail",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if !cmd.Flags().Changed("limit") {
				limit = c.cfg.Limit
			}

			svc, closeCache, err := c.newService(ctx)
			if err != nil {
				return err
			}
			defer closeCache()

			var entries []pokedex.ListingEntry
			err = spin(ctx, "Fetching pokemon", func() error {
				var err error
				entries, err = svc.ListAllE(ctx, limit)
				return err
			})
			if err != nil {
				return fmt.Errorf("list pokemon: %w", err)
			}
			if len(entries) == 0 {
				printWarning("No pokemon to browse")
				return nil
			}

			final, err := tea.NewProgram(NewPokemonListModel(entries), tea.WithContext(ctx), tea.WithAltScreen()).Run()
			if err != nil {
				return fmt.Errorf("browse: %w", err)
			}
			picked := final.(PokemonListModel).Selected
			if picked == nil {
				return nil
			}

			detail, ok := svc.GetDetail(ctx, picked.Slug)
			if !ok {
				return fmt.Errorf("pokemon not found: %s", picked.Slug)
			}
			renderDetail(cmd.OutOrStdout(), detail)
			printNewline()
			printNextStep("Show again", "pokedex show "+picked.Slug)
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", pokedex.DefaultLimit, "number of pokemon to load")
	return cmd
}
