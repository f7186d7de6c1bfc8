package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/pokedex/pkg/pokedex"
)

var headerStyle = lipgloss.NewStyle().Foreground(colorGray).Bold(true)

// sampleSize is how many member names a category row shows.
const sampleSize = 4

// typesCommand creates the "types" command.
func (c *CLI) typesCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "types",
		Short: "List elemental types with their members",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			svc, closeCache, err := c.newService(ctx)
			if err != nil {
				return err
			}
			defer closeCache()

			var cats []pokedex.TypeCategory
			err = spin(ctx, "Fetching types", func() error {
				var err error
				cats, err = svc.ListTypeCategoriesE(ctx)
				return err
			})
			if err != nil {
				return fmt.Errorf("list types: %w", err)
			}

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), cats)
			}
			rows := make([][]string, len(cats))
			for i, cat := range cats {
				rows[i] = []string{typeBadge(cat.Name), strconv.Itoa(len(cat.MemberNames)), sample(cat.MemberNames)}
			}
			renderTable(cmd.OutOrStdout(), []string{"Type", "Members", "Examples"}, rows, 1)
			printSummary(len(cats), "types", c.cfg.Cache.Backend)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of a table")
	return cmd
}

// regionCommand creates the "region" command.
func (c *CLI) regionCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "region <name>",
		Short: "List the species of a region's pokedex",
		Long: fmt.Sprintf(`List the species of a region's pokedex in dex order.

Known regions: %s`, strings.Join(pokedex.Regions(), ", ")),
		Example:   "  pokedex region kanto",
		Args:      cobra.ExactArgs(1),
		ValidArgs: lowerAll(pokedex.Regions()),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			svc, closeCache, err := c.newService(ctx)
			if err != nil {
				return err
			}
			defer closeCache()

			var names []string
			err = spin(ctx, "Fetching "+args[0], func() error {
				var err error
				names, err = svc.ListByRegionE(ctx, args[0])
				return err
			})
			if err != nil {
				return fmt.Errorf("region %s: %w", args[0], err)
			}

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), names)
			}
			w := cmd.OutOrStdout()
			for i, name := range names {
				fmt.Fprintf(w, "%s %s\n", StyleNumber.Width(5).Align(lipgloss.Right).Render(strconv.Itoa(i+1)), pokedex.FormatDisplayName(name))
			}
			printSummary(len(names), "species", c.cfg.Cache.Backend)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of text")
	return cmd
}

// generationsCommand creates the "generations" command.
func (c *CLI) generationsCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "generations [id]",
		Short: "List game generations with their species",
		Example: `  pokedex generations
  pokedex generations 2 --json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			svc, closeCache, err := c.newService(ctx)
			if err != nil {
				return err
			}
			defer closeCache()

			if len(args) == 1 {
				id, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("invalid generation id: %q", args[0])
				}
				var (
					gen *pokedex.GenerationGroup
					ok  bool
				)
				_ = spin(ctx, "Fetching generation "+args[0], func() error {
					gen, ok = svc.Generation(ctx, id)
					return nil
				})
				if !ok {
					return fmt.Errorf("generation not found: %d", id)
				}
				if asJSON {
					return writeJSON(cmd.OutOrStdout(), gen)
				}
				renderGeneration(cmd.OutOrStdout(), gen)
				return nil
			}

			var gens []pokedex.GenerationGroup
			_ = spin(ctx, "Fetching generations", func() error {
				gens = svc.Generations(ctx)
				return nil
			})
			if err := ctx.Err(); err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), gens)
			}
			rows := make([][]string, len(gens))
			for i, g := range gens {
				rows[i] = []string{strconv.Itoa(g.ID), g.Name, g.MainRegion, strings.Join(g.Games, ", "), strconv.Itoa(len(g.MemberNames))}
			}
			renderTable(cmd.OutOrStdout(), []string{"#", "Generation", "Region", "Games", "Species"}, rows, 0)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of a table")
	return cmd
}

func renderGeneration(w io.Writer, g *pokedex.GenerationGroup) {
	fmt.Fprintln(w, StyleTitle.Render(g.Name))
	fmt.Fprintln(w, keyValue("Region", g.MainRegion))
	fmt.Fprintln(w, keyValue("Games", strings.Join(g.Games, ", ")))
	fmt.Fprintln(w, keyValue("Species", strconv.Itoa(len(g.MemberNames))))
	fmt.Fprintln(w)
	for _, name := range g.MemberNames {
		fmt.Fprintln(w, "  "+pokedex.FormatDisplayName(name))
	}
}

// renderTable renders a bordered table. numCol, if in range, is
// right-aligned and highlighted.
func renderTable(w io.Writer, headers []string, rows [][]string, numCol int) {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			base := lipgloss.NewStyle().Padding(0, 1)
			switch {
			case row == -1:
				return headerStyle.Padding(0, 1)
			case col == numCol:
				return base.Foreground(colorCyan).Align(lipgloss.Right)
			}
			return base
		})
	fmt.Fprintln(w, t.Render())
}

// sample returns the first few names, display-formatted.
func sample(names []string) string {
	n := min(len(names), sampleSize)
	out := make([]string, n)
	for i := range n {
		out[i] = pokedex.FormatDisplayName(names[i])
	}
	s := strings.Join(out, ", ")
	if len(names) > n {
		s += StyleDim.Render(fmt.Sprintf(", +%d", len(names)-n))
	}
	return s
}

func lowerAll(ss []string) []string {
	out := make([]string, len(ss))
	for i, s := range ss {
		out[i] = strings.ToLower(s)
	}
	return out
}
