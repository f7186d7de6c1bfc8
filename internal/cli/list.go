package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	perrors "github.com/matzehuels/pokedex/pkg/errors"
	"github.com/matzehuels/pokedex/pkg/pokedex"
)

// listCommand creates the "list" command.
func (c *CLI) listCommand() *cobra.Command {
	var (
		limit  int
		filter pokedex.Filter
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List pokemon with their types",
		Long: `List the first --limit pokemon in national dex order.

Filters combine: --query matches name substrings or an exact id, --type and
--region keep entries matching any of the given values.`,
		Example: `  pokedex list --limit 151
  pokedex list --query char
  pokedex list --type fire --type water --region kanto`,
		Args: cobra.NoArgs,
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

			prog := newProgress(loggerFromContext(ctx))
			var entries []pokedex.ListingEntry
			err = spin(ctx, "Fetching pokemon", func() error {
				var err error
				if entries, err = svc.ListAllE(ctx, limit); err != nil {
					return err
				}
				entries = filter.Apply(ctx, svc, entries)
				return nil
			})
			if err != nil {
				return fmt.Errorf("list pokemon: %w", err)
			}
			prog.done(fmt.Sprintf("Listed %d pokemon", len(entries)))

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), entries)
			}
			if len(entries) == 0 {
				printWarning("No pokemon match")
				return nil
			}
			renderListing(cmd.OutOrStdout(), entries)
			printSummary(len(entries), "pokemon", c.cfg.Cache.Backend)
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", pokedex.DefaultLimit, "number of pokemon to fetch")
	cmd.Flags().StringVarP(&filter.Query, "query", "q", "", "name substring or exact id")
	cmd.Flags().StringArrayVarP(&filter.Types, "type", "t", nil, "keep pokemon of this type (repeatable)")
	cmd.Flags().StringArrayVarP(&filter.Regions, "region", "r", nil, "keep pokemon of this region (repeatable)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of a table")

	return cmd
}

// showCommand creates the "show" command.
func (c *CLI) showCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:     "show <id|name>",
		Short:   "Show one pokemon's stats, abilities and sprites",
		Example: "  pokedex show 25\n  pokedex show mr-mime",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ref := args[0]

			svc, closeCache, err := c.newService(ctx)
			if err != nil {
				return err
			}
			defer closeCache()

			var detail *pokedex.DetailRecord
			err = spin(ctx, "Fetching "+ref, func() error {
				var err error
				detail, err = svc.GetDetailE(ctx, ref)
				return err
			})
			if err != nil {
				if perrors.Is(err, perrors.ErrCodeNotFound) || perrors.Is(err, perrors.ErrCodeInvalidInput) {
					return fmt.Errorf("pokemon not found: %s", ref)
				}
				return fmt.Errorf("pokemon not found: %s: %w", ref, err)
			}

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), detail)
			}
			renderDetail(cmd.OutOrStdout(), detail)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of text")
	return cmd
}

// =============================================================================
// Rendering
// =============================================================================

func renderListing(w io.Writer, entries []pokedex.ListingEntry) {
	rows := make([][]string, len(entries))
	for i, e := range entries {
		rows[i] = []string{e.ID, e.Name, typeBadges(e.Types)}
	}
	renderTable(w, []string{"#", "Name", "Types"}, rows, 0)
}

// statBarWidth is the number of cells in a full (255) stat bar.
const statBarWidth = 30

func renderDetail(w io.Writer, d *pokedex.DetailRecord) {
	fmt.Fprintln(w, StyleTitle.Render(fmt.Sprintf("#%d %s", d.ID, d.Name)))
	fmt.Fprintln(w)

	fmt.Fprintln(w, keyValue("Types", typeBadges(d.Types)))
	fmt.Fprintln(w, keyValue("Height", fmt.Sprintf("%.1f m", float64(d.Height)/10)))
	fmt.Fprintln(w, keyValue("Weight", fmt.Sprintf("%.1f kg", float64(d.Weight)/10)))

	abilities := make([]string, len(d.Abilities))
	for i, a := range d.Abilities {
		abilities[i] = a.Name
		if a.IsHidden {
			abilities[i] += StyleDim.Render(" (hidden)")
		}
	}
	fmt.Fprintln(w, keyValue("Abilities", strings.Join(abilities, ", ")))

	if len(d.Stats) > 0 {
		fmt.Fprintln(w)
		label := lipgloss.NewStyle().Foreground(colorGray).Width(16)
		value := StyleNumber.Width(4).Align(lipgloss.Right)
		for _, s := range d.Stats {
			fmt.Fprintln(w, label.Render(s.DisplayName)+value.Render(fmt.Sprint(s.BaseValue))+" "+statBar(s.DisplayPercentage, statBarWidth))
		}
	}

	if d.Sprites.OfficialArtwork != "" || d.Sprites.FrontDefault != "" {
		fmt.Fprintln(w)
		if d.Sprites.OfficialArtwork != "" {
			fmt.Fprintln(w, keyValue("Artwork", StyleLink.Render(d.Sprites.OfficialArtwork)))
		}
		if d.Sprites.FrontDefault != "" {
			fmt.Fprintln(w, keyValue("Sprite", StyleLink.Render(d.Sprites.FrontDefault)))
		}
	}
}

// writeJSON writes v as indented JSON.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
