package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/parallelowow/pkg/colorspec"
	"github.com/matzehuels/parallelowow/pkg/pattern"
)

// colorCommand creates the color helper command.
func (c *CLI) colorCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "color",
		Short: "Parse and shift colors the way the renderer does",
	}

	cmd.AddCommand(c.colorParseCommand())
	cmd.AddCommand(c.colorAdjustCommand())
	cmd.AddCommand(c.colorFacetsCommand())

	return cmd
}

// colorParseCommand creates the "color parse" subcommand.
func (c *CLI) colorParseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <color>",
		Short: "Show how a color string is read",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			col, err := colorspec.Parse(args[0])
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			printKeyValueTo(w, "rgb", col.String())
			printKeyValueTo(w, "hex", col.Hex())
			if col.HasAlpha {
				printKeyValueTo(w, "opacity", strconv.FormatFloat(col.Opacity(), 'g', -1, 64))
			}
			return nil
		},
	}
}

// colorAdjustCommand creates the "color adjust" subcommand.
func (c *CLI) colorAdjustCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "adjust <color> <delta>",
		Short: "Add delta to every channel, clamping to 0-255",
		Example: `  parallelowow color adjust '#cc99ff' -- -10
  parallelowow color adjust 'rgba(10,20,30,0.5)' 5`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			delta, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("delta must be an integer: %q", args[1])
			}
			out, err := colorspec.AdjustBrightness(args[0], delta)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
}

// colorFacetsCommand creates the "color facets" subcommand.
func (c *CLI) colorFacetsCommand() *cobra.Command {
	var rows, step int

	cmd := &cobra.Command{
		Use:   "facets <base-color>",
		Short: "Show the facet colors a base color produces, row by row",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := colorspec.Parse(args[0])
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			facets := pattern.NewFacets(base)
			for row := range rows {
				fmt.Fprintf(w, "%s %s  %s  %s\n",
					StyleDim.Render(fmt.Sprintf("row %-3d", row)),
					swatch(facets[pattern.FacetTop]),
					swatch(facets[pattern.FacetRight]),
					swatch(facets[pattern.FacetLowerLeft]))
				facets = facets.Adjust(step)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&rows, "rows", 4, "number of rows to show")
	cmd.Flags().IntVar(&step, "step", pattern.DefaultColorStep, "per-row channel shift")
	return cmd
}
