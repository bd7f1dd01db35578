package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/parallelowow/pkg/pattern"
	"github.com/matzehuels/parallelowow/pkg/preset"
)

// presetsCommand creates the presets command.
func (c *CLI) presetsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "presets [name|file]",
		Short: "List built-in presets or show one preset's style",
		Args:  cobra.MaximumNArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return preset.Names(), cobra.ShellCompDirectiveDefault
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			if len(args) == 0 {
				for _, name := range preset.Names() {
					p, err := preset.Builtin(name)
					if err != nil {
						return err
					}
					fmt.Fprintf(w, "%s  %s\n", StyleHighlight.Render(fmt.Sprintf("%-8s", p.Name)), StyleDim.Render(p.Description))
				}
				return nil
			}

			p, err := preset.Resolve(args[0])
			if err != nil {
				return err
			}
			st, err := pattern.ParseStyle(p.Source())
			for _, fe := range pattern.FieldErrors(err) {
				loggerFor(cmd).Warn("style property ignored, using default", "property", fe.Property, "value", fe.Value)
			}
			if p.Name != "" {
				fmt.Fprintln(w, StyleTitle.Render(p.Name))
			}
			values := st.Map()
			for _, prop := range pattern.Properties {
				printKeyValueTo(w, pattern.ShortName(prop), values[prop])
			}
			if p.Canvas.Width > 0 && p.Canvas.Height > 0 {
				printKeyValueTo(w, "canvas", fmt.Sprintf("%gx%g", p.Canvas.Width, p.Canvas.Height))
			}
			if p.Canvas.Seed != 0 {
				printKeyValueTo(w, "seed", fmt.Sprint(p.Canvas.Seed))
			}
			return nil
		},
	}
}
