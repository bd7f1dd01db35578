package cli

import (
	"context"
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/parallelowow/pkg/pattern"
	"github.com/matzehuels/parallelowow/pkg/pipeline"
	"github.com/matzehuels/parallelowow/pkg/preset"
	"github.com/matzehuels/parallelowow/pkg/render"
)

// defaultOutput is the base path used when --output is not given.
const defaultOutput = "pattern"

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output  string            // output file (single format) or base path (multiple)
	formats string            // comma-separated output formats
	preset  string            // built-in preset name or TOML file path
	width   float64           // canvas width in pixels
	height  float64           // canvas height in pixels
	seed    uint64            // random seed
	random  bool              // pick a random seed
	scale   float64           // PNG pixel density
	noCache bool              // disable the artifact cache
	refresh bool              // re-render even when cached
	style   map[string]string // style flags that were set, keyed by full property name
}

// styleFlagHelp describes each style property flag.
var styleFlagHelp = map[string]string{
	pattern.PropTileWidth:    "tile width in pixels (default 56)",
	pattern.PropBaseColor:    "base color: #rgb, #rrggbb, rgb() or rgba() (default #cc99ff)",
	pattern.PropColorStep:    "per-row channel shift (default -3)",
	pattern.PropProbability:  "chance that a tile is left out (default 0.33)",
	pattern.PropStrokeWeight: "outline width, 0 disables outlines (default 0.5)",
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts
	styleValues := make(map[string]*string, len(pattern.Properties))

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a pattern to SVG, PNG, PDF or JSON",
		Example: `  parallelowow render -o tiles.svg
  parallelowow render -f svg,png --width 1600 --height 900 --base-color '#88ccee'
  parallelowow render --preset dense --random -o dense.png`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.style = make(map[string]string)
			for name, v := range styleValues {
				if cmd.Flags().Changed(pattern.ShortName(name)) {
					opts.style[name] = *v
				}
			}
			return c.runRender(cmd.Context(), &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", `output file (single format) or base path (multiple); "-" writes to stdout`)
	cmd.Flags().StringVarP(&opts.formats, "format", "f", "", "output format(s): svg (default), png, pdf, json (comma-separated)")
	cmd.Flags().StringVarP(&opts.preset, "preset", "p", "", "built-in preset name or TOML preset file")
	cmd.Flags().Float64Var(&opts.width, "width", 0, "canvas width (default 800)")
	cmd.Flags().Float64Var(&opts.height, "height", 0, "canvas height (default 600)")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "random seed (default 42)")
	cmd.Flags().BoolVar(&opts.random, "random", false, "use a random seed")
	cmd.Flags().Float64Var(&opts.scale, "scale", 0, "PNG pixel density (default 2)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "re-render even when a cached artifact exists")
	cmd.MarkFlagsMutuallyExclusive("seed", "random")

	for _, name := range pattern.Properties {
		styleValues[name] = cmd.Flags().String(pattern.ShortName(name), "", styleFlagHelp[name])
	}

	_ = cmd.RegisterFlagCompletionFunc("format", cobra.FixedCompletions(pipeline.FormatNames, cobra.ShellCompDirectiveNoFileComp))
	_ = cmd.RegisterFlagCompletionFunc("preset", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return preset.Names(), cobra.ShellCompDirectiveDefault
	})

	return cmd
}

// runRender builds pipeline options from opts, renders every format and
// writes the artifacts.
func (c *CLI) runRender(ctx context.Context, opts *renderOpts) error {
	logger := loggerFromContext(ctx)

	popts, err := buildOptions(opts)
	if err != nil {
		return err
	}
	popts.Logger = logger
	if err := popts.ValidateAndSetDefaults(); err != nil {
		return err
	}
	if len(popts.Formats) > 1 && opts.output == "-" {
		return fmt.Errorf("cannot write %d formats to stdout", len(popts.Formats))
	}
	for _, f := range popts.Formats {
		if f == pipeline.FormatPDF && !render.Available() {
			printWarning("PDF output needs %s on PATH", render.Converter)
		}
	}

	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	prog := newProgress(logger)
	spin := newSpinnerWithContext(ctx, "Rendering "+strings.Join(popts.Formats, ", ")+"...")
	spin.Start()
	result, err := runner.Execute(ctx, popts)
	spin.Stop()
	if err != nil {
		return err
	}
	prog.donef("Rendered %d artifact(s)", len(result.Artifacts))

	paths := outputPaths(opts.output, popts.Formats)
	for _, f := range popts.Formats {
		if err := writeOutput(paths[f], result.Artifacts[f]); err != nil {
			return err
		}
	}
	if opts.output == "-" {
		return nil
	}

	printSuccess("Rendered %gx%g pattern (seed %d)", result.Frame.Region.Width, result.Frame.Region.Height, result.Frame.Seed)
	printStats(result.Stats.Drawn, result.Stats.Skipped, result.CacheInfo.RenderHit)
	for _, f := range popts.Formats {
		printFile(paths[f])
	}
	return nil
}

// buildOptions merges the preset, canvas flags and style flags into
// pipeline options. Flags win over preset values.
func buildOptions(opts *renderOpts) (pipeline.Options, error) {
	popts := pipeline.Options{
		Width:      opts.width,
		Height:     opts.height,
		Seed:       opts.seed,
		Scale:      opts.scale,
		Formats:    pipeline.ParseFormats(opts.formats),
		Properties: opts.style,
		Refresh:    opts.refresh,
	}

	if opts.preset != "" {
		p, err := preset.Resolve(opts.preset)
		if err != nil {
			return popts, err
		}
		popts.Source = p.Source()
		if popts.Width == 0 {
			popts.Width = p.Canvas.Width
		}
		if popts.Height == 0 {
			popts.Height = p.Canvas.Height
		}
		if popts.Seed == 0 {
			popts.Seed = p.Canvas.Seed
		}
	}

	if opts.random {
		popts.Seed = randomSeed()
	}
	return popts, nil
}

// randomSeed returns a non-zero seed, since zero selects the default.
func randomSeed() uint64 {
	for {
		if s := rand.Uint64(); s != 0 {
			return s
		}
	}
}

// outputPaths maps each format to its output file.
//
// A single format writes to output as given, adding the format extension
// when output has none. Several formats share a base path: a known format
// extension on output is stripped and each file gets its own extension.
func outputPaths(output string, formats []string) map[string]string {
	if output == "" {
		output = defaultOutput
	}
	paths := make(map[string]string, len(formats))

	if len(formats) == 1 {
		f := formats[0]
		if output == "-" || filepath.Ext(output) != "" {
			paths[f] = output
		} else {
			paths[f] = output + "." + f
		}
		return paths
	}

	base := output
	if ext := filepath.Ext(output); pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		base = strings.TrimSuffix(output, ext)
	}
	for _, f := range formats {
		paths[f] = base + "." + f
	}
	return paths
}

// writeOutput writes data to path, or to stdout when path is "-".
func writeOutput(path string, data []byte) error {
	if path == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
