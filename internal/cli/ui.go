package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/parallelowow/pkg/colorspec"
)

// The palette leans on the default base color (#cc99ff) for accents.
var (
	colorAccent = lipgloss.Color("141")
	colorOK     = lipgloss.Color("35")
	colorWarn   = lipgloss.Color("220")
	colorText   = lipgloss.Color("255")
	colorMuted  = lipgloss.Color("245")
	colorFaint  = lipgloss.Color("240")
)

var (
	StyleTitle     = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	StyleHighlight = lipgloss.NewStyle().Foreground(colorAccent)
	StyleDim       = lipgloss.NewStyle().Foreground(colorFaint)

	styleValue       = lipgloss.NewStyle().Foreground(colorText)
	styleKey         = lipgloss.NewStyle().Foreground(colorMuted).Width(14)
	styleIconSpinner = lipgloss.NewStyle().Foreground(colorAccent)
)

// status lines: a colored glyph followed by the message.
var (
	markOK   = lipgloss.NewStyle().Foreground(colorOK).Render("✓")
	markWarn = lipgloss.NewStyle().Foreground(colorWarn).Render("!")
	markInfo = lipgloss.NewStyle().Foreground(colorMuted).Render("›")
)

func printSuccess(format string, args ...any) {
	fmt.Println(markOK, fmt.Sprintf(format, args...))
}

func printWarning(format string, args ...any) {
	fmt.Println(markWarn, lipgloss.NewStyle().Foreground(colorWarn).Render(fmt.Sprintf(format, args...)))
}

func printInfo(format string, args ...any) {
	fmt.Println(markInfo, fmt.Sprintf(format, args...))
}

// printDetail prints an indented, muted line under the previous status.
func printDetail(format string, args ...any) {
	fmt.Println("  " + StyleDim.Render(fmt.Sprintf(format, args...)))
}

// printFile prints a path that was written.
func printFile(path string) {
	fmt.Println("  " + StyleDim.Render("→") + " " + styleValue.Render(path))
}

func printKeyValueTo(w io.Writer, key, value string) {
	fmt.Fprintln(w, styleKey.Render(key)+" "+styleValue.Render(value))
}

// printStats prints the tile counts of a render and whether its artifacts
// came from the cache.
func printStats(drawn, skipped int, cached bool) {
	origin := lipgloss.NewStyle().Foreground(colorMuted).Render("fresh")
	if cached {
		origin = lipgloss.NewStyle().Foreground(colorOK).Render("cached")
	}
	sep := StyleDim.Render(" · ")
	fmt.Println("  " + strings.Join([]string{
		StyleDim.Render(fmt.Sprintf("%d tiles", drawn)),
		StyleDim.Render(fmt.Sprintf("%d skipped", skipped)),
		origin,
	}, sep))
}

// swatch renders a small block in c followed by its hex code.
func swatch(c colorspec.Color) string {
	block := lipgloss.NewStyle().Background(lipgloss.Color(c.Hex())).Render("  ")
	return block + " " + c.Hex()
}
