package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/HaiFongPan/tripguide/internal/responsive"
	"github.com/HaiFongPan/tripguide/internal/tui/theme"
)

var (
	layoutWidth  float64
	layoutHeight float64
	layoutCols   int
	layoutRows   int
)

// layoutCmd represents the layout command
var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Print scaled layout metrics for a viewport",
	Long: `Print how the baseline spacing and typography scale on a viewport.
The viewport is given in device-independent units, or in terminal cells.

Examples:
  tripguide layout --width 780 --height 1688   # 2x the baseline
  tripguide layout --cols 120 --rows 40        # a terminal window`,
	RunE: runLayout,
}

func init() {
	rootCmd.AddCommand(layoutCmd)

	layoutCmd.Flags().Float64Var(&layoutWidth, "width", 0, "viewport width in device-independent units")
	layoutCmd.Flags().Float64Var(&layoutHeight, "height", 0, "viewport height in device-independent units")
	layoutCmd.Flags().IntVar(&layoutCols, "cols", 80, "terminal columns (used when --width is not set)")
	layoutCmd.Flags().IntVar(&layoutRows, "rows", 50, "terminal rows (used when --height is not set)")
}

func runLayout(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	width, height := cfg.Layout.Cells().FromCells(layoutCols, layoutRows)
	if cmd.Flags().Changed("width") {
		width = layoutWidth
	}
	if cmd.Flags().Changed("height") {
		height = layoutHeight
	}

	engine, err := newEngine(cfg, width, height)
	if err != nil {
		return fmt.Errorf("invalid viewport: %w", err)
	}

	return writeLayoutReport(cmd, engine)
}

func writeLayoutReport(cmd *cobra.Command, engine *responsive.Engine) error {
	out := cmd.OutOrStdout()
	size := engine.Viewport()
	base := engine.Baseline()

	fmt.Fprintf(out, "Viewport %gx%g (baseline %gx%g)\n", size.Width, size.Height, base.BaseWidth, base.BaseHeight)
	orientation := "portrait"
	if engine.IsLandscape() {
		orientation = "landscape"
	}
	fmt.Fprintf(out, "Orientation: %s\n", orientation)
	fmt.Fprintf(out, "Form factor: %s\n\n", responsive.ClassifyFormFactor(engine, "phone", "tablet"))

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tBASE\tBY WIDTH\tBY HEIGHT")
	for _, s := range []struct {
		name string
		size float64
	}{
		{"spacing.xs", theme.SpacingXS},
		{"spacing.sm", theme.SpacingSM},
		{"spacing.md", theme.SpacingMD},
		{"spacing.lg", theme.SpacingLG},
		{"spacing.xl", theme.SpacingXL},
		{"spacing.xxl", theme.SpacingXXL},
	} {
		fmt.Fprintf(w, "%s\t%g\t%.2f\t%.2f\n", s.name, s.size, engine.ScaleByWidth(s.size), engine.ScaleByHeight(s.size))
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "FONT\tBASE\tSCALED")
	for _, f := range []struct {
		name string
		size float64
	}{
		{"xs", theme.FontXS},
		{"sm", theme.FontSM},
		{"md", theme.FontMD},
		{"lg", theme.FontLG},
		{"xl", theme.FontXL},
		{"xxl", theme.FontXXL},
		{"h3", theme.FontH3},
		{"h2", theme.FontH2},
		{"h1", theme.FontH1},
	} {
		fmt.Fprintf(w, "%s\t%g\t%d\n", f.name, f.size, engine.ScaleFont(f.size))
	}
	return w.Flush()
}
