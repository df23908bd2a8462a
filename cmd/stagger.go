package cmd

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/HaiFongPan/tripguide/internal/animation"
)

var (
	staggerCount     int
	staggerBase      time.Duration
	staggerIncrement time.Duration
)

// staggerCmd represents the stagger command
var staggerCmd = &cobra.Command{
	Use:   "stagger",
	Short: "Print the entrance delays of a batch of list items",
	Long: `Print the start delay of each item in a staggered entrance.

Examples:
  tripguide stagger --count 5 --base 150ms --increment 50ms`,
	RunE: runStagger,
}

func init() {
	rootCmd.AddCommand(staggerCmd)

	staggerCmd.Flags().IntVarP(&staggerCount, "count", "n", 5, "number of items")
	staggerCmd.Flags().DurationVar(&staggerBase, "base", 0, "base delay (default from config)")
	staggerCmd.Flags().DurationVar(&staggerIncrement, "increment", 0, "per-item increment (default from config)")
}

func runStagger(cmd *cobra.Command, args []string) error {
	spec := GetConfig().Animation.Stagger()
	if cmd.Flags().Changed("base") {
		spec.BaseDelay = staggerBase
	}
	if cmd.Flags().Changed("increment") {
		spec.PerItemIncrement = staggerIncrement
	}
	if err := spec.Validate(); err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ITEM\tDELAY")
	for i, d := range animation.StaggerDelays(staggerCount, spec) {
		fmt.Fprintf(w, "%s\t%s\n", humanize.Ordinal(i+1), d)
	}
	return w.Flush()
}
