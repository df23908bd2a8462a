package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/HaiFongPan/tripguide/internal/animation"
)

var (
	gateCooldown time.Duration
	gateHold     time.Duration
	gateForce    []int
	gateItem     bool
)

// gateCmd represents the gate command
var gateCmd = &cobra.Command{
	Use:   "gate <offset>...",
	Short: "Replay trigger timestamps through a transition gate",
	Long: `Replay trigger offsets (milliseconds, or durations like 1.2s) through a gate and
print which ones start a transition. By default every accepted transition completes
immediately; --hold keeps it running so later triggers are dropped.

Examples:
  tripguide gate 0 250 301
  tripguide gate 0 100 250 --force 2
  tripguide gate 0 100 600 --hold 500ms --item`,
	Args: cobra.MinimumNArgs(1),
	RunE: runGate,
}

func init() {
	rootCmd.AddCommand(gateCmd)

	gateCmd.Flags().DurationVar(&gateCooldown, "cooldown", 0, "cooldown window (default from config)")
	gateCmd.Flags().DurationVar(&gateHold, "hold", 0, "how long each accepted transition runs")
	gateCmd.Flags().IntSliceVar(&gateForce, "force", nil, "1-based positions of triggers with force reset")
	gateCmd.Flags().BoolVar(&gateItem, "item", false, "use the item cooldown instead of the page cooldown")
}

// triggerOutcome is one replayed trigger
type triggerOutcome struct {
	Offset   time.Duration
	Force    bool
	Accepted bool
	State    animation.State
}

func runGate(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	offsets, err := parseOffsets(args)
	if err != nil {
		return err
	}

	cooldown := cfg.Animation.PageCooldown
	if gateItem {
		cooldown = cfg.Animation.ItemCooldown
	}
	if cmd.Flags().Changed("cooldown") {
		cooldown = gateCooldown
	}

	forced := make(map[int]bool, len(gateForce))
	for _, pos := range gateForce {
		forced[pos-1] = true
	}

	outcomes, err := replayTriggers(offsets, forced, cooldown, gateHold)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "cooldown %s, hold %s\n", cooldown, gateHold)
	fmt.Fprintln(w, "#\tOFFSET\tFORCE\tDECISION")
	accepted := 0
	for i, o := range outcomes {
		decision := "suppressed"
		switch {
		case o.Accepted:
			decision = "animate"
			accepted++
		case o.State == animation.StateTransitioning:
			decision = "dropped (busy)"
		}
		fmt.Fprintf(w, "%d\t%s\t%t\t%s\n", i+1, o.Offset, o.Force, decision)
	}
	fmt.Fprintf(w, "%d of %d triggers accepted\n", accepted, len(outcomes))
	return w.Flush()
}

// replayTriggers feeds offsets through a fresh gate on a manual clock
func replayTriggers(offsets []time.Duration, forced map[int]bool, cooldown, hold time.Duration) ([]triggerOutcome, error) {
	start := time.Unix(0, 0)
	clock := animation.NewManualClock(start)
	gate, err := animation.NewGate(animation.GateConfig{Name: "replay", Cooldown: cooldown}, clock)
	if err != nil {
		return nil, err
	}
	defer gate.Dispose()

	var busyUntil time.Time
	outcomes := make([]triggerOutcome, 0, len(offsets))
	for i, offset := range offsets {
		now := start.Add(offset)
		clock.SetTime(now)
		if gate.IsTransitioning() && !now.Before(busyUntil) {
			gate.Complete()
		}

		state := gate.State()
		decision := gate.Trigger(forced[i])
		if decision.ShouldAnimate {
			if hold <= 0 {
				gate.Complete()
			} else {
				busyUntil = now.Add(hold)
			}
		}
		outcomes = append(outcomes, triggerOutcome{
			Offset:   offset,
			Force:    forced[i],
			Accepted: decision.ShouldAnimate,
			State:    state,
		})
	}
	return outcomes, nil
}

// parseOffsets accepts plain milliseconds or Go durations
func parseOffsets(args []string) ([]time.Duration, error) {
	offsets := make([]time.Duration, 0, len(args))
	for _, arg := range args {
		arg = strings.TrimSpace(arg)
		if ms, err := strconv.ParseFloat(arg, 64); err == nil {
			offsets = append(offsets, time.Duration(ms*float64(time.Millisecond)))
			continue
		}
		d, err := time.ParseDuration(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid trigger offset %q: %w", arg, err)
		}
		offsets = append(offsets, d)
	}
	return offsets, nil
}
