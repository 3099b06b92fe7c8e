package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/Garsondee/Isle-Drifter/internal/assets"
	"github.com/Garsondee/Isle-Drifter/internal/game"
	"github.com/atotto/clipboard"
)

func main() {
	var seed int64
	var ticks int
	var targets int
	var tiledMap bool
	var copyOut bool
	var verbose bool

	flag.Int64Var(&seed, "seed", 42, "island seed, also steers the walker")
	flag.IntVar(&ticks, "ticks", 2400, "ticks to simulate")
	flag.IntVar(&targets, "targets", 8, "targets the walker visits before idling")
	flag.BoolVar(&tiledMap, "tiled", false, "walk the embedded authored map instead of a generated island")
	flag.BoolVar(&copyOut, "copy", false, "also copy the report to the system clipboard")
	flag.BoolVar(&verbose, "v", false, "print the full event log after the report")
	flag.Parse()

	if ticks <= 0 {
		fmt.Println("error: -ticks must be > 0")
		return
	}
	if targets <= 0 {
		fmt.Println("error: -targets must be > 0")
		return
	}

	opts := []game.WalkOption{game.WithSeed(seed), game.WithTargets(targets)}
	if tiledMap {
		opts = append(opts, game.WithTiledMap(assets.IslandMap))
	}
	ws, err := game.NewWalkSim(opts...)
	if err != nil {
		fmt.Printf("error: %v\n", err)
		os.Exit(1)
	}

	ws.RunTicks(ticks)

	report := ws.Report(ticks)
	fmt.Print(report)

	o := ws.Outcome()
	fmt.Println()
	fmt.Println(formatOutcome(o))
	verdict, reason := walkVerdict(o)
	fmt.Printf("verdict: %s (%s)\n", verdict, reason)

	if verbose {
		fmt.Println("\n=== full event log ===")
		for _, e := range ws.EventLog.Recent() {
			fmt.Println(e.String())
		}
	}

	if copyOut {
		if err := clipboard.WriteAll(report); err != nil {
			fmt.Printf("(clipboard unavailable: %v)\n", err)
		} else {
			fmt.Println("(report copied to clipboard)")
		}
	}
}

// formatOutcome renders the one-line counter summary printed under the report.
func formatOutcome(o game.WalkOutcome) string {
	return fmt.Sprintf(
		"outcome: ticks=%d build_tick=%d targets=%d/%d abandoned=%d dist=%.0f explored=%.0f%% pickups=%d moving=%d sliding=%d stopped=%d",
		o.Ticks, o.BuildTick, o.TargetsReached, o.TargetsWanted, o.TargetsAbandoned,
		o.Distance, o.ExploredFrac*100, o.Pickups, o.MovingTicks, o.SlideTicks, o.StoppedTicks)
}

// walkVerdict classifies a finished run from its outcome counters, so a
// report consumer can grep one line instead of reading the stage timeline.
func walkVerdict(o game.WalkOutcome) (string, string) {
	if o.BuildTick < 0 {
		return "uncharted", "map_never_built"
	}
	if o.MovingTicks == 0 {
		return "grounded", "walker_never_moved"
	}
	if o.TargetsReached == 0 {
		return "pinned", "no_target_reached"
	}
	if o.TargetsAbandoned > o.TargetsReached {
		return "obstructed", fmt.Sprintf("abandoned_%d_of_%d_targets",
			o.TargetsAbandoned, o.TargetsReached+o.TargetsAbandoned)
	}
	if o.TargetsReached+o.TargetsAbandoned >= o.TargetsWanted {
		return "complete", fmt.Sprintf("visited_all_%d_targets", o.TargetsWanted)
	}
	return "roaming", fmt.Sprintf("reached_%d_of_%d_targets", o.TargetsReached, o.TargetsWanted)
}
