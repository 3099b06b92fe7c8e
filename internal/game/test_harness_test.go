package game

import (
	"strings"
	"testing"

	"github.com/Garsondee/Isle-Drifter/internal/assets"
)

func TestWalkSimChartsThenWalks(t *testing.T) {
	ws, err := NewWalkSim(WithSeed(1), WithTargets(4))
	if err != nil {
		t.Fatalf("NewWalkSim: %v", err)
	}
	if got := ws.Report(50); !strings.Contains(got, "island still charting") {
		t.Errorf("pre-build report missing the charting notice:\n%s", got)
	}

	// 42 rows staged 6 per poll: the seventh poll finishes generation and
	// the same tick builds the map.
	built := ws.RunUntilBuilt(100)
	if built != 7 {
		t.Fatalf("map built at tick %d, want 7", built)
	}
	if ws.World == nil || ws.Player == nil || ws.Fog == nil {
		t.Fatal("build tick did not wire the world state")
	}
	if !ws.World.IsClear(ws.Player.X, ws.Player.Y, ws.Player.Radius) {
		t.Errorf("player landed at a non-standable (%.1f, %.1f)", ws.Player.X, ws.Player.Y)
	}

	ws.RunTicks(600)
	o := ws.Outcome()
	if o.Ticks != 607 || o.BuildTick != 7 {
		t.Errorf("outcome ticks=%d buildTick=%d, want 607 and 7", o.Ticks, o.BuildTick)
	}
	if o.Distance <= 0 || o.MovingTicks == 0 {
		t.Errorf("walker never moved: distance=%.1f movingTicks=%d", o.Distance, o.MovingTicks)
	}
	if o.MovingTicks > 600 {
		t.Errorf("movingTicks=%d exceeds the %d walked ticks", o.MovingTicks, 600)
	}
	if o.ExploredFrac <= 0 || o.ExploredFrac > 1 {
		t.Errorf("ExploredFrac = %.3f", o.ExploredFrac)
	}
	if o.TargetsReached+o.TargetsAbandoned > o.TargetsWanted {
		t.Errorf("visited %d+%d targets with a budget of %d",
			o.TargetsReached, o.TargetsAbandoned, o.TargetsWanted)
	}

	if builds := ws.EventLog.Filter(EventBuild); len(builds) < 3 {
		t.Errorf("build log has %d entries, want charting plus the two build lines", len(builds))
	}
	rep := ws.Report(100)
	if !strings.Contains(rep, "Isle Drifter walk report") {
		t.Error("report header missing")
	}
	if !strings.Contains(rep, "grid=60x42") {
		t.Errorf("report missing the built grid line:\n%s", rep)
	}
}

func TestWalkSimIsDeterministicPerSeed(t *testing.T) {
	run := func(seed int64) (WalkOutcome, float64, float64) {
		ws, err := NewWalkSim(WithSeed(seed), WithTargets(3))
		if err != nil {
			t.Fatalf("NewWalkSim: %v", err)
		}
		ws.RunUntilBuilt(100)
		ws.RunTicks(400)
		return ws.Outcome(), ws.Player.X, ws.Player.Y
	}

	a, ax, ay := run(9)
	b, bx, by := run(9)
	if a != b {
		t.Errorf("same seed, different outcomes:\n  %+v\n  %+v", a, b)
	}
	if ax != bx || ay != by {
		t.Errorf("same seed, different final positions: (%v, %v) vs (%v, %v)", ax, ay, bx, by)
	}

	c, _, _ := run(10)
	if c.Distance == a.Distance {
		t.Error("different seeds walked byte-identical distances")
	}
}

func TestWalkSimWalksTheAuthoredMap(t *testing.T) {
	ws, err := NewWalkSim(WithTiledMap(assets.IslandMap), WithSeed(2), WithTargets(3))
	if err != nil {
		t.Fatalf("NewWalkSim: %v", err)
	}

	// The authored source has no staging phase; the first poll builds.
	if built := ws.RunUntilBuilt(10); built != 1 {
		t.Fatalf("authored map built at tick %d, want 1", built)
	}
	if ws.World.Cols != 30 || ws.World.Rows != 22 {
		t.Errorf("world is %dx%d, want the authored 30x22", ws.World.Cols, ws.World.Rows)
	}
	if !ws.World.IsClear(ws.Player.X, ws.Player.Y, ws.Player.Radius) {
		t.Errorf("player landed at a non-standable (%.1f, %.1f)", ws.Player.X, ws.Player.Y)
	}

	ws.RunTicks(300)
	o := ws.Outcome()
	if o.Distance <= 0 {
		t.Errorf("walker never moved on the authored map: %+v", o)
	}
	if o.ExploredFrac <= 0 || o.ExploredFrac > 1 {
		t.Errorf("ExploredFrac = %.3f", o.ExploredFrac)
	}

	if rep := ws.Report(0); !strings.Contains(rep, "map="+assets.IslandMap) {
		t.Errorf("report does not name the authored map:\n%s", rep)
	}
}
