package game

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/atotto/clipboard"
)

// walkReportData is everything the report renderer reads. Game and WalkSim
// each assemble one from their own state.
type walkReportData struct {
	MapName string
	Seed    int64
	Tick    int
	Builder *MapBuilder
	World   *CollisionMap
	Fog     *FogOfWar
	Inv     *Inventory
	Log     *EventLog
	Player  *Player
}

// walkReport assembles a plain-text account of the island and the player's
// recent movement, suitable for pasting into a bug report.
func (g *Game) walkReport(lastTicks int) string {
	return walkReportData{
		MapName: g.mapName,
		Seed:    g.mapSeed,
		Tick:    g.tick,
		Builder: g.builder,
		World:   g.world,
		Fog:     g.fog,
		Inv:     g.inventory,
		Log:     g.eventLog,
		Player:  g.player,
	}.render(lastTicks)
}

func (d walkReportData) render(lastTicks int) string {
	if lastTicks <= 0 {
		lastTicks = 240
	}

	var b strings.Builder
	fmt.Fprintf(&b, "--- Isle Drifter walk report ---\n")
	fmt.Fprintf(&b, "map=%s seed=%d tick=%d\n", d.MapName, d.Seed, d.Tick)

	if d.World == nil {
		b.WriteString("(island still charting)\n")
		return b.String()
	}
	m := d.World
	st := d.Builder.Stats()
	fmt.Fprintf(&b, "grid=%dx%d origin=(%.0f,%.0f) tile=%.0f\n", m.Cols, m.Rows, m.OriginX, m.OriginY, m.TileSize)
	fmt.Fprintf(&b, "build: placements=%d consolidated=%d shored=%d elapsed=%s\n",
		st.Placements, st.Consolidated, st.Shored, st.Elapsed.Round(time.Microsecond))

	counts := m.CategoryCounts()
	var cats []string
	for t := TileType(0); t < tileTypeCount; t++ {
		if counts[t] > 0 {
			cats = append(cats, fmt.Sprintf("%s=%d", t, counts[t]))
		}
	}
	fmt.Fprintf(&b, "cells: %s\n", strings.Join(cats, " "))
	fmt.Fprintf(&b, "charted=%.0f%%  bag: %s\n", d.Fog.ExploredFrac()*100, d.Inv.Summary())

	if n := d.Log.Tail(8); len(n) > 0 {
		b.WriteString("recent log:\n")
		for _, e := range n {
			b.WriteString("  ")
			b.WriteString(e.String())
			b.WriteByte('\n')
		}
	}
	b.WriteByte('\n')

	if d.Player == nil {
		b.WriteString("(no player yet)\n")
		return b.String()
	}

	toTick := d.Tick
	fromTick := toTick - lastTicks + 1
	if fromTick < 0 {
		fromTick = 0
	}
	fmt.Fprintf(&b, "== WALK T=%d..%d ==\n", fromTick, toTick)
	snaps := d.Player.Snapshots(fromTick, toTick)
	if len(snaps) == 0 {
		b.WriteString("(no movement recorded yet)\n")
		return b.String()
	}

	sum := summarizeWalk(snaps)
	fmt.Fprintf(&b, "summary: wanted=%d moving=%d slidX=%d slidY=%d stopped=%d maxStopRun=%d\n",
		sum.wantedTicks, sum.movingTicks, sum.slidXTicks, sum.slidYTicks, sum.stoppedTicks, sum.maxStopRun)
	fmt.Fprintf(&b, "         dist=%.0f ground: %s\n", sum.distance, groundMix(sum.byTile, len(snaps)))

	events := walkEvents(snaps)
	if len(events) > 0 {
		b.WriteString("events:\n")
		for _, e := range events {
			b.WriteString("  - ")
			b.WriteString(e)
			b.WriteByte('\n')
		}
	}

	stages := buildWalkStages(snaps)
	b.WriteString("stages:\n")
	for i, stg := range stages {
		tag := ""
		if stg.onlyStopped {
			tag = " [PINNED]"
		}
		fmt.Fprintf(&b,
			"  %02d) T=%d..%d (%dt)%s ground:%s cell:(%d,%d)->(%d,%d) moved:%.0f w=%t sx=%t sy=%t stop=%t\n",
			i+1,
			stg.startTick,
			stg.endTick,
			stg.count,
			tag,
			stg.first.Tile,
			stg.first.Col, stg.first.Row,
			stg.last.Col, stg.last.Row,
			stg.movedDistance,
			stg.first.Wanted,
			stg.first.SlidX,
			stg.first.SlidY,
			stg.first.Stopped,
		)
		if stg.count <= 3 {
			for _, ss := range snaps[stg.startIdx : stg.endIdx+1] {
				b.WriteString("      ")
				b.WriteString(ss.compactString())
				b.WriteByte('\n')
			}
		} else {
			b.WriteString("      first: ")
			b.WriteString(stg.first.compactString())
			b.WriteByte('\n')
			b.WriteString("      last:  ")
			b.WriteString(stg.last.compactString())
			b.WriteByte('\n')
		}
	}

	return b.String()
}

func (s MoveSnapshot) compactString() string {
	return fmt.Sprintf("T=%04d pos=(%.1f,%.1f) cell=(%d,%d) %s mv=%.2f w=%t sx=%t sy=%t stop=%t",
		s.Tick, s.X, s.Y, s.Col, s.Row, s.Tile, s.Moved, s.Wanted, s.SlidX, s.SlidY, s.Stopped)
}

type walkSummary struct {
	wantedTicks  int
	movingTicks  int
	slidXTicks   int
	slidYTicks   int
	stoppedTicks int
	maxStopRun   int
	distance     float64
	byTile       [tileTypeCount]int
}

func summarizeWalk(snaps []MoveSnapshot) walkSummary {
	var res walkSummary
	stopRun := 0
	for _, s := range snaps {
		if s.Wanted {
			res.wantedTicks++
		}
		if s.Moved > moveEpsilon {
			res.movingTicks++
		}
		if s.SlidX {
			res.slidXTicks++
		}
		if s.SlidY {
			res.slidYTicks++
		}
		if s.Stopped {
			res.stoppedTicks++
			stopRun++
			if stopRun > res.maxStopRun {
				res.maxStopRun = stopRun
			}
		} else {
			stopRun = 0
		}
		res.distance += s.Moved
		if s.Tile < tileTypeCount {
			res.byTile[s.Tile]++
		}
	}
	return res
}

// groundMix formats the top terrain shares, e.g. "grass 61% dirt 30% shore 9%".
func groundMix(byTile [tileTypeCount]int, total int) string {
	if total == 0 {
		return "none"
	}
	type share struct {
		t TileType
		n int
	}
	var shares []share
	for t := TileType(0); t < tileTypeCount; t++ {
		if byTile[t] > 0 {
			shares = append(shares, share{t, byTile[t]})
		}
	}
	sort.Slice(shares, func(i, j int) bool {
		if shares[i].n != shares[j].n {
			return shares[i].n > shares[j].n
		}
		return shares[i].t < shares[j].t
	})
	if len(shares) > 3 {
		shares = shares[:3]
	}
	parts := make([]string, 0, len(shares))
	for _, s := range shares {
		parts = append(parts, fmt.Sprintf("%s %d%%", s.t, s.n*100/total))
	}
	return strings.Join(parts, " ")
}

type walkStage struct {
	startIdx      int
	endIdx        int
	startTick     int
	endTick       int
	count         int
	first         MoveSnapshot
	last          MoveSnapshot
	movedDistance float64
	onlyStopped   bool
}

func buildWalkStages(snaps []MoveSnapshot) []walkStage {
	if len(snaps) == 0 {
		return nil
	}
	// Per-tick distance is banded so ordinary speed jitter does not split stages.
	keyOf := func(s MoveSnapshot) string {
		mvBand := 0
		switch {
		case s.Moved > 2.5:
			mvBand = 3
		case s.Moved > 1.0:
			mvBand = 2
		case s.Moved > moveEpsilon:
			mvBand = 1
		}
		return fmt.Sprintf("t=%d|w=%t|sx=%t|sy=%t|stop=%t|mv=%d",
			s.Tile, s.Wanted, s.SlidX, s.SlidY, s.Stopped, mvBand)
	}

	stages := make([]walkStage, 0, 16)
	start := 0
	curKey := keyOf(snaps[0])
	for i := 1; i < len(snaps); i++ {
		k := keyOf(snaps[i])
		if k == curKey {
			continue
		}
		stages = append(stages, makeWalkStage(snaps, start, i-1))
		start = i
		curKey = k
	}
	stages = append(stages, makeWalkStage(snaps, start, len(snaps)-1))
	return stages
}

func makeWalkStage(snaps []MoveSnapshot, start, end int) walkStage {
	first := snaps[start]
	last := snaps[end]
	moved := math.Hypot(last.X-first.X, last.Y-first.Y)
	allStopped := true
	for i := start; i <= end; i++ {
		if !snaps[i].Stopped {
			allStopped = false
			break
		}
	}
	return walkStage{
		startIdx:      start,
		endIdx:        end,
		startTick:     first.Tick,
		endTick:       last.Tick,
		count:         end - start + 1,
		first:         first,
		last:          last,
		movedDistance: moved,
		onlyStopped:   allStopped,
	}
}

func walkEvents(snaps []MoveSnapshot) []string {
	if len(snaps) == 0 {
		return nil
	}
	var out []string
	prev := snaps[0]
	for i := 1; i < len(snaps); i++ {
		cur := snaps[i]
		if cur.Tile != prev.Tile {
			out = append(out, fmt.Sprintf("T=%d ground %s -> %s", cur.Tick, prev.Tile, cur.Tile))
		}
		if cur.Stopped != prev.Stopped {
			if cur.Stopped {
				out = append(out, fmt.Sprintf("T=%d pinned at (%.0f,%.0f)", cur.Tick, cur.X, cur.Y))
			} else {
				out = append(out, fmt.Sprintf("T=%d freed", cur.Tick))
			}
		}
		if (cur.SlidX || cur.SlidY) != (prev.SlidX || prev.SlidY) {
			if cur.SlidX || cur.SlidY {
				axis := "y"
				if cur.SlidX {
					axis = "x"
				}
				out = append(out, fmt.Sprintf("T=%d slide start axis=%s", cur.Tick, axis))
			} else {
				out = append(out, fmt.Sprintf("T=%d slide end", cur.Tick))
			}
		}
		if cur.Wanted != prev.Wanted {
			if cur.Wanted {
				out = append(out, fmt.Sprintf("T=%d input on", cur.Tick))
			} else {
				out = append(out, fmt.Sprintf("T=%d input off", cur.Tick))
			}
		}
		prev = cur
	}
	if len(out) > 24 {
		out = append(out[:24], fmt.Sprintf("... (%d more events)", len(out)-24))
	}
	return out
}

// copyWalkReport puts the current walk report on the system clipboard and
// echoes it to stdout so it survives clipboard failures.
func (g *Game) copyWalkReport() {
	report := g.walkReport(240)
	fmt.Println(report)
	if err := clipboard.WriteAll(report); err != nil {
		g.noticeText = "report printed (clipboard unavailable)"
	} else {
		g.noticeText = "walk report copied to clipboard"
	}
	g.noticeTicks = 180
}
