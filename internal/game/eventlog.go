package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	logPanelWidth = 300
	logMaxEntries = 200
	logLineHeight = 11
)

// EventKind tags a log entry with the subsystem that produced it.
type EventKind uint8

const (
	EventBuild  EventKind = iota // map builder milestones
	EventMove                    // blocked / sliding movement
	EventPickup                  // item collected
	EventFog                     // exploration milestones
	eventKindCount               // sentinel
)

func (k EventKind) String() string {
	switch k {
	case EventBuild:
		return "build"
	case EventMove:
		return "move"
	case EventPickup:
		return "pickup"
	case EventFog:
		return "fog"
	default:
		return "unknown"
	}
}

// eventKindColour is the indicator dot colour in the log panel.
func eventKindColour(k EventKind) color.RGBA {
	switch k {
	case EventBuild:
		return color.RGBA{R: 90, G: 190, B: 90, A: 255}
	case EventMove:
		return color.RGBA{R: 110, G: 130, B: 190, A: 255}
	case EventPickup:
		return color.RGBA{R: 210, G: 190, B: 80, A: 255}
	case EventFog:
		return color.RGBA{R: 160, G: 110, B: 200, A: 255}
	default:
		return color.RGBA{R: 140, G: 140, B: 140, A: 255}
	}
}

// EventEntry is one tick-stamped line in the island event log.
type EventEntry struct {
	Tick    int
	Kind    EventKind
	Message string
}

// String formats the entry as a fixed-width log line.
//
//	[T=042] pickup  plant x3 at (12, 30)
func (e EventEntry) String() string {
	return fmt.Sprintf("[T=%03d] %-7s %s", e.Tick, e.Kind, e.Message)
}

// EventLog is a bounded ring of notable events. The game renders it as the
// right-hand panel; the debug report and the walk-report binary embed its
// tail.
type EventLog struct {
	entries []EventEntry
	head    int
	count   int
}

// NewEventLog creates an event log with a fixed capacity.
func NewEventLog() *EventLog {
	return &EventLog{entries: make([]EventEntry, logMaxEntries)}
}

// Logf appends a formatted entry, evicting the oldest once full.
func (el *EventLog) Logf(tick int, kind EventKind, format string, args ...any) {
	el.entries[el.head] = EventEntry{
		Tick:    tick,
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
	}
	el.head = (el.head + 1) % logMaxEntries
	if el.count < logMaxEntries {
		el.count++
	}
}

// Recent returns retained entries in chronological order, oldest first.
func (el *EventLog) Recent() []EventEntry {
	result := make([]EventEntry, el.count)
	for i := 0; i < el.count; i++ {
		idx := (el.head - el.count + i + logMaxEntries) % logMaxEntries
		result[i] = el.entries[idx]
	}
	return result
}

// Filter returns retained entries of one kind, oldest first.
func (el *EventLog) Filter(kind EventKind) []EventEntry {
	var out []EventEntry
	for _, e := range el.Recent() {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}

// Tail returns up to n of the newest entries, oldest first.
func (el *EventLog) Tail(n int) []EventEntry {
	all := el.Recent()
	if len(all) > n {
		all = all[len(all)-n:]
	}
	return all
}

// Draw renders the event log panel on the right side of the screen.
func (el *EventLog) Draw(screen *ebiten.Image, panelX int, panelH int) {
	vector.FillRect(screen, float32(panelX), 0, float32(logPanelWidth), float32(panelH), color.RGBA{R: 10, G: 12, B: 14, A: 248}, false)
	vector.StrokeLine(screen, float32(panelX), 0, float32(panelX), float32(panelH), 1.0, color.RGBA{R: 50, G: 60, B: 70, A: 255}, false)

	vector.FillRect(screen, float32(panelX), 0, float32(logPanelWidth), 16, color.RGBA{R: 18, G: 24, B: 30, A: 255}, false)
	ebitenutil.DebugPrintAt(screen, "ISLAND LOG", panelX+8, 2)
	vector.StrokeLine(screen, float32(panelX), 16, float32(panelX+logPanelWidth), 16, 1.0, color.RGBA{R: 50, G: 70, B: 90, A: 200}, false)

	entries := el.Recent()

	// Bottom-up so the newest line sits at the bottom.
	maxVisible := (panelH - 24) / logLineHeight
	startIdx := 0
	if len(entries) > maxVisible {
		startIdx = len(entries) - maxVisible
	}

	visible := entries[startIdx:]
	recent := 3 // latest entries get a highlight row

	y := 20
	for i, e := range visible {
		isRecent := i >= len(visible)-recent
		if isRecent {
			vector.FillRect(screen, float32(panelX+2), float32(y), float32(logPanelWidth-4), float32(logLineHeight), color.RGBA{R: 26, G: 34, B: 42, A: 160}, false)
		}

		vector.FillRect(screen, float32(panelX+5), float32(y+3), 3, 5, eventKindColour(e.Kind), false)

		line := fmt.Sprintf("%4d %s", e.Tick, e.Message)
		ebitenutil.DebugPrintAt(screen, line, panelX+12, y)
		y += logLineHeight
	}
}
