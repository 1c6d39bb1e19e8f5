package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	feedPanelWidth = 260
	feedMaxEntries = 40
	feedLineHeight = 14
)

// FeedEntry is a single line in the event feed.
type FeedEntry struct {
	Tick    int
	Side    Side
	Message string
}

// EventFeed is a ring buffer of notable match events rendered beside the
// court.
type EventFeed struct {
	entries []FeedEntry
	head    int
	count   int
}

// NewEventFeed creates a feed with a fixed capacity.
func NewEventFeed() *EventFeed {
	return &EventFeed{
		entries: make([]FeedEntry, feedMaxEntries),
	}
}

// Add appends an entry to the feed.
func (f *EventFeed) Add(tick int, side Side, msg string) {
	f.entries[f.head] = FeedEntry{
		Tick:    tick,
		Side:    side,
		Message: msg,
	}
	f.head = (f.head + 1) % feedMaxEntries
	if f.count < feedMaxEntries {
		f.count++
	}
}

// AddEvents records the events worth showing: hits, points and the result.
// Wall bounces, tones and bursts are too frequent to be useful here.
func (f *EventFeed) AddEvents(events []Event) {
	for _, e := range events {
		switch e.Kind {
		case EventPaddleHit, EventPoint, EventGameOver:
			f.Add(e.Tick, e.Side, e.String())
		}
	}
}

// Recent returns entries in chronological order (oldest first).
func (f *EventFeed) Recent() []FeedEntry {
	result := make([]FeedEntry, f.count)
	for i := 0; i < f.count; i++ {
		idx := (f.head - f.count + i + feedMaxEntries) % feedMaxEntries
		result[i] = f.entries[idx]
	}
	return result
}

// Draw renders the feed panel at panelX.
func (f *EventFeed) Draw(screen *ebiten.Image, panelX int, panelH int) {
	// Panel background.
	vector.FillRect(screen, float32(panelX), 0, float32(feedPanelWidth), float32(panelH), color.RGBA{R: 58, G: 36, B: 16, A: 248}, false)
	// Left separator line.
	vector.StrokeLine(screen, float32(panelX), 0, float32(panelX), float32(panelH), 1.0, color.RGBA{R: 139, G: 69, B: 19, A: 255}, false)

	// Title bar.
	vector.FillRect(screen, float32(panelX), 0, float32(feedPanelWidth), 16, color.RGBA{R: 90, G: 54, B: 22, A: 255}, false)
	ebitenutil.DebugPrintAt(screen, "MATCH FEED", panelX+8, 0)

	entries := f.Recent()

	// Newest at the bottom; drop the oldest when the panel is full.
	maxVisible := (panelH - 24) / feedLineHeight
	startIdx := 0
	if len(entries) > maxVisible {
		startIdx = len(entries) - maxVisible
	}
	visible := entries[startIdx:]
	recent := 3

	y := 20
	for i, e := range visible {
		if i >= len(visible)-recent {
			vector.FillRect(screen, float32(panelX+2), float32(y), float32(feedPanelWidth-4), float32(feedLineHeight), color.RGBA{R: 110, G: 70, B: 30, A: 160}, false)
		}

		// Side colour marker.
		var dotCol color.RGBA
		switch e.Side {
		case SidePlayer:
			dotCol = playerFootColor
		case SideOpponent:
			dotCol = opponentFootColor
		default:
			dotCol = color.RGBA{R: 200, G: 200, B: 200, A: 255}
		}
		vector.FillRect(screen, float32(panelX+5), float32(y+4), 3, 6, dotCol, false)

		line := fmt.Sprintf("%5d %s", e.Tick, e.Message)
		ebitenutil.DebugPrintAt(screen, line, panelX+12, y-1)
		y += feedLineHeight
	}
}
