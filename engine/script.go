package engine

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/gocarina/gocsv"
)

// ScriptEvent is one row of a recorded input script. Scripts replay a
// session headlessly: rows are grouped by frame and fed through Advance
// in order. Spawn rows use the element column instead of coordinates.
type ScriptEvent struct {
	Frame   int     `csv:"frame"`
	Kind    string  `csv:"kind"` // press, move, release, scroll, spawn
	X       float32 `csv:"x"`
	Y       float32 `csv:"y"`
	Delta   float32 `csv:"delta"`
	Element string  `csv:"element"`
}

// LoadScript reads an event script from a CSV file.
func LoadScript(path string) ([]ScriptEvent, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening script: %w", err)
	}
	defer f.Close()

	var events []ScriptEvent
	if err := gocsv.UnmarshalFile(f, &events); err != nil {
		return nil, fmt.Errorf("parsing script %s: %w", path, err)
	}
	return events, nil
}

// Replay feeds a script through the engine frame by frame. dt is the
// synthetic seconds per frame; the clock starts at zero. onFrame, if
// non-nil, runs after each frame's Advance. Returns the number of
// frames advanced.
func (e *Engine) Replay(script []ScriptEvent, dt float64, onFrame func(frame int, now float64)) (int, error) {
	if len(script) == 0 {
		return 0, nil
	}

	rows := make([]ScriptEvent, len(script))
	copy(rows, script)
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Frame < rows[j].Frame })

	if rows[0].Frame < 0 {
		return 0, fmt.Errorf("replay: negative frame %d", rows[0].Frame)
	}
	lastFrame := rows[len(rows)-1].Frame
	script = rows

	idx := 0
	for frame := 0; frame <= lastFrame; frame++ {
		now := float64(frame) * dt
		var events []Event
		for idx < len(script) && script[idx].Frame == frame {
			row := script[idx]
			idx++
			switch row.Kind {
			case "press":
				events = append(events, Event{Kind: EventPress, Pos: Vec2{X: row.X, Y: row.Y}})
			case "move":
				events = append(events, Event{Kind: EventMove, Pos: Vec2{X: row.X, Y: row.Y}})
			case "release":
				events = append(events, Event{Kind: EventRelease, Pos: Vec2{X: row.X, Y: row.Y}})
			case "scroll":
				events = append(events, Event{Kind: EventScroll, Pos: Vec2{X: row.X, Y: row.Y}, Delta: row.Delta})
			case "spawn":
				// Spawns apply immediately, before this frame's pointer
				// events. A full pool drops the spawn, same as the palette.
				if err := e.Spawn(row.Element, now); err != nil && !errors.Is(err, ErrCapacity) {
					return frame, fmt.Errorf("replay frame %d: %w", frame, err)
				}
			default:
				return frame, fmt.Errorf("replay frame %d: unknown event kind %q", frame, row.Kind)
			}
		}
		e.Advance(now, events)
		if onFrame != nil {
			onFrame(frame, now)
		}
	}
	return lastFrame + 1, nil
}
