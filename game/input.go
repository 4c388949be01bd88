package game

import (
	"errors"
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/alembic/engine"
	"github.com/pthm-cable/alembic/ui"
)

// collectEvents translates raylib input into engine events for this
// frame. UI surfaces get first claim on the pointer: an open book
// captures everything, the sidebar consumes wheel and clicks over its
// column, and the book icon swallows the press that opens it.
func (g *Game) collectEvents(now float64) []engine.Event {
	if g.headless {
		return nil
	}
	if g.book.IsOpen() {
		// The book panel handles its own input in Draw.
		return nil
	}

	mouse := rl.GetMousePosition()
	screenW := int32(g.cfg.Screen.Width)
	screenH := int32(g.cfg.Screen.Height)

	if wheel := rl.GetMouseWheelMove(); wheel != 0 && g.sidebar.Contains(mouse, screenW) {
		g.sidebar.HandleWheel(wheel, len(g.eng.Catalog().DiscoveredIDs()), screenH)
		return nil
	}

	var events []engine.Event

	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		switch {
		case g.sidebar.Contains(mouse, screenW):
			if id, ok := g.sidebar.HitTest(mouse, g.eng.Catalog().DiscoveredIDs(), screenW, screenH); ok {
				if err := g.eng.Spawn(id, now); err != nil && !errors.Is(err, engine.ErrCapacity) {
					slog.Error("palette spawn", "element", id, "error", err)
				}
			}
		case rl.CheckCollisionPointRec(mouse, ui.IconBounds()):
			// Book icon press is handled by the button in Draw.
		default:
			events = append(events, engine.Event{Kind: engine.EventPress, Pos: engine.Vec2{X: mouse.X, Y: mouse.Y}})
		}
	}

	if rl.IsMouseButtonDown(rl.MouseButtonLeft) {
		events = append(events, engine.Event{Kind: engine.EventMove, Pos: engine.Vec2{X: mouse.X, Y: mouse.Y}})
	}

	if rl.IsMouseButtonReleased(rl.MouseButtonLeft) {
		events = append(events, engine.Event{Kind: engine.EventRelease, Pos: engine.Vec2{X: mouse.X, Y: mouse.Y}})
	}

	return events
}
