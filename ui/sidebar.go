package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/alembic/engine"
	"github.com/pthm-cable/alembic/renderer"
)

// Sidebar is the right-hand palette listing discovered elements in
// catalog order. Clicking an entry spawns a token; the wheel scrolls the
// list when the pointer is over it.
type Sidebar struct {
	theme  Theme
	width  int32
	scroll float32
	speed  float32
}

// NewSidebar creates the palette sidebar.
func NewSidebar(width int32, scrollSpeed float32) *Sidebar {
	return &Sidebar{theme: DefaultTheme(), width: width, speed: scrollSpeed}
}

// Contains reports whether a point lies inside the sidebar column.
func (s *Sidebar) Contains(pos rl.Vector2, screenW int32) bool {
	return pos.X > float32(screenW-s.width)
}

// HandleWheel scrolls the list, clamped to content height.
func (s *Sidebar) HandleWheel(wheel float32, entries int, screenH int32) {
	if wheel == 0 {
		return
	}
	s.scroll -= wheel * s.speed
	maxScroll := float32(entries)*float32(s.theme.LineHeight) - float32(screenH) + 50
	if maxScroll < 0 {
		maxScroll = 0
	}
	if s.scroll < 0 {
		s.scroll = 0
	}
	if s.scroll > maxScroll {
		s.scroll = maxScroll
	}
}

// HitTest resolves a press position to a palette element id. Follows the
// palette's own listing: discovered elements in catalog order.
func (s *Sidebar) HitTest(pos rl.Vector2, discovered []string, screenW, screenH int32) (string, bool) {
	if !s.Contains(pos, screenW) {
		return "", false
	}
	x := float32(screenW - s.width + 5)
	for i, id := range discovered {
		y := float32(s.theme.Padding) + float32(i)*float32(s.theme.LineHeight) - s.scroll
		if y < -float32(s.theme.LineHeight) || y > float32(screenH) {
			continue
		}
		row := rl.Rectangle{X: x, Y: y, Width: float32(s.width - 10), Height: float32(s.theme.LineHeight)}
		if rl.CheckCollisionPointRec(pos, row) {
			return id, true
		}
	}
	return "", false
}

// Draw renders the sidebar from a snapshot.
func (s *Sidebar) Draw(snap engine.Snapshot, textures *renderer.TextureStore, screenW, screenH int32) {
	x := screenW - s.width
	rl.DrawRectangle(x, 0, s.width, screenH, s.theme.SidebarBg)

	for i, entry := range snap.Palette {
		y := float32(s.theme.Padding) + float32(i)*float32(s.theme.LineHeight) - s.scroll
		if y < -float32(s.theme.LineHeight) || y > float32(screenH) {
			continue
		}
		tex := textures.Get(entry.ID)
		src := rl.Rectangle{X: 0, Y: 0, Width: float32(tex.Width), Height: float32(tex.Height)}
		dst := rl.Rectangle{X: float32(x + 5), Y: y, Width: 20, Height: 20}
		rl.DrawTexturePro(tex, src, dst, rl.Vector2{}, 0, rl.White)
		rl.DrawText(entry.ID, x+30, int32(y), s.theme.FontSize, s.theme.LabelColor)
	}
}
