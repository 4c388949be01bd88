package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/alembic/engine"
)

// Scene colors, matching the original palette.
var (
	sandboxColor = rl.NewColor(243, 124, 84, 255)
	trashColor   = rl.NewColor(90, 90, 90, 255)
)

// Scene renders the sandbox surface: live tokens, the disposal target,
// and the invalid-combination marker. It consumes engine snapshots only.
type Scene struct {
	textures  *TextureStore
	tokenSize float32
	disposal  engine.Rect
}

// NewScene creates a scene renderer.
func NewScene(textures *TextureStore, tokenSize float32, disposal engine.Rect) *Scene {
	return &Scene{textures: textures, tokenSize: tokenSize, disposal: disposal}
}

// Draw renders one frame of the sandbox from a snapshot. The dragged
// token is drawn last so it stays on top.
func (s *Scene) Draw(snap engine.Snapshot, width, height int32, sidebarWidth int32) {
	rl.DrawRectangle(0, 0, width-sidebarWidth, height, sandboxColor)

	var dragged *engine.InstanceView
	for i := range snap.Instances {
		inst := &snap.Instances[i]
		if inst.Dragging {
			dragged = inst
			continue
		}
		s.drawToken(inst)
	}

	s.drawTrash()

	if dragged != nil {
		s.drawToken(dragged)
	}

	if snap.Marker != nil {
		s.drawMarker(snap.Marker)
	}
}

func (s *Scene) drawToken(inst *engine.InstanceView) {
	tex := s.textures.Get(inst.ElementID)
	tint := rl.White
	if inst.Hint {
		// Semi-transparent after a failed combination, reset next frame.
		tint = rl.NewColor(255, 255, 255, 128)
	}
	src := rl.Rectangle{X: 0, Y: 0, Width: float32(tex.Width), Height: float32(tex.Height)}
	dst := rl.Rectangle{X: inst.X, Y: inst.Y, Width: s.tokenSize, Height: s.tokenSize}
	rl.DrawTexturePro(tex, src, dst, rl.Vector2{}, 0, tint)
}

func (s *Scene) drawTrash() {
	d := s.disposal
	rl.DrawRectangle(int32(d.X), int32(d.Y), int32(d.W), int32(d.H), trashColor)
	rl.DrawRectangleLines(int32(d.X), int32(d.Y), int32(d.W), int32(d.H), rl.Black)
	rl.DrawText("TRASH", int32(d.X)+6, int32(d.Y+d.H/2)-8, 14, rl.RayWhite)
}

// drawMarker draws the red X shown for an invalid combination, fading
// with remaining lifetime.
func (s *Scene) drawMarker(m *engine.MarkerView) {
	const arm = 12.0
	alpha := uint8(255)
	if m.Remaining < 0.5 {
		alpha = uint8(255 * (m.Remaining / 0.5))
	}
	c := rl.NewColor(220, 30, 30, alpha)
	center := rl.Vector2{X: m.X + s.tokenSize/2, Y: m.Y + s.tokenSize/2}
	rl.DrawLineEx(rl.Vector2{X: center.X - arm, Y: center.Y - arm},
		rl.Vector2{X: center.X + arm, Y: center.Y + arm}, 4, c)
	rl.DrawLineEx(rl.Vector2{X: center.X - arm, Y: center.Y + arm},
		rl.Vector2{X: center.X + arm, Y: center.Y - arm}, 4, c)
}
