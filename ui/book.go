package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/alembic/engine"
	"github.com/pthm-cable/alembic/renderer"
)

// Book panel geometry, matching the original layout.
const (
	bookIconX, bookIconY = 10, 10
	bookIconSize         = 64

	bookX, bookY = 100, 100
	bookListW    = 100
	bookMainW    = 500
	bookH        = 400

	closeSize = 32
)

// Book is the element encyclopedia: a scrollable list of all catalog
// entries (undiscovered ones shown as "???") with a detail pane. While
// open it captures all pointer input, so the sandbox sees none.
type Book struct {
	theme    Theme
	open     bool
	selected int
	scroll   float32
	speed    float32
	rowH     float32

	// FormulaFor resolves a result element to its display formula.
	FormulaFor func(id string) (string, bool)
}

// NewBook creates a closed book panel.
func NewBook(scrollSpeed, rowHeight float32, formulaFor func(string) (string, bool)) *Book {
	return &Book{
		theme:      DefaultTheme(),
		selected:   -1,
		speed:      scrollSpeed,
		rowH:       rowHeight,
		FormulaFor: formulaFor,
	}
}

// IconBounds returns the book icon's screen rectangle, used to keep icon
// clicks from reaching the sandbox underneath.
func IconBounds() rl.Rectangle {
	return rl.Rectangle{X: bookIconX, Y: bookIconY, Width: bookIconSize, Height: bookIconSize}
}

// IsOpen reports whether the book currently captures input.
func (b *Book) IsOpen() bool {
	return b.open
}

// Toggle flips the open state and clears the selection.
func (b *Book) Toggle() {
	b.open = !b.open
	b.selected = -1
}

// Draw renders the book icon and, when open, the full panel. Input is
// handled immediate-mode alongside drawing (raygui style): icon and close
// button via gui.Button, rows and outside-click via direct hit tests.
func (b *Book) Draw(snap engine.Snapshot, textures *renderer.TextureStore) {
	if !b.open {
		if gui.Button(rl.Rectangle{X: bookIconX, Y: bookIconY, Width: bookIconSize, Height: bookIconSize}, "Book") {
			b.Toggle()
		}
		return
	}

	mouse := rl.GetMousePosition()
	panel := rl.Rectangle{X: bookX, Y: bookY, Width: bookListW + bookMainW, Height: bookH}

	// Click outside the panel closes the book.
	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) && !rl.CheckCollisionPointRec(mouse, panel) {
		b.Toggle()
		return
	}

	// Wheel scrolls the list when hovering it.
	list := rl.Rectangle{X: bookX, Y: bookY, Width: bookListW, Height: bookH}
	if wheel := rl.GetMouseWheelMove(); wheel != 0 && rl.CheckCollisionPointRec(mouse, list) {
		b.scroll -= wheel * b.speed
		maxScroll := float32(len(snap.Catalog))*b.rowH - bookH + 50
		if maxScroll < 0 {
			maxScroll = 0
		}
		if b.scroll < 0 {
			b.scroll = 0
		}
		if b.scroll > maxScroll {
			b.scroll = maxScroll
		}
	}

	rl.DrawRectangleRec(list, b.theme.ListBg)
	rl.DrawRectangle(bookX+bookListW, bookY, bookMainW, bookH, b.theme.PanelBg)

	if gui.Button(rl.Rectangle{
		X:     bookX + bookListW + bookMainW - closeSize,
		Y:     bookY,
		Width: closeSize, Height: closeSize,
	}, "X") {
		b.Toggle()
		return
	}

	b.drawList(snap, textures, mouse)
	b.drawDetail(snap, textures)
}

// drawList renders the scrollable element list and handles row clicks.
func (b *Book) drawList(snap engine.Snapshot, textures *renderer.TextureStore, mouse rl.Vector2) {
	pressed := rl.IsMouseButtonPressed(rl.MouseButtonLeft)
	for i, entry := range snap.Catalog {
		y := float32(bookY+10) + float32(i)*b.rowH - b.scroll
		if y < bookY || y > bookY+bookH-20 {
			continue
		}

		if entry.Discovered {
			tex := textures.Get(entry.ID)
			src := rl.Rectangle{X: 0, Y: 0, Width: float32(tex.Width), Height: float32(tex.Height)}
			dst := rl.Rectangle{X: bookX + 5, Y: y, Width: 20, Height: 20}
			rl.DrawTexturePro(tex, src, dst, rl.Vector2{}, 0, rl.White)
		} else {
			rl.DrawRectangle(bookX+5, int32(y), 20, 20, rl.White)
		}

		name, color := "???", b.theme.Muted
		if entry.Discovered {
			name, color = entry.ID, b.theme.LabelColor
		}
		rl.DrawText(name, bookX+30, int32(y), b.theme.FontSize, color)

		row := rl.Rectangle{X: bookX + 5, Y: y, Width: bookListW - 10, Height: b.rowH}
		if pressed && rl.CheckCollisionPointRec(mouse, row) {
			b.selected = i
		}
	}
}

// drawDetail renders the selected element's detail pane.
func (b *Book) drawDetail(snap engine.Snapshot, textures *renderer.TextureStore) {
	if b.selected < 0 || b.selected >= len(snap.Catalog) {
		rl.DrawText("Click on the icons to view element descriptions",
			bookX+bookListW+40, bookY+bookH/2, b.theme.HeaderSize, b.theme.Muted)
		return
	}

	entry := snap.Catalog[b.selected]

	// Large icon, centered in the detail pane.
	iconX := int32(bookX + bookListW + (bookMainW-200)/2)
	iconY := int32(bookY + 25)
	if entry.Discovered {
		tex := textures.Get(entry.ID)
		src := rl.Rectangle{X: 0, Y: 0, Width: float32(tex.Width), Height: float32(tex.Height)}
		dst := rl.Rectangle{X: float32(iconX), Y: float32(iconY), Width: 200, Height: 200}
		rl.DrawTexturePro(tex, src, dst, rl.Vector2{}, 0, rl.White)
	} else {
		rl.DrawRectangle(iconX, iconY, 200, 200, rl.White)
	}

	detailY := int32(bookY + 250)
	rl.DrawRectangleLines(bookX+bookListW+100, detailY, 300, 125, b.theme.PanelBorder)

	var lines string
	color := b.theme.ValueColor
	if entry.Discovered {
		formula := "Basic Element"
		if f, ok := b.FormulaFor(entry.ID); ok {
			formula = f
		}
		lines = fmt.Sprintf("Name: %s\nCreated: %d\nDescription: %s\nFormula: %s",
			entry.ID, entry.CreationCount, entry.Description, formula)
	} else {
		lines = "Name: ???\nCreated: ???\nDescription: ???\nFormula: ???"
		color = b.theme.Muted
	}
	rl.DrawText(lines, bookX+bookListW+125, detailY+20, 18, color)
}
