// Package ui renders the sandbox panels: the palette sidebar and the
// element book. Panels consume engine snapshots and own their scroll
// state; they never hold combination logic.
package ui

import rl "github.com/gen2brain/raylib-go/raylib"

// Theme holds shared panel styling.
type Theme struct {
	Padding    int32
	LineHeight int32
	FontSize   int32
	HeaderSize int32

	PanelBg     rl.Color
	PanelBorder rl.Color
	SidebarBg   rl.Color
	ListBg      rl.Color
	LabelColor  rl.Color
	ValueColor  rl.Color
	Muted       rl.Color
}

// DefaultTheme returns the default theme, matching the original palette.
func DefaultTheme() Theme {
	return Theme{
		Padding:    10,
		LineHeight: 30,
		FontSize:   20,
		HeaderSize: 22,

		PanelBg:     rl.NewColor(217, 234, 242, 255),
		PanelBorder: rl.Black,
		SidebarBg:   rl.NewColor(255, 194, 77, 255),
		ListBg:      rl.NewColor(251, 251, 251, 255),
		LabelColor:  rl.Black,
		ValueColor:  rl.DarkGray,
		Muted:       rl.Gray,
	}
}
