// Package renderer draws the sandbox scene from engine snapshots. It owns
// all raylib texture handles; the engine never touches GPU state.
package renderer

import (
	"log/slog"
	"path/filepath"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// fallbackSize is the generated placeholder texture edge length.
const fallbackSize = 50

// TextureStore maps element ids to loaded textures. Missing asset files
// fall back to generated solid squares so the game stays playable.
type TextureStore struct {
	textures map[string]rl.Texture2D
}

// LoadTextures loads one texture per element id from dir, expecting
// <dir>/<lowercase id>.png. Requires an open raylib window.
func LoadTextures(ids []string, dir string) *TextureStore {
	ts := &TextureStore{textures: make(map[string]rl.Texture2D, len(ids))}
	for _, id := range ids {
		path := filepath.Join(dir, strings.ToLower(id)+".png")
		tex := rl.LoadTexture(path)
		if tex.ID == 0 {
			slog.Warn("texture missing, using fallback", "element", id, "path", path)
			tex = fallbackTexture(rl.Magenta)
		}
		ts.textures[id] = tex
	}
	return ts
}

// Get returns the texture for an element id. Unknown ids get a one-off
// fallback so a bad id is visible rather than fatal.
func (ts *TextureStore) Get(id string) rl.Texture2D {
	tex, ok := ts.textures[id]
	if !ok {
		tex = fallbackTexture(rl.Magenta)
		ts.textures[id] = tex
	}
	return tex
}

// Unload releases all GPU textures.
func (ts *TextureStore) Unload() {
	for id, tex := range ts.textures {
		rl.UnloadTexture(tex)
		delete(ts.textures, id)
	}
}

func fallbackTexture(c rl.Color) rl.Texture2D {
	img := rl.GenImageColor(fallbackSize, fallbackSize, c)
	tex := rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)
	return tex
}
