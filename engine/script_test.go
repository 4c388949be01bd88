package engine

import (
	"os"
	"path/filepath"
	"testing"
)

// TestLoadScript verifies CSV parsing of recorded input scripts.
func TestLoadScript(t *testing.T) {
	path := filepath.Join(t.TempDir(), "script.csv")
	csv := "frame,kind,x,y,delta,element\n" +
		"0,spawn,0,0,0,Fire\n" +
		"1,press,410,310,0,\n" +
		"2,move,120,120,0,\n" +
		"2,release,120,120,0,\n"
	if err := os.WriteFile(path, []byte(csv), 0o644); err != nil {
		t.Fatal(err)
	}

	events, err := LoadScript(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(events) != 4 {
		t.Fatalf("len = %d, want 4", len(events))
	}
	if events[0].Kind != "spawn" || events[0].Element != "Fire" {
		t.Errorf("events[0] = %+v, want spawn Fire", events[0])
	}
	if events[1].Frame != 1 || events[1].X != 410 {
		t.Errorf("events[1] = %+v, want frame 1 press at x=410", events[1])
	}

	if _, err := LoadScript(filepath.Join(t.TempDir(), "missing.csv")); err == nil {
		t.Error("LoadScript on a missing file succeeded")
	}
}

// TestReplay verifies a scripted session drives the full combination path.
func TestReplay(t *testing.T) {
	eng, rec := testEngine(t, 10)

	// Spawn two tokens, drag the second onto the first. Both spawn at
	// (400,300); the drag grabs whichever is first in canonical order and
	// drops it far away first so the pair is separated, then combines.
	script := []ScriptEvent{
		{Frame: 0, Kind: "spawn", Element: "Fire"},
		{Frame: 1, Kind: "press", X: 410, Y: 310},
		{Frame: 2, Kind: "move", X: 120, Y: 120},
		{Frame: 3, Kind: "release", X: 120, Y: 120},
		{Frame: 4, Kind: "spawn", Element: "Water"},
		{Frame: 5, Kind: "press", X: 410, Y: 310},
		{Frame: 6, Kind: "move", X: 130, Y: 130},
		{Frame: 7, Kind: "release", X: 130, Y: 130},
	}

	var framesSeen int
	frames, err := eng.Replay(script, 1.0/60.0, func(frame int, now float64) {
		framesSeen++
	})
	if err != nil {
		t.Fatal(err)
	}
	if frames != 8 || framesSeen != 8 {
		t.Errorf("frames = %d (callback %d), want 8", frames, framesSeen)
	}

	if len(rec.combined) != 1 || rec.combined[0].Result != "Steam" {
		t.Fatalf("combined = %+v, want one Fire+Water->Steam", rec.combined)
	}
	if eng.Pool().Size() != 1 {
		t.Errorf("Size() = %d, want 1", eng.Pool().Size())
	}
	steam, _ := eng.Catalog().Lookup("Steam")
	if !steam.Discovered {
		t.Error("Steam not discovered after replay")
	}
}

// TestReplayOutOfOrder verifies rows are grouped by frame regardless of
// their order in the file.
func TestReplayOutOfOrder(t *testing.T) {
	eng, rec := testEngine(t, 10)

	script := []ScriptEvent{
		{Frame: 2, Kind: "press", X: 410, Y: 310},
		{Frame: 0, Kind: "spawn", Element: "Fire"},
		{Frame: 3, Kind: "release", X: 410, Y: 310},
	}
	if _, err := eng.Replay(script, 1.0/60.0, nil); err != nil {
		t.Fatal(err)
	}
	if len(rec.spawned) != 1 {
		t.Errorf("spawned = %v, want one Fire", rec.spawned)
	}
}

func TestReplayErrors(t *testing.T) {
	tests := []struct {
		name   string
		script []ScriptEvent
	}{
		{
			name:   "unknown kind",
			script: []ScriptEvent{{Frame: 0, Kind: "teleport"}},
		},
		{
			name:   "negative frame",
			script: []ScriptEvent{{Frame: -1, Kind: "press"}},
		},
		{
			name:   "unknown spawn element",
			script: []ScriptEvent{{Frame: 0, Kind: "spawn", Element: "Lava"}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eng, _ := testEngine(t, 10)
			if _, err := eng.Replay(tt.script, 1.0/60.0, nil); err == nil {
				t.Error("Replay succeeded, want error")
			}
		})
	}
}

// TestReplayCapacityDrop verifies over-capacity spawns are dropped rather
// than aborting the replay, same as palette clicks on a full pool.
func TestReplayCapacityDrop(t *testing.T) {
	eng, _ := testEngine(t, 2)

	script := []ScriptEvent{
		{Frame: 0, Kind: "spawn", Element: "Fire"},
		{Frame: 1, Kind: "spawn", Element: "Water"},
		{Frame: 2, Kind: "spawn", Element: "Earth"},
	}
	if _, err := eng.Replay(script, 1.0/60.0, nil); err != nil {
		t.Fatalf("Replay error = %v, want capacity drop to pass", err)
	}
	if eng.Pool().Size() != 2 {
		t.Errorf("Size() = %d, want 2", eng.Pool().Size())
	}
}
