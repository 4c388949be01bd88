package engine

import (
	"testing"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/alembic/components"
)

func testPool(t *testing.T, maxLive int) *Pool {
	t.Helper()
	return NewPool(testCatalog(t), maxLive)
}

func poolIDs(p *Pool) []string {
	var ids []string
	p.Each(func(_ ecs.Entity, _ *components.Position, tok *components.Token) bool {
		ids = append(ids, tok.ElementID)
		return true
	})
	return ids
}

func TestPoolInsert(t *testing.T) {
	p := testPool(t, 3)

	e, evicted, err := p.Insert("Fire", Vec2{X: 10, Y: 20}, 1.0)
	if err != nil {
		t.Fatal(err)
	}
	if evicted != 0 {
		t.Errorf("evicted = %d, want 0", evicted)
	}
	if !p.Alive(e) {
		t.Error("inserted handle not alive")
	}
	if pos := p.Position(e); pos == nil || pos.X != 10 || pos.Y != 20 {
		t.Errorf("Position = %+v, want {10 20}", pos)
	}
	if tok := p.Token(e); tok == nil || tok.ElementID != "Fire" || tok.CreatedAt != 1.0 {
		t.Errorf("Token = %+v, want Fire@1.0", tok)
	}

	if _, _, err := p.Insert("Lava", Vec2{}, 2.0); err == nil {
		t.Error("Insert of unknown element succeeded")
	}
}

// TestPoolEviction verifies full pools evict the oldest instance, never the
// incoming one.
func TestPoolEviction(t *testing.T) {
	p := testPool(t, 3)

	a, _, _ := p.Insert("Fire", Vec2{}, 1.0)
	b, _, _ := p.Insert("Water", Vec2{}, 2.0)
	c, _, _ := p.Insert("Earth", Vec2{}, 3.0)

	d, evicted, err := p.Insert("Fire", Vec2{}, 4.0)
	if err != nil {
		t.Fatal(err)
	}
	if evicted != 1 {
		t.Errorf("evicted = %d, want 1", evicted)
	}
	if p.Alive(a) {
		t.Error("oldest instance survived eviction")
	}
	for _, e := range []ecs.Entity{b, c, d} {
		if !p.Alive(e) {
			t.Error("non-oldest instance evicted")
		}
	}
	if p.Size() != 3 {
		t.Errorf("Size() = %d, want 3", p.Size())
	}
}

// TestPoolOldest verifies the eviction victim is picked by creation time,
// not insertion position.
func TestPoolOldest(t *testing.T) {
	p := testPool(t, 5)

	if _, ok := p.Oldest(); ok {
		t.Error("Oldest() on empty pool reported a handle")
	}

	p.Insert("Fire", Vec2{}, 5.0)
	old, _, _ := p.Insert("Water", Vec2{}, 1.0)
	p.Insert("Earth", Vec2{}, 3.0)

	got, ok := p.Oldest()
	if !ok || got != old {
		t.Errorf("Oldest() = %v, %v, want the Water instance", got, ok)
	}
}

// TestPoolRemoveIdempotent verifies stale handles are safe no-ops.
func TestPoolRemoveIdempotent(t *testing.T) {
	p := testPool(t, 3)
	e, _, _ := p.Insert("Fire", Vec2{}, 1.0)

	p.Remove(e)
	if p.Alive(e) {
		t.Error("handle alive after Remove")
	}
	if p.Size() != 0 {
		t.Errorf("Size() = %d, want 0", p.Size())
	}

	p.Remove(e) // second removal must not panic or disturb the pool
	if p.Size() != 0 {
		t.Errorf("Size() after double Remove = %d, want 0", p.Size())
	}

	if p.Position(e) != nil || p.Token(e) != nil {
		t.Error("component access on dead handle returned non-nil")
	}
}

// TestPoolOrder verifies Each walks insertion order and Remove preserves the
// relative order of survivors.
func TestPoolOrder(t *testing.T) {
	p := testPool(t, 5)
	p.Insert("Fire", Vec2{}, 1.0)
	w, _, _ := p.Insert("Water", Vec2{}, 2.0)
	p.Insert("Earth", Vec2{}, 3.0)

	want := []string{"Fire", "Water", "Earth"}
	got := poolIDs(p)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}

	p.Remove(w)
	want = []string{"Fire", "Earth"}
	got = poolIDs(p)
	if len(got) != len(want) {
		t.Fatalf("order after remove = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("order after remove = %v, want %v", got, want)
		}
	}
}

func TestPoolClearHints(t *testing.T) {
	p := testPool(t, 3)
	e, _, _ := p.Insert("Fire", Vec2{}, 1.0)
	p.Token(e).Hint = true

	p.ClearHints()
	if p.Token(e).Hint {
		t.Error("Hint survived ClearHints")
	}
}
