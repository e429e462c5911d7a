package model

import "testing"

func TestGenerationMembership(t *testing.T) {
	g := NewGeneration(Cell{1, 2}, Cell{3, 4}, Cell{1, 2})

	if g.Len() != 2 {
		t.Fatalf("Expected duplicate cells to collapse to 2, got %d", g.Len())
	}
	if !g.Contains(1, 2) || !g.Contains(3, 4) {
		t.Error("Expected seeded cells to be alive")
	}
	if g.Contains(2, 1) {
		t.Error("Coordinates are ordered: (2,1) must not match (1,2)")
	}
	if g.Contains(-1, -1) || g.Contains(1000, 1000) {
		t.Error("Out of range coordinates must be dead")
	}

	g.Add(3, 4)
	if g.Len() != 2 {
		t.Errorf("Adding a live cell must be a no-op, got len %d", g.Len())
	}
	g.Add(0, 0)
	if !g.Contains(0, 0) || g.Len() != 3 {
		t.Errorf("Expected (0,0) to be added, len %d", g.Len())
	}
}

func TestZeroGenerationAdd(t *testing.T) {
	var g Generation
	if g.Contains(0, 0) {
		t.Fatal("Zero generation must be empty")
	}
	g.Add(0, 0)
	if !g.Contains(0, 0) {
		t.Error("Expected Add to work on a zero generation")
	}
}

func TestGenerationCells(t *testing.T) {
	want := []Cell{{0, 0}, {5, 1}, {2, 7}}
	g := BuildGeneration(want)

	got := g.Cells()
	if len(got) != len(want) {
		t.Fatalf("Expected %d cells, got %d", len(want), len(got))
	}
	for _, c := range got {
		if !g.Contains(c.X, c.Y) {
			t.Errorf("Cells returned %v which is not alive", c)
		}
	}

	count := 0
	for range g.All() {
		count++
	}
	if count != len(want) {
		t.Errorf("All yielded %d cells, want %d", count, len(want))
	}
}

func TestGenerationEqualAndHash(t *testing.T) {
	a := NewGeneration(Cell{1, 1}, Cell{2, 2}, Cell{3, 3})
	b := NewGeneration(Cell{3, 3}, Cell{1, 1}, Cell{2, 2})
	c := NewGeneration(Cell{1, 1}, Cell{2, 2})

	if !a.Equal(b) {
		t.Error("Expected generations with the same cells to be equal")
	}
	if a.Hash() != b.Hash() {
		t.Error("Expected hash to ignore insertion order")
	}
	if a.Equal(c) || a.Hash() == c.Hash() {
		t.Error("Expected different generations to differ")
	}
	if NewGeneration().Hash() == c.Hash() {
		t.Error("Expected empty generation hash to differ")
	}
}

func TestGenerationReset(t *testing.T) {
	g := NewGeneration(Cell{1, 1})
	g.Reset()
	if g.Len() != 0 || g.Contains(1, 1) {
		t.Error("Expected Reset to empty the generation")
	}
}

func TestGenerationPool(t *testing.T) {
	pool := NewGenerationPool()

	g := pool.Get()
	g.Add(4, 4)
	GenerationToPool(g, pool)

	again := pool.Get()
	if again.Len() != 0 {
		t.Errorf("Expected pooled generation to come back empty, got %d cells", again.Len())
	}

	// nil pool is a no-op
	GenerationToPool(NewGeneration(Cell{1, 1}), nil)
}
