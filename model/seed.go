package model

import (
	"math/rand"
	"slices"
	"strings"
)

const (
	PatternBlinker = "blinker"
	PatternBlock   = "block"
	PatternGlider  = "glider"
	PatternToad    = "toad"
	PatternBeacon  = "beacon"
	PatternRandom  = "random"

	// DefaultPattern is used for unrecognized pattern names
	DefaultPattern = PatternBlinker
)

// patternOffsets holds each fixed pattern relative to the grid center
var patternOffsets = map[string][]Cell{
	PatternBlinker: {{0, -1}, {0, 0}, {0, 1}},
	PatternBlock:   {{0, 0}, {1, 0}, {0, 1}, {1, 1}},
	PatternGlider: {
		{0, -1},
		{1, 0},
		{-1, 1}, {0, 1}, {1, 1},
	},
	PatternToad: {
		{0, 0}, {1, 0}, {2, 0},
		{-1, 1}, {0, 1}, {1, 1},
	},
	PatternBeacon: {
		{-1, -1}, {0, -1},
		{-1, 0},
		{2, 1},
		{1, 2}, {2, 2},
	},
}

// PatternNames returns the recognized seed pattern names, sorted
func PatternNames() []string {
	names := []string{PatternRandom}
	for name := range patternOffsets {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// NormalizePattern lowercases name and maps anything unrecognized to the default pattern
func NormalizePattern(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == PatternRandom {
		return name
	}
	if _, ok := patternOffsets[name]; ok {
		return name
	}
	return DefaultPattern
}

// BuildSeed creates the initial generation for the named pattern, centered on a width x height grid.
// Cells that would fall outside the grid are dropped.
func BuildSeed(name string, width, height int, density float64, rng *rand.Rand) *Generation {
	name = NormalizePattern(name)
	if name == PatternRandom {
		return Randomize(width, height, density, rng)
	}

	var (
		cx    = width / 2
		cy    = height / 2
		cells = make([]Cell, 0, len(patternOffsets[name]))
	)
	for _, off := range patternOffsets[name] {
		x, y := cx+off.X, cy+off.Y
		if x < 0 || x >= width || y < 0 || y >= height {
			continue
		}
		cells = append(cells, Cell{X: x, Y: y})
	}
	return BuildGeneration(cells)
}

// Randomize fills a generation with random living cells
func Randomize(width, height int, density float64, rng *rand.Rand) *Generation {
	g := NewGeneration()
	for y := range max(height, 0) {
		for x := range max(width, 0) {
			if rng.Float64() < density {
				g.Add(x, y)
			}
		}
	}
	return g
}
