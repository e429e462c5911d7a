package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"golang.org/x/term"

	"github.com/sheikhrachel/term-life/model"
	"github.com/sheikhrachel/term-life/utils"
)

// historySize is how many recent generation hashes are kept for the status label
const historySize = 2

// quitWaiter is implemented by renderers that read user input
type quitWaiter interface {
	WaitForQuit() error
}

// game owns the current generation and drives the render/evolve loop
type game struct {
	config   utils.Config
	renderer model.Renderer
	pool     *model.GenerationPool
	stats    *utils.Stats

	current    *model.Generation
	generation int
	recent     []string
}

// newGame builds the seed generation for the configured pattern
func newGame(config utils.Config, renderer model.Renderer, fallbackSeed int64) *game {
	var pool *model.GenerationPool
	if config.UseMemoryPool {
		pool = model.NewGenerationPool()
	}

	seed := config.RandomSeed
	if seed == 0 {
		seed = fallbackSeed
	}

	bounds := currentBounds(renderer, config)
	current := model.BuildSeed(config.Pattern, bounds.Width, bounds.Height,
		config.RandomDensity, rand.New(rand.NewSource(seed)))
	log.Printf("seed %q on %dx%d grid: %d living cells",
		config.Pattern, bounds.Width, bounds.Height, current.Len())

	return &game{
		config:   config,
		renderer: renderer,
		pool:     pool,
		stats:    utils.NewStats(),
		current:  current,
	}
}

// run renders and evolves until ctx is done or the generation limit is reached
func (g *game) run(ctx context.Context) error {
	var lastFrameTime time.Time
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		var (
			frameStart    = time.Now()
			frameDuration time.Duration
		)
		if !lastFrameTime.IsZero() {
			frameDuration = frameStart.Sub(lastFrameTime)
		}
		g.stats.Update(g.generation, g.current.Len(), frameDuration)
		lastFrameTime = frameStart

		bounds := currentBounds(g.renderer, g.config)
		status := g.updateStatus(bounds)
		if err := g.renderer.Display(g.current, bounds, status); err != nil {
			// Rendering is best effort; the simulation keeps going without the frame
			log.Printf("frame %d skipped: %v", g.generation, err)
		}

		if g.config.MaxGenerations > 0 && g.generation >= g.config.MaxGenerations {
			log.Printf("reached maximum generations limit (%d)", g.config.MaxGenerations)
			return nil
		}

		if err := g.step(ctx); err != nil {
			return err
		}

		if g.config.FrameRate > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(g.config.FrameRate):
			}
		}
	}
}

// step replaces the current generation with its successor
func (g *game) step(ctx context.Context) error {
	next, err := model.NextGeneration(ctx, g.current, currentBounds(g.renderer, g.config), g.config, g.pool)
	if err != nil {
		return err
	}

	model.GenerationToPool(g.current, g.pool)
	g.current = next
	g.generation++
	return nil
}

// updateStatus records the current generation and formats the status line
func (g *game) updateStatus(bounds model.Bounds) string {
	var (
		hash        = g.current.Hash()
		livingCells = g.current.Len()
		density     = 0.0
	)
	if area := bounds.Area(); area > 0 {
		density = float64(livingCells) / float64(area) * 100
	}

	state := classify(g.recent, hash, livingCells)

	g.recent = append(g.recent, hash)
	if len(g.recent) > historySize {
		g.recent = g.recent[1:]
	}

	return fmt.Sprintf("Gen: %d | Living: %d | Density: %.1f%% | %s | %.1f gen/sec",
		g.generation, livingCells, density, state, g.stats.GenerationsPerSecond)
}

// classify labels the current generation from the hashes of the ones before it
func classify(recent []string, hash string, livingCells int) string {
	switch {
	case livingCells == 0:
		return "Extinct"
	case len(recent) >= 1 && recent[len(recent)-1] == hash:
		return "Still life"
	case len(recent) >= 2 && recent[len(recent)-2] == hash:
		return "Oscillating"
	}
	return "Active"
}

// currentBounds queries the renderer size and caps it at the configured maximum
func currentBounds(renderer model.Renderer, config utils.Config) model.Bounds {
	w, h := renderer.Size()
	return model.Bounds{
		Width:  max(min(w, config.MaxWidth), 0),
		Height: max(min(h, config.MaxHeight), 0),
	}
}

// newRenderer picks the output for the configuration and the attached stdout
func newRenderer(config utils.Config) model.Renderer {
	fd := int(os.Stdout.Fd())
	isTerminal := term.IsTerminal(fd)

	if config.Plain {
		width, height := config.MaxWidth, config.MaxHeight
		if isTerminal {
			if cols, rows, err := term.GetSize(fd); err == nil {
				// Two columns per cell, one row for the status line
				width, height = cols/2, rows-1
			}
		}
		return model.NewPlainRenderer(os.Stdout, width, height, isTerminal)
	}

	renderer, err := model.NewTerminalRenderer()
	if err != nil {
		log.Printf("terminal unavailable, rendering disabled: %v", err)
		return model.NewHeadlessRenderer(config.MaxWidth, config.MaxHeight)
	}
	return renderer
}
