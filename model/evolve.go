package model

import (
	"context"
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/term-life/rules"
	"github.com/sheikhrachel/term-life/utils"
)

// neighborOffsets are the eight unit Chebyshev offsets around a cell
var neighborOffsets = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// Bounds are the grid dimensions for a single evolution step
type Bounds struct {
	Width  int
	Height int
}

// Area returns the number of cells inside the bounds
func (b Bounds) Area() int {
	if b.Width <= 0 || b.Height <= 0 {
		return 0
	}
	return b.Width * b.Height
}

// NeighborCount counts the living neighbors of (x, y), never the cell itself
func NeighborCount(g *Generation, x, y, width, height int) int {
	count := 0
	for _, off := range neighborOffsets {
		nx, ny := x+off[0], y+off[1]
		if !rules.InBounds(nx, ny, width, height) {
			continue
		}
		if g.Contains(nx, ny) {
			count++
		}
	}
	return count
}

// Evolve calculates the next generation by visiting every cell of the grid
func Evolve(current *Generation, width, height int) *Generation {
	next := NewGeneration()
	evolveRows(current, next, 0, height, width, height)
	return next
}

// evolveRows fills next with the cells of rows [startRow, endRow) that are alive after one step
func evolveRows(current, next *Generation, startRow, endRow, width, height int) {
	for y := startRow; y < endRow; y++ {
		for x := 0; x < width; x++ {
			if rules.ApplyConwayRules(NeighborCount(current, x, y, width, height), current.Contains(x, y)) {
				next.Add(x, y)
			}
		}
	}
}

// EvolveParallel calculates the next generation using parallel processing.
// Each worker scans a band of rows into its own accumulator; the bands are merged once all finish.
func EvolveParallel(ctx context.Context, current *Generation, width, height int) (*Generation, error) {
	return evolveParallelInto(ctx, current, NewGeneration(), width, height)
}

func evolveParallelInto(ctx context.Context, current, next *Generation, width, height int) (*Generation, error) {
	if width <= 0 || height <= 0 {
		return next, nil
	}

	var (
		numWorkers    = min(runtime.NumCPU(), height)
		rowsPerWorker = (height + numWorkers - 1) / numWorkers // Ceiling division
		bands         = make([]*Generation, numWorkers)
	)

	eg, ctx := errgroup.WithContext(ctx)
	for i := range numWorkers {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, height)
		)
		if startRow >= height {
			break
		}

		band := NewGeneration()
		bands[i] = band
		eg.Go(func() error {
			for y := startRow; y < endRow; y++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				evolveRows(current, band, y, y+1, width, height)
			}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, errors.Wrap(err, "[EvolveParallel] evolution interrupted")
	}

	for _, band := range bands {
		if band != nil {
			next.merge(band)
		}
	}
	return next, nil
}

// NextGeneration calculates the next generation based on configuration.
// When a pool is given the accumulator is drawn from it.
func NextGeneration(
	ctx context.Context,
	current *Generation,
	bounds Bounds,
	config utils.Config,
	pool *GenerationPool,
) (*Generation, error) {
	var next *Generation
	if pool != nil {
		next = pool.Get()
	} else {
		next = NewGeneration()
	}

	if config.UseParallel {
		return evolveParallelInto(ctx, current, next, bounds.Width, bounds.Height)
	}

	evolveRows(current, next, 0, bounds.Height, bounds.Width, bounds.Height)
	return next, nil
}
