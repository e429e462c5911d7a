package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/term-life/model"
	"github.com/sheikhrachel/term-life/utils"
)

var (
	configFlag      = flag.String("config", "config.json", "Path to a JSON config file")
	patternFlag     = flag.String("pattern", "", "Seed pattern: "+strings.Join(model.PatternNames(), ", "))
	frameFlag       = flag.Duration("frame", 0, "Delay between generations")
	generationsFlag = flag.Int("generations", 0, "Stop after this many generations (0 runs until interrupted)")
	parallelFlag    = flag.Bool("parallel", false, "Evolve rows in parallel")
	plainFlag       = flag.Bool("plain", false, "Write frames as plain text instead of using cursor positioning")
	debugFlag       = flag.Bool("debug", false, "Write logs to "+utils.LogDir+"/"+utils.LogFileName)
	maxWidthFlag    = flag.Int("max-width", 0, "Largest grid width")
	maxHeightFlag   = flag.Int("max-height", 0, "Largest grid height")
	densityFlag     = flag.Float64("density", 0, "Live cell probability for the random pattern")
	seedFlag        = flag.Int64("seed", 0, "Random seed for the random pattern")
	listFlag        = flag.Bool("list", false, "List seed patterns and exit")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] [pattern]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if *listFlag {
		for _, name := range model.PatternNames() {
			fmt.Println(name)
		}
		return
	}

	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig(*configFlag)
	if err != nil && !os.IsNotExist(errors.Cause(err)) {
		fmt.Fprintf(os.Stderr, "Using default configuration: %v\n", err)
	}
	config = applyFlagOverrides(config, setFlags(), flag.Args())
	if err := config.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(2)
	}

	logFile, err := utils.SetupLogging(config.Debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Logging disabled: %v\n", err)
	}
	if logFile != nil {
		defer logFile.Close()
	}
	log.Printf("starting: pattern=%s max=%dx%d parallel=%v pool=%v generations=%d",
		config.Pattern, config.MaxWidth, config.MaxHeight,
		config.UseParallel, config.UseMemoryPool, config.MaxGenerations)

	renderer := newRenderer(config)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	game := newGame(config, renderer, time.Now().UnixNano())

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		defer renderer.Close()
		return game.run(ctx)
	})
	if waiter, ok := renderer.(quitWaiter); ok {
		eg.Go(waiter.WaitForQuit)
	}

	err = eg.Wait()
	renderer.Close()

	switch {
	case err == nil:
		fmt.Printf("🏁 Finished after %d generations\n", game.generation)
	case errors.Is(err, model.ErrQuit), errors.Is(err, context.Canceled):
		fmt.Println("🛑 Shutting down gracefully...")
	default:
		log.Printf("game loop failed: %+v", err)
		fmt.Fprintf(os.Stderr, "Game loop failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Final stats: %d generations in %.1f seconds, %.1f avg population\n",
		game.generation, game.stats.Runtime().Seconds(), game.stats.AveragePopulation)
}

// setFlags returns the names of the flags given on the command line
func setFlags() map[string]bool {
	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) {
		set[f.Name] = true
	})
	return set
}

// applyFlagOverrides layers explicitly set flags and the positional pattern over config
func applyFlagOverrides(config utils.Config, set map[string]bool, args []string) utils.Config {
	if set["pattern"] {
		config.Pattern = *patternFlag
	}
	if len(args) > 0 {
		config.Pattern = args[0]
	}
	if set["frame"] {
		config.FrameRate = *frameFlag
	}
	if set["generations"] {
		config.MaxGenerations = *generationsFlag
	}
	if set["parallel"] {
		config.UseParallel = *parallelFlag
	}
	if set["plain"] {
		config.Plain = *plainFlag
	}
	if set["debug"] {
		config.Debug = *debugFlag
	}
	if set["max-width"] {
		config.MaxWidth = *maxWidthFlag
	}
	if set["max-height"] {
		config.MaxHeight = *maxHeightFlag
	}
	if set["density"] {
		config.RandomDensity = *densityFlag
	}
	if set["seed"] {
		config.RandomSeed = *seedFlag
	}
	config.Pattern = model.NormalizePattern(config.Pattern)
	return config
}
