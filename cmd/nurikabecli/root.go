package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/vlaran/nurikabe/datfile"
	"github.com/vlaran/nurikabe/grid"
	"github.com/vlaran/nurikabe/groupcache"
	"github.com/vlaran/nurikabe/shape"
)

var (
	gridPath   string
	shapesPath string
	cachePath  string
	gridWidth  int
	gridHeight int
	verbose    bool

	log zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "nurikabecli",
	Short: "Operator tooling for the grid-puzzle constraint solver",
	Long: `nurikabecli drives the constraint-propagation solver and its
surrounding tooling: converting the packed source file, inspecting and
editing the grid, curating candidate solutions per shape, running
propagation and trial/split searches, and decoding the final flag.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := zerolog.InfoLevel
		if verbose {
			level = zerolog.DebugLevel
		}
		log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			Level(level).
			With().Timestamp().Logger()
	},
}

// Execute runs the root command; subcommand errors exit non-zero.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&gridPath, "grid", "puzzlepuzzle.raw", "path to the raw grid file")
	rootCmd.PersistentFlags().StringVar(&shapesPath, "shapes", "shape_db.json", "path to the shape library JSON file")
	rootCmd.PersistentFlags().StringVar(&cachePath, "cache", "cached_groups.bin", "path to the group cache file")
	rootCmd.PersistentFlags().IntVar(&gridWidth, "width", datfile.Width, "grid width in cells")
	rootCmd.PersistentFlags().IntVar(&gridHeight, "height", datfile.Height, "grid height in cells")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

func loadGrid() (*grid.Grid, error) {
	g, err := grid.Load(gridPath, gridWidth, gridHeight)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("path", gridPath).Int("width", gridWidth).Int("height", gridHeight).Msg("grid loaded")
	return g, nil
}

func loadLibrary() (*shape.Library, error) {
	lib, err := shape.Load(shapesPath)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("path", shapesPath).Int("shapes", lib.Len()).Msg("shape library loaded")
	return lib, nil
}

// loadCache tolerates a missing cache file: the cache is pure
// memoization, rebuilt lazily by flood-fill as cells are resolved.
func loadCache() (*groupcache.Cache, error) {
	c, err := groupcache.Load(cachePath)
	if errors.Is(err, fs.ErrNotExist) {
		log.Debug().Str("path", cachePath).Msg("no cache file, starting empty")
		return groupcache.New(), nil
	}
	if err != nil {
		return nil, err
	}
	log.Debug().Str("path", cachePath).Int("entries", c.Len()).Msg("group cache loaded")
	return c, nil
}

// parsePoint parses "x,y" into a coordinate pair.
func parsePoint(s string) ([2]int, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return [2]int{}, fmt.Errorf("want x,y, got %q", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return [2]int{}, fmt.Errorf("bad x in %q: %w", s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return [2]int{}, fmt.Errorf("bad y in %q: %w", s, err)
	}
	return [2]int{x, y}, nil
}

// parseSeeds parses each argument as either a point "x,y" or a range
// "x0..x1,y0..y1" with an optional ":step" suffix, expanding ranges
// into the seed list.
func parseSeeds(args []string) ([][2]int, error) {
	var seeds [][2]int
	for _, arg := range args {
		if !strings.Contains(arg, "..") {
			p, err := parsePoint(arg)
			if err != nil {
				return nil, err
			}
			seeds = append(seeds, p)
			continue
		}

		spec := arg
		step := 1
		if i := strings.LastIndex(spec, ":"); i >= 0 {
			var err error
			step, err = strconv.Atoi(spec[i+1:])
			if err != nil || step < 1 {
				return nil, fmt.Errorf("bad step in %q", arg)
			}
			spec = spec[:i]
		}
		parts := strings.Split(spec, ",")
		if len(parts) != 2 {
			return nil, fmt.Errorf("want x0..x1,y0..y1[:step], got %q", arg)
		}
		x0, x1, err := parseSpan(parts[0])
		if err != nil {
			return nil, fmt.Errorf("bad x span in %q: %w", arg, err)
		}
		y0, y1, err := parseSpan(parts[1])
		if err != nil {
			return nil, fmt.Errorf("bad y span in %q: %w", arg, err)
		}
		for y := y0; y <= y1; y += step {
			for x := x0; x <= x1; x += step {
				seeds = append(seeds, [2]int{x, y})
			}
		}
	}
	return seeds, nil
}

// parseSpan parses "a..b" or a single "a" (span of one).
func parseSpan(s string) (lo, hi int, err error) {
	if i := strings.Index(s, ".."); i >= 0 {
		lo, err = strconv.Atoi(strings.TrimSpace(s[:i]))
		if err != nil {
			return 0, 0, err
		}
		hi, err = strconv.Atoi(strings.TrimSpace(s[i+2:]))
		if err != nil {
			return 0, 0, err
		}
		if hi < lo {
			return 0, 0, fmt.Errorf("span %q is descending", s)
		}
		return lo, hi, nil
	}
	lo, err = strconv.Atoi(strings.TrimSpace(s))
	return lo, lo, err
}
