package main

import (
	"fmt"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"

	"github.com/vlaran/nurikabe/propagate"
	"github.com/vlaran/nurikabe/uniqueness"
)

var solveCmd = &cobra.Command{
	Use:   "solve seed...",
	Short: "Run propagation from one or more seed points or ranges",
	Long: `Runs the propagation driver seeded at each argument, given either as
a point "x,y" or as a range "x0..x1,y0..y1" with an optional ":step"
suffix. On success the grid, the shape library (if it grew), and the
group cache are written back to their files.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		seeds, err := parseSeeds(args)
		if err != nil {
			return err
		}
		g, err := loadGrid()
		if err != nil {
			return err
		}
		lib, err := loadLibrary()
		if err != nil {
			return err
		}
		cache, err := loadCache()
		if err != nil {
			return err
		}
		shapesBefore := lib.Len()

		engine := uniqueness.New(g, lib, cache)
		driver := propagate.New(g, engine, log)

		sp := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
		sp.Suffix = fmt.Sprintf(" propagating from %d seeds", len(seeds))
		_ = sp.Color("cyan", "bold")
		if !verbose {
			sp.Start()
		}
		start := time.Now()
		committed, err := driver.Run(seeds...)
		sp.Stop()
		if err != nil {
			return err
		}
		log.Info().Int("seeds", len(seeds)).
			Int("committed", committed).
			Int("newShapes", lib.Len()-shapesBefore).
			Dur("elapsed", time.Since(start)).
			Msg("propagation complete")

		if err := g.Save(gridPath); err != nil {
			return err
		}
		if lib.Len() > shapesBefore {
			if err := lib.Save(shapesPath); err != nil {
				return err
			}
		}
		if err := cache.Save(cachePath); err != nil {
			return err
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(solveCmd)
}
