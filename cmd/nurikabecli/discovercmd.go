package main

import (
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"

	"github.com/vlaran/nurikabe/discover"
)

var discoverWorkers int

var discoverCmd = &cobra.Command{
	Use:   "discover",
	Short: "Scan the grid for groups and register any unknown shapes",
	Long: `Runs the parallel, read-only shape-discovery pass over the whole
grid: every UNPROCESSED group is flood-filled, canonicalized, and
registered in the shape library if not already present. The library is
saved when any new shape was found. Solutions are not touched — newly
discovered shapes await curation via "seed".`,
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := loadGrid()
		if err != nil {
			return err
		}
		lib, err := loadLibrary()
		if err != nil {
			return err
		}

		sp := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
		sp.Suffix = " scanning for shapes"
		_ = sp.Color("cyan", "bold")
		if !verbose {
			sp.Start()
		}
		start := time.Now()
		summary, err := discover.Scan(g, lib, discoverWorkers)
		sp.Stop()
		if err != nil {
			return err
		}
		log.Info().Int("rows", summary.Rows).
			Int("new", summary.New).
			Int("existing", summary.Existing).
			Dur("elapsed", time.Since(start)).
			Msg("discovery complete")

		if verbose {
			// Deterministic listing regardless of worker interleaving.
			for _, id := range discover.Sorted(lib) {
				sh := lib.Get(id)
				log.Debug().Int("id", id).
					Int("cells", len(sh.Group)).
					Bool("curated", sh.Curated()).
					Msg("shape")
			}
		}
		if summary.New > 0 {
			if err := lib.Save(shapesPath); err != nil {
				return err
			}
		}
		return nil
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Run a read-only consistency scan over the grid file",
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := loadGrid()
		if err != nil {
			return err
		}
		if err := g.Validate(); err != nil {
			return err
		}
		log.Info().Str("path", gridPath).Msg("grid valid")
		return nil
	},
}

func init() {
	discoverCmd.Flags().IntVar(&discoverWorkers, "workers", 0, "scan goroutines (0 = GOMAXPROCS)")
	rootCmd.AddCommand(discoverCmd)
	rootCmd.AddCommand(validateCmd)
}
