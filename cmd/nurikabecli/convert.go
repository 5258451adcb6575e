package main

import (
	"github.com/spf13/cobra"

	"github.com/vlaran/nurikabe/datfile"
)

var convertDatPath string

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Unpack the packed .dat source file into a raw grid file",
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := datfile.Unpack(convertDatPath)
		if err != nil {
			return err
		}
		if g.Width != gridWidth || g.Height != gridHeight {
			log.Warn().
				Int("fileWidth", g.Width).Int("fileHeight", g.Height).
				Int("wantWidth", gridWidth).Int("wantHeight", gridHeight).
				Msg("dat header dimensions differ from configured dimensions")
		}
		if err := g.Save(gridPath); err != nil {
			return err
		}
		log.Info().Str("from", convertDatPath).Str("to", gridPath).Msg("converted")
		return nil
	},
}

func init() {
	convertCmd.Flags().StringVar(&convertDatPath, "dat", "puzzlepuzzle.dat", "path to the packed .dat file")
	rootCmd.AddCommand(convertCmd)
}
