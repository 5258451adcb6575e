package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vlaran/nurikabe/shape"
	"github.com/vlaran/nurikabe/tile"
)

var (
	resetShapeID int
	resetOrigin  string

	setcellValue int
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Mark a shape's cells back to UNPROCESSED at a given origin",
	Long: `Writes the UNPROCESSED tile into every cell of a shape's group,
translated to the given origin. Used to re-open a group after its
solutions were edited, so the next solve run derives it afresh.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		origin, err := parsePoint(resetOrigin)
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
		sh := lib.Get(resetShapeID)
		if sh == nil {
			return fmt.Errorf("shape %d: %w", resetShapeID, shape.ErrNotFound)
		}
		for _, c := range sh.Group {
			if err := g.Set(origin[0]+c.X, origin[1]+c.Y, tile.Unprocessed); err != nil {
				return err
			}
		}
		if err := g.Save(gridPath); err != nil {
			return err
		}
		log.Info().Int("shape", resetShapeID).
			Int("cells", len(sh.Group)).
			Ints("origin", []int{origin[0], origin[1]}).
			Msg("reset")
		return nil
	},
}

var setcellCmd = &cobra.Command{
	Use:   "setcell x,y",
	Short: "Set a single cell to a given tile value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := parsePoint(args[0])
		if err != nil {
			return err
		}
		v := tile.Tile(setcellValue)
		if !tile.Valid(v) {
			return fmt.Errorf("value %d is outside the legal tile alphabet", setcellValue)
		}
		g, err := loadGrid()
		if err != nil {
			return err
		}
		old, err := g.At(p[0], p[1])
		if err != nil {
			return err
		}
		if err := g.Set(p[0], p[1], v); err != nil {
			return err
		}
		if err := g.Save(gridPath); err != nil {
			return err
		}
		log.Info().Int("x", p[0]).Int("y", p[1]).
			Uint8("old", old).Uint8("new", v).
			Msg("cell set")
		return nil
	},
}

func init() {
	resetCmd.Flags().IntVar(&resetShapeID, "shape", -1, "shape id to reset")
	resetCmd.Flags().StringVar(&resetOrigin, "origin", "", "group origin as x,y")
	_ = resetCmd.MarkFlagRequired("shape")
	_ = resetCmd.MarkFlagRequired("origin")
	rootCmd.AddCommand(resetCmd)

	setcellCmd.Flags().IntVar(&setcellValue, "value", -1, "tile value to write")
	_ = setcellCmd.MarkFlagRequired("value")
	rootCmd.AddCommand(setcellCmd)
}
