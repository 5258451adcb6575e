package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vlaran/nurikabe/render"
)

var (
	renderOut    string
	renderX      int
	renderY      int
	renderWidth  int
	renderHeight int
	renderScale  int

	showRadius int
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a rectangular grid window to PNG",
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := loadGrid()
		if err != nil {
			return err
		}
		if err := render.PNG(g, renderX, renderY, renderWidth, renderHeight, renderScale, renderOut); err != nil {
			return err
		}
		log.Info().Str("out", renderOut).
			Int("x", renderX).Int("y", renderY).
			Int("width", renderWidth).Int("height", renderHeight).
			Msg("rendered")
		return nil
	},
}

var showCmd = &cobra.Command{
	Use:   "show x,y",
	Short: "Print a square window around a cell with the center highlighted",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := parsePoint(args[0])
		if err != nil {
			return err
		}
		g, err := loadGrid()
		if err != nil {
			return err
		}
		return render.ANSI(os.Stdout, g, p[0], p[1], showRadius)
	},
}

func init() {
	renderCmd.Flags().StringVar(&renderOut, "out", "window.png", "output PNG path")
	renderCmd.Flags().IntVar(&renderX, "x", 0, "window left edge")
	renderCmd.Flags().IntVar(&renderY, "y", 0, "window top edge")
	renderCmd.Flags().IntVar(&renderWidth, "window-width", 256, "window width in cells")
	renderCmd.Flags().IntVar(&renderHeight, "window-height", 256, "window height in cells")
	renderCmd.Flags().IntVar(&renderScale, "scale", 4, "pixels per cell")
	rootCmd.AddCommand(renderCmd)

	showCmd.Flags().IntVar(&showRadius, "radius", 10, "half-width of the square window")
	rootCmd.AddCommand(showCmd)
}
