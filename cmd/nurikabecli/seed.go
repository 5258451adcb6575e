package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vlaran/nurikabe/group"
	"github.com/vlaran/nurikabe/shape"
)

var seedShapeID int

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Interactively seed candidate solutions for a shape",
	Long: `Prints the shape's cells as letter codes laid out over its bounding
box, then reads one candidate solution per line from stdin: the letters
of the cells that are ACTIVE in that candidate. An empty line (or EOF)
finishes and saves the library. Rejected lines (duplicate letters,
unknown letters, duplicate solutions) leave the library untouched.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		lib, err := loadLibrary()
		if err != nil {
			return err
		}
		sh := lib.Get(seedShapeID)
		if sh == nil {
			return fmt.Errorf("shape %d: %w", seedShapeID, shape.ErrNotFound)
		}

		letterOf, cellOf, err := shape.LetterMap(sh.Group)
		if err != nil {
			return err
		}
		printLetterLayout(cmd.OutOrStdout(), sh.Group, letterOf)

		added := 0
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			line := strings.TrimSpace(strings.ToUpper(scanner.Text()))
			if line == "" {
				break
			}
			active, err := shape.ParseSolution(cellOf, line)
			if err != nil {
				log.Error().Err(err).Str("line", line).Msg("rejected")
				continue
			}
			if err := lib.AddSolution(seedShapeID, active); err != nil {
				log.Error().Err(err).Str("line", line).Msg("rejected")
				continue
			}
			added++
			log.Info().Int("shape", seedShapeID).Str("active", line).Msg("solution added")
		}
		if err := scanner.Err(); err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}

		if added == 0 {
			log.Info().Int("shape", seedShapeID).Msg("no solutions added, library unchanged")
			return nil
		}
		if err := lib.Save(shapesPath); err != nil {
			return err
		}
		log.Info().Int("shape", seedShapeID).Int("added", added).Msg("library saved")
		return nil
	},
}

// printLetterLayout draws the shape's bounding box with each in-group
// cell shown as its letter code and out-of-group cells as dots.
func printLetterLayout(w io.Writer, cells []group.Coord, letterOf map[group.Coord]byte) {
	maxX, maxY := 0, 0
	for _, c := range cells {
		if c.X > maxX {
			maxX = c.X
		}
		if c.Y > maxY {
			maxY = c.Y
		}
	}
	for y := 0; y <= maxY; y++ {
		var b strings.Builder
		for x := 0; x <= maxX; x++ {
			if l, ok := letterOf[group.Coord{X: x, Y: y}]; ok {
				b.WriteByte(l)
			} else {
				b.WriteByte('.')
			}
			b.WriteByte(' ')
		}
		fmt.Fprintln(w, b.String())
	}
	fmt.Fprintln(w, "enter one solution per line (letters of ACTIVE cells), empty line to finish:")
}

func init() {
	seedCmd.Flags().IntVar(&seedShapeID, "shape", -1, "shape id to curate")
	_ = seedCmd.MarkFlagRequired("shape")
	rootCmd.AddCommand(seedCmd)
}
