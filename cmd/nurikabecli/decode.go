package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vlaran/nurikabe/flagdecode"
)

var decodeCmd = &cobra.Command{
	Use:   "decode",
	Short: "Decode the flag from a solved grid",
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := loadGrid()
		if err != nil {
			return err
		}
		flag, err := flagdecode.Decode(g)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), flag)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(decodeCmd)
}
