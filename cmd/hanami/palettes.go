package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"hanami/anim"
)

var palettesCmd = &cobra.Command{
	Use:   "palettes",
	Short: "List the selectable mood palettes",
	Run:   listPalettes,
}

func init() {
	rootCmd.AddCommand(palettesCmd)
}

func listPalettes(cmd *cobra.Command, args []string) {
	def := anim.DefaultPalette().Name
	fmt.Println("Available palettes:")
	for _, name := range anim.PaletteNames() {
		if name == def {
			fmt.Println("  ", name, "(default)")
		} else {
			fmt.Println("  ", name)
		}
	}
}
