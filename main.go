package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "spellarena",
	Short: "Raycast wave arena",
	Long:  `Spell Arena is a first-person raycast arena: survive escalating waves, defeat a boss every fifth wave and spend the gold between fights.`,
	RunE:  runPlay,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "config.yaml", "path to the YAML configuration")
	flags.Int64Var(&opts.seed, "seed", 0, "random seed, 0 picks one from the clock")
	flags.BoolVar(&opts.quiet, "quiet", false, "discard log output")
	flags.StringVar(&opts.mapPath, "map", "", `map file to fight on, "town" for the built-in town, empty for the arena`)

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(termCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(mapCmd)
}
