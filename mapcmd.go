package main

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"spellarena/internal/config"
	"spellarena/internal/world"
)

var mapCmd = &cobra.Command{
	Use:   "map",
	Short: "Print the selected map with its legend",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd, opts)
		if err != nil {
			return err
		}
		grid, err := loadGrid(cfg, opts.mapPath)
		if err != nil {
			return err
		}
		printMap(cmd.OutOrStdout(), grid, cfg)
		return nil
	},
}

var tileGlyphs = map[world.Tile]rune{
	world.TileEmpty:       '.',
	world.TileWall:        '#',
	world.TilePillar:      'O',
	world.TileShopWeapons: 'W',
	world.TileShopMagic:   'M',
	world.TileShopHealer:  'H',
	world.TileArenaGate:   'G',
}

// printMap draws one glyph per tile, marks the arena centre with @ and lists
// the glyphs that appear.
func printMap(w io.Writer, grid *world.Grid, cfg *config.Config) {
	seen := make(map[world.Tile]bool)
	var sb strings.Builder
	for y := 0; y < grid.Height(); y++ {
		for x := 0; x < grid.Width(); x++ {
			if x == cfg.Arena.CenterX && y == cfg.Arena.CenterY {
				sb.WriteRune('@')
				continue
			}
			t := grid.Tile(x, y)
			seen[t] = true
			glyph, ok := tileGlyphs[t]
			if !ok {
				glyph = '?'
			}
			sb.WriteRune(glyph)
		}
		sb.WriteByte('\n')
	}
	fmt.Fprintf(w, "%dx%d tiles, %.0f px each\n", grid.Width(), grid.Height(), grid.TileSize())
	fmt.Fprint(w, sb.String())

	tiles := make([]world.Tile, 0, len(seen))
	for t := range seen {
		tiles = append(tiles, t)
	}
	sort.Slice(tiles, func(i, j int) bool { return tiles[i] < tiles[j] })

	fmt.Fprintln(w, "@ start")
	for _, t := range tiles {
		fmt.Fprintf(w, "%c %s\n", tileGlyphs[t], t)
	}
}
