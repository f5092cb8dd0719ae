package main

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"spellarena/internal/clock"
	"spellarena/internal/game"
)

var spriteDir string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Open the arena in a window",
	RunE:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&spriteDir, "sprites", "assets/sprites", "directory holding sprite images")
	rootCmd.Flags().AddFlagSet(playCmd.Flags())
}

func runPlay(cmd *cobra.Command, args []string) error {
	s, err := setup(cmd, clock.New())
	if err != nil {
		return err
	}
	defer s.Close()

	ebiten.SetWindowSize(s.cfg.GetScreenWidth(), s.cfg.GetScreenHeight())
	ebiten.SetWindowTitle(s.cfg.Display.WindowTitle)
	if s.cfg.Display.TPS > 0 {
		ebiten.SetTPS(s.cfg.Display.TPS)
	}

	g := game.NewArenaGame(s.cfg, s.director, s.composer, s.threading, spriteDir)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
