package main

import (
	"fmt"
	"io"
	"log"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"spellarena/internal/clock"
	"spellarena/internal/termview"
)

var termCmd = &cobra.Command{
	Use:   "term",
	Short: "Play the arena in the terminal",
	RunE:  runTerm,
}

func runTerm(cmd *cobra.Command, args []string) error {
	clk := clock.New()
	s, err := setup(cmd, clk)
	if err != nil {
		return err
	}
	defer s.Close()
	// The log would scribble over the cells.
	log.SetOutput(io.Discard)

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to open terminal: %w", err)
	}
	return termview.New(screen, s.cfg, s.director, s.composer, clk).Run()
}
