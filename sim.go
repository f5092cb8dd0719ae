package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"spellarena/internal/arena"
	"spellarena/internal/clock"
)

const simFrame = time.Second / 60

var (
	simWaves    int
	simDuration time.Duration
	simRender   bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless autopilot game and print the result",
	RunE: func(cmd *cobra.Command, args []string) error {
		clk := clock.NewManual()
		s, err := setup(cmd, clk)
		if err != nil {
			return err
		}
		defer s.Close()

		res := runSimulation(s, clk, simWaves, simDuration, simRender)
		printSimResult(cmd.OutOrStdout(), res)
		return nil
	},
}

func init() {
	simCmd.Flags().IntVar(&simWaves, "waves", 10, "stop once this wave is reached")
	simCmd.Flags().DurationVar(&simDuration, "duration", 10*time.Minute, "simulated time limit")
	simCmd.Flags().BoolVar(&simRender, "render", true, "compose a frame every tick to exercise the raycaster")
}

type simResult struct {
	Wave    int
	Score   int
	Gold    int
	Kills   int
	Died    bool
	Elapsed time.Duration
	Metrics string
}

// runSimulation steps the autopilot on a manual clock at 60 frames per
// simulated second until it reaches the target wave, dies or runs out of time.
func runSimulation(s *session, clk *clock.Manual, waves int, limit time.Duration, compose bool) simResult {
	d := s.director
	pilot := arena.NewAutopilot(d, arena.NewShop(s.cfg))
	d.InitializeArena()

	kills := 0
	start := clk.Now()
	for clk.Now().Sub(start) < limit && d.Wave() < waves && d.Phase() != arena.PhaseGameOver {
		clk.Advance(simFrame)
		before := d.Kills()
		pilot.Step()
		if after := d.Kills(); after >= before {
			kills += after - before
		}
		if compose {
			s.composer.Compose(d.View(), d.Drawables())
		}
	}

	return simResult{
		Wave:    d.Wave(),
		Score:   d.Player.Score,
		Gold:    d.Player.Gold,
		Kills:   kills,
		Died:    d.Phase() == arena.PhaseGameOver,
		Elapsed: clk.Now().Sub(start),
		Metrics: s.threading.PerformanceMonitor.GetCurrentMetrics().Summary(),
	}
}

func printSimResult(w io.Writer, r simResult) {
	outcome := "survived"
	if r.Died {
		outcome = "fell"
	}
	fmt.Fprintf(w, "Autopilot %s on wave %d after %s\n", outcome, r.Wave, r.Elapsed.Round(time.Second))
	fmt.Fprintf(w, "Score: %d  Gold: %d  Kills: %d\n", r.Score, r.Gold, r.Kills)
	fmt.Fprintln(w, r.Metrics)
}
