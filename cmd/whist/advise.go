package main

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"
	"time"

	"whist/internal/advisor"
	"whist/internal/bid"
	"whist/internal/deck"
	"whist/internal/randutil"
)

// AdviseCmd scores one lead decision from the command line.
type AdviseCmd struct {
	Hand       string `arg:"" help:"Cards in hand, e.g. 'AS KH TD 2C'"`
	Played     string `short:"p" help:"Cards already played this deal"`
	Trump      string `short:"t" default:"NT" help:"Trump strain: C, D, H, S or NT"`
	Broken     bool   `help:"Trump suit has been broken"`
	Iterations int    `short:"i" default:"100" help:"Monte Carlo samples per candidate"`
	Seed       *int64 `help:"Random seed for reproducible results"`
}

func (cmd *AdviseCmd) Run() error {
	hand, err := deck.ParseCards(cmd.Hand)
	if err != nil {
		return fmt.Errorf("parsing hand: %w", err)
	}
	deck.Sort(hand)

	var played []deck.Card
	if cmd.Played != "" {
		played, err = deck.ParseCards(cmd.Played)
		if err != nil {
			return fmt.Errorf("parsing played cards: %w", err)
		}
	}

	trump, err := bid.ParseStrain(cmd.Trump)
	if err != nil {
		return err
	}

	seed := time.Now().UnixNano()
	if cmd.Seed != nil {
		seed = *cmd.Seed
	}

	start := time.Now()
	best, tally, err := advisor.AdviseLead(hand, played, trump, cmd.Broken, advisor.Options{
		Iterations: cmd.Iterations,
		RNG:        randutil.New(seed),
	})
	if err != nil {
		return err
	}

	fmt.Println(titleStyle.Render(fmt.Sprintf(
		"Trump %s, %d samples/candidate (seed %d)", trump, cmd.Iterations, seed)))

	sort.SliceStable(tally, func(i, j int) bool {
		return tally[i].Wins > tally[j].Wins
	})

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "LEAD\tWINS\tRATE")
	for _, c := range tally {
		rate := float64(c.Wins) / float64(c.Samples) * 100
		line := fmt.Sprintf("%s\t%d/%d\t%.1f%%", c.Card, c.Wins, c.Samples, rate)
		if c.Card == best {
			line = winStyle.Render(line)
		}
		fmt.Fprintln(w, line)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Println(dimStyle.Render(fmt.Sprintf("Best lead: %s (%s)", best, time.Since(start).Round(time.Millisecond))))
	return nil
}
