package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/verte-zerg/evilword/internal/adversary"
	"github.com/verte-zerg/evilword/internal/config"
	"github.com/verte-zerg/evilword/internal/game"
	"github.com/verte-zerg/evilword/internal/generator"
	"github.com/verte-zerg/evilword/internal/report"
	"github.com/verte-zerg/evilword/internal/store"
)

var (
	inspectPoolSize int
	explainLength   int
	explainSeed     uint64
)

func newLengthsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lengths",
		Short: "Show target and dictionary counts per word length",
		Args:  cobra.NoArgs,
		RunE:  runLengthsCmd,
	}
	cmd.Flags().IntVar(&inspectPoolSize, "pool-size", defaultPoolSize, "cap on targets per length")
	return cmd
}

func runLengthsCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()
	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer closeStore(st)

	info, err := st.Info(ctx)
	if err != nil {
		return fmt.Errorf("failed to read lexicon info: %w", err)
	}
	rows, err := st.LengthSummary(ctx, game.MinWordLength, game.MaxWordLength, inspectPoolSize)
	if err != nil {
		return fmt.Errorf("failed to summarize lexicon: %w", err)
	}

	out := cmd.OutOrStdout()
	if !info.ImportedAt.IsZero() {
		if _, err := fmt.Fprintf(out, "Lexicon: %s (imported %s)\n\n", info.Source, info.ImportedAt.Local().Format(time.DateTime)); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return writeLines(out, report.Lengths(rows))
}

func newExplainCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "explain WORD...",
		Short: "Trace how the target moves through a sequence of guesses",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runExplainCmd,
	}
	cmd.Flags().IntVar(&explainLength, "length", 0, "word length (default: length of the first guess)")
	cmd.Flags().Uint64Var(&explainSeed, "seed", 1, "random seed for tie-breaks")
	cmd.Flags().IntVar(&inspectPoolSize, "pool-size", defaultPoolSize, "most frequent words per length used as targets")
	return cmd
}

func runExplainCmd(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer closeStore(st)

	dict, err := store.LoadDictionary(ctx, st)
	if err != nil {
		return lexiconLoadError(err)
	}
	length := explainLength
	if length == 0 {
		length = len(args[0])
	}
	engine := game.NewEngine(dict, lexiconFor(ctx, st, inspectPoolSize), game.Options{
		MaxGuesses: len(args) + 1,
		Rand:       generator.New(explainSeed),
	})
	steps, err := explain(engine, length, args)
	if err != nil {
		return err
	}
	return writeLines(cmd.OutOrStdout(), report.Explain(steps))
}

// explain plays guesses in a fresh session, recording the adversary's state after each.
func explain(engine *game.Engine, length int, guesses []string) ([]report.Step, error) {
	s, err := engine.NewSession(length)
	if err != nil {
		return nil, lexiconLoadError(err)
	}
	steps := make([]report.Step, 0, len(guesses))
	for _, guess := range guesses {
		if len(guess) > length {
			return nil, fmt.Errorf("guess %q rejected: %s", guess, game.HintTooLong)
		}
		before := len(s.Guesses)
		for _, ev := range game.Events(guess) {
			if s, err = engine.Apply(s, ev); err != nil {
				return nil, err
			}
		}
		if len(s.Guesses) == before {
			return nil, fmt.Errorf("guess %q rejected: %s", guess, s.Hint)
		}
		steps = append(steps, report.StepFrom(s, adversary.Score(s.Target, s.Guesses)))
		if s.Over() {
			break
		}
	}
	return steps, nil
}

func writeLines(w io.Writer, lines []string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}
