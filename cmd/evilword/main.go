// Package main provides the CLI entrypoint for evilword.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/evilword/internal/config"
	"github.com/verte-zerg/evilword/internal/game"
	"github.com/verte-zerg/evilword/internal/generator"
	"github.com/verte-zerg/evilword/internal/headless"
	"github.com/verte-zerg/evilword/internal/logging"
	"github.com/verte-zerg/evilword/internal/model"
	"github.com/verte-zerg/evilword/internal/store"
	"github.com/verte-zerg/evilword/internal/tui"
)

const (
	defaultPoolSize     = 2000
	defaultWordlistSize = 100000
)

var (
	playLength     int
	playMaxGuesses int
	playPoolSize   int
	playSeed       uint64
	playHeadless   bool
	playLogLevel   string
)

func main() {
	_ = godotenv.Load()
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "evilword",
		Short:         "Word guessing game that keeps changing its answer",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runPlayCmd,
	}
	addPlayFlags(rootCmd)

	playCmd := &cobra.Command{
		Use:   "play",
		Short: "Start a game (default command)",
		Args:  cobra.NoArgs,
		RunE:  runPlayCmd,
	}
	addPlayFlags(playCmd)

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newWordlistCmd())
	rootCmd.AddCommand(newLengthsCmd())
	rootCmd.AddCommand(newExplainCmd())
	return rootCmd
}

func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&playLength, "length", game.DefaultWordLength, "word length (4-11)")
	cmd.Flags().IntVar(&playMaxGuesses, "max-guesses", game.DefaultMaxGuesses, "guesses per game")
	cmd.Flags().IntVar(&playPoolSize, "pool-size", defaultPoolSize, "most frequent words per length used as targets")
	cmd.Flags().Uint64Var(&playSeed, "seed", 0, "random seed (0 = time based)")
	cmd.Flags().BoolVar(&playHeadless, "headless", false, "line-based play without the TUI")
	cmd.Flags().StringVar(&playLogLevel, "log-level", logging.DefaultLevel, "log level (debug, info, warn, error)")
}

func resolvePlayConfig(cmd *cobra.Command) (model.Config, error) {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return model.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	applyIntConfig(cmd, "length", &playLength, fileCfg.Game.WordLength)
	applyIntConfig(cmd, "max-guesses", &playMaxGuesses, fileCfg.Game.MaxGuesses)
	applyIntConfig(cmd, "pool-size", &playPoolSize, fileCfg.Game.PoolSize)
	applyUintConfig(cmd, "seed", &playSeed, fileCfg.Game.Seed)
	applyStringConfig(cmd, "log-level", &playLogLevel, fileCfg.Log.Level)
	if env := strings.TrimSpace(os.Getenv("LOG_LEVEL")); env != "" {
		applyStringConfig(cmd, "log-level", &playLogLevel, &env)
	}

	cfg := model.Config{
		WordLength: playLength,
		MaxGuesses: playMaxGuesses,
		PoolSize:   playPoolSize,
		Seed:       playSeed,
		LogLevel:   playLogLevel,
		Headless:   playHeadless,
	}
	if err := validateConfig(cfg); err != nil {
		return model.Config{}, err
	}
	return cfg, nil
}

func runPlayCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := resolvePlayConfig(cmd)
	if err != nil {
		return err
	}
	useHeadless := cfg.Headless || !term.IsTerminal(int(os.Stdin.Fd()))

	if useHeadless {
		if err := logging.Setup(cfg.LogLevel, logging.Console(os.Stderr)); err != nil {
			return err
		}
	} else {
		logFile, err := logging.OpenFile(config.DefaultLogPath())
		if err != nil {
			return err
		}
		defer func() {
			if cerr := logFile.Close(); cerr != nil {
				logErrf("failed to close log file: %v\n", cerr)
			}
		}()
		if err := logging.Setup(cfg.LogLevel, logFile); err != nil {
			return err
		}
	}

	ctx := context.Background()
	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	dict, err := store.LoadDictionary(ctx, st)
	if err != nil {
		return lexiconLoadError(err)
	}
	engine := game.NewEngine(dict, lexiconFor(ctx, st, cfg.PoolSize), game.Options{
		MaxGuesses: cfg.MaxGuesses,
		Rand:       generator.New(cfg.Seed),
	})
	session, err := engine.NewSession(cfg.WordLength)
	if err != nil {
		return lexiconLoadError(err)
	}
	log.Info().
		Str("session", session.ID).
		Int("length", cfg.WordLength).
		Int("dictionary", dict.Len()).
		Bool("headless", useHeadless).
		Msg("starting")

	if useHeadless {
		return headless.NewRunner(engine, session, cmd.OutOrStdout()).Run(cmd.InOrStdin())
	}
	program := tea.NewProgram(tui.NewModel(engine, dict, session), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

// lexiconFor binds the store lexicon to ctx for the game engine.
func lexiconFor(ctx context.Context, st *store.Store, poolSize int) game.Lexicon {
	lex := store.NewLexicon(st, poolSize)
	return game.LexiconFunc(func(length int) ([]string, error) {
		return lex.Candidates(ctx, length)
	})
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# evilword configuration
# Uncomment a value to enable it. CLI flags override config values.

[game]
# word-length = %d        # Letters per word (%d-%d)
# max-guesses = %d        # Guesses per game
# pool-size = %d       # Most frequent words per length used as targets
# seed = 0                # Random seed (0 = time based)

[log]
# level = %q          # debug, info, warn, error
`,
		game.DefaultWordLength,
		game.MinWordLength,
		game.MaxWordLength,
		game.DefaultMaxGuesses,
		defaultPoolSize,
		logging.DefaultLevel,
	)
}

func validateConfig(cfg model.Config) error {
	if cfg.WordLength < game.MinWordLength || cfg.WordLength > game.MaxWordLength {
		return fmt.Errorf("--length must be between %d and %d", game.MinWordLength, game.MaxWordLength)
	}
	if cfg.MaxGuesses < 1 {
		return fmt.Errorf("--max-guesses must be >= 1")
	}
	if cfg.PoolSize < 1 {
		return fmt.Errorf("--pool-size must be >= 1")
	}
	return nil
}

func lexiconLoadError(err error) error {
	lines := []string{fmt.Sprintf("failed to load lexicon: %v", err)}
	if errors.Is(err, store.ErrEmptyLexicon) || errors.Is(err, game.ErrNoCandidates) {
		lines = append(lines,
			fmt.Sprintf("expected lexicon at: %s", config.DefaultDBPath()),
			"Download: evilword wordlist fetch",
			"Or import local files: evilword wordlist import --freq FILE --dict FILE",
			"Check coverage: evilword lengths",
		)
	}
	return fmt.Errorf("%s", strings.Join(lines, "\n"))
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyUintConfig(cmd *cobra.Command, name string, target, value *uint64) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}

func logErrln(args ...any) {
	if _, err := fmt.Fprintln(os.Stderr, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
