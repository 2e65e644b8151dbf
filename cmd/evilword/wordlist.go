package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/verte-zerg/evilword/internal/config"
	"github.com/verte-zerg/evilword/internal/game"
	"github.com/verte-zerg/evilword/internal/model"
	"github.com/verte-zerg/evilword/internal/store"
	"github.com/verte-zerg/evilword/internal/wordfreq"
	"github.com/verte-zerg/evilword/internal/wordlist"
)

var (
	wordlistSize  int
	wordlistDict  string
	wordlistDeny  string
	wordlistFreq  string
	wordlistForce bool
	exportLength  int
	exportLimit   int
)

func newWordlistCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wordlist",
		Short: "Build the word lexicon",
	}

	fetchCmd := &cobra.Command{
		Use:   "fetch",
		Short: "Download word frequencies and import them with a dictionary",
		Args:  cobra.NoArgs,
		RunE:  runWordlistFetchCmd,
	}
	fetchCmd.Flags().IntVar(&wordlistSize, "size", defaultWordlistSize, "number of ranked words to keep")
	fetchCmd.Flags().StringVar(&wordlistDict, "dict", config.DefaultDictPath, "dictionary of accepted guesses")
	fetchCmd.Flags().StringVar(&wordlistDeny, "deny", "", "extra words never used as targets")
	fetchCmd.Flags().BoolVar(&wordlistForce, "force", false, "replace an existing lexicon")

	importCmd := &cobra.Command{
		Use:   "import",
		Short: "Import a lexicon from local word lists",
		Args:  cobra.NoArgs,
		RunE:  runWordlistImportCmd,
	}
	importCmd.Flags().StringVar(&wordlistFreq, "freq", "", "frequency list, most frequent first")
	importCmd.Flags().StringVar(&wordlistDict, "dict", config.DefaultDictPath, "dictionary of accepted guesses")
	importCmd.Flags().StringVar(&wordlistDeny, "deny", "", "extra words never used as targets")
	importCmd.Flags().BoolVar(&wordlistForce, "force", false, "replace an existing lexicon")
	_ = importCmd.MarkFlagRequired("freq")

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Print the target candidates for a word length",
		Args:  cobra.NoArgs,
		RunE:  runWordlistExportCmd,
	}
	exportCmd.Flags().IntVar(&exportLength, "length", game.DefaultWordLength, "word length")
	exportCmd.Flags().IntVar(&exportLimit, "pool-size", defaultPoolSize, "cap on exported words")

	cmd.AddCommand(fetchCmd, importCmd, exportCmd)
	return cmd
}

func runWordlistFetchCmd(_ *cobra.Command, _ []string) error {
	if wordlistSize <= 0 {
		return fmt.Errorf("--size must be greater than 0")
	}
	ctx := context.Background()
	st, err := openLexiconForWrite(ctx)
	if err != nil {
		return err
	}
	defer closeStore(st)

	dict, deny, err := loadDictAndDeny()
	if err != nil {
		return err
	}

	cacheDir := config.DefaultWordfreqCacheDir()
	logErrln("Fetching wordfreq metadata...")
	wheel, err := wordfreq.DownloadLatestWheel(ctx, cacheDir)
	if err != nil {
		return fmt.Errorf("failed to download wordfreq wheel: %w", err)
	}
	if wheel.Cached {
		logErrf("Using cached wheel %s\n", wheel.Filename)
	} else {
		logErrf("Downloaded wheel %s\n", wheel.Filename)
	}
	ranked, err := wordfreq.ExtractRanked(wheel.Path, "en", wordlistSize)
	if err != nil {
		return fmt.Errorf("failed to extract word list: %w", err)
	}
	if err := wordfreq.WriteAttribution(cacheDir); err != nil {
		return fmt.Errorf("failed to write attribution: %w", err)
	}

	return importLexicon(ctx, st, model.LexiconImport{
		Ranked:     ranked,
		Dictionary: dict,
		Deny:       deny,
		Source:     "wordfreq " + wheel.Version,
	})
}

func runWordlistImportCmd(_ *cobra.Command, _ []string) error {
	ctx := context.Background()
	st, err := openLexiconForWrite(ctx)
	if err != nil {
		return err
	}
	defer closeStore(st)

	ranked, err := wordlist.LoadWords(wordlistFreq)
	if err != nil {
		return fmt.Errorf("failed to load frequency list: %w", err)
	}
	dict, deny, err := loadDictAndDeny()
	if err != nil {
		return err
	}
	return importLexicon(ctx, st, model.LexiconImport{
		Ranked:     ranked,
		Dictionary: dict,
		Deny:       deny,
		Source:     wordlistFreq,
	})
}

func runWordlistExportCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()
	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer closeStore(st)

	words, err := st.Candidates(ctx, exportLength, exportLimit)
	if err != nil {
		return fmt.Errorf("failed to query candidates: %w", err)
	}
	if len(words) == 0 {
		return fmt.Errorf("no %d-letter candidates: %w", exportLength, wordlist.ErrEmptyList)
	}
	return wordlist.WriteWords(cmd.OutOrStdout(), words)
}

func openLexiconForWrite(ctx context.Context) (*store.Store, error) {
	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return nil, fmt.Errorf("failed to open db: %w", err)
	}
	if wordlistForce {
		return st, nil
	}
	info, err := st.Info(ctx)
	if err != nil {
		closeStore(st)
		return nil, fmt.Errorf("failed to read lexicon info: %w", err)
	}
	if info.Dictionary > 0 {
		closeStore(st)
		return nil, fmt.Errorf("lexicon already exists (%s, %d words); use --force to replace it", info.Source, info.Dictionary)
	}
	return st, nil
}

// loadDictAndDeny reads the dictionary and derives the denylist from its
// capitalised entries plus the optional --deny file.
func loadDictAndDeny() ([]string, []string, error) {
	entries, err := wordlist.LoadWords(wordlistDict)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load dictionary: %w", err)
	}
	deny := wordlist.ProperNames(entries)
	if wordlistDeny != "" {
		extra, err := wordlist.LoadWords(wordlistDeny)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to load denylist: %w", err)
		}
		deny = append(deny, extra...)
	}
	return entries, deny, nil
}

func importLexicon(ctx context.Context, st *store.Store, imp model.LexiconImport) error {
	if err := st.ReplaceLexicon(ctx, imp); err != nil {
		return fmt.Errorf("failed to store lexicon: %w", err)
	}
	info, err := st.Info(ctx)
	if err != nil {
		return fmt.Errorf("failed to read lexicon info: %w", err)
	}
	logErrf("Imported %d ranked words, %d dictionary words, %d denied from %s\n", info.Ranked, info.Dictionary, info.Deny, info.Source)
	return nil
}

func closeStore(st *store.Store) {
	if cerr := st.Close(); cerr != nil {
		logErrf("failed to close db: %v\n", cerr)
	}
}
