// Package store handles SQLite persistence of the lexicon.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/verte-zerg/evilword/internal/model"
	"github.com/verte-zerg/evilword/internal/wordlist"

	_ "modernc.org/sqlite" // SQLite driver.
)

// Store wraps SQLite access for the dictionary, frequency ranks and denylist.
type Store struct {
	db *sql.DB
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS dictionary (
			word TEXT PRIMARY KEY,
			length INTEGER NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS frequency (
			word TEXT PRIMARY KEY,
			rank INTEGER NOT NULL,
			length INTEGER NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS denylist (
			word TEXT PRIMARY KEY
		);`,
		`CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_frequency_length_rank ON frequency(length, rank);`,
		`CREATE INDEX IF NOT EXISTS idx_dictionary_length ON dictionary(length);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// ReplaceLexicon swaps the stored lexicon for imp in one transaction. Dictionary
// and denylist entries are folded to lower case, so capitalised names stay valid
// guesses. Entries that are not a-z are skipped; duplicates keep their first rank.
func (s *Store) ReplaceLexicon(ctx context.Context, imp model.LexiconImport) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			if rerr := tx.Rollback(); rerr != nil {
				// Best-effort rollback.
				_ = rerr
			}
		}
	}()

	for _, table := range []string{"dictionary", "frequency", "denylist", "meta"} {
		if _, err = tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	if err = insertWords(ctx, tx, `INSERT INTO dictionary (word, length) VALUES (?, ?)`,
		wordlist.Clean(foldCase(imp.Dictionary), wordlist.IsPlayable), func(i int, w string) []any {
			return []any{w, len(w)}
		}); err != nil {
		return fmt.Errorf("failed to insert dictionary: %w", err)
	}
	if err = insertWords(ctx, tx, `INSERT INTO frequency (word, rank, length) VALUES (?, ?, ?)`,
		wordlist.Clean(imp.Ranked, wordlist.IsPlayable), func(i int, w string) []any {
			return []any{w, i, len(w)}
		}); err != nil {
		return fmt.Errorf("failed to insert frequency list: %w", err)
	}
	if err = insertWords(ctx, tx, `INSERT INTO denylist (word) VALUES (?)`,
		wordlist.Clean(foldCase(imp.Deny), wordlist.IsPlayable), func(i int, w string) []any {
			return []any{w}
		}); err != nil {
		return fmt.Errorf("failed to insert denylist: %w", err)
	}

	meta := map[string]string{
		"source":      imp.Source,
		"imported_at": time.Now().UTC().Format(time.RFC3339Nano),
	}
	for key, value := range meta {
		if _, err = tx.ExecContext(ctx, `INSERT INTO meta (key, value) VALUES (?, ?)`, key, value); err != nil {
			return fmt.Errorf("failed to write meta: %w", err)
		}
	}

	return tx.Commit()
}

func foldCase(words []string) []string {
	return lo.Map(words, func(w string, _ int) string { return strings.ToLower(w) })
}

func insertWords(ctx context.Context, tx *sql.Tx, query string, words []string, args func(int, string) []any) error {
	if len(words) == 0 {
		return nil
	}
	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := stmt.Close(); cerr != nil {
			// Best-effort statement close.
			_ = cerr
		}
	}()
	for i, w := range words {
		if _, err := stmt.ExecContext(ctx, args(i, w)...); err != nil {
			return err
		}
	}
	return nil
}

// Candidates returns up to limit target words of the given length, most frequent
// first, that are in the dictionary and not denied. A limit <= 0 means no cap.
func (s *Store) Candidates(ctx context.Context, length, limit int) ([]string, error) {
	if limit <= 0 {
		limit = -1
	}
	return s.queryWords(ctx, `SELECT f.word
		FROM frequency f
		JOIN dictionary d ON d.word = f.word
		LEFT JOIN denylist x ON x.word = f.word
		WHERE f.length = ? AND x.word IS NULL
		ORDER BY f.rank ASC
		LIMIT ?`, length, limit)
}

// Dictionary returns every accepted guess word.
func (s *Store) Dictionary(ctx context.Context) ([]string, error) {
	return s.queryWords(ctx, `SELECT word FROM dictionary ORDER BY word`)
}

// Denylist returns the denied target words.
func (s *Store) Denylist(ctx context.Context) ([]string, error) {
	return s.queryWords(ctx, `SELECT word FROM denylist ORDER BY word`)
}

func (s *Store) queryWords(ctx context.Context, query string, args ...any) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var words []string
	for rows.Next() {
		var w string
		if err := rows.Scan(&w); err != nil {
			return nil, err
		}
		words = append(words, w)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return words, nil
}

// LengthSummary counts candidates and dictionary words for each length in [minLen, maxLen].
// Candidate counts are capped at limit when limit > 0.
func (s *Store) LengthSummary(ctx context.Context, minLen, maxLen, limit int) ([]model.LengthSummary, error) {
	query := `SELECT
		(SELECT COUNT(*) FROM frequency f
			JOIN dictionary d ON d.word = f.word
			LEFT JOIN denylist x ON x.word = f.word
			WHERE f.length = ? AND x.word IS NULL),
		(SELECT COUNT(*) FROM dictionary WHERE length = ?)`
	var out []model.LengthSummary
	for n := minLen; n <= maxLen; n++ {
		row := model.LengthSummary{Length: n}
		if err := s.db.QueryRowContext(ctx, query, n, n).Scan(&row.Candidates, &row.Dictionary); err != nil {
			return nil, err
		}
		if limit > 0 && row.Candidates > limit {
			row.Candidates = limit
		}
		out = append(out, row)
	}
	return out, nil
}

// Info reports where the stored lexicon came from and how large it is.
// A store that was never imported returns a zero ImportedAt.
func (s *Store) Info(ctx context.Context) (model.LexiconInfo, error) {
	var info model.LexiconInfo
	err := s.db.QueryRowContext(ctx, `SELECT
		(SELECT COUNT(*) FROM frequency),
		(SELECT COUNT(*) FROM dictionary),
		(SELECT COUNT(*) FROM denylist)`).Scan(&info.Ranked, &info.Dictionary, &info.Deny)
	if err != nil {
		return model.LexiconInfo{}, err
	}

	rows, err := s.db.QueryContext(ctx, `SELECT key, value FROM meta`)
	if err != nil {
		return model.LexiconInfo{}, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return model.LexiconInfo{}, err
		}
		switch key {
		case "source":
			info.Source = value
		case "imported_at":
			parsed, err := time.Parse(time.RFC3339Nano, value)
			if err != nil {
				return model.LexiconInfo{}, err
			}
			info.ImportedAt = parsed
		}
	}
	if err := rows.Err(); err != nil {
		return model.LexiconInfo{}, err
	}
	return info, nil
}

// ErrEmptyLexicon is returned when the store holds no words.
var ErrEmptyLexicon = errors.New("lexicon is empty")

// Lexicon serves game candidates from the store, caching each length after the first query.
type Lexicon struct {
	store *Store
	limit int
	cache map[int][]string
}

// NewLexicon returns a Lexicon capped at limit candidates per length.
func NewLexicon(st *Store, limit int) *Lexicon {
	return &Lexicon{store: st, limit: limit, cache: map[int][]string{}}
}

// Candidates returns a copy of the cached candidates for length.
func (l *Lexicon) Candidates(ctx context.Context, length int) ([]string, error) {
	words, ok := l.cache[length]
	if !ok {
		var err error
		words, err = l.store.Candidates(ctx, length, l.limit)
		if err != nil {
			return nil, fmt.Errorf("failed to query candidates: %w", err)
		}
		l.cache[length] = words
	}
	return append([]string(nil), words...), nil
}

// LoadDictionary builds the in-memory guess dictionary from the store.
func LoadDictionary(ctx context.Context, st *Store) (*wordlist.Dictionary, error) {
	words, err := st.Dictionary(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load dictionary: %w", err)
	}
	if len(words) == 0 {
		return nil, ErrEmptyLexicon
	}
	return wordlist.NewDictionary(words), nil
}
