// Package wordlist loads and cleans word lists.
package wordlist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrEmptyList is returned when a word list holds no words.
var ErrEmptyList = errors.New("word list is empty")

// LoadWords reads one word per line from the provided file path.
func LoadWords(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only word list.
			_ = cerr
		}
	}()

	words, err := ReadWords(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return words, nil
}

// ReadWords reads one word per line, skipping blank lines and '#' comments.
// Only the first field of each line is kept, so "word count" frequency files work too.
func ReadWords(r io.Reader) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, strings.Fields(line)[0])
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(words) == 0 {
		return nil, ErrEmptyList
	}
	return words, nil
}

// WriteWords writes one word per line.
func WriteWords(w io.Writer, words []string) error {
	bw := bufio.NewWriter(w)
	for _, word := range words {
		if _, err := fmt.Fprintln(bw, word); err != nil {
			return err
		}
	}
	return bw.Flush()
}
