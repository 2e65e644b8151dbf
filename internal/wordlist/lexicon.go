package wordlist

import "github.com/samber/lo"

// Lexicon holds frequency-ranked candidate targets grouped by length.
type Lexicon struct {
	byLength map[int][]string
}

// NewLexicon keeps the ranked words that are in dict and not in deny, and caps each
// length at limit words. A limit <= 0 keeps everything.
func NewLexicon(ranked []string, dict *Dictionary, deny []string, limit int) *Lexicon {
	denied := lo.SliceToMap(deny, func(w string) (string, struct{}) { return w, struct{}{} })
	byLength := map[int][]string{}
	for _, w := range Clean(ranked, IsPlayable) {
		if _, ok := denied[w]; ok {
			continue
		}
		if dict != nil && !dict.Contains(w) {
			continue
		}
		if limit > 0 && len(byLength[len(w)]) >= limit {
			continue
		}
		byLength[len(w)] = append(byLength[len(w)], w)
	}
	return &Lexicon{byLength: byLength}
}

// Candidates returns a copy of the candidates of the given length, most frequent first.
func (l *Lexicon) Candidates(length int) ([]string, error) {
	return append([]string(nil), l.byLength[length]...), nil
}
