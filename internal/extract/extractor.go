// Package extract turns free-form text into a clean set of ticker candidates.
package extract

import (
	"regexp"
	"sort"
	"strings"

	"scoreboard-bot/internal/lexicon"
)

// Shape rule: 1-5 uppercase letters, optionally preceded by a single $.
// Tokens carrying digits ("ABC123") fail the anchored match as a whole.
var tickerShape = regexp.MustCompile(`^\$?[A-Z]{1,5}$`)

// Extractor extracts ticker symbols from one text blob. It is pure and
// side-effect free; the same text always yields the same set.
type Extractor struct {
	lex *lexicon.Lexicon
}

func New(lex *lexicon.Lexicon) *Extractor {
	return &Extractor{lex: lex}
}

// Extract returns the deduplicated, sorted set of qualifying ticker symbols
// in text, uppercased and with any $ prefix stripped. Malformed or empty
// text yields an empty result, never an error.
//
// A bare single letter is rejected; the same letter is accepted when
// $-prefixed ($F, $T), which also exempts it from the stopword check.
func (e *Extractor) Extract(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	seen := map[string]struct{}{}
	upper := strings.ToUpper(text)
	for _, token := range strings.FieldsFunc(upper, isTokenBoundary) {
		symbol, ok := e.qualify(token)
		if !ok {
			continue
		}
		seen[symbol] = struct{}{}
	}

	if len(seen) == 0 {
		return nil
	}
	out := make([]string, 0, len(seen))
	for symbol := range seen {
		out = append(out, symbol)
	}
	sort.Strings(out)
	return out
}

// qualify applies the shape, single-letter and stopword rules to one token.
func (e *Extractor) qualify(token string) (string, bool) {
	if !tickerShape.MatchString(token) {
		return "", false
	}

	symbol, dollar := strings.CutPrefix(token, "$")
	if len(symbol) == 1 {
		// Single-letter tickers only count when written as $F, $T, etc.
		// The explicit $ is the author saying "this is a ticker", so the
		// stopword set does not apply.
		if !dollar {
			return "", false
		}
		return symbol, true
	}

	if e.lex.Rejects(symbol) {
		return "", false
	}
	return symbol, true
}

// isTokenBoundary splits on anything that cannot be part of a ticker token.
// Digits stay attached so "ABC123" is judged (and rejected) as one token.
func isTokenBoundary(r rune) bool {
	return r != '$' && (r < 'A' || r > 'Z') && (r < '0' || r > '9')
}
