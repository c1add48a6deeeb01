// Package lexicon holds the read-only ticker knowledge for a run: which
// token shapes qualify, which tokens are noise, and explicit allow/deny
// overrides. A Lexicon is immutable after construction so extractors built
// on different lexicons can coexist in tests.
package lexicon

import "strings"

// Common words, acronyms and slang that match the ticker shape but are
// almost never ticker mentions. Lookups are case-insensitive.
var defaultStopwords = []string{
	// discussion shorthand
	"DD", "ER", "PT", "ATH", "ATL", "IMO", "IMHO", "TLDR", "TL", "DR",
	"FOMO", "YOLO", "HODL", "FD", "FDS", "LOL", "LMAO", "WTF", "OMG",
	"EDIT", "PSA", "AMA", "ELI", "OP", "RIP", "BTW", "FYI", "ASAP",
	// finance acronyms
	"CEO", "CFO", "CTO", "COO", "CPA", "IPO", "SPAC", "ETF", "EPS",
	"PE", "EV", "ROI", "ROE", "YOY", "QOQ", "EOD", "EOW", "EOY",
	"OTM", "ITM", "ATM", "IV", "THETA", "CALLS", "PUTS", "LEAPS",
	"SI", "CTB", "FTD", "FTDS", "NAV", "AUM", "GDP", "CPI", "FED",
	// institutions and venues
	"SEC", "FDA", "DOJ", "FTC", "IRS", "NYSE", "OTC", "WSB",
	// countries and misc
	"US", "USA", "UK", "EU", "AI", "API", "CNBC", "NEWS",
	// common words that survive the shape rule
	"A", "I", "AT", "BE", "BY", "DO", "GO", "IF", "IN", "IS", "IT",
	"ME", "MY", "NO", "OF", "ON", "OR", "SO", "TO", "UP", "WE",
	"ALL", "AND", "ANY", "ARE", "BIG", "BUY", "CAN", "DAY", "FOR",
	"GET", "HAS", "HOT", "LOW", "MAY", "NEW", "NOT", "NOW", "OUT",
	"OWN", "PUT", "RED", "RUN", "SEE", "THE", "TOO", "TOP", "WAS",
	"WAY", "WHO", "WHY", "YES", "YET", "YOU",
	"BAD", "PAY", "ITS", "DONT", "CANT",
	"BEST", "CALL", "EVER", "GAIN", "GOOD", "HIGH", "HOLD", "HUGE",
	"JUST", "LONG", "LOSS", "MOON", "MUCH", "NEXT", "ONLY", "OVER",
	"PUMP", "REAL", "SELL", "SOON", "THAT", "THIS", "VERY", "WEEK",
	"WHAT", "WHEN", "WILL", "WITH", "FROM", "HAVE", "MORE", "SOME",
	"THEY", "WERE", "YOUR", "THEN", "THAN", "HERE", "EVEN", "BEEN",
	"SAID", "ABOUT", "AGAIN", "BEING", "COULD", "GOING", "GREAT",
	"MAYBE", "MONEY", "PRICE",
	"SHORT", "STILL", "STOCK", "THEIR", "THERE", "THESE", "THINK",
	"TODAY", "WHERE", "WHICH", "WOULD",
}

// Lexicon is the immutable filter set handed to an Extractor.
type Lexicon struct {
	stopwords map[string]struct{}
	allow     map[string]struct{}
	deny      map[string]struct{}
}

// New builds a lexicon from the built-in stopword set extended with extra
// stopwords, plus explicit allow/deny overrides. Allow wins over stopwords;
// deny wins over everything.
func New(extraStopwords, allow, deny []string) *Lexicon {
	l := &Lexicon{
		stopwords: make(map[string]struct{}, len(defaultStopwords)+len(extraStopwords)),
		allow:     toSet(allow),
		deny:      toSet(deny),
	}
	for _, w := range defaultStopwords {
		l.stopwords[w] = struct{}{}
	}
	for _, w := range extraStopwords {
		w = strings.ToUpper(strings.TrimSpace(w))
		if w != "" {
			l.stopwords[w] = struct{}{}
		}
	}
	return l
}

// Default returns a lexicon with only the built-in stopword set.
func Default() *Lexicon {
	return New(nil, nil, nil)
}

// Rejects reports whether a candidate symbol (uppercase, no $ prefix) should
// be dropped as noise.
func (l *Lexicon) Rejects(symbol string) bool {
	if _, denied := l.deny[symbol]; denied {
		return true
	}
	if _, allowed := l.allow[symbol]; allowed {
		return false
	}
	_, stop := l.stopwords[symbol]
	return stop
}

// IsStopword reports whether the token is in the stopword set, ignoring case.
func (l *Lexicon) IsStopword(token string) bool {
	_, ok := l.stopwords[strings.ToUpper(token)]
	return ok
}

func toSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		w = strings.ToUpper(strings.TrimSpace(w))
		if w != "" {
			set[w] = struct{}{}
		}
	}
	return set
}
