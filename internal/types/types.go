package types

import "time"

// ThreadRef identifies the discussion thread a scoreboard is built from.
type ThreadRef struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Permalink string    `json:"permalink"`
	CreatedAt time.Time `json:"created_at"`
}

// RawItem is a single comment or post as supplied by the content source.
// Immutable once fetched.
type RawItem struct {
	AuthorID     string
	Text         string
	Score        int
	NumComments  int
	Permalink    string
	SourceWeight float64
	CreatedAt    time.Time
	Housekeeping bool // flagged by the source for bot/housekeeping items
}

// Mention is one (item, ticker) pair produced by extraction. An item never
// yields the same ticker twice.
type Mention struct {
	Ticker       string
	AuthorID     string
	Permalink    string
	Score        int
	SourceWeight float64
}

// TickerStat accumulates mentions for one ticker over a single run.
type TickerStat struct {
	Authors          map[string]struct{}
	WeightedMentions float64
	BestLink         string
	BestLinkScore    int
	BestSource       string
}

// RankedTicker is one row of the final scoreboard.
type RankedTicker struct {
	Symbol           string  `json:"symbol"`
	UniqueAuthors    int     `json:"unique_authors"`
	WeightedMentions float64 `json:"weighted_mentions"`
	BestLink         string  `json:"best_link,omitempty"`
	BestLinkScore    int     `json:"best_link_score"`
}

// RadarEntry is one row of the cross-community viral radar.
type RadarEntry struct {
	Ticker   string  `json:"ticker"`
	Score    float64 `json:"score"`
	BestLink string  `json:"best_post,omitempty"`
	BestSub  string  `json:"best_src,omitempty"`
}

// Scoreboard is the final build result handed to the publisher.
type Scoreboard struct {
	Thread  ThreadRef      `json:"thread"`
	Ranked  []RankedTicker `json:"ranked"`
	Radar   []RadarEntry   `json:"radar,omitempty"`
	Body    string         `json:"body"`
	BuiltAt time.Time      `json:"built_at"`
}
