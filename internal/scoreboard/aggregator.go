// Package scoreboard implements the extraction-and-ranking pipeline: it
// consumes raw comments and posts, accumulates per-ticker stats, merges the
// weighted cross-community signal, and renders the final scoreboard body.
package scoreboard

import (
	"strings"

	"scoreboard-bot/internal/extract"
	"scoreboard-bot/internal/types"
)

// Aggregator reduces raw items into per-ticker stats. All mutation is a
// sequential fold in observation order; the best-link update is a running
// max that requires a consistent total order, so this must stay a
// single-writer reduction even if fetching ever goes concurrent.
type Aggregator struct {
	extractor *extract.Extractor
	stats     map[string]*types.TickerStat
}

func NewAggregator(ex *extract.Extractor) *Aggregator {
	return &Aggregator{
		extractor: ex,
		stats:     make(map[string]*types.TickerStat),
	}
}

// ConsumeComments folds top-level comments of the target thread into the
// stats. Each qualifying item contributes its full source weight (1.0 for
// the primary thread) to the weighted count once per ticker, and its author
// to the distinct-author set. Repeats by the same author across items grow
// the weighted count but never the author set.
func (a *Aggregator) ConsumeComments(items []types.RawItem) {
	for _, item := range items {
		if item.Housekeeping || strings.TrimSpace(item.Text) == "" {
			continue
		}
		author := strings.ToLower(item.AuthorID)
		weight := item.SourceWeight
		if weight == 0 {
			weight = 1.0
		}
		for _, ticker := range a.extractor.Extract(item.Text) {
			st := a.stat(ticker)
			if author != "" {
				st.Authors[author] = struct{}{}
			}
			st.WeightedMentions += weight
			a.observeLink(st, item.Permalink, item.Score, "")
		}
	}
}

// Stats exposes the accumulated per-ticker stats for ranking.
func (a *Aggregator) Stats() map[string]*types.TickerStat {
	return a.stats
}

func (a *Aggregator) stat(ticker string) *types.TickerStat {
	st, ok := a.stats[ticker]
	if !ok {
		st = &types.TickerStat{Authors: make(map[string]struct{})}
		a.stats[ticker] = st
	}
	return st
}

// observeLink is the best-evidence running max: replace only on a strictly
// greater score, so ties keep the earliest-seen link.
func (a *Aggregator) observeLink(st *types.TickerStat, permalink string, score int, source string) {
	if permalink == "" {
		return
	}
	if st.BestLink != "" && score <= st.BestLinkScore {
		return
	}
	st.BestLink = permalink
	st.BestLinkScore = score
	st.BestSource = source
}
