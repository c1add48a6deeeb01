package scoreboard

import (
	"sort"

	"scoreboard-bot/internal/types"
)

// Rank orders the accumulated stats into scoreboard rows. Community breadth
// (distinct authors) is the headline signal; weighted mentions, then best
// link score break ties, and ascending symbol order makes the result fully
// deterministic regardless of map iteration order. Truncates to maxCount.
func Rank(stats map[string]*types.TickerStat, maxCount int) []types.RankedTicker {
	out := make([]types.RankedTicker, 0, len(stats))
	for symbol, st := range stats {
		out = append(out, types.RankedTicker{
			Symbol:           symbol,
			UniqueAuthors:    len(st.Authors),
			WeightedMentions: st.WeightedMentions,
			BestLink:         st.BestLink,
			BestLinkScore:    st.BestLinkScore,
		})
	}

	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.UniqueAuthors != b.UniqueAuthors {
			return a.UniqueAuthors > b.UniqueAuthors
		}
		if a.WeightedMentions != b.WeightedMentions {
			return a.WeightedMentions > b.WeightedMentions
		}
		if a.BestLinkScore != b.BestLinkScore {
			return a.BestLinkScore > b.BestLinkScore
		}
		return a.Symbol < b.Symbol
	})

	if maxCount > 0 && len(out) > maxCount {
		out = out[:maxCount]
	}
	return out
}
