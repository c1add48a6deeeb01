package scoreboard

import (
	"fmt"
	"strings"
	"time"

	"scoreboard-bot/internal/types"
)

// FormatMeta carries the run metadata the body references.
type FormatMeta struct {
	HubURL        string
	LookbackHours int
	RadarEnabled  bool
	RadarSubs     []string
	Now           time.Time
}

// FormatScoreboard renders the scoreboard body. Pure: same inputs, same
// body. An empty ranking still produces a valid "no notable tickers" body.
func FormatScoreboard(ranked []types.RankedTicker, radar []types.RadarEntry, meta FormatMeta) string {
	var b strings.Builder

	b.WriteString("Daily Ticker Scoreboard\n\n")
	fmt.Fprintf(&b, "Top tickers by unique authors mentioning them in this thread over the last %dh (not financial advice).\n", meta.LookbackHours)
	fmt.Fprintf(&b, "Updated: %s\n\n", meta.Now.UTC().Format("2006-01-02 15:04 UTC"))

	if len(ranked) == 0 {
		b.WriteString("No notable tickers detected yet. Post in the format: TICKER - catalyst - invalidation - 1 data point.\n")
	} else {
		for i, row := range ranked {
			if row.BestLink != "" {
				fmt.Fprintf(&b, "%d. %s — %d unique posters — top comment: %s\n", i+1, row.Symbol, row.UniqueAuthors, row.BestLink)
			} else {
				fmt.Fprintf(&b, "%d. %s — %d unique posters\n", i+1, row.Symbol, row.UniqueAuthors)
			}
		}
	}

	if meta.RadarEnabled {
		b.WriteString("\n")
		fmt.Fprintf(&b, "Viral radar (cross-community, weighted): sourced from post titles and selftext of %s only — comments in those communities are not crawled.\n",
			joinSubs(meta.RadarSubs))
		if len(radar) == 0 {
			b.WriteString("- nothing on the radar right now\n")
		}
		for _, entry := range radar {
			switch {
			case entry.BestLink != "" && entry.BestSub != "":
				fmt.Fprintf(&b, "- %s — radar score %.2f — %s: %s\n", entry.Ticker, entry.Score, entry.BestSub, entry.BestLink)
			case entry.BestLink != "":
				fmt.Fprintf(&b, "- %s — radar score %.2f — %s\n", entry.Ticker, entry.Score, entry.BestLink)
			default:
				fmt.Fprintf(&b, "- %s — radar score %.2f\n", entry.Ticker, entry.Score)
			}
		}
	}

	b.WriteString("\n")
	fmt.Fprintf(&b, "Templates + rules (Hub): %s\n", meta.HubURL)
	return b.String()
}

func joinSubs(subs []string) string {
	if len(subs) == 0 {
		return "the configured communities"
	}
	named := make([]string, len(subs))
	for i, s := range subs {
		named[i] = "r/" + s
	}
	return strings.Join(named, ", ")
}
