package scoreboard

import (
	"math"
	"sort"
	"strings"

	"scoreboard-bot/internal/extract"
	"scoreboard-bot/internal/types"
)

// Upper bound on the engagement factor so a single viral post cannot
// dominate the radar.
const maxEngagement = 12.0

// Weighter folds mentions from secondary communities into the shared stats.
// Cross-community authors never count toward distinct authors; each
// qualifying post adds only its configured weight to the merged score. The
// radar section keeps its own engagement-scaled tally per ticker.
type Weighter struct {
	extractor *extract.Extractor
	agg       *Aggregator
	radar     map[string]*radarAccum
}

type radarAccum struct {
	score    float64
	bestInc  float64
	bestLink string
	bestSub  string
}

func NewWeighter(ex *extract.Extractor, agg *Aggregator) *Weighter {
	return &Weighter{
		extractor: ex,
		agg:       agg,
		radar:     make(map[string]*radarAccum),
	}
}

// ConsumePosts folds recent posts of one community, applying its configured
// weight. Posts still compete for the best-evidence link on the same score
// field as primary comments; a strong cross-community writeup is allowed to
// win the link.
func (w *Weighter) ConsumePosts(sub string, weight float64, items []types.RawItem) {
	for _, item := range items {
		if item.Housekeeping || strings.TrimSpace(item.Text) == "" {
			continue
		}
		tickers := w.extractor.Extract(item.Text)
		if len(tickers) == 0 {
			continue
		}
		inc := weight * engagement(item.Score, item.NumComments)
		for _, ticker := range tickers {
			st := w.agg.stat(ticker)
			st.WeightedMentions += weight
			w.agg.observeLink(st, item.Permalink, item.Score, "r/"+sub)

			r, ok := w.radar[ticker]
			if !ok {
				r = &radarAccum{}
				w.radar[ticker] = r
			}
			r.score += inc
			if r.bestLink == "" || inc > r.bestInc {
				r.bestInc = inc
				r.bestLink = item.Permalink
				r.bestSub = "r/" + sub
			}
		}
	}
}

// Radar returns the top radar entries, score descending with ascending
// symbol as the deterministic tie-break, truncated to maxOut.
func (w *Weighter) Radar(maxOut int) []types.RadarEntry {
	out := make([]types.RadarEntry, 0, len(w.radar))
	for ticker, r := range w.radar {
		out = append(out, types.RadarEntry{
			Ticker:   ticker,
			Score:    math.Round(r.score*100) / 100,
			BestLink: r.bestLink,
			BestSub:  r.bestSub,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].Ticker < out[j].Ticker
	})
	if maxOut > 0 && len(out) > maxOut {
		out = out[:maxOut]
	}
	return out
}

// engagement is a bounded proxy for how much attention a post received.
func engagement(score, numComments int) float64 {
	e := 1.0 + math.Log1p(math.Max(0, float64(score))) + 0.5*math.Log1p(math.Max(0, float64(numComments)))
	return math.Min(e, maxEngagement)
}
