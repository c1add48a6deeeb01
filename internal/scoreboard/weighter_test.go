package scoreboard

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scoreboard-bot/internal/types"
)

func post(author, text string, score, numComments int, permalink string) types.RawItem {
	return types.RawItem{
		AuthorID:    author,
		Text:        text,
		Score:       score,
		NumComments: numComments,
		Permalink:   permalink,
	}
}

func TestCrossSourceNeverTouchesDistinctAuthors(t *testing.T) {
	ex := newTestExtractor()
	agg := NewAggregator(ex)
	agg.ConsumeComments([]types.RawItem{
		comment("A", "GME", 2, "https://r/c1"),
	})

	w := NewWeighter(ex, agg)
	w.ConsumePosts("stocks", 0.35, []types.RawItem{
		post("outsider1", "GME squeeze thesis", 100, 50, "https://r/p1"),
		post("outsider2", "GME again", 10, 5, "https://r/p2"),
	})

	st := agg.Stats()["GME"]
	require.NotNil(t, st)

	assert.Len(t, st.Authors, 1, "cross-community authors must not count")
	// 1.0 primary + 0.35 per qualifying post.
	assert.InDelta(t, 1.7, st.WeightedMentions, 1e-9)
}

func TestCrossSourceCanWinBestLink(t *testing.T) {
	ex := newTestExtractor()
	agg := NewAggregator(ex)
	agg.ConsumeComments([]types.RawItem{
		comment("A", "GME", 2, "https://r/comment"),
	})

	w := NewWeighter(ex, agg)
	w.ConsumePosts("stocks", 0.35, []types.RawItem{
		post("outsider", "big GME writeup", 500, 200, "https://r/writeup"),
	})

	st := agg.Stats()["GME"]
	require.NotNil(t, st)
	assert.Equal(t, "https://r/writeup", st.BestLink)
	assert.Equal(t, "r/stocks", st.BestSource)
}

func TestRadarScoresAndOrdering(t *testing.T) {
	ex := newTestExtractor()
	w := NewWeighter(ex, NewAggregator(ex))

	w.ConsumePosts("stocks", 0.5, []types.RawItem{
		post("p1", "AMC squeeze", 20, 10, "https://r/amc"),
		post("p2", "BBBY thesis", 20, 10, "https://r/bbby"),
	})

	radar := w.Radar(8)
	require.Len(t, radar, 2)

	// Equal scores resolve by ascending symbol.
	assert.Equal(t, "AMC", radar[0].Ticker)
	assert.Equal(t, "BBBY", radar[1].Ticker)

	wantScore := 0.5 * (1 + math.Log1p(20) + 0.5*math.Log1p(10))
	assert.InDelta(t, wantScore, radar[0].Score, 0.01)
}

func TestRadarTruncation(t *testing.T) {
	ex := newTestExtractor()
	w := NewWeighter(ex, NewAggregator(ex))

	w.ConsumePosts("stocks", 0.4, []types.RawItem{
		post("p1", "AMC BBBY GME NOK PLTR", 10, 2, "https://r/p1"),
	})

	radar := w.Radar(3)
	assert.Len(t, radar, 3)
}

func TestEngagementIsBounded(t *testing.T) {
	assert.InDelta(t, 1.0, engagement(0, 0), 1e-9)
	assert.InDelta(t, maxEngagement, engagement(1_000_000, 1_000_000), 1e-9)
	assert.LessOrEqual(t, engagement(-5, -5), 1.0)
}

func TestWeighterSkipsHousekeepingPosts(t *testing.T) {
	ex := newTestExtractor()
	agg := NewAggregator(ex)
	w := NewWeighter(ex, agg)

	w.ConsumePosts("stocks", 0.35, []types.RawItem{
		{AuthorID: "mod", Text: "GME megathread", Housekeeping: true, Permalink: "https://r/p1"},
	})

	assert.Empty(t, agg.Stats())
	assert.Empty(t, w.Radar(8))
}
