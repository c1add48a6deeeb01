package scoreboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scoreboard-bot/internal/extract"
	"scoreboard-bot/internal/lexicon"
	"scoreboard-bot/internal/types"
)

func newTestExtractor() *extract.Extractor {
	return extract.New(lexicon.Default())
}

func comment(author, text string, score int, permalink string) types.RawItem {
	return types.RawItem{
		AuthorID:     author,
		Text:         text,
		Score:        score,
		Permalink:    permalink,
		SourceWeight: 1.0,
	}
}

func TestDistinctAuthorsAndWeightedMentions(t *testing.T) {
	agg := NewAggregator(newTestExtractor())
	agg.ConsumeComments([]types.RawItem{
		comment("A", "Buying $GME calls", 3, "https://r/c1"),
		comment("B", "GME to the moon", 7, "https://r/c2"),
		comment("A", "gme again", 1, "https://r/c3"),
	})

	st, ok := agg.Stats()["GME"]
	require.True(t, ok, "expected a GME stat")

	// Two unique authors despite A appearing twice; three qualifying items
	// each contribute 1.0.
	assert.Len(t, st.Authors, 2)
	assert.Contains(t, st.Authors, "a")
	assert.Contains(t, st.Authors, "b")
	assert.InDelta(t, 3.0, st.WeightedMentions, 1e-9)
}

func TestAuthorDedupIsCaseInsensitive(t *testing.T) {
	agg := NewAggregator(newTestExtractor())
	agg.ConsumeComments([]types.RawItem{
		comment("DeepValue", "GME", 1, "https://r/c1"),
		comment("deepvalue", "GME", 2, "https://r/c2"),
	})

	st := agg.Stats()["GME"]
	require.NotNil(t, st)
	assert.Len(t, st.Authors, 1)
	assert.InDelta(t, 2.0, st.WeightedMentions, 1e-9)
}

func TestBestLinkRunningMax(t *testing.T) {
	agg := NewAggregator(newTestExtractor())
	agg.ConsumeComments([]types.RawItem{
		comment("A", "GME", 5, "https://r/first"),
		comment("B", "GME", 5, "https://r/tied"),
		comment("C", "GME", 9, "https://r/best"),
		comment("D", "GME", 9, "https://r/late-tie"),
	})

	st := agg.Stats()["GME"]
	require.NotNil(t, st)

	// Strictly-greater replacement: ties keep the earliest-seen link.
	assert.Equal(t, "https://r/best", st.BestLink)
	assert.Equal(t, 9, st.BestLinkScore)
}

func TestSkipsHousekeepingAndEmptyItems(t *testing.T) {
	agg := NewAggregator(newTestExtractor())
	agg.ConsumeComments([]types.RawItem{
		{AuthorID: "AutoModerator", Text: "GME daily rules", Housekeeping: true},
		comment("A", "   \n ", 1, "https://r/c1"),
		comment("B", "GME", 1, "https://r/c2"),
	})

	st := agg.Stats()["GME"]
	require.NotNil(t, st)
	assert.Len(t, st.Authors, 1)
	assert.InDelta(t, 1.0, st.WeightedMentions, 1e-9)
}

func TestNoTickersYieldsNoStats(t *testing.T) {
	agg := NewAggregator(newTestExtractor())
	agg.ConsumeComments([]types.RawItem{
		comment("A", "just general chatter about the market", 1, "https://r/c1"),
	})

	assert.Empty(t, agg.Stats())
}
