package scoreboard

import (
	"context"
	"fmt"
	"time"

	"scoreboard-bot/internal/extract"
	"scoreboard-bot/internal/interfaces"
	"scoreboard-bot/internal/lexicon"
	"scoreboard-bot/internal/logger"
	"scoreboard-bot/internal/store"
	"scoreboard-bot/internal/types"
)

// Engine orchestrates one build: locate the target thread, fold its
// top-level comments, optionally sweep the secondary communities, rank and
// render. The whole pass is single-threaded; no shared state outlives Build.
type Engine struct {
	cfg       *store.Config
	extractor *extract.Extractor
}

var _ interfaces.Builder = (*Engine)(nil)

func New(cfg *store.Config) *Engine {
	lex := lexicon.New(cfg.Stopwords, cfg.AllowTickers, cfg.DenyTickers)
	return &Engine{
		cfg:       cfg,
		extractor: extract.New(lex),
	}
}

func (e *Engine) Build(ctx context.Context, src interfaces.ContentSource) (*types.Scoreboard, error) {
	lookback := time.Duration(e.cfg.LookbackHours) * time.Hour

	thread, err := src.FindTargetThread(ctx, e.cfg.ThreadTitlePrefix, lookback)
	if err != nil {
		return nil, fmt.Errorf("finding target thread: %w", err)
	}
	logger.Info(ctx, "Target thread located", "title", thread.Title, "permalink", thread.Permalink)

	comments, err := src.ListTopLevelComments(ctx, thread)
	if err != nil {
		return nil, fmt.Errorf("listing top-level comments: %w", err)
	}
	logger.Info(ctx, "Top-level comments fetched", "count", len(comments))

	agg := NewAggregator(e.extractor)
	agg.ConsumeComments(comments)

	var radar []types.RadarEntry
	if e.cfg.CrossSubsEnabled {
		weighter := NewWeighter(e.extractor, agg)
		for _, cs := range e.cfg.CrossSubs {
			posts, err := src.ListRecentPosts(ctx, cs.Name, cs.Mode, cs.LimitPosts, time.Duration(cs.LookbackHours)*time.Hour)
			if err != nil {
				// The radar is a best-effort secondary signal; a failing
				// community never aborts the primary scoreboard.
				logger.Warn(ctx, "Skipping radar community", "sub", cs.Name, "error", err)
				continue
			}
			weighter.ConsumePosts(cs.Name, cs.Weight, posts)
			logger.Debug(ctx, "Radar community folded", "sub", cs.Name, "posts", len(posts), "weight", cs.Weight)
		}
		radar = weighter.Radar(e.cfg.CrossMaxTickers)
	}

	ranked := Rank(agg.Stats(), e.cfg.MaxTickers)
	if len(ranked) == 0 {
		logger.Info(ctx, "No qualifying tickers found, rendering empty scoreboard")
	}

	radarSubs := make([]string, 0, len(e.cfg.CrossSubs))
	for _, cs := range e.cfg.CrossSubs {
		radarSubs = append(radarSubs, cs.Name)
	}

	now := time.Now()
	body := FormatScoreboard(ranked, radar, FormatMeta{
		HubURL:        e.cfg.HubURL,
		LookbackHours: e.cfg.LookbackHours,
		RadarEnabled:  e.cfg.CrossSubsEnabled,
		RadarSubs:     radarSubs,
		Now:           now,
	})

	return &types.Scoreboard{
		Thread:  thread,
		Ranked:  ranked,
		Radar:   radar,
		Body:    body,
		BuiltAt: now,
	}, nil
}
