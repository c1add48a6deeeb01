package reddit

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/gocolly/colly/v2"

	"scoreboard-bot/internal/interfaces"
	"scoreboard-bot/internal/logger"
	"scoreboard-bot/internal/types"
)

const scrapeBase = "https://old.reddit.com"

// ScrapeSource is a read-only fallback content source that scrapes
// old.reddit.com listing and comment pages. It needs no credentials, so it
// pairs with dry-run mode; publishing still requires the API.
type ScrapeSource struct {
	base      string
	subreddit string
	timeout   time.Duration
	userAgent string
	now       func() time.Time
}

var _ interfaces.ContentSource = (*ScrapeSource)(nil)

func NewScrapeSource(subreddit string) *ScrapeSource {
	return &ScrapeSource{
		base:      scrapeBase,
		subreddit: subreddit,
		timeout:   20 * time.Second,
		userAgent: "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
		now:       time.Now,
	}
}

func (s *ScrapeSource) newCollector(ctx context.Context) *colly.Collector {
	c := colly.NewCollector(colly.MaxDepth(1))
	c.SetRequestTimeout(s.timeout)
	c.OnRequest(func(r *colly.Request) {
		r.Headers.Set("User-Agent", s.userAgent)
	})
	c.OnError(func(r *colly.Response, err error) {
		logger.ErrorWithErr(ctx, "Scrape request failed", err, "url", r.Request.URL.String())
	})
	return c
}

func (s *ScrapeSource) FindTargetThread(ctx context.Context, titlePrefix string, lookback time.Duration) (types.ThreadRef, error) {
	cutoff := s.now().Add(-lookback)

	var found *types.ThreadRef
	c := s.newCollector(ctx)
	c.OnHTML("div.thing.link", func(e *colly.HTMLElement) {
		if found != nil {
			return
		}
		created := timestampAttr(e)
		if created.Before(cutoff) {
			return
		}
		title := strings.TrimSpace(e.DOM.Find("a.title").First().Text())
		if !strings.HasPrefix(title, titlePrefix) {
			return
		}
		found = &types.ThreadRef{
			ID:        strings.TrimPrefix(e.Attr("data-fullname"), "t3_"),
			Title:     title,
			Permalink: permalinkURL(e.Attr("data-permalink")),
			CreatedAt: created,
		}
	})

	if err := c.Visit(s.base + "/r/" + s.subreddit + "/new/"); err != nil {
		return types.ThreadRef{}, fmt.Errorf("%w: %v", types.ErrSourceUnavailable, err)
	}
	c.Wait()

	if found == nil {
		return types.ThreadRef{}, fmt.Errorf("%w: no thread starting with %q in r/%s", types.ErrThreadNotFound, titlePrefix, s.subreddit)
	}
	return *found, nil
}

func (s *ScrapeSource) ListTopLevelComments(ctx context.Context, thread types.ThreadRef) ([]types.RawItem, error) {
	var items []types.RawItem

	c := s.newCollector(ctx)
	// Direct children of the comment area only; nested replies sit inside
	// their parent's child listing and never match this selector.
	c.OnHTML("div.commentarea > div.sitetable > div.thing.comment", func(e *colly.HTMLElement) {
		author := e.Attr("data-author")
		if author == "" {
			return
		}
		body := strings.TrimSpace(e.DOM.Find("div.entry div.md").First().Text())
		items = append(items, types.RawItem{
			AuthorID:     author,
			Text:         body,
			Score:        commentScore(e.DOM),
			Permalink:    permalinkURL(e.Attr("data-permalink")),
			SourceWeight: 1.0,
			CreatedAt:    commentTime(e.DOM),
			Housekeeping: strings.EqualFold(author, "AutoModerator"),
		})
	})

	target := thread.Permalink
	if strings.HasPrefix(target, "https://www.reddit.com") {
		target = s.base + strings.TrimPrefix(target, "https://www.reddit.com")
	}
	if err := c.Visit(target); err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrSourceUnavailable, err)
	}
	c.Wait()

	return items, nil
}

func (s *ScrapeSource) ListRecentPosts(ctx context.Context, subreddit, mode string, limit int, lookback time.Duration) ([]types.RawItem, error) {
	cutoff := s.now().Add(-lookback)

	var items []types.RawItem
	c := s.newCollector(ctx)
	c.OnHTML("div.thing.link", func(e *colly.HTMLElement) {
		if len(items) >= limit {
			return
		}
		created := timestampAttr(e)
		if created.Before(cutoff) {
			return
		}
		// Listing pages expose titles only; selftext would need one visit
		// per post, which the scrape fallback deliberately avoids.
		title := strings.TrimSpace(e.DOM.Find("a.title").First().Text())
		if title == "" {
			return
		}
		score, _ := strconv.Atoi(e.Attr("data-score"))
		numComments, _ := strconv.Atoi(e.Attr("data-comments-count"))
		items = append(items, types.RawItem{
			AuthorID:     e.Attr("data-author"),
			Text:         title,
			Score:        score,
			NumComments:  numComments,
			Permalink:    permalinkURL(e.Attr("data-permalink")),
			CreatedAt:    created,
			Housekeeping: e.DOM.HasClass("stickied"),
		})
	})

	if err := c.Visit(s.base + "/r/" + subreddit + "/" + mode + "/"); err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrSourceUnavailable, err)
	}
	c.Wait()

	return items, nil
}

// timestampAttr reads the millisecond data-timestamp attribute of a thing.
func timestampAttr(e *colly.HTMLElement) time.Time {
	ms, err := strconv.ParseInt(e.Attr("data-timestamp"), 10, 64)
	if err != nil {
		return time.Time{}
	}
	return time.UnixMilli(ms).UTC()
}

// commentScore parses "5 points" style score text; hidden scores become 0.
func commentScore(sel *goquery.Selection) int {
	text := strings.TrimSpace(sel.Find("span.score.unvoted").First().Text())
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return 0
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0
	}
	return n
}

func commentTime(sel *goquery.Selection) time.Time {
	datetime := sel.Find("time").First().AttrOr("datetime", "")
	t, err := time.Parse(time.RFC3339, datetime)
	if err != nil {
		return time.Time{}
	}
	return t.UTC()
}
