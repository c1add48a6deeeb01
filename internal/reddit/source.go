package reddit

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"scoreboard-bot/internal/interfaces"
	"scoreboard-bot/internal/logger"
	"scoreboard-bot/internal/types"
)

// How many newest submissions to scan when hunting for the target thread.
const threadScanLimit = 50

// listing mirrors the parts of a Reddit listing response the source reads.
type listing struct {
	Data struct {
		Children []struct {
			Kind string `json:"kind"`
			Data thing  `json:"data"`
		} `json:"children"`
	} `json:"data"`
}

type thing struct {
	ID            string  `json:"id"`
	Title         string  `json:"title"`
	Selftext      string  `json:"selftext"`
	Author        string  `json:"author"`
	Body          string  `json:"body"`
	Score         int     `json:"score"`
	NumComments   int     `json:"num_comments"`
	Permalink     string  `json:"permalink"`
	CreatedUTC    float64 `json:"created_utc"`
	Stickied      bool    `json:"stickied"`
	Distinguished string  `json:"distinguished"`
}

func (t thing) created() time.Time {
	return time.Unix(int64(t.CreatedUTC), 0).UTC()
}

// Source is the API-backed content source for one home subreddit.
type Source struct {
	client    *Client
	subreddit string
	now       func() time.Time
}

var _ interfaces.ContentSource = (*Source)(nil)

func NewSource(client *Client, subreddit string) *Source {
	return &Source{
		client:    client,
		subreddit: subreddit,
		now:       time.Now,
	}
}

// FindTargetThread scans the newest submissions of the home subreddit and
// returns the first one whose title starts with titlePrefix. Scanning /new
// locally is more reliable than the search endpoint for exact prefixes.
func (s *Source) FindTargetThread(ctx context.Context, titlePrefix string, lookback time.Duration) (types.ThreadRef, error) {
	op := logger.StartOperation(ctx, "reddit.FindTargetThread", "subreddit", s.subreddit)
	defer op.End()
	ctx = op.GetContext()

	query := url.Values{}
	query.Set("limit", strconv.Itoa(threadScanLimit))

	var l listing
	if err := s.client.getJSON(ctx, "/r/"+s.subreddit+"/new", query, &l); err != nil {
		return types.ThreadRef{}, err
	}

	cutoff := s.now().Add(-lookback)
	for _, child := range l.Data.Children {
		post := child.Data
		created := post.created()
		if created.Before(cutoff) {
			// /new is newest-first, nothing older can match.
			break
		}
		if strings.HasPrefix(strings.TrimSpace(post.Title), titlePrefix) {
			return types.ThreadRef{
				ID:        post.ID,
				Title:     post.Title,
				Permalink: permalinkURL(post.Permalink),
				CreatedAt: created,
			}, nil
		}
	}

	return types.ThreadRef{}, fmt.Errorf("%w: no thread starting with %q in r/%s", types.ErrThreadNotFound, titlePrefix, s.subreddit)
}

// ListTopLevelComments returns the direct replies to the thread submission.
// Moderator-distinguished and bot housekeeping comments are flagged, deleted
// comments are dropped.
func (s *Source) ListTopLevelComments(ctx context.Context, thread types.ThreadRef) ([]types.RawItem, error) {
	op := logger.StartOperation(ctx, "reddit.ListTopLevelComments", "thread", thread.ID)
	defer op.End()
	ctx = op.GetContext()

	query := url.Values{}
	query.Set("depth", "1")
	query.Set("limit", "500")

	// The comments endpoint answers with a two-element array: the submission
	// listing and the comment listing.
	var pair []listing
	if err := s.client.getJSON(ctx, "/comments/"+thread.ID, query, &pair); err != nil {
		return nil, err
	}
	if len(pair) < 2 {
		return nil, fmt.Errorf("%w: unexpected comments payload for %s", types.ErrSourceUnavailable, thread.ID)
	}

	items := make([]types.RawItem, 0, len(pair[1].Data.Children))
	for _, child := range pair[1].Data.Children {
		if child.Kind != "t1" {
			continue
		}
		c := child.Data
		if c.Author == "" || c.Author == "[deleted]" {
			continue
		}
		items = append(items, types.RawItem{
			AuthorID:     c.Author,
			Text:         c.Body,
			Score:        c.Score,
			Permalink:    permalinkURL(c.Permalink),
			SourceWeight: 1.0,
			CreatedAt:    c.created(),
			Housekeeping: isHousekeeping(c),
		})
	}
	return items, nil
}

// ListRecentPosts returns posts of a secondary community with title and
// selftext concatenated. Comments are deliberately never fetched here.
func (s *Source) ListRecentPosts(ctx context.Context, subreddit, mode string, limit int, lookback time.Duration) ([]types.RawItem, error) {
	op := logger.StartOperation(ctx, "reddit.ListRecentPosts", "subreddit", subreddit, "mode", mode)
	defer op.End()
	ctx = op.GetContext()

	query := url.Values{}
	query.Set("limit", strconv.Itoa(limit))
	if mode == "top" {
		query.Set("t", "day")
	}

	var l listing
	if err := s.client.getJSON(ctx, "/r/"+subreddit+"/"+mode, query, &l); err != nil {
		return nil, err
	}

	cutoff := s.now().Add(-lookback)
	items := make([]types.RawItem, 0, len(l.Data.Children))
	for _, child := range l.Data.Children {
		post := child.Data
		// hot and top listings are not time-ordered, so filter instead of
		// breaking early.
		if post.created().Before(cutoff) {
			continue
		}
		text := strings.TrimSpace(post.Title + "\n" + post.Selftext)
		items = append(items, types.RawItem{
			AuthorID:     post.Author,
			Text:         text,
			Score:        post.Score,
			NumComments:  post.NumComments,
			Permalink:    permalinkURL(post.Permalink),
			CreatedAt:    post.created(),
			Housekeeping: post.Stickied,
		})
	}
	return items, nil
}

func isHousekeeping(c thing) bool {
	return c.Distinguished == "moderator" || strings.EqualFold(c.Author, "AutoModerator")
}

func permalinkURL(permalink string) string {
	if permalink == "" || strings.HasPrefix(permalink, "http") {
		return permalink
	}
	return "https://www.reddit.com" + permalink
}
