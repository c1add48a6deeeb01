package reddit

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scoreboard-bot/internal/types"
)

func TestPublishPostsComment(t *testing.T) {
	var gotThing, gotText string

	mux := http.NewServeMux()
	tokenHandler(mux)
	mux.HandleFunc("/api/comment", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		gotThing = r.PostForm.Get("thing_id")
		gotText = r.PostForm.Get("text")
		fmt.Fprint(w, `{"json":{"errors":[]}}`)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	p := NewPublisher(testClient(srv), false)
	err := p.Publish(context.Background(), types.ThreadRef{ID: "abc"}, "scoreboard body")
	require.NoError(t, err)

	assert.Equal(t, "t3_abc", gotThing)
	assert.Equal(t, "scoreboard body", gotText)
}

func TestPublishAPIErrorsSurface(t *testing.T) {
	mux := http.NewServeMux()
	tokenHandler(mux)
	mux.HandleFunc("/api/comment", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"json":{"errors":[["RATELIMIT","you are doing that too much","ratelimit"]]}}`)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	p := NewPublisher(testClient(srv), false)
	err := p.Publish(context.Background(), types.ThreadRef{ID: "abc"}, "body")
	assert.ErrorIs(t, err, types.ErrPublishFailure)
}

func TestPublishDryRunNeverTouchesNetwork(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected request to %s in dry-run", r.URL.Path)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	p := NewPublisher(testClient(srv), true)
	assert.NoError(t, p.Publish(context.Background(), types.ThreadRef{ID: "abc"}, "body"))
}
