package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"scoreboard-bot/internal/interfaces"
	"scoreboard-bot/internal/logger"
	"scoreboard-bot/internal/reddit"
	"scoreboard-bot/internal/reddit/redditobs"
	"scoreboard-bot/internal/scoreboard"
	"scoreboard-bot/internal/scoreboard/boardobs"
	"scoreboard-bot/internal/store"
	"scoreboard-bot/internal/trace"
	"scoreboard-bot/internal/types"
)

// run executes one scoreboard pass. Scheduling is owned by whatever invokes
// the binary; there is no internal loop and no state survives the run.
func run(cmd *cobra.Command, _ []string) error {
	if err := initializeSystem(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	defer func() { _ = trace.Shutdown(context.Background()) }()

	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("dry-run") {
		cfg.DryRun = dryRun
	}
	if cfg.DryRun {
		logger.Warn(ctx, "Running in dry-run mode, nothing will be posted")
	}

	src, pub, err := initializeCollaborators(ctx, cfg)
	if err != nil {
		return err
	}

	builder := boardobs.Wrap(scoreboard.New(cfg))
	board, err := builder.Build(ctx, src)
	if err != nil {
		if errors.Is(err, types.ErrThreadNotFound) {
			logger.Warn(ctx, "No target thread found, nothing to do", "title_prefix", cfg.ThreadTitlePrefix)
		}
		return err
	}

	fmt.Println("=== TARGET THREAD ===")
	fmt.Println(board.Thread.Title)
	fmt.Println(board.Thread.Permalink)
	fmt.Println()
	fmt.Println("=== COMMENT PREVIEW ===")
	fmt.Println(board.Body)

	if err := pub.Publish(ctx, board.Thread, board.Body); err != nil {
		return err
	}
	if !cfg.DryRun {
		logger.Info(ctx, "Scoreboard published", "thread", board.Thread.Permalink, "ranked", len(board.Ranked))
	}
	return nil
}

// initializeSystem loads the environment and brings up logger and tracer.
func initializeSystem() error {
	_ = godotenv.Load()

	if err := logger.Init(); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := trace.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize tracer: %v\n", err)
	}

	return nil
}

// loadConfig loads the configuration and surfaces any load-time warnings
// (weight guardrail breaches, clamping).
func loadConfig(ctx context.Context) (*store.Config, error) {
	cfg, err := store.LoadConfig(cfgPath)
	if err != nil {
		logger.ErrorWithErr(ctx, "Failed to load config", err, "path", cfgPath)
		return nil, err
	}
	for _, warning := range cfg.Warnings {
		logger.Warn(ctx, "Config warning", "detail", warning)
	}
	return cfg, nil
}

// initializeCollaborators builds the content source and publisher with
// observability middleware.
func initializeCollaborators(ctx context.Context, cfg *store.Config) (interfaces.ContentSource, interfaces.Publisher, error) {
	creds := reddit.CredentialsFromEnv()

	var src interfaces.ContentSource
	switch cfg.Source {
	case "SCRAPE":
		if !cfg.DryRun && !creds.Complete() {
			return nil, nil, errors.New("scrape source can only publish with API credentials; set dry_run or provide REDDIT_* env vars")
		}
		logger.Info(ctx, "Using scrape content source", "subreddit", cfg.Subreddit)
		src = reddit.NewScrapeSource(cfg.Subreddit)
	default:
		if !creds.Complete() {
			return nil, nil, errors.New("missing Reddit API credentials; set REDDIT_CLIENT_ID, REDDIT_CLIENT_SECRET, REDDIT_USERNAME, REDDIT_PASSWORD and REDDIT_USER_AGENT")
		}
		logger.Info(ctx, "Using API content source", "subreddit", cfg.Subreddit)
		src = reddit.NewSource(reddit.NewClient(creds), cfg.Subreddit)
	}

	pub := reddit.NewPublisher(reddit.NewClient(creds), cfg.DryRun)
	return redditobs.Wrap(src), pub, nil
}
