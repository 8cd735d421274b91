package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"runtime"
	"strconv"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"

	"github.com/umputun/newsdedup/pkg/config"
	"github.com/umputun/newsdedup/pkg/dedup"
	"github.com/umputun/newsdedup/pkg/domain"
	"github.com/umputun/newsdedup/pkg/feed"
	"github.com/umputun/newsdedup/pkg/repository"
	"github.com/umputun/newsdedup/pkg/scheduler"
	"github.com/umputun/newsdedup/pkg/service"
	"github.com/umputun/newsdedup/server"
)

// Opts with all CLI options
type Opts struct {
	Config  string `short:"c" long:"config" env:"CONFIG" description:"config file, defaults are used if not set"`
	DB      string `long:"db" env:"DB" description:"database DSN, overrides config"`
	EnvFile string `long:"env" env:"ENV_FILE" description:"env file loaded before config"`

	Pairs     PairsCmd     `command:"pairs" description:"report duplicate pairs"`
	Dedup     DedupCmd     `command:"dedup" description:"remove duplicates from the collection"`
	Import    ImportCmd    `command:"import" description:"import articles from JSON file"`
	Search    SearchCmd    `command:"search" description:"search articles by title, body and category"`
	Fetch     struct{}     `command:"fetch" description:"fetch configured feeds"`
	Stats     struct{}     `command:"stats" description:"show collection statistics"`
	Favorite  FavoriteCmd  `command:"favorite" description:"toggle favorite flag of an article"`
	Favorites struct{}     `command:"favorites" description:"list favorite articles"`
	Serve     struct{}     `command:"serve" description:"run HTTP API server"`

	// Common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

// PairsCmd options of pairs command
type PairsCmd struct {
	Threshold string `short:"t" long:"threshold" description:"similarity threshold in [0,1], config value if not set"`
	Mode      string `short:"m" long:"mode" choice:"text" choice:"keywords" description:"similarity basis, config value if not set"`
	Limit     int    `short:"n" long:"limit" default:"20" description:"max pairs to print, 0 for all"`
}

// DedupCmd options of dedup command
type DedupCmd struct {
	Threshold string `short:"t" long:"threshold" description:"similarity threshold in [0,1], config value if not set"`
	DryRun    bool   `long:"dry-run" description:"report what would be removed without removing"`
}

// ImportCmd options of import command
type ImportCmd struct {
	File string `short:"f" long:"file" required:"true" description:"JSON file with a list of articles, or an object with \"articles\" or \"news\" list"`
}

// SearchCmd options of search command
type SearchCmd struct {
	Query string `short:"q" long:"query" required:"true" description:"search terms"`
	Limit int    `short:"n" long:"limit" default:"20" description:"max results, 0 for all"`
}

// FavoriteCmd options of favorite command
type FavoriteCmd struct {
	ID string `long:"id" required:"true" description:"article id"`
}

var revision = "unknown"

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	parser.SubcommandsOptional = true
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	if parser.Active == nil {
		fmt.Fprintln(os.Stderr, "error: command is required")
		parser.WriteHelp(os.Stderr)
		os.Exit(1)
	}

	if opts.NoColor {
		color.NoColor = true
	}
	setupLog(opts.Debug)
	log.Printf("[DEBUG] starting newsdedup version %s, command %s", revision, parser.Active.Name)

	ctx, cancel := context.WithCancel(context.Background())

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		log.Print("[INFO] termination signal received")
		cancel()
	}()

	err := run(ctx, opts, parser.Active.Name, os.Stdout)
	cancel()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// run executes the command, report goes to out
func run(ctx context.Context, opts Opts, command string, out io.Writer) error {
	if opts.EnvFile != "" {
		if err := godotenv.Load(opts.EnvFile); err != nil {
			return fmt.Errorf("failed to load env file: %w", err)
		}
	}

	cfg := config.Default()
	if opts.Config != "" {
		var err error
		if cfg, err = config.Load(opts.Config); err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
	}
	if opts.DB != "" {
		cfg.Database.DSN = opts.DB
	}

	// threshold is checked before anything is opened
	var threshold float64
	switch command {
	case "pairs", "dedup":
		raw := opts.Pairs.Threshold
		if command == "dedup" {
			raw = opts.Dedup.Threshold
		}
		var err error
		if threshold, err = parseThreshold(raw, cfg.Dedup.Threshold); err != nil {
			return err
		}
	}

	repos, err := repository.NewRepositories(ctx, repository.Config{
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetime) * time.Second,
	})
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		if cerr := repos.Close(); cerr != nil {
			log.Printf("[WARN] failed to close database: %v", cerr)
		}
	}()

	parser := feed.NewParser(feed.Params{
		Timeout:     cfg.Fetch.Timeout,
		UserAgent:   cfg.Fetch.UserAgent,
		MaxKeywords: cfg.Fetch.MaxKeywords,
	})
	collection := service.New(service.Params{
		Articles:  repos.Article,
		Settings:  repos.Setting,
		Collector: feed.NewCollector(parser, cfg.Fetch.MaxConcurrent),
		DB:        repos,
		Sources:   cfg.Sources(),
		Dedup: dedup.Config{
			Mode:       cfg.SimilarityMode(),
			Workers:    cfg.Dedup.Workers,
			StripPunct: cfg.Dedup.StripPunct,
		},
	})
	if err := collection.Load(ctx); err != nil {
		return fmt.Errorf("failed to load collection: %w", err)
	}

	switch command {
	case "pairs":
		var mode domain.SimilarityMode // empty for configured mode
		if opts.Pairs.Mode != "" {
			if mode, err = domain.ParseMode(opts.Pairs.Mode); err != nil {
				return err
			}
		}
		pairs, err := collection.Duplicates(threshold, mode)
		if err != nil {
			return fmt.Errorf("failed to find duplicates: %w", err)
		}
		writePairs(out, pairs, threshold, opts.Pairs.Limit)
	case "dedup":
		res, err := collection.Dedup(ctx, threshold, opts.Dedup.DryRun)
		if err != nil {
			return fmt.Errorf("failed to dedup: %w", err)
		}
		writeDedup(out, res, opts.Dedup.DryRun)
	case "import":
		articles, err := readArticles(opts.Import.File)
		if err != nil {
			return err
		}
		res, err := collection.Import(ctx, articles)
		if err != nil {
			return fmt.Errorf("failed to import: %w", err)
		}
		fmt.Fprintf(out, "Imported %d articles, skipped %d known\n", res.Added, res.Skipped)
	case "fetch":
		res, err := collection.Fetch(ctx)
		if err != nil {
			return fmt.Errorf("failed to fetch: %w", err)
		}
		fmt.Fprintf(out, "Fetched %d articles, added %d new\n", res.Fetched, res.Added)
	case "search":
		results, err := collection.Search(opts.Search.Query, opts.Search.Limit)
		if err != nil {
			return fmt.Errorf("failed to search: %w", err)
		}
		writeSearch(out, opts.Search.Query, results)
	case "stats":
		writeStats(out, collection.Stats())
	case "favorite":
		fav, err := collection.ToggleFavorite(ctx, opts.Favorite.ID)
		if err != nil {
			return fmt.Errorf("failed to toggle favorite: %w", err)
		}
		if fav {
			fmt.Fprintf(out, "Added %s to favorites\n", opts.Favorite.ID)
		} else {
			fmt.Fprintf(out, "Removed %s from favorites\n", opts.Favorite.ID)
		}
	case "favorites":
		writeFavorites(out, collection.Favorites())
	case "serve":
		if cfg.Fetch.Interval > 0 && len(cfg.Feeds) > 0 {
			sched := scheduler.NewScheduler(collection, scheduler.Config{
				Interval:  cfg.Fetch.Interval,
				AutoDedup: cfg.Dedup.Auto,
				Threshold: cfg.Dedup.Threshold,
			})
			sched.Start(ctx)
			defer sched.Stop()
		}
		srv := server.New(cfg, collection, revision, opts.Debug)
		if err := srv.Run(ctx); err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		log.Print("[INFO] shutdown complete")
	default:
		return fmt.Errorf("unknown command %q", command)
	}
	return nil
}

// parseThreshold parses and validates threshold, def is used for empty value
func parseThreshold(raw string, def float64) (float64, error) {
	threshold := def
	if raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid threshold %q: %w", raw, domain.ErrInvalidArgument)
		}
		threshold = v
	}
	if err := dedup.ValidateThreshold(threshold); err != nil {
		if errors.Is(err, domain.ErrInvalidArgument) {
			return 0, fmt.Errorf("threshold must be between 0 and 1, got %v: %w", threshold, domain.ErrInvalidArgument)
		}
		return 0, err
	}
	return threshold, nil
}

func setupLog(dbg bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Out(io.Discard), lgr.Err(io.Discard)}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	}

	colorizer := lgr.Mapper{
		ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
		WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
		InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
		DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
		CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
		TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
	}
	logOpts = append(logOpts, lgr.Map(colorizer))
	if len(secs) > 0 {
		logOpts = append(logOpts, lgr.Secret(secs...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
