// Render Check
// Runs the full build pipeline over a JSON event dump without requiring a
// relay connection: every event is dispatched to its builder by kind and the
// rendered HTML is printed, optionally after sanitization.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"nostr-view/internal/cache"
	"nostr-view/internal/config"
	"nostr-view/internal/feed"
	"nostr-view/internal/nips"
	"nostr-view/internal/render"
	"nostr-view/internal/types"
)

func main() {
	eventsPath := flag.String("events", "-", "path to a JSON array of events, or - for stdin")
	sanitize := flag.Bool("sanitize", false, "scrub rendered fragments through the sanitizer policy")
	quiet := flag.Bool("quiet", false, "print only the summary")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	config.InitLogger(cfg.LogLevel)

	backend, err := openBackend(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cache: %v\n", err)
		os.Exit(1)
	}
	defer backend.Close()

	names := cache.NewNameCache(backend, cache.Config{
		NameTTL:         cfg.NameCacheTTL,
		MaxSize:         cfg.CacheMaxSize,
		CleanupInterval: cfg.CleanupInterval,
	})
	renderer := render.New(names)

	events, err := readEvents(*eventsPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "events: %v\n", err)
		os.Exit(1)
	}

	counts := map[string]int{}
	for _, evt := range events {
		def := types.GetKindDefinition(evt.Kind)
		counts[def.Name]++

		var html string
		switch {
		case def.IsProfile:
			meta := types.ParseProfileMetadata(evt.Content)
			user := feed.BuildUser(meta, evt.CreatedAt, evt.PubKey, names, renderer)
			html = user.AboutHTML
			if !*quiet {
				fmt.Printf("== %s %s (%s)\n", def.Label, user.DisplayName, user.Npub)
			}
		case def.IsZap:
			zap := feed.BuildZap(evt, names, renderer)
			html = zap.ContentHTML
			if !*quiet {
				fmt.Printf("== %s %d sats from %s\n", def.Label, zap.SatAmount, zap.DisplayName)
			}
		default:
			thread := nips.ParseThread(evt.Tags)
			post := feed.BuildPost(evt, thread, names, renderer)
			html = post.ContentHTML
			if !*quiet {
				fmt.Printf("== %s by %s %s\n", def.Label, post.DisplayName, post.FromNow)
			}
		}

		if *sanitize {
			html = render.Sanitize(html)
		}
		if !*quiet {
			fmt.Println(html)
			fmt.Println()
		}
	}

	hits, misses := cache.Stats()
	slog.Info("render check complete", "events", len(events), "cache_hits", hits, "cache_misses", misses)
	for name, n := range counts {
		fmt.Printf("%-10s %d\n", name, n)
	}
}

func openBackend(cfg config.Config) (cache.Backend, error) {
	if cfg.RedisURL != "" {
		return cache.NewRedisCache(cfg.RedisURL, cfg.CachePrefix)
	}
	return cache.NewMemoryCache(cfg.CacheMaxSize, cfg.CleanupInterval), nil
}

func readEvents(path string) ([]types.Event, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, err
	}

	var events []types.Event
	if err := json.Unmarshal(data, &events); err != nil {
		return nil, fmt.Errorf("invalid event dump: %w", err)
	}
	return events, nil
}
