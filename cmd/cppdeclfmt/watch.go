package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/jpillora/backoff"

	"github.com/gaarutyunov/cppdecl/internal/cache"
	"github.com/gaarutyunov/cppdecl/pkg/config"
)

// watchAndParse re-parses path every time it changes on disk, until the
// watcher errors or the process is interrupted.
func watchAndParse(path, kind string, cfg *config.Config, ch *cache.Cache, asJSON bool) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(path); err != nil {
		return fmt.Errorf("failed to watch %s: %w", path, err)
	}

	if err := reparse(path, kind, cfg, ch, asJSON); err != nil {
		fmt.Fprintln(os.Stderr, "cppdeclfmt:", err)
	}

	b := &backoff.Backoff{
		Min:    20 * time.Millisecond,
		Max:    1 * time.Second,
		Factor: 2,
		Jitter: true,
	}

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			// Editors frequently write-then-rename on save, so a write
			// event can fire before the new content is fully on disk;
			// back off and retry the read (up to 5 attempts) when it
			// fails. A read that succeeds is parsed as is.
			if err := retryReparse(path, kind, cfg, ch, asJSON, b); err != nil {
				fmt.Fprintln(os.Stderr, "cppdeclfmt:", err)
			}
			b.Reset()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watcher error: %w", err)
		}
	}
}

func retryReparse(path, kind string, cfg *config.Config, ch *cache.Cache, asJSON bool, b *backoff.Backoff) error {
	var lastErr error
	for attempt := 0; attempt < 5; attempt++ {
		if attempt > 0 {
			time.Sleep(b.Duration())
		}
		lines, err := readLines(path)
		if err != nil {
			lastErr = err
			continue
		}
		return reparseLines(lines, kind, cfg, ch, asJSON)
	}
	return lastErr
}

func reparse(path, kind string, cfg *config.Config, ch *cache.Cache, asJSON bool) error {
	lines, err := readLines(path)
	if err != nil {
		return err
	}
	return reparseLines(lines, kind, cfg, ch, asJSON)
}

func reparseLines(lines []string, kind string, cfg *config.Config, ch *cache.Cache, asJSON bool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	results, err := parseLinesWithContext(ctx, lines, kind, cfg, ch)
	if err != nil {
		return err
	}

	if asJSON {
		return printJSON(os.Stdout, results)
	}
	printText(os.Stdout, results)
	return nil
}
