package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/gaarutyunov/cppdecl/internal/cache"
	"github.com/gaarutyunov/cppdecl/pkg/config"
)

func run(c *cli.Context) error {
	cfg := &config.Config{
		AllowFallbackExpressionParsing: c.Bool("fallback"),
		Warn: func(msg string) { fmt.Fprintln(os.Stderr, "warning:", msg) },
	}

	var ch *cache.Cache
	if cachePath := c.String("cache"); cachePath != "" {
		loaded, err := cache.Load(cachePath)
		if err != nil {
			return fmt.Errorf("failed to load cache: %w", err)
		}
		ch = loaded
		defer func() {
			if saveErr := ch.Save(); saveErr != nil {
				fmt.Fprintln(os.Stderr, "cppdeclfmt: failed to save cache:", saveErr)
			}
		}()
	}

	filePath := c.String("file")
	kind := c.String("kind")

	if c.Bool("watch") {
		if filePath == "" {
			return fmt.Errorf("--watch requires --file")
		}
		return watchAndParse(filePath, kind, cfg, ch, c.Bool("json"))
	}

	return reparse(filePath, kind, cfg, ch, c.Bool("json"))
}
