package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/gaarutyunov/cppdecl/internal/cache"
	"github.com/gaarutyunov/cppdecl/pkg/ast"
	"github.com/gaarutyunov/cppdecl/pkg/config"
	"github.com/gaarutyunov/cppdecl/pkg/parser"
)

// lineResult is one input line's parse outcome, kept alongside its
// original index so concurrent parsing can still print results in
// source order.
type lineResult struct {
	line string
	decl *ast.Declaration
	err  error
}

// readLines reads non-blank, non-comment lines from path, or from stdin
// when path is empty.
func readLines(path string) ([]string, error) {
	var r io.Reader = os.Stdin
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open %s: %w", path, err)
		}
		defer f.Close()
		r = f
	}

	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return lines, nil
}

// parseLines parses every line independently and concurrently (spec.md
// §5: each declaration parse is single-threaded and shares no mutable
// state with any other), joining the goroutines with errgroup.Group.
// A per-line parse failure is recorded in that line's lineResult rather
// than aborting the whole batch.
func parseLines(lines []string, kind string, cfg *config.Config, ch *cache.Cache) []lineResult {
	results := make([]lineResult, len(lines))
	var g errgroup.Group

	for i, line := range lines {
		i, line := i, line
		g.Go(func() error {
			results[i] = lineResult{line: line, decl: parseOne(line, kind, cfg, ch)}
			if results[i].decl == nil {
				results[i].err = fmt.Errorf("failed to parse %q", line)
			}
			return nil
		})
	}
	// errgroup.Group.Wait's error is always nil here: parseOne never
	// returns an error through the group itself, only through the
	// per-line lineResult, so every line's outcome survives a partial
	// batch failure.
	_ = g.Wait()
	return results
}

func parseOne(line, kind string, cfg *config.Config, ch *cache.Cache) *ast.Declaration {
	fp := cache.Fingerprint(cfg)
	if ch != nil {
		if decl, ok := ch.Get(fp, line, kind); ok {
			return decl
		}
	}

	directiveKind := kind
	if kind == "type_using" {
		// "type_using" is this port's split of the single "type" object
		// kind; the underlying directive is still spelled "type".
		directiveKind = "type"
	}

	p := parser.New(cfg)
	decl, err := p.ParseDeclaration(line, kind, directiveKind)
	if err != nil {
		cfg.WarnMsg(err.Error())
		return nil
	}

	if ch != nil {
		ch.Put(fp, line, kind, decl)
	}
	return decl
}

// parseLinesWithContext is the context-aware variant used by --watch. It
// checks ctx once before the batch starts and returns ctx's error if it
// is already done; a batch that has started runs to completion.
func parseLinesWithContext(ctx context.Context, lines []string, kind string, cfg *config.Config, ch *cache.Cache) ([]lineResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return parseLines(lines, kind, cfg, ch), nil
}
