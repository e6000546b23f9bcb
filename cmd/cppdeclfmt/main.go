// Command cppdeclfmt reads C++ declaration lines from a file (or stdin),
// parses each one and prints its AST, optionally re-parsing on every save
// while a --watch flag is set.
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "cppdeclfmt",
		Usage: "parse C++ declaration lines and dump their AST",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "file",
				Usage: "file of declaration lines to parse, one per line (defaults to stdin)",
			},
			&cli.StringFlag{
				Name:  "kind",
				Value: "function",
				Usage: "declaration kind to parse each line as (class, union, enum, enumerator, type_using, concept, namespace, member, function, type)",
			},
			&cli.BoolFlag{
				Name:  "watch",
				Usage: "re-parse --file on every write",
			},
			&cli.BoolFlag{
				Name:  "fallback",
				Usage: "enable the bracket-balancing fallback scanner for expressions that fail strict parsing",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "dump results as JSON instead of the indented tree listing",
			},
			&cli.StringFlag{
				Name:  "cache",
				Usage: "path to a cache file that memoizes parses across runs (default: none)",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "cppdeclfmt:", err)
		os.Exit(1)
	}
}
