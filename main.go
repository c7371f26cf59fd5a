package main

import (
	"fmt"
	"os"

	"github.com/seleznevm/topkwords/internal/count"
	"github.com/urfave/cli/v2"
)

func main() {
	app := newApp()
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:      "topkwords",
		Usage:     "count word frequencies across files and print the most frequent",
		ArgsUsage: "FILE...",
		Description: "Counts whitespace-delimited, ASCII-case-folded words across all\n" +
			"given files concurrently and prints the ten most frequent, followed\n" +
			"by the elapsed wall-clock time in microseconds.",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "workers",
				Usage: "cap on concurrent file workers (0 means one per file)",
			},
			&cli.StringFlag{
				Name:  "mode",
				Value: "text",
				Usage: "input handling: text, html or article",
			},
			&cli.StringFlag{
				Name:  "format",
				Value: "text",
				Usage: "report format: text, json or yaml",
			},
			&cli.BoolFlag{
				Name:  "skip-stopwords",
				Usage: "prune common English words from the report",
			},
			&cli.BoolFlag{
				Name:  "quiet",
				Usage: "only log errors",
			},
		},
		Action: count.CountAction,
	}
}
