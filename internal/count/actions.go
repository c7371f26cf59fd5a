package count

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/seleznevm/topkwords/models"
	"github.com/seleznevm/topkwords/pkg/stopwords"
	"github.com/seleznevm/topkwords/pkg/wordcount"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"
)

// topK is the number of entries the report prints.
const topK = 10

func CountAction(c *cli.Context) error {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	if c.NArg() == 0 {
		usage := strings.Join([]string{
			"Error: No files provided",
			"",
			"Usage:",
			"  topkwords FILE...",
			"  topkwords --mode=html --format=json page.html",
			"",
			"Need help? Run: topkwords --help",
		}, "\n")
		return cli.Exit(usage, 1)
	}

	mode, err := models.ParseScanMode(c.String("mode"))
	if err != nil {
		logger.Error("invalid mode flag", "error", err)
		os.Exit(2)
	}

	format := strings.ToLower(c.String("format"))
	switch format {
	case "", "text", "json", "yaml":
	default:
		logger.Error("invalid format flag", "format", format)
		os.Exit(2)
	}

	config := &models.Config{
		Paths:       c.Args().Slice(),
		WorkerCount: c.Int("workers"),
		Mode:        mode,
	}

	startTime := time.Now()

	acc := wordcount.NewAccumulator()
	allResults, runErr := run(logger, config, acc)

	entries := acc.Snapshot()
	if c.Bool("skip-stopwords") {
		entries = stopwords.Prune(entries)
	}
	topWords := wordcount.TopK(entries, topK)

	if format == "json" || format == "yaml" {
		return writeStructuredReport(os.Stdout, format, allResults, topWords, acc.Len(), runErr, startTime)
	}

	if err := wordcount.WriteReport(os.Stdout, topWords); err != nil {
		return err
	}
	fmt.Printf("Elapsed time is %d us\n", time.Since(startTime).Microseconds())

	return nil
}

// writeStructuredReport emits the json or yaml form of the run: one entry
// per file, the ranked top words, and run-level stats. File entries are
// sorted by path so output is stable across runs.
func writeStructuredReport(w io.Writer, format string, allResults []Result, topWords []wordcount.Entry, distinct int, runErr error, startTime time.Time) error {
	finalOutput := &FinalOutput{Results: make([]ResultOutput, 0, len(allResults))}
	stats := Stats{TotalFiles: len(allResults), DistinctWords: distinct, TopWords: topWords}

	sort.Slice(allResults, func(i, j int) bool {
		return allResults[i].Path < allResults[j].Path
	})

	for _, r := range allResults {
		out := ResultOutput{Path: r.Path, Words: r.Words, DistinctWords: r.Distinct, SizeBytes: r.SizeBytes}
		if r.Error != nil {
			stats.Failed++
			out.Status = "failed"
			out.Error = r.Error.Error()
			out.ErrorType = r.ErrorType
		} else {
			stats.Successful++
			stats.TotalWords += r.Words
			out.Status = "success"
		}
		finalOutput.Results = append(finalOutput.Results, out)
	}

	stats.ElapsedMicros = time.Since(startTime).Microseconds()
	finalOutput.Stats = stats
	if runErr != nil {
		finalOutput.Status = "partial_failure"
	} else {
		finalOutput.Status = "success"
	}

	var outputData []byte
	var marshalErr error
	if format == "yaml" {
		outputData, marshalErr = yaml.Marshal(finalOutput)
	} else {
		outputData, marshalErr = json.MarshalIndent(finalOutput, "", "  ")
	}
	if marshalErr != nil {
		return fmt.Errorf("marshal %s output: %w", format, marshalErr)
	}

	_, err := fmt.Fprintln(w, string(outputData))
	return err
}
