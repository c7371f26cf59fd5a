package count

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/seleznevm/topkwords/models"
	"github.com/seleznevm/topkwords/pkg/extract"
	"github.com/seleznevm/topkwords/pkg/wordcount"
)

// run fans the configured files out to a pool of workers, each of which
// merges its local counts into acc. It blocks until every task has finished.
// Per-file failures travel inside the results; the returned error only marks
// that at least one job failed.
func run(logger *slog.Logger, config *models.Config, acc *wordcount.Accumulator) ([]Result, error) {
	workerCount := config.WorkerCount
	if workerCount <= 0 || workerCount > len(config.Paths) {
		// Default: one task per file.
		workerCount = len(config.Paths)
	}

	logger.Info("Starting concurrent count phase", "file_count", len(config.Paths), "workers", workerCount, "mode", config.Mode.String())

	var wg sync.WaitGroup
	jobs := make(chan Job, len(config.Paths))
	results := make(chan Result, len(config.Paths))

	for w := 1; w <= workerCount; w++ {
		wg.Add(1)
		go worker(w, logger, acc, &wg, jobs, results)
	}

	for _, path := range config.Paths {
		jobs <- Job{Path: path, Mode: config.Mode}
	}
	close(jobs)

	wg.Wait()
	close(results)
	logger.Info("All count workers finished")

	allResults := make([]Result, 0, len(config.Paths))
	var runErr error
	for result := range results {
		allResults = append(allResults, result)
		if result.Error != nil {
			runErr = fmt.Errorf("one or more files failed")
		}
	}

	return allResults, runErr
}

func worker(id int, logger *slog.Logger, acc *wordcount.Accumulator, wg *sync.WaitGroup, jobs <-chan Job, results chan<- Result) {
	defer wg.Done()
	for job := range jobs {
		logger.Debug("Worker started job", "worker_id", id, "path", job.Path)
		results <- processFile(id, logger, job, acc)
	}
}

// processFile opens and counts one file. Open and extraction failures leave
// the accumulator untouched; a read error after a successful open merges
// whatever was tokenized before the stream went bad, the same outcome a
// partly readable file has always had.
func processFile(id int, logger *slog.Logger, job Job, acc *wordcount.Accumulator) Result {
	result := Result{Path: job.Path}

	f, err := os.Open(job.Path)
	if err != nil {
		logger.Error("Failed to open file", "worker_id", id, "path", job.Path, "error", err)
		result.Error = fmt.Errorf("open %s: %w", job.Path, err)
		result.ErrorType = "open_error"
		return result
	}
	defer f.Close()

	if info, statErr := f.Stat(); statErr == nil {
		result.SizeBytes = info.Size()
	}

	local, err := countFile(f, job)
	if err != nil {
		if local == nil {
			logger.Error("Failed to extract text", "worker_id", id, "path", job.Path, "error", err)
			result.Error = err
			result.ErrorType = "extract_error"
			return result
		}
		logger.Warn("Read error, keeping partial counts", "worker_id", id, "path", job.Path, "error", err)
	}

	acc.Merge(local)

	for _, count := range local {
		result.Words += count
	}
	result.Distinct = len(local)

	logger.Debug("Worker finished job", "worker_id", id, "path", job.Path, "words", result.Words)
	return result
}

// countFile produces the file's local counts according to the job mode. A
// nil map with an error means no text could be produced at all; a non-nil
// map with an error carries the counts gathered before the stream failed.
func countFile(f *os.File, job Job) (map[string]int, error) {
	switch job.Mode {
	case models.ScanHTML, models.ScanArticle:
		text, err := extractText(f, job)
		if err != nil {
			return nil, err
		}
		return wordcount.Count(strings.NewReader(text))
	default:
		return wordcount.Count(f)
	}
}

func extractText(r io.Reader, job Job) (string, error) {
	if job.Mode == models.ScanArticle {
		return extract.ArticleText(r, job.Path)
	}
	return extract.VisibleText(r)
}
