package count

import (
	"github.com/seleznevm/topkwords/models"
	"github.com/seleznevm/topkwords/pkg/wordcount"
)

type Job struct {
	Path string
	Mode models.ScanMode
}

// Result holds the outcome of a processed job.
type Result struct {
	Path      string
	Error     error
	ErrorType string
	Words     int
	Distinct  int
	SizeBytes int64
}

// ResultOutput is the structured output for a single file.
type ResultOutput struct {
	Path          string `json:"path" yaml:"path"`
	Status        string `json:"status" yaml:"status"`
	Error         string `json:"error,omitempty" yaml:"error,omitempty"`
	ErrorType     string `json:"error_type,omitempty" yaml:"error_type,omitempty"`
	Words         int    `json:"words,omitempty" yaml:"words,omitempty"`
	DistinctWords int    `json:"distinct_words,omitempty" yaml:"distinct_words,omitempty"`
	SizeBytes     int64  `json:"size_bytes,omitempty" yaml:"size_bytes,omitempty"`
}

// FinalOutput is the structured output for the entire run.
type FinalOutput struct {
	Status  string         `json:"status" yaml:"status"`
	Results []ResultOutput `json:"results" yaml:"results"`
	Stats   Stats          `json:"stats" yaml:"stats"`
}

// Stats provides summary statistics for the run.
type Stats struct {
	TotalFiles    int               `json:"total_files" yaml:"total_files"`
	Successful    int               `json:"successful" yaml:"successful"`
	Failed        int               `json:"failed" yaml:"failed"`
	TotalWords    int               `json:"total_words" yaml:"total_words"`
	DistinctWords int               `json:"distinct_words" yaml:"distinct_words"`
	ElapsedMicros int64             `json:"elapsed_us" yaml:"elapsed_us"`
	TopWords      []wordcount.Entry `json:"top_words,omitempty" yaml:"top_words,omitempty"`
}
