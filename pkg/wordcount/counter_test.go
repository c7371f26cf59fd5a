package wordcount

import (
	"errors"
	"io"
	"reflect"
	"strings"
	"testing"
	"testing/iotest"
)

func TestCount(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  map[string]int
	}{
		{
			name:  "empty input",
			input: "",
			want:  map[string]int{},
		},
		{
			name:  "single word",
			input: "cat",
			want:  map[string]int{"cat": 1},
		},
		{
			name:  "case variants fold together",
			input: "Cat cat CAT",
			want:  map[string]int{"cat": 3},
		},
		{
			name:  "all whitespace kinds split",
			input: "cat\tdog\ncat\r\nbird\vfish\ffish",
			want:  map[string]int{"cat": 2, "dog": 1, "bird": 1, "fish": 2},
		},
		{
			name:  "runs of whitespace collapse",
			input: "  cat   dog  ",
			want:  map[string]int{"cat": 1, "dog": 1},
		},
		{
			name:  "punctuation stays attached",
			input: "dog, dog dog.",
			want:  map[string]int{"dog,": 1, "dog": 1, "dog.": 1},
		},
		{
			name:  "non-ascii bytes pass through unfolded",
			input: "Привет мир Привет",
			want:  map[string]int{"Привет": 2, "мир": 1},
		},
		{
			name:  "digits and symbols are words too",
			input: "42 --flag 42",
			want:  map[string]int{"42": 2, "--flag": 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Count(strings.NewReader(tt.input))
			if err != nil {
				t.Fatalf("Count() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Count() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCountKeepsPartialCountsOnReadError(t *testing.T) {
	readErr := errors.New("disk gone")
	r := io.MultiReader(strings.NewReader("cat dog cat "), iotest.ErrReader(readErr))

	got, err := Count(r)
	if !errors.Is(err, readErr) {
		t.Fatalf("Count() error = %v, want %v", err, readErr)
	}

	want := map[string]int{"cat": 2, "dog": 1}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Count() partial counts = %v, want %v", got, want)
	}
}

func TestFoldASCII(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"uppercase folds", "HELLO", "hello"},
		{"mixed case folds", "CaT", "cat"},
		{"already lowercase unchanged", "cat", "cat"},
		{"digits and punctuation unchanged", "A1B2,.!", "a1b2,.!"},
		{"non-ascii bytes unchanged", "ЖуК-Z", "ЖуК-z"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FoldASCII([]byte(tt.in)); got != tt.want {
				t.Errorf("FoldASCII(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFoldASCIIIdempotent(t *testing.T) {
	words := []string{"HeLLo", "WORLD,", "уже", "mixed«»Bytes", ""}
	for _, w := range words {
		once := FoldASCII([]byte(w))
		twice := FoldASCII([]byte(once))
		if once != twice {
			t.Errorf("FoldASCII not idempotent for %q: first %q, second %q", w, once, twice)
		}
	}
}
