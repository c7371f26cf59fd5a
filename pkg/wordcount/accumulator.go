package wordcount

import (
	"sync"

	"github.com/emirpasic/gods/maps/treemap"
)

// Entry is a single word with its accumulated count.
type Entry struct {
	Word  string `json:"word" yaml:"word"`
	Count int    `json:"count" yaml:"count"`
}

// Accumulator is the shared global word count map. Each worker merges its
// local counts into it once tokenizing is done; the mutex is held only for
// the merge loop itself, never across file I/O.
//
// The backing map is ordered by word, so snapshots come out in lexical order
// and equal-count entries rank the same way on every run.
type Accumulator struct {
	mu     sync.Mutex
	counts *treemap.Map
}

// NewAccumulator returns an empty accumulator.
func NewAccumulator() *Accumulator {
	return &Accumulator{counts: treemap.NewWithStringComparator()}
}

// Merge adds every count in local into the shared map, creating entries for
// words not seen before. Safe for concurrent use.
func (a *Accumulator) Merge(local map[string]int) {
	a.mu.Lock()
	defer a.mu.Unlock()

	for word, count := range local {
		if existing, found := a.counts.Get(word); found {
			count += existing.(int)
		}
		a.counts.Put(word, count)
	}
}

// Snapshot copies the current contents into a slice of entries in lexical
// word order.
func (a *Accumulator) Snapshot() []Entry {
	a.mu.Lock()
	defer a.mu.Unlock()

	entries := make([]Entry, 0, a.counts.Size())
	a.counts.Each(func(key interface{}, value interface{}) {
		entries = append(entries, Entry{Word: key.(string), Count: value.(int)})
	})
	return entries
}

// Len reports the number of distinct words accumulated so far.
func (a *Accumulator) Len() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.counts.Size()
}
