package wordlist

import (
	"bufio"
	"fmt"
	"os"
	"sort"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/storbeck/dictforge/internal/classify"
	"github.com/storbeck/dictforge/internal/extract"
)

// Builder accumulates actionable path terms from batches of raw URLs.
// A term enters the set at most once no matter how many URLs or sources
// produced it; source order never affects the result. A fresh Builder
// is created per run.
type Builder struct {
	static classify.Set
	terms  mapset.Set[string]
}

// NewBuilder returns an empty Builder filtering against static.
func NewBuilder(static classify.Set) *Builder {
	return &Builder{
		static: static,
		terms:  mapset.NewThreadUnsafeSet[string](),
	}
}

// Add extracts path segments from one batch of raw URL lines and keeps
// every segment that is not a static asset. A URL whose final segment
// is a static asset is an asset fetch end to end: its parent
// directories only serve assets, so the whole line contributes
// nothing. Malformed or empty lines likewise contribute nothing; the
// rest of the batch is unaffected. An empty batch is a no-op, not an
// error.
func (b *Builder) Add(urls []string) {
	for _, raw := range urls {
		segs := extract.Segments(raw)
		if len(segs) == 0 {
			continue
		}
		if b.static.IsStatic(segs[len(segs)-1]) {
			continue
		}
		for _, seg := range segs {
			if b.static.IsStatic(seg) {
				continue
			}
			b.terms.Add(seg)
		}
	}
}

// Len returns the number of unique terms collected so far.
func (b *Builder) Len() int {
	return b.terms.Cardinality()
}

// Terms returns the unique terms in ascending byte order.
func (b *Builder) Terms() []string {
	terms := b.terms.ToSlice()
	sort.Strings(terms)
	return terms
}

// WriteFile writes the wordlist to path, one term per line. An empty
// dictionary produces an empty file.
func (b *Builder) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create wordlist file: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, term := range b.Terms() {
		fmt.Fprintln(w, term)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to write wordlist: %w", err)
	}
	return nil
}
