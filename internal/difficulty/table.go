// Package difficulty holds the word → CEFR tier table used to classify
// tokens. A Table is built once at startup and is read-only afterwards,
// so it is safe for concurrent use.
package difficulty

import (
	_ "embed"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/heartmarshall/clicktionary-backend/internal/domain"
)

//go:embed default_table.csv
var defaultTableCSV string

// Table maps normalized word keys to CEFR tiers.
type Table struct {
	tiers map[string]domain.Tier
}

// New builds a Table from a copy of m. Keys are normalized with
// domain.WordKey; entries whose key normalizes to "" are dropped.
func New(m map[string]domain.Tier) *Table {
	tiers := make(map[string]domain.Tier, len(m))
	for word, tier := range m {
		key := domain.WordKey(word)
		if key == "" {
			continue
		}
		tiers[key] = tier
	}
	return &Table{tiers: tiers}
}

// Lookup returns the tier for a normalized key, or TierUnknown when the
// key is not in the table. A nil Table classifies everything as unknown.
func (t *Table) Lookup(key string) domain.Tier {
	if t == nil {
		return domain.TierUnknown
	}
	if tier, ok := t.tiers[key]; ok {
		return tier
	}
	return domain.TierUnknown
}

// Len returns the number of words in the table.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.tiers)
}

// Counts returns how many table words fall into each band.
func (t *Table) Counts() map[domain.Band]int {
	counts := make(map[domain.Band]int, len(domain.Bands))
	if t == nil {
		return counts
	}
	for _, tier := range t.tiers {
		counts[tier.Band()]++
	}
	return counts
}

var (
	defaultOnce  sync.Once
	defaultTable *Table
)

// Default returns the bundled table. It panics if the embedded CSV is
// malformed, which can only happen at build time.
func Default() *Table {
	defaultOnce.Do(func() {
		t, err := Parse(strings.NewReader(defaultTableCSV))
		if err != nil {
			panic(fmt.Sprintf("difficulty: embedded table: %v", err))
		}
		defaultTable = t
	})
	return defaultTable
}

// Load reads one or more CSV files and merges them into a single Table.
// When a word appears in several files, the first file wins.
func Load(paths ...string) (*Table, error) {
	merged := make(map[string]domain.Tier)
	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open difficulty table %s: %w", path, err)
		}
		t, err := Parse(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("parse difficulty table %s: %w", path, err)
		}
		for key, tier := range t.tiers {
			if _, exists := merged[key]; !exists {
				merged[key] = tier
			}
		}
	}
	return &Table{tiers: merged}, nil
}
