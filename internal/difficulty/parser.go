package difficulty

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/heartmarshall/clicktionary-backend/internal/domain"
)

// Parse reads a difficulty CSV. The first row is a header and is skipped.
// Each following row is "word[,level]" where level is one of:
//   - a CEFR code (A1..C2), used as is
//   - a positive integer, read as a frequency rank
//   - empty or missing, in which case the row position among ranked rows
//     is the rank (NGSL-style frequency lists)
//
// Ranks are mapped to tiers with tierForRank. The first occurrence of a word
// wins; blank words are skipped.
func Parse(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // allow variable column count
	reader.TrimLeadingSpace = true
	reader.Comment = '#'

	if _, err := reader.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return &Table{tiers: map[string]domain.Tier{}}, nil
		}
		return nil, fmt.Errorf("read header: %w", err)
	}

	tiers := make(map[string]domain.Tier)
	rank := 0

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		if len(record) == 0 {
			continue
		}

		key := domain.WordKey(record[0])
		if key == "" {
			continue
		}

		level := ""
		if len(record) > 1 {
			level = strings.TrimSpace(record[1])
		}

		var tier domain.Tier
		switch {
		case level == "":
			rank++
			tier = tierForRank(rank)
		case isDigits(level):
			n, err := strconv.Atoi(level)
			if err != nil || n < 1 {
				return nil, fmt.Errorf("row %q: invalid rank %q", record[0], level)
			}
			tier = tierForRank(n)
		default:
			tier = domain.ParseTier(level)
			if tier == domain.TierUnknown {
				return nil, fmt.Errorf("row %q: unknown level %q", record[0], level)
			}
		}

		if _, exists := tiers[key]; !exists {
			tiers[key] = tier
		}
	}

	return &Table{tiers: tiers}, nil
}

// tierForRank maps a 1-based frequency rank to a CEFR tier.
//
//	1-500     → A1
//	501-1200  → A2
//	1201-2000 → B1
//	2001+     → B2
func tierForRank(rank int) domain.Tier {
	switch {
	case rank <= 500:
		return domain.TierA1
	case rank <= 1200:
		return domain.TierA2
	case rank <= 2000:
		return domain.TierB1
	default:
		return domain.TierB2
	}
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}
