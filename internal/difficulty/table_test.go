package difficulty

import (
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/clicktionary-backend/internal/domain"
)

func testdataPath(t *testing.T, name string) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("cannot determine test file path")
	}
	return filepath.Join(filepath.Dir(file), "testdata", name)
}

func TestTierForRank(t *testing.T) {
	t.Parallel()

	tests := []struct {
		rank int
		want domain.Tier
	}{
		{1, domain.TierA1},
		{500, domain.TierA1},
		{501, domain.TierA2},
		{1200, domain.TierA2},
		{1201, domain.TierB1},
		{2000, domain.TierB1},
		{2001, domain.TierB2},
		{2809, domain.TierB2},
	}
	for _, tt := range tests {
		if got := tierForRank(tt.rank); got != tt.want {
			t.Errorf("tierForRank(%d) = %q, want %q", tt.rank, got, tt.want)
		}
	}
}

func TestParse_CEFRColumn(t *testing.T) {
	t.Parallel()

	table, err := Parse(strings.NewReader("word,level\nFox,a2\nfox.,C2\nlazy, B1\n"))
	require.NoError(t, err)

	assert.Equal(t, 2, table.Len())
	assert.Equal(t, domain.TierA2, table.Lookup("fox"), "first occurrence wins")
	assert.Equal(t, domain.TierB1, table.Lookup("lazy"))
}

func TestParse_RankColumn(t *testing.T) {
	t.Parallel()

	table, err := Parse(strings.NewReader("word,rank\nalpha,1\nbeta,800\ngamma,1500\ndelta,4000\n"))
	require.NoError(t, err)

	assert.Equal(t, domain.TierA1, table.Lookup("alpha"))
	assert.Equal(t, domain.TierA2, table.Lookup("beta"))
	assert.Equal(t, domain.TierB1, table.Lookup("gamma"))
	assert.Equal(t, domain.TierB2, table.Lookup("delta"))
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
	}{
		{name: "unknown level", input: "word,level\nfox,Z9\n"},
		{name: "zero rank", input: "word,level\nfox,0\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Parse(strings.NewReader(tt.input))
			assert.Error(t, err)
		})
	}
}

func TestParse_Empty(t *testing.T) {
	t.Parallel()

	table, err := Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, 0, table.Len())
}

func TestLoad_MergesFirstFileWins(t *testing.T) {
	t.Parallel()

	table, err := Load(testdataPath(t, "ngsl_sample.csv"), testdataPath(t, "cefr_sample.csv"))
	require.NoError(t, err)

	// NGSL-style rows are ranked by position.
	assert.Equal(t, domain.TierA1, table.Lookup("the"))
	assert.Equal(t, domain.TierA1, table.Lookup("of"))
	assert.Equal(t, domain.TierC1, table.Lookup("pangram"))
	assert.Equal(t, domain.TierB1, table.Lookup("vocabulary"))
	assert.Equal(t, domain.TierA2, table.Lookup("knowledge"))
	assert.Equal(t, 7, table.Len())
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(testdataPath(t, "nope.csv"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open difficulty table")
}

func TestDefault(t *testing.T) {
	t.Parallel()

	table := Default()
	require.NotNil(t, table)
	assert.Same(t, table, Default())

	tests := map[string]domain.Tier{
		"the":        domain.TierA1,
		"dog":        domain.TierA1,
		"fox":        domain.TierA2,
		"quick":      domain.TierA2,
		"jumps":      domain.TierB1,
		"vocabulary": domain.TierB1,
		"effective":  domain.TierB2,
		"pangram":    domain.TierC1,
		"authentic":  domain.TierC1,
		"xylophone":  domain.TierUnknown,
	}
	for key, want := range tests {
		assert.Equal(t, want, table.Lookup(key), key)
	}
}

func TestNew_CopiesAndNormalizes(t *testing.T) {
	t.Parallel()

	src := map[string]domain.Tier{"Fox": domain.TierA2, "...": domain.TierC2}
	table := New(src)
	src["dog"] = domain.TierA1

	assert.Equal(t, 1, table.Len())
	assert.Equal(t, domain.TierA2, table.Lookup("fox"))
	assert.Equal(t, domain.TierUnknown, table.Lookup("dog"))
}

func TestTable_NilIsUnknown(t *testing.T) {
	t.Parallel()

	var table *Table
	assert.Equal(t, domain.TierUnknown, table.Lookup("the"))
	assert.Equal(t, 0, table.Len())
}

func TestTable_Counts(t *testing.T) {
	t.Parallel()

	table := New(map[string]domain.Tier{
		"a": domain.TierA1, "b": domain.TierA2, "c": domain.TierC2,
	})
	counts := table.Counts()
	assert.Equal(t, 2, counts[domain.BandBasic])
	assert.Equal(t, 1, counts[domain.BandAdvanced])
	assert.Equal(t, 0, counts[domain.BandIntermediate])
}
