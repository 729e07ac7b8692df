package catalog

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sossut/adp2/internal/scoring"
)

func TestResultSummariesCoverEveryTriple(t *testing.T) {
	rows := ResultSummaries()
	require.Len(t, rows, 27)

	byTriple := make(map[string]bool)
	byID := make(map[string]bool)
	for _, row := range rows {
		triple := fmt.Sprintf("%s/%s/%s", row.SectionOne, row.SectionTwo, row.SectionThree)
		assert.False(t, byTriple[triple], "duplicate triple %s", triple)
		byTriple[triple] = true
		assert.False(t, byID[row.ID], "duplicate id %s", row.ID)
		byID[row.ID] = true
		assert.NotEmpty(t, row.Summary)
		assert.NotEmpty(t, row.Recommendation)
	}

	for _, s1 := range Buckets {
		for _, s2 := range Buckets {
			for _, s3 := range Buckets {
				assert.True(t, byTriple[fmt.Sprintf("%s/%s/%s", s1, s2, s3)],
					"missing triple (%s, %s, %s)", s1, s2, s3)
			}
		}
	}
}

func TestSectionSummariesCoverEveryPair(t *testing.T) {
	rows := SectionSummaries()
	require.Len(t, rows, scoring.SectionCount*3)

	seen := make(map[string]bool)
	for _, row := range rows {
		key := fmt.Sprintf("%d/%s", row.SectionID, row.Bucket)
		assert.False(t, seen[key], "duplicate pair %s", key)
		seen[key] = true
		assert.NotEmpty(t, row.Summary)
	}

	for id := 1; id <= scoring.SectionCount; id++ {
		for _, b := range Buckets {
			assert.True(t, seen[fmt.Sprintf("%d/%s", id, b)], "missing pair (%d, %s)", id, b)
		}
	}
}

func TestCategorySummariesCoverEveryPair(t *testing.T) {
	rows := CategorySummaries()
	require.Len(t, rows, scoring.CategoryCount*3)

	seen := make(map[string]bool)
	for _, row := range rows {
		key := fmt.Sprintf("%d/%s", row.CategoryID, row.Bucket)
		assert.False(t, seen[key], "duplicate pair %s", key)
		seen[key] = true
		assert.NotEmpty(t, row.Summary)
	}

	for id := 1; id <= scoring.CategoryCount; id++ {
		for _, b := range Buckets {
			assert.True(t, seen[fmt.Sprintf("%d/%s", id, b)], "missing pair (%d, %s)", id, b)
		}
	}
}
