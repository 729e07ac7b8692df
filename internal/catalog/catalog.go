package catalog

import (
	"fmt"

	"github.com/sossut/adp2/internal/model"
	"github.com/sossut/adp2/internal/scoring"
)

// The static summary catalogs as seeded: the overall result summaries
// enumerate every bucket triple, and the section and category summaries
// cover every (id, bucket) pair. cmd/seed writes these rows and the
// scoring engine only ever reads them.

// Buckets lists the buckets in display order.
var Buckets = []scoring.Bucket{scoring.BucketPositive, scoring.BucketEven, scoring.BucketNegative}

var sectionNames = map[int]string{
	1: "living conditions",
	2: "housing company operations",
	3: "community and participation",
}

var bucketPhrases = map[scoring.Bucket]string{
	scoring.BucketPositive: "Residents are satisfied",
	scoring.BucketEven:     "Resident opinion is mixed",
	scoring.BucketNegative: "Residents are dissatisfied",
}

// SectionName returns the display name of a section id, or "" for an id
// outside the scheme.
func SectionName(id int) string {
	return sectionNames[id]
}

// ResultSummaryID is the row id for a bucket triple.
func ResultSummaryID(s1, s2, s3 scoring.Bucket) string {
	return fmt.Sprintf("rs-%s-%s-%s", s1, s2, s3)
}

// ResultSummaries returns one row per bucket triple, 27 in total.
func ResultSummaries() []model.ResultSummary {
	rows := make([]model.ResultSummary, 0, len(Buckets)*len(Buckets)*len(Buckets))
	for _, s1 := range Buckets {
		for _, s2 := range Buckets {
			for _, s3 := range Buckets {
				rows = append(rows, model.ResultSummary{
					ID:           ResultSummaryID(s1, s2, s3),
					SectionOne:   s1,
					SectionTwo:   s2,
					SectionThree: s3,
					Summary: fmt.Sprintf(
						"%s with %s, %s with %s, and %s with %s.",
						bucketPhrases[s1], sectionNames[1],
						bucketPhrases[s2], sectionNames[2],
						bucketPhrases[s3], sectionNames[3],
					),
					Recommendation: recommendationFor(s1, s2, s3),
				})
			}
		}
	}
	return rows
}

// SectionSummaries returns one row per (section, bucket) pair.
func SectionSummaries() []model.SectionSummary {
	rows := make([]model.SectionSummary, 0, scoring.SectionCount*len(Buckets))
	for id := 1; id <= scoring.SectionCount; id++ {
		for _, bucket := range Buckets {
			rows = append(rows, model.SectionSummary{
				ID:        fmt.Sprintf("sec-%d-%s", id, bucket),
				SectionID: id,
				Bucket:    bucket,
				Summary:   fmt.Sprintf("%s with %s.", bucketPhrases[bucket], sectionNames[id]),
			})
		}
	}
	return rows
}

// CategorySummaries returns one row per (category, bucket) pair.
func CategorySummaries() []model.QuestionCategorySummary {
	rows := make([]model.QuestionCategorySummary, 0, scoring.CategoryCount*len(Buckets))
	for id := 1; id <= scoring.CategoryCount; id++ {
		for _, bucket := range Buckets {
			rows = append(rows, model.QuestionCategorySummary{
				ID:         fmt.Sprintf("cat-%d-%s", id, bucket),
				CategoryID: id,
				Bucket:     bucket,
				Summary:    fmt.Sprintf("%s with %s.", bucketPhrases[bucket], scoring.CategoryName(id)),
			})
		}
	}
	return rows
}

func recommendationFor(s1, s2, s3 scoring.Bucket) string {
	negatives := 0
	for _, b := range []scoring.Bucket{s1, s2, s3} {
		if b == scoring.BucketNegative {
			negatives++
		}
	}
	switch {
	case negatives == 0:
		return "Keep up the current practices and monitor the next survey round."
	case negatives == 1:
		return "Focus improvement efforts on the weakest section before the next survey round."
	default:
		return "Arrange a resident meeting to plan improvements across the flagged sections."
	}
}
