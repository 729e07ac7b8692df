package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sossut/adp2/internal/model"
)

func answer(sectionID, categoryID, value int) model.Answer {
	return model.Answer{SectionID: sectionID, CategoryID: categoryID, Value: value}
}

func TestAggregate(t *testing.T) {
	answers := []model.Answer{
		answer(1, 1, 2),
		answer(1, 2, -1),
		answer(2, 6, 1),
		answer(2, 8, 0),
		answer(3, 10, -2),
	}

	totals := Aggregate(answers)

	assert.Equal(t, GroupScore{Sum: 1, Count: 2}, totals.Section(1))
	assert.Equal(t, GroupScore{Sum: 1, Count: 2}, totals.Section(2))
	assert.Equal(t, GroupScore{Sum: -2, Count: 1}, totals.Section(3))
	assert.Equal(t, GroupScore{Sum: 0, Count: 5}, totals.Overall)

	assert.Equal(t, GroupScore{Sum: 2, Count: 1}, totals.Category(1))
	assert.Equal(t, GroupScore{Sum: -1, Count: 1}, totals.Category(2))
	assert.Equal(t, GroupScore{Sum: 0, Count: 0}, totals.Category(3))
}

func TestAggregateGroupCountsSumToOverall(t *testing.T) {
	answers := []model.Answer{
		answer(1, 1, 1), answer(1, 3, -1), answer(2, 6, 1),
		answer(2, 9, 2), answer(3, 7, 0), answer(3, 10, -2),
	}

	totals := Aggregate(answers)

	var sectionCount, categoryCount int
	for id := 1; id <= SectionCount; id++ {
		sectionCount += totals.Section(id).Count
	}
	for id := 1; id <= CategoryCount; id++ {
		categoryCount += totals.Category(id).Count
	}
	assert.Equal(t, totals.Overall.Count, sectionCount)
	assert.Equal(t, totals.Overall.Count, categoryCount)
}

func TestAggregateOutOfRangeIDs(t *testing.T) {
	// Answers tagged outside the fixed schemes still count overall but
	// never leak into a group.
	answers := []model.Answer{
		answer(0, 11, 2),
		answer(4, -1, -1),
	}

	totals := Aggregate(answers)

	assert.Equal(t, GroupScore{Sum: 1, Count: 2}, totals.Overall)
	for id := 1; id <= SectionCount; id++ {
		assert.Zero(t, totals.Section(id).Count)
	}
	for id := 1; id <= CategoryCount; id++ {
		assert.Zero(t, totals.Category(id).Count)
	}
}

func TestGroupScoreAverage(t *testing.T) {
	avg, ok := GroupScore{Sum: 1, Count: 3}.Average()
	require.True(t, ok)
	assert.InDelta(t, 1.0/3.0, avg, 1e-9)

	// An empty group reports ok=false instead of a fabricated zero.
	_, ok = GroupScore{}.Average()
	assert.False(t, ok)

	// A zero sum over real answers is a real average.
	avg, ok = GroupScore{Sum: 0, Count: 4}.Average()
	require.True(t, ok)
	assert.Zero(t, avg)
}

func TestAggregateEmpty(t *testing.T) {
	totals := Aggregate(nil)
	assert.Zero(t, totals.Overall.Count)
	_, ok := totals.Overall.Average()
	assert.False(t, ok)
}

func TestCategoryName(t *testing.T) {
	assert.Equal(t, "temperature", CategoryName(1))
	assert.Equal(t, "community", CategoryName(10))
	assert.Empty(t, CategoryName(0))
	assert.Empty(t, CategoryName(11))

	seen := make(map[string]bool)
	for id := 1; id <= CategoryCount; id++ {
		name := CategoryName(id)
		assert.NotEmpty(t, name)
		assert.False(t, seen[name], "duplicate category name %q", name)
		seen[name] = true
	}
}
