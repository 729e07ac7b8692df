package scoring

import "github.com/sossut/adp2/internal/model"

// Sections and question categories are closed, numbered sets. Category
// ids map to fixed semantic names used in owner-facing responses.
const (
	SectionCount  = 3
	CategoryCount = 10
)

// CategoryName returns the fixed name for a category id, or "" for an
// id outside the scheme.
func CategoryName(id int) string {
	names := [CategoryCount + 1]string{
		"",
		"temperature",
		"lighting",
		"air quality",
		"personal repairs",
		"personal upkeep",
		"energy efficiency",
		"participation",
		"housing company upkeep",
		"economy",
		"community",
	}
	if id < 1 || id > CategoryCount {
		return ""
	}
	return names[id]
}

// GroupScore accumulates one grouping's raw answer values.
type GroupScore struct {
	Sum   int
	Count int
}

// Average reports the group mean. ok is false for an empty group; the
// caller decides policy for empty groups, a zero average is never
// fabricated.
func (g GroupScore) Average() (avg float64, ok bool) {
	if g.Count == 0 {
		return 0, false
	}
	return float64(g.Sum) / float64(g.Count), true
}

func (g *GroupScore) add(value int) {
	g.Sum += value
	g.Count++
}

// Totals holds per-section, per-category and overall accumulations for
// one survey's answer set. Index 0 of the fixed arrays is unused;
// sections are 1..3 and categories 1..10.
type Totals struct {
	Sections   [SectionCount + 1]GroupScore
	Categories [CategoryCount + 1]GroupScore
	Overall    GroupScore
}

// Section returns the accumulation for a section id.
func (t *Totals) Section(id int) GroupScore {
	if id < 1 || id > SectionCount {
		return GroupScore{}
	}
	return t.Sections[id]
}

// Category returns the accumulation for a category id.
func (t *Totals) Category(id int) GroupScore {
	if id < 1 || id > CategoryCount {
		return GroupScore{}
	}
	return t.Categories[id]
}

// Aggregate reduces a survey's answers into grouped sums and counts in a
// single pass. Answers tagged with ids outside the fixed section or
// category schemes still count toward the overall total but not toward
// any group.
func Aggregate(answers []model.Answer) Totals {
	var t Totals
	for _, a := range answers {
		t.Overall.add(a.Value)
		if a.SectionID >= 1 && a.SectionID <= SectionCount {
			t.Sections[a.SectionID].add(a.Value)
		}
		if a.CategoryID >= 1 && a.CategoryID <= CategoryCount {
			t.Categories[a.CategoryID].add(a.Value)
		}
	}
	return t
}
