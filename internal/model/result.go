package model

import (
	"time"

	"github.com/sossut/adp2/internal/scoring/bucket"
)

// Result is the one-to-one aggregate record of a survey. AnswerCount
// tracks the number of stored answers; ResultSummaryID always points at
// the most recently computed overall summary, not a history.
type Result struct {
	ID              string    `json:"id" bson:"_id,omitempty"`
	SurveyID        string    `json:"surveyId" bson:"surveyId"`
	AnswerCount     int       `json:"answerCount" bson:"answerCount"`
	ResultSummaryID string    `json:"resultSummaryId" bson:"resultSummaryId"`
	Filename        string    `json:"filename" bson:"filename"`
	CreatedAt       time.Time `json:"createdAt" bson:"createdAt"`
}

// ResultSummary is a static catalog row keyed by the combination of the
// three section buckets, carrying the overall narrative for that state.
type ResultSummary struct {
	ID             string         `json:"id" bson:"_id,omitempty"`
	SectionOne     bucket.Bucket `json:"sectionOne" bson:"sectionOne"`
	SectionTwo     bucket.Bucket `json:"sectionTwo" bson:"sectionTwo"`
	SectionThree   bucket.Bucket `json:"sectionThree" bson:"sectionThree"`
	Summary        string         `json:"summary" bson:"summary"`
	Recommendation string         `json:"recommendation" bson:"recommendation"`
}

// SectionSummary is a static catalog row keyed by (section id, bucket)
type SectionSummary struct {
	ID        string         `json:"id" bson:"_id,omitempty"`
	SectionID int            `json:"sectionId" bson:"sectionId"`
	Bucket    bucket.Bucket `json:"bucket" bson:"bucket"`
	Summary   string         `json:"summary" bson:"summary"`
}

// QuestionCategorySummary is a static catalog row keyed by
// (category id, bucket)
type QuestionCategorySummary struct {
	ID         string         `json:"id" bson:"_id,omitempty"`
	CategoryID int            `json:"categoryId" bson:"categoryId"`
	Bucket     bucket.Bucket `json:"bucket" bson:"bucket"`
	Summary    string         `json:"summary" bson:"summary"`
}

// SectionResult is one section's scored state in a response payload
type SectionResult struct {
	SectionID int            `json:"sectionId"`
	Bucket    bucket.Bucket `json:"bucket"`
	Average   float64        `json:"average"`
	Summary   string         `json:"summary"`
}

// CategoryResult is one category's scored state in a response payload
type CategoryResult struct {
	CategoryID int            `json:"categoryId"`
	Name       string         `json:"name"`
	Bucket     bucket.Bucket `json:"bucket"`
	Average    float64        `json:"average"`
	Summary    string         `json:"summary"`
}

// ScoringOutcome is what one submit-and-score pass produced. Answers
// echoes the accepted batch back to the respondent. When Scored is
// false the survey had not yet reached its response floor and nothing
// was recomputed or persisted. ScoringError carries a scoring failure
// that happened after the answers were already accepted; answer
// acceptance never implies successful rescoring.
type ScoringOutcome struct {
	Scored        bool             `json:"scored"`
	Message       string           `json:"message"`
	Answers       []Answer         `json:"answers,omitempty"`
	ScoringError  string           `json:"scoringError,omitempty"`
	OverallBucket bucket.Bucket   `json:"overallBucket,omitempty"`
	Summary       *ResultSummary   `json:"summary,omitempty"`
	Sections      []SectionResult  `json:"sections,omitempty"`
	Categories    []CategoryResult `json:"categories,omitempty"`
}

// SurveyResult is the owner-facing result view of one survey
type SurveyResult struct {
	Result         *Result          `json:"result"`
	OverallBucket  bucket.Bucket   `json:"overallBucket"`
	Summary        *ResultSummary   `json:"summary"`
	Sections       []SectionResult  `json:"sections"`
	Categories     []CategoryResult `json:"categories"`
	BestQuestions  []QuestionScore  `json:"bestQuestions"`
	WorstQuestions []QuestionScore  `json:"worstQuestions"`
}
