package service

import (
	"context"
	"fmt"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/sossut/adp2/internal/cache"
	"github.com/sossut/adp2/internal/model"
	"github.com/sossut/adp2/internal/repository"
	"github.com/sossut/adp2/internal/scoring"
)

// ScoringService runs the submit-and-score pipeline: accept a
// resident's answer batch, bump the survey's answer counter, and once
// enough responses have been collected, recompute the survey's
// qualitative result from the full answer set.
type ScoringService struct {
	surveyRepo   repository.SurveyRepo
	answerRepo   repository.AnswerRepo
	resultRepo   repository.ResultRepo
	catalogRepo  repository.CatalogRepo
	surveyCache  cache.SurveyCache
	catalogCache cache.CatalogCache
	gate         scoring.Gate
	validate     *validator.Validate
	broadcaster  Broadcaster
}

// NewScoringService creates a new scoring service
func NewScoringService(
	surveyRepo repository.SurveyRepo,
	answerRepo repository.AnswerRepo,
	resultRepo repository.ResultRepo,
	catalogRepo repository.CatalogRepo,
	surveyCache cache.SurveyCache,
	catalogCache cache.CatalogCache,
	gate scoring.Gate,
) *ScoringService {
	return &ScoringService{
		surveyRepo:   surveyRepo,
		answerRepo:   answerRepo,
		resultRepo:   resultRepo,
		catalogRepo:  catalogRepo,
		surveyCache:  surveyCache,
		catalogCache: catalogCache,
		gate:         gate,
		validate:     validator.New(),
	}
}

// SetBroadcaster sets the broadcaster for owner dashboard events
func (s *ScoringService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

// SubmitAnswers persists a resident's answer batch for the survey
// behind key and rescores the survey. Answer inserts are independent
// and are not rolled back if scoring fails afterwards; in that case the
// outcome carries the scoring error alongside the acceptance message.
func (s *ScoringService) SubmitAnswers(ctx context.Context, surveyKey string, req *model.SubmitAnswersRequest) (*model.ScoringOutcome, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	meta, err := s.resolveSurvey(ctx, surveyKey)
	if err != nil {
		return nil, err
	}
	if meta.Status != model.SurveyStatusOpen {
		return nil, ErrSurveyClosed
	}

	batchID := uuid.New().String()
	stored := make([]model.Answer, 0, len(req.Answers))
	for _, in := range req.Answers {
		answer := &model.Answer{
			SurveyID:   meta.SurveyID,
			BatchID:    batchID,
			QuestionID: in.QuestionID,
			SectionID:  in.SectionID,
			CategoryID: in.CategoryID,
			Value:      in.Value,
		}
		if err := s.answerRepo.Create(ctx, answer); err != nil {
			return nil, fmt.Errorf("failed to store answer: %w", err)
		}
		stored = append(stored, *answer)
	}

	// One increment per stored answer, keeping the counter equal to
	// the number of answer rows.
	if err := s.resultRepo.IncrementAnswerCount(ctx, meta.SurveyID, len(req.Answers)); err != nil {
		return nil, fmt.Errorf("failed to update answer count: %w", err)
	}

	if s.broadcaster != nil {
		s.broadcaster.BroadcastToOwner(surveyKey, "answers_received", map[string]interface{}{
			"surveyId": meta.SurveyID,
			"batchId":  batchID,
			"answers":  len(req.Answers),
		})
	}

	outcome, err := s.Rescore(ctx, meta.SurveyID)
	if err != nil {
		// The batch is already accepted; surface the scoring failure
		// separately instead of failing the submission.
		log.Printf("scoring survey %s failed: %v", meta.SurveyID, err)
		return &model.ScoringOutcome{
			Scored:       false,
			Message:      "answers added",
			Answers:      stored,
			ScoringError: err.Error(),
		}, nil
	}
	outcome.Message = "answers added"
	outcome.Answers = stored

	if s.broadcaster != nil {
		event := "not_enough_answers"
		if outcome.Scored {
			event = "survey_scored"
		}
		s.broadcaster.BroadcastToOwner(surveyKey, event, outcome)
	}

	return outcome, nil
}

// Rescore recomputes a survey's result from its complete answer set.
// Below the response floor it reports the not-enough-answers state
// without touching the stored result. The computation is a pure
// read+aggregate; only the final summary reference is written, so
// concurrent rescores converge on the same value.
func (s *ScoringService) Rescore(ctx context.Context, surveyID string) (*model.ScoringOutcome, error) {
	result, err := s.resultRepo.GetBySurveyID(ctx, surveyID)
	if err != nil {
		return nil, fmt.Errorf("failed to get result record: %w", err)
	}
	if result == nil {
		return nil, ErrResultNotFound
	}

	if !s.gate.Eligible(result.AnswerCount) {
		return &model.ScoringOutcome{
			Scored:  false,
			Message: "not enough answers",
		}, nil
	}

	answers, err := s.answerRepo.GetBySurveyID(ctx, surveyID)
	if err != nil {
		return nil, fmt.Errorf("failed to get answers: %w", err)
	}

	totals := scoring.Aggregate(answers)

	buckets, sections, err := s.sectionResults(ctx, &totals)
	if err != nil {
		return nil, err
	}

	summary, err := s.resolveResultSummary(ctx, buckets[0], buckets[1], buckets[2])
	if err != nil {
		return nil, err
	}

	categories, err := s.categoryResults(ctx, &totals)
	if err != nil {
		return nil, err
	}

	overallAvg, ok := totals.Overall.Average()
	if !ok {
		// Unreachable once the gate passed, but never classify an
		// empty set.
		return nil, fmt.Errorf("no answers to aggregate: %w", ErrInvalidInput)
	}

	if err := s.resultRepo.SetResultSummary(ctx, surveyID, summary.ID); err != nil {
		return nil, fmt.Errorf("failed to store result summary: %w", err)
	}

	return &model.ScoringOutcome{
		Scored:        true,
		OverallBucket: scoring.Classify(overallAvg),
		Summary:       summary,
		Sections:      sections,
		Categories:    categories,
	}, nil
}

// SurveyResult assembles the owner-facing result view: the stored
// result record, the resolved summaries with raw averages, and the
// three best and worst scoring questions.
func (s *ScoringService) SurveyResult(ctx context.Context, surveyID, userID, role string) (*model.SurveyResult, error) {
	survey, err := s.surveyRepo.GetByID(ctx, surveyID)
	if err != nil {
		return nil, err
	}
	if survey == nil {
		return nil, ErrSurveyNotFound
	}
	if role != model.RoleAdmin && survey.OwnerID != userID {
		return nil, ErrUnauthorized
	}

	result, err := s.resultRepo.GetBySurveyID(ctx, surveyID)
	if err != nil {
		return nil, fmt.Errorf("failed to get result record: %w", err)
	}
	if result == nil {
		return nil, ErrResultNotFound
	}
	if result.ResultSummaryID == "" {
		return nil, ErrNotScored
	}

	summary, err := s.catalogRepo.ResultSummaryByID(ctx, result.ResultSummaryID)
	if err != nil {
		return nil, fmt.Errorf("failed to get result summary: %w", err)
	}
	if summary == nil {
		return nil, ErrSummaryNotFound
	}

	answers, err := s.answerRepo.GetBySurveyID(ctx, surveyID)
	if err != nil {
		return nil, fmt.Errorf("failed to get answers: %w", err)
	}
	totals := scoring.Aggregate(answers)

	_, sections, err := s.sectionResults(ctx, &totals)
	if err != nil {
		return nil, err
	}
	categories, err := s.categoryResults(ctx, &totals)
	if err != nil {
		return nil, err
	}

	overallAvg, ok := totals.Overall.Average()
	if !ok {
		return nil, fmt.Errorf("no answers to aggregate: %w", ErrInvalidInput)
	}

	best, err := s.answerRepo.TopQuestions(ctx, surveyID, 3)
	if err != nil {
		return nil, fmt.Errorf("failed to get best questions: %w", err)
	}
	worst, err := s.answerRepo.BottomQuestions(ctx, surveyID, 3)
	if err != nil {
		return nil, fmt.Errorf("failed to get worst questions: %w", err)
	}
	fillQuestionText(best, survey.QuestionsUsed)
	fillQuestionText(worst, survey.QuestionsUsed)

	return &model.SurveyResult{
		Result:         result,
		OverallBucket:  scoring.Classify(overallAvg),
		Summary:        summary,
		Sections:       sections,
		Categories:     categories,
		BestQuestions:  best,
		WorstQuestions: worst,
	}, nil
}

// sectionResults classifies the three section averages and resolves
// their narratives. Every section must have at least one answer once
// the gate has passed; an empty section makes the overall bucket triple
// undefined.
func (s *ScoringService) sectionResults(ctx context.Context, totals *scoring.Totals) ([scoring.SectionCount]scoring.Bucket, []model.SectionResult, error) {
	var buckets [scoring.SectionCount]scoring.Bucket
	results := make([]model.SectionResult, 0, scoring.SectionCount)

	for id := 1; id <= scoring.SectionCount; id++ {
		avg, ok := totals.Section(id).Average()
		if !ok {
			return buckets, nil, fmt.Errorf("section %d has no answers: %w", id, ErrInvalidInput)
		}
		bucket := scoring.Classify(avg)
		buckets[id-1] = bucket

		summary, err := s.resolveSectionSummary(ctx, id, bucket)
		if err != nil {
			return buckets, nil, err
		}
		results = append(results, model.SectionResult{
			SectionID: id,
			Bucket:    bucket,
			Average:   avg,
			Summary:   summary.Summary,
		})
	}
	return buckets, results, nil
}

// categoryResults classifies the category averages. Categories with no
// answers are omitted from the response rather than given a fabricated
// bucket.
func (s *ScoringService) categoryResults(ctx context.Context, totals *scoring.Totals) ([]model.CategoryResult, error) {
	results := make([]model.CategoryResult, 0, scoring.CategoryCount)

	for id := 1; id <= scoring.CategoryCount; id++ {
		avg, ok := totals.Category(id).Average()
		if !ok {
			continue
		}
		bucket := scoring.Classify(avg)

		summary, err := s.resolveCategorySummary(ctx, id, bucket)
		if err != nil {
			return nil, err
		}
		results = append(results, model.CategoryResult{
			CategoryID: id,
			Name:       scoring.CategoryName(id),
			Bucket:     bucket,
			Average:    avg,
			Summary:    summary.Summary,
		})
	}
	return results, nil
}

func (s *ScoringService) resolveSurvey(ctx context.Context, surveyKey string) (*model.SurveyMeta, error) {
	meta, err := s.surveyCache.GetMeta(ctx, surveyKey)
	if err != nil {
		return nil, fmt.Errorf("failed to get survey meta: %w", err)
	}
	if meta != nil {
		return meta, nil
	}

	survey, err := s.surveyRepo.GetByKey(ctx, surveyKey)
	if err != nil {
		return nil, fmt.Errorf("failed to get survey: %w", err)
	}
	if survey == nil {
		return nil, ErrSurveyNotFound
	}

	meta = &model.SurveyMeta{
		SurveyID:         survey.ID,
		HousingCompanyID: survey.HousingCompanyID,
		OwnerID:          survey.OwnerID,
		Status:           survey.Status,
	}
	if err := s.surveyCache.SetMeta(ctx, surveyKey, meta); err != nil {
		return nil, fmt.Errorf("failed to cache survey: %w", err)
	}
	return meta, nil
}

func (s *ScoringService) resolveResultSummary(ctx context.Context, s1, s2, s3 scoring.Bucket) (*model.ResultSummary, error) {
	if s.catalogCache != nil {
		cached, err := s.catalogCache.GetResultSummary(ctx, s1, s2, s3)
		if err == nil && cached != nil {
			return cached, nil
		}
	}

	summary, err := s.catalogRepo.ResultSummaryByBuckets(ctx, s1, s2, s3)
	if err != nil {
		return nil, fmt.Errorf("failed to get result summary: %w", err)
	}
	if summary == nil {
		return nil, fmt.Errorf("no catalog row for (%s, %s, %s): %w", s1, s2, s3, ErrSummaryNotFound)
	}

	if s.catalogCache != nil {
		if err := s.catalogCache.SetResultSummary(ctx, summary); err != nil {
			log.Printf("failed to cache result summary: %v", err)
		}
	}
	return summary, nil
}

func (s *ScoringService) resolveSectionSummary(ctx context.Context, sectionID int, bucket scoring.Bucket) (*model.SectionSummary, error) {
	if s.catalogCache != nil {
		cached, err := s.catalogCache.GetSectionSummary(ctx, sectionID, bucket)
		if err == nil && cached != nil {
			return cached, nil
		}
	}

	summary, err := s.catalogRepo.SectionSummary(ctx, sectionID, bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to get section summary: %w", err)
	}
	if summary == nil {
		return nil, fmt.Errorf("no catalog row for section %d %s: %w", sectionID, bucket, ErrSummaryNotFound)
	}

	if s.catalogCache != nil {
		if err := s.catalogCache.SetSectionSummary(ctx, summary); err != nil {
			log.Printf("failed to cache section summary: %v", err)
		}
	}
	return summary, nil
}

func (s *ScoringService) resolveCategorySummary(ctx context.Context, categoryID int, bucket scoring.Bucket) (*model.QuestionCategorySummary, error) {
	if s.catalogCache != nil {
		cached, err := s.catalogCache.GetCategorySummary(ctx, categoryID, bucket)
		if err == nil && cached != nil {
			return cached, nil
		}
	}

	summary, err := s.catalogRepo.CategorySummary(ctx, categoryID, bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to get category summary: %w", err)
	}
	if summary == nil {
		return nil, fmt.Errorf("no catalog row for category %d %s: %w", categoryID, bucket, ErrSummaryNotFound)
	}

	if s.catalogCache != nil {
		if err := s.catalogCache.SetCategorySummary(ctx, summary); err != nil {
			log.Printf("failed to cache category summary: %v", err)
		}
	}
	return summary, nil
}

func fillQuestionText(scores []model.QuestionScore, questions []model.Question) {
	byID := make(map[string]model.Question, len(questions))
	for _, q := range questions {
		byID[q.ID] = q
	}
	for i := range scores {
		if q, ok := byID[scores[i].QuestionID]; ok {
			scores[i].Text = q.Text
			scores[i].Order = q.Order
		}
	}
}
