package service

import (
	"context"
	"crypto/rand"
	"fmt"

	"github.com/sossut/adp2/internal/cache"
	"github.com/sossut/adp2/internal/model"
	"github.com/sossut/adp2/internal/repository"
)

// SurveyService handles the survey lifecycle: launching a survey for a
// housing company, resolving it for respondents, and cascading deletes.
type SurveyService struct {
	surveyRepo  repository.SurveyRepo
	answerRepo  repository.AnswerRepo
	resultRepo  repository.ResultRepo
	companyRepo repository.HousingCompanyRepo
	qRepo       repository.QuestionRepo
	surveyCache cache.SurveyCache
}

// NewSurveyService creates a new survey service
func NewSurveyService(
	surveyRepo repository.SurveyRepo,
	answerRepo repository.AnswerRepo,
	resultRepo repository.ResultRepo,
	companyRepo repository.HousingCompanyRepo,
	qRepo repository.QuestionRepo,
	surveyCache cache.SurveyCache,
) *SurveyService {
	return &SurveyService{
		surveyRepo:  surveyRepo,
		answerRepo:  answerRepo,
		resultRepo:  resultRepo,
		companyRepo: companyRepo,
		qRepo:       qRepo,
		surveyCache: surveyCache,
	}
}

// Create launches a survey for a housing company. The currently active
// question set and the section set are snapshotted onto the survey, the
// maximum expected responses is the company's apartment count, and the
// survey's one result record is created with a zero counter and no
// summary reference yet.
func (s *SurveyService) Create(ctx context.Context, ownerID, role string, req *model.CreateSurveyRequest) (*model.Survey, error) {
	company, err := s.companyRepo.GetByID(ctx, req.HousingCompanyID)
	if err != nil {
		return nil, fmt.Errorf("failed to get housing company: %w", err)
	}
	if company == nil {
		return nil, ErrHousingCompanyNotFound
	}
	if role != model.RoleAdmin && company.OwnerID != ownerID {
		return nil, ErrUnauthorized
	}

	questions, err := s.qRepo.GetActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get active questions: %w", err)
	}
	if len(questions) == 0 {
		return nil, fmt.Errorf("no active questions: %w", ErrInvalidInput)
	}
	sections, err := s.qRepo.GetSections(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get sections: %w", err)
	}
	if len(sections) == 0 {
		return nil, fmt.Errorf("no sections: %w", ErrInvalidInput)
	}

	key, err := s.generateSurveyKey(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to generate survey key: %w", err)
	}

	survey := &model.Survey{
		Key:              key,
		HousingCompanyID: company.ID,
		OwnerID:          company.OwnerID,
		Status:           model.SurveyStatusOpen,
		StartDate:        req.StartDate,
		EndDate:          req.EndDate,
		MinResponses:     req.MinResponses,
		MaxResponses:     company.ApartmentCount,
		QuestionsUsed:    questions,
		SectionsUsed:     sections,
	}

	id, err := s.surveyRepo.Create(ctx, survey)
	if err != nil {
		return nil, fmt.Errorf("failed to create survey: %w", err)
	}
	survey.ID = id

	if err := s.resultRepo.Create(ctx, &model.Result{
		SurveyID:    id,
		AnswerCount: 0,
	}); err != nil {
		return nil, fmt.Errorf("failed to create result record: %w", err)
	}

	meta := &model.SurveyMeta{
		SurveyID:         id,
		HousingCompanyID: company.ID,
		OwnerID:          company.OwnerID,
		Status:           model.SurveyStatusOpen,
	}
	if err := s.surveyCache.SetMeta(ctx, key, meta); err != nil {
		return nil, fmt.Errorf("failed to cache survey: %w", err)
	}

	return survey, nil
}

// GetByID retrieves a survey, enforcing ownership for non-admins
func (s *SurveyService) GetByID(ctx context.Context, id, userID, role string) (*model.Survey, error) {
	survey, err := s.surveyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if survey == nil {
		return nil, ErrSurveyNotFound
	}
	if role != model.RoleAdmin && survey.OwnerID != userID {
		return nil, ErrUnauthorized
	}
	return survey, nil
}

// GetByKey resolves a survey from its public key. Used by the
// respondent-facing questionnaire fetch; no authentication involved.
func (s *SurveyService) GetByKey(ctx context.Context, key string) (*model.Survey, error) {
	survey, err := s.surveyRepo.GetByKey(ctx, key)
	if err != nil {
		return nil, err
	}
	if survey == nil {
		return nil, ErrSurveyNotFound
	}
	return survey, nil
}

// GetByOwner lists an owner's surveys
func (s *SurveyService) GetByOwner(ctx context.Context, ownerID string) ([]*model.Survey, error) {
	return s.surveyRepo.GetByOwner(ctx, ownerID)
}

// GetByHousingCompany lists surveys for one housing company
func (s *SurveyService) GetByHousingCompany(ctx context.Context, housingCompanyID, userID, role string) ([]*model.Survey, error) {
	company, err := s.companyRepo.GetByID(ctx, housingCompanyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, ErrHousingCompanyNotFound
	}
	if role != model.RoleAdmin && company.OwnerID != userID {
		return nil, ErrUnauthorized
	}
	return s.surveyRepo.GetByHousingCompany(ctx, housingCompanyID)
}

// Close marks a survey closed so it no longer accepts submissions
func (s *SurveyService) Close(ctx context.Context, id, userID, role string) error {
	survey, err := s.GetByID(ctx, id, userID, role)
	if err != nil {
		return err
	}

	if err := s.surveyRepo.SetStatus(ctx, survey.ID, model.SurveyStatusClosed); err != nil {
		return fmt.Errorf("failed to close survey: %w", err)
	}

	meta := &model.SurveyMeta{
		SurveyID:         survey.ID,
		HousingCompanyID: survey.HousingCompanyID,
		OwnerID:          survey.OwnerID,
		Status:           model.SurveyStatusClosed,
	}
	return s.surveyCache.SetMeta(ctx, survey.Key, meta)
}

// Delete removes a survey and cascades to its answers and result record
func (s *SurveyService) Delete(ctx context.Context, id, userID, role string) error {
	survey, err := s.GetByID(ctx, id, userID, role)
	if err != nil {
		return err
	}

	if err := s.answerRepo.DeleteBySurveyID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete answers: %w", err)
	}
	if err := s.resultRepo.DeleteBySurveyID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete result: %w", err)
	}
	if err := s.surveyRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete survey: %w", err)
	}
	return s.surveyCache.Delete(ctx, survey.Key)
}

// generateSurveyKey creates a 12-char alphanumeric key, retrying until
// it does not collide with an existing survey.
func (s *SurveyService) generateSurveyKey(ctx context.Context) (string, error) {
	const chars = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnpqrstuvwxyz23456789"
	const keyLen = 12

	for attempts := 0; attempts < 10; attempts++ {
		b := make([]byte, keyLen)
		if _, err := rand.Read(b); err != nil {
			return "", err
		}

		key := make([]byte, keyLen)
		for i := range key {
			key[i] = chars[int(b[i])%len(chars)]
		}
		keyStr := string(key)

		exists, err := s.surveyRepo.KeyExists(ctx, keyStr)
		if err != nil {
			return "", err
		}
		if !exists {
			return keyStr, nil
		}
	}

	return "", fmt.Errorf("failed to generate unique survey key")
}
