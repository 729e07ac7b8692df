package service

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/sossut/adp2/internal/model"
	"github.com/sossut/adp2/internal/repository"
)

// QuestionService handles the master question set used when surveys
// are launched. Authoring flows beyond creating and listing active
// questions are out of scope.
type QuestionService struct {
	qRepo    repository.QuestionRepo
	validate *validator.Validate
}

// NewQuestionService creates a new question service
func NewQuestionService(qRepo repository.QuestionRepo) *QuestionService {
	return &QuestionService{
		qRepo:    qRepo,
		validate: validator.New(),
	}
}

// Create adds a question to the master set (admin only)
func (s *QuestionService) Create(ctx context.Context, role string, req *model.CreateQuestionRequest) (*model.Question, error) {
	if role != model.RoleAdmin {
		return nil, ErrUnauthorized
	}
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	question := &model.Question{
		Text:       req.Text,
		Weight:     req.Weight,
		Order:      req.Order,
		SectionID:  req.SectionID,
		CategoryID: req.CategoryID,
		Active:     true,
	}

	id, err := s.qRepo.Create(ctx, question)
	if err != nil {
		return nil, fmt.Errorf("failed to create question: %w", err)
	}
	question.ID = id
	return question, nil
}

// GetActive lists the active question set
func (s *QuestionService) GetActive(ctx context.Context) ([]model.Question, error) {
	return s.qRepo.GetActive(ctx)
}
