package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sossut/adp2/internal/model"
)

type fakeCompanyRepo struct {
	companies map[string]*model.HousingCompany
}

func (r *fakeCompanyRepo) Create(_ context.Context, company *model.HousingCompany) (string, error) {
	company.ID = "company-1"
	r.companies[company.ID] = company
	return company.ID, nil
}

func (r *fakeCompanyRepo) GetByID(_ context.Context, id string) (*model.HousingCompany, error) {
	return r.companies[id], nil
}

func (r *fakeCompanyRepo) GetByOwner(_ context.Context, ownerID string) ([]*model.HousingCompany, error) {
	var out []*model.HousingCompany
	for _, c := range r.companies {
		if c.OwnerID == ownerID {
			out = append(out, c)
		}
	}
	return out, nil
}

type fakeQuestionRepo struct {
	questions []model.Question
	sections  []model.Section
}

func (r *fakeQuestionRepo) Create(_ context.Context, question *model.Question) (string, error) {
	r.questions = append(r.questions, *question)
	return question.ID, nil
}

func (r *fakeQuestionRepo) GetActive(_ context.Context) ([]model.Question, error) {
	return r.questions, nil
}

func (r *fakeQuestionRepo) GetSections(_ context.Context) ([]model.Section, error) {
	return r.sections, nil
}

type surveyFixture struct {
	svc         *SurveyService
	surveyRepo  *fakeSurveyRepo
	answerRepo  *fakeAnswerRepo
	resultRepo  *fakeResultRepo
	surveyCache *fakeSurveyCache
}

func newSurveyFixture(t *testing.T) *surveyFixture {
	t.Helper()

	surveyRepo := newFakeSurveyRepo()
	answerRepo := &fakeAnswerRepo{}
	resultRepo := newFakeResultRepo()
	surveyCache := newFakeSurveyCache()

	companyRepo := &fakeCompanyRepo{companies: map[string]*model.HousingCompany{
		"company-1": {ID: "company-1", Name: "As Oy Testitalo", ApartmentCount: 40, OwnerID: "owner-1"},
	}}
	questionRepo := &fakeQuestionRepo{
		questions: []model.Question{
			{ID: "q1", Text: "The temperature in my apartment is comfortable", Order: 1, SectionID: 1, CategoryID: 1, Active: true},
			{ID: "q2", Text: "I feel part of the resident community", Order: 2, SectionID: 3, CategoryID: 10, Active: true},
		},
		sections: []model.Section{
			{ID: 1, Name: "living conditions"},
			{ID: 2, Name: "housing company operations"},
			{ID: 3, Name: "community and participation"},
		},
	}

	return &surveyFixture{
		svc:         NewSurveyService(surveyRepo, answerRepo, resultRepo, companyRepo, questionRepo, surveyCache),
		surveyRepo:  surveyRepo,
		answerRepo:  answerRepo,
		resultRepo:  resultRepo,
		surveyCache: surveyCache,
	}
}

func TestSurveyCreate(t *testing.T) {
	f := newSurveyFixture(t)
	ctx := context.Background()

	survey, err := f.svc.Create(ctx, "owner-1", model.RoleOwner, &model.CreateSurveyRequest{
		HousingCompanyID: "company-1",
		MinResponses:     10,
	})
	require.NoError(t, err)

	assert.Len(t, survey.Key, 12)
	assert.Equal(t, model.SurveyStatusOpen, survey.Status)
	assert.Equal(t, "owner-1", survey.OwnerID)
	assert.Equal(t, 40, survey.MaxResponses, "max responses follows the apartment count")
	assert.Len(t, survey.QuestionsUsed, 2)
	assert.Len(t, survey.SectionsUsed, 3)

	// Key characters come from the unambiguous alphabet.
	for _, c := range survey.Key {
		assert.NotContains(t, "0O1lIo", string(c))
	}

	// The placeholder result record exists from the start.
	result, err := f.resultRepo.GetBySurveyID(ctx, survey.ID)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Zero(t, result.AnswerCount)
	assert.Empty(t, result.ResultSummaryID)

	// The key resolves from cache without a repo round trip.
	meta, err := f.surveyCache.GetMeta(ctx, survey.Key)
	require.NoError(t, err)
	require.NotNil(t, meta)
	assert.Equal(t, survey.ID, meta.SurveyID)
	assert.Equal(t, model.SurveyStatusOpen, meta.Status)
}

func TestSurveyCreateOwnership(t *testing.T) {
	f := newSurveyFixture(t)
	ctx := context.Background()

	_, err := f.svc.Create(ctx, "someone-else", model.RoleOwner, &model.CreateSurveyRequest{
		HousingCompanyID: "company-1",
	})
	assert.ErrorIs(t, err, ErrUnauthorized)

	// Admins may launch surveys for any company; the owner stays the
	// company's owner.
	survey, err := f.svc.Create(ctx, "admin-1", model.RoleAdmin, &model.CreateSurveyRequest{
		HousingCompanyID: "company-1",
	})
	require.NoError(t, err)
	assert.Equal(t, "owner-1", survey.OwnerID)
}

func TestSurveyCreateUnknownCompany(t *testing.T) {
	f := newSurveyFixture(t)

	_, err := f.svc.Create(context.Background(), "owner-1", model.RoleOwner, &model.CreateSurveyRequest{
		HousingCompanyID: "no-such-company",
	})
	assert.ErrorIs(t, err, ErrHousingCompanyNotFound)
}

func TestSurveyCreateKeysAreUnique(t *testing.T) {
	f := newSurveyFixture(t)
	ctx := context.Background()

	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		survey, err := f.svc.Create(ctx, "owner-1", model.RoleOwner, &model.CreateSurveyRequest{
			HousingCompanyID: "company-1",
		})
		require.NoError(t, err)
		assert.False(t, seen[survey.Key], "duplicate key %s", survey.Key)
		seen[survey.Key] = true
	}
}

func TestSurveyClose(t *testing.T) {
	f := newSurveyFixture(t)
	ctx := context.Background()

	survey, err := f.svc.Create(ctx, "owner-1", model.RoleOwner, &model.CreateSurveyRequest{
		HousingCompanyID: "company-1",
	})
	require.NoError(t, err)

	require.NoError(t, f.svc.Close(ctx, survey.ID, "owner-1", model.RoleOwner))

	stored, err := f.surveyRepo.GetByID(ctx, survey.ID)
	require.NoError(t, err)
	assert.Equal(t, model.SurveyStatusClosed, stored.Status)

	// Closing flips the status in place and touches nothing else: the
	// identity and the question snapshot survive.
	assert.Equal(t, survey.ID, stored.ID)
	assert.Equal(t, survey.Key, stored.Key)
	assert.Equal(t, survey.QuestionsUsed, stored.QuestionsUsed)

	// The cached meta follows, so the submission path sees the closed
	// state immediately.
	meta, err := f.surveyCache.GetMeta(ctx, survey.Key)
	require.NoError(t, err)
	require.NotNil(t, meta)
	assert.Equal(t, model.SurveyStatusClosed, meta.Status)
}

func TestSurveyDeleteCascades(t *testing.T) {
	f := newSurveyFixture(t)
	ctx := context.Background()

	survey, err := f.svc.Create(ctx, "owner-1", model.RoleOwner, &model.CreateSurveyRequest{
		HousingCompanyID: "company-1",
	})
	require.NoError(t, err)

	require.NoError(t, f.answerRepo.Create(ctx, &model.Answer{SurveyID: survey.ID, QuestionID: "q1", SectionID: 1, CategoryID: 1, Value: 1}))

	require.NoError(t, f.svc.Delete(ctx, survey.ID, "owner-1", model.RoleOwner))

	stored, err := f.surveyRepo.GetByID(ctx, survey.ID)
	require.NoError(t, err)
	assert.Nil(t, stored)

	count, err := f.answerRepo.CountBySurveyID(ctx, survey.ID)
	require.NoError(t, err)
	assert.Zero(t, count)

	result, err := f.resultRepo.GetBySurveyID(ctx, survey.ID)
	require.NoError(t, err)
	assert.Nil(t, result)

	meta, err := f.surveyCache.GetMeta(ctx, survey.Key)
	require.NoError(t, err)
	assert.Nil(t, meta)
}

func TestSurveyDeleteOwnership(t *testing.T) {
	f := newSurveyFixture(t)
	ctx := context.Background()

	survey, err := f.svc.Create(ctx, "owner-1", model.RoleOwner, &model.CreateSurveyRequest{
		HousingCompanyID: "company-1",
	})
	require.NoError(t, err)

	err = f.svc.Delete(ctx, survey.ID, "someone-else", model.RoleOwner)
	assert.ErrorIs(t, err, ErrUnauthorized)

	stored, err := f.surveyRepo.GetByID(ctx, survey.ID)
	require.NoError(t, err)
	assert.NotNil(t, stored)
}
