package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/sossut/adp2/internal/model"
)

// ResultRepo handles MongoDB operations for the per-survey result
// record. Exactly one result document exists per survey, created with
// the survey itself.
type ResultRepo interface {
	Create(ctx context.Context, result *model.Result) error
	GetBySurveyID(ctx context.Context, surveyID string) (*model.Result, error)
	// IncrementAnswerCount bumps the stored counter atomically on the
	// server so concurrent submissions cannot lose updates.
	IncrementAnswerCount(ctx context.Context, surveyID string, by int) error
	// SetResultSummary overwrites the result-summary reference.
	// Last writer wins; the value is always recomputed from the full
	// answer set, so stale overwrites converge.
	SetResultSummary(ctx context.Context, surveyID, resultSummaryID string) error
	DeleteBySurveyID(ctx context.Context, surveyID string) error
}

type resultRepo struct {
	collection *mongo.Collection
}

// NewResultRepo creates a new result repository
func NewResultRepo(db *mongo.Database) ResultRepo {
	return &resultRepo{
		collection: db.Collection("results"),
	}
}

func (r *resultRepo) Create(ctx context.Context, result *model.Result) error {
	if result.CreatedAt.IsZero() {
		result.CreatedAt = time.Now()
	}

	_, err := r.collection.InsertOne(ctx, result)
	return err
}

func (r *resultRepo) GetBySurveyID(ctx context.Context, surveyID string) (*model.Result, error) {
	var result model.Result
	err := r.collection.FindOne(ctx, bson.M{"surveyId": surveyID}).Decode(&result)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *resultRepo) IncrementAnswerCount(ctx context.Context, surveyID string, by int) error {
	res, err := r.collection.UpdateOne(ctx,
		bson.M{"surveyId": surveyID},
		bson.M{"$inc": bson.M{"answerCount": by}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *resultRepo) SetResultSummary(ctx context.Context, surveyID, resultSummaryID string) error {
	res, err := r.collection.UpdateOne(ctx,
		bson.M{"surveyId": surveyID},
		bson.M{"$set": bson.M{"resultSummaryId": resultSummaryID}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *resultRepo) DeleteBySurveyID(ctx context.Context, surveyID string) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{"surveyId": surveyID})
	return err
}
