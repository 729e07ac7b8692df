package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/sossut/adp2/internal/model"
)

// AnswerRepo handles MongoDB operations for answers. Answers are
// append-only: inserted on submission, removed only with their survey.
type AnswerRepo interface {
	Create(ctx context.Context, answer *model.Answer) error
	GetBySurveyID(ctx context.Context, surveyID string) ([]model.Answer, error)
	CountBySurveyID(ctx context.Context, surveyID string) (int, error)
	DeleteBySurveyID(ctx context.Context, surveyID string) error
	TopQuestions(ctx context.Context, surveyID string, limit int) ([]model.QuestionScore, error)
	BottomQuestions(ctx context.Context, surveyID string, limit int) ([]model.QuestionScore, error)
}

type answerRepo struct {
	collection *mongo.Collection
}

// NewAnswerRepo creates a new answer repository
func NewAnswerRepo(db *mongo.Database) AnswerRepo {
	return &answerRepo{
		collection: db.Collection("answers"),
	}
}

func (r *answerRepo) Create(ctx context.Context, answer *model.Answer) error {
	if answer.AnsweredAt.IsZero() {
		answer.AnsweredAt = time.Now()
	}

	_, err := r.collection.InsertOne(ctx, answer)
	return err
}

func (r *answerRepo) GetBySurveyID(ctx context.Context, surveyID string) ([]model.Answer, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"surveyId": surveyID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var answers []model.Answer
	if err := cursor.All(ctx, &answers); err != nil {
		return nil, err
	}
	return answers, nil
}

func (r *answerRepo) CountBySurveyID(ctx context.Context, surveyID string) (int, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"surveyId": surveyID})
	return int(count), err
}

func (r *answerRepo) DeleteBySurveyID(ctx context.Context, surveyID string) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{"surveyId": surveyID})
	return err
}

func (r *answerRepo) TopQuestions(ctx context.Context, surveyID string, limit int) ([]model.QuestionScore, error) {
	return r.rankedQuestions(ctx, surveyID, -1, limit)
}

func (r *answerRepo) BottomQuestions(ctx context.Context, surveyID string, limit int) ([]model.QuestionScore, error) {
	return r.rankedQuestions(ctx, surveyID, 1, limit)
}

// rankedQuestions sums answer values per question and returns the
// questions with the highest (sortDir -1) or lowest (sortDir 1) sums.
// Question text is filled in by the caller from the survey's question
// snapshot.
func (r *answerRepo) rankedQuestions(ctx context.Context, surveyID string, sortDir, limit int) ([]model.QuestionScore, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"surveyId": surveyID}}},
		{{Key: "$group", Value: bson.M{
			"_id": "$questionId",
			"sum": bson.M{"$sum": "$value"},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "sum", Value: sortDir}, {Key: "_id", Value: 1}}}},
		{{Key: "$limit", Value: limit}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var scores []model.QuestionScore
	if err := cursor.All(ctx, &scores); err != nil {
		return nil, err
	}
	return scores, nil
}
