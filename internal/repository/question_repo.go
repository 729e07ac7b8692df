package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sossut/adp2/internal/model"
)

// QuestionRepo handles MongoDB operations for the master question and
// section sets. Surveys snapshot the active questions at creation time,
// so these are read mostly at survey launch.
type QuestionRepo interface {
	Create(ctx context.Context, question *model.Question) (string, error)
	GetActive(ctx context.Context) ([]model.Question, error)
	GetSections(ctx context.Context) ([]model.Section, error)
}

type questionRepo struct {
	questions *mongo.Collection
	sections  *mongo.Collection
}

// NewQuestionRepo creates a new question repository
func NewQuestionRepo(db *mongo.Database) QuestionRepo {
	return &questionRepo{
		questions: db.Collection("questions"),
		sections:  db.Collection("sections"),
	}
}

func (r *questionRepo) Create(ctx context.Context, question *model.Question) (string, error) {
	result, err := r.questions.InsertOne(ctx, question)
	if err != nil {
		return "", err
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", nil
	}
	return oid.Hex(), nil
}

func (r *questionRepo) GetActive(ctx context.Context) ([]model.Question, error) {
	opts := options.Find().SetSort(bson.D{{Key: "order", Value: 1}})
	cursor, err := r.questions.Find(ctx, bson.M{"active": true}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var questions []model.Question
	if err := cursor.All(ctx, &questions); err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *questionRepo) GetSections(ctx context.Context) ([]model.Section, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cursor, err := r.sections.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var sections []model.Section
	if err := cursor.All(ctx, &sections); err != nil {
		return nil, err
	}
	return sections, nil
}
