package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/sossut/adp2/internal/model"
	"github.com/sossut/adp2/internal/scoring"
)

// CatalogRepo reads the static summary catalogs: the overall result
// summaries keyed by a bucket triple, and the per-section and
// per-category summaries keyed by (id, bucket). The catalogs are seeded
// once (cmd/seed) and never written by the engine.
type CatalogRepo interface {
	ResultSummaryByBuckets(ctx context.Context, s1, s2, s3 scoring.Bucket) (*model.ResultSummary, error)
	ResultSummaryByID(ctx context.Context, id string) (*model.ResultSummary, error)
	SectionSummary(ctx context.Context, sectionID int, bucket scoring.Bucket) (*model.SectionSummary, error)
	CategorySummary(ctx context.Context, categoryID int, bucket scoring.Bucket) (*model.QuestionCategorySummary, error)
}

type catalogRepo struct {
	resultSummaries   *mongo.Collection
	sectionSummaries  *mongo.Collection
	categorySummaries *mongo.Collection
}

// NewCatalogRepo creates a new catalog repository
func NewCatalogRepo(db *mongo.Database) CatalogRepo {
	return &catalogRepo{
		resultSummaries:   db.Collection("result_summaries"),
		sectionSummaries:  db.Collection("section_summaries"),
		categorySummaries: db.Collection("category_summaries"),
	}
}

func (r *catalogRepo) ResultSummaryByBuckets(ctx context.Context, s1, s2, s3 scoring.Bucket) (*model.ResultSummary, error) {
	var summary model.ResultSummary
	err := r.resultSummaries.FindOne(ctx, bson.M{
		"sectionOne":   s1,
		"sectionTwo":   s2,
		"sectionThree": s3,
	}).Decode(&summary)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &summary, nil
}

func (r *catalogRepo) ResultSummaryByID(ctx context.Context, id string) (*model.ResultSummary, error) {
	var summary model.ResultSummary
	err := r.resultSummaries.FindOne(ctx, bson.M{"_id": id}).Decode(&summary)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &summary, nil
}

func (r *catalogRepo) SectionSummary(ctx context.Context, sectionID int, bucket scoring.Bucket) (*model.SectionSummary, error) {
	var summary model.SectionSummary
	err := r.sectionSummaries.FindOne(ctx, bson.M{
		"sectionId": sectionID,
		"bucket":    bucket,
	}).Decode(&summary)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &summary, nil
}

func (r *catalogRepo) CategorySummary(ctx context.Context, categoryID int, bucket scoring.Bucket) (*model.QuestionCategorySummary, error) {
	var summary model.QuestionCategorySummary
	err := r.categorySummaries.FindOne(ctx, bson.M{
		"categoryId": categoryID,
		"bucket":     bucket,
	}).Decode(&summary)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &summary, nil
}
