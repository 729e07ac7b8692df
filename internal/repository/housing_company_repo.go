package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/sossut/adp2/internal/model"
)

// HousingCompanyRepo handles MongoDB operations for housing companies
type HousingCompanyRepo interface {
	Create(ctx context.Context, company *model.HousingCompany) (string, error)
	GetByID(ctx context.Context, id string) (*model.HousingCompany, error)
	GetByOwner(ctx context.Context, ownerID string) ([]*model.HousingCompany, error)
}

type housingCompanyRepo struct {
	collection *mongo.Collection
}

// NewHousingCompanyRepo creates a new housing company repository
func NewHousingCompanyRepo(db *mongo.Database) HousingCompanyRepo {
	return &housingCompanyRepo{
		collection: db.Collection("housing_companies"),
	}
}

func (r *housingCompanyRepo) Create(ctx context.Context, company *model.HousingCompany) (string, error) {
	company.CreatedAt = time.Now()

	result, err := r.collection.InsertOne(ctx, company)
	if err != nil {
		return "", err
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", nil
	}
	return oid.Hex(), nil
}

func (r *housingCompanyRepo) GetByID(ctx context.Context, id string) (*model.HousingCompany, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	var company model.HousingCompany
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&company)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	company.ID = id
	return &company, nil
}

func (r *housingCompanyRepo) GetByOwner(ctx context.Context, ownerID string) ([]*model.HousingCompany, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"ownerId": ownerID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var companies []*model.HousingCompany
	if err := cursor.All(ctx, &companies); err != nil {
		return nil, err
	}
	return companies, nil
}
