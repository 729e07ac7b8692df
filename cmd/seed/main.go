package main

import (
	"context"
	"log"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sossut/adp2/internal/catalog"
	"github.com/sossut/adp2/internal/model"
	"github.com/sossut/adp2/internal/scoring"
)

// Seeds the static summary catalogs and the master question set. The
// catalog rows come from internal/catalog, which enumerates every
// bucket triple and every (section, bucket) and (category, bucket)
// pair, so lookups during scoring can never miss.
func main() {
	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		mongoURI = "mongodb://localhost:27017"
	}
	database := os.Getenv("MONGO_DATABASE")
	if database == "" {
		database = "adp2"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)

	db := client.Database(database)

	seedSections(ctx, db)
	seedQuestions(ctx, db)
	seedSectionSummaries(ctx, db)
	seedCategorySummaries(ctx, db)
	seedResultSummaries(ctx, db)

	log.Println("Seeding complete")
}

func seedSections(ctx context.Context, db *mongo.Database) {
	coll := db.Collection("sections")
	for id := 1; id <= scoring.SectionCount; id++ {
		section := model.Section{ID: id, Name: catalog.SectionName(id)}
		_, err := coll.ReplaceOne(ctx, bson.M{"_id": id}, section, options.Replace().SetUpsert(true))
		if err != nil {
			log.Fatalf("Failed to seed section %d: %v", id, err)
		}
	}
	log.Printf("Seeded %d sections", scoring.SectionCount)
}

func seedQuestions(ctx context.Context, db *mongo.Database) {
	coll := db.Collection("questions")

	count, err := coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		log.Fatalf("Failed to count questions: %v", err)
	}
	if count > 0 {
		log.Println("Questions already seeded, skipping")
		return
	}

	// One statement per category, spread over the three sections the
	// way the questionnaire groups them.
	texts := map[int]string{
		1:  "The temperature in my apartment is comfortable year-round",
		2:  "The lighting in the common areas is adequate",
		3:  "The air quality in my apartment is good",
		4:  "Repairs I am responsible for are easy to get done",
		5:  "I keep my apartment in good condition",
		6:  "The building uses energy efficiently",
		7:  "I can influence decisions about the housing company",
		8:  "The housing company keeps the building well maintained",
		9:  "The housing company's finances are managed well",
		10: "I feel part of the resident community",
	}
	sectionFor := map[int]int{1: 1, 2: 1, 3: 1, 4: 1, 5: 1, 6: 2, 7: 3, 8: 2, 9: 2, 10: 3}

	for categoryID := 1; categoryID <= scoring.CategoryCount; categoryID++ {
		question := model.Question{
			Text:       texts[categoryID],
			Weight:     1,
			Order:      categoryID,
			SectionID:  sectionFor[categoryID],
			CategoryID: categoryID,
			Active:     true,
		}
		if _, err := coll.InsertOne(ctx, question); err != nil {
			log.Fatalf("Failed to seed question %d: %v", categoryID, err)
		}
	}
	log.Printf("Seeded %d questions", scoring.CategoryCount)
}

func seedSectionSummaries(ctx context.Context, db *mongo.Database) {
	coll := db.Collection("section_summaries")
	rows := catalog.SectionSummaries()
	for _, summary := range rows {
		_, err := coll.ReplaceOne(ctx, bson.M{"_id": summary.ID}, summary, options.Replace().SetUpsert(true))
		if err != nil {
			log.Fatalf("Failed to seed section summary %s: %v", summary.ID, err)
		}
	}
	log.Printf("Seeded %d section summaries", len(rows))
}

func seedCategorySummaries(ctx context.Context, db *mongo.Database) {
	coll := db.Collection("category_summaries")
	rows := catalog.CategorySummaries()
	for _, summary := range rows {
		_, err := coll.ReplaceOne(ctx, bson.M{"_id": summary.ID}, summary, options.Replace().SetUpsert(true))
		if err != nil {
			log.Fatalf("Failed to seed category summary %s: %v", summary.ID, err)
		}
	}
	log.Printf("Seeded %d category summaries", len(rows))
}

func seedResultSummaries(ctx context.Context, db *mongo.Database) {
	coll := db.Collection("result_summaries")
	rows := catalog.ResultSummaries()
	for _, summary := range rows {
		_, err := coll.ReplaceOne(ctx, bson.M{"_id": summary.ID}, summary, options.Replace().SetUpsert(true))
		if err != nil {
			log.Fatalf("Failed to seed result summary %s: %v", summary.ID, err)
		}
	}
	log.Printf("Seeded %d result summaries", len(rows))
}
