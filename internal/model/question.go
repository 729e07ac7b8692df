package model

// Question is a multiple-choice statement residents react to. Answers
// are recorded on a symmetric integer scale (negative to positive).
// SectionID and CategoryID place the question in the fixed coarse and
// fine groupings used by scoring.
type Question struct {
	ID         string `json:"id" bson:"_id,omitempty"`
	Text       string `json:"text" bson:"text"`
	Weight     int    `json:"weight" bson:"weight"`
	Order      int    `json:"order" bson:"order"`
	SectionID  int    `json:"sectionId" bson:"sectionId"`
	CategoryID int    `json:"categoryId" bson:"categoryId"`
	Active     bool   `json:"active" bson:"active"`
}

// Section is one of the three fixed coarse question groupings.
type Section struct {
	ID   int    `json:"id" bson:"_id"`
	Name string `json:"name" bson:"name"`
}

// CreateQuestionRequest is the request body for creating a question
type CreateQuestionRequest struct {
	Text       string `json:"text" validate:"required"`
	Weight     int    `json:"weight"`
	Order      int    `json:"order"`
	SectionID  int    `json:"sectionId" validate:"required,min=1,max=3"`
	CategoryID int    `json:"categoryId" validate:"required,min=1,max=10"`
}
