package model

import "time"

// Answer is one resident's numeric response to one question within one
// survey. Append-only: the scoring engine never updates answers, they
// are deleted only when their parent survey is deleted.
type Answer struct {
	ID         string    `json:"id" bson:"_id,omitempty"`
	SurveyID   string    `json:"surveyId" bson:"surveyId"`
	BatchID    string    `json:"batchId" bson:"batchId"`
	QuestionID string    `json:"questionId" bson:"questionId"`
	SectionID  int       `json:"sectionId" bson:"sectionId"`
	CategoryID int       `json:"categoryId" bson:"categoryId"`
	Value      int       `json:"value" bson:"value"`
	AnsweredAt time.Time `json:"answeredAt" bson:"answeredAt"`
}

// AnswerInput is a single submitted answer inside a batch
type AnswerInput struct {
	QuestionID string `json:"questionId" validate:"required"`
	SectionID  int    `json:"sectionId" validate:"required,min=1,max=3"`
	CategoryID int    `json:"categoryId" validate:"required,min=1,max=10"`
	Value      int    `json:"value" validate:"min=-2,max=2"`
}

// SubmitAnswersRequest is the request body for a resident submitting a
// full questionnaire
type SubmitAnswersRequest struct {
	Answers []AnswerInput `json:"answers" validate:"required,min=1,dive"`
}

// QuestionScore is one question's summed answer values, used for the
// best/worst question lists on the result view.
type QuestionScore struct {
	QuestionID string `json:"questionId" bson:"_id"`
	Text       string `json:"text" bson:"text"`
	Order      int    `json:"order" bson:"order"`
	Sum        int    `json:"sum" bson:"sum"`
}
