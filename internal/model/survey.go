package model

import "time"

// SurveyStatus is the lifecycle state of a survey
type SurveyStatus string

const (
	SurveyStatusOpen   SurveyStatus = "open"
	SurveyStatusClosed SurveyStatus = "closed"
)

// Survey is a single distribution of the questionnaire to one housing
// company. Key is the unguessable public identifier respondents submit
// with. QuestionsUsed and SectionsUsed are immutable snapshots of the
// active question and section sets taken at creation time.
type Survey struct {
	ID               string       `json:"id" bson:"_id,omitempty"`
	Key              string       `json:"key" bson:"key"`
	HousingCompanyID string       `json:"housingCompanyId" bson:"housingCompanyId"`
	OwnerID          string       `json:"ownerId" bson:"ownerId"`
	Status           SurveyStatus `json:"status" bson:"status"`
	StartDate        *time.Time   `json:"startDate,omitempty" bson:"startDate,omitempty"`
	EndDate          *time.Time   `json:"endDate,omitempty" bson:"endDate,omitempty"`
	MinResponses     int          `json:"minResponses" bson:"minResponses"`
	MaxResponses     int          `json:"maxResponses" bson:"maxResponses"`
	QuestionsUsed    []Question   `json:"questionsUsed" bson:"questionsUsed"`
	SectionsUsed     []Section    `json:"sectionsUsed" bson:"sectionsUsed"`
	CreatedAt        time.Time    `json:"createdAt" bson:"createdAt"`
	UpdatedAt        time.Time    `json:"updatedAt" bson:"updatedAt"`
}

// SurveyMeta is the Redis-cached subset of a survey used on the hot
// submission path, keyed by survey key.
type SurveyMeta struct {
	SurveyID         string       `json:"surveyId"`
	HousingCompanyID string       `json:"housingCompanyId"`
	OwnerID          string       `json:"ownerId"`
	Status           SurveyStatus `json:"status"`
}

// CreateSurveyRequest is the request body for launching a survey
type CreateSurveyRequest struct {
	HousingCompanyID string     `json:"housingCompanyId" validate:"required"`
	StartDate        *time.Time `json:"startDate,omitempty"`
	EndDate          *time.Time `json:"endDate,omitempty"`
	MinResponses     int        `json:"minResponses" validate:"omitempty,gt=0"`
}
