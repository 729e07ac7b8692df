package model

import "time"

// HousingCompany is an apartment building whose residents are surveyed.
// ApartmentCount caps the expected responses of a survey launched for it.
type HousingCompany struct {
	ID             string    `json:"id" bson:"_id,omitempty"`
	Name           string    `json:"name" bson:"name"`
	ApartmentCount int       `json:"apartmentCount" bson:"apartmentCount"`
	OwnerID        string    `json:"ownerId" bson:"ownerId"`
	CreatedAt      time.Time `json:"createdAt" bson:"createdAt"`
}

// CreateHousingCompanyRequest is the request body for creating a housing company
type CreateHousingCompanyRequest struct {
	Name           string `json:"name" validate:"required"`
	ApartmentCount int    `json:"apartmentCount" validate:"required,gt=0"`
}
