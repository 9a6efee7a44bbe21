package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Enquiry is a buyer message about a listed property, submitted from the
// detail page contact form.
type Enquiry struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	PropertyID string             `bson:"propertyId" json:"propertyId"`
	Name       string             `bson:"name" json:"name"`
	Email      string             `bson:"email" json:"email"`
	Phone      string             `bson:"phone" json:"phone"`
	Message    string             `bson:"message" json:"message"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
}

type EnquiryRequest struct {
	PropertyID string `json:"propertyId"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Message    string `json:"message"`
}
