package handlers

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/pratishelar/realtor-sub000/config"
	"github.com/pratishelar/realtor-sub000/models"
	"github.com/pratishelar/realtor-sub000/utils"
)

type EnquiryController struct {
	collection         *mongo.Collection
	propertyCollection *mongo.Collection
}

func NewEnquiryController() *EnquiryController {
	collectionName := os.Getenv("MONGODB_COLLECTION_ENQUIRIES")
	if collectionName == "" {
		collectionName = "enquiries"
	}
	propertyCollectionName := os.Getenv("MONGODB_COLLECTION_PROPERTIES")
	if propertyCollectionName == "" {
		propertyCollectionName = "properties"
	}
	return &EnquiryController{
		collection:         config.GetCollection(collectionName),
		propertyCollection: config.GetCollection(propertyCollectionName),
	}
}

// CreateEnquiry takes a contact-form submission from a property detail page.
func (ec *EnquiryController) CreateEnquiry(c echo.Context) error {
	var req models.EnquiryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	if problems := utils.ValidateEnquiry(req); len(problems) > 0 {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{"error": "Validation failed", "details": problems})
	}

	propertyID, err := primitive.ObjectIDFromHex(req.PropertyID)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Property not found"})
	}
	count, err := ec.propertyCollection.CountDocuments(context.Background(), bson.M{"_id": propertyID})
	if err != nil {
		log.Printf("Failed to check property for enquiry: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to submit enquiry"})
	}
	if count == 0 {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Property not found"})
	}

	enquiry := models.Enquiry{
		ID:         primitive.NewObjectID(),
		PropertyID: req.PropertyID,
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Message:    req.Message,
		CreatedAt:  time.Now(),
	}
	if _, err := ec.collection.InsertOne(context.Background(), enquiry); err != nil {
		log.Printf("Failed to store enquiry: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to submit enquiry"})
	}
	return c.JSON(http.StatusCreated, enquiry)
}

// ListEnquiries is the admin view, newest first.
func (ec *EnquiryController) ListEnquiries(c echo.Context) error {
	ctx := context.Background()
	cursor, err := ec.collection.Find(ctx, bson.M{})
	if err != nil {
		log.Printf("Failed to fetch enquiries: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch enquiries"})
	}
	defer cursor.Close(ctx)

	enquiries := []models.Enquiry{}
	for cursor.Next(ctx) {
		var enquiry models.Enquiry
		if err := cursor.Decode(&enquiry); err != nil {
			continue
		}
		enquiries = append(enquiries, enquiry)
	}
	for i, j := 0, len(enquiries)-1; i < j; i, j = i+1, j-1 {
		enquiries[i], enquiries[j] = enquiries[j], enquiries[i]
	}
	return c.JSON(http.StatusOK, enquiries)
}
