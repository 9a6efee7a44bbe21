package handlers

import (
	"context"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/pratishelar/realtor-sub000/config"
	"github.com/pratishelar/realtor-sub000/models"
	"github.com/pratishelar/realtor-sub000/property"
	"github.com/pratishelar/realtor-sub000/utils"
)

const (
	listCacheTTL   = 1 * time.Minute
	detailCacheTTL = 10 * time.Minute
)

type PropertyController struct {
	collection *mongo.Collection
}

func NewPropertyController() *PropertyController {
	collectionName := os.Getenv("MONGODB_COLLECTION_PROPERTIES")
	if collectionName == "" {
		collectionName = "properties"
	}
	return &PropertyController{
		collection: config.GetCollection(collectionName),
	}
}

// loadAll reads the whole collection in natural order and normalizes each
// document. Documents that fail to decode are skipped, never fatal.
func (pc *PropertyController) loadAll(ctx context.Context) ([]models.Property, error) {
	cursor, err := pc.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []models.Property
	for cursor.Next(ctx) {
		var doc bson.M
		if err := cursor.Decode(&doc); err != nil {
			continue
		}
		records = append(records, property.FromDocument(documentID(doc), doc))
	}
	return records, nil
}

func documentID(doc bson.M) string {
	switch id := doc["_id"].(type) {
	case primitive.ObjectID:
		return id.Hex()
	case string:
		return id
	default:
		return ""
	}
}

// filterSpecFromQuery reads the listing filter params. Absent params leave
// the criterion off.
func filterSpecFromQuery(c echo.Context) models.FilterSpec {
	spec := models.FilterSpec{
		Query: c.QueryParam("q"),
		Sort:  c.QueryParam("sort"),
	}
	if v, err := strconv.ParseFloat(c.QueryParam("price_min"), 64); err == nil {
		spec.MinPrice = v
	}
	if v, err := strconv.ParseFloat(c.QueryParam("price_max"), 64); err == nil {
		spec.MaxPrice = v
	}
	if v, err := strconv.Atoi(c.QueryParam("bedrooms")); err == nil {
		spec.Bedrooms = v
	}
	if v, err := strconv.Atoi(c.QueryParam("bathrooms")); err == nil {
		spec.Bathrooms = v
	}
	if v, err := strconv.ParseFloat(c.QueryParam("area_min"), 64); err == nil {
		spec.MinArea = v
	}
	spec.Residential = c.QueryParam("residential") == "true"
	spec.Commercial = c.QueryParam("commercial") == "true"
	return spec
}

func (pc *PropertyController) ListProperties(c echo.Context) error {
	ctx := context.Background()
	spec := filterSpecFromQuery(c)

	params := map[string]string{}
	for key, values := range c.QueryParams() {
		params[key] = strings.Join(values, ",")
	}
	cacheKey := utils.GenerateQueryCacheKey("properties", params)

	var cached []models.Property
	if hit, err := utils.GetCached(ctx, cacheKey, &cached); err == nil && hit {
		return c.JSON(http.StatusOK, cached)
	}

	records, err := pc.loadAll(ctx)
	if err != nil {
		log.Printf("Failed to load properties: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch properties"})
	}

	visible := property.Filter(records, spec)

	if err := utils.SetCached(ctx, cacheKey, visible, listCacheTTL); err != nil {
		log.Printf("Failed to cache property list: %v", err)
	}
	return c.JSON(http.StatusOK, visible)
}

func (pc *PropertyController) GetProperty(c echo.Context) error {
	ctx := context.Background()
	id := c.Param("id")

	cacheKey := "property:" + id
	var cached models.Property
	if hit, err := utils.GetCached(ctx, cacheKey, &cached); err == nil && hit {
		return c.JSON(http.StatusOK, cached)
	}

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Property not found"})
	}

	var doc bson.M
	err = pc.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Property not found"})
		}
		log.Printf("Failed to fetch property %s: %v", id, err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch property"})
	}

	record := property.FromDocument(id, doc)
	if err := utils.SetCached(ctx, cacheKey, record, detailCacheTTL); err != nil {
		log.Printf("Failed to cache property %s: %v", id, err)
	}
	return c.JSON(http.StatusOK, record)
}

func (pc *PropertyController) CreateProperty(c echo.Context) error {
	var form models.PropertyForm
	if err := c.Bind(&form); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	if problems := utils.ValidatePropertyForm(form); len(problems) > 0 {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{"error": "Validation failed", "details": problems})
	}

	record := property.BuildPayload(form)
	doc := record.Document()
	now := time.Now()
	doc["createdAt"] = now
	doc["updatedAt"] = now

	result, err := pc.collection.InsertOne(context.Background(), doc)
	if err != nil {
		log.Printf("Failed to create property: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to create property"})
	}

	record.ID = result.InsertedID.(primitive.ObjectID).Hex()
	record.CreatedAt = now
	record.UpdatedAt = now
	return c.JSON(http.StatusCreated, record)
}

func (pc *PropertyController) UpdateProperty(c echo.Context) error {
	ctx := context.Background()
	id := c.Param("id")
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Property not found"})
	}

	var form models.PropertyForm
	if err := c.Bind(&form); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	if problems := utils.ValidatePropertyForm(form); len(problems) > 0 {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{"error": "Validation failed", "details": problems})
	}

	// Full-overwrite semantics: the $set covers every domain field, so the
	// stored document always matches the submitted form.
	record := property.BuildPayload(form)
	doc := record.Document()
	doc["updatedAt"] = time.Now()

	result, err := pc.collection.UpdateOne(ctx, bson.M{"_id": objectID}, bson.M{"$set": doc})
	if err != nil {
		log.Printf("Failed to update property %s: %v", id, err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to update property"})
	}
	if result.MatchedCount == 0 {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Property not found"})
	}

	utils.DeleteCached(ctx, "property:"+id)

	var updated bson.M
	if err := pc.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&updated); err != nil {
		log.Printf("Failed to fetch updated property %s: %v", id, err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch updated property"})
	}
	return c.JSON(http.StatusOK, property.FromDocument(id, updated))
}

func (pc *PropertyController) DeleteProperty(c echo.Context) error {
	ctx := context.Background()
	id := c.Param("id")
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Property not found"})
	}

	result, err := pc.collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		log.Printf("Failed to delete property %s: %v", id, err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to delete property"})
	}
	if result.DeletedCount == 0 {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Property not found"})
	}

	utils.DeleteCached(ctx, "property:"+id)
	return c.JSON(http.StatusOK, map[string]string{"message": "Property deleted successfully"})
}

// BackfillAmenities re-derives the redundant fields of every stored document
// from their source fields. Documents are updated one by one; the caller
// gets a single aggregate outcome.
func (pc *PropertyController) BackfillAmenities(c echo.Context) error {
	ctx := context.Background()

	cursor, err := pc.collection.Find(ctx, bson.M{})
	if err != nil {
		log.Printf("Backfill failed to list properties: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch properties"})
	}
	defer cursor.Close(ctx)

	updated := 0
	failed := 0
	for cursor.Next(ctx) {
		var doc bson.M
		if err := cursor.Decode(&doc); err != nil {
			failed++
			continue
		}
		id, ok := doc["_id"].(primitive.ObjectID)
		if !ok {
			failed++
			continue
		}

		record := property.FromDocument(id.Hex(), doc)
		_, err := pc.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{
			"amenities":        record.Amenities,
			"bedrooms":         record.Bedrooms,
			"price":            record.Price,
			"area":             record.Area,
			"possessionStatus": record.PossessionStatus,
			"mainImage":        record.MainImage,
			"cityDivision":     record.CityDivision,
			"updatedAt":        time.Now(),
		}})
		if err != nil {
			failed++
			continue
		}
		utils.DeleteCached(ctx, "property:"+id.Hex())
		updated++
	}

	return c.JSON(http.StatusOK, map[string]int{"updated": updated, "failed": failed})
}
