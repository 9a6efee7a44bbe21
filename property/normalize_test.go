package property

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/pratishelar/realtor-sub000/models"
)

func TestFromDocumentEmpty(t *testing.T) {
	p := FromDocument("abc123", bson.M{})

	assert.Equal(t, "abc123", p.ID)
	assert.Equal(t, "", p.Title)
	assert.Equal(t, 0.0, p.Price)
	assert.Equal(t, 0, p.Bedrooms)
	assert.Equal(t, 0.0, p.Area)

	assert.NotNil(t, p.Images)
	assert.NotNil(t, p.FloorPlans)
	assert.NotNil(t, p.PriceList)
	assert.NotNil(t, p.Amenities)
	assert.NotNil(t, p.AmenityGroups.Sports)
	assert.NotNil(t, p.AmenityGroups.Convenience)
	assert.NotNil(t, p.AmenityGroups.Leisure)
}

func TestFromDocumentNilDocument(t *testing.T) {
	p := FromDocument("abc123", nil)
	assert.Equal(t, "abc123", p.ID)
	assert.NotNil(t, p.Images)
}

func TestFromDocumentMalformedFields(t *testing.T) {
	p := FromDocument("x", bson.M{
		"title":        42,
		"description":  true,
		"price":        "not a number",
		"priceDetails": "not a document",
		"images":       "not an array",
		"priceList":    bson.M{"oops": 1},
		"bathrooms":    "three",
		"unitConfig":   bson.M{"twoBhk": "yes"},
	})

	assert.Equal(t, "", p.Title)
	assert.Equal(t, "", p.Description)
	assert.Equal(t, 0.0, p.Price)
	assert.Equal(t, 0, p.Bathrooms)
	assert.False(t, p.UnitConfig.TwoBHK)
	assert.Empty(t, p.Images)
	assert.Empty(t, p.PriceList)
}

func TestFromDocumentMongoNumericTypes(t *testing.T) {
	p := FromDocument("x", bson.M{
		"priceDetails": bson.M{
			"basePrice":        int32(5000000),
			"governmentCharge": int64(250000),
		},
		"size":      bson.M{"builtArea": int32(1200)},
		"bathrooms": int64(2),
	})

	assert.Equal(t, 5250000.0, p.Price)
	assert.Equal(t, 1200.0, p.Area)
	assert.Equal(t, 2, p.Bathrooms)
}

func TestFromDocumentNegativeNumbersClampToZero(t *testing.T) {
	p := FromDocument("x", bson.M{
		"priceDetails": bson.M{"basePrice": -100.0},
		"size":         bson.M{"builtArea": -50.0},
	})

	assert.Equal(t, 0.0, p.Price)
	assert.Equal(t, 0.0, p.Area)
}

func TestFromDocumentArraysDropFalsyEntries(t *testing.T) {
	p := FromDocument("x", bson.M{
		"images": primitive.A{"a.jpg", "", nil, 7, "b.jpg"},
	})

	assert.Equal(t, []string{"a.jpg", "b.jpg"}, p.Images)
	assert.Equal(t, "a.jpg", p.MainImage)
}

func TestFromDocumentRederivesRedundantFields(t *testing.T) {
	p := FromDocument("x", bson.M{
		// stored copies are stale on purpose
		"bedrooms":  1,
		"amenities": primitive.A{"Old entry"},
		"price":     1.0,
		"unitConfig": bson.M{
			"threeBhk": true,
		},
		"priceDetails": bson.M{
			"basePrice":        400.0,
			"governmentCharge": 100.0,
		},
		"amenitiesByCategory": bson.M{
			"sports":      primitive.A{"Gym"},
			"convenience": primitive.A{"Parking", "Gym"},
		},
		"status": bson.M{"readyToMove": true},
	})

	assert.Equal(t, 3, p.Bedrooms)
	assert.Equal(t, 500.0, p.Price)
	assert.Equal(t, []string{"Gym", "Parking"}, p.Amenities)
	assert.Equal(t, "Ready to move", p.PossessionStatus)
}

func TestFromDocumentPriceListDropsJunkRows(t *testing.T) {
	p := FromDocument("x", bson.M{
		"priceList": primitive.A{
			bson.M{"configuration": "2 BHK", "area": 1100.0, "price": 8000000.0},
			bson.M{"configuration": "", "area": 900.0, "price": 6000000.0},
			bson.M{"configuration": "3 BHK", "area": 0, "price": 9000000.0},
			"garbage",
		},
	})

	assert.Equal(t, []models.PriceListRow{
		{Configuration: "2 BHK", Area: 1100, Price: 8000000},
	}, p.PriceList)
}

func TestFromDocumentCityDivision(t *testing.T) {
	kept := FromDocument("x", bson.M{
		"city":         "Pune",
		"cityDivision": "Pune west",
	})
	assert.Equal(t, "Pune west", kept.CityDivision)

	inferred := FromDocument("x", bson.M{
		"city":         "Pune",
		"cityDivision": "somewhere",
		"location":     "Plot 4, Hinjewadi Phase 2",
	})
	assert.Equal(t, "Pune west", inferred.CityDivision)

	unknown := FromDocument("x", bson.M{
		"city":         "Atlantis",
		"cityDivision": "Pune west",
	})
	assert.Equal(t, "", unknown.CityDivision)
}

func TestFromDocumentExplicitTotalPriceWins(t *testing.T) {
	p := FromDocument("x", bson.M{
		"priceDetails": bson.M{
			"basePrice":        100.0,
			"governmentCharge": 50.0,
			"totalPrice":       999.0,
		},
	})
	assert.Equal(t, 999.0, p.Price)
	assert.Equal(t, 999.0, p.PriceDetails.TotalPrice)
}
