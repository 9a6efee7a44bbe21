package property

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/pratishelar/realtor-sub000/models"
)

// FromDocument decodes a raw stored document into a fully populated record.
// It never fails: any missing or wrong-typed field collapses to its default,
// and the redundant fields are recomputed rather than read back.
func FromDocument(id string, doc bson.M) models.Property {
	if doc == nil {
		doc = bson.M{}
	}

	priceDetails := asDoc(doc["priceDetails"])
	status := asDoc(doc["status"])
	unitConfig := asDoc(doc["unitConfig"])
	size := asDoc(doc["size"])
	propertyType := asDoc(doc["propertyType"])
	amenityGroups := asDoc(doc["amenitiesByCategory"])
	rera := asDoc(doc["reraDetails"])

	p := models.Property{
		ID:           id,
		Title:        asString(doc["title"]),
		Description:  asString(doc["description"]),
		Location:     asString(doc["location"]),
		City:         asString(doc["city"]),
		CityDivision: asString(doc["cityDivision"]),
		Category:     asString(doc["category"]),
		PropertyType: models.PropertyType{
			Apartment: asBool(propertyType["apartment"]),
			Villa:     asBool(propertyType["villa"]),
			House:     asBool(propertyType["house"]),
			Plot:      asBool(propertyType["plot"]),
			Office:    asBool(propertyType["office"]),
			Shop:      asBool(propertyType["shop"]),
		},
		PriceDetails: models.PriceDetails{
			BasePrice:        asNumber(priceDetails["basePrice"]),
			GovernmentCharge: asNumber(priceDetails["governmentCharge"]),
			TotalPrice:       asNumber(priceDetails["totalPrice"]),
		},
		Status: models.ConstructionStatus{
			UnderConstruction: asBool(status["underConstruction"]),
			ReadyToMove:       asBool(status["readyToMove"]),
			Resale:            asBool(status["resale"]),
		},
		UnitConfig: models.UnitConfig{
			OneBHK:   asBool(unitConfig["oneBhk"]),
			TwoBHK:   asBool(unitConfig["twoBhk"]),
			ThreeBHK: asBool(unitConfig["threeBhk"]),
			FourBHK:  asBool(unitConfig["fourBhk"]),
			FiveBHK:  asBool(unitConfig["fiveBhk"]),
		},
		Bathrooms: asInt(doc["bathrooms"]),
		Size: models.Size{
			CarpetArea: asNumber(size["carpetArea"]),
			BuiltArea:  asNumber(size["builtArea"]),
			TotalArea:  asNumber(size["totalArea"]),
		},
		PriceList:  normalizePriceList(doc["priceList"]),
		Images:     asStringSlice(doc["images"]),
		FloorPlans: asStringSlice(doc["floorPlans"]),
		MainImage:  asString(doc["mainImage"]),
		AmenityGroups: models.AmenityGroups{
			Sports:      asStringSlice(amenityGroups["sports"]),
			Convenience: asStringSlice(amenityGroups["convenience"]),
			Leisure:     asStringSlice(amenityGroups["leisure"]),
		},
		ReraDetails: models.ReraDetails{
			ReraNumber: asString(rera["reraNumber"]),
			ReraStatus: asString(rera["reraStatus"]),
			Possession: asString(rera["possession"]),
		},
		Owner:     asString(doc["owner"]),
		Phone:     asString(doc["phone"]),
		Email:     asString(doc["email"]),
		CreatedAt: asTime(doc["createdAt"]),
		UpdatedAt: asTime(doc["updatedAt"]),
	}

	p.CityDivision = resolveDivision(p.City, p.CityDivision, p.Location)
	p.Bedrooms = deriveBedrooms(p.UnitConfig)
	p.PriceDetails.TotalPrice = deriveTotalPrice(p.PriceDetails)
	p.Price = p.PriceDetails.TotalPrice
	p.Amenities = deriveAmenities(p.AmenityGroups)
	p.PossessionStatus = derivePossession(p.ReraDetails, p.Status)
	p.Area = deriveArea(p.Size)
	if p.MainImage == "" && len(p.Images) > 0 {
		p.MainImage = p.Images[0]
	}
	return p
}

// normalizePriceList keeps only well-formed rows, matching the builder's
// filtering so stored junk rows disappear on read.
func normalizePriceList(v interface{}) []models.PriceListRow {
	raw := asSlice(v)
	rows := make([]models.PriceListRow, 0, len(raw))
	for _, item := range raw {
		doc := asDoc(item)
		row := models.PriceListRow{
			Configuration: asString(doc["configuration"]),
			Area:          asNumber(doc["area"]),
			Price:         asNumber(doc["price"]),
		}
		if row.Configuration == "" || row.Area <= 0 || row.Price <= 0 {
			continue
		}
		rows = append(rows, row)
	}
	return rows
}

func asTime(v interface{}) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case primitive.DateTime:
		return t.Time()
	default:
		return time.Time{}
	}
}
