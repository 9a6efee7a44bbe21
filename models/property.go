package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

type PriceDetails struct {
	BasePrice        float64 `bson:"basePrice" json:"basePrice"`
	GovernmentCharge float64 `bson:"governmentCharge" json:"governmentCharge"`
	TotalPrice       float64 `bson:"totalPrice" json:"totalPrice"`
}

// ConstructionStatus flags are not mutually exclusive in stored data;
// derivations that need a single answer pick in a fixed priority order.
type ConstructionStatus struct {
	UnderConstruction bool `bson:"underConstruction" json:"underConstruction"`
	ReadyToMove       bool `bson:"readyToMove" json:"readyToMove"`
	Resale            bool `bson:"resale" json:"resale"`
}

type PropertyType struct {
	Apartment bool `bson:"apartment" json:"apartment"`
	Villa     bool `bson:"villa" json:"villa"`
	House     bool `bson:"house" json:"house"`
	Plot      bool `bson:"plot" json:"plot"`
	Office    bool `bson:"office" json:"office"`
	Shop      bool `bson:"shop" json:"shop"`
}

// UnitConfig marks which BHK configurations a project offers.
type UnitConfig struct {
	OneBHK   bool `bson:"oneBhk" json:"oneBhk"`
	TwoBHK   bool `bson:"twoBhk" json:"twoBhk"`
	ThreeBHK bool `bson:"threeBhk" json:"threeBhk"`
	FourBHK  bool `bson:"fourBhk" json:"fourBhk"`
	FiveBHK  bool `bson:"fiveBhk" json:"fiveBhk"`
}

type Size struct {
	CarpetArea float64 `bson:"carpetArea" json:"carpetArea"`
	BuiltArea  float64 `bson:"builtArea" json:"builtArea"`
	TotalArea  float64 `bson:"totalArea" json:"totalArea"`
}

type PriceListRow struct {
	Configuration string  `bson:"configuration" json:"configuration"`
	Area          float64 `bson:"area" json:"area"`
	Price         float64 `bson:"price" json:"price"`
}

type AmenityGroups struct {
	Sports      []string `bson:"sports" json:"sports"`
	Convenience []string `bson:"convenience" json:"convenience"`
	Leisure     []string `bson:"leisure" json:"leisure"`
}

type ReraDetails struct {
	ReraNumber string `bson:"reraNumber" json:"reraNumber"`
	ReraStatus string `bson:"reraStatus" json:"reraStatus"`
	Possession string `bson:"possession" json:"possession"`
}

type Property struct {
	ID               string             `bson:"_id,omitempty" json:"id"`
	Title            string             `bson:"title" json:"title"`
	Description      string             `bson:"description" json:"description"`
	Location         string             `bson:"location" json:"location"`
	City             string             `bson:"city" json:"city"`
	CityDivision     string             `bson:"cityDivision" json:"cityDivision"`
	Category         string             `bson:"category" json:"category"`
	PropertyType     PropertyType       `bson:"propertyType" json:"propertyType"`
	Price            float64            `bson:"price" json:"price"`
	PriceDetails     PriceDetails       `bson:"priceDetails" json:"priceDetails"`
	Status           ConstructionStatus `bson:"status" json:"status"`
	UnitConfig       UnitConfig         `bson:"unitConfig" json:"unitConfig"`
	Bedrooms         int                `bson:"bedrooms" json:"bedrooms"`
	Bathrooms        int                `bson:"bathrooms" json:"bathrooms"`
	Area             float64            `bson:"area" json:"area"`
	Size             Size               `bson:"size" json:"size"`
	PriceList        []PriceListRow     `bson:"priceList" json:"priceList"`
	Images           []string           `bson:"images" json:"images"`
	FloorPlans       []string           `bson:"floorPlans" json:"floorPlans"`
	MainImage        string             `bson:"mainImage" json:"mainImage"`
	AmenityGroups    AmenityGroups      `bson:"amenitiesByCategory" json:"amenitiesByCategory"`
	Amenities        []string           `bson:"amenities" json:"amenities"`
	ReraDetails      ReraDetails        `bson:"reraDetails" json:"reraDetails"`
	PossessionStatus string             `bson:"possessionStatus" json:"possessionStatus"`
	Owner            string             `bson:"owner" json:"owner"`
	Phone            string             `bson:"phone" json:"phone"`
	Email            string             `bson:"email" json:"email"`
	CreatedAt        time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Document renders the record as the stored document shape, without _id and
// timestamps. Inserts, $set updates and seed scripts all go through this so
// every write path produces the same key layout.
func (p Property) Document() bson.M {
	priceList := make([]interface{}, 0, len(p.PriceList))
	for _, row := range p.PriceList {
		priceList = append(priceList, bson.M{
			"configuration": row.Configuration,
			"area":          row.Area,
			"price":         row.Price,
		})
	}
	return bson.M{
		"title":        p.Title,
		"description":  p.Description,
		"location":     p.Location,
		"city":         p.City,
		"cityDivision": p.CityDivision,
		"category":     p.Category,
		"propertyType": bson.M{
			"apartment": p.PropertyType.Apartment,
			"villa":     p.PropertyType.Villa,
			"house":     p.PropertyType.House,
			"plot":      p.PropertyType.Plot,
			"office":    p.PropertyType.Office,
			"shop":      p.PropertyType.Shop,
		},
		"price": p.Price,
		"priceDetails": bson.M{
			"basePrice":        p.PriceDetails.BasePrice,
			"governmentCharge": p.PriceDetails.GovernmentCharge,
			"totalPrice":       p.PriceDetails.TotalPrice,
		},
		"status": bson.M{
			"underConstruction": p.Status.UnderConstruction,
			"readyToMove":       p.Status.ReadyToMove,
			"resale":            p.Status.Resale,
		},
		"unitConfig": bson.M{
			"oneBhk":   p.UnitConfig.OneBHK,
			"twoBhk":   p.UnitConfig.TwoBHK,
			"threeBhk": p.UnitConfig.ThreeBHK,
			"fourBhk":  p.UnitConfig.FourBHK,
			"fiveBhk":  p.UnitConfig.FiveBHK,
		},
		"bedrooms":  p.Bedrooms,
		"bathrooms": p.Bathrooms,
		"area":      p.Area,
		"size": bson.M{
			"carpetArea": p.Size.CarpetArea,
			"builtArea":  p.Size.BuiltArea,
			"totalArea":  p.Size.TotalArea,
		},
		"priceList":  priceList,
		"images":     p.Images,
		"floorPlans": p.FloorPlans,
		"mainImage":  p.MainImage,
		"amenitiesByCategory": bson.M{
			"sports":      p.AmenityGroups.Sports,
			"convenience": p.AmenityGroups.Convenience,
			"leisure":     p.AmenityGroups.Leisure,
		},
		"amenities": p.Amenities,
		"reraDetails": bson.M{
			"reraNumber": p.ReraDetails.ReraNumber,
			"reraStatus": p.ReraDetails.ReraStatus,
			"possession": p.ReraDetails.Possession,
		},
		"possessionStatus": p.PossessionStatus,
		"owner":            p.Owner,
		"phone":            p.Phone,
		"email":            p.Email,
	}
}
