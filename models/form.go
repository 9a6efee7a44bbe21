package models

// PropertyForm is the admin dashboard edit state. Numeric fields are kept as
// the raw input strings; the payload builder parses them with a 0 fallback.
type PropertyForm struct {
	Title        string             `json:"title"`
	Description  string             `json:"description"`
	Location     string             `json:"location"`
	City         string             `json:"city"`
	CityDivision string             `json:"cityDivision"`
	Category     string             `json:"category"`
	PropertyType PropertyType       `json:"propertyType"`
	BasePrice    string             `json:"basePrice"`
	GovtCharge   string             `json:"governmentCharge"`
	TotalPrice   string             `json:"totalPrice"`
	Status       ConstructionStatus `json:"status"`
	UnitConfig   UnitConfig         `json:"unitConfig"`
	Bathrooms    string             `json:"bathrooms"`
	CarpetArea   string             `json:"carpetArea"`
	BuiltArea    string             `json:"builtArea"`
	TotalArea    string             `json:"totalArea"`
	PriceList    []PriceListRowForm `json:"priceList"`
	Images       []string           `json:"images"`
	FloorPlans   []string           `json:"floorPlans"`
	MainImage    string             `json:"mainImage"`
	Amenities    AmenityGroups      `json:"amenitiesByCategory"`
	ReraDetails  ReraDetails        `json:"reraDetails"`
	Owner        string             `json:"owner"`
	Phone        string             `json:"phone"`
	Email        string             `json:"email"`
}

type PriceListRowForm struct {
	Configuration string `json:"configuration"`
	Area          string `json:"area"`
	Price         string `json:"price"`
}
