package models

// Sort keys accepted by the listing endpoint.
const (
	SortNewest    = "newest"
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
	SortAreaHigh  = "area-high"
)

// FilterSpec holds one evaluation of the listing filters. Zero values mean
// "criterion off": empty query, MaxPrice 0 (unbounded), Bedrooms/Bathrooms 0,
// MinArea 0, both category toggles false.
type FilterSpec struct {
	Query       string  `json:"query"`
	MinPrice    float64 `json:"minPrice"`
	MaxPrice    float64 `json:"maxPrice"`
	Bedrooms    int     `json:"bedrooms"`
	Bathrooms   int     `json:"bathrooms"`
	MinArea     float64 `json:"minArea"`
	Residential bool    `json:"residential"`
	Commercial  bool    `json:"commercial"`
	Sort        string  `json:"sort"`
}
