package property

import (
	"math"
	"strconv"
	"strings"

	"github.com/pratishelar/realtor-sub000/models"
)

// BuildPayload turns admin form state into the record to persist. All
// redundant fields are computed here; timestamps and ids are the caller's
// job. The function is pure and never rejects input.
func BuildPayload(form models.PropertyForm) models.Property {
	p := models.Property{
		Title:        strings.TrimSpace(form.Title),
		Description:  form.Description,
		Location:     form.Location,
		City:         form.City,
		Category:     form.Category,
		PropertyType: form.PropertyType,
		PriceDetails: models.PriceDetails{
			BasePrice:        parseNumber(form.BasePrice),
			GovernmentCharge: parseNumber(form.GovtCharge),
			TotalPrice:       parseNumber(form.TotalPrice),
		},
		Status:     form.Status,
		UnitConfig: form.UnitConfig,
		Bathrooms:  int(parseNumber(form.Bathrooms)),
		Size: models.Size{
			CarpetArea: parseNumber(form.CarpetArea),
			BuiltArea:  parseNumber(form.BuiltArea),
			TotalArea:  parseNumber(form.TotalArea),
		},
		PriceList:  buildPriceList(form.PriceList),
		Images:     dropEmpty(form.Images),
		FloorPlans: dropEmpty(form.FloorPlans),
		MainImage:  form.MainImage,
		AmenityGroups: models.AmenityGroups{
			Sports:      dropEmpty(form.Amenities.Sports),
			Convenience: dropEmpty(form.Amenities.Convenience),
			Leisure:     dropEmpty(form.Amenities.Leisure),
		},
		ReraDetails: form.ReraDetails,
		Owner:       form.Owner,
		Phone:       form.Phone,
		Email:       form.Email,
	}

	p.CityDivision = resolveDivision(p.City, form.CityDivision, p.Location)
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

// parseNumber mirrors the read-side coercion: unparsable, negative or
// non-finite input becomes 0.
func parseNumber(s string) float64 {
	n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) || n < 0 {
		return 0
	}
	return n
}

// buildPriceList keeps only rows with a configuration label, a positive area
// and a positive price.
func buildPriceList(rows []models.PriceListRowForm) []models.PriceListRow {
	out := make([]models.PriceListRow, 0, len(rows))
	for _, row := range rows {
		parsed := models.PriceListRow{
			Configuration: strings.TrimSpace(row.Configuration),
			Area:          parseNumber(row.Area),
			Price:         parseNumber(row.Price),
		}
		if parsed.Configuration == "" || parsed.Area <= 0 || parsed.Price <= 0 {
			continue
		}
		out = append(out, parsed)
	}
	return out
}

func dropEmpty(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}
