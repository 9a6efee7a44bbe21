package property

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pratishelar/realtor-sub000/models"
)

func TestBuildPayloadBedroomsFromUnitConfig(t *testing.T) {
	cases := []struct {
		cfg  models.UnitConfig
		want int
	}{
		{models.UnitConfig{}, 0},
		{models.UnitConfig{OneBHK: true}, 1},
		{models.UnitConfig{TwoBHK: true}, 2},
		{models.UnitConfig{ThreeBHK: true}, 3},
		{models.UnitConfig{FourBHK: true}, 4},
		{models.UnitConfig{FiveBHK: true}, 5},
		// highest flag wins when several are set
		{models.UnitConfig{OneBHK: true, FourBHK: true}, 4},
	}
	for _, tc := range cases {
		p := BuildPayload(models.PropertyForm{UnitConfig: tc.cfg})
		assert.Equal(t, tc.want, p.Bedrooms)
	}
}

func TestBuildPayloadTotalPrice(t *testing.T) {
	derived := BuildPayload(models.PropertyForm{
		BasePrice:  "7500000",
		GovtCharge: "450000",
	})
	assert.Equal(t, 7950000.0, derived.PriceDetails.TotalPrice)
	assert.Equal(t, 7950000.0, derived.Price)

	explicit := BuildPayload(models.PropertyForm{
		BasePrice:  "7500000",
		GovtCharge: "450000",
		TotalPrice: "8000000",
	})
	assert.Equal(t, 8000000.0, explicit.Price)
}

func TestBuildPayloadAmenitiesUnion(t *testing.T) {
	p := BuildPayload(models.PropertyForm{
		Amenities: models.AmenityGroups{
			Sports:      []string{"Gym", "Swimming pool"},
			Convenience: []string{"Parking", "Gym", ""},
			Leisure:     []string{"Garden", "Parking"},
		},
	})
	assert.Equal(t, []string{"Gym", "Swimming pool", "Parking", "Garden"}, p.Amenities)
}

func TestBuildPayloadPossessionPriority(t *testing.T) {
	explicit := BuildPayload(models.PropertyForm{
		ReraDetails: models.ReraDetails{Possession: "Dec 2026"},
		Status:      models.ConstructionStatus{ReadyToMove: true},
	})
	assert.Equal(t, "Dec 2026", explicit.PossessionStatus)

	ready := BuildPayload(models.PropertyForm{
		Status: models.ConstructionStatus{ReadyToMove: true, UnderConstruction: true},
	})
	assert.Equal(t, "Ready to move", ready.PossessionStatus)

	construction := BuildPayload(models.PropertyForm{
		Status: models.ConstructionStatus{UnderConstruction: true, Resale: true},
	})
	assert.Equal(t, "Under construction", construction.PossessionStatus)

	resale := BuildPayload(models.PropertyForm{
		Status: models.ConstructionStatus{Resale: true},
	})
	assert.Equal(t, "Resale", resale.PossessionStatus)

	none := BuildPayload(models.PropertyForm{})
	assert.Equal(t, "", none.PossessionStatus)
}

func TestBuildPayloadAreaFallback(t *testing.T) {
	built := BuildPayload(models.PropertyForm{CarpetArea: "900", BuiltArea: "1100", TotalArea: "1300"})
	assert.Equal(t, 1100.0, built.Area)

	total := BuildPayload(models.PropertyForm{CarpetArea: "900", TotalArea: "1300"})
	assert.Equal(t, 1300.0, total.Area)

	carpet := BuildPayload(models.PropertyForm{CarpetArea: "900"})
	assert.Equal(t, 900.0, carpet.Area)

	none := BuildPayload(models.PropertyForm{})
	assert.Equal(t, 0.0, none.Area)
}

func TestBuildPayloadPriceListFiltering(t *testing.T) {
	p := BuildPayload(models.PropertyForm{
		PriceList: []models.PriceListRowForm{
			{Configuration: "2 BHK", Area: "1100", Price: "8000000"},
			{Configuration: "", Area: "900", Price: "6000000"},
			{Configuration: "3 BHK", Area: "0", Price: "9000000"},
			{Configuration: "4 BHK", Area: "1800", Price: "junk"},
		},
	})
	assert.Equal(t, []models.PriceListRow{
		{Configuration: "2 BHK", Area: 1100, Price: 8000000},
	}, p.PriceList)
}

func TestBuildPayloadImagesAndMainImage(t *testing.T) {
	p := BuildPayload(models.PropertyForm{
		Images: []string{"a.jpg", "b.jpg"},
	})
	assert.Equal(t, []string{"a.jpg", "b.jpg"}, p.Images)
	assert.Equal(t, "a.jpg", p.MainImage)

	override := BuildPayload(models.PropertyForm{
		Images:    []string{"a.jpg", "b.jpg"},
		MainImage: "b.jpg",
	})
	assert.Equal(t, "b.jpg", override.MainImage)

	empty := BuildPayload(models.PropertyForm{})
	assert.Equal(t, "", empty.MainImage)
	assert.Empty(t, empty.Images)
}

func TestBuildPayloadNumericParseFallback(t *testing.T) {
	p := BuildPayload(models.PropertyForm{
		BasePrice:  "abc",
		Bathrooms:  "-2",
		CarpetArea: " 950 ",
	})
	assert.Equal(t, 0.0, p.PriceDetails.BasePrice)
	assert.Equal(t, 0, p.Bathrooms)
	assert.Equal(t, 950.0, p.Size.CarpetArea)
}

// Feeding a built payload's document back through the normalizer must return
// the same record: derivations on write and on read agree.
func TestBuildPayloadNormalizeRoundTrip(t *testing.T) {
	form := models.PropertyForm{
		Title:        "Serene Heights",
		Description:  "Gated apartment community",
		Location:     "Baner Road, Pune",
		City:         "Pune",
		CityDivision: "Pune west",
		Category:     "residential",
		PropertyType: models.PropertyType{Apartment: true},
		BasePrice:    "7500000",
		GovtCharge:   "450000",
		Status:       models.ConstructionStatus{UnderConstruction: true},
		UnitConfig:   models.UnitConfig{TwoBHK: true, ThreeBHK: true},
		Bathrooms:    "2",
		CarpetArea:   "950",
		BuiltArea:    "1180",
		PriceList: []models.PriceListRowForm{
			{Configuration: "2 BHK", Area: "1180", Price: "7950000"},
		},
		Images: []string{"a.jpg", "b.jpg"},
		Amenities: models.AmenityGroups{
			Sports:      []string{"Gym"},
			Convenience: []string{"Parking"},
		},
		ReraDetails: models.ReraDetails{ReraNumber: "P521", ReraStatus: "Registered", Possession: "Dec 2026"},
		Owner:       "Serene Developers",
		Phone:       "+91 98220 00001",
		Email:       "sales@serene.example.com",
	}

	built := BuildPayload(form)
	normalized := FromDocument("", built.Document())

	assert.Equal(t, built, normalized)
}
