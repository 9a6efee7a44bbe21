package property

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pratishelar/realtor-sub000/models"
)

func priced(id string, price float64) models.Property {
	return models.Property{ID: id, Price: price}
}

func TestFilterPriceRangeScenario(t *testing.T) {
	records := []models.Property{
		priced("a", 100),
		priced("b", 500),
		priced("c", 900),
	}

	out := Filter(records, models.FilterSpec{MinPrice: 200, MaxPrice: 900})
	assert.Equal(t, []string{"b", "c"}, ids(out))

	sorted := Filter(records, models.FilterSpec{MinPrice: 200, MaxPrice: 900, Sort: models.SortPriceHigh})
	assert.Equal(t, []string{"c", "b"}, ids(sorted))
}

func TestFilterUnboundedPriceIsNoOp(t *testing.T) {
	records := []models.Property{
		priced("a", 0),
		priced("b", 500),
		priced("c", 90000000),
	}
	out := Filter(records, models.FilterSpec{MinPrice: 0})
	assert.Len(t, out, len(records))
}

func TestFilterBedroomsTopBucketIsOpenEnded(t *testing.T) {
	records := []models.Property{
		{ID: "a", Bedrooms: 3},
		{ID: "b", Bedrooms: 5},
		{ID: "c", Bedrooms: 6},
	}
	out := Filter(records, models.FilterSpec{Bedrooms: 5})
	assert.Equal(t, []string{"b", "c"}, ids(out))

	exact := Filter(records, models.FilterSpec{Bedrooms: 3})
	assert.Equal(t, []string{"a"}, ids(exact))
}

func TestFilterBathroomsTopBucketIsOpenEnded(t *testing.T) {
	records := []models.Property{
		{ID: "a", Bathrooms: 2},
		{ID: "b", Bathrooms: 4},
		{ID: "c", Bathrooms: 7},
	}
	out := Filter(records, models.FilterSpec{Bathrooms: 4})
	assert.Equal(t, []string{"b", "c"}, ids(out))
}

func TestFilterQueryMatchesAnyTextField(t *testing.T) {
	records := []models.Property{
		{ID: "a", Title: "Serene Heights"},
		{ID: "b", Location: "Baner Road, Pune"},
		{ID: "c", Description: "Near the serene lakefront"},
		{ID: "d", Title: "Harbor Point"},
	}

	out := Filter(records, models.FilterSpec{Query: "SERENE"})
	assert.Equal(t, []string{"a", "c"}, ids(out))

	loc := Filter(records, models.FilterSpec{Query: "pune"})
	assert.Equal(t, []string{"b"}, ids(loc))

	all := Filter(records, models.FilterSpec{Query: "  "})
	assert.Len(t, all, len(records))
}

func TestFilterMinArea(t *testing.T) {
	records := []models.Property{
		{ID: "a", Area: 800},
		{ID: "b", Area: 1200},
	}
	out := Filter(records, models.FilterSpec{MinArea: 1000})
	assert.Equal(t, []string{"b"}, ids(out))
}

func TestFilterCategoryToggles(t *testing.T) {
	records := []models.Property{
		{ID: "a", Title: "Spacious apartment in Baner"},
		{ID: "b", Description: "Prime office space on the high street"},
		{ID: "c", Title: "Open farmland"},
	}

	neither := Filter(records, models.FilterSpec{})
	assert.Len(t, neither, 3)

	residential := Filter(records, models.FilterSpec{Residential: true})
	assert.Equal(t, []string{"a"}, ids(residential))

	commercial := Filter(records, models.FilterSpec{Commercial: true})
	assert.Equal(t, []string{"b"}, ids(commercial))

	both := Filter(records, models.FilterSpec{Residential: true, Commercial: true})
	assert.Equal(t, []string{"a", "b"}, ids(both))
}

func TestFilterSortKeys(t *testing.T) {
	records := []models.Property{
		{ID: "a", Price: 500, Area: 1000},
		{ID: "b", Price: 100, Area: 3000},
		{ID: "c", Price: 900, Area: 2000},
	}

	newest := Filter(records, models.FilterSpec{Sort: models.SortNewest})
	assert.Equal(t, []string{"a", "b", "c"}, ids(newest))

	low := Filter(records, models.FilterSpec{Sort: models.SortPriceLow})
	assert.Equal(t, []string{"b", "a", "c"}, ids(low))

	high := Filter(records, models.FilterSpec{Sort: models.SortPriceHigh})
	assert.Equal(t, []string{"c", "a", "b"}, ids(high))

	area := Filter(records, models.FilterSpec{Sort: models.SortAreaHigh})
	assert.Equal(t, []string{"b", "c", "a"}, ids(area))
}

func TestFilterSortIsStableOnTies(t *testing.T) {
	records := []models.Property{
		{ID: "a", Price: 100},
		{ID: "b", Price: 100},
		{ID: "c", Price: 50},
		{ID: "d", Price: 100},
	}
	out := Filter(records, models.FilterSpec{Sort: models.SortPriceLow})
	assert.Equal(t, []string{"c", "a", "b", "d"}, ids(out))
}

func TestFilterDoesNotModifyInput(t *testing.T) {
	records := []models.Property{
		priced("a", 900),
		priced("b", 100),
	}
	_ = Filter(records, models.FilterSpec{Sort: models.SortPriceLow})
	assert.Equal(t, []string{"a", "b"}, ids(records))
}

func TestFilterZeroValueRecordsPassTotalPredicates(t *testing.T) {
	records := []models.Property{{}}
	out := Filter(records, models.FilterSpec{Query: "", MinPrice: 0})
	assert.Len(t, out, 1)
}

func ids(records []models.Property) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.ID)
	}
	return out
}
