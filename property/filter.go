package property

import (
	"sort"
	"strings"

	"github.com/pratishelar/realtor-sub000/models"
)

var residentialKeywords = []string{"apartment", "house", "villa", "condo", "residential"}
var commercialKeywords = []string{"commercial", "office", "shop", "mall"}

// Sentinel top buckets: the UI's highest bedroom/bathroom choices are
// open-ended.
const (
	bedroomsTopBucket  = 5
	bathroomsTopBucket = 4
)

// Filter applies every active criterion of spec to records and then sorts.
// Predicates are total: missing numerics read as 0 and missing strings as
// "", so no record can fail the pipeline. The input slice is not modified.
func Filter(records []models.Property, spec models.FilterSpec) []models.Property {
	out := make([]models.Property, 0, len(records))
	for _, rec := range records {
		if matchesQuery(rec, spec.Query) &&
			matchesPrice(rec, spec.MinPrice, spec.MaxPrice) &&
			matchesCount(rec.Bedrooms, spec.Bedrooms, bedroomsTopBucket) &&
			matchesCount(rec.Bathrooms, spec.Bathrooms, bathroomsTopBucket) &&
			rec.Area >= spec.MinArea &&
			matchesCategory(rec, spec.Residential, spec.Commercial) {
			out = append(out, rec)
		}
	}
	sortRecords(out, spec.Sort)
	return out
}

func matchesQuery(rec models.Property, query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(rec.Title), q) ||
		strings.Contains(strings.ToLower(rec.Location), q) ||
		strings.Contains(strings.ToLower(rec.Description), q)
}

// matchesPrice treats MaxPrice <= 0 as unbounded.
func matchesPrice(rec models.Property, min, max float64) bool {
	if rec.Price < min {
		return false
	}
	return max <= 0 || rec.Price <= max
}

// matchesCount is an exact match, except the top bucket means "at least".
func matchesCount(have, want, topBucket int) bool {
	if want <= 0 {
		return true
	}
	if want >= topBucket {
		return have >= topBucket
	}
	return have == want
}

// matchesCategory passes everything when neither toggle is active; with one
// or both active, the record must hit a keyword for an active category in
// its title or description.
func matchesCategory(rec models.Property, residential, commercial bool) bool {
	if !residential && !commercial {
		return true
	}
	text := strings.ToLower(rec.Title + " " + rec.Description)
	if residential && containsAny(text, residentialKeywords) {
		return true
	}
	if commercial && containsAny(text, commercialKeywords) {
		return true
	}
	return false
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// sortRecords reorders in place. "newest" keeps the caller's order; the
// numeric sorts are stable so ties keep their prior relative order.
func sortRecords(records []models.Property, key string) {
	switch key {
	case models.SortPriceLow:
		sort.SliceStable(records, func(i, j int) bool {
			return records[i].Price < records[j].Price
		})
	case models.SortPriceHigh:
		sort.SliceStable(records, func(i, j int) bool {
			return records[i].Price > records[j].Price
		})
	case models.SortAreaHigh:
		sort.SliceStable(records, func(i, j int) bool {
			return records[i].Area > records[j].Area
		})
	}
}
