package property

import "github.com/pratishelar/realtor-sub000/models"

// Redundant fields (bedrooms, amenities, price, area, possessionStatus,
// mainImage) are always recomputed from their source-of-truth fields. Stored
// copies are never trusted; the normalizer and the payload builder both run
// these rules, which keeps a build/normalize round trip stable.

// deriveBedrooms picks the highest selected BHK bucket, 0 when none.
func deriveBedrooms(cfg models.UnitConfig) int {
	switch {
	case cfg.FiveBHK:
		return 5
	case cfg.FourBHK:
		return 4
	case cfg.ThreeBHK:
		return 3
	case cfg.TwoBHK:
		return 2
	case cfg.OneBHK:
		return 1
	default:
		return 0
	}
}

// deriveTotalPrice keeps an explicit non-zero total, else base + charges.
func deriveTotalPrice(d models.PriceDetails) float64 {
	if d.TotalPrice > 0 {
		return d.TotalPrice
	}
	return d.BasePrice + d.GovernmentCharge
}

// deriveAmenities flattens the category lists into one de-duplicated list,
// first seen wins, empty tags dropped.
func deriveAmenities(g models.AmenityGroups) []string {
	seen := make(map[string]bool)
	out := make([]string, 0, len(g.Sports)+len(g.Convenience)+len(g.Leisure))
	for _, group := range [][]string{g.Sports, g.Convenience, g.Leisure} {
		for _, tag := range group {
			if tag == "" || seen[tag] {
				continue
			}
			seen[tag] = true
			out = append(out, tag)
		}
	}
	return out
}

// derivePossession prefers the explicit RERA possession text over labels
// inferred from construction status flags.
func derivePossession(rera models.ReraDetails, status models.ConstructionStatus) string {
	switch {
	case rera.Possession != "":
		return rera.Possession
	case status.ReadyToMove:
		return "Ready to move"
	case status.UnderConstruction:
		return "Under construction"
	case status.Resale:
		return "Resale"
	default:
		return ""
	}
}

// deriveArea falls back built → total → carpet.
func deriveArea(s models.Size) float64 {
	switch {
	case s.BuiltArea > 0:
		return s.BuiltArea
	case s.TotalArea > 0:
		return s.TotalArea
	case s.CarpetArea > 0:
		return s.CarpetArea
	default:
		return 0
	}
}
