// Package matching holds the pure filtering and aggregation logic applied
// to donation and request lists after they are fetched. Everything here is
// synchronous, allocation-light and side-effect free.
package matching

import (
	"strings"

	"bloodlink-api/internal/domain/entity"
)

// AgeBucketFor places a donor age into the bucket used by the donor filter:
// under 25, 25-40 inclusive, over 40.
func AgeBucketFor(age int) string {
	switch {
	case age < 25:
		return entity.AgeBucketUnder25
	case age <= 40:
		return entity.AgeBucket25To40
	default:
		return entity.AgeBucketOver40
	}
}

// FilterDonations returns the donations satisfying every active predicate
// in f. Predicates are AND-combined and the input order is preserved.
// An empty result is a valid outcome, not an error.
func FilterDonations(donations []entity.BloodDonation, f entity.DonationFilter) []entity.BloodDonation {
	out := make([]entity.BloodDonation, 0, len(donations))
	search := strings.ToLower(strings.TrimSpace(f.Search))

	for _, d := range donations {
		if search != "" &&
			!strings.Contains(strings.ToLower(d.Name), search) &&
			!strings.Contains(strings.ToLower(d.PhoneNumber), search) {
			continue
		}
		if bloodGroupActive(f.BloodGroup) && d.BloodGroup != f.BloodGroup {
			continue
		}
		if f.AgeBucket != "" && AgeBucketFor(d.Age) != f.AgeBucket {
			continue
		}
		out = append(out, d)
	}
	return out
}

// FilterRequests returns the blood requests satisfying every active
// predicate in f. Same contract as FilterDonations: AND-combined, stable.
func FilterRequests(requests []entity.BloodRequest, f entity.RequestFilter) []entity.BloodRequest {
	out := make([]entity.BloodRequest, 0, len(requests))
	search := strings.ToLower(strings.TrimSpace(f.Search))

	for _, r := range requests {
		if search != "" &&
			!strings.Contains(strings.ToLower(r.Name), search) &&
			!strings.Contains(strings.ToLower(r.Address), search) {
			continue
		}
		if bloodGroupActive(f.BloodGroup) && r.BloodGroup != f.BloodGroup {
			continue
		}
		if urgencyActive(f.Urgency) && r.Urgency != f.Urgency {
			continue
		}
		out = append(out, r)
	}
	return out
}

func bloodGroupActive(group string) bool {
	return group != "" && group != entity.BloodGroupAll
}

func urgencyActive(urgency string) bool {
	return urgency != "" && urgency != entity.BloodGroupAll
}
