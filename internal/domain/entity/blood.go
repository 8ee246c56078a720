package entity

// BloodGroups is the fixed set of accepted blood group values.
var BloodGroups = []string{"A+", "A-", "B+", "B-", "AB+", "AB-", "O+", "O-"}

// BloodGroupAll is the filter sentinel that disables blood-group matching.
const BloodGroupAll = "all"

// Urgency levels a hospital can declare on a blood request.
const (
	UrgencyHigh   = "High"
	UrgencyMedium = "Medium"
	UrgencyLow    = "Low"
)

var UrgencyLevels = []string{UrgencyHigh, UrgencyMedium, UrgencyLow}

// Age buckets used by the donor list filter.
const (
	AgeBucketUnder25 = "under25"
	AgeBucket25To40  = "25-40"
	AgeBucketOver40  = "over40"
)

func ValidBloodGroup(group string) bool {
	for _, g := range BloodGroups {
		if g == group {
			return true
		}
	}
	return false
}

func ValidUrgency(urgency string) bool {
	for _, u := range UrgencyLevels {
		if u == urgency {
			return true
		}
	}
	return false
}
