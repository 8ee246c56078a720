package entity

// DonationFilter is a domain-level filter applied to donation lists.
// All populated predicates are AND-combined; empty fields are inactive.
type DonationFilter struct {
	Search     string // case-insensitive substring over name and phone number
	BloodGroup string // exact match, "all" (or empty) disables
	AgeBucket  string // under25 / 25-40 / over40
}

// RequestFilter is a domain-level filter applied to blood request lists.
type RequestFilter struct {
	Search     string // case-insensitive substring over name and address
	BloodGroup string // exact match, "all" (or empty) disables
	Urgency    string // High / Medium / Low, "all" (or empty) disables
}
