package dto

import "bloodlink-api/internal/matching"

// DashboardResponse is everything a dashboard load returns: the stats
// summary plus the full lists the tabs render from.
type DashboardResponse struct {
	Stats          matching.Stats     `json:"stats"`
	Donations      []DonationResponse `json:"donations"`
	Requests       []RequestResponse  `json:"requests"`
	MyDonations    []DonationResponse `json:"my_donations"`
	MyRequests     []RequestResponse  `json:"my_requests"`
	UrgentRequests []RequestResponse  `json:"urgent_requests"`
}
