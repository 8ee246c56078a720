package matching

import (
	"time"

	"bloodlink-api/internal/domain/entity"
)

// recentWindow is the trailing window counted as "recent" on the dashboard.
const recentWindow = 7 * 24 * time.Hour

// Stats is the dashboard summary computed over the full donation and
// request lists.
type Stats struct {
	Total   int `json:"total"`
	Recent  int `json:"recent"`
	Matched int `json:"matched"`
}

// Aggregate computes dashboard stats at instant now:
//   - Total: all donation rows.
//   - Recent: donations created within the trailing 7 days of now.
//   - Matched: requests for which at least one donation shares the blood
//     group. A request counts once however many donations match; this is an
//     existence check, not a capacity-aware match.
func Aggregate(donations []entity.BloodDonation, requests []entity.BloodRequest, now time.Time) Stats {
	stats := Stats{Total: len(donations)}

	cutoff := now.Add(-recentWindow)
	available := make(map[string]bool, len(donations))
	for _, d := range donations {
		if d.CreatedAt.After(cutoff) {
			stats.Recent++
		}
		available[d.BloodGroup] = true
	}

	for _, r := range requests {
		if available[r.BloodGroup] {
			stats.Matched++
		}
	}
	return stats
}
