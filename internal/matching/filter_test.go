package matching

import (
	"testing"

	"bloodlink-api/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func donationFixtures() []entity.BloodDonation {
	return []entity.BloodDonation{
		{Name: "John Smith", BloodGroup: "A+", Age: 28, PhoneNumber: "555-1234"},
		{Name: "Sarah Johnson", BloodGroup: "O-", Age: 35, PhoneNumber: "555-5678"},
		{Name: "Michael Brown", BloodGroup: "B+", Age: 42, PhoneNumber: "555-9012"},
		{Name: "Emily Davis", BloodGroup: "AB+", Age: 31, PhoneNumber: "555-3456"},
		{Name: "Daniel Wilson", BloodGroup: "A-", Age: 24, PhoneNumber: "555-7890"},
	}
}

func requestFixtures() []entity.BloodRequest {
	return []entity.BloodRequest{
		{Name: "City General Hospital", Address: "123 Medical Drive", BloodGroup: "O-", Quantity: 1500, Urgency: "High"},
		{Name: "Memorial Medical Center", Address: "456 Health Avenue", BloodGroup: "A+", Quantity: 1000, Urgency: "Medium"},
		{Name: "Community Hospital", Address: "789 Care Street", BloodGroup: "B+", Quantity: 800, Urgency: "Low"},
	}
}

func TestFilterDonations(t *testing.T) {
	tests := []struct {
		name      string
		filter    entity.DonationFilter
		wantNames []string
	}{
		{
			name:      "no predicates returns everything",
			filter:    entity.DonationFilter{},
			wantNames: []string{"John Smith", "Sarah Johnson", "Michael Brown", "Emily Davis", "Daniel Wilson"},
		},
		{
			name:      "search matches name case-insensitively",
			filter:    entity.DonationFilter{Search: "sMiTh"},
			wantNames: []string{"John Smith"},
		},
		{
			name:      "search matches phone number",
			filter:    entity.DonationFilter{Search: "555-5678"},
			wantNames: []string{"Sarah Johnson"},
		},
		{
			name:      "blood group exact match",
			filter:    entity.DonationFilter{BloodGroup: "A+"},
			wantNames: []string{"John Smith"},
		},
		{
			name:      "blood group all disables the predicate",
			filter:    entity.DonationFilter{BloodGroup: entity.BloodGroupAll},
			wantNames: []string{"John Smith", "Sarah Johnson", "Michael Brown", "Emily Davis", "Daniel Wilson"},
		},
		{
			name:      "age bucket under 25",
			filter:    entity.DonationFilter{AgeBucket: entity.AgeBucketUnder25},
			wantNames: []string{"Daniel Wilson"},
		},
		{
			name:      "age bucket 25-40 is inclusive at both ends",
			filter:    entity.DonationFilter{AgeBucket: entity.AgeBucket25To40},
			wantNames: []string{"John Smith", "Sarah Johnson", "Emily Davis"},
		},
		{
			name:      "age bucket over 40",
			filter:    entity.DonationFilter{AgeBucket: entity.AgeBucketOver40},
			wantNames: []string{"Michael Brown"},
		},
		{
			name:      "predicates AND-combine",
			filter:    entity.DonationFilter{Search: "555", BloodGroup: "O-", AgeBucket: entity.AgeBucket25To40},
			wantNames: []string{"Sarah Johnson"},
		},
		{
			name:      "no match yields empty, not error",
			filter:    entity.DonationFilter{Search: "nobody"},
			wantNames: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterDonations(donationFixtures(), tt.filter)
			names := make([]string, 0, len(got))
			for _, d := range got {
				names = append(names, d.Name)
			}
			assert.Equal(t, tt.wantNames, names)
		})
	}
}

func TestFilterDonations_EmptyInput(t *testing.T) {
	got := FilterDonations(nil, entity.DonationFilter{Search: "x", BloodGroup: "A+"})
	assert.Empty(t, got)
}

func TestFilterDonations_Idempotent(t *testing.T) {
	f := entity.DonationFilter{Search: "555", BloodGroup: entity.BloodGroupAll}
	once := FilterDonations(donationFixtures(), f)
	twice := FilterDonations(once, f)
	assert.Equal(t, once, twice)
}

func TestFilterDonations_PreservesInputOrder(t *testing.T) {
	got := FilterDonations(donationFixtures(), entity.DonationFilter{Search: "o"})
	require.True(t, len(got) >= 2)
	for i := 1; i < len(got); i++ {
		prev, cur := indexOfDonation(t, got[i-1].Name), indexOfDonation(t, got[i].Name)
		assert.Less(t, prev, cur, "filter must be stable")
	}
}

func indexOfDonation(t *testing.T, name string) int {
	t.Helper()
	for i, d := range donationFixtures() {
		if d.Name == name {
			return i
		}
	}
	t.Fatalf("unknown donation %q", name)
	return -1
}

func TestFilterRequests(t *testing.T) {
	tests := []struct {
		name      string
		filter    entity.RequestFilter
		wantNames []string
	}{
		{
			name:      "search matches address",
			filter:    entity.RequestFilter{Search: "health avenue"},
			wantNames: []string{"Memorial Medical Center"},
		},
		{
			name:      "urgency high only",
			filter:    entity.RequestFilter{Urgency: entity.UrgencyHigh},
			wantNames: []string{"City General Hospital"},
		},
		{
			name:      "low urgency excluded from high view",
			filter:    entity.RequestFilter{Urgency: entity.UrgencyHigh, Search: "community"},
			wantNames: []string{},
		},
		{
			name:      "blood group all with urgency",
			filter:    entity.RequestFilter{BloodGroup: entity.BloodGroupAll, Urgency: entity.UrgencyLow},
			wantNames: []string{"Community Hospital"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterRequests(requestFixtures(), tt.filter)
			names := make([]string, 0, len(got))
			for _, r := range got {
				names = append(names, r.Name)
			}
			assert.Equal(t, tt.wantNames, names)
		})
	}
}

func TestFilterRequests_AllSentinelEqualsNoPredicate(t *testing.T) {
	all := FilterRequests(requestFixtures(), entity.RequestFilter{BloodGroup: entity.BloodGroupAll})
	none := FilterRequests(requestFixtures(), entity.RequestFilter{})
	assert.Equal(t, none, all)
}

func TestAgeBucketFor(t *testing.T) {
	assert.Equal(t, entity.AgeBucketUnder25, AgeBucketFor(18))
	assert.Equal(t, entity.AgeBucketUnder25, AgeBucketFor(24))
	assert.Equal(t, entity.AgeBucket25To40, AgeBucketFor(25))
	assert.Equal(t, entity.AgeBucket25To40, AgeBucketFor(40))
	assert.Equal(t, entity.AgeBucketOver40, AgeBucketFor(41))
}
