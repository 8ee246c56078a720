package converter

import (
	"bloodlink-api/internal/delivery/dto"
	"bloodlink-api/internal/domain/entity"
)

// DonationToResponse converts a BloodDonation entity to its response DTO.
func DonationToResponse(donation *entity.BloodDonation) *dto.DonationResponse {
	if donation == nil {
		return nil
	}

	return &dto.DonationResponse{
		ID:          donation.ID,
		Email:       donation.Email,
		Name:        donation.Name,
		BloodGroup:  donation.BloodGroup,
		Age:         donation.Age,
		PhoneNumber: donation.PhoneNumber,
		CreatedAt:   donation.CreatedAt,
	}
}

// DonationsToResponses converts a slice preserving order.
func DonationsToResponses(donations []entity.BloodDonation) []dto.DonationResponse {
	out := make([]dto.DonationResponse, 0, len(donations))
	for i := range donations {
		out = append(out, *DonationToResponse(&donations[i]))
	}
	return out
}
