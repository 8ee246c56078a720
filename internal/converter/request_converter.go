package converter

import (
	"bloodlink-api/internal/delivery/dto"
	"bloodlink-api/internal/domain/entity"
)

// RequestToResponse converts a BloodRequest entity to its response DTO.
func RequestToResponse(request *entity.BloodRequest) *dto.RequestResponse {
	if request == nil {
		return nil
	}

	return &dto.RequestResponse{
		ID:         request.ID,
		Email:      request.Email,
		Name:       request.Name,
		Address:    request.Address,
		BloodGroup: request.BloodGroup,
		Quantity:   request.Quantity,
		Urgency:    request.Urgency,
		CreatedAt:  request.CreatedAt,
	}
}

// RequestsToResponses converts a slice preserving order.
func RequestsToResponses(requests []entity.BloodRequest) []dto.RequestResponse {
	out := make([]dto.RequestResponse, 0, len(requests))
	for i := range requests {
		out = append(out, *RequestToResponse(&requests[i]))
	}
	return out
}
