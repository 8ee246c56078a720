package dto

import (
	"time"

	"github.com/google/uuid"
)

type SubmitRequestRequest struct {
	Name       string `json:"name" validate:"required,min=2"`
	Address    string `json:"address" validate:"required"`
	BloodGroup string `json:"blood_group" validate:"required,bloodgroup"`
	Quantity   int    `json:"quantity" validate:"required,gte=1"`
	Urgency    string `json:"urgency" validate:"required,urgency"`
}

type RequestResponse struct {
	ID         uuid.UUID `json:"id"`
	Email      string    `json:"email"`
	Name       string    `json:"name"`
	Address    string    `json:"address"`
	BloodGroup string    `json:"blood_group"`
	Quantity   int       `json:"quantity"`
	Urgency    string    `json:"urgency"`
	CreatedAt  time.Time `json:"created_at"`
}

type RequestListResponse struct {
	Requests []RequestResponse `json:"requests"`
	Count    int               `json:"count"`
}
