package dto

import (
	"time"

	"github.com/google/uuid"
)

type SubmitDonationRequest struct {
	Name        string `json:"name" validate:"required,min=2"`
	BloodGroup  string `json:"blood_group" validate:"required,bloodgroup"`
	Age         int    `json:"age" validate:"required,gte=18"`
	PhoneNumber string `json:"phone_number" validate:"required,min=7,max=20"`
}

type DonationResponse struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	Name        string    `json:"name"`
	BloodGroup  string    `json:"blood_group"`
	Age         int       `json:"age"`
	PhoneNumber string    `json:"phone_number"`
	CreatedAt   time.Time `json:"created_at"`
}

type DonationListResponse struct {
	Donations []DonationResponse `json:"donations"`
	Count     int                `json:"count"`
}
