package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"required,oneof=donor hospital"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// RegisterDonorRequest carries the donor variant of the signup payload.
type RegisterDonorRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=6"`
	Name        string `json:"name" validate:"required,min=2"`
	BloodGroup  string `json:"blood_group" validate:"required,bloodgroup"`
	Age         int    `json:"age" validate:"required,gte=18"`
	PhoneNumber string `json:"phone_number" validate:"required,min=7,max=20"`
}

// RegisterHospitalRequest carries the hospital variant of the signup
// payload; the profile row it creates is the hospital's first blood request.
type RegisterHospitalRequest struct {
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,min=6"`
	Name       string `json:"name" validate:"required,min=2"`
	Address    string `json:"address" validate:"required"`
	BloodGroup string `json:"blood_group" validate:"required,bloodgroup"`
	Quantity   int    `json:"quantity" validate:"required,gte=1"`
	Urgency    string `json:"urgency" validate:"required,urgency"`
}

// Response DTOs

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AuthResponse is returned by signup and login: the account plus a token
// pair, so the client is signed in immediately.
type AuthResponse struct {
	User   UserResponse  `json:"user"`
	Tokens TokenResponse `json:"tokens"`
}
