package handler

import (
	"encoding/json"
	"net/http"

	"bloodlink-api/internal/delivery/dto"
	"bloodlink-api/internal/delivery/http/middleware"
	"bloodlink-api/internal/domain/entity"
	"bloodlink-api/internal/usecase"
	"bloodlink-api/pkg/response"
	"bloodlink-api/pkg/validator"
)

type DonationHandler struct {
	donationUsecase usecase.DonationUsecase
	validator       *validator.CustomValidator
}

func NewDonationHandler(donationUsecase usecase.DonationUsecase, validator *validator.CustomValidator) *DonationHandler {
	return &DonationHandler{
		donationUsecase: donationUsecase,
		validator:       validator,
	}
}

// Submit records a new donation offer
// @Summary Submit a donation
// @Tags Donations
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.SubmitDonationRequest true "Donation Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /donations [post]
func (h *DonationHandler) Submit(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}
	email, ok := middleware.GetUserEmailFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.SubmitDonationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	donation, err := h.donationUsecase.Submit(r.Context(), userID, email, &req)
	if err != nil {
		response.InternalServerError(w, "Failed to submit donation")
		return
	}

	response.Success(w, http.StatusCreated, "Donation submitted successfully", donation)
}

// List returns donations filtered by query parameters
// @Summary List donations
// @Description List all donations, filtered by search, blood group and age bucket
// @Tags Donations
// @Security BearerAuth
// @Produce json
// @Param search query string false "Substring over name and phone number"
// @Param blood_group query string false "Blood group, or 'all'"
// @Param age_bucket query string false "under25, 25-40 or over40"
// @Success 200 {object} response.Response
// @Router /donations [get]
func (h *DonationHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := entity.DonationFilter{
		Search:     r.URL.Query().Get("search"),
		BloodGroup: r.URL.Query().Get("blood_group"),
		AgeBucket:  r.URL.Query().Get("age_bucket"),
	}

	list, err := h.donationUsecase.List(r.Context(), filter)
	if err != nil {
		response.InternalServerError(w, "Failed to list donations")
		return
	}

	response.Success(w, http.StatusOK, "Donations retrieved", list)
}

// ListMine returns the caller's own donations
// @Summary List own donations
// @Tags Donations
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /donations/mine [get]
func (h *DonationHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	email, ok := middleware.GetUserEmailFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	list, err := h.donationUsecase.ListMine(r.Context(), email)
	if err != nil {
		response.InternalServerError(w, "Failed to list donations")
		return
	}

	response.Success(w, http.StatusOK, "Donations retrieved", list)
}
