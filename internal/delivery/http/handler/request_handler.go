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

type RequestHandler struct {
	requestUsecase usecase.RequestUsecase
	validator      *validator.CustomValidator
}

func NewRequestHandler(requestUsecase usecase.RequestUsecase, validator *validator.CustomValidator) *RequestHandler {
	return &RequestHandler{
		requestUsecase: requestUsecase,
		validator:      validator,
	}
}

// Submit records a new blood request
// @Summary Submit a blood request
// @Tags Requests
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.SubmitRequestRequest true "Blood Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /requests [post]
func (h *RequestHandler) Submit(w http.ResponseWriter, r *http.Request) {
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

	var req dto.SubmitRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	request, err := h.requestUsecase.Submit(r.Context(), userID, email, &req)
	if err != nil {
		response.InternalServerError(w, "Failed to submit request")
		return
	}

	response.Success(w, http.StatusCreated, "Request submitted successfully", request)
}

// List returns blood requests filtered by query parameters
// @Summary List blood requests
// @Description List all requests, filtered by search, blood group and urgency
// @Tags Requests
// @Security BearerAuth
// @Produce json
// @Param search query string false "Substring over name and address"
// @Param blood_group query string false "Blood group, or 'all'"
// @Param urgency query string false "High, Medium or Low"
// @Success 200 {object} response.Response
// @Router /requests [get]
func (h *RequestHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := entity.RequestFilter{
		Search:     r.URL.Query().Get("search"),
		BloodGroup: r.URL.Query().Get("blood_group"),
		Urgency:    r.URL.Query().Get("urgency"),
	}

	list, err := h.requestUsecase.List(r.Context(), filter)
	if err != nil {
		response.InternalServerError(w, "Failed to list requests")
		return
	}

	response.Success(w, http.StatusOK, "Requests retrieved", list)
}

// ListMine returns the caller's own requests
// @Summary List own blood requests
// @Tags Requests
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /requests/mine [get]
func (h *RequestHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	email, ok := middleware.GetUserEmailFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	list, err := h.requestUsecase.ListMine(r.Context(), email)
	if err != nil {
		response.InternalServerError(w, "Failed to list requests")
		return
	}

	response.Success(w, http.StatusOK, "Requests retrieved", list)
}

// Urgent returns the High urgency requests
// @Summary List urgent blood requests
// @Tags Requests
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /requests/urgent [get]
func (h *RequestHandler) Urgent(w http.ResponseWriter, r *http.Request) {
	list, err := h.requestUsecase.Urgent(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list urgent requests")
		return
	}

	response.Success(w, http.StatusOK, "Urgent requests retrieved", list)
}
