package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"qrmenu.backend/internal/domain/entities"
	domainerrors "qrmenu.backend/internal/domain/errors"
	"qrmenu.backend/internal/interfaces/http/middleware"
	"qrmenu.backend/internal/interfaces/http/response"
	"qrmenu.backend/internal/usecases"
)

// RestaurantHandler handles owner-facing restaurant profile and
// verification endpoints
type RestaurantHandler struct {
	restaurantUsecase   *usecases.RestaurantUsecase
	verificationUsecase *usecases.VerificationUsecase
}

// NewRestaurantHandler creates a new restaurant handler
func NewRestaurantHandler(
	restaurantUsecase *usecases.RestaurantUsecase,
	verificationUsecase *usecases.VerificationUsecase,
) *RestaurantHandler {
	return &RestaurantHandler{
		restaurantUsecase:   restaurantUsecase,
		verificationUsecase: verificationUsecase,
	}
}

// GetProfile returns the owner's restaurant profile
// GET /api/v1/restaurant/profile
func (h *RestaurantHandler) GetProfile(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized"))
		return
	}

	profile, err := h.restaurantUsecase.GetProfile(c.Request.Context(), userID)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("Restaurant profile not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, profile)
}

// UpdateProfile updates the owner's restaurant profile. Changing reviewed
// fields puts the verification back into the admin queue.
// PUT /api/v1/restaurant/profile
func (h *RestaurantHandler) UpdateProfile(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized"))
		return
	}

	var input entities.UpdateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	profile, err := h.restaurantUsecase.UpdateProfile(c.Request.Context(), userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, profile)
}

// RegenerateQR issues a fresh QR identifier, invalidating the old one
// POST /api/v1/restaurant/qr/regenerate
func (h *RestaurantHandler) RegenerateQR(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized"))
		return
	}

	profile, err := h.restaurantUsecase.RegenerateQR(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, profile)
}

// GetSettings returns the restaurant's ordering settings
// GET /api/v1/restaurant/settings
func (h *RestaurantHandler) GetSettings(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized"))
		return
	}

	settings, err := h.restaurantUsecase.GetSettings(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, settings)
}

// UpdateSettings updates the restaurant's ordering settings
// PUT /api/v1/restaurant/settings
func (h *RestaurantHandler) UpdateSettings(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized"))
		return
	}

	var input entities.UpdateSettingsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	settings, err := h.restaurantUsecase.UpdateSettings(c.Request.Context(), userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, settings)
}

// SubmitVerification submits or resubmits the verification application
// POST /api/v1/restaurant/verification
func (h *RestaurantHandler) SubmitVerification(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized"))
		return
	}

	var input entities.SubmitVerificationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	verification, err := h.verificationUsecase.Submit(c.Request.Context(), userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, verification)
}

// GetVerificationStatus returns the owner's application state
// GET /api/v1/restaurant/verification
func (h *RestaurantHandler) GetVerificationStatus(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized"))
		return
	}

	verification, err := h.verificationUsecase.Status(c.Request.Context(), userID)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("No verification application found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, verification)
}
