package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"qrmenu.backend/internal/domain/entities"
	domainerrors "qrmenu.backend/internal/domain/errors"
	"qrmenu.backend/internal/domain/repositories"
	"qrmenu.backend/internal/interfaces/http/middleware"
	"qrmenu.backend/internal/interfaces/http/response"
	"qrmenu.backend/internal/usecases"
)

// AdminHandler handles admin endpoints
type AdminHandler struct {
	verificationUsecase *usecases.VerificationUsecase
	userRepo            repositories.UserRepository
	restaurantRepo      repositories.RestaurantRepository
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(
	verificationUsecase *usecases.VerificationUsecase,
	userRepo repositories.UserRepository,
	restaurantRepo repositories.RestaurantRepository,
) *AdminHandler {
	return &AdminHandler{
		verificationUsecase: verificationUsecase,
		userRepo:            userRepo,
		restaurantRepo:      restaurantRepo,
	}
}

// ListVerifications lists verification applications, optionally by status
// GET /api/v1/admin/verifications
func (h *AdminHandler) ListVerifications(c *gin.Context) {
	filter := &entities.VerificationFilter{
		Status: entities.VerificationStatus(c.Query("status")),
	}

	params := pagination(c)
	verifications, total, err := h.verificationUsecase.List(c.Request.Context(), filter, params.Limit, params.CalculateOffset())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"verifications": verifications,
		"pagination":    params.Meta(total),
	})
}

// GetPendingCount returns the size of the review queue
// GET /api/v1/admin/verifications/pending-count
func (h *AdminHandler) GetPendingCount(c *gin.Context) {
	count, err := h.verificationUsecase.CountPending(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"pendingCount": count})
}

// ApproveVerification approves an application and provisions the restaurant
// POST /api/v1/admin/verifications/:id/approve
func (h *AdminHandler) ApproveVerification(c *gin.Context) {
	h.review(c, h.verificationUsecase.Approve)
}

// RejectVerification rejects an application
// POST /api/v1/admin/verifications/:id/reject
func (h *AdminHandler) RejectVerification(c *gin.Context) {
	h.review(c, h.verificationUsecase.Reject)
}

// RequestVerificationChanges asks the applicant for more information
// POST /api/v1/admin/verifications/:id/request-changes
func (h *AdminHandler) RequestVerificationChanges(c *gin.Context) {
	h.review(c, h.verificationUsecase.RequestChanges)
}

// ListUsers lists platform users
// GET /api/v1/admin/users
func (h *AdminHandler) ListUsers(c *gin.Context) {
	params := pagination(c)
	users, total, err := h.userRepo.List(c.Request.Context(), c.Query("search"), params.Limit, params.CalculateOffset())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"users":      users,
		"pagination": params.Meta(total),
	})
}

// ListRestaurants lists provisioned restaurants
// GET /api/v1/admin/restaurants
func (h *AdminHandler) ListRestaurants(c *gin.Context) {
	params := pagination(c)
	restaurants, total, err := h.restaurantRepo.List(c.Request.Context(), params.Limit, params.CalculateOffset())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"restaurants": restaurants,
		"pagination":  params.Meta(total),
	})
}

type reviewFunc func(ctx context.Context, adminID, verificationID uuid.UUID, comment string) (*entities.RestaurantVerification, error)

func (h *AdminHandler) review(c *gin.Context, decide reviewFunc) {
	adminID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized"))
		return
	}

	verificationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid verification ID"))
		return
	}

	var input entities.ReviewVerificationInput
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&input); err != nil {
			response.Error(c, domainerrors.BadRequest(err.Error()))
			return
		}
	}

	verification, err := decide(c.Request.Context(), adminID, verificationID, input.Comment)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, verification)
}
