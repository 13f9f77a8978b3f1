package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	domainerrors "qrmenu.backend/internal/domain/errors"
)

// Success sends a success response
func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// Error sends an error response. Known domain errors are mapped to their
// HTTP status; anything else becomes a 500.
func Error(c *gin.Context, err error) {
	var appErr *domainerrors.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.Code, gin.H{
			"code":    appErr.Code,
			"message": appErr.Message,
			"error":   appErr.Message,
		})
		return
	}

	status := statusFor(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		message = "internal server error"
	}

	c.JSON(status, gin.H{
		"code":    status,
		"message": message,
		"error":   message,
	})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domainerrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domainerrors.ErrAlreadyExists),
		errors.Is(err, domainerrors.ErrDuplicateApplication),
		errors.Is(err, domainerrors.ErrDuplicateOrderNumber),
		errors.Is(err, domainerrors.ErrAlreadyProvisioned):
		return http.StatusConflict
	case errors.Is(err, domainerrors.ErrInvalidTransition),
		errors.Is(err, domainerrors.ErrInvalidVerificationTransition):
		return http.StatusConflict
	case errors.Is(err, domainerrors.ErrInvalidCredentials),
		errors.Is(err, domainerrors.ErrUnauthorized),
		errors.Is(err, domainerrors.ErrTokenExpired):
		return http.StatusUnauthorized
	case errors.Is(err, domainerrors.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, domainerrors.ErrInvalidInput),
		errors.Is(err, domainerrors.ErrBadRequest),
		errors.Is(err, domainerrors.ErrInvalidPricingInput):
		return http.StatusBadRequest
	case errors.Is(err, domainerrors.ErrDishUnavailable),
		errors.Is(err, domainerrors.ErrCrossRestaurantReference),
		errors.Is(err, domainerrors.ErrOrderAmountOutOfRange):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domainerrors.ErrRestaurantInactive):
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}
