package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"qrmenu.backend/internal/domain/entities"
	domainerrors "qrmenu.backend/internal/domain/errors"
	"qrmenu.backend/internal/interfaces/http/response"
	"qrmenu.backend/internal/usecases"
)

// PublicHandler serves the anonymous customer surface reached through QR codes
type PublicHandler struct {
	menuUsecase  *usecases.MenuUsecase
	orderUsecase *usecases.OrderUsecase
}

// NewPublicHandler creates a new public handler
func NewPublicHandler(menuUsecase *usecases.MenuUsecase, orderUsecase *usecases.OrderUsecase) *PublicHandler {
	return &PublicHandler{
		menuUsecase:  menuUsecase,
		orderUsecase: orderUsecase,
	}
}

// GetMenu returns the customer-facing menu behind a QR code
// GET /api/v1/m/:qrData
func (h *PublicHandler) GetMenu(c *gin.Context) {
	menu, err := h.menuUsecase.PublicMenu(c.Request.Context(), c.Param("qrData"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, menu)
}

// GetDish returns a single available dish with its options
// GET /api/v1/m/:qrData/dishes/:id
func (h *PublicHandler) GetDish(c *gin.Context) {
	dishID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid dish ID"))
		return
	}

	dish, err := h.menuUsecase.PublicDish(c.Request.Context(), c.Param("qrData"), dishID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, dish)
}

// CreateOrder places an anonymous order against a QR code
// POST /api/v1/m/:qrData/orders
func (h *PublicHandler) CreateOrder(c *gin.Context) {
	var input entities.CreateOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	order, err := h.orderUsecase.CreateOrder(c.Request.Context(), c.Param("qrData"), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, order)
}

// TrackOrder returns order progress by its public order number
// GET /api/v1/orders/track/:orderNumber
func (h *PublicHandler) TrackOrder(c *gin.Context) {
	order, err := h.orderUsecase.TrackByNumber(c.Request.Context(), c.Param("orderNumber"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"orderNumber":   order.OrderNumber,
		"status":        order.Status,
		"customerName":  order.CustomerName,
		"tableNumber":   order.TableNumber,
		"items":         order.Items,
		"subtotal":      order.Subtotal,
		"taxAmount":     order.TaxAmount,
		"serviceAmount": order.ServiceAmount,
		"totalAmount":   order.TotalAmount,
		"createdAt":     order.CreatedAt,
		"confirmedAt":   order.ConfirmedAt,
		"completedAt":   order.CompletedAt,
		"cancelledAt":   order.CancelledAt,
	})
}
