package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/chowdhry/storefront/internal/domain/errors"
	"github.com/chowdhry/storefront/internal/domain/model"
	"github.com/chowdhry/storefront/internal/server/http/dto"
	"github.com/chowdhry/storefront/internal/usecase"
)

// CheckoutHandler serves the storefront checkout endpoints.
type CheckoutHandler struct {
	facade CheckoutFacade
}

// NewCheckoutHandler constructs CheckoutHandler.
func NewCheckoutHandler(facade CheckoutFacade) *CheckoutHandler {
	return &CheckoutHandler{facade: facade}
}

// Quote handles GET /api/delivery/estimate.
func (h *CheckoutHandler) Quote(c *gin.Context) {
	pincode := c.Query("pincode")
	quote, err := h.facade.QuoteDelivery(c.Request.Context(), pincode)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, domainErrors.ErrNotServiceable):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "pincode is not serviceable"})
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, dto.QuoteResponse{Distance: quote.Distance, Fee: quote.Fee.String()})
}

// Place handles POST /api/orders.
func (h *CheckoutHandler) Place(c *gin.Context) {
	var req dto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	items := make([]model.OrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, model.OrderItem{
			ItemID:    item.ItemID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: model.Paise(item.UnitPrice),
			Weight:    item.Weight,
		})
	}

	order, gatewayOrder, err := h.facade.PlaceOrder(c.Request.Context(), usecase.CheckoutRequest{
		UserID: CurrentUserID(c),
		Address: model.Address{
			AddressType: req.Address.AddressType,
			FirstName:   req.Address.FirstName,
			LastName:    req.Address.LastName,
			Street:      req.Address.Street,
			Apartment:   req.Address.Apartment,
			City:        req.Address.City,
			State:       req.Address.State,
			Postcode:    req.Address.Postcode,
			Email:       req.Address.Email,
			Phone:       req.Address.Phone,
		},
		Provider: model.DeliveryProvider(req.Provider),
		Items:    items,
		Notes:    req.Notes,
	})
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, domainErrors.ErrNotServiceable):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "pincode is not serviceable"})
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusCreated, dto.CheckoutResponse{
		OrderID:        order.ID,
		TotalAmount:    order.TotalAmount.String(),
		GatewayOrderID: gatewayOrder.ID,
		Currency:       gatewayOrder.Currency,
	})
}
