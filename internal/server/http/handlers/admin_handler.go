package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/chowdhry/storefront/internal/domain/errors"
	"github.com/chowdhry/storefront/internal/domain/model"
	"github.com/chowdhry/storefront/internal/server/http/dto"
	"github.com/chowdhry/storefront/internal/usecase"
)

const (
	defaultPage = 1
	defaultSize = 20
	maxPageSize = 100
)

// AdminHandler serves the back-office order management endpoints.
type AdminHandler struct {
	facade AdminFacade
}

// NewAdminHandler constructs AdminHandler.
func NewAdminHandler(facade AdminFacade) *AdminHandler {
	return &AdminHandler{facade: facade}
}

func pageParams(c *gin.Context) (int, int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", strconv.Itoa(defaultPage)))
	if err != nil || page < 1 {
		page = defaultPage
	}
	size, err := strconv.Atoi(c.DefaultQuery("size", strconv.Itoa(defaultSize)))
	if err != nil || size < 1 || size > maxPageSize {
		size = defaultSize
	}
	return page, size
}

// Orders handles GET /api/admin/orders.
func (h *AdminHandler) Orders(c *gin.Context) {
	page, size := pageParams(c)
	filters := usecase.FilterSet{
		Provider:       c.Query("provider"),
		OrderStatus:    c.Query("orderStatus"),
		PaymentStatus:  c.Query("paymentStatus"),
		DeliveryStatus: c.Query("deliveryStatus"),
		DateRange:      c.Query("dateRange"),
		Search:         c.Query("search"),
	}

	orders, pagination, stats, err := h.facade.Orders(c.Request.Context(), page, size, filters)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	resp := dto.OrderListResponse{
		Orders: make([]dto.OrderResponse, 0, len(orders)),
		Pagination: dto.PaginationResponse{
			Page:  pagination.Page,
			Size:  pagination.Size,
			Total: pagination.Total,
			Pages: pagination.Pages,
		},
		Stats: dto.StatsResponse{
			Total:     stats.Total,
			Delhivery: stats.Delhivery,
			Self:      stats.Self,
			Pending:   stats.Pending,
			Confirmed: stats.Confirmed,
			Shipped:   stats.Shipped,
			Delivered: stats.Delivered,
		},
	}
	for _, order := range orders {
		resp.Orders = append(resp.Orders, dto.OrderFromModel(order))
	}

	c.JSON(http.StatusOK, resp)
}

// Order handles GET /api/admin/orders/:id.
func (h *AdminHandler) Order(c *gin.Context) {
	order, err := h.facade.Order(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}

	resp := dto.OrderFromModel(*order)
	for _, next := range usecase.AllowedTransitions(order.Status) {
		resp.AvailableStatuses = append(resp.AvailableStatuses, string(next))
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateStatus handles PATCH /api/admin/orders/:id/status.
func (h *AdminHandler) UpdateStatus(c *gin.Context) {
	var req dto.StatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	status, ok := model.ParseOrderStatus(req.Status)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown order status"})
		return
	}

	h.applyUpdate(c, h.facade.UpdateOrderStatus(c.Request.Context(), c.Param("id"), status))
}

// UpdatePaymentStatus handles PATCH /api/admin/orders/:id/payment-status.
func (h *AdminHandler) UpdatePaymentStatus(c *gin.Context) {
	var req dto.StatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	status, ok := model.ParsePaymentStatus(req.Status)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown payment status"})
		return
	}

	h.applyUpdate(c, h.facade.UpdatePaymentStatus(c.Request.Context(), c.Param("id"), status))
}

// UpdateDeliveryStatus handles PATCH /api/admin/orders/:id/delivery-status.
func (h *AdminHandler) UpdateDeliveryStatus(c *gin.Context) {
	var req dto.StatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	status, ok := model.ParseDeliveryStatus(req.Status)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown delivery status"})
		return
	}

	h.applyUpdate(c, h.facade.UpdateDeliveryStatus(c.Request.Context(), c.Param("id"), status))
}

func (h *AdminHandler) applyUpdate(c *gin.Context, err error) {
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		case errors.Is(err, domainErrors.ErrInvalidTransition):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}
	c.Status(http.StatusOK)
}

// CreateShipment handles POST /api/admin/orders/:id/shipment.
func (h *AdminHandler) CreateShipment(c *gin.Context) {
	waybill, err := h.facade.CreateShipment(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		case errors.Is(err, domainErrors.ErrValidation):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, domainErrors.ErrShipmentCreationFailed):
			c.JSON(http.StatusBadGateway, gin.H{"error": "courier rejected shipment"})
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ShipmentResponse{Waybill: waybill})
}

// TrackShipment handles GET /api/admin/orders/:id/tracking.
func (h *AdminHandler) TrackShipment(c *gin.Context) {
	info, err := h.facade.TrackShipment(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		case errors.Is(err, domainErrors.ErrTrackingUnavailable):
			c.JSON(http.StatusConflict, gin.H{"error": "no waybill assigned"})
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, dto.TrackingResponse{
		Status:   string(info.Status),
		Location: info.Location,
	})
}

// FailedOrders handles GET /api/admin/failed-orders.
func (h *AdminHandler) FailedOrders(c *gin.Context) {
	page, size := pageParams(c)
	failed, pagination, err := h.facade.FailedOrders(c.Request.Context(), page, size)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	resp := dto.FailedOrderListResponse{
		Orders: make([]dto.FailedOrderResponse, 0, len(failed)),
		Pagination: dto.PaginationResponse{
			Page:  pagination.Page,
			Size:  pagination.Size,
			Total: pagination.Total,
			Pages: pagination.Pages,
		},
	}
	for _, f := range failed {
		resp.Orders = append(resp.Orders, dto.FailedOrderFromModel(f))
	}

	c.JSON(http.StatusOK, resp)
}

// CleanFailedOrders handles DELETE /api/admin/failed-orders.
func (h *AdminHandler) CleanFailedOrders(c *gin.Context) {
	removed, err := h.facade.CleanFailedOrders(c.Request.Context())
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, dto.CleanResponse{Removed: removed})
}
