package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/alzoz/stock_management_app/internal/apperrors"
	portssvc "github.com/alzoz/stock_management_app/internal/core/ports/services"
	"github.com/alzoz/stock_management_app/internal/dto"
	"github.com/alzoz/stock_management_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// purchaseOrderHandler handles HTTP requests related to purchase orders.
type purchaseOrderHandler struct {
	orderService portssvc.PurchaseOrderSvcFacade
}

func newPurchaseOrderHandler(ps portssvc.PurchaseOrderSvcFacade) *purchaseOrderHandler {
	return &purchaseOrderHandler{orderService: ps}
}

// registerPurchaseOrderRoutes registers routes related to purchase orders.
func registerPurchaseOrderRoutes(rg *gin.RouterGroup, orderService portssvc.PurchaseOrderSvcFacade) {
	h := newPurchaseOrderHandler(orderService)

	orders := rg.Group("/purchase-orders")
	{
		orders.POST("", h.createPurchaseOrder)
		orders.GET("", h.listPurchaseOrders)
		orders.GET("/:id", h.getPurchaseOrder)
		orders.POST("/:id/send", h.markSent)
	}
}

// createPurchaseOrder godoc
// @Summary Draft a purchase order
// @Description Creates a DRAFT purchase order. Orders never move stock;
// @Description arriving goods are recorded as RECEIPT transactions.
// @Tags purchase-orders
// @Accept json
// @Produce json
// @Param order body dto.CreatePurchaseOrderRequest true "Order details"
// @Success 201 {object} dto.PurchaseOrderResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /purchase-orders [post]
func (h *purchaseOrderHandler) createPurchaseOrder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreatePurchaseOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	order, err := h.orderService.CreatePurchaseOrder(c.Request.Context(), req, creatorUserID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation), errors.Is(err, apperrors.ErrDuplicate), errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		default:
			logger.Error("Failed to create purchase order", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create purchase order"})
		}
		return
	}

	logger.Info("Purchase order drafted", slog.String("purchase_order_id", order.PurchaseOrderID))
	c.JSON(http.StatusCreated, dto.ToPurchaseOrderResponse(order))
}

// listPurchaseOrders godoc
// @Summary List purchase orders
// @Tags purchase-orders
// @Produce json
// @Success 200 {object} dto.ListPurchaseOrdersResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /purchase-orders [get]
func (h *purchaseOrderHandler) listPurchaseOrders(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	orders, err := h.orderService.ListPurchaseOrders(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list purchase orders", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list purchase orders"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListPurchaseOrdersResponse(orders))
}

// getPurchaseOrder godoc
// @Summary Get a purchase order by ID
// @Tags purchase-orders
// @Produce json
// @Param id path string true "Purchase order ID"
// @Success 200 {object} dto.PurchaseOrderResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /purchase-orders/{id} [get]
func (h *purchaseOrderHandler) getPurchaseOrder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	order, err := h.orderService.GetPurchaseOrderByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Purchase order not found"})
			return
		}
		logger.Error("Failed to get purchase order", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve purchase order"})
		return
	}

	c.JSON(http.StatusOK, dto.ToPurchaseOrderResponse(order))
}

// markSent godoc
// @Summary Mark a purchase order as sent
// @Description Transitions a DRAFT order to SENT. Sending twice is rejected.
// @Tags purchase-orders
// @Produce json
// @Param id path string true "Purchase order ID"
// @Success 200 {object} dto.PurchaseOrderResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /purchase-orders/{id}/send [post]
func (h *purchaseOrderHandler) markSent(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	order, err := h.orderService.MarkPurchaseOrderSent(c.Request.Context(), c.Param("id"), updaterUserID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Purchase order not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		default:
			logger.Error("Failed to mark purchase order sent", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update purchase order"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToPurchaseOrderResponse(order))
}
