package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/zndrme19-del/soda-pop-pos/internal/service"
	"github.com/zndrme19-del/soda-pop-pos/pkg/logger"
)

// OrderHandler struct
type OrderHandler struct {
	orderService service.OrderServiceInterface
	logger       *logger.Logger
}

// NewOrderHandler creates a new OrderHandler with the given service and logger
func NewOrderHandler(orderService service.OrderServiceInterface, log *logger.Logger) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		logger:       log.WithComponent("order_handler"),
	}
}

// List handles GET /api/orders
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	reqCtx := &logger.RequestContext{
		Method:     r.Method,
		Path:       r.URL.Path,
		RemoteAddr: r.RemoteAddr,
		StartTime:  time.Now(),
	}
	h.logger.LogRequest(reqCtx)

	orders, err := h.orderService.ListOrders()
	if err != nil {
		h.logger.Error("Failed to list orders", "error", err)
		writeErrorResponse(w, http.StatusInternalServerError, "Failed to fetch orders")
		reqCtx.StatusCode = http.StatusInternalServerError
		h.logger.LogResponse(reqCtx)
		return
	}

	writeJSONResponse(w, http.StatusOK, orders)
	reqCtx.StatusCode = http.StatusOK
	h.logger.LogResponse(reqCtx)
}

// Create handles POST /api/orders
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	reqCtx := &logger.RequestContext{
		Method:     r.Method,
		Path:       r.URL.Path,
		RemoteAddr: r.RemoteAddr,
		StartTime:  time.Now(),
	}
	h.logger.LogRequest(reqCtx)

	var placeReq service.PlaceOrderRequest
	if err := parseRequestBody(r, &placeReq); err != nil {
		h.logger.Warn("Invalid request body for place order", "error", err)
		writeErrorResponse(w, http.StatusBadRequest, "Invalid request body")
		reqCtx.StatusCode = http.StatusBadRequest
		h.logger.LogResponse(reqCtx)
		return
	}

	order, err := h.orderService.PlaceOrder(placeReq)
	if err != nil {
		h.logger.Warn("Failed to place order", "error", err)
		statusCode := errorStatus(err)
		writeErrorResponse(w, statusCode, err.Error())
		reqCtx.StatusCode = statusCode
		h.logger.LogResponse(reqCtx)
		return
	}

	writeJSONResponse(w, http.StatusCreated, order)
	reqCtx.StatusCode = http.StatusCreated
	h.logger.LogResponse(reqCtx)
}

// Finish handles PUT /api/orders/{id}/finish
func (h *OrderHandler) Finish(w http.ResponseWriter, r *http.Request) {
	reqCtx := &logger.RequestContext{
		Method:     r.Method,
		Path:       r.URL.Path,
		RemoteAddr: r.RemoteAddr,
		StartTime:  time.Now(),
	}
	h.logger.LogRequest(reqCtx)

	id, err := h.extractIDFromPath(r)
	if err != nil {
		h.logger.Warn("Invalid order ID", "path", r.URL.Path, "error", err)
		writeErrorResponse(w, http.StatusBadRequest, "Invalid order ID")
		reqCtx.StatusCode = http.StatusBadRequest
		h.logger.LogResponse(reqCtx)
		return
	}

	order, err := h.orderService.FinishOrder(id)
	if err != nil {
		h.logger.Warn("Failed to finish order", "order_id", id, "error", err)
		statusCode := errorStatus(err)
		writeErrorResponse(w, statusCode, "Order not found")
		reqCtx.StatusCode = statusCode
		h.logger.LogResponse(reqCtx)
		return
	}

	writeJSONResponse(w, http.StatusOK, order)
	reqCtx.StatusCode = http.StatusOK
	h.logger.LogResponse(reqCtx)
}

// extractIDFromPath extracts the numeric ID from /api/orders/{id}/finish
func (h *OrderHandler) extractIDFromPath(r *http.Request) (int, error) {
	path := strings.TrimPrefix(r.URL.Path, "/api/orders/")
	path = strings.TrimSuffix(path, "/finish")
	parts := strings.Split(path, "/")
	if len(parts) == 0 || parts[0] == "" {
		return 0, fmt.Errorf("order ID cannot be empty")
	}
	return strconv.Atoi(parts[0])
}
