package handler

import (
	"net/http"
	"time"

	"github.com/zndrme19-del/soda-pop-pos/internal/service"
	"github.com/zndrme19-del/soda-pop-pos/pkg/logger"
)

// SalesHandler struct
type SalesHandler struct {
	salesService service.SalesServiceInterface
	logger       *logger.Logger
}

// NewSalesHandler creates a new SalesHandler with the given service and logger
func NewSalesHandler(salesService service.SalesServiceInterface, log *logger.Logger) *SalesHandler {
	return &SalesHandler{
		salesService: salesService,
		logger:       log.WithComponent("sales_handler"),
	}
}

// History handles GET /api/sales/history
func (h *SalesHandler) History(w http.ResponseWriter, r *http.Request) {
	reqCtx := &logger.RequestContext{
		Method:     r.Method,
		Path:       r.URL.Path,
		RemoteAddr: r.RemoteAddr,
		StartTime:  time.Now(),
	}
	h.logger.LogRequest(reqCtx)

	history, err := h.salesService.GetHistory()
	if err != nil {
		h.logger.Error("Failed to get sales history", "error", err)
		writeErrorResponse(w, http.StatusInternalServerError, "Failed to fetch sales history")
		reqCtx.StatusCode = http.StatusInternalServerError
		h.logger.LogResponse(reqCtx)
		return
	}

	writeJSONResponse(w, http.StatusOK, history)
	reqCtx.StatusCode = http.StatusOK
	h.logger.LogResponse(reqCtx)
}

// Reset handles POST /api/sales/reset. The response is 200 with a
// confirmation message whether or not anything was archived; clients that
// care about an empty day check the order list themselves.
func (h *SalesHandler) Reset(w http.ResponseWriter, r *http.Request) {
	reqCtx := &logger.RequestContext{
		Method:     r.Method,
		Path:       r.URL.Path,
		RemoteAddr: r.RemoteAddr,
		StartTime:  time.Now(),
	}
	h.logger.LogRequest(reqCtx)

	if _, err := h.salesService.ResetDay(); err != nil {
		h.logger.Error("Failed to reset day", "error", err)
		writeErrorResponse(w, http.StatusInternalServerError, "Failed to reset sales")
		reqCtx.StatusCode = http.StatusInternalServerError
		h.logger.LogResponse(reqCtx)
		return
	}

	writeJSONResponse(w, http.StatusOK, map[string]string{"message": "Sales reset successfully."})
	reqCtx.StatusCode = http.StatusOK
	h.logger.LogResponse(reqCtx)
}
