package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/zndrme19-del/soda-pop-pos/internal/service"
	"github.com/zndrme19-del/soda-pop-pos/models"
	"github.com/zndrme19-del/soda-pop-pos/pkg/logger"
)

// MenuHandler struct
type MenuHandler struct {
	catalogService service.CatalogServiceInterface
	logger         *logger.Logger
}

// NewMenuHandler creates a new MenuHandler with the given service and logger
func NewMenuHandler(catalogService service.CatalogServiceInterface, log *logger.Logger) *MenuHandler {
	return &MenuHandler{
		catalogService: catalogService,
		logger:         log.WithComponent("menu_handler"),
	}
}

// List handles GET /api/menu
func (h *MenuHandler) List(w http.ResponseWriter, r *http.Request) {
	reqCtx := &logger.RequestContext{
		Method:     r.Method,
		Path:       r.URL.Path,
		RemoteAddr: r.RemoteAddr,
		StartTime:  time.Now(),
	}
	h.logger.LogRequest(reqCtx)

	items, err := h.catalogService.ListMenuItems()
	if err != nil {
		h.logger.Error("Failed to list menu items", "error", err)
		writeErrorResponse(w, http.StatusInternalServerError, "Failed to fetch menu")
		reqCtx.StatusCode = http.StatusInternalServerError
		h.logger.LogResponse(reqCtx)
		return
	}

	writeJSONResponse(w, http.StatusOK, items)
	reqCtx.StatusCode = http.StatusOK
	h.logger.LogResponse(reqCtx)
}

// Create handles POST /api/menu
func (h *MenuHandler) Create(w http.ResponseWriter, r *http.Request) {
	reqCtx := &logger.RequestContext{
		Method:     r.Method,
		Path:       r.URL.Path,
		RemoteAddr: r.RemoteAddr,
		StartTime:  time.Now(),
	}
	h.logger.LogRequest(reqCtx)

	var createReq service.CreateMenuItemRequest
	if err := parseRequestBody(r, &createReq); err != nil {
		h.logger.Warn("Invalid request body for create menu item", "error", err)
		writeErrorResponse(w, http.StatusBadRequest, "Invalid request body")
		reqCtx.StatusCode = http.StatusBadRequest
		h.logger.LogResponse(reqCtx)
		return
	}

	item, err := h.catalogService.CreateMenuItem(createReq)
	if err != nil {
		h.logger.Warn("Failed to create menu item", "error", err)
		statusCode := errorStatus(err)
		writeErrorResponse(w, statusCode, err.Error())
		reqCtx.StatusCode = statusCode
		h.logger.LogResponse(reqCtx)
		return
	}

	writeJSONResponse(w, http.StatusCreated, item)
	reqCtx.StatusCode = http.StatusCreated
	h.logger.LogResponse(reqCtx)
}

// Update handles PUT /api/menu/{id}
func (h *MenuHandler) Update(w http.ResponseWriter, r *http.Request) {
	reqCtx := &logger.RequestContext{
		Method:     r.Method,
		Path:       r.URL.Path,
		RemoteAddr: r.RemoteAddr,
		StartTime:  time.Now(),
	}
	h.logger.LogRequest(reqCtx)

	id, err := h.extractIDFromPath(r)
	if err != nil {
		h.logger.Warn("Invalid menu item ID", "path", r.URL.Path, "error", err)
		writeErrorResponse(w, http.StatusBadRequest, "Invalid menu item ID")
		reqCtx.StatusCode = http.StatusBadRequest
		h.logger.LogResponse(reqCtx)
		return
	}

	var patch models.MenuItemPatch
	if err := parseRequestBody(r, &patch); err != nil {
		h.logger.Warn("Invalid request body for update menu item", "error", err)
		writeErrorResponse(w, http.StatusBadRequest, "Invalid request body")
		reqCtx.StatusCode = http.StatusBadRequest
		h.logger.LogResponse(reqCtx)
		return
	}

	item, err := h.catalogService.UpdateMenuItem(id, patch)
	if err != nil {
		h.logger.Warn("Failed to update menu item", "item_id", id, "error", err)
		statusCode := errorStatus(err)
		writeErrorResponse(w, statusCode, err.Error())
		reqCtx.StatusCode = statusCode
		h.logger.LogResponse(reqCtx)
		return
	}

	writeJSONResponse(w, http.StatusOK, item)
	reqCtx.StatusCode = http.StatusOK
	h.logger.LogResponse(reqCtx)
}

// Delete handles DELETE /api/menu/{id}
func (h *MenuHandler) Delete(w http.ResponseWriter, r *http.Request) {
	reqCtx := &logger.RequestContext{
		Method:     r.Method,
		Path:       r.URL.Path,
		RemoteAddr: r.RemoteAddr,
		StartTime:  time.Now(),
	}
	h.logger.LogRequest(reqCtx)

	id, err := h.extractIDFromPath(r)
	if err != nil {
		h.logger.Warn("Invalid menu item ID", "path", r.URL.Path, "error", err)
		writeErrorResponse(w, http.StatusBadRequest, "Invalid menu item ID")
		reqCtx.StatusCode = http.StatusBadRequest
		h.logger.LogResponse(reqCtx)
		return
	}

	if err := h.catalogService.DeleteMenuItem(id); err != nil {
		h.logger.Warn("Failed to delete menu item", "item_id", id, "error", err)
		statusCode := errorStatus(err)
		writeErrorResponse(w, statusCode, "Item not found")
		reqCtx.StatusCode = statusCode
		h.logger.LogResponse(reqCtx)
		return
	}

	writeJSONResponse(w, http.StatusNoContent, nil)
	reqCtx.StatusCode = http.StatusNoContent
	h.logger.LogResponse(reqCtx)
}

// extractIDFromPath extracts the numeric ID from /api/menu/{id}
func (h *MenuHandler) extractIDFromPath(r *http.Request) (int, error) {
	path := strings.TrimPrefix(r.URL.Path, "/api/menu/")
	parts := strings.Split(path, "/")
	if len(parts) == 0 || parts[0] == "" {
		return 0, fmt.Errorf("menu item ID cannot be empty")
	}
	return strconv.Atoi(parts[0])
}
