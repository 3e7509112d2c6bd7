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

// CategoryHandler struct
type CategoryHandler struct {
	catalogService service.CatalogServiceInterface
	logger         *logger.Logger
}

// NewCategoryHandler creates a new CategoryHandler with the given service and logger
func NewCategoryHandler(catalogService service.CatalogServiceInterface, log *logger.Logger) *CategoryHandler {
	return &CategoryHandler{
		catalogService: catalogService,
		logger:         log.WithComponent("category_handler"),
	}
}

// List handles GET /api/categories
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	reqCtx := &logger.RequestContext{
		Method:     r.Method,
		Path:       r.URL.Path,
		RemoteAddr: r.RemoteAddr,
		StartTime:  time.Now(),
	}
	h.logger.LogRequest(reqCtx)

	categories, err := h.catalogService.ListCategories()
	if err != nil {
		h.logger.Error("Failed to list categories", "error", err)
		writeErrorResponse(w, http.StatusInternalServerError, "Failed to fetch categories")
		reqCtx.StatusCode = http.StatusInternalServerError
		h.logger.LogResponse(reqCtx)
		return
	}

	writeJSONResponse(w, http.StatusOK, categories)
	reqCtx.StatusCode = http.StatusOK
	h.logger.LogResponse(reqCtx)
}

// Create handles POST /api/categories
func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	reqCtx := &logger.RequestContext{
		Method:     r.Method,
		Path:       r.URL.Path,
		RemoteAddr: r.RemoteAddr,
		StartTime:  time.Now(),
	}
	h.logger.LogRequest(reqCtx)

	var createReq service.CreateCategoryRequest
	if err := parseRequestBody(r, &createReq); err != nil {
		h.logger.Warn("Invalid request body for create category", "error", err)
		writeErrorResponse(w, http.StatusBadRequest, "Invalid request body")
		reqCtx.StatusCode = http.StatusBadRequest
		h.logger.LogResponse(reqCtx)
		return
	}

	category, err := h.catalogService.CreateCategory(createReq)
	if err != nil {
		h.logger.Warn("Failed to create category", "error", err)
		statusCode := errorStatus(err)
		writeErrorResponse(w, statusCode, err.Error())
		reqCtx.StatusCode = statusCode
		h.logger.LogResponse(reqCtx)
		return
	}

	writeJSONResponse(w, http.StatusCreated, category)
	reqCtx.StatusCode = http.StatusCreated
	h.logger.LogResponse(reqCtx)
}

// Delete handles DELETE /api/categories/{id}
func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	reqCtx := &logger.RequestContext{
		Method:     r.Method,
		Path:       r.URL.Path,
		RemoteAddr: r.RemoteAddr,
		StartTime:  time.Now(),
	}
	h.logger.LogRequest(reqCtx)

	id, err := h.extractIDFromPath(r)
	if err != nil {
		h.logger.Warn("Invalid category ID", "path", r.URL.Path, "error", err)
		writeErrorResponse(w, http.StatusBadRequest, "Invalid category ID")
		reqCtx.StatusCode = http.StatusBadRequest
		h.logger.LogResponse(reqCtx)
		return
	}

	if err := h.catalogService.DeleteCategory(id); err != nil {
		h.logger.Warn("Failed to delete category", "category_id", id, "error", err)
		statusCode := errorStatus(err)
		writeErrorResponse(w, statusCode, "Category not found")
		reqCtx.StatusCode = statusCode
		h.logger.LogResponse(reqCtx)
		return
	}

	writeJSONResponse(w, http.StatusNoContent, nil)
	reqCtx.StatusCode = http.StatusNoContent
	h.logger.LogResponse(reqCtx)
}

// extractIDFromPath extracts the numeric ID from /api/categories/{id}
func (h *CategoryHandler) extractIDFromPath(r *http.Request) (int, error) {
	path := strings.TrimPrefix(r.URL.Path, "/api/categories/")
	parts := strings.Split(path, "/")
	if len(parts) == 0 || parts[0] == "" {
		return 0, fmt.Errorf("category ID cannot be empty")
	}
	return strconv.Atoi(parts[0])
}
