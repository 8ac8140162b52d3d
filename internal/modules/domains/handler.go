package domains

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"domainsmarket/internal/pkg/response"
	"domainsmarket/internal/pkg/validator"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// CreateDomain accepts a purchase request from a visitor: POST /front/domains.
// Authentication is optional; a guest request is stored without an owner.
func (h *Handler) CreateDomain(c *gin.Context) {
	var req CreateDomainRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_BODY", "Invalid request body")
		return
	}
	if errs := validator.Validate(req); errs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", errs)
		return
	}

	var userID *int64
	if id := c.GetInt64("user_id"); id > 0 {
		userID = &id
	}

	d, err := h.service.Create(c.Request.Context(), req, userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "CREATE_FAILED", "Failed to create domain")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "The domain will be added after admin approval.",
		"domain":  d,
	})
}

// ListDomains serves the public catalog: GET /front/domains.
func (h *Handler) ListDomains(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	list, err := h.service.List(c.Request.Context(), page, limit)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to get domains")
		return
	}

	c.JSON(http.StatusOK, list)
}

// GetDomain serves one approved domain: GET /front/domains/:id.
func (h *Handler) GetDomain(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid domain ID")
		return
	}

	d, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Domain not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to get domain")
		return
	}

	response.Success(c, http.StatusOK, d)
}
