package admin

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"domainsmarket/internal/pkg/form"
	"domainsmarket/internal/pkg/response"
	"domainsmarket/internal/pkg/validator"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// ---- admin accounts ----

// Register creates another admin account: POST /admin/register.
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_BODY", "Invalid request body")
		return
	}
	if errs := validator.Validate(req); errs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", errs)
		return
	}

	a, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrEmailTaken) {
			response.Error(c, http.StatusConflict, "EMAIL_TAKEN", "Email already in use")
			return
		}
		response.Error(c, http.StatusInternalServerError, "REGISTER_FAILED", "Failed to register admin")
		return
	}
	response.Success(c, http.StatusCreated, a)
}

// GetProfile returns the calling admin: GET /admin/profile.
func (h *Handler) GetProfile(c *gin.Context) {
	h.writeAdmin(c, c.GetInt64("user_id"))
}

// UpdateProfile edits the calling admin: PUT /admin/profile.
func (h *Handler) UpdateProfile(c *gin.Context) {
	h.updateAdmin(c, c.GetInt64("user_id"))
}

// ListAdmins: GET /admin/admins.
func (h *Handler) ListAdmins(c *gin.Context) {
	admins, err := h.service.ListAdmins(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to get admins")
		return
	}
	response.Success(c, http.StatusOK, admins)
}

// GetAdmin: GET /admin/admins/:id.
func (h *Handler) GetAdmin(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	h.writeAdmin(c, id)
}

// UpdateAdmin: PUT /admin/admins/:id.
func (h *Handler) UpdateAdmin(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	h.updateAdmin(c, id)
}

// DeleteAdmin: DELETE /admin/admins/:id.
func (h *Handler) DeleteAdmin(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.service.DeleteAdmin(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Admin not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "DELETE_FAILED", "Failed to delete admin")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Admin deleted successfully"})
}

func (h *Handler) writeAdmin(c *gin.Context, id int64) {
	a, err := h.service.GetAdmin(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Admin not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to get admin")
		return
	}
	response.Success(c, http.StatusOK, a)
}

func (h *Handler) updateAdmin(c *gin.Context, id int64) {
	var req UpdateAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_BODY", "Invalid request body")
		return
	}
	if errs := validator.Validate(req); errs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", errs)
		return
	}

	a, err := h.service.UpdateAdmin(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Admin not found")
		case errors.Is(err, ErrEmailTaken):
			response.Error(c, http.StatusConflict, "EMAIL_TAKEN", "Email already in use")
		default:
			response.Error(c, http.StatusInternalServerError, "UPDATE_FAILED", "Failed to update admin")
		}
		return
	}
	response.Success(c, http.StatusOK, a)
}

// ---- domain moderation ----

// ListDomains returns every listing, optionally filtered: GET /admin/domains?status=N.
func (h *Handler) ListDomains(c *gin.Context) {
	status, ok := statusFilter(c)
	if !ok {
		return
	}
	domains, err := h.service.ListDomains(c.Request.Context(), status)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to get domains")
		return
	}
	response.Success(c, http.StatusOK, domains)
}

// GetDomain: GET /admin/domains/:id.
func (h *Handler) GetDomain(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	d, err := h.service.GetDomain(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrDomainNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Domain not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to get domain")
		return
	}
	response.Success(c, http.StatusOK, d)
}

// UpdateDomain edits a listing or flips its status: PUT /admin/domains/:id.
// Multipart form like the user-side update, plus an optional "status" field.
func (h *Handler) UpdateDomain(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var in UpdateDomainInput
	if v, ok := c.GetPostForm("name"); ok {
		in.Name = &v
	}
	if v, ok := c.GetPostForm("description"); ok {
		in.Description = &v
	}
	if raw, ok := c.GetPostForm("status"); ok {
		v, err := strconv.Atoi(raw)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "INVALID_STATUS", "Invalid status value")
			return
		}
		in.Status = &v
	}
	in.DeletedImages = c.PostFormArray("deleted_images")
	in.DeletedVideos = c.PostFormArray("deleted_videos")

	images, closeImages, err := form.Files(c, "images")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_FILE", "Failed to read uploaded file")
		return
	}
	defer closeImages()
	videos, closeVideos, err := form.Files(c, "videos")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_FILE", "Failed to read uploaded file")
		return
	}
	defer closeVideos()
	in.Images, in.Videos = images, videos

	d, err := h.service.UpdateDomain(c.Request.Context(), id, in)
	if err != nil {
		switch {
		case errors.Is(err, ErrDomainNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Domain not found")
		case errors.Is(err, ErrTooManyImages), errors.Is(err, ErrTooManyVideos):
			response.Error(c, http.StatusBadRequest, "MEDIA_LIMIT", err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "UPDATE_FAILED", "Failed to update domain")
		}
		return
	}
	response.Success(c, http.StatusOK, d)
}

// DeleteDomain: DELETE /admin/domains/:id.
func (h *Handler) DeleteDomain(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.service.DeleteDomain(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrDomainNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Domain not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "DELETE_FAILED", "Failed to delete domain")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Domain deleted successfully"})
}

// ---- user moderation ----

// ListUsers returns every user with presence annotations: GET /admin/users.
func (h *Handler) ListUsers(c *gin.Context) {
	overview, err := h.service.ListUsers(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to get users")
		return
	}
	response.Success(c, http.StatusOK, overview)
}

// GetUser: GET /admin/users/:id.
func (h *Handler) GetUser(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	u, err := h.service.GetUser(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "User not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to get user")
		return
	}
	response.Success(c, http.StatusOK, u)
}

// UpdateUser: PUT /admin/users/:id.
func (h *Handler) UpdateUser(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req struct {
		Email    *string `json:"email" validate:"omitempty,email"`
		Password *string `json:"password" validate:"omitempty,min=6"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_BODY", "Invalid request body")
		return
	}
	if errs := validator.Validate(req); errs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", errs)
		return
	}

	u, err := h.service.UpdateUser(c.Request.Context(), id, UpdateUserInput{Email: req.Email, Password: req.Password})
	if err != nil {
		switch {
		case errors.Is(err, ErrUserNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "User not found")
		case errors.Is(err, ErrEmailTaken):
			response.Error(c, http.StatusConflict, "EMAIL_TAKEN", "Email already in use")
		default:
			response.Error(c, http.StatusInternalServerError, "UPDATE_FAILED", "Failed to update user")
		}
		return
	}
	response.Success(c, http.StatusOK, u)
}

// DeleteUser: DELETE /admin/users/:id.
func (h *Handler) DeleteUser(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.service.DeleteUser(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrUserNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "User not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "DELETE_FAILED", "Failed to delete user")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}

// ---- token administration ----

func (h *Handler) ListUserTokens(c *gin.Context) {
	tokens, err := h.service.ListUserTokens(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to get tokens")
		return
	}
	response.Success(c, http.StatusOK, tokens)
}

func (h *Handler) ListAdminTokens(c *gin.Context) {
	tokens, err := h.service.ListAdminTokens(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to get tokens")
		return
	}
	response.Success(c, http.StatusOK, tokens)
}

func (h *Handler) DeleteUserToken(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.service.DeleteUserToken(c.Request.Context(), id); err != nil {
		response.Error(c, http.StatusInternalServerError, "DELETE_FAILED", "Failed to delete token")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Token deleted successfully"})
}

func (h *Handler) DeleteAdminToken(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.service.DeleteAdminToken(c.Request.Context(), id); err != nil {
		response.Error(c, http.StatusInternalServerError, "DELETE_FAILED", "Failed to delete token")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Token deleted successfully"})
}

// ---- helpers ----

func idParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid ID")
		return 0, false
	}
	return id, true
}

func statusFilter(c *gin.Context) (*int, bool) {
	raw := c.Query("status")
	if raw == "" {
		return nil, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_STATUS", "Invalid status filter")
		return nil, false
	}
	return &v, true
}
