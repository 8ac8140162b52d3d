package users

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"domainsmarket/internal/pkg/form"
	"domainsmarket/internal/pkg/response"
	"domainsmarket/internal/pkg/storage"
	"domainsmarket/internal/pkg/validator"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Register creates an account: POST /user/register.
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

	u, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrEmailTaken) {
			response.Error(c, http.StatusConflict, "EMAIL_TAKEN", "Email already in use")
			return
		}
		response.Error(c, http.StatusInternalServerError, "REGISTER_FAILED", "Failed to register user")
		return
	}

	response.Success(c, http.StatusCreated, u)
}

// GetProfile returns the calling user: GET /user/profile.
func (h *Handler) GetProfile(c *gin.Context) {
	u, err := h.service.GetProfile(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "User not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to get profile")
		return
	}
	response.Success(c, http.StatusOK, u)
}

// UpdateProfile edits email, password and media: PUT /user/profile.
// Multipart form; file fields "images" and "videos", deletions by key in
// "deleted_images" / "deleted_videos".
func (h *Handler) UpdateProfile(c *gin.Context) {
	in, cleanup, ok := profileInput(c)
	if !ok {
		return
	}
	defer cleanup()

	u, err := h.service.UpdateProfile(c.Request.Context(), c.GetInt64("user_id"), in)
	if err != nil {
		h.writeProfileError(c, err)
		return
	}
	response.Success(c, http.StatusOK, u)
}

// ListDomains returns the caller's own listings: GET /user/domains?status=N.
func (h *Handler) ListDomains(c *gin.Context) {
	status, ok := statusFilter(c)
	if !ok {
		return
	}

	domains, err := h.service.ListDomains(c.Request.Context(), c.GetInt64("user_id"), status)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to get domains")
		return
	}
	response.Success(c, http.StatusOK, domains)
}

// GetDomain returns one of the caller's listings: GET /user/domains/:id.
func (h *Handler) GetDomain(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	d, err := h.service.GetDomain(c.Request.Context(), c.GetInt64("user_id"), id)
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

// UpdateDomain edits one of the caller's listings: PUT /user/domains/:id.
func (h *Handler) UpdateDomain(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	in, cleanup, ok := domainInput(c)
	if !ok {
		return
	}
	defer cleanup()

	d, err := h.service.UpdateDomain(c.Request.Context(), c.GetInt64("user_id"), id, in)
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

// DeleteDomain removes one of the caller's listings: DELETE /user/domains/:id.
func (h *Handler) DeleteDomain(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	err := h.service.DeleteDomain(c.Request.Context(), c.GetInt64("user_id"), id)
	if err != nil {
		if errors.Is(err, ErrDomainNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Domain not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "DELETE_FAILED", "Failed to delete domain")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Domain deleted successfully"})
}

func (h *Handler) writeProfileError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "User not found")
	case errors.Is(err, ErrEmailTaken):
		response.Error(c, http.StatusConflict, "EMAIL_TAKEN", "Email already in use")
	case errors.Is(err, ErrTooManyImages), errors.Is(err, ErrTooManyVideos):
		response.Error(c, http.StatusBadRequest, "MEDIA_LIMIT", err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, "UPDATE_FAILED", "Failed to update profile")
	}
}

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

func profileInput(c *gin.Context) (UpdateProfileInput, func(), bool) {
	var in UpdateProfileInput
	if v, ok := c.GetPostForm("email"); ok {
		in.Email = &v
	}
	if v, ok := c.GetPostForm("password"); ok {
		in.Password = &v
	}
	in.DeletedImages = c.PostFormArray("deleted_images")
	in.DeletedVideos = c.PostFormArray("deleted_videos")

	images, videos, cleanup, ok := mediaFiles(c)
	if !ok {
		return in, nil, false
	}
	in.Images, in.Videos = images, videos
	return in, cleanup, true
}

func domainInput(c *gin.Context) (UpdateDomainInput, func(), bool) {
	var in UpdateDomainInput
	if v, ok := c.GetPostForm("name"); ok {
		in.Name = &v
	}
	if v, ok := c.GetPostForm("description"); ok {
		in.Description = &v
	}
	in.DeletedImages = c.PostFormArray("deleted_images")
	in.DeletedVideos = c.PostFormArray("deleted_videos")

	images, videos, cleanup, ok := mediaFiles(c)
	if !ok {
		return in, nil, false
	}
	in.Images, in.Videos = images, videos
	return in, cleanup, true
}

func mediaFiles(c *gin.Context) (images, videos []storage.Upload, cleanup func(), ok bool) {
	images, closeImages, err := form.Files(c, "images")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_FILE", "Failed to read uploaded file")
		return nil, nil, nil, false
	}
	videos, closeVideos, err := form.Files(c, "videos")
	if err != nil {
		closeImages()
		response.Error(c, http.StatusBadRequest, "INVALID_FILE", "Failed to read uploaded file")
		return nil, nil, nil, false
	}
	return images, videos, func() { closeImages(); closeVideos() }, true
}
