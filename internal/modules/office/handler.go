package office

import (
	"errors"
	"net/http"
	"strconv"

	"officemarket/internal/domain"
	"officemarket/internal/pkg/response"
	"officemarket/internal/repository"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// ListOffices handles GET /api/offices with optional filters. Malformed
// numeric parameters are ignored rather than rejected: the filter simply
// does not apply and default ordering stays in effect.
func (h *Handler) ListOffices(c *gin.Context) {
	var f repository.OfficeFilters
	f.PerPage = 20

	if v := c.Query("user_id"); v != "" {
		if id, err := strconv.ParseInt(v, 10, 64); err == nil {
			f.OwnerID = &id
		}
	}

	if v := c.Query("visitor_id"); v != "" {
		if id, err := strconv.ParseInt(v, 10, 64); err == nil {
			f.VisitorID = &id
		}
	}

	// Distance ordering needs both coordinates.
	latStr, lngStr := c.Query("lat"), c.Query("lng")
	if latStr != "" && lngStr != "" {
		lat, latErr := strconv.ParseFloat(latStr, 64)
		lng, lngErr := strconv.ParseFloat(lngStr, 64)
		if latErr == nil && lngErr == nil {
			f.Lat, f.Lng = &lat, &lng
		}
	}

	f.Page = 1
	if v := c.Query("page"); v != "" {
		if page, err := strconv.Atoi(v); err == nil && page > 0 {
			f.Page = page
		}
	}

	offices, total, err := h.service.List(c.Request.Context(), f)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Paginated(c, offices, total, f.Page, f.PerPage)
}

// GetOffice handles GET /api/offices/:id.
func (h *Handler) GetOffice(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid office ID")
		return
	}

	office, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Data(c, http.StatusOK, office)
}

// CreateOffice handles POST /api/offices (requires office.create scope).
func (h *Handler) CreateOffice(c *gin.Context) {
	var req CreateOfficeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}

	office, err := h.service.Create(c.Request.Context(), actorFromContext(c), req)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Data(c, http.StatusCreated, office)
}

// UpdateOffice handles PUT /api/offices/:id (owner only).
func (h *Handler) UpdateOffice(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid office ID")
		return
	}

	var req UpdateOfficeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}

	office, err := h.service.Update(c.Request.Context(), actorFromContext(c), id, req)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Data(c, http.StatusOK, office)
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	offices := r.Group("/offices")
	{
		offices.GET("", h.ListOffices)
		offices.GET("/:id", h.GetOffice)
	}
}

func (h *Handler) RegisterProtectedRoutes(r *gin.RouterGroup) {
	offices := r.Group("/offices")
	{
		offices.POST("", h.CreateOffice)
		offices.PUT("/:id", h.UpdateOffice)
	}
}

func actorFromContext(c *gin.Context) domain.Actor {
	return domain.Actor{
		UserID: c.GetInt64("user_id"),
		Scopes: c.GetStringSlice("scopes"),
	}
}

func handleError(c *gin.Context, err error) {
	var vErr *ValidationError

	switch {
	case errors.As(err, &vErr):
		response.ValidationFailed(c, vErr.Fields)
	case errors.Is(err, ErrForbidden):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "You don't have permission to perform this action")
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Office not found")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "An internal error occurred")
	}
}
