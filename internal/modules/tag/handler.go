package tag

import (
	"net/http"

	"officemarket/internal/pkg/response"
	"officemarket/internal/repository"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	tagRepo *repository.TagRepository
}

func NewHandler(tagRepo *repository.TagRepository) *Handler {
	return &Handler{tagRepo: tagRepo}
}

// ListTags handles GET /api/tags.
func (h *Handler) ListTags(c *gin.Context) {
	tags, err := h.tagRepo.GetAll(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load tags")
		return
	}

	response.Data(c, http.StatusOK, tags)
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/tags", h.ListTags)
}
