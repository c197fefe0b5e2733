package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperr "github.com/honeycarbs/jobshop/internal/errors"
	"github.com/honeycarbs/jobshop/internal/site"
)

// Pages handles GET /api/site/pages
func (h *Handler) Pages(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"pages": site.Pages()})
}

// Route handles GET /api/site/route?path=...; job detail routes are
// resolved against the directory
func (h *Handler) Route(c *gin.Context) {
	path := c.Query("path")

	page, id, ok := site.Lookup(path)
	if !ok {
		h.writeError(c, apperr.NotFound("no page at "+path, nil))
		return
	}

	body := gin.H{"page": page}
	if id != "" {
		posting, err := h.jobs.Get(c.Request.Context(), id)
		if err != nil {
			h.writeError(c, err)
			return
		}
		body["job"] = posting
	}

	c.JSON(http.StatusOK, body)
}

// Theme handles GET /api/site/theme
func (h *Handler) Theme(c *gin.Context) {
	c.JSON(http.StatusOK, site.DefaultTheme())
}
