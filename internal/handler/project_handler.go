package handler

import (
	"errors"
	"net/http"

	"github.com/energystats/factbook-backend-go/internal/i18n"
	"github.com/energystats/factbook-backend-go/internal/models"
	"github.com/energystats/factbook-backend-go/internal/service"
	"github.com/energystats/factbook-backend-go/pkg/response"
	"github.com/gin-gonic/gin"
)

// ProjectHandler handles HTTP requests for the major projects dataset
type ProjectHandler struct {
	service *service.ProjectService
}

// NewProjectHandler creates a new project handler
func NewProjectHandler(service *service.ProjectService) *ProjectHandler {
	return &ProjectHandler{service: service}
}

func (h *ProjectHandler) bindFilter(c *gin.Context) (models.ProjectFilter, bool) {
	var filter models.ProjectFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid query parameters", err)
		return filter, false
	}
	return filter, true
}

// notLoaded reports the terminal load-error state with a locale-appropriate
// message. Recovery requires an explicit reload (or a restart).
func (h *ProjectHandler) notLoaded(c *gin.Context, locale string) {
	response.Error(c, http.StatusServiceUnavailable, i18n.GetText("load_error", locale), nil)
}

// GetProjects handles GET /api/v1/projects
func (h *ProjectHandler) GetProjects(c *gin.Context) {
	filter, ok := h.bindFilter(c)
	if !ok {
		return
	}

	view, err := h.service.Query(filter)
	if err != nil {
		if errors.Is(err, service.ErrNotLoaded) {
			h.notLoaded(c, filter.Locale)
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to query projects", err)
		return
	}

	payload := gin.H{
		"data":  view,
		"total": len(view),
	}
	if len(view) == 0 {
		payload["message"] = i18n.GetText("no_data", filter.Locale)
	}
	response.Success(c, payload)
}

// GetOptions handles GET /api/v1/projects/options
func (h *ProjectHandler) GetOptions(c *gin.Context) {
	locale := c.Query("lang")
	options, err := h.service.Options(locale)
	if err != nil {
		if errors.Is(err, service.ErrNotLoaded) {
			h.notLoaded(c, locale)
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to build filter options", err)
		return
	}
	response.Success(c, options)
}

// ExportCSV handles GET /api/v1/projects/export
func (h *ProjectHandler) ExportCSV(c *gin.Context) {
	filter, ok := h.bindFilter(c)
	if !ok {
		return
	}

	blob, err := h.service.ExportCSV(filter)
	if err != nil {
		if errors.Is(err, service.ErrNotLoaded) {
			h.notLoaded(c, filter.Locale)
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to export projects", err)
		return
	}

	filename := "major_projects.csv"
	if !filter.IsDefault() {
		filename = "major_projects_filtered.csv"
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(blob))
}

// GetDocument handles GET /api/v1/projects/document
func (h *ProjectHandler) GetDocument(c *gin.Context) {
	filter, ok := h.bindFilter(c)
	if !ok {
		return
	}

	doc, err := h.service.Document(filter)
	if err != nil {
		if errors.Is(err, service.ErrNotLoaded) {
			h.notLoaded(c, filter.Locale)
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to build document table", err)
		return
	}
	response.Success(c, doc)
}

// GetMap handles GET /api/v1/projects/map
func (h *ProjectHandler) GetMap(c *gin.Context) {
	filter, ok := h.bindFilter(c)
	if !ok {
		return
	}

	view, err := h.service.Map(filter)
	if err != nil {
		if errors.Is(err, service.ErrNotLoaded) {
			h.notLoaded(c, filter.Locale)
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to build map payload", err)
		return
	}
	response.Success(c, view)
}

// GetSummary handles GET /api/v1/projects/summary
func (h *ProjectHandler) GetSummary(c *gin.Context) {
	filter, ok := h.bindFilter(c)
	if !ok {
		return
	}

	sum, err := h.service.Summarize(filter)
	if err != nil {
		if errors.Is(err, service.ErrNotLoaded) {
			h.notLoaded(c, filter.Locale)
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to compute summary", err)
		return
	}
	response.Success(c, sum)
}

// Reload handles POST /api/v1/admin/projects/reload
func (h *ProjectHandler) Reload(c *gin.Context) {
	rows, malformed, err := h.service.Reload(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusBadGateway, "Dataset reload failed", err)
		return
	}
	response.Success(c, gin.H{
		"rows":      rows,
		"malformed": malformed,
	})
}
