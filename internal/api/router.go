package api

import (
	"net/http"

	"github.com/energystats/factbook-backend-go/internal/config"
	"github.com/energystats/factbook-backend-go/internal/database"
	"github.com/energystats/factbook-backend-go/internal/handler"
	"github.com/energystats/factbook-backend-go/internal/ingest"
	"github.com/energystats/factbook-backend-go/internal/middleware"
	"github.com/energystats/factbook-backend-go/internal/repository"
	"github.com/energystats/factbook-backend-go/internal/service"
	"github.com/gin-gonic/gin"
)

// SetupRouter wires the HTTP surface and returns the engine plus the
// project service so the caller can run the initial dataset load.
func SetupRouter(cfg *config.Config) (*gin.Engine, *service.ProjectService) {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())
	r.Use(middleware.RateLimit(cfg.RateLimit, cfg.RateWindow))

	// CORS: the factbook pages are served from a separate static host.
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	loader := ingest.NewLoader(cfg.DatasetURL, cfg.FetchTimeout)
	repo := repository.NewProjectRepository(database.GetDB())
	projects := service.NewProjectService(loader, repo)
	projectHandler := handler.NewProjectHandler(projects)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"message":   "Factbook Projects API is running",
			"malformed": len(projects.Malformed()),
		})
	})

	api := r.Group("/api/v1")
	{
		group := api.Group("/projects")
		{
			group.GET("", projectHandler.GetProjects)
			group.GET("/options", projectHandler.GetOptions)
			group.GET("/export", projectHandler.ExportCSV)
			group.GET("/document", projectHandler.GetDocument)
			group.GET("/map", projectHandler.GetMap)
			group.GET("/summary", projectHandler.GetSummary)
		}

		admin := api.Group("/admin", middleware.AdminAuth(cfg.AdminJWTSecret))
		{
			admin.POST("/projects/reload", projectHandler.Reload)
		}
	}

	return r, projects
}
