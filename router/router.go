package router

import (
	"net/http"

	"lumber-inventory/handlers"
	"lumber-inventory/helper"
	"lumber-inventory/middleware"
	"lumber-inventory/repositories"
	"lumber-inventory/services"
	"lumber-inventory/templates"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// New wires repositories, services and handlers on top of db and returns the
// engine serving both the HTML pages and the JSON API.
func New(db *gorm.DB) (*gin.Engine, error) {
	// Initialize repositories
	repos := repositories.NewRepositories(db)

	// Initialize services
	lumberService := services.NewLumberService(repos)
	locationService := services.NewLocationService(repos.Location)
	tagService := services.NewTagService(repos.Tag)
	exportService := services.NewExportService()

	// Initialize handlers
	httpHelper := helper.NewHTTPHelper()
	lumberHandler := handlers.NewLumberHandler(lumberService, locationService, tagService, exportService, httpHelper)
	lumberAPIHandler := handlers.NewLumberAPIHandler(lumberService, httpHelper)
	locationHandler := handlers.NewLocationHandler(locationService, httpHelper)
	tagHandler := handlers.NewTagHandler(tagService, httpHelper)

	pages, err := templates.Load()
	if err != nil {
		return nil, err
	}

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.SetHTMLTemplate(pages)

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	// HTML pages
	web := router.Group("/")
	web.Use(middleware.FlashMiddleware())
	{
		web.GET("", lumberHandler.Index)
		web.GET("/add", lumberHandler.AddForm)
		web.POST("/add", lumberHandler.Add)
		web.GET("/edit/:id", lumberHandler.EditForm)
		web.POST("/edit/:id", lumberHandler.Edit)
		web.POST("/delete/:id", lumberHandler.Delete)
		web.GET("/export.xlsx", lumberHandler.Export)
	}

	// API routes
	api := router.Group("/api")
	{
		lumber := api.Group("/lumber")
		{
			lumber.GET("", lumberAPIHandler.GetLumberList)
			lumber.POST("", lumberAPIHandler.CreateLumber)
			lumber.GET("/:id", lumberAPIHandler.GetLumber)
		}

		api.GET("/locations", locationHandler.GetLocations)

		tags := api.Group("/tags")
		{
			tags.GET("", tagHandler.GetTags)
			tags.GET("/:id", tagHandler.GetTag)
		}
	}

	return router, nil
}
