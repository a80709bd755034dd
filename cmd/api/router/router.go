package router

import (
	"path/filepath"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"blogsmith/cmd/api/handlers"
	"blogsmith/cmd/api/middleware"
	"blogsmith/cmd/api/services"
	"blogsmith/config"
	_ "blogsmith/docs"
)

// Services bundles the request-scoped dependencies, constructed once at
// startup and injected here.
type Services struct {
	Transcriptions *services.TranscriptionService
	Titles         *services.TitleService
	Blogs          *services.BlogService
}

// New builds the gin engine with all routes registered.
func New(svcs Services) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestTrace())

	r.LoadHTMLGlob(filepath.Join(config.GetBasePath(), "templates", "*.html"))
	r.GET("/", handlers.HomeHandler)

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")
	{
		api.POST("/transcribe/", handlers.TranscribeHandler(svcs.Transcriptions))
		api.GET("/transcriptions/", handlers.TranscriptionHistoryHandler(svcs.Transcriptions))

		api.POST("/suggest-titles/", handlers.SuggestTitlesHandler(svcs.Titles))

		api.GET("/blog-posts/", handlers.ListBlogPostsHandler(svcs.Blogs))
		api.POST("/blog-posts/", handlers.CreateBlogPostHandler(svcs.Blogs))

		api.GET("/health/", handlers.HealthHandler(svcs.Transcriptions, svcs.Titles))
	}

	return r
}
