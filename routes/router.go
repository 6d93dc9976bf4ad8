package routes

import (
	"net/http"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/abarhail/abarhail-api/config"
	"github.com/abarhail/abarhail-api/internal/news"
	"github.com/abarhail/abarhail-api/internal/pictures"
	"github.com/abarhail/abarhail-api/internal/products"
	"github.com/abarhail/abarhail-api/internal/slides"
	"github.com/abarhail/abarhail-api/internal/social"
	"github.com/abarhail/abarhail-api/internal/upload"
	"github.com/abarhail/abarhail-api/pkg/responses"
)

func SetupRoutes(cfg *config.Config, db *gorm.DB) *gin.Engine {
	r := gin.Default()
	r.HandleMethodNotAllowed = true

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	r.Use(cors.New(corsConfig))

	// Uploaded files are served straight from disk.
	r.Static("/uploads", cfg.Upload.Dir)

	// Welcome page
	r.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(`
			<html>
				<head><title>Abar Hail API</title></head>
				<body style="text-align:center; margin-top: 40px;">
					<h1>Abar Hail API</h1>
					<p>See <a href="/swagger/index.html">/swagger/index.html</a> for the API reference.</p>
				</body>
			</html>
		`))
	})

	// Swagger route
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API routes
	api := r.Group("/api/v1")
	news.RegisterNewsRoutes(api, db)
	social.RegisterSocialRoutes(api, db)
	slides.RegisterSlideRoutes(api, db)
	pictures.RegisterPictureRoutes(api, db)
	products.RegisterProductRoutes(api, db)
	upload.RegisterUploadRoutes(api, cfg.Upload)

	// Non-browser clients probe with bare OPTIONS requests; answer them
	// even for paths no handler owns.
	r.NoRoute(func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Status(http.StatusOK)
			return
		}
		if strings.HasPrefix(c.Request.URL.Path, "/api/v1") {
			responses.SendError(c, http.StatusNotFound, "Resource not found", "RESOURCE_NOT_FOUND")
			return
		}
		responses.SendError(c, http.StatusNotFound, "Invalid API endpoint", "INVALID_ENDPOINT")
	})

	r.NoMethod(func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Status(http.StatusOK)
			return
		}
		responses.SendError(c, http.StatusMethodNotAllowed, "Method not allowed", "METHOD_NOT_ALLOWED")
	})

	return r
}
