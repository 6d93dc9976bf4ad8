package upload

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/abarhail/abarhail-api/config"
)

func RegisterUploadRoutes(router *gin.RouterGroup, cfg config.UploadConfig) {
	service, err := NewService(cfg)
	if err != nil {
		log.Fatalf("upload service init failed: %v", err)
	}
	controller := NewController(service)

	uploadGroup := router.Group("/upload")
	{
		uploadGroup.POST("/images", controller.Store)
		uploadGroup.DELETE("/images", controller.Destroy)
	}
}
