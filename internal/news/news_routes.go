package news

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterNewsRoutes(router *gin.RouterGroup, db *gorm.DB) {
	repo := NewNewsRepository(db)
	controller := NewNewsController(repo)

	newsGroup := router.Group("/news")
	{
		newsGroup.GET("", controller.Index)
		newsGroup.GET("/:id", controller.Show)
		newsGroup.POST("", controller.Store)
		newsGroup.PUT("/:id", controller.Update)
		newsGroup.DELETE("/:id", controller.Destroy)
	}
}
