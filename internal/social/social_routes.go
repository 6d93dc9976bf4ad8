package social

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterSocialRoutes(router *gin.RouterGroup, db *gorm.DB) {
	repo := NewSocialRepository(db)
	controller := NewSocialController(repo)

	socialGroup := router.Group("/social")
	{
		socialGroup.GET("", controller.Index)
		socialGroup.GET("/:id", controller.Show)
		socialGroup.POST("", controller.Store)
		socialGroup.PUT("/:id", controller.Update)
		socialGroup.DELETE("/:id", controller.Destroy)
	}
}
