package pictures

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterPictureRoutes(router *gin.RouterGroup, db *gorm.DB) {
	repo := NewPictureRepository(db)
	controller := NewPictureController(repo)

	picturesGroup := router.Group("/pictures")
	{
		picturesGroup.GET("", controller.Index) // also ?action=structured|categories|subcategories
		picturesGroup.GET("/:id", controller.Show)
		picturesGroup.POST("", controller.Store) // also ?action=bulk
		picturesGroup.PUT("/:id", controller.Update)
		picturesGroup.DELETE("/:id", controller.Destroy)
	}
}
