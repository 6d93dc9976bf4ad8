package slides

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterSlideRoutes(router *gin.RouterGroup, db *gorm.DB) {
	repo := NewSlideRepository(db)
	controller := NewSlideController(repo)

	slidesGroup := router.Group("/slides")
	{
		slidesGroup.GET("", controller.Index)
		slidesGroup.GET("/:id", controller.Show)
		slidesGroup.POST("", controller.Store) // also handles ?action=reorder
		slidesGroup.PUT("/:id", controller.Update)
		slidesGroup.PATCH("/:id", controller.UpdateSortOrder) // ?action=sort-order
		slidesGroup.DELETE("/:id", controller.Destroy)
	}
}
