package products

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterProductRoutes(router *gin.RouterGroup, db *gorm.DB) {
	repo := NewProductRepository(db)
	controller := NewProductController(repo)

	productsGroup := router.Group("/products")
	{
		productsGroup.GET("", controller.Index)
		productsGroup.GET("/:id", controller.Show)
		productsGroup.POST("", controller.Store)
		productsGroup.PUT("/:id", controller.Update)
		productsGroup.DELETE("/:id", controller.Destroy)
	}
}
