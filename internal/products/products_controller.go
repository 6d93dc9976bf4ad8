package products

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/abarhail/abarhail-api/internal/models"
	"github.com/abarhail/abarhail-api/pkg/responses"
	"github.com/abarhail/abarhail-api/pkg/utils"
	"github.com/abarhail/abarhail-api/pkg/validator"
)

// ProductController handles API requests for products.
type ProductController struct {
	repo ProductRepository
}

// NewProductController creates a new ProductController.
func NewProductController(repo ProductRepository) *ProductController {
	return &ProductController{repo: repo}
}

type ProductRequest struct {
	Title *models.LocalizedText `json:"title" binding:"required"`
	Label *models.LocalizedText `json:"label" binding:"required"`
	Image string                `json:"image" binding:"required"`
}

func (req *ProductRequest) validate(c *gin.Context) bool {
	if req.Title.Ar == "" {
		responses.SendError(c, http.StatusBadRequest, "Arabic title is required", "MISSING_AR_TITLE")
		return false
	}
	if req.Label.Ar == "" {
		responses.SendError(c, http.StatusBadRequest, "Arabic label is required", "MISSING_AR_LABEL")
		return false
	}
	if req.Image == "" {
		responses.SendError(c, http.StatusBadRequest, "Image is required", "MISSING_IMAGE")
		return false
	}
	return true
}

// Index godoc
// @Summary List products
// @Tags Products
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page (max 100)" default(20)
// @Success 200 {object} responses.Envelope{data=responses.PaginatedData}
// @Router /products [get]
func (pc *ProductController) Index(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	page, limit = utils.ClampPage(page, limit, 20)

	items, total, err := pc.repo.GetAll(page, limit)
	if err != nil {
		log.Printf("products list failed: %v", err)
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve products", "LIST_FAILED")
		return
	}

	responses.SendPaginated(c, "Products retrieved successfully", items, total, page, limit)
}

// Show godoc
// @Summary Get one product
// @Tags Products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} responses.Envelope{data=Product}
// @Router /products/{id} [get]
func (pc *ProductController) Show(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid product ID", "INVALID_ID")
		return
	}

	item, err := pc.repo.GetByID(uint(id))
	if err != nil {
		log.Printf("product lookup failed: %v", err)
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve product", "LOOKUP_FAILED")
		return
	}
	if item == nil {
		responses.SendError(c, http.StatusNotFound, "Product not found", "PRODUCT_NOT_FOUND")
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Product retrieved successfully", item)
}

// Store godoc
// @Summary Create a product
// @Tags Products
// @Accept json
// @Produce json
// @Param product body ProductRequest true "Product payload"
// @Success 201 {object} responses.Envelope{data=Product}
// @Router /products [post]
func (pc *ProductController) Store(c *gin.Context) {
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, validator.Message(err), "VALIDATION_ERROR")
		return
	}
	if !req.validate(c) {
		return
	}

	item := Product{
		Title: *req.Title,
		Label: *req.Label,
		Image: req.Image,
	}
	if err := pc.repo.Create(&item); err != nil {
		log.Printf("product create failed: %v", err)
		responses.SendError(c, http.StatusInternalServerError, "Failed to create product", "CREATE_FAILED")
		return
	}

	created, err := pc.repo.GetByID(item.ID)
	if err != nil || created == nil {
		log.Printf("product re-read after create failed: %v", err)
		responses.SendError(c, http.StatusInternalServerError, "Failed to create product", "CREATE_FAILED")
		return
	}

	responses.SendSuccess(c, http.StatusCreated, "Product created successfully", created)
}

// Update godoc
// @Summary Update a product
// @Tags Products
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param product body ProductRequest true "Product payload"
// @Success 200 {object} responses.Envelope{data=Product}
// @Router /products/{id} [put]
func (pc *ProductController) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid product ID", "INVALID_ID")
		return
	}

	existing, err := pc.repo.GetByID(uint(id))
	if err != nil {
		log.Printf("product lookup failed: %v", err)
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve product", "LOOKUP_FAILED")
		return
	}
	if existing == nil {
		responses.SendError(c, http.StatusNotFound, "Product not found", "PRODUCT_NOT_FOUND")
		return
	}

	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, validator.Message(err), "VALIDATION_ERROR")
		return
	}
	if !req.validate(c) {
		return
	}

	item := Product{
		ID:    uint(id),
		Title: *req.Title,
		Label: *req.Label,
		Image: req.Image,
	}
	if err := pc.repo.Update(&item); err != nil {
		log.Printf("product update failed: %v", err)
		responses.SendError(c, http.StatusInternalServerError, "Failed to update product", "UPDATE_FAILED")
		return
	}

	updated, err := pc.repo.GetByID(uint(id))
	if err != nil || updated == nil {
		log.Printf("product re-read after update failed: %v", err)
		responses.SendError(c, http.StatusInternalServerError, "Failed to update product", "UPDATE_FAILED")
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Product updated successfully", updated)
}

// Destroy godoc
// @Summary Delete a product
// @Description Hard delete: the row is removed
// @Tags Products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} responses.Envelope
// @Router /products/{id} [delete]
func (pc *ProductController) Destroy(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid product ID", "INVALID_ID")
		return
	}

	existing, err := pc.repo.GetByID(uint(id))
	if err != nil {
		log.Printf("product lookup failed: %v", err)
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve product", "LOOKUP_FAILED")
		return
	}
	if existing == nil {
		responses.SendError(c, http.StatusNotFound, "Product not found", "PRODUCT_NOT_FOUND")
		return
	}

	if err := pc.repo.Delete(uint(id)); err != nil {
		log.Printf("product delete failed: %v", err)
		responses.SendError(c, http.StatusInternalServerError, "Failed to delete product", "DELETE_FAILED")
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Product deleted successfully", nil)
}
