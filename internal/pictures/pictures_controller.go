package pictures

import (
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/abarhail/abarhail-api/internal/models"
	"github.com/abarhail/abarhail-api/pkg/responses"
	"github.com/abarhail/abarhail-api/pkg/utils"
	"github.com/abarhail/abarhail-api/pkg/validator"
)

// PictureController handles API requests for site pictures.
type PictureController struct {
	repo PictureRepository
}

// NewPictureController creates a new PictureController.
func NewPictureController(repo PictureRepository) *PictureController {
	return &PictureController{repo: repo}
}

type PictureRequest struct {
	Category    string                `json:"category" binding:"required"`
	Subcategory string                `json:"subcategory"`
	KeyName     string                `json:"key_name" binding:"required"`
	ImageURL    string                `json:"image_url" binding:"required"`
	AltText     *models.LocalizedText `json:"alt_text"`
	Title       *models.LocalizedText `json:"title"`
	SortOrder   int                   `json:"sort_order"`
	Status      string                `json:"status"`
}

type BulkRequest struct {
	Images []PictureRequest `json:"images" binding:"required,min=1"`
}

func (req *PictureRequest) toModel() Picture {
	item := Picture{
		Category:    req.Category,
		Subcategory: req.Subcategory,
		KeyName:     req.KeyName,
		ImageURL:    req.ImageURL,
		SortOrder:   req.SortOrder,
		Status:      req.Status,
	}
	if req.AltText != nil {
		item.AltText = *req.AltText
	}
	if req.Title != nil {
		item.Title = *req.Title
	}
	if item.Status == "" {
		item.Status = models.StatusActive
	}
	return item
}

// Index godoc
// @Summary List pictures
// @Description Plain list, one category (?category=), or a special view via ?action=structured|categories|subcategories
// @Tags Pictures
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page (max 100)" default(50)
// @Param category query string false "Return this category organized by subcategory"
// @Param action query string false "structured, categories or subcategories"
// @Success 200 {object} responses.Envelope
// @Router /pictures [get]
func (pc *PictureController) Index(c *gin.Context) {
	switch c.Query("action") {
	case "structured":
		pc.Structured(c)
		return
	case "categories":
		pc.Categories(c)
		return
	case "subcategories":
		pc.Subcategories(c)
		return
	case "":
	default:
		responses.SendError(c, http.StatusBadRequest, "Invalid action for GET request", "INVALID_ACTION")
		return
	}

	if category := c.Query("category"); category != "" {
		organized, err := pc.repo.GetByCategory(category)
		if err != nil {
			log.Printf("pictures by category failed: %v", err)
			responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve pictures", "LIST_FAILED")
			return
		}
		responses.SendSuccess(c, http.StatusOK, "Pictures retrieved by category successfully", organized)
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	page, limit = utils.ClampPage(page, limit, 50)

	items, total, err := pc.repo.GetAll(page, limit)
	if err != nil {
		log.Printf("pictures list failed: %v", err)
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve pictures", "LIST_FAILED")
		return
	}

	responses.SendPaginated(c, "Pictures retrieved successfully", items, total, page, limit)
}

// Show godoc
// @Summary Get one picture
// @Tags Pictures
// @Produce json
// @Param id path int true "Picture ID"
// @Success 200 {object} responses.Envelope{data=Picture}
// @Router /pictures/{id} [get]
func (pc *PictureController) Show(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid picture ID", "INVALID_ID")
		return
	}

	item, err := pc.repo.GetByID(uint(id))
	if err != nil {
		log.Printf("picture lookup failed: %v", err)
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve picture", "LOOKUP_FAILED")
		return
	}
	if item == nil {
		responses.SendError(c, http.StatusNotFound, "Picture not found", "PICTURE_NOT_FOUND")
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Picture retrieved successfully", item)
}

// Structured returns the whole active picture set as a nested
// category/subcategory/key tree.
func (pc *PictureController) Structured(c *gin.Context) {
	structured, err := pc.repo.GetStructured()
	if err != nil {
		log.Printf("structured pictures failed: %v", err)
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve pictures", "LIST_FAILED")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Structured pictures retrieved successfully", structured)
}

// Categories returns the distinct active categories.
func (pc *PictureController) Categories(c *gin.Context) {
	categories, err := pc.repo.GetCategories()
	if err != nil {
		log.Printf("picture categories failed: %v", err)
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve categories", "LIST_FAILED")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Categories retrieved successfully", categories)
}

// Subcategories returns the distinct active subcategories of one category.
func (pc *PictureController) Subcategories(c *gin.Context) {
	category := c.Query("category")
	if category == "" {
		responses.SendError(c, http.StatusBadRequest, "Category parameter is required for subcategories", "MISSING_CATEGORY")
		return
	}

	subcategories, err := pc.repo.GetSubcategories(category)
	if err != nil {
		log.Printf("picture subcategories failed: %v", err)
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve subcategories", "LIST_FAILED")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Subcategories retrieved successfully", subcategories)
}

// Store godoc
// @Summary Create or overwrite a picture
// @Description Upsert keyed on (category, subcategory, key_name); with ?action=bulk the body carries an images array applied atomically
// @Tags Pictures
// @Accept json
// @Produce json
// @Param picture body PictureRequest true "Picture payload"
// @Success 201 {object} responses.Envelope{data=Picture}
// @Router /pictures [post]
func (pc *PictureController) Store(c *gin.Context) {
	if c.Query("action") == "bulk" {
		pc.BulkInsert(c)
		return
	}

	var req PictureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, validator.Message(err), "VALIDATION_ERROR")
		return
	}

	item := req.toModel()
	if err := pc.repo.Upsert(&item); err != nil {
		log.Printf("picture upsert failed: %v", err)
		responses.SendError(c, http.StatusInternalServerError, "Failed to create picture", "CREATE_FAILED")
		return
	}

	created, err := pc.repo.GetByID(item.ID)
	if err != nil || created == nil {
		log.Printf("picture re-read after upsert failed: %v", err)
		responses.SendError(c, http.StatusInternalServerError, "Failed to create picture", "CREATE_FAILED")
		return
	}

	responses.SendSuccess(c, http.StatusCreated, "Picture created successfully", created)
}

// BulkInsert applies the upsert to every element of the images array in one
// transaction. Elements are validated up front so a bad one fails the call
// before any write happens.
func (pc *PictureController) BulkInsert(c *gin.Context) {
	var req BulkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Images array is required", "MISSING_IMAGES_ARRAY")
		return
	}

	items := make([]Picture, 0, len(req.Images))
	for i, img := range req.Images {
		if img.Category == "" {
			responses.SendError(c, http.StatusBadRequest, fmt.Sprintf("Category is required for image at index %d", i), "MISSING_CATEGORY")
			return
		}
		if img.KeyName == "" {
			responses.SendError(c, http.StatusBadRequest, fmt.Sprintf("Key name is required for image at index %d", i), "MISSING_KEY_NAME")
			return
		}
		if img.ImageURL == "" {
			responses.SendError(c, http.StatusBadRequest, fmt.Sprintf("Image URL is required for image at index %d", i), "MISSING_IMAGE_URL")
			return
		}
		items = append(items, img.toModel())
	}

	if err := pc.repo.BulkUpsert(items); err != nil {
		log.Printf("picture bulk insert failed: %v", err)
		responses.SendError(c, http.StatusInternalServerError, "Failed to bulk insert pictures", "BULK_INSERT_FAILED")
		return
	}

	responses.SendSuccess(c, http.StatusCreated, fmt.Sprintf("%d pictures saved successfully", len(items)), nil)
}

// Update godoc
// @Summary Update a picture
// @Tags Pictures
// @Accept json
// @Produce json
// @Param id path int true "Picture ID"
// @Param picture body PictureRequest true "Picture payload"
// @Success 200 {object} responses.Envelope{data=Picture}
// @Router /pictures/{id} [put]
func (pc *PictureController) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid picture ID", "INVALID_ID")
		return
	}

	existing, err := pc.repo.GetByID(uint(id))
	if err != nil {
		log.Printf("picture lookup failed: %v", err)
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve picture", "LOOKUP_FAILED")
		return
	}
	if existing == nil {
		responses.SendError(c, http.StatusNotFound, "Picture not found", "PICTURE_NOT_FOUND")
		return
	}

	var req PictureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, validator.Message(err), "VALIDATION_ERROR")
		return
	}

	item := req.toModel()
	item.ID = uint(id)
	if err := pc.repo.Update(&item); err != nil {
		log.Printf("picture update failed: %v", err)
		responses.SendError(c, http.StatusInternalServerError, "Failed to update picture", "UPDATE_FAILED")
		return
	}

	updated, err := pc.repo.GetByID(uint(id))
	if err != nil || updated == nil {
		log.Printf("picture re-read after update failed: %v", err)
		responses.SendError(c, http.StatusInternalServerError, "Failed to update picture", "UPDATE_FAILED")
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Picture updated successfully", updated)
}

// Destroy godoc
// @Summary Delete a picture
// @Description Soft delete: the row leaves listings but stays fetchable by id
// @Tags Pictures
// @Produce json
// @Param id path int true "Picture ID"
// @Success 200 {object} responses.Envelope
// @Router /pictures/{id} [delete]
func (pc *PictureController) Destroy(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid picture ID", "INVALID_ID")
		return
	}

	existing, err := pc.repo.GetByID(uint(id))
	if err != nil {
		log.Printf("picture lookup failed: %v", err)
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve picture", "LOOKUP_FAILED")
		return
	}
	if existing == nil {
		responses.SendError(c, http.StatusNotFound, "Picture not found", "PICTURE_NOT_FOUND")
		return
	}

	if err := pc.repo.Delete(uint(id)); err != nil {
		log.Printf("picture delete failed: %v", err)
		responses.SendError(c, http.StatusInternalServerError, "Failed to delete picture", "DELETE_FAILED")
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Picture deleted successfully", nil)
}
