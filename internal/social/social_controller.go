package social

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

// SocialController handles API requests for social posts.
type SocialController struct {
	repo SocialRepository
}

// NewSocialController creates a new SocialController.
func NewSocialController(repo SocialRepository) *SocialController {
	return &SocialController{repo: repo}
}

type PostRequest struct {
	Title   *models.LocalizedText `json:"title" binding:"required"`
	Content *models.LocalizedText `json:"content" binding:"required"`
	Excerpt *models.LocalizedText `json:"excerpt"`
	Images  []string              `json:"images"`
	Status  string                `json:"status"`
}

func (req *PostRequest) toModel() Post {
	item := Post{
		Title:   *req.Title,
		Content: *req.Content,
		Images:  models.StringSlice(req.Images),
		Status:  req.Status,
	}
	if req.Excerpt != nil {
		item.Excerpt = *req.Excerpt
	}
	if item.Images == nil {
		item.Images = models.StringSlice{}
	}
	if item.Status == "" {
		item.Status = models.StatusPublished
	}
	return item
}

// validateArabic enforces the mandatory Arabic fields on create/update.
func (req *PostRequest) validateArabic(c *gin.Context) bool {
	if req.Title.Ar == "" {
		responses.SendError(c, http.StatusBadRequest, "Arabic title is required", "MISSING_AR_TITLE")
		return false
	}
	if req.Content.Ar == "" {
		responses.SendError(c, http.StatusBadRequest, "Arabic content is required", "MISSING_AR_CONTENT")
		return false
	}
	return true
}

// Index godoc
// @Summary List social posts
// @Tags Social
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page (max 100)" default(20)
// @Success 200 {object} responses.Envelope{data=responses.PaginatedData}
// @Router /social [get]
func (sc *SocialController) Index(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	page, limit = utils.ClampPage(page, limit, 20)
	status := c.DefaultQuery("status", models.StatusPublished)

	items, total, err := sc.repo.GetAll(page, limit, status)
	if err != nil {
		log.Printf("social list failed: %v", err)
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve social posts", "LIST_FAILED")
		return
	}

	responses.SendPaginated(c, "Social posts retrieved successfully", items, total, page, limit)
}

// Show godoc
// @Summary Get one social post
// @Tags Social
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {object} responses.Envelope{data=Post}
// @Router /social/{id} [get]
func (sc *SocialController) Show(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid social post ID", "INVALID_ID")
		return
	}

	item, err := sc.repo.GetByID(uint(id))
	if err != nil {
		log.Printf("social lookup failed: %v", err)
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve social post", "LOOKUP_FAILED")
		return
	}
	if item == nil {
		responses.SendError(c, http.StatusNotFound, "Social post not found", "SOCIAL_NOT_FOUND")
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Social post retrieved successfully", item)
}

// Store godoc
// @Summary Create a social post
// @Tags Social
// @Accept json
// @Produce json
// @Param post body PostRequest true "Post payload"
// @Success 201 {object} responses.Envelope{data=Post}
// @Router /social [post]
func (sc *SocialController) Store(c *gin.Context) {
	var req PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, validator.Message(err), "VALIDATION_ERROR")
		return
	}
	if !req.validateArabic(c) {
		return
	}

	item := req.toModel()
	if err := sc.repo.Create(&item); err != nil {
		log.Printf("social create failed: %v", err)
		responses.SendError(c, http.StatusInternalServerError, "Failed to create social post", "CREATE_FAILED")
		return
	}

	created, err := sc.repo.GetByID(item.ID)
	if err != nil || created == nil {
		log.Printf("social re-read after create failed: %v", err)
		responses.SendError(c, http.StatusInternalServerError, "Failed to create social post", "CREATE_FAILED")
		return
	}

	responses.SendSuccess(c, http.StatusCreated, "Social post created successfully", created)
}

// Update godoc
// @Summary Update a social post
// @Tags Social
// @Accept json
// @Produce json
// @Param id path int true "Post ID"
// @Param post body PostRequest true "Post payload"
// @Success 200 {object} responses.Envelope{data=Post}
// @Router /social/{id} [put]
func (sc *SocialController) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid social post ID", "INVALID_ID")
		return
	}

	existing, err := sc.repo.GetByID(uint(id))
	if err != nil {
		log.Printf("social lookup failed: %v", err)
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve social post", "LOOKUP_FAILED")
		return
	}
	if existing == nil {
		responses.SendError(c, http.StatusNotFound, "Social post not found", "SOCIAL_NOT_FOUND")
		return
	}

	var req PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, validator.Message(err), "VALIDATION_ERROR")
		return
	}
	if !req.validateArabic(c) {
		return
	}

	item := req.toModel()
	item.ID = uint(id)
	if err := sc.repo.Update(&item); err != nil {
		log.Printf("social update failed: %v", err)
		responses.SendError(c, http.StatusInternalServerError, "Failed to update social post", "UPDATE_FAILED")
		return
	}

	updated, err := sc.repo.GetByID(uint(id))
	if err != nil || updated == nil {
		log.Printf("social re-read after update failed: %v", err)
		responses.SendError(c, http.StatusInternalServerError, "Failed to update social post", "UPDATE_FAILED")
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Social post updated successfully", updated)
}

// Destroy godoc
// @Summary Delete a social post
// @Tags Social
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {object} responses.Envelope
// @Router /social/{id} [delete]
func (sc *SocialController) Destroy(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid social post ID", "INVALID_ID")
		return
	}

	existing, err := sc.repo.GetByID(uint(id))
	if err != nil {
		log.Printf("social lookup failed: %v", err)
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve social post", "LOOKUP_FAILED")
		return
	}
	if existing == nil {
		responses.SendError(c, http.StatusNotFound, "Social post not found", "SOCIAL_NOT_FOUND")
		return
	}

	if err := sc.repo.Delete(uint(id)); err != nil {
		log.Printf("social delete failed: %v", err)
		responses.SendError(c, http.StatusInternalServerError, "Failed to delete social post", "DELETE_FAILED")
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Social post deleted successfully", nil)
}
