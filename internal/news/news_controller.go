package news

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

// NewsController handles API requests for news articles.
type NewsController struct {
	repo NewsRepository
}

// NewNewsController creates a new NewsController.
func NewNewsController(repo NewsRepository) *NewsController {
	return &NewsController{repo: repo}
}

// --- DTOs ---

type NewsRequest struct {
	Title   *models.LocalizedText `json:"title" binding:"required"`
	Content *models.LocalizedText `json:"content" binding:"required"`
	Excerpt *models.LocalizedText `json:"excerpt"`
	Images  []string              `json:"images"`
	Status  string                `json:"status"`
}

// toModel builds the row from validated input. English falls back to the
// empty string, excerpt and images to empty values.
func (req *NewsRequest) toModel() News {
	item := News{
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

// Index godoc
// @Summary List news
// @Description Get published news articles, newest first
// @Tags News
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page (max 100)" default(20)
// @Param status query string false "Status filter" default(published)
// @Success 200 {object} responses.Envelope{data=responses.PaginatedData}
// @Router /news [get]
func (nc *NewsController) Index(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	page, limit = utils.ClampPage(page, limit, 20)
	status := c.DefaultQuery("status", models.StatusPublished)

	items, total, err := nc.repo.GetAll(page, limit, status)
	if err != nil {
		log.Printf("news list failed: %v", err)
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve news", "LIST_FAILED")
		return
	}

	responses.SendPaginated(c, "News retrieved successfully", items, total, page, limit)
}

// Show godoc
// @Summary Get one news article
// @Tags News
// @Produce json
// @Param id path int true "News ID"
// @Success 200 {object} responses.Envelope{data=News}
// @Failure 404 {object} responses.Envelope
// @Router /news/{id} [get]
func (nc *NewsController) Show(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid news ID", "INVALID_ID")
		return
	}

	item, err := nc.repo.GetByID(uint(id))
	if err != nil {
		log.Printf("news lookup failed: %v", err)
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve news", "LOOKUP_FAILED")
		return
	}
	if item == nil {
		responses.SendError(c, http.StatusNotFound, "News not found", "NEWS_NOT_FOUND")
		return
	}

	responses.SendSuccess(c, http.StatusOK, "News retrieved successfully", item)
}

// Store godoc
// @Summary Create a news article
// @Description Arabic title and content are mandatory; English defaults to empty
// @Tags News
// @Accept json
// @Produce json
// @Param news body NewsRequest true "News payload"
// @Success 201 {object} responses.Envelope{data=News}
// @Failure 400 {object} responses.Envelope
// @Router /news [post]
func (nc *NewsController) Store(c *gin.Context) {
	var req NewsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, validator.Message(err), "VALIDATION_ERROR")
		return
	}
	if req.Title.Ar == "" {
		responses.SendError(c, http.StatusBadRequest, "Arabic title is required", "MISSING_AR_TITLE")
		return
	}
	if req.Content.Ar == "" {
		responses.SendError(c, http.StatusBadRequest, "Arabic content is required", "MISSING_AR_CONTENT")
		return
	}

	item := req.toModel()
	if err := nc.repo.Create(&item); err != nil {
		log.Printf("news create failed: %v", err)
		responses.SendError(c, http.StatusInternalServerError, "Failed to create news", "CREATE_FAILED")
		return
	}

	created, err := nc.repo.GetByID(item.ID)
	if err != nil || created == nil {
		log.Printf("news re-read after create failed: %v", err)
		responses.SendError(c, http.StatusInternalServerError, "Failed to create news", "CREATE_FAILED")
		return
	}

	responses.SendSuccess(c, http.StatusCreated, "News created successfully", created)
}

// Update godoc
// @Summary Update a news article
// @Description Full-field replace; updated_at is refreshed
// @Tags News
// @Accept json
// @Produce json
// @Param id path int true "News ID"
// @Param news body NewsRequest true "News payload"
// @Success 200 {object} responses.Envelope{data=News}
// @Failure 404 {object} responses.Envelope
// @Router /news/{id} [put]
func (nc *NewsController) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid news ID", "INVALID_ID")
		return
	}

	existing, err := nc.repo.GetByID(uint(id))
	if err != nil {
		log.Printf("news lookup failed: %v", err)
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve news", "LOOKUP_FAILED")
		return
	}
	if existing == nil {
		responses.SendError(c, http.StatusNotFound, "News not found", "NEWS_NOT_FOUND")
		return
	}

	var req NewsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, validator.Message(err), "VALIDATION_ERROR")
		return
	}
	if req.Title.Ar == "" {
		responses.SendError(c, http.StatusBadRequest, "Arabic title is required", "MISSING_AR_TITLE")
		return
	}
	if req.Content.Ar == "" {
		responses.SendError(c, http.StatusBadRequest, "Arabic content is required", "MISSING_AR_CONTENT")
		return
	}

	item := req.toModel()
	item.ID = uint(id)
	if err := nc.repo.Update(&item); err != nil {
		log.Printf("news update failed: %v", err)
		responses.SendError(c, http.StatusInternalServerError, "Failed to update news", "UPDATE_FAILED")
		return
	}

	updated, err := nc.repo.GetByID(uint(id))
	if err != nil || updated == nil {
		log.Printf("news re-read after update failed: %v", err)
		responses.SendError(c, http.StatusInternalServerError, "Failed to update news", "UPDATE_FAILED")
		return
	}

	responses.SendSuccess(c, http.StatusOK, "News updated successfully", updated)
}

// Destroy godoc
// @Summary Delete a news article
// @Description Soft delete: flips status to deleted, the row stays fetchable by id
// @Tags News
// @Produce json
// @Param id path int true "News ID"
// @Success 200 {object} responses.Envelope
// @Failure 404 {object} responses.Envelope
// @Router /news/{id} [delete]
func (nc *NewsController) Destroy(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid news ID", "INVALID_ID")
		return
	}

	existing, err := nc.repo.GetByID(uint(id))
	if err != nil {
		log.Printf("news lookup failed: %v", err)
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve news", "LOOKUP_FAILED")
		return
	}
	if existing == nil {
		responses.SendError(c, http.StatusNotFound, "News not found", "NEWS_NOT_FOUND")
		return
	}

	if err := nc.repo.Delete(uint(id)); err != nil {
		log.Printf("news delete failed: %v", err)
		responses.SendError(c, http.StatusInternalServerError, "Failed to delete news", "DELETE_FAILED")
		return
	}

	responses.SendSuccess(c, http.StatusOK, "News deleted successfully", nil)
}
