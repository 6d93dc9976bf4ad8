package slides

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

// SlideController handles API requests for slider entries.
type SlideController struct {
	repo SlideRepository
}

// NewSlideController creates a new SlideController.
func NewSlideController(repo SlideRepository) *SlideController {
	return &SlideController{repo: repo}
}

type SlideRequest struct {
	Image       string                `json:"image" binding:"required"`
	Title       *models.LocalizedText `json:"title" binding:"required"`
	Description *models.LocalizedText `json:"description"`
	ButtonText  *models.LocalizedText `json:"button_text"`
	Link        string                `json:"link"`
	SortOrder   int                   `json:"sort_order"`
	Status      string                `json:"status"`
}

type ReorderRequest struct {
	SlideIDs []uint `json:"slide_ids" binding:"required,min=1"`
}

type SortOrderRequest struct {
	SortOrder *int `json:"sort_order" binding:"required"`
}

func (req *SlideRequest) toModel() Slide {
	item := Slide{
		Image:     req.Image,
		Title:     *req.Title,
		Link:      req.Link,
		SortOrder: req.SortOrder,
		Status:    req.Status,
	}
	if req.Description != nil {
		item.Description = *req.Description
	}
	if req.ButtonText != nil {
		item.ButtonText = *req.ButtonText
	}
	if item.Status == "" {
		item.Status = models.StatusPublished
	}
	return item
}

// Index godoc
// @Summary List slides
// @Description Published slides in display order
// @Tags Slides
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page (max 100)" default(20)
// @Success 200 {object} responses.Envelope{data=responses.PaginatedData}
// @Router /slides [get]
func (sc *SlideController) Index(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	page, limit = utils.ClampPage(page, limit, 20)
	status := c.DefaultQuery("status", models.StatusPublished)

	items, total, err := sc.repo.GetAll(page, limit, status)
	if err != nil {
		log.Printf("slides list failed: %v", err)
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve slides", "LIST_FAILED")
		return
	}

	responses.SendPaginated(c, "Slides retrieved successfully", items, total, page, limit)
}

// Show godoc
// @Summary Get one slide
// @Tags Slides
// @Produce json
// @Param id path int true "Slide ID"
// @Success 200 {object} responses.Envelope{data=Slide}
// @Router /slides/{id} [get]
func (sc *SlideController) Show(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid slide ID", "INVALID_ID")
		return
	}

	item, err := sc.repo.GetByID(uint(id))
	if err != nil {
		log.Printf("slide lookup failed: %v", err)
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve slide", "LOOKUP_FAILED")
		return
	}
	if item == nil {
		responses.SendError(c, http.StatusNotFound, "Slide not found", "SLIDE_NOT_FOUND")
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Slide retrieved successfully", item)
}

// Store godoc
// @Summary Create a slide
// @Description With ?action=reorder the request reorders all slides instead
// @Tags Slides
// @Accept json
// @Produce json
// @Param slide body SlideRequest true "Slide payload"
// @Success 201 {object} responses.Envelope{data=Slide}
// @Router /slides [post]
func (sc *SlideController) Store(c *gin.Context) {
	// ?action=reorder shares the POST verb, mirroring the public surface.
	if c.Query("action") == "reorder" {
		sc.Reorder(c)
		return
	}

	var req SlideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, validator.Message(err), "VALIDATION_ERROR")
		return
	}
	if req.Title.Ar == "" {
		responses.SendError(c, http.StatusBadRequest, "Arabic title is required", "MISSING_AR_TITLE")
		return
	}

	item := req.toModel()
	if err := sc.repo.Create(&item); err != nil {
		log.Printf("slide create failed: %v", err)
		responses.SendError(c, http.StatusInternalServerError, "Failed to create slide", "CREATE_FAILED")
		return
	}

	created, err := sc.repo.GetByID(item.ID)
	if err != nil || created == nil {
		log.Printf("slide re-read after create failed: %v", err)
		responses.SendError(c, http.StatusInternalServerError, "Failed to create slide", "CREATE_FAILED")
		return
	}

	responses.SendSuccess(c, http.StatusCreated, "Slide created successfully", created)
}

// Update godoc
// @Summary Update a slide
// @Tags Slides
// @Accept json
// @Produce json
// @Param id path int true "Slide ID"
// @Param slide body SlideRequest true "Slide payload"
// @Success 200 {object} responses.Envelope{data=Slide}
// @Router /slides/{id} [put]
func (sc *SlideController) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid slide ID", "INVALID_ID")
		return
	}

	existing, err := sc.repo.GetByID(uint(id))
	if err != nil {
		log.Printf("slide lookup failed: %v", err)
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve slide", "LOOKUP_FAILED")
		return
	}
	if existing == nil {
		responses.SendError(c, http.StatusNotFound, "Slide not found", "SLIDE_NOT_FOUND")
		return
	}

	var req SlideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, validator.Message(err), "VALIDATION_ERROR")
		return
	}
	if req.Title.Ar == "" {
		responses.SendError(c, http.StatusBadRequest, "Arabic title is required", "MISSING_AR_TITLE")
		return
	}

	item := req.toModel()
	item.ID = uint(id)
	if err := sc.repo.Update(&item); err != nil {
		log.Printf("slide update failed: %v", err)
		responses.SendError(c, http.StatusInternalServerError, "Failed to update slide", "UPDATE_FAILED")
		return
	}

	updated, err := sc.repo.GetByID(uint(id))
	if err != nil || updated == nil {
		log.Printf("slide re-read after update failed: %v", err)
		responses.SendError(c, http.StatusInternalServerError, "Failed to update slide", "UPDATE_FAILED")
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Slide updated successfully", updated)
}

// Destroy godoc
// @Summary Delete a slide
// @Tags Slides
// @Produce json
// @Param id path int true "Slide ID"
// @Success 200 {object} responses.Envelope
// @Router /slides/{id} [delete]
func (sc *SlideController) Destroy(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid slide ID", "INVALID_ID")
		return
	}

	existing, err := sc.repo.GetByID(uint(id))
	if err != nil {
		log.Printf("slide lookup failed: %v", err)
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve slide", "LOOKUP_FAILED")
		return
	}
	if existing == nil {
		responses.SendError(c, http.StatusNotFound, "Slide not found", "SLIDE_NOT_FOUND")
		return
	}

	if err := sc.repo.Delete(uint(id)); err != nil {
		log.Printf("slide delete failed: %v", err)
		responses.SendError(c, http.StatusInternalServerError, "Failed to delete slide", "DELETE_FAILED")
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Slide deleted successfully", nil)
}

// Reorder godoc
// @Summary Reorder all slides
// @Description Assigns sort_order following the given id sequence, all-or-nothing
// @Tags Slides
// @Accept json
// @Produce json
// @Param order body ReorderRequest true "Ordered slide ids"
// @Success 200 {object} responses.Envelope
// @Router /slides?action=reorder [post]
func (sc *SlideController) Reorder(c *gin.Context) {
	var req ReorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Slide IDs array is required", "MISSING_SLIDE_IDS")
		return
	}

	if err := sc.repo.Reorder(req.SlideIDs); err != nil {
		log.Printf("slide reorder failed: %v", err)
		responses.SendError(c, http.StatusInternalServerError, "Failed to reorder slides", "REORDER_FAILED")
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Slides reordered successfully", nil)
}

// UpdateSortOrder godoc
// @Summary Update one slide's sort order
// @Tags Slides
// @Accept json
// @Produce json
// @Param id path int true "Slide ID"
// @Param order body SortOrderRequest true "New sort order"
// @Success 200 {object} responses.Envelope{data=Slide}
// @Router /slides/{id}?action=sort-order [patch]
func (sc *SlideController) UpdateSortOrder(c *gin.Context) {
	if c.Query("action") != "sort-order" {
		responses.SendError(c, http.StatusBadRequest, "Invalid PATCH request", "INVALID_ACTION")
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid slide ID", "INVALID_ID")
		return
	}

	existing, err := sc.repo.GetByID(uint(id))
	if err != nil {
		log.Printf("slide lookup failed: %v", err)
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve slide", "LOOKUP_FAILED")
		return
	}
	if existing == nil {
		responses.SendError(c, http.StatusNotFound, "Slide not found", "SLIDE_NOT_FOUND")
		return
	}

	var req SortOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Sort order is required and must be numeric", "INVALID_SORT_ORDER")
		return
	}

	if err := sc.repo.UpdateSortOrder(uint(id), *req.SortOrder); err != nil {
		log.Printf("slide sort order update failed: %v", err)
		responses.SendError(c, http.StatusInternalServerError, "Failed to update slide sort order", "UPDATE_SORT_ORDER_FAILED")
		return
	}

	updated, err := sc.repo.GetByID(uint(id))
	if err != nil || updated == nil {
		log.Printf("slide re-read after sort order update failed: %v", err)
		responses.SendError(c, http.StatusInternalServerError, "Failed to update slide sort order", "UPDATE_SORT_ORDER_FAILED")
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Slide sort order updated successfully", updated)
}
