package upload

import (
	"fmt"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/abarhail/abarhail-api/pkg/responses"
)

// Controller handles image upload and deletion requests.
type Controller struct {
	service *Service
}

// NewController creates a new upload Controller.
func NewController(service *Service) *Controller {
	return &Controller{service: service}
}

// Store godoc
// @Summary Upload images
// @Description Upload a single image ("image" field) or several ("images" field). Multi-file uploads succeed as long as at least one file passes validation.
// @Tags Upload
// @Accept multipart/form-data
// @Produce json
// @Param image formData file false "Single image file"
// @Param images formData file false "Multiple image files"
// @Success 201 {object} responses.Envelope
// @Failure 400 {object} responses.Envelope
// @Router /upload/images [post]
func (uc *Controller) Store(c *gin.Context) {
	if files := multiFiles(c); files != nil {
		result := uc.service.SaveImages(files)
		if result.Summary.Uploaded == 0 {
			responses.SendError(c, http.StatusBadRequest, "All file uploads failed", "ALL_UPLOADS_FAILED")
			return
		}
		message := fmt.Sprintf("%d of %d files uploaded successfully", result.Summary.Uploaded, result.Summary.Total)
		responses.SendSuccess(c, http.StatusCreated, message, result)
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "No file was uploaded", "NO_FILE_UPLOADED")
		return
	}

	stored, uErr := uc.service.SaveImage(file)
	if uErr != nil {
		responses.SendError(c, uErr.Status, uErr.Message, uErr.Code)
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "File uploaded successfully", stored)
}

// Destroy godoc
// @Summary Delete an uploaded image
// @Tags Upload
// @Produce json
// @Param filename query string true "Filename returned by the upload endpoint"
// @Success 200 {object} responses.Envelope
// @Failure 404 {object} responses.Envelope
// @Router /upload/images [delete]
func (uc *Controller) Destroy(c *gin.Context) {
	filename := c.Query("filename")
	if uErr := uc.service.DeleteImage(filename); uErr != nil {
		responses.SendError(c, uErr.Status, uErr.Message, uErr.Code)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "File deleted successfully", gin.H{"filename": filename})
}

// multiFiles returns the "images" form files, or nil when the request is
// not a multi-file upload.
func multiFiles(c *gin.Context) []*multipart.FileHeader {
	form, err := c.MultipartForm()
	if err != nil {
		return nil
	}
	files := form.File["images"]
	if len(files) == 0 {
		return nil
	}
	return files
}
