package responses

import (
	"math"
	"time"

	"github.com/gin-gonic/gin"
)

// Envelope is the fixed wrapper every response uses.
type Envelope struct {
	Success   bool        `json:"success"`
	Message   string      `json:"message"`
	ErrorCode string      `json:"error_code,omitempty"`
	Data      interface{} `json:"data"`
	Timestamp string      `json:"timestamp"`
}

// PaginatedData is the data payload of a paginated success response.
type PaginatedData struct {
	Items      interface{} `json:"items"`
	Pagination Pagination  `json:"pagination"`
}

// Pagination holds pagination information.
type Pagination struct {
	CurrentPage int   `json:"current_page"`
	PerPage     int   `json:"per_page"`
	TotalItems  int64 `json:"total_items"`
	TotalPages  int   `json:"total_pages"`
	HasNext     bool  `json:"has_next"`
	HasPrev     bool  `json:"has_prev"`
}

// SendSuccess sends a standardized success response.
func SendSuccess(c *gin.Context, statusCode int, message string, data interface{}) {
	if message == "" {
		message = "Success"
	}
	c.JSON(statusCode, Envelope{
		Success:   true,
		Message:   message,
		Data:      data,
		Timestamp: now(),
	})
}

// SendError sends a standardized error response carrying a stable symbolic
// error code for machine handling. Data is always null on errors.
func SendError(c *gin.Context, statusCode int, message, errorCode string) {
	if message == "" {
		message = "Error occurred"
	}
	c.AbortWithStatusJSON(statusCode, Envelope{
		Success:   false,
		Message:   message,
		ErrorCode: errorCode,
		Data:      nil,
		Timestamp: now(),
	})
}

// SendPaginated sends a standardized success response for paginated data.
func SendPaginated(c *gin.Context, message string, items interface{}, total int64, page, limit int) {
	if message == "" {
		message = "Data retrieved successfully"
	}
	totalPages := int(math.Ceil(float64(total) / float64(limit)))

	SendSuccess(c, 200, message, PaginatedData{
		Items: items,
		Pagination: Pagination{
			CurrentPage: page,
			PerPage:     limit,
			TotalItems:  total,
			TotalPages:  totalPages,
			HasNext:     page < totalPages,
			HasPrev:     page > 1,
		},
	})
}

func now() string {
	return time.Now().Format(time.RFC3339)
}
