package upload

import (
	"fmt"
	"image"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	// Register decoders for the image probe stage.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"

	"github.com/abarhail/abarhail-api/config"
	"github.com/abarhail/abarhail-api/pkg/utils"
)

// Error is a failed pipeline stage: a stable symbolic code plus the HTTP
// status the transport layer should answer with.
type Error struct {
	Code    string
	Message string
	Status  int
}

func (e *Error) Error() string { return e.Message }

func invalidType(message string) *Error {
	return &Error{Code: "INVALID_FILE_TYPE", Message: message, Status: http.StatusBadRequest}
}

var allowedExtensions = []string{"jpg", "jpeg", "png", "gif", "webp"}

// Content types accepted from the sniffer. The sniff result decides, never
// the client-supplied header, so spoofed extensions and headers don't pass.
var allowedMimeTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// Result describes one stored image.
type Result struct {
	Filename string `json:"filename"`
	URL      string `json:"url"`
	Size     int64  `json:"size"`
	Type     string `json:"type"`
}

// FailedFile is one rejected element of a multi-file upload.
type FailedFile struct {
	Filename string `json:"filename"`
	Error    string `json:"error"`
}

// Summary totals a multi-file upload.
type Summary struct {
	Total    int `json:"total"`
	Uploaded int `json:"uploaded"`
	Failed   int `json:"failed"`
}

// MultiResult aggregates per-file outcomes of a multi-file upload.
type MultiResult struct {
	Uploaded []Result     `json:"uploaded"`
	Failed   []FailedFile `json:"failed"`
	Summary  Summary      `json:"summary"`
}

// Service validates and stores image uploads. Construction takes the upload
// configuration explicitly; nothing here reads process-wide state.
type Service struct {
	cfg config.UploadConfig
}

// NewService creates the image directory if needed and returns the service.
func NewService(cfg config.UploadConfig) (*Service, error) {
	if err := utils.EnsureDir(cfg.ImageDir()); err != nil {
		return nil, fmt.Errorf("upload dir: %w", err)
	}
	return &Service{cfg: cfg}, nil
}

// SaveImage runs the validation pipeline and, on success, persists the file
// under a generated name and returns its public description.
func (s *Service) SaveImage(file *multipart.FileHeader) (*Result, *Error) {
	contentType, vErr := s.validate(file)
	if vErr != nil {
		return nil, vErr
	}

	filename := s.generateFilename(file.Filename)
	if err := s.persist(file, filepath.Join(s.cfg.ImageDir(), filename)); err != nil {
		return nil, &Error{Code: "FILE_UPLOAD_FAILED", Message: "Failed to save uploaded file", Status: http.StatusInternalServerError}
	}

	return &Result{
		Filename: filename,
		URL:      s.cfg.BaseURL + s.cfg.PublicPath + filename,
		Size:     file.Size,
		Type:     contentType,
	}, nil
}

// SaveImages applies the single-file pipeline to each file independently.
// The call as a whole fails only when every file was rejected; the caller
// checks Summary.Uploaded.
func (s *Service) SaveImages(files []*multipart.FileHeader) MultiResult {
	result := MultiResult{
		Uploaded: []Result{},
		Failed:   []FailedFile{},
		Summary:  Summary{Total: len(files)},
	}

	for _, file := range files {
		stored, err := s.SaveImage(file)
		if err != nil {
			result.Failed = append(result.Failed, FailedFile{Filename: file.Filename, Error: err.Message})
			result.Summary.Failed++
			continue
		}
		result.Uploaded = append(result.Uploaded, *stored)
		result.Summary.Uploaded++
	}
	return result
}

// DeleteImage removes a previously uploaded file. The filename is rejected
// before any filesystem access when it could escape the upload directory.
func (s *Service) DeleteImage(filename string) *Error {
	if filename == "" {
		return &Error{Code: "MISSING_FILENAME", Message: "Filename is required", Status: http.StatusBadRequest}
	}
	if strings.Contains(filename, "..") || strings.ContainsAny(filename, `/\`) {
		return &Error{Code: "INVALID_FILENAME", Message: "Invalid filename", Status: http.StatusBadRequest}
	}

	path := filepath.Join(s.cfg.ImageDir(), filename)
	if _, err := os.Stat(path); err != nil {
		return &Error{Code: "FILE_NOT_FOUND", Message: "File not found", Status: http.StatusNotFound}
	}
	if err := os.Remove(path); err != nil {
		return &Error{Code: "FILE_DELETE_FAILED", Message: "Failed to delete file", Status: http.StatusInternalServerError}
	}
	return nil
}

// validate runs the staged checks in strict order; the first failure wins
// and later stages never run. Returns the sniffed content type on success.
func (s *Service) validate(file *multipart.FileHeader) (string, *Error) {
	// Stage 1: the transport must have delivered a file at all.
	if file == nil {
		return "", &Error{Code: "NO_FILE_UPLOADED", Message: "No file was uploaded", Status: http.StatusBadRequest}
	}

	// Stage 2: byte size against the configured ceiling.
	if file.Size > s.cfg.MaxSizeBytes() {
		return "", &Error{
			Code:    "FILE_TOO_LARGE",
			Message: fmt.Sprintf("File size exceeds maximum limit of %s", utils.HumanSize(s.cfg.MaxSizeBytes())),
			Status:  http.StatusBadRequest,
		}
	}

	// Stage 3: lower-cased filename extension.
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(file.Filename), "."))
	if !extAllowed(ext) {
		return "", invalidType("File type not allowed. Allowed types: " + strings.Join(allowedExtensions, ", "))
	}

	src, err := file.Open()
	if err != nil {
		return "", &Error{Code: "UPLOAD_ERROR", Message: "Failed to read uploaded file", Status: http.StatusBadRequest}
	}
	defer src.Close()

	// Stage 4: content sniff of the leading bytes.
	head := make([]byte, 512)
	n, err := src.Read(head)
	if err != nil && err != io.EOF {
		return "", &Error{Code: "UPLOAD_ERROR", Message: "Failed to read uploaded file", Status: http.StatusBadRequest}
	}
	contentType := http.DetectContentType(head[:n])
	if !allowedMimeTypes[contentType] {
		return "", invalidType("Invalid file type detected")
	}

	// Stage 5: the content must decode as an image.
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return "", &Error{Code: "UPLOAD_ERROR", Message: "Failed to read uploaded file", Status: http.StatusBadRequest}
	}
	if _, _, err := image.DecodeConfig(src); err != nil {
		return "", invalidType("File is not a valid image")
	}

	return contentType, nil
}

func (s *Service) persist(file *multipart.FileHeader, path string) error {
	src, err := file.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	dst, err := os.Create(path)
	if err != nil {
		return err
	}
	defer dst.Close()

	_, err = io.Copy(dst, src)
	return err
}

// generateFilename builds image_{4 random digits}_{timestamp}.{ext}.
// Collisions within the same second are accepted as negligible.
func (s *Service) generateFilename(original string) string {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(original), "."))
	return fmt.Sprintf("image_%s_%s.%s", utils.RandomDigits(4), time.Now().Format("20060102_150405"), ext)
}

func extAllowed(ext string) bool {
	for _, allowed := range allowedExtensions {
		if ext == allowed {
			return true
		}
	}
	return false
}
