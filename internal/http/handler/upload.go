package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/ondrasimku/upload-service-go/internal/domain"
	"github.com/ondrasimku/upload-service-go/internal/files"
)

type UploadHandler struct {
	files   *files.Service
	maxSize int64
	logger  *slog.Logger
}

func NewUploadHandler(service *files.Service, maxSize int64, logger *slog.Logger) *UploadHandler {
	return &UploadHandler{
		files:   service,
		maxSize: maxSize,
		logger:  logger,
	}
}

type UploadResponse struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	Filename string `json:"filename"`
	Path     string `json:"path"`
}

type FileResponse struct {
	Name     string `json:"name"`
	Size     int64  `json:"size"`
	Modified string `json:"modified"`
}

type ListFilesResponse struct {
	Success bool           `json:"success"`
	Files   []FileResponse `json:"files"`
}

// Upload stores the multipart field "file" in the storage directory.
// @Summary Upload a file
// @Description Stores the uploaded file under a sanitized name. Existing names get a timestamp suffix.
// @Tags files
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "File to upload"
// @Success 200 {object} UploadResponse
// @Failure 400 {object} ErrorResponse "MissingFilePart, EmptyFilename or DisallowedExtension"
// @Failure 413 {object} ErrorResponse "Request body too large"
// @Failure 429 {object} ErrorResponse "Rate limited"
// @Failure 500 {object} ErrorResponse "StorageUnavailable or UnexpectedIOFailure"
// @Router /upload [post]
func (h *UploadHandler) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		var maxErr *http.MaxBytesError
		switch {
		case errors.As(err, &maxErr):
			h.logger.Warn("Upload body too large", "max", h.maxSize)
			c.JSON(http.StatusRequestEntityTooLarge, ErrorResponse{
				Error: "File too large. Maximum upload size is " + HumanSize(h.maxSize),
				Code:  "PayloadTooLarge",
			})
			return
		case hasValue(c, "file"):
			err = domain.NewUploadError(domain.KindEmptyFilename, "No file selected")
		default:
			err = domain.NewUploadErrorWithCause(domain.KindMissingFilePart, "No file part in the request", err)
		}
		h.logger.Warn("Rejected upload", "error", err)
		writeUploadError(c, err)
		return
	}

	src, err := file.Open()
	if err != nil {
		h.logger.Error("Failed to open uploaded file", "error", err)
		writeUploadError(c, domain.NewUploadErrorWithCause(
			domain.KindUnexpectedIOFailure,
			"Upload failed: "+err.Error(),
			err,
		))
		return
	}
	defer src.Close()

	result, err := h.files.Upload(c.Request.Context(), file.Filename, src)
	if err != nil {
		switch domain.KindOf(err) {
		case domain.KindStorageUnavailable, domain.KindUnexpectedIOFailure:
			h.logger.Error("Upload failed", "filename", file.Filename, "error", err)
		default:
			h.logger.Warn("Rejected upload", "filename", file.Filename, "error", err)
		}
		writeUploadError(c, err)
		return
	}

	c.JSON(http.StatusOK, UploadResponse{
		Success:  true,
		Message:  `File "` + result.Filename + `" uploaded successfully`,
		Filename: result.Filename,
		Path:     result.Path,
	})
}

// A multipart part named "file" with an empty filename is parsed as a
// plain form value rather than a file.
func hasValue(c *gin.Context, field string) bool {
	form := c.Request.MultipartForm
	return form != nil && len(form.Value[field]) > 0
}

// ListFiles returns the stored files, newest first.
// @Summary List uploaded files
// @Tags files
// @Produce json
// @Success 200 {object} ListFilesResponse
// @Failure 500 {object} ErrorResponse
// @Router /files [get]
func (h *UploadHandler) ListFiles(c *gin.Context) {
	stored, err := h.files.List(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to list files", "error", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, ListFilesResponse{
		Success: true,
		Files:   toFileResponses(stored),
	})
}

// Index renders the upload page. A listing failure shows an empty list.
func (h *UploadHandler) Index(c *gin.Context) {
	stored, err := h.files.List(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to list files for index page", "error", err)
		stored = nil
	}

	allow := h.files.AllowList()
	accept := make([]string, 0, len(allow.Extensions()))
	for _, ext := range allow.Extensions() {
		accept = append(accept, "."+ext)
	}

	c.HTML(http.StatusOK, "index.html", gin.H{
		"UploadPath":        h.files.VolumePath(),
		"AllowedExtensions": allow.String(),
		"Accept":            strings.Join(accept, ","),
		"MaxSize":           h.maxSize,
		"Files":             toFileResponses(stored),
	})
}

func toFileResponses(stored []domain.StoredFile) []FileResponse {
	out := make([]FileResponse, 0, len(stored))
	for _, f := range stored {
		out = append(out, FileResponse{
			Name:     f.Name,
			Size:     f.Size,
			Modified: f.ModifiedAt.Local().Format(modifiedLayout),
		})
	}
	return out
}
