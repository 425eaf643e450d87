package handler

import (
	"errors"
	"fmt"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ondrasimku/upload-service-go/internal/domain"
)

const modifiedLayout = "2006-01-02 15:04:05"

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
}

func statusForKind(kind domain.ErrorKind) int {
	switch kind {
	case domain.KindMissingFilePart, domain.KindEmptyFilename, domain.KindDisallowedExtension:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeUploadError(c *gin.Context, err error) {
	kind := domain.KindOf(err)

	message := err.Error()
	var uploadErr *domain.UploadError
	if errors.As(err, &uploadErr) {
		message = uploadErr.Message
	}

	c.JSON(statusForKind(kind), ErrorResponse{
		Success: false,
		Error:   message,
		Code:    string(kind),
	})
}

// HumanSize renders a byte count the way the upload page does.
func HumanSize(size int64) string {
	switch {
	case size < 1<<10:
		return fmt.Sprintf("%d B", size)
	case size < 1<<20:
		return fmt.Sprintf("%.2f KB", float64(size)/(1<<10))
	default:
		return fmt.Sprintf("%.2f MB", float64(size)/(1<<20))
	}
}

func TemplateFuncs() template.FuncMap {
	return template.FuncMap{
		"humanSize": HumanSize,
	}
}
