package utils

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return uuid.NewString()
}

func GenerateAttachmentID() string {
	return uuid.NewString()
}

// GenerateObjectName names the stored bytes after the upload instant, the
// multipart field the bytes arrived under and the original file extension.
func GenerateObjectName(fieldName, originalName string) string {
	return fmt.Sprintf("%d_%s%s", time.Now().UnixNano(), fieldName, filepath.Ext(originalName))
}
