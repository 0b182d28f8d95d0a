package service

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/foliocraft/backend/internal/apperr"
	"github.com/foliocraft/backend/internal/storage"
	"github.com/foliocraft/backend/internal/types"
)

// MaxUploadSize is the fixed per-file limit (5 MiB).
const MaxUploadSize = 5 << 20

var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// UploadService validates one image per request and hands it to the blob
// store under a category namespace.
type UploadService struct {
	store storage.Store
}

func NewUploadService(store storage.Store) *UploadService {
	return &UploadService{store: store}
}

// Category maps the path parameter to a storage namespace; anything other
// than the known categories lands in the general bucket.
func Category(param string) string {
	switch param {
	case "profile", "project":
		return param
	default:
		return "general"
	}
}

// Store validates the upload and writes it. The client filename is only
// used for its extension and echoed back; the stored name is generated.
func (s *UploadService) Store(ctx context.Context, category string, header *multipart.FileHeader) (*types.UploadResult, error) {
	if header.Size > MaxUploadSize {
		return nil, apperr.UploadRejected(fmt.Sprintf("file exceeds the %d byte limit", MaxUploadSize))
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	contentType := header.Header.Get("Content-Type")

	// Extension and declared content type must both say image.
	if !imageExtensions[ext] || !strings.HasPrefix(contentType, "image/") {
		return nil, apperr.UploadRejected("only image uploads are accepted")
	}

	file, err := header.Open()
	if err != nil {
		return nil, apperr.Internal(err)
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(io.LimitReader(file, MaxUploadSize+1))
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if len(data) > MaxUploadSize {
		return nil, apperr.UploadRejected(fmt.Sprintf("file exceeds the %d byte limit", MaxUploadSize))
	}

	filename := fmt.Sprintf("%d-%s%s", time.Now().UnixNano(), uuid.NewString()[:8], ext)

	url, err := s.store.Save(ctx, category, filename, data, contentType)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	return &types.UploadResult{
		URL:          url,
		Filename:     filename,
		OriginalName: header.Filename,
		Size:         int64(len(data)),
	}, nil
}
