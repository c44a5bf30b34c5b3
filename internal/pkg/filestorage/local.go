package filestorage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/Amber-bisht/notesfind-sub000/internal/pkg/apperrors"
	"github.com/Amber-bisht/notesfind-sub000/internal/pkg/logger"
)

// allowedExtensions is the set of media formats accepted for upload.
var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
	".svg":  true,
	".pdf":  true,
}

// LocalStorage handles saving normalized media files to the local
// filesystem and mapping them to public URLs.
type LocalStorage struct {
	basePath string // root directory where files are stored
	baseURL  string // base URL prepended to stored file paths
	maxBytes int64  // upload size cap
}

// NewLocalStorage creates a new LocalStorage instance rooted at basePath.
func NewLocalStorage(basePath, baseURL string, maxSizeMB int64) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, os.ModePerm); err != nil {
		logger.Error().Err(err).Str("path", basePath).Msg("Failed to create storage directory")
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}
	logger.Info().Str("path", basePath).Msg("Local storage directory ensured")

	if maxSizeMB <= 0 {
		maxSizeMB = 10
	}

	return &LocalStorage{
		basePath: basePath,
		baseURL:  strings.TrimRight(baseURL, "/"),
		maxBytes: maxSizeMB << 20,
	}, nil
}

// SaveFile validates, normalizes and stores an uploaded file, returning
// its public URL. Names are replaced with a UUID to prevent collisions.
func (ls *LocalStorage) SaveFile(fileHeader *multipart.FileHeader) (string, error) {
	if fileHeader == nil {
		return "", apperrors.NewValidationError("no file provided")
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowedExtensions[ext] {
		return "", apperrors.NewValidationError(fmt.Sprintf("file type %q is not allowed", ext))
	}
	if fileHeader.Size > ls.maxBytes {
		return "", apperrors.NewValidationError(fmt.Sprintf("file exceeds the %d MB limit", ls.maxBytes>>20))
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.Error().Err(err).Str("filename", fileHeader.Filename).Msg("Failed to open uploaded file")
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	uniqueFilename := uuid.New().String() + ext
	dstPath := filepath.Join(ls.basePath, uniqueFilename)

	dst, err := os.Create(dstPath)
	if err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to create destination file")
		return "", fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err = io.Copy(dst, file); err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to copy uploaded file content")
		os.Remove(dstPath)
		return "", fmt.Errorf("failed to store uploaded file: %w", err)
	}

	return ls.baseURL + "/" + uniqueFilename, nil
}

// DeleteFile removes a previously stored file by its public URL. Unknown
// URLs are ignored.
func (ls *LocalStorage) DeleteFile(publicURL string) error {
	if !strings.HasPrefix(publicURL, ls.baseURL+"/") {
		return nil
	}
	name := strings.TrimPrefix(publicURL, ls.baseURL+"/")
	if name == "" || strings.Contains(name, "/") || strings.Contains(name, "..") {
		return nil
	}
	err := os.Remove(filepath.Join(ls.basePath, name))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file %s: %w", name, err)
	}
	return nil
}

// BasePath returns the storage root, used to mount static file serving.
func (ls *LocalStorage) BasePath() string {
	return ls.basePath
}
