package services

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// StorageService stages uploaded files on disk for the duration of one
// analysis request. Staged files are removed once the report is produced;
// nothing is persisted across requests.
type StorageService interface {
	EnsureUploadDir() error
	SaveUpload(file *multipart.FileHeader) (string, string, error)
	ReadFile(filename string) ([]byte, error)
	DeleteFile(filename string) error
}

type storageService struct {
	uploadPath string
}

func NewStorageService(uploadPath string) StorageService {
	return &storageService{
		uploadPath: uploadPath,
	}
}

func (s *storageService) EnsureUploadDir() error {
	if err := os.MkdirAll(s.uploadPath, 0755); err != nil {
		return fmt.Errorf("failed to create upload directory: %w", err)
	}

	return nil
}

// SaveUpload writes the uploaded file under a unique name and returns the
// generated filename and its full path.
func (s *storageService) SaveUpload(file *multipart.FileHeader) (string, string, error) {
	ext := filepath.Ext(file.Filename)
	uniqueFilename := fmt.Sprintf("resume_%s%s", uuid.New().String(), ext)
	filePath := filepath.Join(s.uploadPath, uniqueFilename)

	src, err := file.Open()
	if err != nil {
		return "", "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(filePath)
	if err != nil {
		return "", "", fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", "", fmt.Errorf("failed to save file: %w", err)
	}

	return uniqueFilename, filePath, nil
}

func (s *storageService) ReadFile(filename string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(s.uploadPath, filename))
	if err != nil {
		return nil, fmt.Errorf("failed to read staged file: %w", err)
	}
	return data, nil
}

func (s *storageService) DeleteFile(filename string) error {
	if err := os.Remove(filepath.Join(s.uploadPath, filename)); err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}
