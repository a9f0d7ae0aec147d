package services

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"cradle/internal/security"
)

const uploadsURLPrefix = "/uploads/"

var errUploadOutsideRoot = errors.New("upload path escapes the uploads directory")

// UploadStore keeps photo files on local disk and hands out the relative
// URLs that get persisted next to the rows.
type UploadStore struct {
	root string
}

func NewUploadStore(root string) (*UploadStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create uploads directory: %w", err)
	}
	return &UploadStore{root: root}, nil
}

// Save writes the uploaded file under a collision-resistant name (millisecond
// timestamp plus random digits, original extension kept) and returns the
// relative URL to store.
func (store *UploadStore) Save(file *multipart.FileHeader) (string, error) {
	suffix, err := security.RandomString(9, security.DigitsAlphabet)
	if err != nil {
		return "", fmt.Errorf("generate upload suffix: %w", err)
	}
	fileName := fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), suffix, filepath.Ext(file.Filename))

	source, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("open uploaded file: %w", err)
	}
	defer source.Close()

	destination, err := os.Create(filepath.Join(store.root, fileName))
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer destination.Close()

	if _, err := io.Copy(destination, source); err != nil {
		return "", fmt.Errorf("write upload file: %w", err)
	}

	return uploadsURLPrefix + fileName, nil
}

// Remove deletes the backing file for a stored relative URL. A file that is
// already gone is not an error.
func (store *UploadStore) Remove(relativePath string) error {
	fileName := strings.TrimPrefix(relativePath, uploadsURLPrefix)
	if fileName == "" || fileName != filepath.Base(fileName) {
		return errUploadOutsideRoot
	}

	err := os.Remove(filepath.Join(store.root, fileName))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove upload file: %w", err)
	}
	return nil
}
