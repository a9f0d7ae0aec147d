package services

import (
	"errors"
	"mime/multipart"
	"time"

	"cradle/internal/models"
	"github.com/google/uuid"
)

var ErrPhotoNotFound = errors.New("photo not found")

type PhotoRepository interface {
	Create(photo *models.Photo) error
	ListByUser(userID string) ([]models.Photo, error)
	FindByID(photoID string) (models.Photo, bool, error)
	DeleteByID(photoID string) error
}

type PhotoService struct {
	photos  PhotoRepository
	uploads *UploadStore
}

func NewPhotoService(photos PhotoRepository, uploads *UploadStore) *PhotoService {
	return &PhotoService{
		photos:  photos,
		uploads: uploads,
	}
}

func (service *PhotoService) Upload(userID string, photoDate string, photoType string, description string, file *multipart.FileHeader) (models.Photo, error) {
	photoPath, err := service.uploads.Save(file)
	if err != nil {
		return models.Photo{}, err
	}

	photo := models.Photo{
		ID:          uuid.NewString(),
		UserID:      userID,
		PhotoDate:   photoDate,
		PhotoType:   photoType,
		PhotoPath:   photoPath,
		Description: description,
		CreatedAt:   time.Now().UTC(),
	}
	if err := service.photos.Create(&photo); err != nil {
		return models.Photo{}, err
	}
	return photo, nil
}

func (service *PhotoService) List(userID string) ([]models.Photo, error) {
	return service.photos.ListByUser(userID)
}

// Delete removes the backing file first and the row second. A backing file
// that was already removed by hand does not block the row cleanup.
func (service *PhotoService) Delete(photoID string) error {
	photo, found, err := service.photos.FindByID(photoID)
	if err != nil {
		return err
	}
	if !found {
		return ErrPhotoNotFound
	}

	if err := service.uploads.Remove(photo.PhotoPath); err != nil {
		return err
	}
	return service.photos.DeleteByID(photoID)
}
