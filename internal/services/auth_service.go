package services

import (
	"errors"
	"time"

	"cradle/internal/models"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const adminDefaultPassword = "admin123"

var (
	ErrUsernameTaken      = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type AuthUserRepository interface {
	ExistsByUsername(username string) (bool, error)
	FindByUsername(username string) (models.User, error)
	Create(user *models.User) error
	ListExceptAdmin() ([]models.UserSummary, error)
}

type AuthService struct {
	users AuthUserRepository
}

func NewAuthService(users AuthUserRepository) *AuthService {
	return &AuthService{users: users}
}

func (service *AuthService) Register(username string, password string) (models.User, error) {
	exists, err := service.users.ExistsByUsername(username)
	if err != nil {
		return models.User{}, err
	}
	if exists {
		return models.User{}, ErrUsernameTaken
	}

	user, err := newUser(username, password)
	if err != nil {
		return models.User{}, err
	}
	if err := service.users.Create(&user); err != nil {
		// The unique index may still fire on a concurrent registration.
		return models.User{}, ErrUsernameTaken
	}
	return user, nil
}

func (service *AuthService) Login(username string, password string) (models.User, error) {
	user, err := service.users.FindByUsername(username)
	if err != nil {
		return models.User{}, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return models.User{}, ErrInvalidCredentials
	}
	return user, nil
}

func (service *AuthService) ListUsers() ([]models.UserSummary, error) {
	return service.users.ListExceptAdmin()
}

// SeedAdmin creates the reserved admin account on first boot. Calling it
// again is a no-op.
func (service *AuthService) SeedAdmin() (bool, error) {
	exists, err := service.users.ExistsByUsername(models.AdminUsername)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}

	admin, err := newUser(models.AdminUsername, adminDefaultPassword)
	if err != nil {
		return false, err
	}
	if err := service.users.Create(&admin); err != nil {
		return false, err
	}
	return true, nil
}

func newUser(username string, password string) (models.User, error) {
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}
	return models.User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: string(passwordHash),
		CreatedAt:    time.Now().UTC(),
	}, nil
}
