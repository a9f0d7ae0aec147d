package api

import (
	"errors"
	"time"

	"cradle/internal/models"
	"cradle/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

const authTokenTTL = 7 * 24 * time.Hour

func (handler *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func (handler *Handler) Register(c *fiber.Ctx) error {
	var credentials credentialsInput
	if err := c.BodyParser(&credentials); err != nil {
		return apiError(c, fiber.StatusBadRequest, msgCredentialsRequired)
	}
	if credentials.Username == "" || credentials.Password == "" {
		return apiError(c, fiber.StatusBadRequest, msgCredentialsRequired)
	}

	user, err := handler.auth.Register(credentials.Username, credentials.Password)
	if errors.Is(err, services.ErrUsernameTaken) {
		return apiError(c, fiber.StatusBadRequest, msgUsernameTaken)
	}
	if err != nil {
		handler.logger.Error().Err(err).Msg("register failed")
		return apiError(c, fiber.StatusInternalServerError, msgRegisterFailed)
	}

	return c.JSON(fiber.Map{
		"userId":   user.ID,
		"username": user.Username,
	})
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	var credentials credentialsInput
	if err := c.BodyParser(&credentials); err != nil {
		return apiError(c, fiber.StatusUnauthorized, msgBadCredentials)
	}

	user, err := handler.auth.Login(credentials.Username, credentials.Password)
	if err != nil {
		return apiError(c, fiber.StatusUnauthorized, msgBadCredentials)
	}

	token, err := handler.buildToken(&user)
	if err != nil {
		handler.logger.Error().Err(err).Msg("sign session token failed")
		return apiError(c, fiber.StatusInternalServerError, msgActionFailed)
	}

	return c.JSON(fiber.Map{
		"userId":   user.ID,
		"username": user.Username,
		"isAdmin":  user.IsAdmin(),
		"token":    token,
	})
}

func (handler *Handler) ListUsers(c *fiber.Ctx) error {
	users, err := handler.auth.ListUsers()
	if err != nil {
		handler.logger.Error().Err(err).Msg("list users failed")
		return apiError(c, fiber.StatusInternalServerError, msgQueryFailed)
	}
	return c.JSON(users)
}

func (handler *Handler) buildToken(user *models.User) (string, error) {
	now := time.Now()
	claims := authClaims{
		UserID: user.ID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(authTokenTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(handler.secretKey)
}
