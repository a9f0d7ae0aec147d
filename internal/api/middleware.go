package api

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

const localTokenUserID = "tokenUserID"

type authClaims struct {
	UserID string `json:"uid"`
	jwt.RegisteredClaims
}

// TokenIdentity resolves an optional Bearer token. The raw userId in the
// request stays the primary credential; a token, when presented, pins the
// caller to one user and requests for other users are rejected.
func (handler *Handler) TokenIdentity(c *fiber.Ctx) error {
	header := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	if header == "" {
		return c.Next()
	}

	rawToken := strings.TrimSpace(strings.TrimPrefix(header, "Bearer"))
	claims := &authClaims{}
	token, err := jwt.ParseWithClaims(rawToken, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return handler.secretKey, nil
	})
	if err != nil || !token.Valid || claims.UserID == "" {
		return apiError(c, fiber.StatusUnauthorized, msgTokenInvalid)
	}

	c.Locals(localTokenUserID, claims.UserID)
	return c.Next()
}

// requireIdentity rejects a tokened request that names a different user.
// Tokenless requests pass: the observed contract trusts the raw userId.
func (handler *Handler) requireIdentity(c *fiber.Ctx, userID string) error {
	tokenUserID, _ := c.Locals(localTokenUserID).(string)
	if tokenUserID == "" || tokenUserID == userID {
		return nil
	}
	return apiError(c, fiber.StatusUnauthorized, msgTokenMismatch)
}
