package middleware

import (
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/playtube/playtube-backend/internal/apperr"
	"github.com/playtube/playtube-backend/internal/config"
	"github.com/playtube/playtube-backend/internal/dto"
)

func JWTProtected(cfg *config.Config) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey: jwtware.SigningKey{Key: []byte(cfg.JWTSecret)},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.APIError{
				StatusCode: fiber.StatusUnauthorized,
				Message:    "Unauthorized: invalid or expired token",
			})
		},
	})
}

// JWTOptional verifies a token when one is presented and lets anonymous
// requests through. Used by read views whose output varies with identity
// (channel profile's is_subscribed flag).
func JWTOptional(cfg *config.Config) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey: jwtware.SigningKey{Key: []byte(cfg.JWTSecret)},
		Filter: func(c *fiber.Ctx) bool {
			return c.Get(fiber.HeaderAuthorization) == ""
		},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.APIError{
				StatusCode: fiber.StatusUnauthorized,
				Message:    "Unauthorized: invalid or expired token",
			})
		},
	})
}

// UserID extracts the authenticated user's id from JWT claims.
func UserID(c *fiber.Ctx) (uuid.UUID, error) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok {
		return uuid.Nil, apperr.New(apperr.Unauthorized, "invalid token in context")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, apperr.New(apperr.Unauthorized, "invalid claims")
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return uuid.Nil, apperr.New(apperr.Unauthorized, "missing sub claim")
	}

	id, err := uuid.Parse(sub)
	if err != nil {
		return uuid.Nil, apperr.Wrap(apperr.Unauthorized, "malformed sub claim", err)
	}
	return id, nil
}

// OptionalUserID is UserID for routes behind JWTOptional: anonymous requests
// yield uuid.Nil instead of an error.
func OptionalUserID(c *fiber.Ctx) uuid.UUID {
	id, err := UserID(c)
	if err != nil {
		return uuid.Nil
	}
	return id
}
