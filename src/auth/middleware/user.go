package auth_middleware

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	common_model "github.com/nimbusworks/nimbus-server/src/common/model"
	"github.com/nimbusworks/nimbus-server/src/config/env"
)

const localsUserID = "userId"

// UserMiddleware resolves the caller's identity from a Bearer token issued by
// the identity provider. The token's subject claim is the user UUID. No
// session state is kept server-side; an invalid or absent token is a hard 401
// before any quota or provider work happens.
func UserMiddleware(c *fiber.Ctx) error {
	userID, err := resolveUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(
			common_model.NewApiError("Unauthorized", err, "auth").Send(),
		)
	}

	c.Locals(localsUserID, userID)
	return c.Next()
}

// GetUserID returns the authenticated user's id from context locals, or
// uuid.Nil when UserMiddleware has not run.
func GetUserID(c *fiber.Ctx) uuid.UUID {
	userID, ok := c.Locals(localsUserID).(uuid.UUID)
	if !ok {
		return uuid.Nil
	}
	return userID
}

func resolveUserID(c *fiber.Ctx) (uuid.UUID, error) {
	if env.JwtSecret == "" {
		return uuid.Nil, errors.New("JWT secret is not configured")
	}

	header := c.Get("Authorization")
	if header == "" {
		return uuid.Nil, errors.New("missing Authorization header")
	}

	tokenString := strings.TrimPrefix(header, "Bearer ")
	if tokenString == header || tokenString == "" {
		return uuid.Nil, errors.New("Authorization header is not a Bearer token")
	}

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(env.JwtSecret), nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return uuid.Nil, errors.New("invalid token claims")
	}

	sub, _ := claims["sub"].(string)
	userID, err := uuid.Parse(sub)
	if err != nil {
		return uuid.Nil, errors.New("token subject is not a valid user id")
	}

	return userID, nil
}
