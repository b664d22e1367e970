package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/sefazor/bored-backend/internal/models"
	"github.com/sefazor/bored-backend/internal/repository"
	jwtPkg "github.com/sefazor/bored-backend/pkg/jwt"
)

const SessionCookieName = "session"

const userLocalKey = "user"

// AuthMiddleware validates the session token and re-resolves the user from
// the store on every request. A valid token for a user that no longer exists
// fails closed: the session is treated as anonymous.
func AuthMiddleware(jwtSecret string, userRepo *repository.UserRepository) fiber.Handler {
	secret := []byte(jwtSecret)

	return func(c *fiber.Ctx) error {
		tokenString := tokenFromRequest(c)
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("Authentication required"))
		}

		claims, err := jwtPkg.ValidateToken(secret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("Invalid token"))
		}

		userID, err := jwtPkg.UserIDFromClaims(claims)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("Invalid token"))
		}

		// Never trust a cached identity across requests. The user may have
		// been deleted since the token was issued.
		user, err := userRepo.GetByID(userID)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("Authentication required"))
		}

		c.Locals(userLocalKey, user)

		return c.Next()
	}
}

// CurrentUser returns the acting identity resolved by AuthMiddleware, or nil
// on unauthenticated routes.
func CurrentUser(c *fiber.Ctx) *models.User {
	user, ok := c.Locals(userLocalKey).(*models.User)
	if !ok {
		return nil
	}
	return user
}

func tokenFromRequest(c *fiber.Ctx) string {
	authHeader := c.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return c.Cookies(SessionCookieName)
}
