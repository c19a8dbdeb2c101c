package middleware

import (
	"fmt"
	"strings"

	"chama-service/src/pkg/token"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/viper"
)

const authLocalsKey = "auth"

// VerifyBearer validates the Authorization header and stashes the caller's
// identity in ctx.Locals for GetUser.
func VerifyBearer(config *viper.Viper) fiber.Handler {
	secret := []byte(config.GetString("jwt.secret"))

	return func(ctx *fiber.Ctx) error {
		header := ctx.Get(fiber.HeaderAuthorization)
		if !strings.HasPrefix(header, "Bearer ") {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"message": "missing bearer token",
				"code":    fiber.StatusUnauthorized,
			})
		}

		raw := strings.TrimPrefix(header, "Bearer ")
		parsed, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return secret, nil
		})
		if err != nil || !parsed.Valid {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"message": "invalid token",
				"code":    fiber.StatusUnauthorized,
			})
		}

		claims, ok := parsed.Claims.(jwt.MapClaims)
		if !ok {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"message": "invalid token claims",
				"code":    fiber.StatusUnauthorized,
			})
		}

		metadata := token.Metadata{}
		if m, ok := claims["metadata"].(map[string]interface{}); ok {
			metadata.UserID, _ = m["user_id"].(string)
			metadata.FullName, _ = m["full_name"].(string)
		}
		if metadata.UserID == "" {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"message": "token has no user",
				"code":    fiber.StatusUnauthorized,
			})
		}

		ctx.Locals(authLocalsKey, &metadata)
		return ctx.Next()
	}
}

func GetUser(ctx *fiber.Ctx) *token.Metadata {
	if auth, ok := ctx.Locals(authLocalsKey).(*token.Metadata); ok {
		return auth
	}
	return &token.Metadata{}
}
