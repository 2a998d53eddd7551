// internals/helpers/bearer_token.go
package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// GetBearerToken mengambil token mentah dari header Authorization.
// Mengembalikan string kosong bila header tidak ada atau format salah.
func GetBearerToken(c *fiber.Ctx) string {
	auth := c.Get("Authorization")
	if auth == "" {
		return ""
	}
	parts := strings.SplitN(auth, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
