// internals/middlewares/auth/role_middleware.go
package auth

import (
	"github.com/gofiber/fiber/v2"

	helper "produksiku_backend/internals/helpers"
)

// OnlyRoles meloloskan request hanya bila role user ada pada daftar.
func OnlyRoles(allowed ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := helper.GetUserRoleFromLocals(c)
		if role == "" {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
		}
		for _, r := range allowed {
			if role == r {
				return c.Next()
			}
		}
		return helper.JsonError(c, fiber.StatusForbidden, "Anda tidak memiliki akses ke resource ini")
	}
}
