// internals/middlewares/auth/department_middleware.go
package auth

import (
	"github.com/gofiber/fiber/v2"

	helper "produksiku_backend/internals/helpers"
)

// EnsureDepartment membatasi prefix route untuk satu departemen saja.
func EnsureDepartment(department string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		current := helper.GetDepartmentFromLocals(c)
		if current == "" {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
		}
		if current != department {
			return helper.JsonError(c, fiber.StatusForbidden, "Departemen tidak sesuai")
		}
		return c.Next()
	}
}
