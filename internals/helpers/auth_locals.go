// file: internals/helpers/auth_locals.go
package helper

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// GetUserIDFromLocals mengambil user_id yang disimpan AuthMiddleware.
func GetUserIDFromLocals(c *fiber.Ctx) (uuid.UUID, error) {
	raw, ok := c.Locals("user_id").(string)
	if !ok || raw == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - user tidak ditemukan di context")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - user_id tidak valid")
	}
	return id, nil
}

func GetUserRoleFromLocals(c *fiber.Ctx) string {
	role, _ := c.Locals("userRole").(string)
	return role
}

func GetDepartmentFromLocals(c *fiber.Ctx) string {
	dept, _ := c.Locals("department").(string)
	return dept
}
