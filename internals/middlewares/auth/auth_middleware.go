// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	"produksiku_backend/internals/configs"
	authService "produksiku_backend/internals/features/users/auth/service"
	userModel "produksiku_backend/internals/features/users/user/model"
	helper "produksiku_backend/internals/helpers"
)

// AuthMiddleware memverifikasi JWT, memastikan token belum dicabut
// (hash-nya masih ada di api_tokens), dan menaruh identitas user di Locals.
func AuthMiddleware(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenStr := helper.GetBearerToken(c)
		if tokenStr == "" {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Token tidak ditemukan")
		}

		token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("metode signing tidak dikenal: %v", t.Header["alg"])
			}
			return []byte(configs.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Token tidak valid atau kedaluwarsa")
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Token tidak valid")
		}

		// token yang sudah dicabut (logout / login dari sesi lain) ditolak
		active, err := authService.TokenIsActive(db.WithContext(c.Context()), tokenStr)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memverifikasi token")
		}
		if !active {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Sesi sudah berakhir, silakan login ulang")
		}

		userID, _ := claims["sub"].(string)
		if userID == "" {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Token tidak valid")
		}

		var user userModel.UserModel
		if err := db.WithContext(c.Context()).
			Select("id", "name", "role", "status", "department").
			First(&user, "id = ?", userID).Error; err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, "User tidak ditemukan")
		}
		if !user.IsActive() {
			return helper.JsonError(c, fiber.StatusForbidden, "Akun tidak aktif")
		}

		c.Locals("user_id", user.ID.String())
		c.Locals("user_name", user.Name)
		c.Locals("userRole", user.Role)
		c.Locals("department", user.Department)

		return c.Next()
	}
}
