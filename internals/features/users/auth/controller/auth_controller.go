// internals/features/users/auth/controller/auth_controller.go
package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"produksiku_backend/internals/constants"
	authDTO "produksiku_backend/internals/features/users/auth/dto"
	authService "produksiku_backend/internals/features/users/auth/service"
	userDTO "produksiku_backend/internals/features/users/user/dto"
	userModel "produksiku_backend/internals/features/users/user/model"
	helper "produksiku_backend/internals/helpers"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

// =============================
// 🔑 POST /api/login
// =============================
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var req authDTO.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := helper.ValidateStruct(c, &req); err != nil {
		return err
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user userModel.UserModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("email = ?", email).
		First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Email atau password salah")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses login")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Email atau password salah")
	}
	if !user.IsActive() {
		return helper.JsonError(c, fiber.StatusForbidden, "Akun tidak aktif")
	}
	if user.Department != req.Department {
		return helper.JsonError(c, fiber.StatusForbidden, "Departemen tidak sesuai")
	}

	token, err := authService.IssueToken(ctrl.DB, &user, c.Get("User-Agent"), c.IP())
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses login")
	}

	redirect := "/ppic"
	if user.Department == constants.DepartmentProduksi {
		redirect = "/produksi"
	}

	return helper.JsonOK(c, "Login berhasil", authDTO.LoginResponse{
		Token:      token,
		User:       userDTO.FromUserModel(user),
		RedirectTo: redirect,
	})
}

// =============================
// 🚪 POST /api/logout
// =============================
func (ctrl *AuthController) Logout(c *fiber.Ctx) error {
	token := helper.GetBearerToken(c)
	if token == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Token tidak ditemukan")
	}
	if err := authService.RevokeToken(ctrl.DB.WithContext(c.Context()), token); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal logout")
	}
	return helper.JsonOK(c, "Logout berhasil", fiber.Map{})
}

// =============================
// 👤 GET /api/user
// =============================
func (ctrl *AuthController) Me(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var user userModel.UserModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&user, "id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
	}

	return helper.JsonOK(c, "OK", userDTO.FromUserModel(user))
}
