// internals/route/details/auth_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "produksiku_backend/internals/features/users/auth/controller"
	"produksiku_backend/internals/middlewares"
	authMw "produksiku_backend/internals/middlewares/auth"
)

func AuthRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := authController.NewAuthController(db)

	api.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)

	// logout & profil butuh token valid
	api.Post("/logout", authMw.AuthMiddleware(db), ctrl.Logout)
	api.Get("/me", authMw.AuthMiddleware(db), ctrl.Me)
}
