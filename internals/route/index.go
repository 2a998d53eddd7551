// internals/route/index.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authMw "produksiku_backend/internals/middlewares/auth"
	"produksiku_backend/internals/route/details"
)

// SetupRoutes merakit seluruh route API.
// /api/login terbuka; sisanya di belakang AuthMiddleware, lalu dipisah
// per departemen lewat EnsureDepartment.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api")

	details.AuthRoutes(api, db)

	protected := api.Group("", authMw.AuthMiddleware(db))
	details.PPICRoutes(protected, db)
	details.ProduksiRoutes(protected, db)
}
