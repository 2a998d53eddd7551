// internals/route/details/ppic_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"produksiku_backend/internals/constants"
	dashboardController "produksiku_backend/internals/features/dashboard/controller"
	productController "produksiku_backend/internals/features/master/products/controller"
	planController "produksiku_backend/internals/features/production/plans/controller"
	reportController "produksiku_backend/internals/features/production/reports/controller"
	authMw "produksiku_backend/internals/middlewares/auth"
)

// PPICRoutes: seluruh endpoint departemen PPIC (prefix /ppic).
func PPICRoutes(api fiber.Router, db *gorm.DB) {
	ppic := api.Group("/ppic", authMw.EnsureDepartment(constants.DepartmentPPIC))

	dashboard := dashboardController.NewDashboardPPICController(db)
	ppic.Get("/dashboard", dashboard.Index)

	produk := productController.NewMasterProductController(db)
	ppic.Get("/master-products", produk.Index)
	ppic.Post("/master-products", produk.Store)
	ppic.Get("/master-products/:id", produk.Show)
	ppic.Put("/master-products/:id", produk.Update)
	ppic.Delete("/master-products/:id", produk.Destroy)

	plan := planController.NewProductionPlanController(db)
	ppic.Get("/production-plans", plan.Index)
	ppic.Get("/production-plans/statistics", plan.Statistics)
	ppic.Get("/production-plans/search", plan.Search)
	ppic.Post("/production-plans", plan.Store)
	ppic.Get("/production-plans/:id", plan.Show)
	ppic.Put("/production-plans/:id", plan.Update)
	ppic.Delete("/production-plans/:id", plan.Destroy)
	ppic.Put("/production-plans/:id/submit", plan.Submit)
	ppic.Put("/production-plans/:id/cancel", plan.CancelSubmission)
	ppic.Get("/production-plans/:id/history", plan.History)

	laporan := reportController.NewPPICReportController(db)
	ppic.Get("/production-reports", laporan.Index)
	ppic.Post("/production-reports/generate", laporan.Generate)
	ppic.Get("/production-reports/export", laporan.Export)
}
