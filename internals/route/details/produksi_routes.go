// internals/route/details/produksi_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"produksiku_backend/internals/constants"
	dashboardController "produksiku_backend/internals/features/dashboard/controller"
	orderController "produksiku_backend/internals/features/production/orders/controller"
	planController "produksiku_backend/internals/features/production/plans/controller"
	reportController "produksiku_backend/internals/features/production/reports/controller"
	authMw "produksiku_backend/internals/middlewares/auth"
)

// ProduksiRoutes: seluruh endpoint departemen Produksi (prefix /produksi).
// Persetujuan rencana khusus manager produksi.
func ProduksiRoutes(api fiber.Router, db *gorm.DB) {
	produksi := api.Group("/produksi", authMw.EnsureDepartment(constants.DepartmentProduksi))

	dashboard := dashboardController.NewDashboardProduksiController(db)
	produksi.Get("/dashboard", dashboard.Index)
	produksi.Get("/dashboard/stats", dashboard.GetDashboardStats)
	produksi.Get("/dashboard/pending-approvals-count", dashboard.GetPendingApprovalsCount)
	produksi.Get("/dashboard/approved-orders-count", dashboard.GetApprovedOrdersCount)
	produksi.Get("/dashboard/pending-count", dashboard.PendingCount)

	approval := planController.NewManagerApprovalController(db)
	manager := produksi.Group("/manager", authMw.OnlyRoles(constants.RoleManagerProduksi))
	manager.Get("/approvals", approval.Index)
	manager.Get("/approvals/stats", approval.Stats)
	manager.Put("/approvals/:id", approval.Update)

	order := orderController.NewProductionOrderController(db)
	produksi.Get("/production-orders", order.Index)
	produksi.Get("/production-orders/stats", order.Stats)
	produksi.Get("/production-orders/search", order.Search)
	produksi.Get("/production-orders/:id", order.Show)
	produksi.Put("/production-orders/:id/start", order.Start)
	produksi.Put("/production-orders/:id/complete", order.Complete)
	produksi.Put("/production-orders/:id/progress", order.UpdateProgress)

	laporan := reportController.NewProduksiReportController(db)
	produksi.Get("/laporan", laporan.Index)
	produksi.Post("/laporan/generate", laporan.Generate)
	produksi.Get("/laporan/stats/realtime", laporan.GetRealTimeStats)
	produksi.Get("/laporan/:id/export-excel", laporan.ExportExcel)
	produksi.Get("/laporan/:id/preview", laporan.Preview)

	history := orderController.NewProductionOrderHistoryController(db)
	produksi.Get("/order-history/:orderId", history.GetOrderHistory)
	produksi.Get("/orders", history.GetAllOrders)
	produksi.Get("/orders/statistics", history.GetStatistics)
	produksi.Get("/histories", history.GetAllHistories)
}
