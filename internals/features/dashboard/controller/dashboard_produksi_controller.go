// internals/features/dashboard/controller/dashboard_produksi_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	orderModel "produksiku_backend/internals/features/production/orders/model"
	planModel "produksiku_backend/internals/features/production/plans/model"
	helper "produksiku_backend/internals/helpers"
)

type DashboardProduksiController struct {
	DB *gorm.DB
}

func NewDashboardProduksiController(db *gorm.DB) *DashboardProduksiController {
	return &DashboardProduksiController{DB: db}
}

// =============================
// 🏠 GET /produksi/dashboard
// =============================
func (ctrl *DashboardProduksiController) Index(c *fiber.Ctx) error {
	userName, _ := c.Locals("user_name").(string)
	role := helper.GetUserRoleFromLocals(c)
	department := helper.GetDepartmentFromLocals(c)

	return helper.JsonOK(c, "Dashboard produksi berhasil dimuat", fiber.Map{
		"user": fiber.Map{
			"name":       userName,
			"role":       role,
			"department": department,
		},
	})
}

// =============================
// 📊 GET /produksi/dashboard/stats
// =============================
func (ctrl *DashboardProduksiController) GetDashboardStats(c *fiber.Ctx) error {
	db := ctrl.DB.WithContext(c.Context())

	type row struct {
		Status string
		Total  int64
	}
	var rows []row
	if err := db.Model(&orderModel.ProductionOrderModel{}).
		Select("status, COUNT(*) AS total").
		Group("status").
		Scan(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil statistik dashboard")
	}

	perStatus := map[string]int64{}
	var total int64
	for _, r := range rows {
		perStatus[r.Status] = r.Total
		total += r.Total
	}

	var selesaiBulanIni int64
	if err := db.Model(&orderModel.ProductionOrderModel{}).
		Where("status = ? AND date_trunc('month', selesai_pada) = date_trunc('month', now())",
			orderModel.OrderStatusSelesai).
		Count(&selesaiBulanIni).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil statistik dashboard")
	}

	return helper.JsonOK(c, "Statistik dashboard berhasil diambil", fiber.Map{
		"total":             total,
		"menunggu":          perStatus[orderModel.OrderStatusMenunggu],
		"dalam_proses":      perStatus[orderModel.OrderStatusDalamProses],
		"selesai":           perStatus[orderModel.OrderStatusSelesai],
		"selesai_bulan_ini": selesaiBulanIni,
	})
}

// =============================
// 🔔 GET /produksi/dashboard/pending-approvals-count
// =============================
func (ctrl *DashboardProduksiController) GetPendingApprovalsCount(c *fiber.Ctx) error {
	var count int64
	if err := ctrl.DB.WithContext(c.Context()).
		Model(&planModel.ProductionPlanModel{}).
		Where("status = ?", planModel.PlanStatusMenunggu).
		Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil jumlah persetujuan")
	}
	return helper.JsonCounted(c, "Jumlah rencana menunggu persetujuan", fiber.Map{}, int(count))
}

// =============================
// ✅ GET /produksi/dashboard/approved-orders-count
// =============================
func (ctrl *DashboardProduksiController) GetApprovedOrdersCount(c *fiber.Ctx) error {
	var count int64
	if err := ctrl.DB.WithContext(c.Context()).
		Model(&planModel.ProductionPlanModel{}).
		Where("status = ?", planModel.PlanStatusOrder).
		Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil jumlah order disetujui")
	}
	return helper.JsonCounted(c, "Jumlah rencana yang menjadi order", fiber.Map{}, int(count))
}

// =============================
// ⏳ GET /produksi/dashboard/pending-count
// =============================
func (ctrl *DashboardProduksiController) PendingCount(c *fiber.Ctx) error {
	var count int64
	if err := ctrl.DB.WithContext(c.Context()).
		Model(&orderModel.ProductionOrderModel{}).
		Where("status = ?", orderModel.OrderStatusMenunggu).
		Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil jumlah order menunggu")
	}
	return helper.JsonCounted(c, "Jumlah order menunggu", fiber.Map{}, int(count))
}
