// internals/features/dashboard/controller/dashboard_ppic_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	productModel "produksiku_backend/internals/features/master/products/model"
	planModel "produksiku_backend/internals/features/production/plans/model"
	helper "produksiku_backend/internals/helpers"
)

type DashboardPPICController struct {
	DB *gorm.DB
}

func NewDashboardPPICController(db *gorm.DB) *DashboardPPICController {
	return &DashboardPPICController{DB: db}
}

// =============================
// 🏠 GET /ppic/dashboard
// =============================
func (ctrl *DashboardPPICController) Index(c *fiber.Ctx) error {
	db := ctrl.DB.WithContext(c.Context())

	var totalProduk int64
	if err := db.Model(&productModel.MasterProductModel{}).Count(&totalProduk).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil statistik")
	}

	type row struct {
		Status string
		Total  int64
	}
	var rows []row
	if err := db.Model(&planModel.ProductionPlanModel{}).
		Select("status, COUNT(*) AS total").
		Group("status").
		Scan(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil statistik")
	}

	perStatus := map[string]int64{}
	var totalRencana int64
	for _, r := range rows {
		perStatus[r.Status] = r.Total
		totalRencana += r.Total
	}

	return helper.JsonOK(c, "Statistik dashboard berhasil diambil", fiber.Map{
		"totalProduk":         totalProduk,
		"totalRencana":        totalRencana,
		"rencanaDraft":        perStatus[planModel.PlanStatusDraft],
		"rencanaMenunggu":     perStatus[planModel.PlanStatusMenunggu],
		"rencanaDisetujui":    perStatus[planModel.PlanStatusDisetujui],
		"rencanaMenjadiOrder": perStatus[planModel.PlanStatusOrder],
	})
}
