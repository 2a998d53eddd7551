// internals/features/production/orders/controller/production_order_history_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"produksiku_backend/internals/features/production/orders/model"
	helper "produksiku_backend/internals/helpers"
)

type ProductionOrderHistoryController struct {
	DB *gorm.DB
}

func NewProductionOrderHistoryController(db *gorm.DB) *ProductionOrderHistoryController {
	return &ProductionOrderHistoryController{DB: db}
}

// =============================
// 🕘 GET /produksi/order-history/:orderId
// =============================
func (ctrl *ProductionOrderHistoryController) GetOrderHistory(c *fiber.Ctx) error {
	orderID, err := uuid.Parse(c.Params("orderId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID order tidak valid")
	}

	var order model.ProductionOrderModel
	if err := ctrl.DB.WithContext(c.Context()).
		Preload("Produk").Preload("Pekerja").
		First(&order, "id = ?", orderID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Order produksi tidak ditemukan")
	}

	var histories []model.ProductionOrderHistoryModel
	if err := ctrl.DB.WithContext(c.Context()).
		Preload("ChangedBy").
		Where("order_id = ?", orderID).
		Order("diubah_pada DESC").
		Find(&histories).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil history produksi")
	}

	return helper.JsonOK(c, "History order produksi berhasil diambil", fiber.Map{
		"order":     order,
		"histories": histories,
	})
}

// =============================
// 📋 GET /produksi/orders (paginated)
// =============================
func (ctrl *ProductionOrderHistoryController) GetAllOrders(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 15, 100)

	q := ctrl.DB.WithContext(c.Context()).
		Model(&model.ProductionOrderModel{}).
		Preload("Produk").Preload("Pekerja").Preload("Rencana")

	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}
	if start := c.Query("start_date"); start != "" {
		end := c.Query("end_date")
		if end == "" {
			q = q.Where("created_at >= ?", start+" 00:00:00")
		} else {
			q = q.Where("created_at BETWEEN ? AND ?", start+" 00:00:00", end+" 23:59:59")
		}
	}
	if search := c.Query("search"); search != "" {
		like := "%" + search + "%"
		q = q.Where(
			`nomor_order ILIKE ? OR produk_id IN (
				SELECT id FROM master_products WHERE nama ILIKE ? OR kode ILIKE ?
			)`, like, like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data order produksi")
	}

	var orders []model.ProductionOrderModel
	if err := q.Order("created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&orders).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data order produksi")
	}

	return helper.JsonList(c, "Data order produksi berhasil diambil", orders,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// =============================
// 📊 GET /produksi/orders/statistics
// =============================
func (ctrl *ProductionOrderHistoryController) GetStatistics(c *fiber.Ctx) error {
	type row struct {
		Status string
		Total  int64
	}
	var rows []row
	if err := ctrl.DB.WithContext(c.Context()).
		Model(&model.ProductionOrderModel{}).
		Select("status, COUNT(*) AS total").
		Group("status").
		Scan(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil statistik order produksi")
	}

	stats := fiber.Map{
		"total":        int64(0),
		"menunggu":     int64(0),
		"dalam_proses": int64(0),
		"selesai":      int64(0),
	}
	var total int64
	for _, r := range rows {
		stats[r.Status] = r.Total
		total += r.Total
	}
	stats["total"] = total

	return helper.JsonOK(c, "Statistik order produksi berhasil diambil", stats)
}

// =============================
// 🗂️ GET /produksi/histories (paginated)
// =============================
func (ctrl *ProductionOrderHistoryController) GetAllHistories(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 15, 100)

	q := ctrl.DB.WithContext(c.Context()).
		Model(&model.ProductionOrderHistoryModel{}).
		Preload("Order").Preload("ChangedBy")

	if start := c.Query("start_date"); start != "" {
		end := c.Query("end_date")
		if end == "" {
			q = q.Where("diubah_pada >= ?", start+" 00:00:00")
		} else {
			q = q.Where("diubah_pada BETWEEN ? AND ?", start+" 00:00:00", end+" 23:59:59")
		}
	}
	if nomor := c.Query("order_number"); nomor != "" {
		q = q.Where(`order_id IN (
			SELECT id FROM production_orders WHERE nomor_order ILIKE ?
		)`, "%"+nomor+"%")
	}
	if status := c.Query("status"); status != "" {
		q = q.Where("status_baru = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data history")
	}

	var histories []model.ProductionOrderHistoryModel
	if err := q.Order("diubah_pada DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&histories).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data history")
	}

	return helper.JsonList(c, "Data history order produksi berhasil diambil", histories,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}
