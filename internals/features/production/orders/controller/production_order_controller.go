// internals/features/production/orders/controller/production_order_controller.go
package controller

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"produksiku_backend/internals/features/production/orders/dto"
	"produksiku_backend/internals/features/production/orders/model"
	orderService "produksiku_backend/internals/features/production/orders/service"
	helper "produksiku_backend/internals/helpers"
)

type ProductionOrderController struct {
	DB *gorm.DB
}

func NewProductionOrderController(db *gorm.DB) *ProductionOrderController {
	return &ProductionOrderController{DB: db}
}

// gormOrderStore membungkus satu transaksi untuk alur pengerjaan order.
type gormOrderStore struct {
	tx *gorm.DB
}

func (s *gormOrderStore) OrderForUpdate(id uuid.UUID) (*model.ProductionOrderModel, error) {
	var order model.ProductionOrderModel
	if err := s.tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&order, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fiber.NewError(fiber.StatusNotFound, "Order produksi tidak ditemukan")
		}
		return nil, err
	}
	return &order, nil
}

func (s *gormOrderStore) SaveOrder(order *model.ProductionOrderModel) error {
	return s.tx.Save(order).Error
}

func (s *gormOrderStore) CreateOrderHistory(h *model.ProductionOrderHistoryModel) error {
	return s.tx.Create(h).Error
}

func (s *gormOrderStore) CreateReject(r *model.ProductionRejectModel) error {
	return s.tx.Create(r).Error
}

func jsonFromWorkflowError(c *fiber.Ctx, err error, fallback string) error {
	if fe, ok := err.(*fiber.Error); ok {
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	log.Printf("[ERROR] %s %s: %v", c.Method(), c.Path(), err)
	return helper.JsonError(c, fiber.StatusInternalServerError, fallback)
}

// =============================
// 📋 GET /produksi/production-orders
// =============================
func (ctrl *ProductionOrderController) Index(c *fiber.Ctx) error {
	q := ctrl.DB.WithContext(c.Context()).
		Model(&model.ProductionOrderModel{}).
		Preload("Produk").Preload("Rencana").Preload("Pekerja").
		Order("created_at DESC")

	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}

	var orders []model.ProductionOrderModel
	if err := q.Find(&orders).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data order produksi")
	}

	return helper.JsonCounted(c, "Data order produksi berhasil diambil", orders, len(orders))
}

// =============================
// 🔍 GET /produksi/production-orders/search
// =============================
func (ctrl *ProductionOrderController) Search(c *fiber.Ctx) error {
	q := ctrl.DB.WithContext(c.Context()).
		Model(&model.ProductionOrderModel{}).
		Preload("Produk").Preload("Rencana").Preload("Pekerja").
		Order("created_at DESC")

	if search := c.Query("search"); search != "" {
		like := "%" + search + "%"
		q = q.Where(
			`nomor_order ILIKE ? OR produk_id IN (
				SELECT id FROM master_products WHERE nama ILIKE ? OR kode ILIKE ?
			)`, like, like, like)
	}
	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}

	var orders []model.ProductionOrderModel
	if err := q.Find(&orders).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal melakukan pencarian order")
	}

	return helper.JsonCounted(c, "Pencarian order produksi berhasil", orders, len(orders))
}

// =============================
// ℹ️ GET /produksi/production-orders/:id
// =============================
func (ctrl *ProductionOrderController) Show(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID order tidak valid")
	}

	var order model.ProductionOrderModel
	if err := ctrl.DB.WithContext(c.Context()).
		Preload("Produk").Preload("Rencana").Preload("Pekerja").
		First(&order, "id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Order produksi tidak ditemukan")
	}

	var histories []model.ProductionOrderHistoryModel
	if err := ctrl.DB.WithContext(c.Context()).
		Preload("ChangedBy").
		Where("order_id = ?", order.ID).
		Order("diubah_pada DESC").
		Find(&histories).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil detail order")
	}

	var rejects []model.ProductionRejectModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("order_id = ?", order.ID).
		Find(&rejects).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil detail order")
	}

	return helper.JsonOK(c, "Detail order produksi berhasil diambil", fiber.Map{
		"order":       order,
		"histories":   histories,
		"data_reject": rejects,
	})
}

// =============================
// ▶️ PUT /produksi/production-orders/:id/start
// =============================
func (ctrl *ProductionOrderController) Start(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID order tidak valid")
	}
	workerID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	now := time.Now().UTC()
	var order *model.ProductionOrderModel
	txErr := ctrl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		var err error
		order, err = orderService.StartOrder(&gormOrderStore{tx: tx}, id, workerID, now)
		return err
	})
	if txErr != nil {
		return jsonFromWorkflowError(c, txErr, "Gagal memulai order produksi")
	}

	var fresh model.ProductionOrderModel
	ctrl.DB.WithContext(c.Context()).
		Preload("Produk").Preload("Rencana").Preload("Pekerja").
		First(&fresh, "id = ?", order.ID)

	return helper.JsonUpdated(c, "Order produksi mulai dikerjakan", fresh)
}

// =============================
// ⏹️ PUT /produksi/production-orders/:id/complete
// =============================
func (ctrl *ProductionOrderController) Complete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID order tidak valid")
	}

	var req dto.CompleteOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := helper.ValidateStruct(c, &req); err != nil {
		return err
	}

	workerID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	rejects := make([]orderService.RejectInput, 0, len(req.Rejects))
	for _, r := range req.Rejects {
		rejects = append(rejects, orderService.RejectInput{
			JenisCacat: r.JenisCacat,
			Jumlah:     r.Jumlah,
		})
	}

	now := time.Now().UTC()
	var order *model.ProductionOrderModel
	txErr := ctrl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		var err error
		order, err = orderService.CompleteOrder(&gormOrderStore{tx: tx}, id, workerID,
			req.JumlahAktual, req.JumlahReject, rejects, req.Catatan, now)
		return err
	})
	if txErr != nil {
		return jsonFromWorkflowError(c, txErr, "Gagal menyelesaikan order produksi")
	}

	var fresh model.ProductionOrderModel
	ctrl.DB.WithContext(c.Context()).
		Preload("Produk").Preload("Rencana").Preload("Pekerja").
		First(&fresh, "id = ?", order.ID)

	return helper.JsonUpdated(c, "Order produksi telah selesai", fresh)
}

// =============================
// 📈 PUT /produksi/production-orders/:id/progress
// =============================
func (ctrl *ProductionOrderController) UpdateProgress(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID order tidak valid")
	}

	var req dto.UpdateProgressRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := helper.ValidateStruct(c, &req); err != nil {
		return err
	}

	workerID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	now := time.Now().UTC()
	var order *model.ProductionOrderModel
	txErr := ctrl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		var err error
		order, err = orderService.UpdateProgress(&gormOrderStore{tx: tx}, id, workerID,
			req.Progress, req.Catatan, now)
		return err
	})
	if txErr != nil {
		return jsonFromWorkflowError(c, txErr, "Gagal mengupdate progress produksi")
	}

	return helper.JsonUpdated(c, "Progress produksi berhasil dicatat", order)
}

// =============================
// 📊 GET /produksi/production-orders/stats
// =============================
func (ctrl *ProductionOrderController) Stats(c *fiber.Ctx) error {
	db := ctrl.DB.WithContext(c.Context())

	var total, dalamProses, selesaiBulanIni int64
	if err := db.Model(&model.ProductionOrderModel{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil statistik order")
	}
	if err := db.Model(&model.ProductionOrderModel{}).
		Where("status = ?", model.OrderStatusDalamProses).
		Count(&dalamProses).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil statistik order")
	}
	if err := db.Model(&model.ProductionOrderModel{}).
		Where("status = ? AND date_trunc('month', selesai_pada) = date_trunc('month', now())",
			model.OrderStatusSelesai).
		Count(&selesaiBulanIni).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil statistik order")
	}

	return helper.JsonOK(c, "Statistik order produksi berhasil diambil", fiber.Map{
		"total":             total,
		"dalam_proses":      dalamProses,
		"selesai_bulan_ini": selesaiBulanIni,
	})
}
