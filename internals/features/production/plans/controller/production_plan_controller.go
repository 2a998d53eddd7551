// internals/features/production/plans/controller/production_plan_controller.go
package controller

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	productModel "produksiku_backend/internals/features/master/products/model"
	orderModel "produksiku_backend/internals/features/production/orders/model"
	"produksiku_backend/internals/features/production/plans/dto"
	"produksiku_backend/internals/features/production/plans/model"
	planService "produksiku_backend/internals/features/production/plans/service"
	seqService "produksiku_backend/internals/features/production/sequence/service"
	helper "produksiku_backend/internals/helpers"
)

type ProductionPlanController struct {
	DB *gorm.DB
}

func NewProductionPlanController(db *gorm.DB) *ProductionPlanController {
	return &ProductionPlanController{DB: db}
}

func (ctrl *ProductionPlanController) findPlan(c *fiber.Ctx) (*model.ProductionPlanModel, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "ID rencana tidak valid")
	}
	var plan model.ProductionPlanModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&plan, "id = ?", id).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "Rencana produksi tidak ditemukan")
	}
	return &plan, nil
}

// =============================
// 📋 GET /ppic/production-plans
// =============================
func (ctrl *ProductionPlanController) Index(c *fiber.Ctx) error {
	q := ctrl.DB.WithContext(c.Context()).
		Model(&model.ProductionPlanModel{}).
		Preload("Produk").Preload("Pembuat").Preload("Penyetuju").
		Order("created_at DESC")

	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}
	if awal, akhir := c.Query("periode_awal"), c.Query("periode_akhir"); awal != "" && akhir != "" {
		q = q.Where("created_at BETWEEN ? AND ?", awal, akhir+" 23:59:59")
	}
	if produkID := c.Query("produk_id"); produkID != "" {
		q = q.Where("produk_id = ?", produkID)
	}

	var plans []model.ProductionPlanModel
	if err := q.Find(&plans).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data rencana")
	}

	return helper.JsonCounted(c, "Data rencana produksi berhasil diambil", plans, len(plans))
}

// =============================
// 👁️ GET /ppic/production-plans/:id
// =============================
func (ctrl *ProductionPlanController) Show(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID rencana tidak valid")
	}

	var plan model.ProductionPlanModel
	if err := ctrl.DB.WithContext(c.Context()).
		Preload("Produk").Preload("Pembuat").Preload("Penyetuju").
		Preload("Histories", func(db *gorm.DB) *gorm.DB {
			return db.Order("waktu_aksi DESC")
		}).
		Preload("Histories.User").
		First(&plan, "id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Rencana produksi tidak ditemukan")
	}

	var orders []orderModel.ProductionOrderModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("rencana_id = ?", plan.ID).
		Find(&orders).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil detail rencana")
	}

	return helper.JsonOK(c, "Detail rencana produksi berhasil diambil", fiber.Map{
		"rencana":        plan,
		"order_produksi": orders,
	})
}

// =============================
// ➕ POST /ppic/production-plans
// =============================
func (ctrl *ProductionPlanController) Store(c *fiber.Ctx) error {
	var req dto.ProductionPlanCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := helper.ValidateStruct(c, &req); err != nil {
		return err
	}

	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	batasSelesai, err := time.Parse("2006-01-02", req.BatasSelesai)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Format batas selesai tidak valid")
	}
	if !batasSelesai.After(time.Now().Truncate(24 * time.Hour)) {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Batas selesai harus setelah hari ini")
	}

	produkID, _ := uuid.Parse(req.ProdukID)
	var produk productModel.MasterProductModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&produk, "id = ?", produkID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Produk tidak ditemukan")
	}

	var plan model.ProductionPlanModel
	if err := ctrl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		nomor, err := seqService.NextPlanNumber(tx, time.Now())
		if err != nil {
			return err
		}
		plan = model.ProductionPlanModel{
			NomorRencana: nomor,
			ProdukID:     produkID,
			Jumlah:       req.Jumlah,
			BatasSelesai: &batasSelesai,
			Catatan:      req.Catatan,
			DibuatOleh:   userID,
			Status:       model.PlanStatusDraft,
		}
		if err := tx.Create(&plan).Error; err != nil {
			return err
		}
		return planService.CatatPembuatan(tx, plan.ID, userID)
	}); err != nil {
		log.Printf("[ERROR] gagal membuat rencana (user=%s): %v", userID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat rencana produksi")
	}

	ctrl.DB.WithContext(c.Context()).
		Preload("Produk").Preload("Pembuat").
		First(&plan, "id = ?", plan.ID)

	return helper.JsonCreated(c, "Rencana produksi berhasil dibuat dan menunggu persetujuan Manager Produksi", plan)
}

// =============================
// ✏️ PUT /ppic/production-plans/:id
// =============================
func (ctrl *ProductionPlanController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID rencana tidak valid")
	}

	var req dto.ProductionPlanUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := helper.ValidateStruct(c, &req); err != nil {
		return err
	}

	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var batasSelesai *time.Time
	if req.BatasSelesai != nil {
		batas, err := time.Parse("2006-01-02", *req.BatasSelesai)
		if err != nil {
			return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Format batas selesai tidak valid")
		}
		if !batas.After(time.Now().Truncate(24 * time.Hour)) {
			return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Batas selesai harus setelah hari ini")
		}
		batasSelesai = &batas
	}

	// status dibaca ulang dengan lock di transaksi yang sama dengan
	// perubahannya, supaya keputusan manager tidak tersalip
	var plan model.ProductionPlanModel
	txErr := ctrl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		store := &gormPlanStore{tx: tx}
		locked, err := store.PlanForUpdate(id)
		if err != nil {
			return err
		}
		plan = *locked

		if !model.PlanIsEditable(plan.Status) {
			return fiber.NewError(fiber.StatusForbidden,
				"Rencana tidak bisa diubah karena sudah diproses lebih lanjut. Status saat ini: "+plan.Status)
		}

		changed := false
		if req.ProdukID != nil {
			produkID, _ := uuid.Parse(*req.ProdukID)
			var produk productModel.MasterProductModel
			if err := tx.First(&produk, "id = ?", produkID).Error; err != nil {
				return fiber.NewError(fiber.StatusNotFound, "Produk tidak ditemukan")
			}
			plan.ProdukID = produkID
			changed = true
		}
		if req.Jumlah != nil {
			plan.Jumlah = *req.Jumlah
			changed = true
		}
		if batasSelesai != nil {
			plan.BatasSelesai = batasSelesai
			changed = true
		}
		if req.Catatan != nil {
			plan.Catatan = req.Catatan
			changed = true
		}
		if !changed {
			return nil
		}

		if err := store.SavePlan(&plan); err != nil {
			return err
		}
		return planService.CatatUpdate(tx, plan.ID, userID, plan.Status)
	})
	if txErr != nil {
		if fe, ok := txErr.(*fiber.Error); ok {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		log.Printf("[ERROR] gagal memperbarui rencana %s (user=%s): %v", id, userID, txErr)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui rencana")
	}

	ctrl.DB.WithContext(c.Context()).
		Preload("Produk").Preload("Pembuat").
		First(&plan, "id = ?", plan.ID)

	return helper.JsonUpdated(c, "Rencana produksi berhasil diperbarui", plan)
}

// =============================
// 🗑️ DELETE /ppic/production-plans/:id
// =============================
func (ctrl *ProductionPlanController) Destroy(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID rencana tidak valid")
	}

	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	now := time.Now().UTC()
	txErr := ctrl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		_, err := planService.DestroyPlan(&gormPlanStore{tx: tx}, id, userID, now)
		return err
	})
	if txErr != nil {
		if fe, ok := txErr.(*fiber.Error); ok {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		log.Printf("[ERROR] gagal menghapus rencana %s (user=%s): %v", id, userID, txErr)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus rencana")
	}

	return helper.JsonDeleted(c, "Rencana produksi berhasil dihapus", fiber.Map{"id": id})
}

// =============================
// 📊 GET /ppic/production-plans/statistics
// =============================
func (ctrl *ProductionPlanController) Statistics(c *fiber.Ctx) error {
	type row struct {
		Status string
		Total  int64
	}
	var rows []row
	if err := ctrl.DB.WithContext(c.Context()).
		Model(&model.ProductionPlanModel{}).
		Select("status, COUNT(*) AS total").
		Group("status").
		Scan(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil statistik")
	}

	stats := fiber.Map{
		"total":                int64(0),
		"draft":                int64(0),
		"menunggu_persetujuan": int64(0),
		"disetujui":            int64(0),
		"ditolak":              int64(0),
		"menjadi_order":        int64(0),
	}
	var total int64
	for _, r := range rows {
		stats[r.Status] = r.Total
		total += r.Total
	}
	stats["total"] = total

	return helper.JsonOK(c, "Statistik rencana produksi berhasil diambil", stats)
}

// =============================
// 🔍 GET /ppic/production-plans/search
// =============================
func (ctrl *ProductionPlanController) Search(c *fiber.Ctx) error {
	q := ctrl.DB.WithContext(c.Context()).
		Model(&model.ProductionPlanModel{}).
		Preload("Produk").Preload("Pembuat").
		Order("created_at DESC")

	if search := c.Query("search"); search != "" {
		like := "%" + search + "%"
		q = q.Where(
			`nomor_rencana ILIKE ? OR produk_id IN (
				SELECT id FROM master_products WHERE nama ILIKE ? OR kode ILIKE ?
			)`, like, like, like)
	}
	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}

	var plans []model.ProductionPlanModel
	if err := q.Find(&plans).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal melakukan pencarian")
	}

	return helper.JsonCounted(c, "Pencarian rencana produksi berhasil", plans, len(plans))
}

// =============================
// 📤 PUT /ppic/production-plans/:id/submit
// =============================
func (ctrl *ProductionPlanController) Submit(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID rencana tidak valid")
	}

	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	now := time.Now().UTC()
	var plan *model.ProductionPlanModel
	txErr := ctrl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		var err error
		plan, err = planService.SubmitPlan(&gormPlanStore{tx: tx}, id, userID, now)
		return err
	})
	if txErr != nil {
		if fe, ok := txErr.(*fiber.Error); ok {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		log.Printf("[ERROR] gagal mengajukan rencana %s (user=%s): %v", id, userID, txErr)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengajukan rencana")
	}

	ctrl.DB.WithContext(c.Context()).
		Preload("Produk").Preload("Pembuat").
		First(plan, "id = ?", plan.ID)

	return helper.JsonUpdated(c, "Rencana berhasil diajukan untuk persetujuan Manager Produksi", plan)
}

// =============================
// ↩️ PUT /ppic/production-plans/:id/cancel
// =============================
func (ctrl *ProductionPlanController) CancelSubmission(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID rencana tidak valid")
	}

	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	now := time.Now().UTC()
	var plan *model.ProductionPlanModel
	txErr := ctrl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		var err error
		plan, err = planService.CancelSubmission(&gormPlanStore{tx: tx}, id, userID, now)
		return err
	})
	if txErr != nil {
		if fe, ok := txErr.(*fiber.Error); ok {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		log.Printf("[ERROR] gagal membatalkan pengajuan %s (user=%s): %v", id, userID, txErr)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membatalkan pengajuan")
	}

	ctrl.DB.WithContext(c.Context()).
		Preload("Produk").Preload("Pembuat").
		First(plan, "id = ?", plan.ID)

	return helper.JsonUpdated(c, "Pengajuan rencana berhasil dibatalkan", plan)
}

// =============================
// 🕘 GET /ppic/production-plans/:id/history
// =============================
func (ctrl *ProductionPlanController) History(c *fiber.Ctx) error {
	plan, err := ctrl.findPlan(c)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	var histories []model.ProductionPlanHistoryModel
	if err := ctrl.DB.WithContext(c.Context()).
		Preload("User").
		Where("rencana_id = ?", plan.ID).
		Order("waktu_aksi DESC").
		Find(&histories).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil history rencana")
	}

	return helper.JsonOK(c, "History rencana produksi berhasil diambil", fiber.Map{
		"rencana":   plan,
		"histories": histories,
	})
}
