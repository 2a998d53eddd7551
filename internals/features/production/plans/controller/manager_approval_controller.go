// internals/features/production/plans/controller/manager_approval_controller.go
package controller

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	orderModel "produksiku_backend/internals/features/production/orders/model"
	"produksiku_backend/internals/features/production/plans/dto"
	"produksiku_backend/internals/features/production/plans/model"
	planService "produksiku_backend/internals/features/production/plans/service"
	seqService "produksiku_backend/internals/features/production/sequence/service"
	helper "produksiku_backend/internals/helpers"
)

type ManagerApprovalController struct {
	DB *gorm.DB
}

func NewManagerApprovalController(db *gorm.DB) *ManagerApprovalController {
	return &ManagerApprovalController{DB: db}
}

// gormPlanStore membungkus satu transaksi untuk mutasi rencana:
// dipakai alur persetujuan manager dan siklus hidup PPIC.
type gormPlanStore struct {
	tx *gorm.DB
}

func (s *gormPlanStore) PlanForUpdate(id uuid.UUID) (*model.ProductionPlanModel, error) {
	var plan model.ProductionPlanModel
	if err := s.tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&plan, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fiber.NewError(fiber.StatusNotFound, "Rencana produksi tidak ditemukan")
		}
		return nil, err
	}
	return &plan, nil
}

func (s *gormPlanStore) SavePlan(plan *model.ProductionPlanModel) error {
	return s.tx.Save(plan).Error
}

func (s *gormPlanStore) DeletePlan(plan *model.ProductionPlanModel) error {
	return s.tx.Delete(plan).Error
}

func (s *gormPlanStore) CreatePlanHistory(h *model.ProductionPlanHistoryModel) error {
	return s.tx.Create(h).Error
}

func (s *gormPlanStore) NextOrderNumber() (string, error) {
	return seqService.NextOrderNumber(s.tx)
}

func (s *gormPlanStore) CreateOrder(order *orderModel.ProductionOrderModel) error {
	return s.tx.Create(order).Error
}

func (s *gormPlanStore) CreateOrderHistory(h *orderModel.ProductionOrderHistoryModel) error {
	return s.tx.Create(h).Error
}

// =============================
// 📋 GET /produksi/manager/approvals
// =============================
func (ctrl *ManagerApprovalController) Index(c *fiber.Ctx) error {
	var plans []model.ProductionPlanModel
	if err := ctrl.DB.WithContext(c.Context()).
		Preload("Produk").Preload("Pembuat").
		Where("status = ?", model.PlanStatusMenunggu).
		Order("created_at DESC").
		Find(&plans).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil daftar persetujuan")
	}

	return helper.JsonCounted(c, "Daftar rencana menunggu persetujuan berhasil diambil", plans, len(plans))
}

// =============================
// ✅ PUT /produksi/manager/approvals/:id
// =============================
func (ctrl *ManagerApprovalController) Update(c *fiber.Ctx) error {
	planID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID rencana tidak valid")
	}

	var req dto.ManagerApprovalRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := helper.ValidateStruct(c, &req); err != nil {
		return err
	}

	managerID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	now := time.Now().UTC()
	var result *planService.ApprovalResult
	txErr := ctrl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		store := &gormPlanStore{tx: tx}
		var err error
		if req.Status == model.PlanStatusDisetujui {
			result, err = planService.ApprovePlan(store, planID, managerID, req.Catatan, now)
		} else {
			result, err = planService.RejectPlan(store, planID, managerID, req.Catatan, now)
		}
		return err
	})
	if txErr != nil {
		if fe, ok := txErr.(*fiber.Error); ok {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		log.Printf("[ERROR] gagal memproses persetujuan rencana %s (manager=%s): %v", planID, managerID, txErr)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Terjadi kesalahan sistem saat memproses persetujuan")
	}

	var fresh model.ProductionPlanModel
	ctrl.DB.WithContext(c.Context()).
		Preload("Produk").Preload("Pembuat").Preload("Penyetuju").
		First(&fresh, "id = ?", planID)

	if result.Order != nil {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"success": true,
			"message": "Rencana produksi berhasil disetujui dan order produksi telah dibuat",
			"data":    fresh,
			"order_produksi": fiber.Map{
				"id":          result.Order.ID,
				"nomor_order": result.Order.NomorOrder,
				"status":      result.Order.Status,
			},
			"history_logs": result.HistoryLogs,
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":      true,
		"message":      "Rencana produksi berhasil ditolak",
		"data":         fresh,
		"history_logs": result.HistoryLogs,
	})
}

// =============================
// 📊 GET /produksi/manager/approvals/stats
// =============================
func (ctrl *ManagerApprovalController) Stats(c *fiber.Ctx) error {
	db := ctrl.DB.WithContext(c.Context())

	var menunggu, hariIni, bulanIni int64
	if err := db.Model(&model.ProductionPlanModel{}).
		Where("status = ?", model.PlanStatusMenunggu).
		Count(&menunggu).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil statistik")
	}
	// rencana yang disetujui langsung menjadi_order, jadi hitung
	// berdasarkan stempel waktu persetujuan
	if err := db.Model(&model.ProductionPlanModel{}).
		Where("status IN ? AND disetujui_pada::date = CURRENT_DATE",
			[]string{model.PlanStatusDisetujui, model.PlanStatusOrder}).
		Count(&hariIni).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil statistik")
	}
	if err := db.Model(&model.ProductionPlanModel{}).
		Where("status = ? AND date_trunc('month', ditolak_pada) = date_trunc('month', now())", model.PlanStatusDitolak).
		Count(&bulanIni).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil statistik")
	}

	return helper.JsonOK(c, "Statistik persetujuan berhasil diambil", fiber.Map{
		"menunggu_persetujuan":         menunggu,
		"total_diselesaikan_hari_ini":  hariIni,
		"total_ditolak_bulan_ini":      bulanIni,
	})
}
