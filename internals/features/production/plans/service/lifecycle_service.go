// internals/features/production/plans/service/lifecycle_service.go
package service

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"produksiku_backend/internals/features/production/plans/model"
)

// PlanStore adalah akses data mutasi siklus hidup rencana oleh PPIC.
// Implementasi produksi membungkus satu transaksi database; PlanForUpdate
// wajib mengunci baris supaya keputusan manager yang berjalan bersamaan
// tidak tersalip.
type PlanStore interface {
	PlanForUpdate(id uuid.UUID) (*model.ProductionPlanModel, error)
	SavePlan(plan *model.ProductionPlanModel) error
	DeletePlan(plan *model.ProductionPlanModel) error
	CreatePlanHistory(h *model.ProductionPlanHistoryModel) error
}

// SubmitPlan mengajukan rencana: draft -> menunggu_persetujuan.
// Status dibaca ulang dengan lock di dalam transaksi dan divalidasi
// lewat tabel transisi.
func SubmitPlan(store PlanStore, planID, userID uuid.UUID, now time.Time) (*model.ProductionPlanModel, error) {
	plan, err := store.PlanForUpdate(planID)
	if err != nil {
		return nil, err
	}
	if !model.PlanCanTransition(plan.Status, model.PlanStatusMenunggu) {
		return nil, fiber.NewError(fiber.StatusBadRequest,
			"Hanya rencana dengan status draft yang dapat diajukan. Status saat ini: "+plan.Status)
	}

	plan.Status = model.PlanStatusMenunggu
	plan.DiajukanPada = &now
	if err := store.SavePlan(plan); err != nil {
		return nil, err
	}
	if err := store.CreatePlanHistory(HistoryPengajuan(plan.ID, userID, now)); err != nil {
		return nil, err
	}
	return plan, nil
}

// CancelSubmission menarik kembali pengajuan: menunggu_persetujuan -> draft.
func CancelSubmission(store PlanStore, planID, userID uuid.UUID, now time.Time) (*model.ProductionPlanModel, error) {
	plan, err := store.PlanForUpdate(planID)
	if err != nil {
		return nil, err
	}
	if !model.PlanCanTransition(plan.Status, model.PlanStatusDraft) {
		return nil, fiber.NewError(fiber.StatusBadRequest,
			"Hanya rencana dengan status menunggu persetujuan yang dapat dibatalkan")
	}

	plan.Status = model.PlanStatusDraft
	plan.DiajukanPada = nil
	if err := store.SavePlan(plan); err != nil {
		return nil, err
	}
	if err := store.CreatePlanHistory(HistoryPembatalan(plan.ID, userID, now)); err != nil {
		return nil, err
	}
	return plan, nil
}

// DestroyPlan menghapus rencana yang belum diproses manager. Jejak
// penghapusan ditulis lebih dulu dan tidak ikut terhapus bersama rencana.
func DestroyPlan(store PlanStore, planID, userID uuid.UUID, now time.Time) (*model.ProductionPlanModel, error) {
	plan, err := store.PlanForUpdate(planID)
	if err != nil {
		return nil, err
	}
	if !model.PlanIsEditable(plan.Status) {
		return nil, fiber.NewError(fiber.StatusForbidden,
			"Rencana tidak bisa dihapus karena sudah diproses lebih lanjut. Status saat ini: "+plan.Status)
	}

	if err := store.CreatePlanHistory(HistoryPenghapusan(plan.ID, userID, plan.Status, now)); err != nil {
		return nil, err
	}
	if err := store.DeletePlan(plan); err != nil {
		return nil, err
	}
	return plan, nil
}
