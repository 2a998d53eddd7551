// internals/features/production/plans/service/approval_service.go
package service

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	orderModel "produksiku_backend/internals/features/production/orders/model"
	"produksiku_backend/internals/features/production/plans/model"
)

// ApprovalStore adalah akses data alur persetujuan manager: seluruh
// kebutuhan PlanStore ditambah pembuatan order produksi.
type ApprovalStore interface {
	PlanStore
	NextOrderNumber() (string, error)
	CreateOrder(order *orderModel.ProductionOrderModel) error
	CreateOrderHistory(h *orderModel.ProductionOrderHistoryModel) error
}

// ApprovalResult adalah hasil keputusan manager untuk response API.
type ApprovalResult struct {
	Plan        *model.ProductionPlanModel
	Order       *orderModel.ProductionOrderModel
	HistoryLogs []string
}

const approvalDeadlineDays = 7

// ApprovePlan menyetujui rencana dan langsung menerbitkan order produksi.
// Seluruh langkah berjalan pada store yang sama (satu transaksi):
// rencana -> disetujui -> menjadi_order, order baru berstatus menunggu.
// Setiap perpindahan status divalidasi lewat tabel transisi.
func ApprovePlan(store ApprovalStore, planID, managerID uuid.UUID, catatan *string, now time.Time) (*ApprovalResult, error) {
	plan, err := store.PlanForUpdate(planID)
	if err != nil {
		return nil, err
	}
	if !model.PlanCanTransition(plan.Status, model.PlanStatusDisetujui) {
		return nil, fiber.NewError(fiber.StatusUnprocessableEntity,
			"Rencana ini sudah diproses sebelumnya. Status saat ini: "+plan.Status)
	}

	deadline := now.AddDate(0, 0, approvalDeadlineDays)
	plan.Status = model.PlanStatusDisetujui
	plan.DisetujuiOleh = &managerID
	plan.DisetujuiPada = &now
	plan.BatasSelesai = &deadline
	plan.Catatan = catatan
	if err := store.SavePlan(plan); err != nil {
		return nil, err
	}
	if err := store.CreatePlanHistory(HistoryPersetujuan(plan.ID, managerID, catatan, now)); err != nil {
		return nil, err
	}

	nomorOrder, err := store.NextOrderNumber()
	if err != nil {
		return nil, err
	}
	order := &orderModel.ProductionOrderModel{
		NomorOrder:   nomorOrder,
		RencanaID:    plan.ID,
		ProdukID:     plan.ProdukID,
		TargetJumlah: plan.Jumlah,
		Status:       orderModel.OrderStatusMenunggu,
	}
	if err := store.CreateOrder(order); err != nil {
		return nil, err
	}

	if !model.PlanCanTransition(plan.Status, model.PlanStatusOrder) {
		return nil, fiber.NewError(fiber.StatusUnprocessableEntity,
			"Rencana ini sudah diproses sebelumnya. Status saat ini: "+plan.Status)
	}
	plan.Status = model.PlanStatusOrder
	if err := store.SavePlan(plan); err != nil {
		return nil, err
	}
	if err := store.CreatePlanHistory(HistoryMenjadiOrder(plan.ID, managerID, now)); err != nil {
		return nil, err
	}

	if err := store.CreateOrderHistory(&orderModel.ProductionOrderHistoryModel{
		OrderID:    order.ID,
		StatusBaru: orderModel.OrderStatusMenunggu,
		DiubahOleh: managerID,
		Keterangan: strPtr("Order produksi dibuat dari rencana: " + plan.NomorRencana),
		DiubahPada: now,
	}); err != nil {
		return nil, err
	}

	return &ApprovalResult{
		Plan:  plan,
		Order: order,
		HistoryLogs: []string{
			"persetujuan_rencana",
			"menjadi_order_produksi",
			"pembuatan_order_baru",
		},
	}, nil
}

// RejectPlan menolak rencana. Catatan kosong diganti teks baku.
func RejectPlan(store ApprovalStore, planID, managerID uuid.UUID, catatan *string, now time.Time) (*ApprovalResult, error) {
	plan, err := store.PlanForUpdate(planID)
	if err != nil {
		return nil, err
	}
	if !model.PlanCanTransition(plan.Status, model.PlanStatusDitolak) {
		return nil, fiber.NewError(fiber.StatusUnprocessableEntity,
			"Rencana ini sudah diproses sebelumnya. Status saat ini: "+plan.Status)
	}

	catatanFinal := "Tidak ada catatan"
	if catatan != nil && *catatan != "" {
		catatanFinal = *catatan
	}
	plan.Status = model.PlanStatusDitolak
	plan.DisetujuiOleh = &managerID
	plan.DitolakPada = &now
	plan.Catatan = &catatanFinal
	if err := store.SavePlan(plan); err != nil {
		return nil, err
	}
	if err := store.CreatePlanHistory(HistoryPenolakan(plan.ID, managerID, catatan, now)); err != nil {
		return nil, err
	}

	return &ApprovalResult{
		Plan:        plan,
		HistoryLogs: []string{"penolakan_rencana"},
	}, nil
}
