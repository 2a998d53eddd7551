// internals/features/production/orders/service/workflow_service.go
package service

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"produksiku_backend/internals/features/production/orders/model"
)

// OrderStore adalah akses data alur pengerjaan order produksi.
// OrderForUpdate wajib mengunci baris order selama transaksi.
type OrderStore interface {
	OrderForUpdate(id uuid.UUID) (*model.ProductionOrderModel, error)
	SaveOrder(order *model.ProductionOrderModel) error
	CreateOrderHistory(h *model.ProductionOrderHistoryModel) error
	CreateReject(r *model.ProductionRejectModel) error
}

// RejectInput adalah rincian cacat per jenis saat menyelesaikan order.
type RejectInput struct {
	JenisCacat string
	Jumlah     int
}

func strPtr(s string) *string { return &s }

// StartOrder memulai pengerjaan: menunggu -> dalam_proses.
func StartOrder(store OrderStore, orderID, workerID uuid.UUID, now time.Time) (*model.ProductionOrderModel, error) {
	order, err := store.OrderForUpdate(orderID)
	if err != nil {
		return nil, err
	}
	if !model.OrderCanTransition(order.Status, model.OrderStatusDalamProses) {
		return nil, fiber.NewError(fiber.StatusBadRequest,
			"Order bukan status menunggu. Status saat ini: "+order.Status)
	}

	sebelum := order.Status
	order.Status = model.OrderStatusDalamProses
	order.MulaiPada = &now
	order.DikerjakanOleh = &workerID
	if err := store.SaveOrder(order); err != nil {
		return nil, err
	}

	if err := store.CreateOrderHistory(&model.ProductionOrderHistoryModel{
		OrderID:          order.ID,
		StatusSebelumnya: strPtr(sebelum),
		StatusBaru:       model.OrderStatusDalamProses,
		DiubahOleh:       workerID,
		Keterangan:       strPtr("Order produksi mulai dikerjakan"),
		DiubahPada:       now,
	}); err != nil {
		return nil, err
	}

	return order, nil
}

// CompleteOrder menyelesaikan pengerjaan: dalam_proses -> selesai.
// Jumlah reject tidak boleh melebihi jumlah aktual, dan bila rincian
// cacat dikirim totalnya harus sama dengan jumlah reject.
func CompleteOrder(store OrderStore, orderID, workerID uuid.UUID, aktual, reject int, rejects []RejectInput, catatan *string, now time.Time) (*model.ProductionOrderModel, error) {
	if reject > aktual {
		return nil, fiber.NewError(fiber.StatusUnprocessableEntity,
			"Jumlah reject tidak boleh melebihi jumlah aktual")
	}
	if len(rejects) > 0 {
		total := 0
		for _, r := range rejects {
			total += r.Jumlah
		}
		if total != reject {
			return nil, fiber.NewError(fiber.StatusUnprocessableEntity,
				"Total rincian reject tidak sama dengan jumlah reject")
		}
	}

	order, err := store.OrderForUpdate(orderID)
	if err != nil {
		return nil, err
	}
	if !model.OrderCanTransition(order.Status, model.OrderStatusSelesai) {
		return nil, fiber.NewError(fiber.StatusBadRequest,
			"Order belum dalam status dalam_proses. Status saat ini: "+order.Status)
	}

	sebelum := order.Status
	order.Status = model.OrderStatusSelesai
	order.SelesaiPada = &now
	order.JumlahAktual = &aktual
	order.JumlahReject = &reject
	if err := store.SaveOrder(order); err != nil {
		return nil, err
	}

	ket := "Order produksi telah selesai"
	if catatan != nil && *catatan != "" {
		ket = *catatan
	}
	if err := store.CreateOrderHistory(&model.ProductionOrderHistoryModel{
		OrderID:          order.ID,
		StatusSebelumnya: strPtr(sebelum),
		StatusBaru:       model.OrderStatusSelesai,
		DiubahOleh:       workerID,
		Keterangan:       strPtr(ket),
		DiubahPada:       now,
	}); err != nil {
		return nil, err
	}

	for _, r := range rejects {
		if err := store.CreateReject(&model.ProductionRejectModel{
			OrderID:     order.ID,
			JenisCacat:  r.JenisCacat,
			Jumlah:      r.Jumlah,
			DicatatOleh: workerID,
		}); err != nil {
			return nil, err
		}
	}

	return order, nil
}

// UpdateProgress mencatat kemajuan ke ledger history tanpa mengubah
// status order.
func UpdateProgress(store OrderStore, orderID, workerID uuid.UUID, progress int, catatan *string, now time.Time) (*model.ProductionOrderModel, error) {
	order, err := store.OrderForUpdate(orderID)
	if err != nil {
		return nil, err
	}
	if order.Status != model.OrderStatusDalamProses {
		return nil, fiber.NewError(fiber.StatusBadRequest,
			"Progress hanya bisa diupdate saat order dalam_proses. Status saat ini: "+order.Status)
	}

	ket := fmt.Sprintf("Progress produksi diupdate menjadi %d%%", progress)
	if catatan != nil && *catatan != "" {
		ket = ket + ". " + *catatan
	}
	if err := store.CreateOrderHistory(&model.ProductionOrderHistoryModel{
		OrderID:          order.ID,
		StatusSebelumnya: strPtr(order.Status),
		StatusBaru:       order.Status,
		DiubahOleh:       workerID,
		Keterangan:       strPtr(ket),
		DiubahPada:       now,
	}); err != nil {
		return nil, err
	}

	return order, nil
}
