// internals/features/production/plans/service/history_service.go
package service

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"produksiku_backend/internals/features/production/plans/model"
)

// Aksi yang tercatat di history rencana.
const (
	AksiDibuat     = "dibuat"
	AksiDiajukan   = "diajukan"
	AksiDisetujui  = "disetujui"
	AksiDitolak    = "ditolak"
	AksiDiproses   = "diproses"
	AksiDibatalkan = "dibatalkan"
	AksiDiupdate   = "diupdate"
	AksiDihapus    = "dihapus"
)

func strPtr(s string) *string { return &s }

// Seluruh redaksi keterangan ledger rencana dirakit di sini; alur
// persetujuan dan siklus hidup PPIC memakai builder yang sama.

func buatHistory(rencanaID, userID uuid.UUID, aksi string, statusSebelum *string, statusBaru, keterangan string, waktu time.Time) *model.ProductionPlanHistoryModel {
	return &model.ProductionPlanHistoryModel{
		RencanaID:     rencanaID,
		UserID:        userID,
		Aksi:          aksi,
		StatusSebelum: statusSebelum,
		StatusBaru:    statusBaru,
		Keterangan:    strPtr(keterangan),
		WaktuAksi:     waktu,
	}
}

func HistoryPembuatan(rencanaID, userID uuid.UUID, waktu time.Time) *model.ProductionPlanHistoryModel {
	return buatHistory(rencanaID, userID, AksiDibuat,
		strPtr("baru"), model.PlanStatusDraft,
		"Rencana produksi dibuat oleh PPIC", waktu)
}

func HistoryPengajuan(rencanaID, userID uuid.UUID, waktu time.Time) *model.ProductionPlanHistoryModel {
	return buatHistory(rencanaID, userID, AksiDiajukan,
		strPtr(model.PlanStatusDraft), model.PlanStatusMenunggu,
		"Rencana diajukan untuk persetujuan manager produksi", waktu)
}

func HistoryPersetujuan(rencanaID, userID uuid.UUID, catatan *string, waktu time.Time) *model.ProductionPlanHistoryModel {
	ket := "Rencana disetujui oleh manager produksi"
	if catatan != nil && *catatan != "" {
		ket = *catatan
	}
	return buatHistory(rencanaID, userID, AksiDisetujui,
		strPtr(model.PlanStatusMenunggu), model.PlanStatusDisetujui, ket, waktu)
}

func HistoryPenolakan(rencanaID, userID uuid.UUID, alasan *string, waktu time.Time) *model.ProductionPlanHistoryModel {
	ket := "Rencana ditolak: Tidak ada alasan"
	if alasan != nil && *alasan != "" {
		ket = "Rencana ditolak: " + *alasan
	}
	return buatHistory(rencanaID, userID, AksiDitolak,
		strPtr(model.PlanStatusMenunggu), model.PlanStatusDitolak, ket, waktu)
}

func HistoryMenjadiOrder(rencanaID, userID uuid.UUID, waktu time.Time) *model.ProductionPlanHistoryModel {
	return buatHistory(rencanaID, userID, AksiDiproses,
		strPtr(model.PlanStatusDisetujui), model.PlanStatusOrder,
		"Rencana diproses menjadi order produksi", waktu)
}

func HistoryPembatalan(rencanaID, userID uuid.UUID, waktu time.Time) *model.ProductionPlanHistoryModel {
	return buatHistory(rencanaID, userID, AksiDibatalkan,
		strPtr(model.PlanStatusMenunggu), model.PlanStatusDraft,
		"Pengajuan rencana dibatalkan oleh PPIC", waktu)
}

func HistoryUpdate(rencanaID, userID uuid.UUID, status string, waktu time.Time) *model.ProductionPlanHistoryModel {
	return buatHistory(rencanaID, userID, AksiDiupdate,
		strPtr(status), status,
		"Data rencana diperbarui oleh PPIC", waktu)
}

func HistoryPenghapusan(rencanaID, userID uuid.UUID, statusSebelum string, waktu time.Time) *model.ProductionPlanHistoryModel {
	return buatHistory(rencanaID, userID, AksiDihapus,
		strPtr(statusSebelum), "dihapus",
		"Rencana produksi dihapus oleh PPIC", waktu)
}

// CatatPembuatan dan CatatUpdate dipakai controller yang menulis
// langsung di dalam transaksi gorm.

func CatatPembuatan(tx *gorm.DB, rencanaID, userID uuid.UUID) error {
	return tx.Create(HistoryPembuatan(rencanaID, userID, time.Now().UTC())).Error
}

func CatatUpdate(tx *gorm.DB, rencanaID, userID uuid.UUID, status string) error {
	return tx.Create(HistoryUpdate(rencanaID, userID, status, time.Now().UTC())).Error
}
