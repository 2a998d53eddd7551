// internals/features/production/reports/controller/produksi_report_controller.go
package controller

import (
	"fmt"
	"regexp"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	orderModel "produksiku_backend/internals/features/production/orders/model"
	"produksiku_backend/internals/features/production/reports/dto"
	"produksiku_backend/internals/features/production/reports/model"
	reportService "produksiku_backend/internals/features/production/reports/service"
	seqService "produksiku_backend/internals/features/production/sequence/service"
	helper "produksiku_backend/internals/helpers"
)

type ProduksiReportController struct {
	DB *gorm.DB
}

func NewProduksiReportController(db *gorm.DB) *ProduksiReportController {
	return &ProduksiReportController{DB: db}
}

var filenameSanitizer = regexp.MustCompile(`[^A-Za-z0-9_-]`)

func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// =============================
// 📋 GET /produksi/laporan
// =============================
func (ctrl *ProduksiReportController) Index(c *fiber.Ctx) error {
	q := ctrl.DB.WithContext(c.Context()).
		Model(&model.ProductionReportModel{}).
		Preload("Pembuat").
		Order("created_at DESC")

	awal, akhir := c.Query("periode_awal"), c.Query("periode_akhir")
	if awal != "" && akhir != "" {
		q = q.Where("periode_awal BETWEEN ? AND ?", awal, akhir)
	} else {
		// default: laporan bulan berjalan
		bulanIni := startOfMonth(time.Now())
		q = q.Where("periode_awal >= ? AND periode_awal < ?", bulanIni, bulanIni.AddDate(0, 1, 0))
	}

	var laporan []model.ProductionReportModel
	if err := q.Find(&laporan).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data laporan")
	}

	return helper.JsonCounted(c, "Data laporan produksi berhasil diambil", laporan, len(laporan))
}

// =============================
// 🧾 POST /produksi/laporan/generate
// =============================
func (ctrl *ProduksiReportController) Generate(c *fiber.Ctx) error {
	var req dto.GenerateReportRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := helper.ValidateStruct(c, &req); err != nil {
		return err
	}

	awal, _ := time.Parse("2006-01-02", req.PeriodeAwal)
	akhir, _ := time.Parse("2006-01-02", req.PeriodeAkhir)
	if akhir.Before(awal) {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity,
			"Periode akhir tidak boleh sebelum periode awal")
	}

	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var laporan model.ProductionReportModel
	if err := ctrl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		nomor, err := seqService.NextReportNumber(tx, time.Now())
		if err != nil {
			return err
		}
		laporan = model.ProductionReportModel{
			NomorLaporan: nomor,
			PeriodeAwal:  awal,
			PeriodeAkhir: akhir,
			DibuatOleh:   userID,
			Catatan:      req.Catatan,
		}
		return tx.Create(&laporan).Error
	}); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal generate laporan")
	}

	stats, err := reportService.CalculateProductionStats(ctrl.DB.WithContext(c.Context()), awal, akhir)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung statistik laporan")
	}

	ctrl.DB.WithContext(c.Context()).Preload("Pembuat").First(&laporan, "id = ?", laporan.ID)

	return helper.JsonCreated(c, "Laporan produksi berhasil digenerate", fiber.Map{
		"laporan":   laporan,
		"statistik": stats,
	})
}

// =============================
// 👁️ GET /produksi/laporan/:id/preview
// =============================
func (ctrl *ProduksiReportController) Preview(c *fiber.Ctx) error {
	laporan, err := ctrl.findLaporan(c)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	stats, err := reportService.CalculateProductionStats(
		ctrl.DB.WithContext(c.Context()), laporan.PeriodeAwal, laporan.PeriodeAkhir)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat preview laporan")
	}

	return helper.JsonOK(c, "Preview laporan berhasil dimuat", fiber.Map{
		"laporan":   laporan,
		"statistik": stats,
	})
}

// =============================
// 📥 GET /produksi/laporan/:id/export-excel
// =============================
func (ctrl *ProduksiReportController) ExportExcel(c *fiber.Ctx) error {
	laporan, err := ctrl.findLaporan(c)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	stats, err := reportService.CalculateProductionStats(
		ctrl.DB.WithContext(c.Context()), laporan.PeriodeAwal, laporan.PeriodeAkhir)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung statistik laporan")
	}

	pembuat := "Tidak Diketahui"
	if laporan.Pembuat != nil {
		pembuat = laporan.Pembuat.Name
	}

	f, err := reportService.BuildLaporanExcel(laporan, stats, pembuat)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat file Excel")
	}
	defer f.Close()

	filename := fmt.Sprintf("Laporan_Produksi_%s_%s.xlsx",
		filenameSanitizer.ReplaceAllString(laporan.NomorLaporan, "_"),
		time.Now().Format("20060102150405"))

	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	c.Set(fiber.HeaderCacheControl, "no-cache, no-store, must-revalidate")

	return f.Write(c.Response().BodyWriter())
}

// =============================
// ⏱️ GET /produksi/laporan/stats/realtime
// =============================
func (ctrl *ProduksiReportController) GetRealTimeStats(c *fiber.Ctx) error {
	db := ctrl.DB.WithContext(c.Context())

	var orderHarian, selesaiHarian, orderBulanan, selesaiBulanan int64
	var produksiHarian int64

	if err := db.Model(&orderModel.ProductionOrderModel{}).
		Where("created_at::date = CURRENT_DATE").
		Count(&orderHarian).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil statistik realtime")
	}
	if err := db.Model(&orderModel.ProductionOrderModel{}).
		Where("status = ? AND selesai_pada::date = CURRENT_DATE", orderModel.OrderStatusSelesai).
		Count(&selesaiHarian).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil statistik realtime")
	}
	if err := db.Model(&orderModel.ProductionOrderModel{}).
		Where("status = ? AND selesai_pada::date = CURRENT_DATE", orderModel.OrderStatusSelesai).
		Select("COALESCE(SUM(jumlah_aktual), 0)").
		Scan(&produksiHarian).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil statistik realtime")
	}
	if err := db.Model(&orderModel.ProductionOrderModel{}).
		Where("date_trunc('month', created_at) = date_trunc('month', now())").
		Count(&orderBulanan).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil statistik realtime")
	}
	if err := db.Model(&orderModel.ProductionOrderModel{}).
		Where("status = ? AND date_trunc('month', selesai_pada) = date_trunc('month', now())",
			orderModel.OrderStatusSelesai).
		Count(&selesaiBulanan).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil statistik realtime")
	}

	return helper.JsonOK(c, "Statistik realtime berhasil diambil", fiber.Map{
		"harian": fiber.Map{
			"order_dibuat":    orderHarian,
			"order_selesai":   selesaiHarian,
			"produksi_harian": produksiHarian,
		},
		"bulanan": fiber.Map{
			"order_dibuat":  orderBulanan,
			"order_selesai": selesaiBulanan,
		},
	})
}

func (ctrl *ProduksiReportController) findLaporan(c *fiber.Ctx) (*model.ProductionReportModel, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "ID laporan tidak valid")
	}
	var laporan model.ProductionReportModel
	if err := ctrl.DB.WithContext(c.Context()).
		Preload("Pembuat").
		First(&laporan, "id = ?", id).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "Laporan tidak ditemukan")
	}
	return &laporan, nil
}
