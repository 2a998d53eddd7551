// internals/features/production/reports/controller/ppic_report_controller.go
package controller

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	orderModel "produksiku_backend/internals/features/production/orders/model"
	planModel "produksiku_backend/internals/features/production/plans/model"
	reportService "produksiku_backend/internals/features/production/reports/service"
	helper "produksiku_backend/internals/helpers"
)

// PPICReportController melayani laporan rencana produksi sisi PPIC.
// Berbeda dengan laporan produksi: basisnya rencana, bukan order.
type PPICReportController struct {
	DB *gorm.DB
}

func NewPPICReportController(db *gorm.DB) *PPICReportController {
	return &PPICReportController{DB: db}
}

// LaporanRencanaItem adalah satu baris laporan rencana produksi.
type LaporanRencanaItem struct {
	ID               string      `json:"id"`
	NomorRencana     string      `json:"nomor_rencana"`
	NomorOrder       *string     `json:"nomor_order"`
	Produk           fiber.Map   `json:"produk"`
	JumlahRencana    int         `json:"jumlah_rencana"`
	JumlahSelesai    int         `json:"jumlah_selesai"`
	JumlahReject     int         `json:"jumlah_reject"`
	Efisiensi        float64     `json:"efisiensi"`
	Status           string      `json:"status"`
	Progress         int         `json:"progress"`
	BatasSelesai     *time.Time  `json:"batas_selesai"`
	Terlambat        bool        `json:"terlambat"`
	DibuatOleh       string      `json:"dibuat_oleh"`
	DisetujuiOleh    *string     `json:"disetujui_oleh"`
	Catatan          *string     `json:"catatan"`
	TanggalDibuat    time.Time   `json:"tanggal_dibuat"`
	TanggalDisetujui *time.Time  `json:"tanggal_disetujui"`
	History          []fiber.Map `json:"history"`
}

// resolvePeriode menerjemahkan query periode=bulanan|mingguan (+tahun,
// bulan, minggu) ke rentang tanggal.
func resolvePeriode(c *fiber.Ctx) (time.Time, time.Time, string) {
	now := time.Now()
	periode := c.Query("periode", "bulanan")
	tahun, _ := strconv.Atoi(c.Query("tahun", strconv.Itoa(now.Year())))
	bulan, _ := strconv.Atoi(c.Query("bulan", strconv.Itoa(int(now.Month()))))
	minggu, _ := strconv.Atoi(c.Query("minggu", "1"))

	if periode == "mingguan" && tahun > 0 && minggu > 0 {
		// Senin minggu ke-N ISO
		awal := time.Date(tahun, 1, 4, 0, 0, 0, 0, now.Location())
		for awal.Weekday() != time.Monday {
			awal = awal.AddDate(0, 0, -1)
		}
		awal = awal.AddDate(0, 0, (minggu-1)*7)
		return awal, awal.AddDate(0, 0, 6), periode
	}

	if tahun <= 0 || bulan < 1 || bulan > 12 {
		tahun, bulan = now.Year(), int(now.Month())
	}
	awal := time.Date(tahun, time.Month(bulan), 1, 0, 0, 0, 0, now.Location())
	return awal, awal.AddDate(0, 1, -1), "bulanan"
}

func (ctrl *PPICReportController) buildLaporanItems(c *fiber.Ctx, awal, akhir time.Time, statusFilter string, withHistory bool) ([]LaporanRencanaItem, error) {
	q := ctrl.DB.WithContext(c.Context()).
		Model(&planModel.ProductionPlanModel{}).
		Preload("Produk").Preload("Pembuat").Preload("Penyetuju").
		Where("created_at >= ? AND created_at < ?", awal, akhir.AddDate(0, 0, 1)).
		Order("created_at DESC")
	if withHistory {
		q = q.Preload("Histories.User")
	}
	if statusFilter != "" {
		q = q.Where("status = ?", statusFilter)
	}

	var plans []planModel.ProductionPlanModel
	if err := q.Find(&plans).Error; err != nil {
		return nil, err
	}

	planIDs := make([]string, 0, len(plans))
	for _, p := range plans {
		planIDs = append(planIDs, p.ID.String())
	}
	ordersByPlan := map[string]*orderModel.ProductionOrderModel{}
	if len(planIDs) > 0 {
		var orders []orderModel.ProductionOrderModel
		if err := ctrl.DB.WithContext(c.Context()).
			Where("rencana_id IN ?", planIDs).
			Find(&orders).Error; err != nil {
			return nil, err
		}
		for i := range orders {
			ordersByPlan[orders[i].RencanaID.String()] = &orders[i]
		}
	}

	now := time.Now()
	items := make([]LaporanRencanaItem, 0, len(plans))
	for _, plan := range plans {
		item := LaporanRencanaItem{
			ID:               plan.ID.String(),
			NomorRencana:     plan.NomorRencana,
			JumlahRencana:    plan.Jumlah,
			Status:           plan.Status,
			Progress:         reportService.PlanProgress(plan.Status),
			BatasSelesai:     plan.BatasSelesai,
			Catatan:          plan.Catatan,
			TanggalDibuat:    plan.CreatedAt,
			TanggalDisetujui: plan.DisetujuiPada,
			DibuatOleh:       "N/A",
			Produk: fiber.Map{
				"id": nil, "kode": "N/A", "nama": "Produk Tidak Ditemukan", "satuan": "pcs",
			},
			History: []fiber.Map{},
		}
		if plan.Produk != nil {
			item.Produk = fiber.Map{
				"id":     plan.Produk.ID,
				"kode":   plan.Produk.Kode,
				"nama":   plan.Produk.Nama,
				"satuan": plan.Produk.Satuan,
			}
		}
		if plan.Pembuat != nil {
			item.DibuatOleh = plan.Pembuat.Name
		}
		if plan.Penyetuju != nil {
			item.DisetujuiOleh = &plan.Penyetuju.Name
		}
		if plan.BatasSelesai != nil && now.After(*plan.BatasSelesai) {
			item.Terlambat = true
		}
		if order := ordersByPlan[plan.ID.String()]; order != nil {
			item.NomorOrder = &order.NomorOrder
			if order.JumlahAktual != nil {
				item.JumlahSelesai = *order.JumlahAktual
			}
			if order.JumlahReject != nil {
				item.JumlahReject = *order.JumlahReject
			}
		}
		item.Efisiensi = reportService.EfisiensiRencana(
			int64(item.JumlahSelesai), int64(item.JumlahReject), int64(plan.Jumlah))
		for _, h := range plan.Histories {
			userName := "N/A"
			if h.User != nil {
				userName = h.User.Name
			}
			item.History = append(item.History, fiber.Map{
				"aksi":       h.Aksi,
				"keterangan": h.Keterangan,
				"waktu":      h.WaktuAksi,
				"user":       userName,
			})
		}
		items = append(items, item)
	}
	return items, nil
}

func calculateRencanaStatistics(items []LaporanRencanaItem) fiber.Map {
	perStatus := map[string]int{}
	var totalRencana, totalSelesai, totalReject int
	var terlambat int
	for _, item := range items {
		perStatus[item.Status]++
		totalRencana += item.JumlahRencana
		totalSelesai += item.JumlahSelesai
		totalReject += item.JumlahReject
		if item.Terlambat {
			terlambat++
		}
	}
	return fiber.Map{
		"total_laporan":        len(items),
		"per_status":           perStatus,
		"total_jumlah_rencana": totalRencana,
		"total_jumlah_selesai": totalSelesai,
		"total_jumlah_reject":  totalReject,
		"total_terlambat":      terlambat,
		"efisiensi": reportService.EfisiensiRencana(
			int64(totalSelesai), int64(totalReject), int64(totalRencana)),
	}
}

// =============================
// 📋 GET /ppic/production-reports
// =============================
func (ctrl *PPICReportController) Index(c *fiber.Ctx) error {
	awal, akhir, jenis := resolvePeriode(c)

	items, err := ctrl.buildLaporanItems(c, awal, akhir, c.Query("status"), true)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data laporan")
	}

	return helper.JsonOK(c, "Data laporan berhasil diambil", fiber.Map{
		"laporan":    items,
		"statistics": calculateRencanaStatistics(items),
		"periode": fiber.Map{
			"awal":  awal.Format("2006-01-02"),
			"akhir": akhir.Format("2006-01-02"),
			"jenis": jenis,
		},
	})
}

// =============================
// 🧾 POST /ppic/production-reports/generate
// =============================
func (ctrl *PPICReportController) Generate(c *fiber.Ctx) error {
	awal, akhir, jenis := resolvePeriode(c)

	items, err := ctrl.buildLaporanItems(c, awal, akhir, "", true)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal generate laporan")
	}

	// hanya rencana yang sudah lolos persetujuan
	filtered := items[:0]
	for _, item := range items {
		if item.Status == planModel.PlanStatusDisetujui || item.Status == planModel.PlanStatusOrder {
			filtered = append(filtered, item)
		}
	}

	// nomor virtual, laporan PPIC tidak disimpan ke tabel
	var nomor string
	if jenis == "mingguan" {
		_, minggu := awal.ISOWeek()
		nomor = fmt.Sprintf("LAP/W%d/%d/%s", minggu, awal.Year(), time.Now().Format("150405"))
	} else {
		nomor = fmt.Sprintf("LAP/%s/%d/%s",
			strings.ToUpper(awal.Format("Jan")), awal.Year(), time.Now().Format("150405"))
	}

	userName, _ := c.Locals("user_name").(string)

	return helper.JsonOK(c, "Laporan berhasil digenerate", fiber.Map{
		"nomor_laporan": nomor,
		"laporan":       filtered,
		"statistics":    calculateRencanaStatistics(filtered),
		"periode": fiber.Map{
			"awal":  awal.Format("2006-01-02"),
			"akhir": akhir.Format("2006-01-02"),
			"jenis": jenis,
		},
		"generated_at": time.Now().Format("2006-01-02 15:04:05"),
		"generated_by": userName,
	})
}

// =============================
// 📥 GET /ppic/production-reports/export
// =============================
func (ctrl *PPICReportController) Export(c *fiber.Ctx) error {
	awal, akhir, jenis := resolvePeriode(c)

	items, err := ctrl.buildLaporanItems(c, awal, akhir, c.Query("status"), false)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal export laporan")
	}

	const sheet = "Rencana Produksi"
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheet)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat file Excel")
	}
	f.SetActiveSheet(index)

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 16},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat file Excel")
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#D3D3D3"}, Pattern: 1},
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat file Excel")
	}

	f.SetCellValue(sheet, "A1", "LAPORAN RENCANA PRODUKSI")
	f.MergeCell(sheet, "A1", "M1")
	f.SetCellStyle(sheet, "A1", "M1", titleStyle)
	f.SetCellValue(sheet, "A2",
		fmt.Sprintf("Periode: %s - %s", awal.Format("02/01/2006"), akhir.Format("02/01/2006")))
	f.MergeCell(sheet, "A2", "M2")
	f.SetCellValue(sheet, "A3", "Tanggal Export: "+time.Now().Format("02/01/2006 15:04:05"))
	f.MergeCell(sheet, "A3", "M3")

	headers := []string{
		"No", "Nomor Rencana", "Produk", "Kode Produk", "Jumlah Rencana", "Satuan",
		"Status", "Progress", "Batas Selesai", "Keterlambatan", "Dibuat Oleh",
		"Disetujui Oleh", "Tanggal Dibuat",
	}
	for i, header := range headers {
		cell := fmt.Sprintf("%s5", string(rune('A'+i)))
		f.SetCellValue(sheet, cell, header)
		f.SetCellStyle(sheet, cell, cell, headerStyle)
	}

	for i, item := range items {
		row := i + 6
		terlambat := "Tidak"
		if item.Terlambat {
			terlambat = "Ya"
		}
		batas := "-"
		if item.BatasSelesai != nil {
			batas = item.BatasSelesai.Format("02/01/2006")
		}
		disetujui := "-"
		if item.DisetujuiOleh != nil {
			disetujui = *item.DisetujuiOleh
		}
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), i+1)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), item.NomorRencana)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), item.Produk["nama"])
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), item.Produk["kode"])
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), item.JumlahRencana)
		f.SetCellValue(sheet, fmt.Sprintf("F%d", row), item.Produk["satuan"])
		f.SetCellValue(sheet, fmt.Sprintf("G%d", row), strings.ReplaceAll(item.Status, "_", " "))
		f.SetCellValue(sheet, fmt.Sprintf("H%d", row), fmt.Sprintf("%d%%", item.Progress))
		f.SetCellValue(sheet, fmt.Sprintf("I%d", row), batas)
		f.SetCellValue(sheet, fmt.Sprintf("J%d", row), terlambat)
		f.SetCellValue(sheet, fmt.Sprintf("K%d", row), item.DibuatOleh)
		f.SetCellValue(sheet, fmt.Sprintf("L%d", row), disetujui)
		f.SetCellValue(sheet, fmt.Sprintf("M%d", row), item.TanggalDibuat.Format("02/01/2006"))
	}

	f.SetColWidth(sheet, "A", "M", 18)
	f.DeleteSheet("Sheet1")

	var filename string
	if jenis == "mingguan" {
		_, minggu := awal.ISOWeek()
		filename = fmt.Sprintf("Laporan_Rencana_Produksi_mingguan_%d_Minggu_%d.xlsx", awal.Year(), minggu)
	} else {
		filename = fmt.Sprintf("Laporan_Rencana_Produksi_bulanan_%d_%s.xlsx", awal.Year(), awal.Format("January"))
	}

	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	c.Set(fiber.HeaderCacheControl, "max-age=0")

	return f.Write(c.Response().BodyWriter())
}
