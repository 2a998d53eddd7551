// internals/features/production/reports/service/excel_service.go
package service

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"produksiku_backend/internals/features/production/reports/model"
)

const laporanSheet = "Laporan Produksi"

// BuildLaporanExcel merakit workbook laporan produksi: judul, ringkasan,
// rekap status order, dan statistik per produk.
func BuildLaporanExcel(laporan *model.ProductionReportModel, stats *ProductionStats, dibuatOleh string) (*excelize.File, error) {
	f := excelize.NewFile()

	index, err := f.NewSheet(laporanSheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 16},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return nil, err
	}
	centerStyle, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return nil, err
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#D3D3D3"}, Pattern: 1},
	})
	if err != nil {
		return nil, err
	}

	// kop laporan
	f.SetCellValue(laporanSheet, "A1", "LAPORAN PRODUKSI")
	f.MergeCell(laporanSheet, "A1", "J1")
	f.SetCellStyle(laporanSheet, "A1", "J1", titleStyle)

	kop := []string{
		"Nomor Laporan: " + laporan.NomorLaporan,
		fmt.Sprintf("Periode: %s - %s", stats.Periode.Awal, stats.Periode.Akhir),
		"Tanggal Export: " + time.Now().Format("02/01/2006 15:04:05"),
		"Dibuat Oleh: " + dibuatOleh,
	}
	for i, line := range kop {
		row := i + 2
		cell := fmt.Sprintf("A%d", row)
		f.SetCellValue(laporanSheet, cell, line)
		f.MergeCell(laporanSheet, cell, fmt.Sprintf("J%d", row))
		f.SetCellStyle(laporanSheet, cell, fmt.Sprintf("J%d", row), centerStyle)
	}

	// ringkasan produksi
	f.SetCellValue(laporanSheet, "A7", "RINGKASAN PRODUKSI")
	f.MergeCell(laporanSheet, "A7", "B7")
	f.SetCellStyle(laporanSheet, "A7", "B7", headerStyle)

	f.SetCellValue(laporanSheet, "A8", "Metrik")
	f.SetCellValue(laporanSheet, "B8", "Nilai")
	f.SetCellStyle(laporanSheet, "A8", "B8", headerStyle)

	ringkasan := [][2]interface{}{
		{"Total Order", stats.Ringkasan.TotalOrder},
		{"Total Target Produksi", stats.Ringkasan.TotalTarget},
		{"Total Produksi Aktual", stats.Ringkasan.TotalProduksi},
		{"Total Reject", stats.Ringkasan.TotalReject},
		{"Efisiensi Produksi", fmt.Sprintf("%.2f%%", stats.Ringkasan.Efisiensi)},
		{"Tingkat Reject", fmt.Sprintf("%.2f%%", stats.Ringkasan.TingkatReject)},
	}
	row := 9
	for _, item := range ringkasan {
		f.SetCellValue(laporanSheet, fmt.Sprintf("A%d", row), item[0])
		f.SetCellValue(laporanSheet, fmt.Sprintf("B%d", row), item[1])
		row++
	}

	// rekap status order
	row += 2
	f.SetCellValue(laporanSheet, fmt.Sprintf("A%d", row), "STATUS ORDER")
	f.MergeCell(laporanSheet, fmt.Sprintf("A%d", row), fmt.Sprintf("B%d", row))
	f.SetCellStyle(laporanSheet, fmt.Sprintf("A%d", row), fmt.Sprintf("B%d", row), headerStyle)
	row++
	f.SetCellValue(laporanSheet, fmt.Sprintf("A%d", row), "Status")
	f.SetCellValue(laporanSheet, fmt.Sprintf("B%d", row), "Jumlah")
	f.SetCellStyle(laporanSheet, fmt.Sprintf("A%d", row), fmt.Sprintf("B%d", row), headerStyle)
	row++
	if len(stats.StatusOrder) == 0 {
		f.SetCellValue(laporanSheet, fmt.Sprintf("A%d", row), "Tidak ada data")
		f.SetCellValue(laporanSheet, fmt.Sprintf("B%d", row), 0)
	} else {
		for _, status := range []string{"menunggu", "dalam_proses", "selesai"} {
			if total, ok := stats.StatusOrder[status]; ok {
				f.SetCellValue(laporanSheet, fmt.Sprintf("A%d", row), status)
				f.SetCellValue(laporanSheet, fmt.Sprintf("B%d", row), total)
				row++
			}
		}
	}

	// statistik per produk
	f.SetCellValue(laporanSheet, "D7", "STATISTIK PER PRODUK")
	f.MergeCell(laporanSheet, "D7", "J7")
	f.SetCellStyle(laporanSheet, "D7", "J7", headerStyle)

	produkHeaders := []string{"Kode", "Produk", "Order", "Target", "Produksi", "Reject", "Efisiensi"}
	for i, header := range produkHeaders {
		cell := fmt.Sprintf("%s8", string(rune('D'+i)))
		f.SetCellValue(laporanSheet, cell, header)
		f.SetCellStyle(laporanSheet, cell, cell, headerStyle)
	}

	if len(stats.StatistikProduk) == 0 {
		f.SetCellValue(laporanSheet, "D9", "Tidak ada data")
		f.MergeCell(laporanSheet, "D9", "J9")
	} else {
		for i, p := range stats.StatistikProduk {
			r := i + 9
			f.SetCellValue(laporanSheet, fmt.Sprintf("D%d", r), p.Kode)
			f.SetCellValue(laporanSheet, fmt.Sprintf("E%d", r), p.Produk)
			f.SetCellValue(laporanSheet, fmt.Sprintf("F%d", r), p.TotalOrder)
			f.SetCellValue(laporanSheet, fmt.Sprintf("G%d", r), p.TotalTarget)
			f.SetCellValue(laporanSheet, fmt.Sprintf("H%d", r), p.TotalProduksi)
			f.SetCellValue(laporanSheet, fmt.Sprintf("I%d", r), p.TotalReject)
			f.SetCellValue(laporanSheet, fmt.Sprintf("J%d", r), fmt.Sprintf("%.2f%%", p.Efisiensi))
		}
	}

	f.SetColWidth(laporanSheet, "A", "B", 24)
	f.SetColWidth(laporanSheet, "D", "J", 15)
	f.DeleteSheet("Sheet1")

	return f, nil
}
