// internals/features/production/reports/service/stats_service.go
package service

import (
	"math"
	"time"

	"gorm.io/gorm"

	planModel "produksiku_backend/internals/features/production/plans/model"
)

// PeriodeInfo merangkum rentang tanggal laporan.
type PeriodeInfo struct {
	Awal  string `json:"awal"`
	Akhir string `json:"akhir"`
	Hari  int    `json:"hari"`
}

// RingkasanProduksi adalah agregat utama satu periode.
type RingkasanProduksi struct {
	TotalOrder    int64   `json:"total_order"`
	TotalProduksi int64   `json:"total_produksi"`
	TotalReject   int64   `json:"total_reject"`
	TotalTarget   int64   `json:"total_target"`
	Efisiensi     float64 `json:"efisiensi"`
	TingkatReject float64 `json:"tingkat_reject"`
}

// ProdukStat adalah rollup per produk.
type ProdukStat struct {
	Kode          string  `json:"kode"`
	Produk        string  `json:"produk"`
	TotalOrder    int64   `json:"total_order"`
	TotalProduksi int64   `json:"total_produksi"`
	TotalReject   int64   `json:"total_reject"`
	TotalTarget   int64   `json:"total_target"`
	Efisiensi     float64 `json:"efisiensi"`
}

// HarianStat adalah deret harian dalam periode.
type HarianStat struct {
	Tanggal        string `json:"tanggal"`
	TotalOrder     int64  `json:"total_order"`
	ProduksiHarian int64  `json:"produksi_harian"`
	RejectHarian   int64  `json:"reject_harian"`
}

// ProductionStats adalah statistik lengkap satu periode laporan.
type ProductionStats struct {
	Periode         PeriodeInfo       `json:"periode"`
	Ringkasan       RingkasanProduksi `json:"ringkasan"`
	StatusOrder     map[string]int64  `json:"status_order"`
	StatistikProduk []ProdukStat      `json:"statistik_produk"`
	StatistikHarian []HarianStat      `json:"statistik_harian"`
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}

// Efisiensi: persentase produksi terhadap target, dua desimal.
// Target nol mengembalikan 0, bukan pembagian error.
func Efisiensi(produksi, target int64) float64 {
	if target <= 0 {
		return 0
	}
	return round2(float64(produksi) / float64(target) * 100)
}

// TingkatReject: persentase reject terhadap produksi aktual, dua desimal.
func TingkatReject(reject, produksi int64) float64 {
	if produksi <= 0 {
		return 0
	}
	return round2(float64(reject) / float64(produksi) * 100)
}

// EfisiensiRencana: hasil bersih (selesai dikurangi reject) terhadap
// jumlah rencana, dua desimal. Rencana nol mengembalikan 0.
func EfisiensiRencana(selesai, reject, rencana int64) float64 {
	if rencana <= 0 {
		return 0
	}
	return round2(float64(selesai-reject) / float64(rencana) * 100)
}

// PlanProgress memetakan status rencana ke persentase kemajuan kasar.
func PlanProgress(status string) int {
	switch status {
	case planModel.PlanStatusDraft:
		return 0
	case planModel.PlanStatusMenunggu:
		return 30
	case planModel.PlanStatusDisetujui:
		return 50
	case planModel.PlanStatusOrder:
		return 100
	default:
		return 0
	}
}

// CalculateProductionStats menghitung seluruh agregat order produksi
// dalam rentang [awal, akhir] inklusif.
func CalculateProductionStats(db *gorm.DB, awal, akhir time.Time) (*ProductionStats, error) {
	akhirBatas := akhir.AddDate(0, 0, 1)

	var totalOrder, totalTarget int64
	if err := db.Table("production_orders").
		Where("created_at >= ? AND created_at < ?", awal, akhirBatas).
		Count(&totalOrder).Error; err != nil {
		return nil, err
	}
	if err := db.Table("production_orders").
		Where("created_at >= ? AND created_at < ?", awal, akhirBatas).
		Select("COALESCE(SUM(target_jumlah), 0)").
		Scan(&totalTarget).Error; err != nil {
		return nil, err
	}

	var totals struct {
		Produksi int64
		Reject   int64
	}
	if err := db.Table("production_orders").
		Where("status = ? AND selesai_pada >= ? AND selesai_pada < ?", "selesai", awal, akhirBatas).
		Select("COALESCE(SUM(jumlah_aktual), 0) AS produksi, COALESCE(SUM(jumlah_reject), 0) AS reject").
		Scan(&totals).Error; err != nil {
		return nil, err
	}

	type statusRow struct {
		Status string
		Total  int64
	}
	var statusRows []statusRow
	if err := db.Table("production_orders").
		Where("created_at >= ? AND created_at < ?", awal, akhirBatas).
		Select("status, COUNT(*) AS total").
		Group("status").
		Scan(&statusRows).Error; err != nil {
		return nil, err
	}
	statusOrder := make(map[string]int64, len(statusRows))
	for _, r := range statusRows {
		statusOrder[r.Status] = r.Total
	}

	type produkRow struct {
		Kode          string
		Produk        string
		TotalOrder    int64
		TotalProduksi int64
		TotalReject   int64
		TotalTarget   int64
	}
	var produkRows []produkRow
	if err := db.Table("production_orders AS po").
		Joins("JOIN master_products AS mp ON po.produk_id = mp.id").
		Where("po.created_at >= ? AND po.created_at < ?", awal, akhirBatas).
		Select(`mp.kode,
			mp.nama AS produk,
			COUNT(po.id) AS total_order,
			COALESCE(SUM(po.jumlah_aktual), 0) AS total_produksi,
			COALESCE(SUM(po.jumlah_reject), 0) AS total_reject,
			COALESCE(SUM(po.target_jumlah), 0) AS total_target`).
		Group("mp.id, mp.kode, mp.nama").
		Order("mp.nama").
		Scan(&produkRows).Error; err != nil {
		return nil, err
	}
	produkStats := make([]ProdukStat, 0, len(produkRows))
	for _, r := range produkRows {
		produkStats = append(produkStats, ProdukStat{
			Kode:          r.Kode,
			Produk:        r.Produk,
			TotalOrder:    r.TotalOrder,
			TotalProduksi: r.TotalProduksi,
			TotalReject:   r.TotalReject,
			TotalTarget:   r.TotalTarget,
			Efisiensi:     Efisiensi(r.TotalProduksi, r.TotalTarget),
		})
	}

	type harianRow struct {
		Tanggal        time.Time
		TotalOrder     int64
		ProduksiHarian int64
		RejectHarian   int64
	}
	var harianRows []harianRow
	if err := db.Table("production_orders").
		Where("created_at >= ? AND created_at < ?", awal, akhirBatas).
		Select(`created_at::date AS tanggal,
			COUNT(*) AS total_order,
			COALESCE(SUM(CASE WHEN status = 'selesai' THEN jumlah_aktual ELSE 0 END), 0) AS produksi_harian,
			COALESCE(SUM(CASE WHEN status = 'selesai' THEN jumlah_reject ELSE 0 END), 0) AS reject_harian`).
		Group("created_at::date").
		Order("tanggal").
		Scan(&harianRows).Error; err != nil {
		return nil, err
	}
	harian := make([]HarianStat, 0, len(harianRows))
	for _, r := range harianRows {
		harian = append(harian, HarianStat{
			Tanggal:        r.Tanggal.Format("2006-01-02"),
			TotalOrder:     r.TotalOrder,
			ProduksiHarian: r.ProduksiHarian,
			RejectHarian:   r.RejectHarian,
		})
	}

	return &ProductionStats{
		Periode: PeriodeInfo{
			Awal:  awal.Format("02/01/2006"),
			Akhir: akhir.Format("02/01/2006"),
			Hari:  int(akhir.Sub(awal).Hours()/24) + 1,
		},
		Ringkasan: RingkasanProduksi{
			TotalOrder:    totalOrder,
			TotalProduksi: totals.Produksi,
			TotalReject:   totals.Reject,
			TotalTarget:   totalTarget,
			Efisiensi:     Efisiensi(totals.Produksi, totalTarget),
			TingkatReject: TingkatReject(totals.Reject, totals.Produksi),
		},
		StatusOrder:     statusOrder,
		StatistikProduk: produkStats,
		StatistikHarian: harian,
	}, nil
}
