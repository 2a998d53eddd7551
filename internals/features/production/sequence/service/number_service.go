// internals/features/production/sequence/service/number_service.go
package service

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

const (
	SequencePlan   = "production_plan"
	SequenceOrder  = "production_order"
	SequenceReport = "production_report"
)

// NextValue menaikkan counter (name, scope) secara atomik dan mengembalikan
// nilai barunya. Upsert tunggal supaya aman dipanggil bersamaan tanpa
// membaca baris terakhir lebih dulu.
func NextValue(db *gorm.DB, name, scope string) (int64, error) {
	var next int64
	err := db.Raw(`
		INSERT INTO number_sequences (name, scope, last_value, updated_at)
		VALUES (?, ?, 1, now())
		ON CONFLICT (name, scope)
		DO UPDATE SET last_value = number_sequences.last_value + 1, updated_at = now()
		RETURNING last_value
	`, name, scope).Scan(&next).Error
	if err != nil {
		return 0, err
	}
	return next, nil
}

func FormatPlanNumber(t time.Time, seq int64) string {
	return fmt.Sprintf("RP-%s-%04d", t.Format("20060102"), seq)
}

func FormatOrderNumber(seq int64) string {
	return fmt.Sprintf("ORD-%04d", seq)
}

func FormatReportNumber(t time.Time, seq int64) string {
	return fmt.Sprintf("LAP-PROD-%s-%04d", t.Format("20060102"), seq)
}

// DailyScope dipakai sebagai scope counter harian.
func DailyScope(t time.Time) string {
	return t.Format("20060102")
}

// NextPlanNumber mengambil nomor rencana berikutnya untuk tanggal t.
func NextPlanNumber(db *gorm.DB, t time.Time) (string, error) {
	seq, err := NextValue(db, SequencePlan, DailyScope(t))
	if err != nil {
		return "", err
	}
	return FormatPlanNumber(t, seq), nil
}

// NextOrderNumber mengambil nomor order berikutnya (counter global).
func NextOrderNumber(db *gorm.DB) (string, error) {
	seq, err := NextValue(db, SequenceOrder, "")
	if err != nil {
		return "", err
	}
	return FormatOrderNumber(seq), nil
}

// NextReportNumber mengambil nomor laporan berikutnya untuk tanggal t.
func NextReportNumber(db *gorm.DB, t time.Time) (string, error) {
	seq, err := NextValue(db, SequenceReport, DailyScope(t))
	if err != nil {
		return "", err
	}
	return FormatReportNumber(t, seq), nil
}
