// internals/features/production/sequence/model/number_sequence_model.go
package model

import "time"

// NumberSequenceModel menyimpan counter penomoran dokumen.
// Scope kosong untuk counter global (order), scope tanggal YYYYMMDD
// untuk counter harian (rencana dan laporan).
type NumberSequenceModel struct {
	Name      string    `gorm:"type:varchar(30);primaryKey" json:"name"`
	Scope     string    `gorm:"type:varchar(20);primaryKey;default:''" json:"scope"`
	LastValue int64     `gorm:"not null;default:0" json:"last_value"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (NumberSequenceModel) TableName() string {
	return "number_sequences"
}
