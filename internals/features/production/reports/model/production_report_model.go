// internals/features/production/reports/model/production_report_model.go
package model

import (
	"time"

	"github.com/google/uuid"

	userModel "produksiku_backend/internals/features/users/user/model"
)

type ProductionReportModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	NomorLaporan string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"nomor_laporan"`
	PeriodeAwal  time.Time `gorm:"type:date;not null" json:"periode_awal"`
	PeriodeAkhir time.Time `gorm:"type:date;not null" json:"periode_akhir"`
	DibuatOleh   uuid.UUID `gorm:"type:uuid;not null" json:"dibuat_oleh"`
	Catatan      *string   `gorm:"type:text" json:"catatan"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Pembuat *userModel.UserModel `gorm:"foreignKey:DibuatOleh" json:"pembuat,omitempty"`
}

func (ProductionReportModel) TableName() string {
	return "production_reports"
}
