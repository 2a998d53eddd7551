// internals/features/production/plans/model/production_plan_history_model.go
package model

import (
	"time"

	"github.com/google/uuid"

	userModel "produksiku_backend/internals/features/users/user/model"
)

// ProductionPlanHistoryModel adalah jejak audit rencana produksi.
// Baris hanya ditambah, tidak pernah diubah atau dihapus.
type ProductionPlanHistoryModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	RencanaID     uuid.UUID `gorm:"type:uuid;not null;index" json:"rencana_id"`
	UserID        uuid.UUID `gorm:"type:uuid;not null" json:"user_id"`
	Aksi          string    `gorm:"type:varchar(50);not null" json:"aksi"`
	StatusSebelum *string   `gorm:"type:varchar(30)" json:"status_sebelum"`
	StatusBaru    string    `gorm:"type:varchar(30);not null" json:"status_baru"`
	Keterangan    *string   `gorm:"type:text" json:"keterangan"`
	WaktuAksi     time.Time `gorm:"type:timestamptz;not null;default:now()" json:"waktu_aksi"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	User *userModel.UserModel `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (ProductionPlanHistoryModel) TableName() string {
	return "production_plan_histories"
}
