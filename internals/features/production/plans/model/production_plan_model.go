// internals/features/production/plans/model/production_plan_model.go
package model

import (
	"time"

	"github.com/google/uuid"

	productModel "produksiku_backend/internals/features/master/products/model"
	userModel "produksiku_backend/internals/features/users/user/model"
)

type ProductionPlanModel struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	NomorRencana  string     `gorm:"type:varchar(50);uniqueIndex;not null" json:"nomor_rencana"`
	ProdukID      uuid.UUID  `gorm:"type:uuid;not null;index" json:"produk_id"`
	Jumlah        int        `gorm:"not null" json:"jumlah"`
	DibuatOleh    uuid.UUID  `gorm:"type:uuid;not null" json:"dibuat_oleh"`
	DisetujuiOleh *uuid.UUID `gorm:"type:uuid" json:"disetujui_oleh"`
	Status        string     `gorm:"type:varchar(30);not null;default:'draft';index" json:"status"`
	BatasSelesai  *time.Time `gorm:"type:date" json:"batas_selesai"`
	Catatan       *string    `gorm:"type:text" json:"catatan"`
	DiajukanPada  *time.Time `gorm:"type:timestamptz" json:"diajukan_pada"`
	DisetujuiPada *time.Time `gorm:"type:timestamptz" json:"disetujui_pada"`
	DitolakPada   *time.Time `gorm:"type:timestamptz" json:"ditolak_pada"`
	CreatedAt     time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	Produk    *productModel.MasterProductModel `gorm:"foreignKey:ProdukID" json:"produk,omitempty"`
	Pembuat   *userModel.UserModel             `gorm:"foreignKey:DibuatOleh" json:"pembuat,omitempty"`
	Penyetuju *userModel.UserModel             `gorm:"foreignKey:DisetujuiOleh" json:"penyetuju,omitempty"`
	Histories []ProductionPlanHistoryModel     `gorm:"foreignKey:RencanaID" json:"histories,omitempty"`
}

func (ProductionPlanModel) TableName() string {
	return "production_plans"
}
