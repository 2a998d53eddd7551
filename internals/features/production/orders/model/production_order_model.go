// internals/features/production/orders/model/production_order_model.go
package model

import (
	"time"

	"github.com/google/uuid"

	productModel "produksiku_backend/internals/features/master/products/model"
	planModel "produksiku_backend/internals/features/production/plans/model"
	userModel "produksiku_backend/internals/features/users/user/model"
)

type ProductionOrderModel struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	NomorOrder     string     `gorm:"type:varchar(50);uniqueIndex;not null" json:"nomor_order"`
	RencanaID      uuid.UUID  `gorm:"type:uuid;not null;index" json:"rencana_id"`
	ProdukID       uuid.UUID  `gorm:"type:uuid;not null;index" json:"produk_id"`
	TargetJumlah   int        `gorm:"not null" json:"target_jumlah"`
	JumlahAktual   *int       `json:"jumlah_aktual"`
	JumlahReject   *int       `json:"jumlah_reject"`
	Status         string     `gorm:"type:varchar(30);not null;default:'menunggu';index" json:"status"`
	MulaiPada      *time.Time `gorm:"type:timestamptz" json:"mulai_pada"`
	SelesaiPada    *time.Time `gorm:"type:timestamptz" json:"selesai_pada"`
	DikerjakanOleh *uuid.UUID `gorm:"type:uuid" json:"dikerjakan_oleh"`
	CreatedAt      time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	Produk  *productModel.MasterProductModel `gorm:"foreignKey:ProdukID" json:"produk,omitempty"`
	Rencana *planModel.ProductionPlanModel   `gorm:"foreignKey:RencanaID" json:"rencana,omitempty"`
	Pekerja *userModel.UserModel             `gorm:"foreignKey:DikerjakanOleh" json:"pekerja,omitempty"`
}

func (ProductionOrderModel) TableName() string {
	return "production_orders"
}
