// internals/features/production/orders/model/production_order_history_model.go
package model

import (
	"time"

	"github.com/google/uuid"

	userModel "produksiku_backend/internals/features/users/user/model"
)

// ProductionOrderHistoryModel adalah jejak audit order produksi.
type ProductionOrderHistoryModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	OrderID          uuid.UUID `gorm:"type:uuid;not null;index" json:"order_id"`
	StatusSebelumnya *string   `gorm:"type:varchar(30)" json:"status_sebelumnya"`
	StatusBaru       string    `gorm:"type:varchar(30);not null" json:"status_baru"`
	DiubahOleh       uuid.UUID `gorm:"type:uuid;not null" json:"diubah_oleh"`
	Keterangan       *string   `gorm:"type:text" json:"keterangan"`
	DiubahPada       time.Time `gorm:"type:timestamptz;not null;default:now();index" json:"diubah_pada"`
	CreatedAt        time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Order     *ProductionOrderModel `gorm:"foreignKey:OrderID" json:"order,omitempty"`
	ChangedBy *userModel.UserModel  `gorm:"foreignKey:DiubahOleh" json:"changed_by,omitempty"`
}

func (ProductionOrderHistoryModel) TableName() string {
	return "production_order_histories"
}
