// internals/features/production/orders/model/production_reject_model.go
package model

import (
	"time"

	"github.com/google/uuid"

	userModel "produksiku_backend/internals/features/users/user/model"
)

// ProductionRejectModel merinci cacat per jenis pada satu order.
type ProductionRejectModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	OrderID     uuid.UUID `gorm:"type:uuid;not null;index" json:"order_id"`
	JenisCacat  string    `gorm:"type:varchar(100);not null" json:"jenis_cacat"`
	Jumlah      int       `gorm:"not null" json:"jumlah"`
	DicatatOleh uuid.UUID `gorm:"type:uuid;not null" json:"dicatat_oleh"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Pencatat *userModel.UserModel `gorm:"foreignKey:DicatatOleh" json:"pencatat,omitempty"`
}

func (ProductionRejectModel) TableName() string {
	return "production_rejects"
}
