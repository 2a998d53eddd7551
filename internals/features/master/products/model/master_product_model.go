// internals/features/master/products/model/master_product_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type MasterProductModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Kode      string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"kode"`
	Nama      string    `gorm:"type:varchar(255);not null" json:"nama"`
	Satuan    string    `gorm:"type:varchar(50);not null" json:"satuan"`
	Deskripsi *string   `gorm:"type:text" json:"deskripsi"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (MasterProductModel) TableName() string {
	return "master_products"
}
