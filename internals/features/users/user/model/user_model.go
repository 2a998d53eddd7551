package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel merepresentasikan tabel users di database.
// Department (ppic|produksi) + Role membatasi akses route; Status active
// wajib untuk login maupun setiap request ber-token.
type UserModel struct {
	ID         uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name       string    `gorm:"size:100;not null" json:"name"`
	Email      string    `gorm:"size:255;unique;not null" json:"email"`
	Password   string    `gorm:"not null" json:"-"`
	Role       string    `gorm:"type:varchar(30);not null" json:"role"`
	Status     string    `gorm:"type:varchar(20);not null;default:'active'" json:"status"`
	Department string    `gorm:"type:varchar(20);not null" json:"department"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName memastikan nama tabel sesuai dengan skema database
func (UserModel) TableName() string {
	return "users"
}

func (u *UserModel) IsActive() bool {
	return u.Status == "active"
}
