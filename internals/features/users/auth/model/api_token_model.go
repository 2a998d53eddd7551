package model

import (
	"time"

	"github.com/google/uuid"
)

// ApiTokenModel menyimpan HASH token akses yang masih berlaku.
// Kebijakan single-session: login menghapus semua baris milik user sebelum
// menulis baris baru; logout menghapus baris token yang sedang dipakai.
type ApiTokenModel struct {
	ID     uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID uuid.UUID `gorm:"column:user_id;type:uuid;not null;index" json:"user_id"`

	// simpan HASH token (bukan plaintext)
	TokenHash []byte `gorm:"column:token_hash;type:bytea;not null;uniqueIndex" json:"-"`

	ExpiresAt time.Time `gorm:"column:expires_at;type:timestamptz;not null" json:"expires_at"`

	UserAgent *string `gorm:"column:user_agent" json:"user_agent,omitempty"`
	IP        *string `gorm:"column:ip;type:inet" json:"ip,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;type:timestamptz;autoCreateTime" json:"created_at"`
}

// TableName override
func (ApiTokenModel) TableName() string {
	return "api_tokens"
}
