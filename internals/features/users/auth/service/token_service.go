// internals/features/users/auth/service/token_service.go
package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	"produksiku_backend/internals/configs"
	authModel "produksiku_backend/internals/features/users/auth/model"
	userModel "produksiku_backend/internals/features/users/user/model"
)

const accessTTLDefault = 24 * time.Hour

func getJWTSecret() (string, error) {
	secret := strings.TrimSpace(configs.JWTSecret)
	if secret == "" {
		return "", fiber.NewError(fiber.StatusInternalServerError, "JWT_SECRET belum diset")
	}
	return secret, nil
}

// ComputeTokenHash: HMAC-SHA256 atas token; yang disimpan di DB hanya hash.
func ComputeTokenHash(token, secret string) []byte {
	m := hmac.New(sha256.New, []byte(secret))
	_, _ = m.Write([]byte(token))
	return m.Sum(nil)
}

// IssueToken menerbitkan JWT untuk user dan mencatat hash-nya di api_tokens.
// Kebijakan single-session: semua token lama milik user dihapus dalam
// transaksi yang sama sebelum token baru ditulis.
func IssueToken(db *gorm.DB, user *userModel.UserModel, userAgent, ip string) (string, error) {
	secret, err := getJWTSecret()
	if err != nil {
		return "", err
	}

	now := time.Now().UTC()
	exp := now.Add(accessTTLDefault)

	claims := jwt.MapClaims{
		"sub":        user.ID.String(),
		"user_name":  user.Name,
		"role":       user.Role,
		"department": user.Department,
		"iat":        now.Unix(),
		"exp":        exp.Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return "", fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat token")
	}

	row := authModel.ApiTokenModel{
		UserID:    user.ID,
		TokenHash: ComputeTokenHash(signed, secret),
		ExpiresAt: exp,
	}
	if ua := strings.TrimSpace(userAgent); ua != "" {
		row.UserAgent = &ua
	}
	if ipTrim := strings.TrimSpace(ip); ipTrim != "" {
		row.IP = &ipTrim
	}

	if err := db.Transaction(func(tx *gorm.DB) error {
		// single-session: token lama dicabut saat login baru
		if err := tx.Where("user_id = ?", user.ID).
			Delete(&authModel.ApiTokenModel{}).Error; err != nil {
			return err
		}
		return tx.Create(&row).Error
	}); err != nil {
		return "", fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan token")
	}

	return signed, nil
}

// TokenIsActive memastikan hash token masih tercatat (belum dicabut).
func TokenIsActive(db *gorm.DB, token string) (bool, error) {
	secret, err := getJWTSecret()
	if err != nil {
		return false, err
	}
	var exists bool
	if err := db.Raw(
		`SELECT EXISTS(SELECT 1 FROM api_tokens WHERE token_hash = ? AND expires_at > now())`,
		ComputeTokenHash(token, secret),
	).Scan(&exists).Error; err != nil {
		return false, err
	}
	return exists, nil
}

// RevokeToken mencabut hanya token yang sedang dipakai (logout).
func RevokeToken(db *gorm.DB, token string) error {
	secret, err := getJWTSecret()
	if err != nil {
		return err
	}
	return db.Where("token_hash = ?", ComputeTokenHash(token, secret)).
		Delete(&authModel.ApiTokenModel{}).Error
}
