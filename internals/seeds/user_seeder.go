// internals/seeds/user_seeder.go
package seeds

import (
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"produksiku_backend/internals/constants"
	userModel "produksiku_backend/internals/features/users/user/model"
)

// SeedUsers mengisi empat akun demo (manager & staff untuk tiap
// departemen). Aman dipanggil berulang, user yang sudah ada dilewati.
func SeedUsers(db *gorm.DB) error {
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	users := []userModel.UserModel{
		{
			Name:       "Manager PPIC",
			Email:      "manager.ppic@example.com",
			Role:       constants.RoleManagerPPIC,
			Department: constants.DepartmentPPIC,
		},
		{
			Name:       "Staff PPIC",
			Email:      "staff.ppic@example.com",
			Role:       constants.RoleStaffPPIC,
			Department: constants.DepartmentPPIC,
		},
		{
			Name:       "Manager Produksi",
			Email:      "manager.produksi@example.com",
			Role:       constants.RoleManagerProduksi,
			Department: constants.DepartmentProduksi,
		},
		{
			Name:       "Staff Produksi",
			Email:      "staff.produksi@example.com",
			Role:       constants.RoleStaffProduksi,
			Department: constants.DepartmentProduksi,
		},
	}

	for i := range users {
		users[i].Password = string(hash)
		users[i].Status = constants.UserStatusActive

		var count int64
		if err := db.Model(&userModel.UserModel{}).
			Where("email = ?", users[i].Email).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		if err := db.Create(&users[i]).Error; err != nil {
			return err
		}
		log.Printf("[SEED] 🌱 user %s dibuat", users[i].Email)
	}

	return nil
}
