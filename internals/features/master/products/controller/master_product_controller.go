// internals/features/master/products/controller/master_product_controller.go
package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"produksiku_backend/internals/features/master/products/dto"
	"produksiku_backend/internals/features/master/products/model"
	helper "produksiku_backend/internals/helpers"
)

type MasterProductController struct {
	DB *gorm.DB
}

func NewMasterProductController(db *gorm.DB) *MasterProductController {
	return &MasterProductController{DB: db}
}

// =============================
// 📄 GET /master-products
// =============================
func (ctrl *MasterProductController) Index(c *fiber.Ctx) error {
	var produk []model.MasterProductModel
	if err := ctrl.DB.WithContext(c.Context()).
		Order("nama ASC").
		Find(&produk).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data produk")
	}
	return helper.JsonCounted(c, "Daftar produk berhasil diambil", produk, len(produk))
}

// =============================
// ➕ POST /master-products
// =============================
func (ctrl *MasterProductController) Store(c *fiber.Ctx) error {
	var req dto.MasterProductRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := helper.ValidateStruct(c, &req); err != nil {
		return err
	}

	req.Kode = strings.TrimSpace(req.Kode)

	var count int64
	if err := ctrl.DB.WithContext(c.Context()).
		Model(&model.MasterProductModel{}).
		Where("kode = ?", req.Kode).
		Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa kode produk")
	}
	if count > 0 {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Kode produk sudah digunakan")
	}

	produk := model.MasterProductModel{
		Kode:      req.Kode,
		Nama:      req.Nama,
		Satuan:    req.Satuan,
		Deskripsi: req.Deskripsi,
	}
	if err := ctrl.DB.WithContext(c.Context()).Create(&produk).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan produk")
	}

	return helper.JsonCreated(c, "Produk berhasil ditambahkan", produk)
}

// =============================
// 🔍 GET /master-products/:id
// =============================
func (ctrl *MasterProductController) Show(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID produk tidak valid")
	}

	var produk model.MasterProductModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&produk, "id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Produk tidak ditemukan")
	}

	return helper.JsonOK(c, "Detail produk berhasil diambil", produk)
}

// =============================
// ✏️ PUT /master-products/:id
// =============================
func (ctrl *MasterProductController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID produk tidak valid")
	}

	var req dto.MasterProductRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := helper.ValidateStruct(c, &req); err != nil {
		return err
	}

	req.Kode = strings.TrimSpace(req.Kode)

	var produk model.MasterProductModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&produk, "id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Produk tidak ditemukan")
	}

	// kode unik, kecuali milik baris ini sendiri
	var count int64
	if err := ctrl.DB.WithContext(c.Context()).
		Model(&model.MasterProductModel{}).
		Where("kode = ? AND id <> ?", req.Kode, id).
		Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa kode produk")
	}
	if count > 0 {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Kode produk sudah digunakan")
	}

	produk.Kode = req.Kode
	produk.Nama = req.Nama
	produk.Satuan = req.Satuan
	produk.Deskripsi = req.Deskripsi
	if err := ctrl.DB.WithContext(c.Context()).Save(&produk).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui produk")
	}

	return helper.JsonUpdated(c, "Produk berhasil diperbarui", produk)
}

// =============================
// 🗑️ DELETE /master-products/:id
// =============================
func (ctrl *MasterProductController) Destroy(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID produk tidak valid")
	}

	var produk model.MasterProductModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&produk, "id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Produk tidak ditemukan")
	}

	// produk yang masih dirujuk rencana/order produksi tidak boleh dihapus
	var refs int64
	if err := ctrl.DB.WithContext(c.Context()).
		Table("production_plans").
		Where("produk_id = ?", id).
		Count(&refs).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa relasi produk")
	}
	if refs == 0 {
		if err := ctrl.DB.WithContext(c.Context()).
			Table("production_orders").
			Where("produk_id = ?", id).
			Count(&refs).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa relasi produk")
		}
	}
	if refs > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Produk masih digunakan pada rencana atau order produksi")
	}

	if err := ctrl.DB.WithContext(c.Context()).Delete(&produk).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus produk")
	}

	return helper.JsonDeleted(c, "Produk berhasil dihapus", fiber.Map{"id": id})
}
