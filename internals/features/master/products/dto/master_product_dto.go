// internals/features/master/products/dto/master_product_dto.go
package dto

type MasterProductRequest struct {
	Kode      string  `json:"kode" validate:"required,max=50"`
	Nama      string  `json:"nama" validate:"required,max=255"`
	Satuan    string  `json:"satuan" validate:"required,max=50"`
	Deskripsi *string `json:"deskripsi" validate:"omitempty"`
}
