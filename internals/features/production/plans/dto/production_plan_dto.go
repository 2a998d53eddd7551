// internals/features/production/plans/dto/production_plan_dto.go
package dto

type ProductionPlanCreateRequest struct {
	ProdukID     string  `json:"produk_id" validate:"required,uuid"`
	Jumlah       int     `json:"jumlah" validate:"required,min=1"`
	BatasSelesai string  `json:"batas_selesai" validate:"required,datetime=2006-01-02"`
	Catatan      *string `json:"catatan" validate:"omitempty,max=500"`
}

type ProductionPlanUpdateRequest struct {
	ProdukID     *string `json:"produk_id" validate:"omitempty,uuid"`
	Jumlah       *int    `json:"jumlah" validate:"omitempty,min=1"`
	BatasSelesai *string `json:"batas_selesai" validate:"omitempty,datetime=2006-01-02"`
	Catatan      *string `json:"catatan" validate:"omitempty,max=500"`
}

type ManagerApprovalRequest struct {
	Status  string  `json:"status" validate:"required,oneof=disetujui ditolak"`
	Catatan *string `json:"catatan" validate:"omitempty,max=500"`
}
