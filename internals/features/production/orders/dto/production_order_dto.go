// internals/features/production/orders/dto/production_order_dto.go
package dto

type RejectDetailRequest struct {
	JenisCacat string `json:"jenis_cacat" validate:"required,max=100"`
	Jumlah     int    `json:"jumlah" validate:"required,min=1"`
}

type CompleteOrderRequest struct {
	JumlahAktual int                   `json:"jumlah_aktual" validate:"min=0"`
	JumlahReject int                   `json:"jumlah_reject" validate:"min=0"`
	Catatan      *string               `json:"catatan" validate:"omitempty,max=500"`
	Rejects      []RejectDetailRequest `json:"rejects" validate:"omitempty,dive"`
}

type UpdateProgressRequest struct {
	Progress int     `json:"progress" validate:"min=0,max=100"`
	Catatan  *string `json:"catatan" validate:"omitempty,max=500"`
}
