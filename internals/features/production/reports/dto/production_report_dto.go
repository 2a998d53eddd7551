// internals/features/production/reports/dto/production_report_dto.go
package dto

type GenerateReportRequest struct {
	PeriodeAwal  string  `json:"periode_awal" validate:"required,datetime=2006-01-02"`
	PeriodeAkhir string  `json:"periode_akhir" validate:"required,datetime=2006-01-02"`
	Catatan      *string `json:"catatan" validate:"omitempty,max=500"`
}
