// internals/features/production/plans/model/plan_status.go
package model

// Status rencana produksi. Siklus hidup:
// draft -> menunggu_persetujuan -> (disetujui -> menjadi_order) | ditolak
const (
	PlanStatusDraft     = "draft"
	PlanStatusMenunggu  = "menunggu_persetujuan"
	PlanStatusDisetujui = "disetujui"
	PlanStatusDitolak   = "ditolak"
	PlanStatusOrder     = "menjadi_order"
)

// planTransitions memegang seluruh perpindahan status yang sah.
// Perubahan status di luar tabel ini selalu ditolak.
var planTransitions = map[string][]string{
	PlanStatusDraft:     {PlanStatusMenunggu},
	PlanStatusMenunggu:  {PlanStatusDisetujui, PlanStatusDitolak, PlanStatusDraft},
	PlanStatusDisetujui: {PlanStatusOrder},
	PlanStatusDitolak:   {},
	PlanStatusOrder:     {},
}

// PlanStatusValid melaporkan apakah s adalah status rencana yang dikenal.
func PlanStatusValid(s string) bool {
	_, ok := planTransitions[s]
	return ok
}

// PlanCanTransition melaporkan apakah rencana boleh pindah dari from ke to.
func PlanCanTransition(from, to string) bool {
	for _, next := range planTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// PlanIsEditable: rencana hanya boleh diubah/dihapus selama belum
// diproses manager.
func PlanIsEditable(status string) bool {
	return status == PlanStatusDraft || status == PlanStatusMenunggu
}
