// internals/features/production/reports/service/stats_service_test.go
package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	planModel "produksiku_backend/internals/features/production/plans/model"
)

func TestEfisiensi(t *testing.T) {
	assert.Equal(t, 95.0, Efisiensi(950, 1000))
	assert.Equal(t, 100.0, Efisiensi(1000, 1000))
	assert.Equal(t, 33.33, Efisiensi(1, 3))
	assert.Equal(t, 66.67, Efisiensi(2, 3))
	assert.Equal(t, 150.0, Efisiensi(150, 100))

	// target nol tidak boleh bikin pembagian nol
	assert.Equal(t, 0.0, Efisiensi(500, 0))
	assert.Equal(t, 0.0, Efisiensi(0, 0))
}

func TestTingkatReject(t *testing.T) {
	assert.Equal(t, 5.0, TingkatReject(50, 1000))
	assert.Equal(t, 3.16, TingkatReject(30, 950))
	assert.Equal(t, 0.0, TingkatReject(0, 1000))

	// produksi nol tidak boleh bikin pembagian nol
	assert.Equal(t, 0.0, TingkatReject(10, 0))
}

func TestEfisiensiRencana(t *testing.T) {
	assert.Equal(t, 92.0, EfisiensiRencana(950, 30, 1000))
	assert.Equal(t, 100.0, EfisiensiRencana(1000, 0, 1000))
	assert.Equal(t, 0.0, EfisiensiRencana(0, 0, 1000))
	assert.Equal(t, 0.0, EfisiensiRencana(500, 10, 0))
}

func TestPlanProgress(t *testing.T) {
	assert.Equal(t, 0, PlanProgress(planModel.PlanStatusDraft))
	assert.Equal(t, 30, PlanProgress(planModel.PlanStatusMenunggu))
	assert.Equal(t, 50, PlanProgress(planModel.PlanStatusDisetujui))
	assert.Equal(t, 100, PlanProgress(planModel.PlanStatusOrder))
	assert.Equal(t, 0, PlanProgress(planModel.PlanStatusDitolak))
	assert.Equal(t, 0, PlanProgress("tidak_dikenal"))
}
