// internals/features/production/plans/model/plan_status_test.go
package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlanCanTransition(t *testing.T) {
	// alur normal
	assert.True(t, PlanCanTransition(PlanStatusDraft, PlanStatusMenunggu))
	assert.True(t, PlanCanTransition(PlanStatusMenunggu, PlanStatusDisetujui))
	assert.True(t, PlanCanTransition(PlanStatusMenunggu, PlanStatusDitolak))
	assert.True(t, PlanCanTransition(PlanStatusMenunggu, PlanStatusDraft))
	assert.True(t, PlanCanTransition(PlanStatusDisetujui, PlanStatusOrder))

	// status akhir tidak boleh pindah lagi
	assert.False(t, PlanCanTransition(PlanStatusDitolak, PlanStatusMenunggu))
	assert.False(t, PlanCanTransition(PlanStatusOrder, PlanStatusDraft))

	// lompatan status dilarang
	assert.False(t, PlanCanTransition(PlanStatusDraft, PlanStatusDisetujui))
	assert.False(t, PlanCanTransition(PlanStatusDraft, PlanStatusOrder))
	assert.False(t, PlanCanTransition(PlanStatusDisetujui, PlanStatusDitolak))
}

func TestPlanStatusValid(t *testing.T) {
	assert.True(t, PlanStatusValid(PlanStatusDraft))
	assert.True(t, PlanStatusValid(PlanStatusOrder))
	assert.False(t, PlanStatusValid("dikerjakan"))
	assert.False(t, PlanStatusValid(""))
}

func TestPlanIsEditable(t *testing.T) {
	assert.True(t, PlanIsEditable(PlanStatusDraft))
	assert.True(t, PlanIsEditable(PlanStatusMenunggu))
	assert.False(t, PlanIsEditable(PlanStatusDisetujui))
	assert.False(t, PlanIsEditable(PlanStatusDitolak))
	assert.False(t, PlanIsEditable(PlanStatusOrder))
}
