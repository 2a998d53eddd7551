// internals/features/production/plans/service/lifecycle_service_test.go
package service

import (
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"produksiku_backend/internals/features/production/plans/model"
)

type mockPlanStore struct {
	mock.Mock
}

func (m *mockPlanStore) PlanForUpdate(id uuid.UUID) (*model.ProductionPlanModel, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ProductionPlanModel), args.Error(1)
}

func (m *mockPlanStore) SavePlan(plan *model.ProductionPlanModel) error {
	args := m.Called(plan)
	return args.Error(0)
}

func (m *mockPlanStore) DeletePlan(plan *model.ProductionPlanModel) error {
	args := m.Called(plan)
	return args.Error(0)
}

func (m *mockPlanStore) CreatePlanHistory(h *model.ProductionPlanHistoryModel) error {
	args := m.Called(h)
	return args.Error(0)
}

func planDraft() *model.ProductionPlanModel {
	return &model.ProductionPlanModel{
		ID:           uuid.New(),
		NomorRencana: "RP-20260901-0002",
		ProdukID:     uuid.New(),
		Jumlah:       250,
		DibuatOleh:   uuid.New(),
		Status:       model.PlanStatusDraft,
	}
}

func TestSubmitPlan_Success(t *testing.T) {
	store := new(mockPlanStore)
	plan := planDraft()
	userID := uuid.New()
	now := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)

	store.On("PlanForUpdate", plan.ID).Return(plan, nil)
	store.On("SavePlan", plan).Return(nil)

	var recorded *model.ProductionPlanHistoryModel
	store.On("CreatePlanHistory", mock.AnythingOfType("*model.ProductionPlanHistoryModel")).
		Run(func(args mock.Arguments) {
			recorded = args.Get(0).(*model.ProductionPlanHistoryModel)
		}).Return(nil)

	result, err := SubmitPlan(store, plan.ID, userID, now)

	assert.NoError(t, err)
	assert.Equal(t, model.PlanStatusMenunggu, result.Status)
	assert.Equal(t, now, *result.DiajukanPada)

	assert.NotNil(t, recorded)
	assert.Equal(t, AksiDiajukan, recorded.Aksi)
	assert.Equal(t, model.PlanStatusDraft, *recorded.StatusSebelum)
	assert.Equal(t, model.PlanStatusMenunggu, recorded.StatusBaru)

	store.AssertExpectations(t)
}

func TestSubmitPlan_NotDraft(t *testing.T) {
	for _, status := range []string{
		model.PlanStatusMenunggu,
		model.PlanStatusDisetujui,
		model.PlanStatusDitolak,
		model.PlanStatusOrder,
	} {
		store := new(mockPlanStore)
		plan := planDraft()
		plan.Status = status

		store.On("PlanForUpdate", plan.ID).Return(plan, nil)

		result, err := SubmitPlan(store, plan.ID, uuid.New(), time.Now())

		assert.Nil(t, result, "status %s", status)
		fe, ok := err.(*fiber.Error)
		assert.True(t, ok)
		assert.Equal(t, fiber.StatusBadRequest, fe.Code, "status %s", status)
		assert.Contains(t, fe.Message, status)

		store.AssertNotCalled(t, "SavePlan", mock.Anything)
		store.AssertNotCalled(t, "CreatePlanHistory", mock.Anything)
	}
}

func TestCancelSubmission_Success(t *testing.T) {
	store := new(mockPlanStore)
	plan := planDraft()
	diajukan := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	plan.Status = model.PlanStatusMenunggu
	plan.DiajukanPada = &diajukan
	userID := uuid.New()
	now := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)

	store.On("PlanForUpdate", plan.ID).Return(plan, nil)
	store.On("SavePlan", plan).Return(nil)

	var recorded *model.ProductionPlanHistoryModel
	store.On("CreatePlanHistory", mock.AnythingOfType("*model.ProductionPlanHistoryModel")).
		Run(func(args mock.Arguments) {
			recorded = args.Get(0).(*model.ProductionPlanHistoryModel)
		}).Return(nil)

	result, err := CancelSubmission(store, plan.ID, userID, now)

	assert.NoError(t, err)
	assert.Equal(t, model.PlanStatusDraft, result.Status)
	assert.Nil(t, result.DiajukanPada)

	assert.NotNil(t, recorded)
	assert.Equal(t, AksiDibatalkan, recorded.Aksi)
	assert.Equal(t, model.PlanStatusDraft, recorded.StatusBaru)

	store.AssertExpectations(t)
}

func TestCancelSubmission_NotPending(t *testing.T) {
	for _, status := range []string{
		model.PlanStatusDraft,
		model.PlanStatusDisetujui,
		model.PlanStatusDitolak,
		model.PlanStatusOrder,
	} {
		store := new(mockPlanStore)
		plan := planDraft()
		plan.Status = status

		store.On("PlanForUpdate", plan.ID).Return(plan, nil)

		result, err := CancelSubmission(store, plan.ID, uuid.New(), time.Now())

		assert.Nil(t, result, "status %s", status)
		fe, ok := err.(*fiber.Error)
		assert.True(t, ok)
		assert.Equal(t, fiber.StatusBadRequest, fe.Code, "status %s", status)

		store.AssertNotCalled(t, "SavePlan", mock.Anything)
	}
}

func TestDestroyPlan_Success(t *testing.T) {
	store := new(mockPlanStore)
	plan := planDraft()
	userID := uuid.New()
	now := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)

	store.On("PlanForUpdate", plan.ID).Return(plan, nil)

	// jejak penghapusan ditulis sebelum barisnya dihapus
	var recorded *model.ProductionPlanHistoryModel
	store.On("CreatePlanHistory", mock.AnythingOfType("*model.ProductionPlanHistoryModel")).
		Run(func(args mock.Arguments) {
			recorded = args.Get(0).(*model.ProductionPlanHistoryModel)
		}).Return(nil)
	store.On("DeletePlan", plan).Return(nil)

	result, err := DestroyPlan(store, plan.ID, userID, now)

	assert.NoError(t, err)
	assert.Equal(t, plan.ID, result.ID)

	assert.NotNil(t, recorded)
	assert.Equal(t, AksiDihapus, recorded.Aksi)
	assert.Equal(t, model.PlanStatusDraft, *recorded.StatusSebelum)
	assert.Equal(t, "dihapus", recorded.StatusBaru)

	store.AssertNumberOfCalls(t, "DeletePlan", 1)
	store.AssertExpectations(t)
}

func TestDestroyPlan_AlreadyProcessed(t *testing.T) {
	for _, status := range []string{
		model.PlanStatusDisetujui,
		model.PlanStatusDitolak,
		model.PlanStatusOrder,
	} {
		store := new(mockPlanStore)
		plan := planDraft()
		plan.Status = status

		store.On("PlanForUpdate", plan.ID).Return(plan, nil)

		result, err := DestroyPlan(store, plan.ID, uuid.New(), time.Now())

		assert.Nil(t, result, "status %s", status)
		fe, ok := err.(*fiber.Error)
		assert.True(t, ok)
		assert.Equal(t, fiber.StatusForbidden, fe.Code, "status %s", status)
		assert.Contains(t, fe.Message, status)

		store.AssertNotCalled(t, "DeletePlan", mock.Anything)
		store.AssertNotCalled(t, "CreatePlanHistory", mock.Anything)
	}
}
