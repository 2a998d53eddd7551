// internals/features/production/plans/service/approval_service_test.go
package service

import (
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	orderModel "produksiku_backend/internals/features/production/orders/model"
	"produksiku_backend/internals/features/production/plans/model"
)

type mockApprovalStore struct {
	mock.Mock
}

func (m *mockApprovalStore) PlanForUpdate(id uuid.UUID) (*model.ProductionPlanModel, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ProductionPlanModel), args.Error(1)
}

func (m *mockApprovalStore) SavePlan(plan *model.ProductionPlanModel) error {
	args := m.Called(plan)
	return args.Error(0)
}

func (m *mockApprovalStore) DeletePlan(plan *model.ProductionPlanModel) error {
	args := m.Called(plan)
	return args.Error(0)
}

func (m *mockApprovalStore) CreatePlanHistory(h *model.ProductionPlanHistoryModel) error {
	args := m.Called(h)
	return args.Error(0)
}

func (m *mockApprovalStore) NextOrderNumber() (string, error) {
	args := m.Called()
	return args.String(0), args.Error(1)
}

func (m *mockApprovalStore) CreateOrder(order *orderModel.ProductionOrderModel) error {
	args := m.Called(order)
	return args.Error(0)
}

func (m *mockApprovalStore) CreateOrderHistory(h *orderModel.ProductionOrderHistoryModel) error {
	args := m.Called(h)
	return args.Error(0)
}

func planMenunggu() *model.ProductionPlanModel {
	return &model.ProductionPlanModel{
		ID:           uuid.New(),
		NomorRencana: "RP-20260901-0001",
		ProdukID:     uuid.New(),
		Jumlah:       500,
		DibuatOleh:   uuid.New(),
		Status:       model.PlanStatusMenunggu,
	}
}

func TestApprovePlan_Success(t *testing.T) {
	store := new(mockApprovalStore)
	plan := planMenunggu()
	managerID := uuid.New()
	now := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)

	store.On("PlanForUpdate", plan.ID).Return(plan, nil)
	store.On("SavePlan", plan).Return(nil)
	store.On("CreatePlanHistory", mock.AnythingOfType("*model.ProductionPlanHistoryModel")).Return(nil)
	store.On("NextOrderNumber").Return("ORD-0007", nil)
	store.On("CreateOrder", mock.AnythingOfType("*model.ProductionOrderModel")).
		Run(func(args mock.Arguments) {
			order := args.Get(0).(*orderModel.ProductionOrderModel)
			order.ID = uuid.New()
		}).Return(nil)
	store.On("CreateOrderHistory", mock.AnythingOfType("*model.ProductionOrderHistoryModel")).Return(nil)

	result, err := ApprovePlan(store, plan.ID, managerID, nil, now)

	assert.NoError(t, err)
	assert.Equal(t, model.PlanStatusOrder, result.Plan.Status)
	assert.Equal(t, managerID, *result.Plan.DisetujuiOleh)
	assert.Equal(t, now, *result.Plan.DisetujuiPada)
	assert.Equal(t, now.AddDate(0, 0, 7), *result.Plan.BatasSelesai)

	assert.Equal(t, "ORD-0007", result.Order.NomorOrder)
	assert.Equal(t, plan.ProdukID, result.Order.ProdukID)
	assert.Equal(t, 500, result.Order.TargetJumlah)
	assert.Equal(t, orderModel.OrderStatusMenunggu, result.Order.Status)

	assert.Equal(t, []string{
		"persetujuan_rencana",
		"menjadi_order_produksi",
		"pembuatan_order_baru",
	}, result.HistoryLogs)

	store.AssertNumberOfCalls(t, "SavePlan", 2)
	store.AssertNumberOfCalls(t, "CreatePlanHistory", 2)
	store.AssertExpectations(t)
}

func TestApprovePlan_AlreadyProcessed(t *testing.T) {
	store := new(mockApprovalStore)
	plan := planMenunggu()
	plan.Status = model.PlanStatusOrder

	store.On("PlanForUpdate", plan.ID).Return(plan, nil)

	result, err := ApprovePlan(store, plan.ID, uuid.New(), nil, time.Now())

	assert.Nil(t, result)
	fe, ok := err.(*fiber.Error)
	assert.True(t, ok)
	assert.Equal(t, fiber.StatusUnprocessableEntity, fe.Code)
	assert.Contains(t, fe.Message, "sudah diproses")
	assert.Contains(t, fe.Message, model.PlanStatusOrder)

	store.AssertNotCalled(t, "SavePlan", mock.Anything)
	store.AssertNotCalled(t, "CreateOrder", mock.Anything)
}

func TestRejectPlan_DefaultNote(t *testing.T) {
	store := new(mockApprovalStore)
	plan := planMenunggu()
	managerID := uuid.New()
	now := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)

	store.On("PlanForUpdate", plan.ID).Return(plan, nil)
	store.On("SavePlan", plan).Return(nil)

	var recorded *model.ProductionPlanHistoryModel
	store.On("CreatePlanHistory", mock.AnythingOfType("*model.ProductionPlanHistoryModel")).
		Run(func(args mock.Arguments) {
			recorded = args.Get(0).(*model.ProductionPlanHistoryModel)
		}).Return(nil)

	result, err := RejectPlan(store, plan.ID, managerID, nil, now)

	assert.NoError(t, err)
	assert.Equal(t, model.PlanStatusDitolak, result.Plan.Status)
	assert.Equal(t, "Tidak ada catatan", *result.Plan.Catatan)
	assert.Equal(t, now, *result.Plan.DitolakPada)
	assert.Nil(t, result.Order)
	assert.Equal(t, []string{"penolakan_rencana"}, result.HistoryLogs)

	assert.NotNil(t, recorded)
	assert.Equal(t, AksiDitolak, recorded.Aksi)
	assert.Equal(t, "Rencana ditolak: Tidak ada alasan", *recorded.Keterangan)

	store.AssertNotCalled(t, "NextOrderNumber")
	store.AssertNotCalled(t, "CreateOrder", mock.Anything)
}

func TestRejectPlan_WithNote(t *testing.T) {
	store := new(mockApprovalStore)
	plan := planMenunggu()
	catatan := "Kapasitas mesin penuh bulan ini"

	store.On("PlanForUpdate", plan.ID).Return(plan, nil)
	store.On("SavePlan", plan).Return(nil)
	store.On("CreatePlanHistory", mock.AnythingOfType("*model.ProductionPlanHistoryModel")).Return(nil)

	result, err := RejectPlan(store, plan.ID, uuid.New(), &catatan, time.Now())

	assert.NoError(t, err)
	assert.Equal(t, catatan, *result.Plan.Catatan)
}

func TestRejectPlan_AlreadyProcessed(t *testing.T) {
	store := new(mockApprovalStore)
	plan := planMenunggu()
	plan.Status = model.PlanStatusDitolak

	store.On("PlanForUpdate", plan.ID).Return(plan, nil)

	result, err := RejectPlan(store, plan.ID, uuid.New(), nil, time.Now())

	assert.Nil(t, result)
	fe, ok := err.(*fiber.Error)
	assert.True(t, ok)
	assert.Equal(t, fiber.StatusUnprocessableEntity, fe.Code)
}
