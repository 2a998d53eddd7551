// internals/features/production/orders/service/workflow_service_test.go
package service

import (
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"produksiku_backend/internals/features/production/orders/model"
)

type mockOrderStore struct {
	mock.Mock
}

func (m *mockOrderStore) OrderForUpdate(id uuid.UUID) (*model.ProductionOrderModel, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ProductionOrderModel), args.Error(1)
}

func (m *mockOrderStore) SaveOrder(order *model.ProductionOrderModel) error {
	args := m.Called(order)
	return args.Error(0)
}

func (m *mockOrderStore) CreateOrderHistory(h *model.ProductionOrderHistoryModel) error {
	args := m.Called(h)
	return args.Error(0)
}

func (m *mockOrderStore) CreateReject(r *model.ProductionRejectModel) error {
	args := m.Called(r)
	return args.Error(0)
}

func orderMenunggu() *model.ProductionOrderModel {
	return &model.ProductionOrderModel{
		ID:           uuid.New(),
		NomorOrder:   "ORD-0001",
		RencanaID:    uuid.New(),
		ProdukID:     uuid.New(),
		TargetJumlah: 1000,
		Status:       model.OrderStatusMenunggu,
	}
}

func TestStartOrder_Success(t *testing.T) {
	store := new(mockOrderStore)
	order := orderMenunggu()
	workerID := uuid.New()
	now := time.Date(2026, 9, 1, 7, 30, 0, 0, time.UTC)

	store.On("OrderForUpdate", order.ID).Return(order, nil)
	store.On("SaveOrder", order).Return(nil)

	var recorded *model.ProductionOrderHistoryModel
	store.On("CreateOrderHistory", mock.AnythingOfType("*model.ProductionOrderHistoryModel")).
		Run(func(args mock.Arguments) {
			recorded = args.Get(0).(*model.ProductionOrderHistoryModel)
		}).Return(nil)

	result, err := StartOrder(store, order.ID, workerID, now)

	assert.NoError(t, err)
	assert.Equal(t, model.OrderStatusDalamProses, result.Status)
	assert.Equal(t, now, *result.MulaiPada)
	assert.Equal(t, workerID, *result.DikerjakanOleh)

	assert.Equal(t, model.OrderStatusMenunggu, *recorded.StatusSebelumnya)
	assert.Equal(t, model.OrderStatusDalamProses, recorded.StatusBaru)
	store.AssertExpectations(t)
}

func TestStartOrder_WrongStatus(t *testing.T) {
	store := new(mockOrderStore)
	order := orderMenunggu()
	order.Status = model.OrderStatusSelesai

	store.On("OrderForUpdate", order.ID).Return(order, nil)

	result, err := StartOrder(store, order.ID, uuid.New(), time.Now())

	assert.Nil(t, result)
	fe, ok := err.(*fiber.Error)
	assert.True(t, ok)
	assert.Equal(t, fiber.StatusBadRequest, fe.Code)
	store.AssertNotCalled(t, "SaveOrder", mock.Anything)
}

func TestCompleteOrder_Success(t *testing.T) {
	store := new(mockOrderStore)
	order := orderMenunggu()
	order.Status = model.OrderStatusDalamProses
	workerID := uuid.New()
	now := time.Date(2026, 9, 2, 16, 0, 0, 0, time.UTC)

	store.On("OrderForUpdate", order.ID).Return(order, nil)
	store.On("SaveOrder", order).Return(nil)
	store.On("CreateOrderHistory", mock.AnythingOfType("*model.ProductionOrderHistoryModel")).Return(nil)

	var rejects []*model.ProductionRejectModel
	store.On("CreateReject", mock.AnythingOfType("*model.ProductionRejectModel")).
		Run(func(args mock.Arguments) {
			rejects = append(rejects, args.Get(0).(*model.ProductionRejectModel))
		}).Return(nil)

	result, err := CompleteOrder(store, order.ID, workerID, 950, 30, []RejectInput{
		{JenisCacat: "gores", Jumlah: 20},
		{JenisCacat: "retak", Jumlah: 10},
	}, nil, now)

	assert.NoError(t, err)
	assert.Equal(t, model.OrderStatusSelesai, result.Status)
	assert.Equal(t, 950, *result.JumlahAktual)
	assert.Equal(t, 30, *result.JumlahReject)
	assert.Equal(t, now, *result.SelesaiPada)

	assert.Len(t, rejects, 2)
	assert.Equal(t, "gores", rejects[0].JenisCacat)
	assert.Equal(t, workerID, rejects[0].DicatatOleh)
	store.AssertExpectations(t)
}

func TestCompleteOrder_RejectExceedsActual(t *testing.T) {
	store := new(mockOrderStore)

	result, err := CompleteOrder(store, uuid.New(), uuid.New(), 100, 150, nil, nil, time.Now())

	assert.Nil(t, result)
	fe, ok := err.(*fiber.Error)
	assert.True(t, ok)
	assert.Equal(t, fiber.StatusUnprocessableEntity, fe.Code)
	store.AssertNotCalled(t, "OrderForUpdate", mock.Anything)
}

func TestCompleteOrder_RejectDetailMismatch(t *testing.T) {
	store := new(mockOrderStore)

	result, err := CompleteOrder(store, uuid.New(), uuid.New(), 100, 10, []RejectInput{
		{JenisCacat: "gores", Jumlah: 3},
	}, nil, time.Now())

	assert.Nil(t, result)
	fe, ok := err.(*fiber.Error)
	assert.True(t, ok)
	assert.Equal(t, fiber.StatusUnprocessableEntity, fe.Code)
}

func TestCompleteOrder_WrongStatus(t *testing.T) {
	store := new(mockOrderStore)
	order := orderMenunggu()

	store.On("OrderForUpdate", order.ID).Return(order, nil)

	result, err := CompleteOrder(store, order.ID, uuid.New(), 100, 0, nil, nil, time.Now())

	assert.Nil(t, result)
	fe, ok := err.(*fiber.Error)
	assert.True(t, ok)
	assert.Equal(t, fiber.StatusBadRequest, fe.Code)
}

func TestUpdateProgress_LedgerOnly(t *testing.T) {
	store := new(mockOrderStore)
	order := orderMenunggu()
	order.Status = model.OrderStatusDalamProses
	workerID := uuid.New()

	store.On("OrderForUpdate", order.ID).Return(order, nil)

	var recorded *model.ProductionOrderHistoryModel
	store.On("CreateOrderHistory", mock.AnythingOfType("*model.ProductionOrderHistoryModel")).
		Run(func(args mock.Arguments) {
			recorded = args.Get(0).(*model.ProductionOrderHistoryModel)
		}).Return(nil)

	result, err := UpdateProgress(store, order.ID, workerID, 60, nil, time.Now())

	assert.NoError(t, err)
	// status tidak berubah, hanya history yang bertambah
	assert.Equal(t, model.OrderStatusDalamProses, result.Status)
	assert.Equal(t, model.OrderStatusDalamProses, recorded.StatusBaru)
	assert.Contains(t, *recorded.Keterangan, "60%")
	store.AssertNotCalled(t, "SaveOrder", mock.Anything)
}

func TestUpdateProgress_WrongStatus(t *testing.T) {
	store := new(mockOrderStore)
	order := orderMenunggu()

	store.On("OrderForUpdate", order.ID).Return(order, nil)

	result, err := UpdateProgress(store, order.ID, uuid.New(), 50, nil, time.Now())

	assert.Nil(t, result)
	fe, ok := err.(*fiber.Error)
	assert.True(t, ok)
	assert.Equal(t, fiber.StatusBadRequest, fe.Code)
}
