package admin

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/anchanpratham/tiffinontime/internal/domain"
	"github.com/anchanpratham/tiffinontime/internal/gateway"
)

type MockGateway struct {
	mock.Mock
}

func (m *MockGateway) ListOrders(ctx context.Context) ([]domain.OrderRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.OrderRecord), args.Error(1)
}

func (m *MockGateway) UpdateOrderStatus(ctx context.Context, orderID string, status domain.OrderStatus) error {
	args := m.Called(ctx, orderID, status)
	return args.Error(0)
}

func pendingOrder(id string) domain.OrderRecord {
	return domain.OrderRecord{
		ID:          id,
		UserID:      "u1",
		Items:       []domain.OrderItem{{Name: "Veg Thali", Quantity: 1}},
		SeatsBooked: 2,
		TotalPrice:  120,
		Status:      domain.OrderPending,
		OrderDate:   time.Date(2026, 2, 3, 12, 30, 0, 0, time.UTC),
	}
}

func TestConsole_Refresh_ReplacesOrdersWholesale(t *testing.T) {
	gw := new(MockGateway)
	gw.On("ListOrders", mock.Anything).Return([]domain.OrderRecord{pendingOrder("o1"), pendingOrder("o2")}, nil).Once()
	gw.On("ListOrders", mock.Anything).Return([]domain.OrderRecord{pendingOrder("o3")}, nil).Once()
	console := NewConsole(gw)

	assert.NoError(t, console.Refresh(context.Background()))
	assert.Len(t, console.Snapshot().Orders, 2)

	assert.NoError(t, console.Refresh(context.Background()))
	snap := console.Snapshot()
	assert.Len(t, snap.Orders, 1)
	assert.Equal(t, "o3", snap.Orders[0].ID)
	assert.True(t, snap.Loaded)
	assert.Empty(t, snap.Err)
}

func TestConsole_Refresh_FailureKeepsPreviousOrders(t *testing.T) {
	gw := new(MockGateway)
	gw.On("ListOrders", mock.Anything).Return([]domain.OrderRecord{pendingOrder("o1")}, nil).Once()
	gw.On("ListOrders", mock.Anything).Return(nil, &gateway.Error{StatusCode: 502}).Once()
	console := NewConsole(gw)

	assert.NoError(t, console.Refresh(context.Background()))
	assert.Error(t, console.Refresh(context.Background()))

	snap := console.Snapshot()
	assert.Len(t, snap.Orders, 1)
	assert.NotEmpty(t, snap.Err)
}

func TestConsole_Advance_PendingToReadyRefreshes(t *testing.T) {
	ready := pendingOrder("o1")
	ready.Status = domain.OrderReady

	gw := new(MockGateway)
	gw.On("ListOrders", mock.Anything).Return([]domain.OrderRecord{pendingOrder("o1")}, nil).Once()
	gw.On("UpdateOrderStatus", mock.Anything, "o1", domain.OrderReady).Return(nil)
	gw.On("ListOrders", mock.Anything).Return([]domain.OrderRecord{ready}, nil).Once()
	console := NewConsole(gw)
	assert.NoError(t, console.Refresh(context.Background()))

	err := console.Advance(context.Background(), "o1", domain.OrderReady)

	assert.NoError(t, err)
	snap := console.Snapshot()
	assert.Equal(t, domain.OrderReady, snap.Orders[0].Status)
	assert.False(t, console.Updating("o1"))
	gw.AssertNumberOfCalls(t, "ListOrders", 2)
}

func TestConsole_Advance_InvalidTransitionRejected(t *testing.T) {
	gw := new(MockGateway)
	gw.On("ListOrders", mock.Anything).Return([]domain.OrderRecord{pendingOrder("o1")}, nil)
	console := NewConsole(gw)
	assert.NoError(t, console.Refresh(context.Background()))

	err := console.Advance(context.Background(), "o1", domain.OrderCompleted)

	assert.ErrorIs(t, err, ErrInvalidTransition)
	gw.AssertNotCalled(t, "UpdateOrderStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestConsole_Advance_UnknownOrderRejected(t *testing.T) {
	gw := new(MockGateway)
	gw.On("ListOrders", mock.Anything).Return([]domain.OrderRecord{}, nil)
	console := NewConsole(gw)
	assert.NoError(t, console.Refresh(context.Background()))

	err := console.Advance(context.Background(), "nope", domain.OrderReady)

	assert.ErrorIs(t, err, ErrUnknownOrder)
}

func TestConsole_Advance_FailureLeavesStatusUnchanged(t *testing.T) {
	gw := new(MockGateway)
	gw.On("ListOrders", mock.Anything).Return([]domain.OrderRecord{pendingOrder("o1")}, nil)
	gw.On("UpdateOrderStatus", mock.Anything, "o1", domain.OrderReady).Return(&gateway.Error{StatusCode: 500})
	console := NewConsole(gw)
	assert.NoError(t, console.Refresh(context.Background()))

	err := console.Advance(context.Background(), "o1", domain.OrderReady)

	assert.Error(t, err)
	snap := console.Snapshot()
	assert.Equal(t, domain.OrderPending, snap.Orders[0].Status)
	assert.NotEmpty(t, snap.Err)
	assert.False(t, console.Updating("o1"))
	gw.AssertNumberOfCalls(t, "ListOrders", 1)
}

func TestConsole_Advance_SecondUpdateSameOrderRejectedWhileInFlight(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})

	gw := new(MockGateway)
	gw.On("ListOrders", mock.Anything).Return([]domain.OrderRecord{pendingOrder("o1")}, nil)
	gw.On("UpdateOrderStatus", mock.Anything, "o1", domain.OrderReady).Run(func(mock.Arguments) {
		close(started)
		<-release
	}).Return(nil)
	console := NewConsole(gw)
	assert.NoError(t, console.Refresh(context.Background()))

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		assert.NoError(t, console.Advance(context.Background(), "o1", domain.OrderReady))
	}()

	<-started
	assert.True(t, console.Updating("o1"), "control for the order is disabled while in flight")

	err := console.Advance(context.Background(), "o1", domain.OrderReady)
	assert.ErrorIs(t, err, ErrUpdateInFlight)

	close(release)
	wg.Wait()
	assert.False(t, console.Updating("o1"), "guard released once the update completes")
	gw.AssertNumberOfCalls(t, "UpdateOrderStatus", 1)
}

func TestConsole_Advance_DifferentOrdersMayOverlap(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})

	o2 := pendingOrder("o2")
	gw := new(MockGateway)
	gw.On("ListOrders", mock.Anything).Return([]domain.OrderRecord{pendingOrder("o1"), o2}, nil)
	gw.On("UpdateOrderStatus", mock.Anything, "o1", domain.OrderReady).Run(func(mock.Arguments) {
		close(started)
		<-release
	}).Return(nil)
	gw.On("UpdateOrderStatus", mock.Anything, "o2", domain.OrderReady).Return(nil)
	console := NewConsole(gw)
	assert.NoError(t, console.Refresh(context.Background()))

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		assert.NoError(t, console.Advance(context.Background(), "o1", domain.OrderReady))
	}()

	<-started
	assert.NoError(t, console.Advance(context.Background(), "o2", domain.OrderReady))

	close(release)
	wg.Wait()
}

func TestConsole_Run_StopsWhenContextCancelled(t *testing.T) {
	gw := new(MockGateway)
	gw.On("ListOrders", mock.Anything).Return([]domain.OrderRecord{}, nil)
	console := NewConsole(gw)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		console.Run(ctx, 5*time.Millisecond)
		close(done)
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("poll loop did not stop on cancellation")
	}
	assert.True(t, console.Snapshot().Loaded)
}
