package entity

import (
	"testing"
	"time"

	cartEntity "github.com/Korikanas/ncart/src/cart/domain/entity"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

func snapshotOf(items ...cartEntity.LineItem) cartEntity.Snapshot {
	cart := cartEntity.NewCart()
	for _, li := range items {
		cart.AddItem(cartEntity.Product{ID: li.ID, Name: li.Name, Price: li.UnitPrice, ImageRef: li.ImageRef})
		cart.SetQuantity(li.ID, li.Quantity)
	}
	return cart.Snapshot()
}

func newProcessingOrder(t *testing.T) *Order {
	t.Helper()
	snap := snapshotOf(cartEntity.LineItem{ID: "p1", Name: "Phone", UnitPrice: decimal.NewFromInt(500), Quantity: 2})
	order, err := NewOrder(snap, "Credit Card", "123 Main St", t0)
	require.NoError(t, err)
	return order
}

func completedSteps(o *Order) []string {
	var names []string
	for _, s := range o.Tracking.Steps {
		if s.Completed {
			names = append(names, s.Name)
		}
	}
	return names
}

func TestNewOrder_InitialState(t *testing.T) {
	order := newProcessingOrder(t)

	assert.NotEmpty(t, order.ID)
	assert.True(t, decimal.NewFromInt(1000).Equal(order.Total))
	assert.Equal(t, OrderStatusProcessing, order.Status)
	assert.Equal(t, OrderStatusProcessing, order.Tracking.Status)
	assert.Equal(t, "Credit Card", order.PaymentMethod)
	assert.Equal(t, 2, order.TotalItems())
	assert.Nil(t, order.Cancellation)

	require.Len(t, order.Tracking.Steps, 5)
	assert.True(t, order.Tracking.Steps[0].Completed)
	require.NotNil(t, order.Tracking.Steps[0].CompletedAt)
	assert.Equal(t, t0, *order.Tracking.Steps[0].CompletedAt)
	for _, step := range order.Tracking.Steps[1:] {
		assert.False(t, step.Completed, step.Name)
		assert.Nil(t, step.CompletedAt, step.Name)
	}
	for i, name := range StepNames {
		assert.Equal(t, name, order.Tracking.Steps[i].Name)
	}
}

func TestNewOrder_Preconditions(t *testing.T) {
	_, err := NewOrder(cartEntity.Snapshot{}, "Credit Card", "", t0)
	assert.ErrorIs(t, err, ErrEmptyCart)

	snap := snapshotOf(cartEntity.LineItem{ID: "p1", Name: "x", UnitPrice: decimal.NewFromInt(1), Quantity: 1})
	_, err = NewOrder(snap, "", "", t0)
	assert.ErrorIs(t, err, ErrPaymentMethodRequired)
}

func TestNewOrder_ItemsAreIndependentFromCart(t *testing.T) {
	cart := cartEntity.NewCart()
	cart.AddItem(cartEntity.Product{ID: "p1", Name: "Phone", Price: decimal.NewFromInt(500)})
	order, err := NewOrder(cart.Snapshot(), "UPI", "", t0)
	require.NoError(t, err)

	cart.ChangeQuantity("p1", 10)
	cart.Clear()

	require.Len(t, order.Items, 1)
	assert.Equal(t, 1, order.Items[0].Quantity)
	assert.True(t, decimal.NewFromInt(500).Equal(order.Total))
}

func TestWithStatus_ShippedMarksOnlyShippedStep(t *testing.T) {
	order := newProcessingOrder(t)
	t1 := t0.Add(time.Hour)

	next, err := order.WithStatus(OrderStatusShipped, nil, t1, TransitionOptions{})
	require.NoError(t, err)

	assert.Equal(t, OrderStatusShipped, next.Status)
	assert.Equal(t, OrderStatusShipped, next.Tracking.Status)
	assert.Equal(t, []string{StepOrderPlaced, StepShipped}, completedSteps(next))
	shipped, _ := next.Tracking.Step(StepShipped)
	assert.Equal(t, t1, *shipped.CompletedAt)

	// la orden original no cambia
	assert.Equal(t, OrderStatusProcessing, order.Status)
	assert.Equal(t, []string{StepOrderPlaced}, completedSteps(order))
}

func TestWithStatus_DeliveredSkipsIntermediateStepsByDefault(t *testing.T) {
	order := newProcessingOrder(t)

	next, err := order.WithStatus(OrderStatusDelivered, nil, t0.Add(time.Hour), TransitionOptions{})
	require.NoError(t, err)

	assert.Equal(t, []string{StepOrderPlaced, StepDelivered}, completedSteps(next))
}

func TestWithStatus_CompleteSkippedSteps(t *testing.T) {
	order := newProcessingOrder(t)
	t1 := t0.Add(time.Hour)

	next, err := order.WithStatus(OrderStatusDelivered, nil, t1, TransitionOptions{CompleteSkippedSteps: true})
	require.NoError(t, err)

	assert.Equal(t, StepNames, completedSteps(next))
	placed, _ := next.Tracking.Step(StepOrderPlaced)
	assert.Equal(t, t0, *placed.CompletedAt, "already completed step keeps its timestamp")
}

func TestWithStatus_IdempotentReapply(t *testing.T) {
	order := newProcessingOrder(t)
	t1 := t0.Add(time.Hour)
	t2 := t1.Add(time.Hour)

	once, err := order.WithStatus(OrderStatusShipped, nil, t1, TransitionOptions{})
	require.NoError(t, err)
	twice, err := once.WithStatus(OrderStatusShipped, nil, t2, TransitionOptions{})
	require.NoError(t, err)

	assert.Equal(t, once, twice)
	shipped, _ := twice.Tracking.Step(StepShipped)
	assert.Equal(t, t1, *shipped.CompletedAt)
}

func TestWithStatus_CancelRequiresReason(t *testing.T) {
	order := newProcessingOrder(t)

	_, err := order.WithStatus(OrderStatusCancelled, nil, t0, TransitionOptions{})
	assert.ErrorIs(t, err, ErrCancellationReasonRequired)

	_, err = order.WithStatus(OrderStatusCancelled, &CancellationRequest{Reason: "  "}, t0, TransitionOptions{})
	assert.ErrorIs(t, err, ErrCancellationReasonRequired)

	_, err = order.WithStatus(OrderStatusCancelled, &CancellationRequest{Reason: "Bored"}, t0, TransitionOptions{})
	assert.ErrorIs(t, err, ErrInvalidCancellationReason)
}

func TestWithStatus_CancelAttachesInfo(t *testing.T) {
	order := newProcessingOrder(t)
	t1 := t0.Add(2 * time.Hour)

	next, err := order.WithStatus(OrderStatusCancelled, &CancellationRequest{Reason: ReasonCustomerRequest, Comment: " late "}, t1, TransitionOptions{})
	require.NoError(t, err)

	assert.Equal(t, OrderStatusCancelled, next.Status)
	require.NotNil(t, next.Cancellation)
	assert.Equal(t, ReasonCustomerRequest, next.Cancellation.Reason)
	assert.Equal(t, "late", next.Cancellation.Comment)
	assert.Equal(t, t1, next.Cancellation.CancelledAt)
	assert.Equal(t, []string{StepOrderPlaced}, completedSteps(next))
}

func TestWithStatus_StateMachine(t *testing.T) {
	cancel := &CancellationRequest{Reason: ReasonOther}
	tests := []struct {
		from    OrderStatus
		to      OrderStatus
		allowed bool
	}{
		{OrderStatusProcessing, OrderStatusShipped, true},
		{OrderStatusProcessing, OrderStatusDelivered, true},
		{OrderStatusProcessing, OrderStatusCancelled, true},
		{OrderStatusShipped, OrderStatusDelivered, true},
		{OrderStatusShipped, OrderStatusCancelled, true},
		{OrderStatusShipped, OrderStatusProcessing, false},
		{OrderStatusProcessing, OrderStatusOutForDelivery, false},
		{OrderStatusOutForDelivery, OrderStatusDelivered, true},
		{OrderStatusOutForDelivery, OrderStatusCancelled, true},
		{OrderStatusOutForDelivery, OrderStatusShipped, false},
	}

	for _, tc := range tests {
		t.Run(string(tc.from)+"->"+string(tc.to), func(t *testing.T) {
			order := newProcessingOrder(t)
			order.Status = tc.from
			order.Tracking.Status = tc.from

			_, err := order.WithStatus(tc.to, cancel, t0, TransitionOptions{})
			if tc.allowed {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidTransition)
			}
		})
	}
}

func TestWithStatus_TerminalStates(t *testing.T) {
	for _, terminal := range []OrderStatus{OrderStatusDelivered, OrderStatusCancelled} {
		order := newProcessingOrder(t)
		order.Status = terminal

		assert.True(t, order.IsTerminal())
		assert.Empty(t, order.AvailableTransitions())
		_, err := order.WithStatus(OrderStatusShipped, nil, t0, TransitionOptions{})
		assert.ErrorIs(t, err, ErrOrderTerminal)
	}
}

func TestWithStatus_EmptyStatus(t *testing.T) {
	_, err := newProcessingOrder(t).WithStatus("", nil, t0, TransitionOptions{})
	assert.ErrorIs(t, err, ErrStatusRequired)
}

func TestAvailableTransitions(t *testing.T) {
	assert.Equal(t,
		[]OrderStatus{OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled},
		OrderStatusProcessing.AvailableTransitions())
	assert.Equal(t,
		[]OrderStatus{OrderStatusDelivered, OrderStatusCancelled},
		OrderStatusShipped.AvailableTransitions())
}

func TestClone_IsDeep(t *testing.T) {
	order := newProcessingOrder(t)
	order.Cancellation = &CancellationInfo{Reason: ReasonOther}

	c := order.Clone()
	c.Items[0].Quantity = 99
	*c.Tracking.Steps[0].CompletedAt = t0.Add(time.Hour)
	c.Cancellation.Comment = "changed"

	assert.Equal(t, 2, order.Items[0].Quantity)
	assert.Equal(t, t0, *order.Tracking.Steps[0].CompletedAt)
	assert.Empty(t, order.Cancellation.Comment)
}

func TestCancellationReasons(t *testing.T) {
	reasons := CancellationReasons()
	assert.Len(t, reasons, 10)
	assert.Contains(t, reasons, ReasonCustomerRequest)
	assert.Contains(t, reasons, ReasonChangedMind)
	assert.False(t, CancellationReason("nope").IsValid())
}
