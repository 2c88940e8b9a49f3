package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	cartEntity "github.com/Korikanas/ncart/src/cart/domain/entity"
	cartCache "github.com/Korikanas/ncart/src/cart/infrastructure/cache"
	"github.com/Korikanas/ncart/src/order/application/request"
	"github.com/Korikanas/ncart/src/order/domain/entity"
	"github.com/Korikanas/ncart/src/order/infrastructure/cache"
	"github.com/Korikanas/ncart/src/shared/domain/failure"
	"github.com/Korikanas/ncart/src/shared/infrastructure/inflight"
	"github.com/Korikanas/ncart/src/shared/infrastructure/metrics"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

var t0 = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

// fakeGateway simula el backend; block permite retener una llamada en curso
type fakeGateway struct {
	createErr error
	updateErr error
	listed    []*entity.Order
	created   []*entity.Order
	updated   []*entity.Order
	calls     int
	block     chan struct{}
	entered   chan struct{}
}

func (g *fakeGateway) wait() {
	if g.block != nil {
		g.entered <- struct{}{}
		<-g.block
	}
}

func (g *fakeGateway) Create(_ context.Context, _ string, order *entity.Order) (*entity.Order, error) {
	g.calls++
	g.wait()
	if g.createErr != nil {
		return nil, g.createErr
	}
	saved := order.Clone()
	saved.ID = "srv-" + order.ID[:8]
	g.created = append(g.created, saved)
	return saved, nil
}

func (g *fakeGateway) Update(_ context.Context, _ string, order *entity.Order) (*entity.Order, error) {
	g.calls++
	g.wait()
	if g.updateErr != nil {
		return nil, g.updateErr
	}
	g.updated = append(g.updated, order.Clone())
	return order.Clone(), nil
}

func (g *fakeGateway) List(_ context.Context, _ string) ([]*entity.Order, error) {
	g.calls++
	return g.listed, nil
}

type recordingObserver struct {
	checkouts   []string
	transitions []string
}

func (r *recordingObserver) ObserveCheckout(result string) {
	r.checkouts = append(r.checkouts, result)
}

func (r *recordingObserver) ObserveTransition(status, result string) {
	r.transitions = append(r.transitions, status+"="+result)
}

type fixture struct {
	carts    *cartCache.CartCache
	orders   *cache.OrderCache
	gateway  *fakeGateway
	observer *recordingObserver
	checkout *CheckoutUseCase
	status   *ApplyStatusTransitionUseCase
}

func newFixture(opts entity.TransitionOptions) *fixture {
	payments := cache.NewPaymentMethodCache()
	payments.Load(cache.DefaultPaymentMethods(), zap.NewNop())
	f := &fixture{
		carts:    cartCache.NewCartCache(),
		orders:   cache.NewOrderCache(),
		gateway:  &fakeGateway{},
		observer: &recordingObserver{},
	}
	guard := inflight.NewGuard()
	clock := func() time.Time { return t0 }
	f.checkout = NewCheckoutUseCase(f.carts, f.gateway, f.orders, payments, guard, f.observer, zap.NewNop()).WithClock(clock)
	f.status = NewApplyStatusTransitionUseCase(f.gateway, f.orders, guard, f.observer, opts, zap.NewNop()).
		WithClock(func() time.Time { return t0.Add(time.Hour) })
	return f
}

func (f *fixture) fillCart(session string) {
	cart := f.carts.Get(session)
	cart.AddItem(cartEntity.Product{ID: "p1", Name: "Phone", Price: decimal.NewFromInt(500)})
	cart.AddItem(cartEntity.Product{ID: "p1", Name: "Phone", Price: decimal.NewFromInt(500)})
	cart.AddItem(cartEntity.Product{ID: "p2", Name: "Case", Price: decimal.RequireFromString("19.99")})
}

func (f *fixture) placeOrder(t *testing.T, session string) string {
	t.Helper()
	f.fillCart(session)
	resp, err := f.checkout.Execute(context.Background(), session, "tok", &request.CheckoutRequest{PaymentMethod: "card", ShippingAddress: "1 Main St"})
	require.NoError(t, err)
	return resp.OrderID
}

func TestCheckout_Success(t *testing.T) {
	f := newFixture(entity.TransitionOptions{})
	f.fillCart("s1")

	resp, err := f.checkout.Execute(context.Background(), "s1", "tok", &request.CheckoutRequest{PaymentMethod: "card", ShippingAddress: "1 Main St"})
	require.NoError(t, err)

	assert.Equal(t, "Processing", resp.Status)
	assert.Equal(t, "Credit Card", resp.PaymentMethod)
	assert.True(t, decimal.RequireFromString("1019.99").Equal(resp.Total))
	assert.Equal(t, 3, resp.TotalItems)
	assert.Equal(t, []string{"Shipped", "Delivered", "Cancelled"}, resp.AvailableTransitions)
	require.Len(t, resp.Tracking, 5)
	assert.True(t, resp.Tracking[0].Completed)
	assert.Equal(t, t0, *resp.Tracking[0].CompletedAt)

	assert.True(t, f.carts.Snapshot("s1").IsEmpty())
	cached := f.orders.List("s1")
	require.Len(t, cached, 1)
	assert.Equal(t, resp.OrderID, cached[0].ID)
	assert.Equal(t, []string{metrics.ResultSuccess}, f.observer.checkouts)
}

func TestCheckout_Preconditions(t *testing.T) {
	tests := []struct {
		name    string
		fill    bool
		token   string
		payment string
		want    error
	}{
		{"empty cart", false, "tok", "card", entity.ErrEmptyCart},
		{"no credential", true, "", "card", entity.ErrNotAuthenticated},
		{"no payment method", true, "tok", "", entity.ErrPaymentMethodRequired},
		{"unknown payment method", true, "tok", "cash", entity.ErrUnsupportedPaymentMethod},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(entity.TransitionOptions{})
			if tc.fill {
				f.fillCart("s1")
			}

			_, err := f.checkout.Execute(context.Background(), "s1", tc.token, &request.CheckoutRequest{PaymentMethod: tc.payment})

			assert.ErrorIs(t, err, tc.want)
			assert.True(t, failure.IsPrecondition(err))
			assert.Zero(t, f.gateway.calls, "no request on precondition failure")
			assert.Equal(t, []string{metrics.ResultPrecondition}, f.observer.checkouts)
		})
	}
}

func TestCheckout_FailureKeepsCart(t *testing.T) {
	for _, gwErr := range []error{
		failure.NewNetwork("create_order", errors.New("connection refused")),
		failure.NewRejected("create_order", 500, "db down"),
	} {
		f := newFixture(entity.TransitionOptions{})
		f.fillCart("s1")
		before := f.carts.Snapshot("s1")
		f.gateway.createErr = gwErr

		_, err := f.checkout.Execute(context.Background(), "s1", "tok", &request.CheckoutRequest{PaymentMethod: "UPI"})

		require.Error(t, err)
		assert.Equal(t, before, f.carts.Snapshot("s1"))
		assert.Empty(t, f.orders.List("s1"))
	}
}

func TestCheckout_RejectsDuplicateWhileInFlight(t *testing.T) {
	defer goleak.VerifyNone(t)

	f := newFixture(entity.TransitionOptions{})
	f.fillCart("s1")
	f.gateway.block = make(chan struct{})
	f.gateway.entered = make(chan struct{})

	done := make(chan error)
	go func() {
		_, err := f.checkout.Execute(context.Background(), "s1", "tok", &request.CheckoutRequest{PaymentMethod: "card"})
		done <- err
	}()
	<-f.gateway.entered

	_, err := f.checkout.Execute(context.Background(), "s1", "tok", &request.CheckoutRequest{PaymentMethod: "card"})
	assert.ErrorIs(t, err, entity.ErrActionInFlight)

	close(f.gateway.block)
	require.NoError(t, <-done)
	assert.Equal(t, 1, f.gateway.calls)
}

func TestCheckout_KeepsItemsAddedWhileInFlight(t *testing.T) {
	defer goleak.VerifyNone(t)

	f := newFixture(entity.TransitionOptions{})
	f.fillCart("s1")
	f.gateway.block = make(chan struct{})
	f.gateway.entered = make(chan struct{})

	done := make(chan error)
	go func() {
		_, err := f.checkout.Execute(context.Background(), "s1", "tok", &request.CheckoutRequest{PaymentMethod: "card"})
		done <- err
	}()
	<-f.gateway.entered

	f.carts.Get("s1").AddItem(cartEntity.Product{ID: "late", Name: "Charger", Price: decimal.NewFromInt(25)})

	close(f.gateway.block)
	require.NoError(t, <-done)

	require.Len(t, f.gateway.created, 1)
	assert.Len(t, f.gateway.created[0].Items, 2)
	items := f.carts.Get("s1").Items()
	require.Len(t, items, 1)
	assert.Equal(t, "late", items[0].ID)
	assert.Equal(t, 1, items[0].Quantity)
}

func TestApplyStatusTransition_Success(t *testing.T) {
	f := newFixture(entity.TransitionOptions{})
	id := f.placeOrder(t, "s1")

	resp, err := f.status.Execute(context.Background(), "s1", "tok", id, &request.UpdateStatusRequest{Status: "Shipped"})
	require.NoError(t, err)

	assert.Equal(t, "Shipped", resp.Status)
	assert.Equal(t, "Shipped", resp.TrackingStatus)
	assert.True(t, resp.Tracking[2].Completed)
	assert.False(t, resp.Tracking[1].Completed)

	cached, ok := f.orders.Get("s1", id)
	require.True(t, ok)
	assert.Equal(t, entity.OrderStatusShipped, cached.Status)
	assert.Equal(t, []string{"Shipped=" + metrics.ResultSuccess}, f.observer.transitions)
}

func TestApplyStatusTransition_CompleteSkippedSteps(t *testing.T) {
	f := newFixture(entity.TransitionOptions{CompleteSkippedSteps: true})
	id := f.placeOrder(t, "s1")

	resp, err := f.status.Execute(context.Background(), "s1", "tok", id, &request.UpdateStatusRequest{Status: "Delivered"})
	require.NoError(t, err)

	for _, step := range resp.Tracking {
		assert.True(t, step.Completed, step.Name)
	}
	assert.Empty(t, resp.AvailableTransitions)
}

func TestApplyStatusTransition_Preconditions(t *testing.T) {
	f := newFixture(entity.TransitionOptions{})
	id := f.placeOrder(t, "s1")
	callsAfterCheckout := f.gateway.calls

	_, err := f.status.Execute(context.Background(), "s1", "tok", "missing", &request.UpdateStatusRequest{Status: "Shipped"})
	assert.ErrorIs(t, err, entity.ErrOrderNotFound)

	_, err = f.status.Execute(context.Background(), "s1", "", id, &request.UpdateStatusRequest{Status: "Shipped"})
	assert.ErrorIs(t, err, entity.ErrNotAuthenticated)

	_, err = f.status.Execute(context.Background(), "s1", "tok", id, &request.UpdateStatusRequest{Status: "Cancelled"})
	assert.ErrorIs(t, err, entity.ErrCancellationReasonRequired)

	_, err = f.status.Execute(context.Background(), "s1", "tok", id, &request.UpdateStatusRequest{Status: "Processing"})
	assert.NoError(t, err, "re-applying the current status is allowed")

	_, err = f.status.Execute(context.Background(), "s1", "tok", id, &request.UpdateStatusRequest{Status: "Delivered"})
	require.NoError(t, err)
	_, err = f.status.Execute(context.Background(), "s1", "tok", id, &request.UpdateStatusRequest{Status: "Shipped"})
	assert.ErrorIs(t, err, entity.ErrOrderTerminal)
	assert.True(t, failure.IsPrecondition(err))

	assert.Equal(t, callsAfterCheckout+2, f.gateway.calls)
}

func TestApplyStatusTransition_FailureKeepsCachedOrder(t *testing.T) {
	f := newFixture(entity.TransitionOptions{})
	id := f.placeOrder(t, "s1")
	before, _ := f.orders.Get("s1", id)
	f.gateway.updateErr = failure.NewRejected("update_order", 409, "conflict")

	_, err := f.status.Execute(context.Background(), "s1", "tok", id, &request.UpdateStatusRequest{Status: "Shipped"})

	assert.True(t, failure.IsRejected(err))
	after, _ := f.orders.Get("s1", id)
	assert.Equal(t, before, after)
	assert.Equal(t, []string{"Shipped=" + metrics.ResultRejected}, f.observer.transitions)
}

func TestCancelOrder(t *testing.T) {
	f := newFixture(entity.TransitionOptions{})
	id := f.placeOrder(t, "s1")
	cancel := NewCancelOrderUseCase(f.status)

	_, err := cancel.Execute(context.Background(), "s1", "tok", id, &request.CancelOrderRequest{})
	assert.ErrorIs(t, err, entity.ErrCancellationReasonRequired)

	resp, err := cancel.Execute(context.Background(), "s1", "tok", id, &request.CancelOrderRequest{Reason: "Payment Issues", Comment: "card declined"})
	require.NoError(t, err)

	assert.Equal(t, "Cancelled", resp.Status)
	require.NotNil(t, resp.Cancellation)
	assert.Equal(t, "Payment Issues", resp.Cancellation.Reason)
	assert.Equal(t, t0.Add(time.Hour), resp.Cancellation.CancelledAt)
	require.Len(t, f.gateway.updated, 1)
	assert.NotNil(t, f.gateway.updated[0].Cancellation)
}

func TestListOrders_ReplacesCacheAndPaginates(t *testing.T) {
	f := newFixture(entity.TransitionOptions{})
	f.placeOrder(t, "s1")
	f.gateway.listed = []*entity.Order{
		{ID: "old", CreatedAt: t0, Status: entity.OrderStatusDelivered},
		{ID: "new", CreatedAt: t0.Add(48 * time.Hour), Status: entity.OrderStatusProcessing},
		{ID: "mid", CreatedAt: t0.Add(24 * time.Hour), Status: entity.OrderStatusShipped},
	}
	uc := NewListOrdersUseCase(f.gateway, f.orders, zap.NewNop())

	resp, err := uc.Execute(context.Background(), "s1", "tok", 1, 2)
	require.NoError(t, err)

	assert.Equal(t, 3, resp.TotalCount)
	assert.Equal(t, 2, resp.TotalPages)
	require.Len(t, resp.Items, 2)
	assert.Equal(t, "new", resp.Items[0].OrderID)
	assert.Equal(t, "mid", resp.Items[1].OrderID)

	resp, err = uc.Execute(context.Background(), "s1", "tok", 5, 2)
	require.NoError(t, err)
	assert.Empty(t, resp.Items)

	_, err = uc.Execute(context.Background(), "s1", "", 1, 10)
	assert.ErrorIs(t, err, entity.ErrNotAuthenticated)
}

// listGateway retiene cada List hasta que se cierra release y respeta la
// cancelación del contexto recibido
type listGateway struct {
	fakeGateway
	mu      sync.Mutex
	tokens  []string
	entered chan string
	release chan struct{}
}

func (g *listGateway) List(ctx context.Context, token string) ([]*entity.Order, error) {
	g.mu.Lock()
	g.tokens = append(g.tokens, token)
	g.mu.Unlock()
	g.entered <- token
	<-g.release
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return []*entity.Order{{ID: "o-" + token, CreatedAt: t0}}, nil
}

func newListGateway() *listGateway {
	return &listGateway{entered: make(chan string, 2), release: make(chan struct{})}
}

func TestListOrders_CancelledCallerDoesNotFailSharedFetch(t *testing.T) {
	defer goleak.VerifyNone(t)

	gateway := newListGateway()
	uc := NewListOrdersUseCase(gateway, cache.NewOrderCache(), zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	first := make(chan error, 1)
	go func() {
		_, err := uc.Execute(ctx, "s1", "tok", 1, 10)
		first <- err
	}()
	<-gateway.entered

	second := make(chan error, 1)
	go func() {
		resp, err := uc.Execute(context.Background(), "s1", "tok", 1, 10)
		if err == nil && resp.TotalCount != 1 {
			err = errors.New("unexpected order count")
		}
		second <- err
	}()

	cancel()
	close(gateway.release)

	assert.NoError(t, <-first)
	assert.NoError(t, <-second)
}

func TestListOrders_DifferentTokensDoNotShareFetch(t *testing.T) {
	defer goleak.VerifyNone(t)

	gateway := newListGateway()
	orders := cache.NewOrderCache()
	uc := NewListOrdersUseCase(gateway, orders, zap.NewNop())

	done := make(chan error, 2)
	for _, token := range []string{"tokA", "tokB"} {
		go func() {
			_, err := uc.Execute(context.Background(), "s1", token, 1, 10)
			done <- err
		}()
	}

	// ambas llamadas llegan al backend mientras la otra sigue en curso
	for i := 0; i < 2; i++ {
		select {
		case <-gateway.entered:
		case <-time.After(2 * time.Second):
			close(gateway.release)
			t.Fatal("second token waited on the first token's fetch")
		}
	}
	close(gateway.release)

	require.NoError(t, <-done)
	require.NoError(t, <-done)
	assert.ElementsMatch(t, []string{"tokA", "tokB"}, gateway.tokens)
}

func TestGetOrder(t *testing.T) {
	f := newFixture(entity.TransitionOptions{})
	id := f.placeOrder(t, "s1")
	uc := NewGetOrderUseCase(f.orders)

	resp, err := uc.Execute("s1", id)
	require.NoError(t, err)
	assert.Equal(t, id, resp.OrderID)

	_, err = uc.Execute("other-session", id)
	assert.ErrorIs(t, err, entity.ErrOrderNotFound)

	tr, err := uc.Transitions("s1", id)
	require.NoError(t, err)
	assert.False(t, tr.Terminal)
	assert.Len(t, tr.CancellationReasons, 10)
}
