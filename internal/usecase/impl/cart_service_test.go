package impl

import (
	"context"
	"net/http"
	"sync"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockService "storefront/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type cartFixture struct {
	srv     *cartService
	state   *SessionState
	store   *memoryStore
	gateway *mockService.MockCartGateway
	catalog *mockService.MockCatalogGateway
}

func newCartFixture(t *testing.T) *cartFixture {
	t.Helper()

	cfg := newTestConfig()
	logger := newDiscardLogger()
	store := newMemoryStore()
	state := NewSessionState(store, cfg, logger)
	gateway := mockService.NewMockCartGateway(t)
	catalog := mockService.NewMockCatalogGateway(t)

	srv, ok := NewCartService(state, gateway, catalog, store, cfg, logger).(*cartService)
	require.True(t, ok)

	return &cartFixture{srv: srv, state: state, store: store, gateway: gateway, catalog: catalog}
}

func (f *cartFixture) storedGuestCart(t *testing.T) entity.GuestCart {
	t.Helper()

	raw, ok := f.store.value(repository.KeyGuestCart)
	require.True(t, ok, "guest cart not stored")

	cart, err := decodeGuestCart(raw)
	require.NoError(t, err)

	return cart
}

func TestCartService_NewCart_StartsLoading(t *testing.T) {
	f := newCartFixture(t)

	snapshot := f.srv.Snapshot()

	assert.True(t, snapshot.IsLoading)
	assert.False(t, snapshot.CartInitialized)
	assert.Empty(t, snapshot.Cart.Items)
}

func TestCartService_GuestAdd_AccumulatesWithoutNetwork(t *testing.T) {
	f := newCartFixture(t)
	ctx := context.Background()

	first := f.srv.AddToCart(ctx, "p1", 2)
	second := f.srv.AddToCart(ctx, "p1", 3)
	third := f.srv.AddToCart(ctx, "p2", 1)

	assert.True(t, first.Success)
	assert.Equal(t, msgAdded, first.Message)
	assert.True(t, second.Success)
	assert.True(t, third.Success)

	stored := f.storedGuestCart(t)
	require.Len(t, stored.Items, 2)
	assert.Equal(t, entity.GuestLine{ProductID: "p1", Quantity: 5}, stored.Items[0])
	assert.Equal(t, entity.GuestLine{ProductID: "p2", Quantity: 1}, stored.Items[1])

	snapshot := f.srv.Snapshot()
	assert.Equal(t, 6, snapshot.Pricing.TotalItems)
	assert.False(t, snapshot.IsUpdating)
	assert.False(t, snapshot.Pricing.CouponApplied)
}

func TestCartService_GuestAdd_RejectsInvalidInput(t *testing.T) {
	f := newCartFixture(t)
	ctx := context.Background()

	res := f.srv.AddToCart(ctx, "  ", 1)
	assert.False(t, res.Success)
	assert.Equal(t, msgProductRequired, res.Message)

	res = f.srv.AddToCart(ctx, "p1", 0)
	assert.False(t, res.Success)
	assert.Equal(t, domainerrors.ErrInvalidQuantity.Message(), res.Message)

	_, stored := f.store.value(repository.KeyGuestCart)
	assert.False(t, stored)
}

func TestCartService_GuestAdd_SerializesConcurrentCalls(t *testing.T) {
	f := newCartFixture(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			f.srv.AddToCart(ctx, "p1", 1)
		}()
	}
	wg.Wait()

	stored := f.storedGuestCart(t)
	require.Len(t, stored.Items, 1)
	assert.Equal(t, 10, stored.Items[0].Quantity)
	assert.Equal(t, 10, f.srv.Snapshot().Pricing.TotalItems)
}

func TestCartService_LoadGuestCart_ShowsStoredLines(t *testing.T) {
	f := newCartFixture(t)
	f.store.put(repository.KeyGuestCart, `{"items":[{"productId":"p1","quantity":2},{"productId":"","quantity":1}]}`)

	f.srv.LoadGuestCart(context.Background())

	snapshot := f.srv.Snapshot()
	require.Len(t, snapshot.Cart.Items, 1)
	assert.Equal(t, "p1", snapshot.Cart.Items[0].ProductID)
	assert.Nil(t, snapshot.Cart.Items[0].Product)
	assert.True(t, snapshot.CartInitialized)
	assert.False(t, snapshot.IsLoading)
}

func TestCartService_FetchGuest_ResolvesAndNormalizes(t *testing.T) {
	f := newCartFixture(t)
	f.store.put(repository.KeyGuestCart, `{"items":[`+
		`{"productId":"p1","quantity":3},`+
		`{"productId":"p2","quantity":1},`+
		`{"productId":"p3","quantity":1},`+
		`{"productId":"p4","quantity":2}]}`)

	inactive := newProduct("p2", 40, 10)
	inactive.IsActive = false
	soldOut := newProduct("p4", 10, 0)
	products := []entity.ProductSnapshot{newProduct("p1", 100, 2), inactive, soldOut}

	f.catalog.EXPECT().ListProducts(mock.Anything, 1000).Return(products, nil).Once()

	res := f.srv.FetchCart(context.Background())

	require.True(t, res.Success)

	snapshot := f.srv.Snapshot()
	require.Len(t, snapshot.Cart.Items, 1)
	item := snapshot.Cart.Items[0]
	assert.Equal(t, "p1", item.ID())
	assert.Equal(t, 2, item.Quantity)
	require.NotNil(t, item.Product)

	assert.InDelta(t, 200, snapshot.Pricing.ItemsPrice, 0.0001)
	assert.InDelta(t, 50, snapshot.Pricing.ShippingPrice, 0.0001)
	assert.InDelta(t, 250, snapshot.Pricing.TotalPrice, 0.0001)
	assert.True(t, snapshot.CartInitialized)
	assert.False(t, snapshot.IsLoading)

	stored := f.storedGuestCart(t)
	assert.Equal(t, []entity.GuestLine{{ProductID: "p1", Quantity: 2}}, stored.Items)
}

func TestCartService_FetchGuest_EmptyCartSkipsCatalog(t *testing.T) {
	f := newCartFixture(t)

	res := f.srv.FetchCart(context.Background())

	assert.True(t, res.Success)
	snapshot := f.srv.Snapshot()
	assert.True(t, snapshot.CartInitialized)
	assert.False(t, snapshot.IsLoading)
	assert.Empty(t, snapshot.Cart.Items)
	assert.InDelta(t, 0, snapshot.Pricing.ShippingPrice, 0.0001)
}

func TestCartService_FetchGuest_CatalogFailureKeepsCart(t *testing.T) {
	f := newCartFixture(t)
	f.store.put(repository.KeyGuestCart, `{"items":[{"productId":"p1","quantity":2}]}`)

	f.catalog.EXPECT().
		ListProducts(mock.Anything, 1000).
		Return(nil, domainerrors.NewTransientGatewayError("list_products", context.DeadlineExceeded)).
		Once()

	res := f.srv.FetchCart(context.Background())

	assert.False(t, res.Success)
	assert.Equal(t, msgCatalogFailed, res.Message)

	snapshot := f.srv.Snapshot()
	assert.Equal(t, msgCatalogFailed, snapshot.LastError)
	assert.True(t, snapshot.CartInitialized)
	assert.False(t, snapshot.IsLoading)

	stored := f.storedGuestCart(t)
	assert.Equal(t, []entity.GuestLine{{ProductID: "p1", Quantity: 2}}, stored.Items)
}

func TestCartService_FetchRemote_TrustsBackendPricing(t *testing.T) {
	f := newCartFixture(t)
	loginAs(f.state, "u1")

	remote := &entity.RemoteCart{
		Items:         []entity.CartItem{remoteLine(newProduct("p1", 100, 5), 2)},
		ItemsPrice:    200,
		ShippingPrice: 50,
		TotalPrice:    225,
		CouponCode:    "SAVE25",
		Discount:      25,
	}
	f.gateway.EXPECT().FetchCart(mock.Anything).Return(remote, nil).Once()

	res := f.srv.FetchCart(context.Background())

	require.True(t, res.Success)
	snapshot := f.srv.Snapshot()
	require.Len(t, snapshot.Cart.Items, 1)
	assert.Equal(t, "p1", snapshot.Cart.Items[0].ProductID)
	assert.InDelta(t, 225, snapshot.Pricing.TotalPrice, 0.0001)
	assert.True(t, snapshot.Pricing.CouponApplied)
	assert.Equal(t, "SAVE25", snapshot.Pricing.AppliedCouponCode)
	assert.Equal(t, 2, snapshot.Pricing.TotalItems)
}

func TestCartService_FetchRemote_NotFoundIsEmptyCart(t *testing.T) {
	f := newCartFixture(t)
	loginAs(f.state, "u1")

	f.gateway.EXPECT().
		FetchCart(mock.Anything).
		Return(nil, domainerrors.NewGatewayError("fetch_cart", http.StatusNotFound, "Cart not found")).
		Once()

	res := f.srv.FetchCart(context.Background())

	assert.True(t, res.Success)
	snapshot := f.srv.Snapshot()
	assert.Empty(t, snapshot.Cart.Items)
	assert.Empty(t, snapshot.LastError)
	assert.True(t, snapshot.CartInitialized)
}

func TestCartService_FetchRemote_UnauthorizedFallsBackToGuest(t *testing.T) {
	f := newCartFixture(t)
	loginAs(f.state, "u1")

	f.gateway.EXPECT().
		FetchCart(mock.Anything).
		Return(nil, domainerrors.NewGatewayError("fetch_cart", http.StatusUnauthorized, "")).
		Once()

	res := f.srv.FetchCart(context.Background())

	assert.True(t, res.Success)
	assert.True(t, f.srv.Snapshot().CartInitialized)
}

func TestCartService_FetchRemote_FailureSetsLastError(t *testing.T) {
	f := newCartFixture(t)
	loginAs(f.state, "u1")

	f.gateway.EXPECT().
		FetchCart(mock.Anything).
		Return(nil, domainerrors.NewGatewayError("fetch_cart", http.StatusInternalServerError, "")).
		Once()

	res := f.srv.FetchCart(context.Background())

	assert.False(t, res.Success)
	assert.Equal(t, msgFetchFailed, res.Message)
	snapshot := f.srv.Snapshot()
	assert.Equal(t, msgFetchFailed, snapshot.LastError)
	assert.False(t, snapshot.IsLoading)
}

func TestCartService_AddAuthenticated_DropsCouponBelowMinimum(t *testing.T) {
	f := newCartFixture(t)
	loginAs(f.state, "u1")
	product := newProduct("p1", 50, 10)

	f.gateway.EXPECT().FetchCart(mock.Anything).Return(&entity.RemoteCart{
		Items:         []entity.CartItem{remoteLine(product, 4)},
		ItemsPrice:    200,
		ShippingPrice: 50,
		TotalPrice:    200,
		CouponCode:    "SAVE50",
		Discount:      50,
	}, nil).Once()
	require.True(t, f.srv.FetchCart(context.Background()).Success)

	f.gateway.EXPECT().AddItem(mock.Anything, "p1", 1).Return(&entity.RemoteCart{
		Items:         []entity.CartItem{remoteLine(product, 5)},
		ItemsPrice:    250,
		ShippingPrice: 50,
		TotalPrice:    250,
		Discount:      50,
		MinOrderValue: 400,
	}, nil).Once()

	res := f.srv.AddToCart(context.Background(), "p1", 1)

	require.True(t, res.Success)
	assert.Equal(t, msgAdded, res.Message)
	snapshot := f.srv.Snapshot()
	assert.False(t, snapshot.Pricing.CouponApplied)
	assert.InDelta(t, 0, snapshot.Pricing.Discount, 0.0001)
	assert.InDelta(t, 300, snapshot.Pricing.TotalPrice, 0.0001)
	assert.Equal(t, 5, snapshot.Pricing.TotalItems)
}

func TestCartService_AddAuthenticated_KeepsValidCoupon(t *testing.T) {
	f := newCartFixture(t)
	loginAs(f.state, "u1")
	product := newProduct("p1", 100, 10)

	f.gateway.EXPECT().FetchCart(mock.Anything).Return(&entity.RemoteCart{
		Items:         []entity.CartItem{remoteLine(product, 2)},
		ItemsPrice:    200,
		ShippingPrice: 50,
		TotalPrice:    225,
		CouponCode:    "SAVE25",
		Discount:      25,
	}, nil).Once()
	require.True(t, f.srv.FetchCart(context.Background()).Success)

	f.gateway.EXPECT().AddItem(mock.Anything, "p1", 1).Return(&entity.RemoteCart{
		Items:      []entity.CartItem{remoteLine(product, 3)},
		ItemsPrice: 300,
		TotalPrice: 275,
		CouponCode: "SAVE25",
		Discount:   25,
	}, nil).Once()

	res := f.srv.AddToCart(context.Background(), "p1", 1)

	require.True(t, res.Success)
	snapshot := f.srv.Snapshot()
	assert.True(t, snapshot.Pricing.CouponApplied)
	assert.InDelta(t, 0, snapshot.Pricing.ShippingPrice, 0.0001)
	assert.InDelta(t, 275, snapshot.Pricing.TotalPrice, 0.0001)
}

func TestCartService_AddAuthenticated_UnauthorizedContinuesAsGuest(t *testing.T) {
	f := newCartFixture(t)
	loginAs(f.state, "u1")

	f.gateway.EXPECT().
		AddItem(mock.Anything, "p1", 2).
		Return(nil, domainerrors.NewGatewayError("add_item", http.StatusUnauthorized, "")).
		Once()

	res := f.srv.AddToCart(context.Background(), "p1", 2)

	assert.True(t, res.Success)
	assert.Equal(t, msgAddedGuest, res.Message)
	assert.Empty(t, f.state.CurrentUserID())
	assert.Equal(t, entity.SessionAnonymous, f.state.Current().State)

	stored := f.storedGuestCart(t)
	assert.Equal(t, []entity.GuestLine{{ProductID: "p1", Quantity: 2}}, stored.Items)
}

func TestCartService_AddAuthenticated_FailureReported(t *testing.T) {
	f := newCartFixture(t)
	loginAs(f.state, "u1")

	f.gateway.EXPECT().
		AddItem(mock.Anything, "p1", 1).
		Return(nil, domainerrors.NewGatewayError("add_item", http.StatusBadRequest, "Only 0 left in stock")).
		Once()

	res := f.srv.AddToCart(context.Background(), "p1", 1)

	assert.False(t, res.Success)
	assert.Equal(t, "Only 0 left in stock", res.Message)
	assert.False(t, f.srv.Snapshot().IsUpdating)
}

func TestCartService_UpdateCart_ClampsQuantity(t *testing.T) {
	f := newCartFixture(t)
	loginAs(f.state, "u1")
	product := newProduct("p1", 100, 10)

	f.gateway.EXPECT().FetchCart(mock.Anything).Return(&entity.RemoteCart{
		Items:         []entity.CartItem{remoteLine(product, 1)},
		ItemsPrice:    100,
		ShippingPrice: 50,
		TotalPrice:    150,
	}, nil).Once()
	require.True(t, f.srv.FetchCart(context.Background()).Success)

	f.gateway.EXPECT().UpdateItem(mock.Anything, "p1", 5).Return(&entity.RemoteCart{}, nil).Once()

	res := f.srv.UpdateCart(context.Background(), "p1", 12)

	require.True(t, res.Success)
	snapshot := f.srv.Snapshot()
	require.Len(t, snapshot.Cart.Items, 1)
	assert.Equal(t, 5, snapshot.Cart.Items[0].Quantity)
	assert.InDelta(t, 500, snapshot.Pricing.ItemsPrice, 0.0001)
	assert.InDelta(t, 0, snapshot.Pricing.ShippingPrice, 0.0001)
	assert.InDelta(t, 500, snapshot.Pricing.TotalPrice, 0.0001)

	f.gateway.EXPECT().UpdateItem(mock.Anything, "p1", 1).Return(&entity.RemoteCart{}, nil).Once()

	res = f.srv.UpdateCart(context.Background(), "p1", 0)

	require.True(t, res.Success)
	assert.Equal(t, 1, f.srv.Snapshot().Cart.Items[0].Quantity)
}

func TestCartService_UpdateCart_UnauthorizedExpiresSession(t *testing.T) {
	f := newCartFixture(t)
	loginAs(f.state, "u1")

	f.gateway.EXPECT().
		UpdateItem(mock.Anything, "p1", 2).
		Return(nil, domainerrors.NewGatewayError("update_item", http.StatusUnauthorized, "")).
		Once()

	res := f.srv.UpdateCart(context.Background(), "p1", 2)

	assert.False(t, res.Success)
	assert.Equal(t, domainerrors.ErrSessionExpired.Message(), res.Message)
	assert.Empty(t, f.state.CurrentUserID())
}

func TestCartService_UpdateGuest_MissingLine(t *testing.T) {
	f := newCartFixture(t)

	res := f.srv.UpdateCart(context.Background(), "p1", 2)

	assert.False(t, res.Success)
	assert.Equal(t, domainerrors.ErrCartItemNotFound.Message(), res.Message)
}

func TestCartService_UpdateGuest_PersistsAndResolves(t *testing.T) {
	f := newCartFixture(t)
	f.store.put(repository.KeyGuestCart, `{"items":[{"productId":"p1","quantity":1}]}`)

	f.catalog.EXPECT().
		ListProducts(mock.Anything, 1000).
		Return([]entity.ProductSnapshot{newProduct("p1", 60, 3)}, nil).
		Once()

	res := f.srv.UpdateCart(context.Background(), "p1", 4)

	require.True(t, res.Success)
	stored := f.storedGuestCart(t)
	assert.Equal(t, []entity.GuestLine{{ProductID: "p1", Quantity: 3}}, stored.Items)

	snapshot := f.srv.Snapshot()
	require.Len(t, snapshot.Cart.Items, 1)
	assert.Equal(t, 3, snapshot.Cart.Items[0].Quantity)
	assert.InDelta(t, 180, snapshot.Pricing.ItemsPrice, 0.0001)
	assert.InDelta(t, 230, snapshot.Pricing.TotalPrice, 0.0001)
}

func TestCartService_RemoveLastItem_ClearsDiscounts(t *testing.T) {
	f := newCartFixture(t)
	loginAs(f.state, "u1")

	f.gateway.EXPECT().FetchCart(mock.Anything).Return(&entity.RemoteCart{
		Items:         []entity.CartItem{remoteLine(newProduct("p1", 100, 5), 1)},
		ItemsPrice:    100,
		ShippingPrice: 50,
		TotalPrice:    130,
		CouponCode:    "SAVE20",
		Discount:      20,
	}, nil).Once()
	require.True(t, f.srv.FetchCart(context.Background()).Success)

	f.gateway.EXPECT().RemoveItem(mock.Anything, "p1").Return(&entity.RemoteCart{}, nil).Once()

	res := f.srv.RemoveCartItem(context.Background(), "p1")

	require.True(t, res.Success)
	snapshot := f.srv.Snapshot()
	assert.Empty(t, snapshot.Cart.Items)
	assert.False(t, snapshot.Pricing.CouponApplied)
	assert.Empty(t, snapshot.Pricing.AppliedCouponCode)
	assert.InDelta(t, 0, snapshot.Pricing.TotalPrice, 0.0001)
	assert.InDelta(t, 0, snapshot.Pricing.ShippingPrice, 0.0001)
}

func TestCartService_RemoveGuestItem(t *testing.T) {
	f := newCartFixture(t)
	f.store.put(repository.KeyGuestCart, `{"items":[{"productId":"p1","quantity":1},{"productId":"p2","quantity":2}]}`)

	res := f.srv.RemoveCartItem(context.Background(), "p1")

	require.True(t, res.Success)
	stored := f.storedGuestCart(t)
	assert.Equal(t, []entity.GuestLine{{ProductID: "p2", Quantity: 2}}, stored.Items)
	assert.Equal(t, 2, f.srv.Snapshot().Pricing.TotalItems)
}

func TestCartService_ClearCart_ClearsLocallyWhenBackendFails(t *testing.T) {
	f := newCartFixture(t)
	loginAs(f.state, "u1")
	f.store.put(repository.KeyGuestCart, `{"items":[{"productId":"p9","quantity":1}]}`)

	f.gateway.EXPECT().FetchCart(mock.Anything).Return(&entity.RemoteCart{
		Items:      []entity.CartItem{remoteLine(newProduct("p1", 100, 5), 1)},
		ItemsPrice: 100,
		TotalPrice: 150,
	}, nil).Once()
	require.True(t, f.srv.FetchCart(context.Background()).Success)

	f.gateway.EXPECT().
		ClearCart(mock.Anything).
		Return(domainerrors.NewGatewayError("clear_cart", http.StatusInternalServerError, "")).
		Once()

	res := f.srv.ClearCart(context.Background())

	assert.False(t, res.Success)
	assert.Equal(t, msgClearFailed, res.Message)

	snapshot := f.srv.Snapshot()
	assert.Empty(t, snapshot.Cart.Items)
	assert.Equal(t, entity.Pricing{}, snapshot.Pricing)

	_, stored := f.store.value(repository.KeyGuestCart)
	assert.False(t, stored)
}

func TestCartService_MergeGuestCart_ContinuesPastFailures(t *testing.T) {
	f := newCartFixture(t)
	f.store.put(repository.KeyGuestCart, `{"items":[{"productId":"p1","quantity":2},{"productId":"p2","quantity":1},{"productId":"p3","quantity":4}]}`)
	loginAs(f.state, "u1")

	var order []string
	record := func(_ context.Context, productID string, _ int) {
		order = append(order, productID)
	}

	f.gateway.EXPECT().AddItem(mock.Anything, "p1", 2).Run(record).Return(&entity.RemoteCart{}, nil).Once()
	f.gateway.EXPECT().
		AddItem(mock.Anything, "p2", 1).
		Run(record).
		Return(nil, domainerrors.NewGatewayError("add_item", http.StatusBadRequest, "Product unavailable")).
		Once()
	f.gateway.EXPECT().AddItem(mock.Anything, "p3", 4).Run(record).Return(&entity.RemoteCart{}, nil).Once()
	f.gateway.EXPECT().FetchCart(mock.Anything).Return(&entity.RemoteCart{
		Items: []entity.CartItem{
			remoteLine(newProduct("p1", 10, 5), 2),
			remoteLine(newProduct("p3", 10, 5), 4),
		},
		ItemsPrice:    60,
		ShippingPrice: 50,
		TotalPrice:    110,
	}, nil).Once()

	res := f.srv.MergeGuestCart(context.Background())

	require.True(t, res.Success)
	assert.Equal(t, "1 of 3 items could not be added to your cart", res.Message)
	assert.Equal(t, []string{"p1", "p2", "p3"}, order)

	_, stored := f.store.value(repository.KeyGuestCart)
	assert.False(t, stored)
	assert.Len(t, f.srv.Snapshot().Cart.Items, 2)
}

func TestCartService_MergeGuestCart_RequiresLogin(t *testing.T) {
	f := newCartFixture(t)

	res := f.srv.MergeGuestCart(context.Background())

	assert.False(t, res.Success)
	assert.Equal(t, domainerrors.ErrLoginRequired.Message(), res.Message)
}

func TestCartService_DegradedStorage_KeepsGuestCartInMemory(t *testing.T) {
	f := newCartFixture(t)
	f.store.failWrites = true
	ctx := context.Background()

	require.True(t, f.srv.AddToCart(ctx, "p1", 1).Success)
	require.True(t, f.srv.AddToCart(ctx, "p1", 2).Success)

	assert.True(t, f.srv.guest.degraded())
	assert.Equal(t, 3, f.srv.Snapshot().Pricing.TotalItems)

	guest := f.srv.guest.load(ctx)
	assert.Equal(t, []entity.GuestLine{{ProductID: "p1", Quantity: 3}}, guest.Items)

	f.store.failWrites = false
	require.True(t, f.srv.AddToCart(ctx, "p2", 1).Success)

	assert.False(t, f.srv.guest.degraded())
	stored := f.storedGuestCart(t)
	assert.Len(t, stored.Items, 2)
}

func TestCartService_CancelledContext_NotStarted(t *testing.T) {
	f := newCartFixture(t)
	loginAs(f.state, "u1")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res := f.srv.FetchCart(ctx)

	assert.False(t, res.Success)
	assert.Equal(t, msgCancelled, res.Message)
}

func TestCartService_ClearCartOnLogout_KeepsGuestStore(t *testing.T) {
	f := newCartFixture(t)
	f.store.put(repository.KeyGuestCart, `{"items":[{"productId":"p1","quantity":1}]}`)
	f.srv.LoadGuestCart(context.Background())

	f.srv.ClearCartOnLogout(context.Background())

	assert.Empty(t, f.srv.Snapshot().Cart.Items)
	_, stored := f.store.value(repository.KeyGuestCart)
	assert.True(t, stored)
}

func TestCartService_Subscribe_PublishesInOrder(t *testing.T) {
	f := newCartFixture(t)

	var (
		mu       sync.Mutex
		received []string
	)
	unsubscribe := f.srv.Subscribe(func(state entity.CartState) {
		mu.Lock()
		defer mu.Unlock()
		received = append(received, state.BuyNowProductID)
	})

	f.srv.SetBuyNowProduct("p1")
	f.srv.ClearBuyNow()
	unsubscribe()
	unsubscribe()
	f.srv.SetBuyNowProduct("p2")

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"p1", ""}, received)
	assert.Equal(t, "p2", f.srv.Snapshot().BuyNowProductID)
}

func TestCartService_Snapshot_IsIsolated(t *testing.T) {
	f := newCartFixture(t)
	require.True(t, f.srv.AddToCart(context.Background(), "p1", 1).Success)

	snapshot := f.srv.Snapshot()
	snapshot.Cart.Items[0].Quantity = 99

	assert.Equal(t, 1, f.srv.Snapshot().Cart.Items[0].Quantity)
}
