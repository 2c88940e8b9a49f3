package controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Korikanas/ncart/src/cart/application/response"
	"github.com/Korikanas/ncart/src/cart/application/usecase"
	"github.com/Korikanas/ncart/src/cart/infrastructure/cache"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	carts := cache.NewCartCache()
	logger := zap.NewNop()
	ctrl := NewCartController(
		usecase.NewAddItemUseCase(carts, nil, logger),
		usecase.NewUpdateQuantityUseCase(carts),
		usecase.NewRemoveItemUseCase(carts),
		usecase.NewGetCartUseCase(carts),
		logger,
	)
	router := gin.New()
	ctrl.RegisterRoutes(router.Group("/api/v1"))
	return router
}

func call(t *testing.T, router *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, response.CartResponse) {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Session-ID", "s1")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var cart response.CartResponse
	if w.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cart))
	}
	return w, cart
}

func TestCartFlow(t *testing.T) {
	router := newRouter()

	_, cart := call(t, router, http.MethodPost, "/api/v1/cart/items", `{"product_id":"p1","name":"Phone","price":"500"}`)
	_, cart = call(t, router, http.MethodPost, "/api/v1/cart/items", `{"product_id":"p1","name":"Phone","price":"500"}`)
	_, cart = call(t, router, http.MethodPost, "/api/v1/cart/items", `{"product_id":"p2","name":"Case","price":19.5}`)
	require.Len(t, cart.Items, 2)
	assert.Equal(t, 3, cart.ItemCount)
	assert.Equal(t, "1019.5", cart.Subtotal.String())

	_, cart = call(t, router, http.MethodPatch, "/api/v1/cart/items/p1", `{"delta":-100}`)
	assert.Equal(t, 1, cart.Items[0].Quantity)

	_, cart = call(t, router, http.MethodPut, "/api/v1/cart/items/p2", `{"quantity":0}`)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, "p1", cart.Items[0].ProductID)

	_, cart = call(t, router, http.MethodDelete, "/api/v1/cart/items/p1", "")
	assert.Empty(t, cart.Items)
	assert.True(t, cart.Subtotal.IsZero())
}

func TestAddItem_Errors(t *testing.T) {
	router := newRouter()

	w, _ := call(t, router, http.MethodPost, "/api/v1/cart/items", `{"name":"x"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = call(t, router, http.MethodPost, "/api/v1/cart/items", `{"product_id":"ghost"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, _ = call(t, router, http.MethodPost, "/api/v1/cart/items", `{"product_id":"p1","name":"x","price":-1}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestClearCart(t *testing.T) {
	router := newRouter()
	call(t, router, http.MethodPost, "/api/v1/cart/items", `{"product_id":"p1","name":"Phone","price":1}`)

	_, cart := call(t, router, http.MethodDelete, "/api/v1/cart", "")
	assert.Empty(t, cart.Items)

	_, cart = call(t, router, http.MethodGet, "/api/v1/cart", "")
	assert.Zero(t, cart.ItemCount)
}
