package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"klarna_checkout/internal/adapter/http/handlers/mocks"
	"klarna_checkout/internal/domain/entities"
	"klarna_checkout/internal/usecase"
	"klarna_checkout/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newCheckoutRouter(t *testing.T) (*mocks.MockICheckoutUseCase, *gin.Engine) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockICheckoutUseCase(ctrl)
	handler := NewCheckoutHandler(uc)

	router := gin.New()
	router.POST("/v1/checkout/carts/:cart_id/sync", handler.SyncCart)
	router.GET("/v1/checkout/orders/:order_id", handler.GetOrder)
	router.GET("/v1/checkout/carts/by-order/:order_id", handler.GetCartByOrderID)
	return uc, router
}

func TestCheckoutHandler_SyncCart(t *testing.T) {
	t.Run("synced cart returns 200", func(t *testing.T) {
		uc, router := newCheckoutRouter(t)
		uc.EXPECT().SyncCart(gomock.Any(), "cart-1").Return(usecase.SyncResult{
			Order: &entities.CheckoutOrder{OrderID: "kco-1", Status: "checkout_incomplete"},
		}, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/v1/checkout/carts/cart-1/sync", nil)
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if body["synced"] != true {
			t.Fatalf("expected synced response, got %v", body)
		}
	})

	t.Run("gateway fault returns 502 with diagnostics", func(t *testing.T) {
		uc, router := newCheckoutRouter(t)
		uc.EXPECT().SyncCart(gomock.Any(), "cart-1").Return(usecase.SyncResult{
			Fault: &entities.GatewayFault{ErrorCode: "BAD_VALUE", Messages: []string{"bad country"}},
		}, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/v1/checkout/carts/cart-1/sync", nil)
		router.ServeHTTP(w, req)

		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if body["synced"] != false {
			t.Fatalf("expected synced=false, got %v", body)
		}
		fault, ok := body["fault"].(map[string]any)
		if !ok || fault["error_code"] != "BAD_VALUE" {
			t.Fatalf("expected fault diagnostics, got %v", body)
		}
	})

	t.Run("unknown cart returns 404", func(t *testing.T) {
		uc, router := newCheckoutRouter(t)
		uc.EXPECT().SyncCart(gomock.Any(), "cart-9").Return(usecase.SyncResult{}, usecase.ErrCartNotFound)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/v1/checkout/carts/cart-9/sync", nil)
		router.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("invalid cart id returns 400", func(t *testing.T) {
		uc, router := newCheckoutRouter(t)
		uc.EXPECT().SyncCart(gomock.Any(), " ").Return(usecase.SyncResult{}, usecase.ErrInvalidCartID)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/v1/checkout/carts/%20/sync", nil)
		router.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unconfigured checkout returns 503", func(t *testing.T) {
		uc, router := newCheckoutRouter(t)
		uc.EXPECT().SyncCart(gomock.Any(), "cart-1").Return(usecase.SyncResult{}, interfaces.ErrCheckoutNotConfigured)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/v1/checkout/carts/cart-1/sync", nil)
		router.ServeHTTP(w, req)

		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})
}

func TestCheckoutHandler_GetOrder(t *testing.T) {
	t.Run("returns the order snapshot", func(t *testing.T) {
		uc, router := newCheckoutRouter(t)
		uc.EXPECT().GetOrder(gomock.Any(), "kco-1").Return(entities.CheckoutOrder{
			OrderID:     "kco-1",
			Status:      "checkout_complete",
			OrderAmount: 25000,
		}, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/v1/checkout/orders/kco-1", nil)
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if body["order_id"] != "kco-1" || body["status"] != "checkout_complete" {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("internal errors return 500", func(t *testing.T) {
		uc, router := newCheckoutRouter(t)
		uc.EXPECT().GetOrder(gomock.Any(), "kco-1").Return(entities.CheckoutOrder{}, errors.New("boom"))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/v1/checkout/orders/kco-1", nil)
		router.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestCheckoutHandler_GetCartByOrderID(t *testing.T) {
	t.Run("resolves the linked cart", func(t *testing.T) {
		uc, router := newCheckoutRouter(t)
		uc.EXPECT().GetCartByOrderID(gomock.Any(), "kco-1").Return(entities.Cart{ID: "cart-1", Currency: "USD"}, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/v1/checkout/carts/by-order/kco-1", nil)
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if body["id"] != "cart-1" {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("missing link returns 404", func(t *testing.T) {
		uc, router := newCheckoutRouter(t)
		uc.EXPECT().GetCartByOrderID(gomock.Any(), "kco-9").Return(entities.Cart{}, usecase.ErrCartNotFound)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/v1/checkout/carts/by-order/kco-9", nil)
		router.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
