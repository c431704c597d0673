package handlers

import (
	"errors"
	"log"
	"net/http"

	response "klarna_checkout/internal/adapter/http/dto/response"
	"klarna_checkout/internal/usecase"
	"klarna_checkout/internal/usecase/interfaces"
	"klarna_checkout/pkg"

	"github.com/gin-gonic/gin"
)

// CheckoutHandler handles HTTP requests for cart/gateway synchronization.
type CheckoutHandler struct {
	usecase usecase.ICheckoutUseCase
}

func NewCheckoutHandler(uc usecase.ICheckoutUseCase) *CheckoutHandler {
	return &CheckoutHandler{usecase: uc}
}

// SyncCart creates or updates the checkout order for a cart.
//
// @Summary      Synchronize a cart with Klarna checkout
// @Tags         checkout
// @Produce      json
// @Param        cart_id  path  string  true  "Cart ID"
// @Success      200  {object}  response.SyncResponse
// @Failure      404  {object}  pkg.HTTPError
// @Failure      502  {object}  response.SyncResponse
// @Router       /checkout/carts/{cart_id}/sync [post]
func (h *CheckoutHandler) SyncCart(c *gin.Context) {
	cartID := c.Param("cart_id")
	log.Printf("[checkout][handler] sync start cart_id=%s", cartID)

	result, err := h.usecase.SyncCart(c.Request.Context(), cartID)
	if err != nil {
		log.Printf("[checkout][handler] sync failed cart_id=%s err=%v", cartID, err)
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if !result.Synced() {
		log.Printf("[checkout][handler] sync not accepted cart_id=%s code=%s", cartID, faultCode(result))
		c.JSON(http.StatusBadGateway, response.FromSyncResult(result))
		return
	}
	log.Printf("[checkout][handler] sync success cart_id=%s order_id=%s", cartID, result.Order.OrderID)

	c.JSON(http.StatusOK, response.FromSyncResult(result))
}

// GetOrder fetches the gateway order snapshot by id.
//
// @Summary      Fetch a Klarna checkout order
// @Tags         checkout
// @Produce      json
// @Param        order_id  path  string  true  "Checkout order ID"
// @Success      200  {object}  response.CheckoutOrderResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /checkout/orders/{order_id} [get]
func (h *CheckoutHandler) GetOrder(c *gin.Context) {
	orderID := c.Param("order_id")

	order, err := h.usecase.GetOrder(c.Request.Context(), orderID)
	if err != nil {
		log.Printf("[checkout][handler] get-order failed order_id=%s err=%v", orderID, err)
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCheckoutOrder(order))
}

// GetCartByOrderID resolves the cart linked to a gateway order id.
//
// @Summary      Resolve the cart for a Klarna checkout order
// @Tags         checkout
// @Produce      json
// @Param        order_id  path  string  true  "Checkout order ID"
// @Success      200  {object}  response.CartResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /checkout/carts/by-order/{order_id} [get]
func (h *CheckoutHandler) GetCartByOrderID(c *gin.Context) {
	orderID := c.Param("order_id")

	cart, err := h.usecase.GetCartByOrderID(c.Request.Context(), orderID)
	if err != nil {
		log.Printf("[checkout][handler] get-cart-by-order failed order_id=%s err=%v", orderID, err)
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCart(cart))
}

func mapCheckoutError(err error) *pkg.AppError {
	var gwErr interfaces.IGatewayError
	switch {
	case errors.Is(err, usecase.ErrInvalidCartID), errors.Is(err, usecase.ErrInvalidOrderID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCartNotFound):
		return pkg.NewDomainErrorSimple("CART_NOT_FOUND", "Cart not found", http.StatusNotFound)
	case errors.Is(err, interfaces.ErrCheckoutNotConfigured):
		return pkg.NewDomainErrorSimple("CHECKOUT_NOT_CONFIGURED", "Klarna checkout is not configured", http.StatusServiceUnavailable)
	case errors.As(err, &gwErr):
		return pkg.NewDomainError("GATEWAY_ERROR", "Payment gateway error", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func faultCode(r usecase.SyncResult) string {
	if r.Fault == nil {
		return ""
	}
	return r.Fault.ErrorCode
}
