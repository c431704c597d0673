package routes

import (
	"klarna_checkout/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCheckout     = "/checkout"
	PathConfirmation = "/order-confirmation"
)

func addCheckoutRoutes(rg *gin.RouterGroup, checkoutHandler *handlers.CheckoutHandler, confirmationHandler *handlers.ConfirmationHandler) {
	checkout := rg.Group(PathCheckout)
	{
		checkout.POST("/carts/:cart_id/sync", checkoutHandler.SyncCart)
		checkout.GET("/carts/by-order/:order_id", checkoutHandler.GetCartByOrderID)
		checkout.GET("/orders/:order_id", checkoutHandler.GetOrder)
	}

	rg.GET(PathConfirmation, confirmationHandler.GetConfirmation)
}
