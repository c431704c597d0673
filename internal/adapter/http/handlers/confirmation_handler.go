package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	response "klarna_checkout/internal/adapter/http/dto/response"
	"klarna_checkout/internal/usecase"
	"klarna_checkout/pkg"

	"github.com/gin-gonic/gin"
)

// ConfirmationHandler renders the order-confirmation view.
type ConfirmationHandler struct {
	usecase      usecase.IConfirmationUseCase
	startPageURL string
}

func NewConfirmationHandler(uc usecase.IConfirmationUseCase, startPageURL string) *ConfirmationHandler {
	if startPageURL == "" {
		startPageURL = "/"
	}
	return &ConfirmationHandler{usecase: uc, startPageURL: startPageURL}
}

// GetConfirmation resolves an order by orderNumber or trackingNumber
// (preview mode takes precedence over both) and returns the confirmation
// view. A missing order redirects to the start page instead of erroring.
//
// @Summary      Order confirmation
// @Tags         confirmation
// @Produce      json
// @Param        orderNumber     query  int     false  "Order number"
// @Param        trackingNumber  query  string  false  "Tracking number"
// @Param        preview         query  bool    false  "Editor preview mode"
// @Success      200  {object}  response.ConfirmationResponse
// @Success      302  "Redirect to the start page when the order is missing"
// @Router       /order-confirmation [get]
func (h *ConfirmationHandler) GetConfirmation(c *gin.Context) {
	query := usecase.ConfirmationQuery{
		Preview:        isTruthy(c.Query("preview")),
		TrackingNumber: strings.TrimSpace(c.Query("trackingNumber")),
	}
	if raw := strings.TrimSpace(c.Query("orderNumber")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid orderNumber", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		query.OrderNumber = n
	}

	view, err := h.usecase.GetConfirmation(c.Request.Context(), query)
	if err != nil {
		if errors.Is(err, usecase.ErrOrderNotFound) {
			log.Printf("[confirmation][handler] order not found order_number=%d tracking_number=%s",
				query.OrderNumber, query.TrackingNumber)
			c.Redirect(http.StatusFound, h.startPageURL)
			return
		}
		log.Printf("[confirmation][handler] confirmation failed err=%v", err)
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromConfirmationView(view))
}

func isTruthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
