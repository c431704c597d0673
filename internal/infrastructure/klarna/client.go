package klarna

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"klarna_checkout/internal/domain/entities"
	"klarna_checkout/internal/usecase/interfaces"
)

var ErrMissingCheckoutConfiguration = errors.New("missing klarna checkout connection configuration")

const ordersPath = "/checkout/v3/orders"

// APIError is a structured error returned by the gateway's checkout-order
// resource.
type APIError struct {
	Status        int      `json:"-"`
	ErrorCode     string   `json:"error_code"`
	ErrorMessages []string `json:"error_messages"`
	CorrelationID string   `json:"correlation_id"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("klarna api error status=%d code=%s correlation_id=%s messages=%s",
		e.Status, e.ErrorCode, e.CorrelationID, strings.Join(e.ErrorMessages, "; "))
}

func (e *APIError) GatewayFault() entities.GatewayFault {
	return entities.GatewayFault{
		ErrorCode:     e.ErrorCode,
		Messages:      e.ErrorMessages,
		CorrelationID: e.CorrelationID,
	}
}

var _ interfaces.IGatewayError = (*APIError)(nil)

// Client talks to the Klarna Checkout v3 order resource using per-market
// basic-auth credentials.
type Client struct {
	httpClient *http.Client
	baseURL    string
	username   string
	password   string
}

var _ interfaces.ICheckoutClient = (*Client)(nil)

func NewClient(cfg entities.CheckoutConfiguration) (*Client, error) {
	if cfg.IsEmpty() || cfg.APIURL == "" {
		log.Printf("[checkout][gateway] missing connection configuration")
		return nil, ErrMissingCheckoutConfiguration
	}
	if _, err := url.Parse(cfg.APIURL); err != nil {
		log.Printf("[checkout][gateway] invalid api url err=%v", err)
		return nil, err
	}
	log.Printf("[checkout][gateway] klarna client initialized api_url=%s", cfg.APIURL)

	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    strings.TrimSuffix(cfg.APIURL, "/"),
		username:   cfg.Username,
		password:   cfg.Password,
	}, nil
}

func (c *Client) CreateOrder(ctx context.Context, order entities.CheckoutOrder) (entities.CheckoutOrder, error) {
	log.Printf("[checkout][gateway] create start purchase_country=%s currency=%s lines=%d",
		order.PurchaseCountry, order.PurchaseCurrency, len(order.OrderLines))

	var created entities.CheckoutOrder
	if err := c.do(ctx, http.MethodPost, ordersPath, order, &created); err != nil {
		return entities.CheckoutOrder{}, err
	}
	log.Printf("[checkout][gateway] create success order_id=%s status=%s", created.OrderID, created.Status)
	return created, nil
}

func (c *Client) FetchOrder(ctx context.Context, orderID string) (entities.CheckoutOrder, error) {
	var fetched entities.CheckoutOrder
	if err := c.do(ctx, http.MethodGet, ordersPath+"/"+url.PathEscape(orderID), nil, &fetched); err != nil {
		return entities.CheckoutOrder{}, err
	}
	return fetched, nil
}

func (c *Client) UpdateOrder(ctx context.Context, orderID string, patch entities.CheckoutOrderPatch) (entities.CheckoutOrder, error) {
	log.Printf("[checkout][gateway] update start order_id=%s lines=%d shipping_options=%d",
		orderID, len(patch.OrderLines), len(patch.ShippingOptions))

	var updated entities.CheckoutOrder
	if err := c.do(ctx, http.MethodPost, ordersPath+"/"+url.PathEscape(orderID), patch, &updated); err != nil {
		return entities.CheckoutOrder{}, err
	}
	log.Printf("[checkout][gateway] update success order_id=%s status=%s", updated.OrderID, updated.Status)
	return updated, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var payload io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		payload = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, payload)
	if err != nil {
		return err
	}
	req.SetBasicAuth(c.username, c.password)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode >= http.StatusBadRequest {
		apiErr := &APIError{Status: resp.StatusCode}
		if json.Valid(raw) {
			_ = json.Unmarshal(raw, apiErr)
		}
		if apiErr.ErrorCode == "" {
			apiErr.ErrorCode = http.StatusText(resp.StatusCode)
		}
		return apiErr
	}

	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return err
		}
	}
	return nil
}
