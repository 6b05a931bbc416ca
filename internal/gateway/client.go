package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/anchanpratham/tiffinontime/internal/domain"
)

// Client talks to the remote gateway. All reads and writes of this
// application go through here. With a zero timeout, the default, no call
// carries a client-side deadline and the backend's own behavior bounds
// every request.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// Login authenticates against the backend and returns the user it vouches for.
func (c *Client) Login(ctx context.Context, email, password string) (*User, error) {
	var resp loginResponse
	err := c.do(ctx, http.MethodPost, "/api/auth/login", LoginRequest{Email: email, Password: password}, false, &resp)
	if err != nil {
		return nil, err
	}
	return &resp.User, nil
}

// Register creates an account. The reply body is ignored beyond the status.
func (c *Client) Register(ctx context.Context, req RegisterRequest) error {
	return c.do(ctx, http.MethodPost, "/api/auth/register", req, false, nil)
}

// ListHotels fetches the vendor list.
func (c *Client) ListHotels(ctx context.Context) ([]domain.Hotel, error) {
	var hotels []domain.Hotel
	if err := c.do(ctx, http.MethodGet, "/api/hotels", nil, false, &hotels); err != nil {
		return nil, err
	}
	return hotels, nil
}

// ListMenu fetches the menu of one hotel.
func (c *Client) ListMenu(ctx context.Context, hotelID string) ([]domain.MenuItem, error) {
	var items []domain.MenuItem
	if err := c.do(ctx, http.MethodGet, "/api/menu/"+hotelID, nil, false, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// CreateOrder submits an order and returns the backend's confirmation.
func (c *Client) CreateOrder(ctx context.Context, req CreateOrderRequest) (*domain.ConfirmationDetails, error) {
	var details domain.ConfirmationDetails
	if err := c.do(ctx, http.MethodPost, "/api/orders", req, false, &details); err != nil {
		return nil, err
	}
	return &details, nil
}

// ListOrders fetches every order. Admin-gated by a client-supplied header
// only; real authorization is the backend's job.
func (c *Client) ListOrders(ctx context.Context) ([]domain.OrderRecord, error) {
	var orders []domain.OrderRecord
	if err := c.do(ctx, http.MethodGet, "/api/admin/orders", nil, true, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// UpdateOrderStatus asks the backend to set one order's status.
func (c *Client) UpdateOrderStatus(ctx context.Context, orderID string, status domain.OrderStatus) error {
	path := fmt.Sprintf("/api/admin/orders/%s/status", orderID)
	return c.do(ctx, http.MethodPut, path, updateStatusRequest{Status: status}, true, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body any, admin bool, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if admin {
		req.Header.Set("Role", "admin")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		log.Printf("gateway_error method=%s path=%s request_id=%s error=%q", method, path, requestID, err)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		ge := &Error{StatusCode: resp.StatusCode}
		var er errorResponse
		if decodeErr := json.NewDecoder(resp.Body).Decode(&er); decodeErr == nil {
			ge.Message = er.Message
		}
		log.Printf("gateway_error method=%s path=%s request_id=%s status=%d message=%q",
			method, path, requestID, resp.StatusCode, ge.Message)
		return ge
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	return nil
}
