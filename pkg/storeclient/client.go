// pkg/storeclient/client.go
package storeclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rrtraders/rr-backend/pkg/checkout"
)

// Paths is the route table the client is configured with. Every request
// is base URL + path; nothing is hard-coded at call sites, so a staging
// deployment only swaps the Config.
type Paths struct {
	Products       string
	Categories     string
	Banners        string
	AdminLogin     string
	AdminDashboard string
	CheckoutCreate string
	Orders         string
	OrderStats     string
}

func DefaultPaths() Paths {
	return Paths{
		Products:       "/api/products",
		Categories:     "/api/category/categories",
		Banners:        "/api/media/banners",
		AdminLogin:     "/api/auth/admin/login",
		AdminDashboard: "/api/auth/admin/protect/admin/dashboard",
		CheckoutCreate: "/api/payment/create",
		Orders:         "/api/payment",
		OrderStats:     "/api/payment/stats",
	}
}

type Config struct {
	BaseURL    string
	Paths      Paths
	HTTPClient *http.Client
	// CheckoutTimeout bounds only the checkout submission; every other
	// call runs on the caller's context.
	CheckoutTimeout time.Duration
}

type Client struct {
	baseURL string
	paths   Paths
	http    *http.Client
	timeout time.Duration
}

func New(cfg Config) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	paths := cfg.Paths
	if paths == (Paths{}) {
		paths = DefaultPaths()
	}
	timeout := cfg.CheckoutTimeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		paths:   paths,
		http:    httpClient,
		timeout: timeout,
	}
}

// APIError is a non-2xx response the server described. Its message is
// surfaced to the user verbatim.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed with status %d", e.Status)
}

// DecodeError is a response whose shape did not match the expected
// schema. It is never swallowed: a contract break should fail loudly,
// not render as empty data.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("unexpected response shape from %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func (c *Client) do(ctx context.Context, method, path, token string, body io.Reader, contentType string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return &DecodeError{Path: path, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 || !env.Success {
		apiErr := &APIError{Status: resp.StatusCode}
		if env.Error != nil {
			apiErr.Code = env.Error.Code
			apiErr.Message = env.Error.Message
		}
		return apiErr
	}

	if out != nil {
		if len(env.Data) == 0 {
			return &DecodeError{Path: path, Err: fmt.Errorf("missing data field")}
		}
		if err := json.Unmarshal(env.Data, out); err != nil {
			return &DecodeError{Path: path, Err: err}
		}
	}
	return nil
}

func (c *Client) getJSON(ctx context.Context, path, token string, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, token, nil, "", out)
}

func (c *Client) postJSON(ctx context.Context, path, token string, in, out interface{}) error {
	body, err := json.Marshal(in)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPost, path, token, bytes.NewReader(body), "application/json", out)
}

// FetchProducts loads the storefront catalogue.
func (c *Client) FetchProducts(ctx context.Context) ([]Product, error) {
	var products []Product
	if err := c.getJSON(ctx, c.paths.Products, "", &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *Client) FetchProduct(ctx context.Context, id string) (*Product, error) {
	var product Product
	if err := c.getJSON(ctx, c.paths.Products+"/"+id, "", &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *Client) FetchCategories(ctx context.Context) ([]Category, error) {
	var categories []Category
	if err := c.getJSON(ctx, c.paths.Categories, "", &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (c *Client) FetchBanners(ctx context.Context) ([]Banner, error) {
	var banners []Banner
	if err := c.getJSON(ctx, c.paths.Banners, "", &banners); err != nil {
		return nil, err
	}
	return banners, nil
}

type loginResponse struct {
	Admin Admin  `json:"admin"`
	Token string `json:"token"`
}

// AdminLogin exchanges credentials for a bearer token and the admin
// profile.
func (c *Client) AdminLogin(ctx context.Context, email, password string) (*Admin, string, error) {
	req := map[string]string{"email": email, "password": password}
	var out loginResponse
	if err := c.postJSON(ctx, c.paths.AdminLogin, "", req, &out); err != nil {
		return nil, "", err
	}
	return &out.Admin, out.Token, nil
}

type dashboardResponse struct {
	Admin Admin `json:"admin"`
}

// FetchProtectedProfile validates the stored token against the
// protected dashboard endpoint.
func (c *Client) FetchProtectedProfile(ctx context.Context, token string) (*Admin, error) {
	var out dashboardResponse
	if err := c.getJSON(ctx, c.paths.AdminDashboard, token, &out); err != nil {
		return nil, err
	}
	return &out.Admin, nil
}

func (c *Client) FetchOrders(ctx context.Context, token string) ([]Order, error) {
	var orders []Order
	if err := c.getJSON(ctx, c.paths.Orders, token, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (c *Client) UpdateOrderStatus(ctx context.Context, token, id, status string) (*Order, error) {
	body, err := json.Marshal(map[string]string{"status": status})
	if err != nil {
		return nil, err
	}
	var order Order
	if err := c.do(ctx, http.MethodPut, c.paths.Orders+"/"+id, token,
		bytes.NewReader(body), "application/json", &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (c *Client) DeleteOrder(ctx context.Context, token, id string) error {
	return c.do(ctx, http.MethodDelete, c.paths.Orders+"/"+id, token, nil, "", nil)
}

func (c *Client) FetchOrderStats(ctx context.Context, token string) (*OrderStats, error) {
	var stats OrderStats
	if err := c.getJSON(ctx, c.paths.OrderStats, token, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

type checkoutResponse struct {
	Order Order `json:"order"`
}

// SubmitCheckout sends one multipart checkout payload. This is the only
// call with its own deadline; a submission that has not been accepted
// within the timeout fails rather than hanging the storefront.
func (c *Client) SubmitCheckout(ctx context.Context, form checkout.DeliveryForm, items []checkout.Item, totals checkout.Totals, shot *checkout.Screenshot) (*Order, error) {
	body, contentType, err := checkout.BuildPayload(form, items, totals, shot)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var out checkoutResponse
	if err := c.do(ctx, http.MethodPost, c.paths.CheckoutCreate, "", body, contentType, &out); err != nil {
		return nil, err
	}
	return &out.Order, nil
}
