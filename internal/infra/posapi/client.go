package posapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"coasters/internal/infra"
	"coasters/internal/pkg/config"

	"github.com/hashicorp/go-retryablehttp"
)

const (
	getProductPath      = "/api/v1/get_product/"
	createOrderPath     = "/api/v1/create_order/"
	createOrderItemPath = "/api/v1/create_order_item/"
	getOrderPath        = "/api/v1/get_order/"
	getOrderItemPath    = "/api/v1/get_order_item/"
)

// Client talks to the outlet POS API that owns the product catalog and
// durable order records. Retries are off by default: a failed call is
// surfaced to the user, who reloads explicitly.
type Client struct {
	http    *retryablehttp.Client
	baseURL string
	logger  *slog.Logger
}

func NewClient(cfg config.UpstreamConfig, logger *slog.Logger) *Client {
	rc := retryablehttp.NewClient()
	rc.RetryMax = cfg.RetryMax
	rc.HTTPClient.Timeout = cfg.Timeout
	rc.Logger = nil
	// Hand the final response back once retries are exhausted so non-2xx
	// statuses are mapped instead of being reported as transport errors.
	rc.ErrorHandler = func(resp *http.Response, err error, _ int) (*http.Response, error) {
		if resp != nil {
			return resp, nil
		}
		return nil, err
	}

	return &Client{
		http:    rc,
		baseURL: cfg.BaseURL,
		logger:  logger,
	}
}

func (c *Client) GetProducts(ctx context.Context) ([]Product, error) {
	var products []Product
	if err := c.getJSON(ctx, getProductPath, nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *Client) CreateOrder(ctx context.Context, req CreateOrderRequest) (CreateOrderResponse, error) {
	var created CreateOrderResponse
	if err := c.postJSON(ctx, createOrderPath, req, &created); err != nil {
		return CreateOrderResponse{}, err
	}
	return created, nil
}

func (c *Client) CreateOrderItems(ctx context.Context, items []CreateOrderItem) error {
	return c.postJSON(ctx, createOrderItemPath, items, nil)
}

func (c *Client) GetOrders(ctx context.Context, userID string) ([]Order, error) {
	var orders []Order
	query := url.Values{"user": {userID}}
	if err := c.getJSON(ctx, getOrderPath, query, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (c *Client) GetOrderItems(ctx context.Context, orderID int64) ([]OrderItem, error) {
	var items []OrderItem
	query := url.Values{"order": {strconv.FormatInt(orderID, 10)}}
	if err := c.getJSON(ctx, getOrderItemPath, query, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return infra.WrapInfraErr(c.logger, infra.KindUnavailable, "failed to build POS request", err)
	}

	return c.do(req, path, out)
}

func (c *Client) postJSON(ctx context.Context, path string, body any, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return infra.WrapInfraErr(c.logger, infra.KindBadResponse, "failed to encode POS payload", err)
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return infra.WrapInfraErr(c.logger, infra.KindUnavailable, "failed to build POS request", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, path, out)
}

func (c *Client) do(req *retryablehttp.Request, path string, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return infra.WrapInfraErr(c.logger, infra.KindUnavailable, "POS request failed: "+path, err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode == http.StatusNotFound {
		return infra.WrapInfraErr(c.logger, infra.KindNotFound, "POS resource not found: "+path, nil)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return infra.WrapInfraErr(c.logger, infra.KindBadResponse,
			fmt.Sprintf("POS returned status %d: %s", resp.StatusCode, path), nil)
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return infra.WrapInfraErr(c.logger, infra.KindBadResponse, "failed to decode POS response: "+path, err)
	}
	return nil
}
