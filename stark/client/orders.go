package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/sirupsen/logrus"

	"github.com/starkbot/gostark/stark/signing"
	"github.com/starkbot/gostark/stark/types"
)

// resolveClientID keeps a caller-supplied id verbatim so retries of the same
// intent reuse their idempotency key, and mints a fresh one otherwise.
func resolveClientID(supplied string) string {
	if supplied != "" {
		return supplied
	}
	return signing.GenerateClientID()
}

// signOrder drives one order through the signing states: assign the client
// id, resolve the signature, finalize the payload. A caller-supplied
// signature is used as-is without verification (the server verifies);
// otherwise the stark signer is invoked exactly once. Any failure aborts
// without a partial payload.
func (c *Client) signOrder(params types.OrderParams) (*types.Order, error) {
	clientID := resolveClientID(params.ClientID)

	signature := params.Signature
	if signature == "" {
		if err := c.CanSign(); err != nil {
			return nil, err
		}
		sig, err := c.signer.SignOrder(signing.OrderSignParams{
			PositionID: c.positionID,
			Market:     params.Market,
			Side:       string(params.Side),
			HumanSize:  params.Size,
			HumanPrice: params.Price,
			LimitFee:   params.LimitFee,
			ClientID:   clientID,
			Expiration: params.Expiration,
		})
		if err != nil {
			return nil, &SignerError{Action: "order", Err: err}
		}
		signature = sig
	}

	return &types.Order{
		Market:          params.Market,
		Side:            params.Side,
		Type:            params.Type,
		Size:            params.Size,
		Price:           params.Price,
		LimitFee:        params.LimitFee,
		Expiration:      params.Expiration,
		TimeInForce:     params.TimeInForce,
		PostOnly:        params.PostOnly,
		ClientID:        clientID,
		Signature:       signature,
		CancelID:        params.CancelID,
		TriggerPrice:    params.TriggerPrice,
		TrailingPercent: params.TrailingPercent,
	}, nil
}

// CreateOrder finalizes and submits an order. When params carry a clientId
// and signature from an earlier attempt the same payload is resubmitted
// without a new signing pass.
func (c *Client) CreateOrder(ctx context.Context, params types.OrderParams) (*types.OrderResponse, error) {
	order, err := c.signOrder(params)
	if err != nil {
		return nil, err
	}

	if err := c.limiter.Wait(ctx, "orders:post"); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	var out types.OrderResponse
	if err := c.private(ctx, types.MethodPost, EndpointOrders, nil, order, &out); err != nil {
		return nil, err
	}
	c.log.WithFields(logrus.Fields{
		"market":   order.Market,
		"side":     order.Side,
		"clientId": order.ClientID,
	}).Info("order submitted")
	return &out, nil
}

// CancelOrder cancels one order by server-assigned id.
func (c *Client) CancelOrder(ctx context.Context, orderID string) (*types.CancelOrderResponse, error) {
	if err := c.limiter.Wait(ctx, "orders:delete"); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}
	var out types.CancelOrderResponse
	if err := c.private(ctx, types.MethodDelete, EndpointOrders+"/"+orderID, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CancelAllOrders cancels every open order, optionally scoped to a market.
func (c *Client) CancelAllOrders(ctx context.Context, market string) (*types.CancelOrdersResponse, error) {
	if err := c.limiter.Wait(ctx, "orders:delete"); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}
	params := url.Values{}
	if market != "" {
		params.Set("market", market)
	}
	var out types.CancelOrdersResponse
	if err := c.private(ctx, types.MethodDelete, EndpointOrders, params, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// OrderFilters narrows GET /v3/orders.
type OrderFilters struct {
	Market string
	Status string
	Side   types.Side
	Type   types.OrderType
	Limit  int
}

// GetOrders lists orders matching the filters.
func (c *Client) GetOrders(ctx context.Context, filters OrderFilters) (*types.OrdersResponse, error) {
	if err := c.limiter.Wait(ctx, "orders:get"); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}
	params := url.Values{}
	if filters.Market != "" {
		params.Set("market", filters.Market)
	}
	if filters.Status != "" {
		params.Set("status", filters.Status)
	}
	if filters.Side != "" {
		params.Set("side", string(filters.Side))
	}
	if filters.Type != "" {
		params.Set("type", string(filters.Type))
	}
	if filters.Limit > 0 {
		params.Set("limit", fmt.Sprintf("%d", filters.Limit))
	}
	var out types.OrdersResponse
	if err := c.private(ctx, types.MethodGet, EndpointOrders, params, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetActiveOrders lists open orders for one market, optionally narrowed to
// a side. The active-orders endpoint is served from the matching engine's
// hot set and is cheaper than a filtered GetOrders.
func (c *Client) GetActiveOrders(ctx context.Context, market string, side types.Side) (*types.OrdersResponse, error) {
	if err := c.limiter.Wait(ctx, "orders:get"); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}
	params := url.Values{}
	params.Set("market", market)
	if side != "" {
		params.Set("side", string(side))
	}
	var out types.OrdersResponse
	if err := c.private(ctx, types.MethodGet, EndpointActiveOrders, params, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetOrderByID fetches one order by server-assigned id.
func (c *Client) GetOrderByID(ctx context.Context, orderID string) (*types.OrderResponse, error) {
	if err := c.limiter.Wait(ctx, "orders:get"); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}
	var out types.OrderResponse
	if err := c.private(ctx, types.MethodGet, EndpointOrders+"/"+orderID, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
