package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/starkbot/gostark/stark/types"
)

// GetAccount fetches the account record for an on-chain address. The server
// derives the account id from the address.
func (c *Client) GetAccount(ctx context.Context, ethereumAddress string) (*types.AccountResponse, error) {
	if err := c.limiter.Wait(ctx, "account:get"); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}
	var out types.AccountResponse
	if err := c.private(ctx, types.MethodGet, EndpointAccounts+"/"+ethereumAddress, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetPositions lists positions, optionally filtered by market and status.
func (c *Client) GetPositions(ctx context.Context, market, status string) (*types.PositionsResponse, error) {
	if err := c.limiter.Wait(ctx, "account:get"); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}
	params := url.Values{}
	if market != "" {
		params.Set("market", market)
	}
	if status != "" {
		params.Set("status", status)
	}
	var out types.PositionsResponse
	if err := c.private(ctx, types.MethodGet, EndpointPositions, params, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
