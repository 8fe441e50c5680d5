package client

import (
	"context"
	"fmt"

	"github.com/starkbot/gostark/pkg/httpx"
	"github.com/starkbot/gostark/stark/types"
)

// PublicClient serves the unauthenticated market-data endpoints. It is
// independent of credentials and key material, so it can be constructed for
// any host without a full Client.
type PublicClient struct {
	http *httpx.Client
}

func NewPublicClient(host string) *PublicClient {
	return &PublicClient{http: httpx.NewClient(host)}
}

// GetMarkets lists the venue's markets, optionally one by name.
func (p *PublicClient) GetMarkets(ctx context.Context, market string) (*types.MarketsResponse, error) {
	params := map[string]string{}
	if market != "" {
		params["market"] = market
	}
	var out types.MarketsResponse
	if err := p.http.Get(ctx, EndpointMarkets, params, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetOrderbook fetches the current book for one market.
func (p *PublicClient) GetOrderbook(ctx context.Context, market string) (*types.Orderbook, error) {
	if market == "" {
		return nil, fmt.Errorf("market is required")
	}
	var out types.Orderbook
	if err := p.http.Get(ctx, EndpointOrderbook+market, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetServerTime fetches the server clock reading used for skew correction.
func (p *PublicClient) GetServerTime(ctx context.Context) (*types.ServerTime, error) {
	var out types.ServerTime
	if err := p.http.Get(ctx, EndpointTime, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
