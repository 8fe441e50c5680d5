package types

// Account is the server-side account record returned by GET /v3/accounts/:id.
type Account struct {
	ID               string              `json:"id"`
	PositionID       string              `json:"positionId"`
	StarkKey         string              `json:"starkKey"`
	Equity           string              `json:"equity"`
	FreeCollateral   string              `json:"freeCollateral"`
	QuoteBalance     string              `json:"quoteBalance"`
	PendingDeposits  string              `json:"pendingDeposits"`
	PendingWithdraws string              `json:"pendingWithdrawals"`
	OpenPositions    map[string]Position `json:"openPositions"`
	CreatedAt        string              `json:"createdAt"`
}

// AccountResponse wraps a single account record.
type AccountResponse struct {
	Account Account `json:"account"`
}

// Position is an open perpetual position.
type Position struct {
	Market        string `json:"market"`
	Status        string `json:"status"`
	Side          string `json:"side"`
	Size          string `json:"size"`
	MaxSize       string `json:"maxSize"`
	EntryPrice    string `json:"entryPrice"`
	ExitPrice     string `json:"exitPrice,omitempty"`
	UnrealizedPnl string `json:"unrealizedPnl"`
	RealizedPnl   string `json:"realizedPnl"`
	CreatedAt     string `json:"createdAt"`
	ClosedAt      string `json:"closedAt,omitempty"`
}

// PositionsResponse is the list form returned by GET /v3/positions.
type PositionsResponse struct {
	Positions []Position `json:"positions"`
}

// Market is a tradeable perpetual market.
type Market struct {
	Market            string `json:"market"`
	Status            string `json:"status"`
	BaseAsset         string `json:"baseAsset"`
	QuoteAsset        string `json:"quoteAsset"`
	StepSize          string `json:"stepSize"`
	TickSize          string `json:"tickSize"`
	IndexPrice        string `json:"indexPrice"`
	OraclePrice       string `json:"oraclePrice"`
	MinOrderSize      string `json:"minOrderSize"`
	InitialMarginFrac string `json:"initialMarginFraction"`
	MaintMarginFrac   string `json:"maintenanceMarginFraction"`
}

// MarketsResponse maps market name to market definition.
type MarketsResponse struct {
	Markets map[string]Market `json:"markets"`
}

// OrderbookLevel is one price level of the book.
type OrderbookLevel struct {
	Price string `json:"price"`
	Size  string `json:"size"`
}

// Orderbook is returned by GET /v3/orderbook/:market.
type Orderbook struct {
	Bids []OrderbookLevel `json:"bids"`
	Asks []OrderbookLevel `json:"asks"`
}

// ServerTime is returned by GET /v3/time.
type ServerTime struct {
	ISO   string `json:"iso"`
	Epoch string `json:"epoch"`
}
