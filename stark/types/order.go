package types

// Side of an order.
type Side string

const (
	SideBuy  Side = "BUY"
	SideSell Side = "SELL"
)

// OrderType supported by the venue.
type OrderType string

const (
	OrderTypeLimit        OrderType = "LIMIT"
	OrderTypeMarket       OrderType = "MARKET"
	OrderTypeStopLimit    OrderType = "STOP_LIMIT"
	OrderTypeTrailingStop OrderType = "TRAILING_STOP"
	OrderTypeTakeProfit   OrderType = "TAKE_PROFIT"
)

// TimeInForce for an order.
type TimeInForce string

const (
	TimeInForceGTT TimeInForce = "GTT"
	TimeInForceFOK TimeInForce = "FOK"
	TimeInForceIOC TimeInForce = "IOC"
)

// OrderParams carries the caller-supplied fields for placing an order.
// ClientID and Signature are optional: when present they are used verbatim
// so the exact same signed order can be resubmitted idempotently, when
// absent the client resolves them before transmission.
type OrderParams struct {
	Market      string
	Side        Side
	Type        OrderType
	Size        string // human-readable, e.g. "1.5"
	Price       string // human-readable, e.g. "50000"
	LimitFee    string
	Expiration  string // ISO-8601, e.g. "2024-01-01T00:00:00.000Z"
	TimeInForce TimeInForce
	PostOnly    bool

	ClientID  string
	Signature string

	// Optional order-type extras.
	CancelID        string
	TriggerPrice    string
	TrailingPercent string
}

// Order is the finalized wire payload for POST /v3/orders. ClientID and
// Signature are always populated before transmission.
type Order struct {
	Market          string      `json:"market"`
	Side            Side        `json:"side"`
	Type            OrderType   `json:"type"`
	Size            string      `json:"size"`
	Price           string      `json:"price"`
	LimitFee        string      `json:"limitFee"`
	Expiration      string      `json:"expiration"`
	TimeInForce     TimeInForce `json:"timeInForce"`
	PostOnly        bool        `json:"postOnly"`
	ClientID        string      `json:"clientId"`
	Signature       string      `json:"signature"`
	CancelID        string      `json:"cancelId,omitempty"`
	TriggerPrice    string      `json:"triggerPrice,omitempty"`
	TrailingPercent string      `json:"trailingPercent,omitempty"`
}

// OrderResponse wraps the server's view of a placed or cancelled order.
type OrderResponse struct {
	Order PlacedOrder `json:"order"`
}

// PlacedOrder is the server-side order record. Server-assigned fields such
// as ID never feed back into signing.
type PlacedOrder struct {
	ID              string      `json:"id"`
	ClientID        string      `json:"clientId"`
	AccountID       string      `json:"accountId"`
	Market          string      `json:"market"`
	Side            Side        `json:"side"`
	Size            string      `json:"size"`
	RemainingSize   string      `json:"remainingSize"`
	Price           string      `json:"price"`
	LimitFee        string      `json:"limitFee"`
	Type            OrderType   `json:"type"`
	TimeInForce     TimeInForce `json:"timeInForce"`
	Status          string      `json:"status"`
	Expiration      string      `json:"expiresAt"`
	CreatedAt       string      `json:"createdAt"`
	CancelReason    string      `json:"cancelReason,omitempty"`
	PostOnly        bool        `json:"postOnly"`
	TriggerPrice    string      `json:"triggerPrice,omitempty"`
	TrailingPercent string      `json:"trailingPercent,omitempty"`
}

// OrdersResponse is the list form returned by GET /v3/orders.
type OrdersResponse struct {
	Orders []PlacedOrder `json:"orders"`
}

// CancelOrderResponse is returned by DELETE /v3/orders/:id.
type CancelOrderResponse struct {
	CancelOrder PlacedOrder `json:"cancelOrder"`
}

// CancelOrdersResponse is returned by DELETE /v3/orders.
type CancelOrdersResponse struct {
	CancelOrders []PlacedOrder `json:"cancelOrders"`
}
