package client

// API endpoints.
const (
	// Public
	EndpointTime      = "/v3/time"
	EndpointMarkets   = "/v3/markets"
	EndpointOrderbook = "/v3/orderbook/"

	// Private
	EndpointAccounts        = "/v3/accounts"
	EndpointOrders          = "/v3/orders"
	EndpointActiveOrders    = "/v3/active-orders"
	EndpointPositions       = "/v3/positions"
	EndpointWithdrawals     = "/v3/withdrawals"
	EndpointFastWithdrawals = "/v3/fast-withdrawals"
	EndpointTransfers       = "/v3/transfers"
)
