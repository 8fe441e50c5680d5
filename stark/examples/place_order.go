//go:build ignore
// +build ignore

package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/starkbot/gostark/stark/client"
	"github.com/starkbot/gostark/stark/types"
)

// Example: place a limit order.
// Usage:
//   export STARK_HOST="https://api.stark.exchange"
//   export STARK_API_KEY="..."
//   export STARK_API_SECRET="..."          # base64url
//   export STARK_API_PASSPHRASE="..."
//   export STARK_PRIVATE_KEY="..."         # stark key, hex
//   export STARK_POSITION_ID="12345"
//   export MARKET="BTC-USD"
//   export SIDE="BUY"
//   export SIZE="0.01"
//   export PRICE="50000"
//   go run place_order.go

func main() {
	positionID, _ := strconv.ParseInt(os.Getenv("STARK_POSITION_ID"), 10, 64)

	c, err := client.NewClient(client.Config{
		Host:    os.Getenv("STARK_HOST"),
		Network: types.NetworkMainnet,
		Credentials: &types.Credentials{
			Key:        os.Getenv("STARK_API_KEY"),
			Secret:     os.Getenv("STARK_API_SECRET"),
			Passphrase: os.Getenv("STARK_API_PASSPHRASE"),
		},
		StarkPrivateKey: os.Getenv("STARK_PRIVATE_KEY"),
		PositionID:      positionID,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "client: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := c.SyncClock(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "clock sync: %v\n", err)
	}

	expiration := time.Now().Add(28 * 24 * time.Hour).UTC().Format("2006-01-02T15:04:05.000Z")
	resp, err := c.CreateOrder(ctx, types.OrderParams{
		Market:      os.Getenv("MARKET"),
		Side:        types.Side(os.Getenv("SIDE")),
		Type:        types.OrderTypeLimit,
		Size:        os.Getenv("SIZE"),
		Price:       os.Getenv("PRICE"),
		LimitFee:    "0.0005",
		Expiration:  expiration,
		TimeInForce: types.TimeInForceGTT,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "create order: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("order id=%s status=%s clientId=%s\n", resp.Order.ID, resp.Order.Status, resp.Order.ClientID)
}
