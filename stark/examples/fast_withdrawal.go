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

// Example: fast withdrawal through a liquidity provider.
// Usage:
//   export STARK_HOST="https://api.stark.exchange"
//   export STARK_API_KEY="..." STARK_API_SECRET="..." STARK_API_PASSPHRASE="..."
//   export STARK_PRIVATE_KEY="..."
//   export STARK_POSITION_ID="12345"
//   export TO_ADDRESS="0x..."              # L1 recipient
//   export LP_POSITION_ID="1"              # liquidity provider position
//   export LP_STARK_KEY="0x..."            # liquidity provider public key
//   export CREDIT_AMOUNT="100"             # received on L1
//   export DEBIT_AMOUNT="100.5"            # debited on L2 (includes LP fee)
//   go run fast_withdrawal.go

func main() {
	positionID, _ := strconv.ParseInt(os.Getenv("STARK_POSITION_ID"), 10, 64)
	lpPositionID, _ := strconv.ParseInt(os.Getenv("LP_POSITION_ID"), 10, 64)

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

	expiration := time.Now().Add(7 * 24 * time.Hour).UTC().Format("2006-01-02T15:04:05.000Z")
	resp, err := c.CreateFastWithdrawal(ctx, types.FastWithdrawalParams{
		CreditAsset:  "USDC",
		CreditAmount: os.Getenv("CREDIT_AMOUNT"),
		DebitAmount:  os.Getenv("DEBIT_AMOUNT"),
		ToAddress:    os.Getenv("TO_ADDRESS"),
		LPPositionID: lpPositionID,
		LPStarkKey:   os.Getenv("LP_STARK_KEY"),
		Expiration:   expiration,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "fast withdrawal: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("withdrawal id=%s status=%s\n", resp.Withdrawal.ID, resp.Withdrawal.Status)
}
