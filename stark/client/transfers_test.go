package client

import (
	"errors"
	"testing"

	"github.com/starkbot/gostark/stark/signing"
	"github.com/starkbot/gostark/stark/types"
)

func testFastWithdrawalParams() types.FastWithdrawalParams {
	return types.FastWithdrawalParams{
		CreditAsset:  "USDC",
		CreditAmount: "100",
		DebitAmount:  "100.5",
		ToAddress:    "0x1234567890123456789012345678901234567890",
		LPPositionID: 55,
		LPStarkKey:   "0x0123abc",
		Expiration:   "2024-01-01T00:00:00.000Z",
	}
}

func TestSignFastWithdrawal_MissingLPKey(t *testing.T) {
	signer := &fakeSigner{}
	c := newTestClient(t, signer)

	params := testFastWithdrawalParams()
	params.LPStarkKey = ""
	fw, err := c.signFastWithdrawal(params)
	if err == nil {
		t.Fatal("expected error without LP stark key")
	}
	if !errors.Is(err, ErrMissingLPKey) {
		t.Fatalf("expected ErrMissingLPKey, got %v", err)
	}
	if fw != nil {
		t.Fatalf("no partial payload on failure, got %+v", fw)
	}
	// The check fires before any signing attempt.
	if signer.conditionalCalls != 0 {
		t.Fatalf("signer must not be invoked, got %d calls", signer.conditionalCalls)
	}
}

func TestSignFastWithdrawal_FactBoundToClientID(t *testing.T) {
	signer := &fakeSigner{}
	c := newTestClient(t, signer)

	params := testFastWithdrawalParams()
	params.ClientID = "fixed-client-id"
	fw, err := c.signFastWithdrawal(params)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if signer.conditionalCalls != 1 {
		t.Fatalf("expected one signing call, got %d", signer.conditionalCalls)
	}

	netCfg, _ := types.GetNetworkConfig(types.NetworkMainnet)
	wantFact, err := signing.TransferERC20Fact(
		params.ToAddress,
		netCfg.CollateralToken,
		netCfg.CollateralDecimals,
		params.CreditAmount,
		signing.NonceFromClientID("fixed-client-id"),
	)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	got := signer.lastConditional
	if got.Fact != wantFact {
		t.Fatalf("fact not derived from the client id nonce:\n got %s\nwant %s", got.Fact, wantFact)
	}
	if got.FactRegistryAddress != netCfg.FactRegistry {
		t.Fatalf("wrong fact registry: %s", got.FactRegistryAddress)
	}
	if got.SenderPositionID != 7 || got.ReceiverPositionID != 55 {
		t.Fatalf("position ids wrong: sender=%d receiver=%d", got.SenderPositionID, got.ReceiverPositionID)
	}
	if got.ReceiverPublicKey != params.LPStarkKey {
		t.Fatalf("receiver key wrong: %s", got.ReceiverPublicKey)
	}
	if got.DebitAmount != "100.5" || got.CreditAmount != "100" {
		t.Fatalf("amounts wrong: credit=%s debit=%s", got.CreditAmount, got.DebitAmount)
	}

	if fw.ClientID != "fixed-client-id" || fw.Signature != "conditional-signature" {
		t.Fatalf("payload not finalized: %+v", fw)
	}
	if fw.LPPositionID != "55" {
		t.Fatalf("lp position id not stringified: %q", fw.LPPositionID)
	}
}

func TestSignWithdrawal(t *testing.T) {
	signer := &fakeSigner{}
	c := newTestClient(t, signer)

	w, err := c.signWithdrawal(types.WithdrawalParams{
		Amount:     "250.5",
		Asset:      "USDC",
		Expiration: "2024-01-01T00:00:00.000Z",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if signer.withdrawalCalls != 1 {
		t.Fatalf("expected one signing call, got %d", signer.withdrawalCalls)
	}
	if signer.lastWithdrawal.PositionID != 7 {
		t.Fatalf("position id wrong: %d", signer.lastWithdrawal.PositionID)
	}
	if signer.lastWithdrawal.HumanAmount != "250.5" {
		t.Fatalf("amount wrong: %s", signer.lastWithdrawal.HumanAmount)
	}
	if signer.lastWithdrawal.ClientID != w.ClientID {
		t.Fatal("signed client id differs from payload client id")
	}
	if w.Signature != "withdrawal-signature" || w.ClientID == "" {
		t.Fatalf("payload not finalized: %+v", w)
	}
}

func TestSignTransfer(t *testing.T) {
	signer := &fakeSigner{}
	c := newTestClient(t, signer)

	tr, err := c.signTransfer(types.TransferParams{
		Amount:             "42",
		ReceiverAccountID:  "receiver-account",
		ReceiverPositionID: 99,
		ReceiverPublicKey:  "0x0def",
		ReceiverAddress:    "0x1234567890123456789012345678901234567890",
		Expiration:         "2024-01-01T00:00:00.000Z",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if signer.transferCalls != 1 {
		t.Fatalf("expected one signing call, got %d", signer.transferCalls)
	}

	got := signer.lastTransfer
	if got.SenderPositionID != 7 || got.ReceiverPositionID != 99 {
		t.Fatalf("position ids wrong: %+v", got)
	}
	if got.CreditAmount != "42" || got.DebitAmount != "42" {
		t.Fatalf("transfer amounts must match on both sides: %+v", got)
	}
	if got.ReceiverPublicKey != "0x0def" {
		t.Fatalf("receiver key wrong: %s", got.ReceiverPublicKey)
	}

	if tr.Amount != "42" || tr.ReceiverAccountID != "receiver-account" {
		t.Fatalf("payload fields wrong: %+v", tr)
	}
	if tr.Signature != "transfer-signature" || tr.ClientID == "" {
		t.Fatalf("payload not finalized: %+v", tr)
	}
}

func TestSignTransfer_SuppliedSignature(t *testing.T) {
	signer := &fakeSigner{}
	c := newTestClient(t, signer)

	tr, err := c.signTransfer(types.TransferParams{
		Amount:            "42",
		ReceiverAccountID: "receiver-account",
		Expiration:        "2024-01-01T00:00:00.000Z",
		ClientID:          "prior-id",
		Signature:         "prior-signature",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if signer.transferCalls != 0 {
		t.Fatalf("supplied signature must skip the signer, got %d calls", signer.transferCalls)
	}
	if tr.ClientID != "prior-id" || tr.Signature != "prior-signature" {
		t.Fatalf("supplied identity not kept: %+v", tr)
	}
}
