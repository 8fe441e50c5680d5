package signing

import (
	"strings"
	"testing"
)

const (
	factRecipient = "0x1234567890123456789012345678901234567890"
	factToken     = "0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48"
)

func TestTransferERC20Fact_Deterministic(t *testing.T) {
	first, err := TransferERC20Fact(factRecipient, factToken, 6, "123.456", 42)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !strings.HasPrefix(first, "0x") || len(first) != 66 {
		t.Fatalf("fact is not a 32-byte hex hash: %q", first)
	}
	for i := 0; i < 10; i++ {
		again, err := TransferERC20Fact(factRecipient, factToken, 6, "123.456", 42)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if again != first {
			t.Fatalf("fact not deterministic: %s vs %s", first, again)
		}
	}
}

func TestTransferERC20Fact_InputSensitivity(t *testing.T) {
	base, err := TransferERC20Fact(factRecipient, factToken, 6, "123.456", 42)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	cases := []struct {
		name      string
		recipient string
		token     string
		decimals  int32
		amount    string
		salt      uint32
	}{
		{"recipient", "0x0000000000000000000000000000000000000001", factToken, 6, "123.456", 42},
		{"token", factRecipient, "0x0000000000000000000000000000000000000002", 6, "123.456", 42},
		{"decimals", factRecipient, factToken, 8, "123.456", 42},
		{"amount", factRecipient, factToken, 6, "123.457", 42},
		{"salt", factRecipient, factToken, 6, "123.456", 43},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fact, err := TransferERC20Fact(tc.recipient, tc.token, tc.decimals, tc.amount, tc.salt)
			if err != nil {
				t.Fatalf("unexpected err: %v", err)
			}
			if fact == base {
				t.Fatalf("changing %s did not change the fact", tc.name)
			}
		})
	}
}

func TestTransferERC20Fact_Errors(t *testing.T) {
	cases := []struct {
		name      string
		recipient string
		token     string
		decimals  int32
		amount    string
	}{
		{"bad recipient", "not-an-address", factToken, 6, "1"},
		{"bad token", factRecipient, "0x123", 6, "1"},
		{"bad amount", factRecipient, factToken, 6, "abc"},
		{"negative amount", factRecipient, factToken, 6, "-1"},
		{"zero amount", factRecipient, factToken, 6, "0"},
		{"too many decimals", factRecipient, factToken, 2, "1.234"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := TransferERC20Fact(tc.recipient, tc.token, tc.decimals, tc.amount, 1); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}
