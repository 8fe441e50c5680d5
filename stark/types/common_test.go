package types

import "testing"

func TestMethodCanonical(t *testing.T) {
	cases := []struct {
		method Method
		want   string
	}{
		{MethodGet, "GET"},
		{MethodPost, "POST"},
		{MethodPut, "PUT"},
		{MethodDelete, "DELETE"},
	}
	for _, tc := range cases {
		got, err := tc.method.Canonical()
		if err != nil {
			t.Fatalf("unexpected err for %s: %v", tc.method, err)
		}
		if got != tc.want {
			t.Fatalf("canonical form of %s: got %s", tc.method, got)
		}
	}
}

func TestMethodCanonical_Unknown(t *testing.T) {
	for _, m := range []Method{"PATCH", "HEAD", "", "get"} {
		if _, err := m.Canonical(); err == nil {
			t.Fatalf("expected error for method %q", string(m))
		}
	}
}

func TestGetNetworkConfig(t *testing.T) {
	for _, network := range []Network{NetworkMainnet, NetworkRopsten} {
		cfg, err := GetNetworkConfig(network)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if cfg.FactRegistry == "" || cfg.CollateralToken == "" {
			t.Fatalf("incomplete config for network %d: %+v", network, cfg)
		}
		if cfg.CollateralDecimals <= 0 {
			t.Fatalf("bad decimals for network %d", network)
		}
	}
	if _, err := GetNetworkConfig(Network(42)); err == nil {
		t.Fatal("expected error for unknown network")
	}
}
