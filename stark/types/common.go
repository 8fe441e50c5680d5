package types

import "fmt"

// Network identifies the StarkEx deployment a signature is scoped to.
// Signatures produced for one network are not replayable on another.
type Network int

const (
	NetworkMainnet Network = 1
	NetworkRopsten Network = 3
)

// Credentials is the API key triple used for request authentication.
// Secret is base64url-encoded HMAC key material and must never be logged.
type Credentials struct {
	Key        string
	Secret     string
	Passphrase string
}

// Method is the enumerated set of HTTP methods the exchange accepts.
type Method string

const (
	MethodGet    Method = "GET"
	MethodPost   Method = "POST"
	MethodPut    Method = "PUT"
	MethodDelete Method = "DELETE"
)

// Canonical returns the short form used inside the signed request message.
// The switch is exhaustive over the supported set; anything else is an error
// rather than a silent fallthrough.
func (m Method) Canonical() (string, error) {
	switch m {
	case MethodGet:
		return "GET", nil
	case MethodPost:
		return "POST", nil
	case MethodPut:
		return "PUT", nil
	case MethodDelete:
		return "DELETE", nil
	default:
		return "", fmt.Errorf("unsupported http method: %q", string(m))
	}
}

// NetworkConfig holds the per-network on-chain addresses the client needs
// for fast-withdrawal fact derivation.
type NetworkConfig struct {
	FactRegistry       string
	CollateralToken    string
	CollateralDecimals int32
}

var networkConfigs = map[Network]NetworkConfig{
	NetworkMainnet: {
		FactRegistry:       "0xBE9a129909EbCb954bC065536D2bfAfBd170d27A",
		CollateralToken:    "0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48",
		CollateralDecimals: 6,
	},
	NetworkRopsten: {
		FactRegistry:       "0x8Fb814935f7E63DEB304B500180e19dF5167B50e",
		CollateralToken:    "0x8707A5bf4C2842d46B31A405Ba41b858C0F876c4",
		CollateralDecimals: 6,
	},
}

// GetNetworkConfig returns the contract addresses for a network.
func GetNetworkConfig(network Network) (NetworkConfig, error) {
	cfg, ok := networkConfigs[network]
	if !ok {
		return NetworkConfig{}, fmt.Errorf("unknown network id: %d", network)
	}
	return cfg, nil
}
