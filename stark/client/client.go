package client

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/starkbot/gostark/pkg/clock"
	"github.com/starkbot/gostark/pkg/ratelimit"
	"github.com/starkbot/gostark/stark/signing"
	"github.com/starkbot/gostark/stark/types"
)

// Config for constructing a Client. Credentials enable the private REST
// endpoints; StarkPrivateKey enables local action signing. Either may be
// omitted, in which case the corresponding calls fail eagerly with a typed
// error instead of reaching the wire.
type Config struct {
	Host        string
	Network     types.Network
	Credentials *types.Credentials

	// StarkPrivateKey is the account's L2 signing key, hex encoded.
	// When empty, actions must arrive with a pre-computed signature.
	StarkPrivateKey string
	// Signer overrides the default starkex-backed signer. Mainly for tests
	// and for deployments that keep key material in an external signer.
	Signer signing.Signer

	// PositionID is the account's own position, used as the sender side of
	// every signed action.
	PositionID int64

	Logger *logrus.Logger
}

// Client is the authenticated exchange client. All fields are set at
// construction and never mutated, so concurrent calls need no locking:
// per-action state lives entirely in the call.
type Client struct {
	host       string
	network    types.Network
	netConfig  types.NetworkConfig
	auth       *signing.Authenticator
	signer     signing.Signer
	positionID int64
	clock      *clock.Clock
	http       *httpClient
	limiter    *ratelimit.Manager
	log        *logrus.Entry
}

// NewClient validates the config and builds the client. Malformed credential
// material (non-base64url secret) is rejected here, not on the first call.
func NewClient(cfg Config) (*Client, error) {
	if cfg.Host == "" {
		return nil, fmt.Errorf("host is required")
	}
	netCfg, err := types.GetNetworkConfig(cfg.Network)
	if err != nil {
		return nil, err
	}

	var auth *signing.Authenticator
	if cfg.Credentials != nil {
		auth, err = signing.NewAuthenticator(*cfg.Credentials)
		if err != nil {
			return nil, err
		}
	}

	signer := cfg.Signer
	if signer == nil && cfg.StarkPrivateKey != "" {
		signer, err = signing.NewLocalSigner(cfg.Network, cfg.StarkPrivateKey)
		if err != nil {
			return nil, err
		}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	host := strings.TrimSuffix(cfg.Host, "/")
	return &Client{
		host:       host,
		network:    cfg.Network,
		netConfig:  netCfg,
		auth:       auth,
		signer:     signer,
		positionID: cfg.PositionID,
		clock:      clock.New(),
		http:       newHTTPClient(host),
		limiter:    ratelimit.NewManager(),
		log:        logger.WithField("component", "stark_client"),
	}, nil
}

// CanAuth reports whether private REST calls are possible.
func (c *Client) CanAuth() error {
	if c.auth == nil {
		return ErrNoCredentials
	}
	return nil
}

// CanSign reports whether local action signing is possible.
func (c *Client) CanSign() error {
	if c.signer == nil {
		return ErrNoSigner
	}
	return nil
}

// Network returns the network the client signs for.
func (c *Client) Network() types.Network {
	return c.network
}

// Clock returns the client's request timestamp source.
func (c *Client) Clock() *clock.Clock {
	return c.clock
}

// SyncClock fetches the server time and records the skew so signed request
// timestamps land inside the server's acceptance window.
func (c *Client) SyncClock(ctx context.Context) error {
	var out types.ServerTime
	if err := c.public(ctx, EndpointTime, nil, &out); err != nil {
		return fmt.Errorf("fetch server time: %w", err)
	}
	// The server reports fractional epoch seconds, e.g. "1591693717.721".
	epochSec, err := strconv.ParseFloat(out.Epoch, 64)
	if err != nil {
		return fmt.Errorf("parse server epoch %q: %w", out.Epoch, err)
	}
	c.clock.Sync(int64(epochSec * 1000))
	c.log.WithField("offset", c.clock.Offset()).Debug("clock synced to server time")
	return nil
}
